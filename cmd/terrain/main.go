// Command terrain derives slope, hillshade and drainage rasters from a DEM.
package main

import (
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
