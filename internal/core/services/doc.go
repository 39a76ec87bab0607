// Package services implements the driving port interfaces.
// Services contain the core recompression logic and orchestrate
// calls to driven ports (adapters).
//
// Services are pure Go with no CGO or network dependencies; the only
// third-party import is golang.org/x/image for raster scaling.
package services
