// Package layout holds the geometry shared by the placement engine and its hosts.
//
// Coordinates are viewport coordinates with the origin at the top-left corner,
// X growing right and Y growing down. Values are float64 so that centering a
// box on an odd-sized trigger is exact. Types are re-exported through the root
// tooltip package for public consumption.
package layout
