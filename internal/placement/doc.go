// Package placement decides which side of a trigger a floating element is
// anchored to and where it is drawn.
//
// Every function is a pure function of its arguments. Geometry is passed by
// value and nothing is retained between calls, so the caller must measure
// fresh rectangles and a fresh viewport for every computation.
package placement
