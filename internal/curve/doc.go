// Package curve provides the closed-form polynomial solvers and cubic
// Bézier helpers shared by keyframe easing and text selector shapes.
//
// All math is done in float64; callers convert from the float32 values
// stored in the scene graph.
package curve
