// Package anim is the temporal evaluation core of an animation runtime.
//
// # Overview
//
// An animation file is a scene graph of compositions, layers, contents
// and effects whose parameters are either constant or keyframed. This
// package and its sub-packages answer three questions about such a graph:
//
//   - What is the value of a parameter at a given frame? (package property)
//   - Which frames render identically to their neighbours, so a renderer
//     can reuse the previous output? (TimeRange, package scene)
//   - How is the embedded audio laid out on the root timeline after
//     composition nesting, time stretching and time remapping? (package audio)
//
// Text animators are evaluated per character by package textanim.
//
// # Time ranges
//
// A static time-range list is a sorted list of disjoint inclusive frame
// ranges. It starts as the whole duration of a node and is narrowed by
// every animated parameter:
//
//	ranges := []anim.TimeRange{{Start: 0, End: duration - 1}}
//	opacity.ExcludeVaryingRanges(&ranges)
//	position.ExcludeVaryingRanges(&ranges)
//
// A frame is static if it lies inside a range of length greater than one
// together with the frame before it.
//
// # Frames and time
//
// Frames are int64 ticks at a composition's frame rate. Audio uses the
// same TimeRange type with microsecond ticks; see FrameToTime and
// TimeToFrame for the conversions.
//
// # Logging
//
// The package is silent by default. Use SetLogger to route diagnostics
// from every sub-package to a slog.Logger.
//
// # Sub-packages
//
//   - property: constant and keyframed parameters, interpolation
//   - textanim: text range, wiggly and expression selectors
//   - scene: the scene graph, verification and static-range aggregation
//   - audio: audio clip timeline generation
//   - scenefile: YAML scene documents and a caching loader
//   - cache: generic bounded cache used by the loader
package anim
