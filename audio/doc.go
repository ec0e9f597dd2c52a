// Package audio lays the audio embedded in an animation file out on the
// file's root timeline.
//
// Every composition may carry an encoded audio asset, and image layers
// may show movies with their own audio. Generator walks the composition
// tree and produces Clips: each maps a window of a decoded Source onto a
// window of the root timeline, with optional volume ramps. Nested
// compositions are shifted to their position in the parent, movie audio
// follows the layer's time-remap curve, and the file's time-stretch mode
// (repeat or scale) is applied last.
//
// All times in this package are microseconds. Ranges are half-open:
// a Clip's TargetRange {Start: 0, End: 5_000_000} covers the first five
// seconds and ends exactly where a clip starting at 5_000_000 begins.
// Samples are never decoded; mixing is left to the caller.
package audio
