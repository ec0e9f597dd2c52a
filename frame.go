package anim

import "math"

// Frame is a tick count at the frame rate of the owning composition.
//
// Frame is an alias of int64 so that audio code can reuse TimeRange with
// microsecond ticks without conversions.
type Frame = int64

// ZeroFrame is the first frame of every composition.
const ZeroFrame Frame = 0

// MicrosecondsPerSecond is the audio clock resolution.
const MicrosecondsPerSecond = 1_000_000

// FrameToTime converts a frame to microseconds at the given frame rate.
// The result is rounded up so that the returned time always lies inside
// the frame.
func FrameToTime(frame Frame, frameRate float32) int64 {
	return int64(math.Ceil(float64(frame) * MicrosecondsPerSecond / float64(frameRate)))
}

// TimeToFrame converts microseconds to the frame that contains them.
func TimeToFrame(time int64, frameRate float32) Frame {
	return Frame(math.Floor(float64(time) * float64(frameRate) / MicrosecondsPerSecond))
}
