package anim

import "sort"

// TimeRange is an inclusive range of frames [Start, End].
//
// A time-range list is always sorted by Start and pairwise disjoint.
// The functions in this file rely on that and never check it.
type TimeRange struct {
	Start Frame
	End   Frame
}

// Duration returns the number of frames covered by the range.
func (r TimeRange) Duration() Frame {
	return r.End - r.Start + 1
}

// Contains reports whether frame lies inside the range.
func (r TimeRange) Contains(frame Frame) bool {
	return r.Start <= frame && frame <= r.End
}

// IsValid reports whether the range covers at least one frame.
func (r TimeRange) IsValid() bool {
	return r.Start <= r.End
}

// SubtractFromTimeRanges removes [startTime, endTime] from every range in
// the list. A range strictly containing the removed span is split in two,
// a range overlapping one edge is shrunk, and a range fully covered is
// deleted. When endTime < startTime the call degrades to a split at
// startTime.
func SubtractFromTimeRanges(timeRanges *[]TimeRange, startTime, endTime Frame) {
	if endTime < startTime {
		SplitTimeRangesAt(timeRanges, startTime)
		return
	}
	ranges := *timeRanges
	result := make([]TimeRange, 0, len(ranges)+1)
	for _, r := range ranges {
		if r.End < startTime || r.Start > endTime {
			result = append(result, r)
			continue
		}
		if r.Start < startTime {
			result = append(result, TimeRange{Start: r.Start, End: startTime - 1})
		}
		if r.End > endTime {
			result = append(result, TimeRange{Start: endTime + 1, End: r.End})
		}
	}
	*timeRanges = result
}

// SplitTimeRangesAt makes startTime a range boundary. If startTime falls
// strictly inside a range, that range becomes [Start, startTime-1] and
// [startTime, End]. Splitting twice at the same frame is a no-op.
func SplitTimeRangesAt(timeRanges *[]TimeRange, startTime Frame) {
	ranges := *timeRanges
	index := FindTimeRangeAt(ranges, startTime)
	if index < 0 {
		return
	}
	r := ranges[index]
	if r.Start == startTime {
		return
	}
	ranges = append(ranges, TimeRange{})
	copy(ranges[index+2:], ranges[index+1:])
	ranges[index] = TimeRange{Start: r.Start, End: startTime - 1}
	ranges[index+1] = TimeRange{Start: startTime, End: r.End}
	*timeRanges = ranges
}

// MergeTimeRanges replaces timeRanges with the parts of it that overlap
// some range in other. Despite its name this is a set intersection: a
// frame stays static only if it is static in both lists.
func MergeTimeRanges(timeRanges *[]TimeRange, other []TimeRange) {
	ranges := *timeRanges
	result := make([]TimeRange, 0, len(ranges))
	for _, r := range ranges {
		for _, o := range other {
			if o.End < r.Start {
				continue
			}
			if o.Start > r.End {
				break
			}
			result = append(result, TimeRange{
				Start: max(r.Start, o.Start),
				End:   min(r.End, o.End),
			})
		}
	}
	*timeRanges = result
}

// OffsetTimeRanges returns a copy of timeRanges translated by offset.
func OffsetTimeRanges(timeRanges []TimeRange, offset Frame) []TimeRange {
	result := make([]TimeRange, len(timeRanges))
	for i, r := range timeRanges {
		result[i] = TimeRange{Start: r.Start + offset, End: r.End + offset}
	}
	return result
}

// FindTimeRangeAt returns the index of the range containing frame, or -1.
func FindTimeRangeAt(timeRanges []TimeRange, frame Frame) int {
	i := sort.Search(len(timeRanges), func(i int) bool {
		return timeRanges[i].End >= frame
	})
	if i < len(timeRanges) && timeRanges[i].Start <= frame {
		return i
	}
	return -1
}

// HasVaryingTimeRange reports whether some frame in
// [startTime, startTime+duration-1] may render differently from another,
// that is, whether the list is anything other than that single range.
func HasVaryingTimeRange(timeRanges []TimeRange, startTime, duration Frame) bool {
	if len(timeRanges) != 1 {
		return true
	}
	r := timeRanges[0]
	return r.Start != startTime || r.End != startTime+duration-1
}

// IsFullyStatic is the negation of HasVaryingTimeRange.
func IsFullyStatic(timeRanges []TimeRange, startTime, duration Frame) bool {
	return !HasVaryingTimeRange(timeRanges, startTime, duration)
}
