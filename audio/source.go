package audio

import "sync/atomic"

// Source is decoded audio metadata shared by every clip cut from the
// same asset. It is reference counted: each clip returned by Generator
// holds one reference.
type Source struct {
	// Duration is the playable length in microseconds.
	Duration   int64
	SampleRate int
	Channels   int

	data []byte
	refs atomic.Int32
}

// NewSource returns a source over encoded data holding one reference.
func NewSource(data []byte, info Info) *Source {
	s := &Source{
		Duration:   info.Duration,
		SampleRate: info.SampleRate,
		Channels:   info.Channels,
		data:       data,
	}
	s.refs.Store(1)
	return s
}

// Data returns the encoded bytes, or nil once every reference has been
// released.
func (s *Source) Data() []byte {
	if s.refs.Load() <= 0 {
		return nil
	}
	return s.data
}

// Retain adds a reference and returns s.
func (s *Source) Retain() *Source {
	s.refs.Add(1)
	return s
}

// Release drops a reference. The encoded bytes are dropped with the last
// one. It reports whether that happened.
func (s *Source) Release() bool {
	if s.refs.Add(-1) != 0 {
		return false
	}
	s.data = nil
	return true
}

// Refs returns the current reference count.
func (s *Source) Refs() int {
	return int(s.refs.Load())
}
