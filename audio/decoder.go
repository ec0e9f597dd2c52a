package audio

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/gogpu/anim"
	"github.com/gogpu/anim/scene"
)

// Info is the metadata a Decoder extracts from an encoded stream.
type Info struct {
	Duration   int64
	SampleRate int
	Channels   int
}

// Decoder reads audio metadata. Implementations must not decode
// samples.
type Decoder interface {
	Decode(asset *scene.AudioAsset) (Info, error)
}

// StaticDecoder trusts the duration declared in the asset.
type StaticDecoder struct{}

// Decode returns the declared duration.
func (StaticDecoder) Decode(asset *scene.AudioAsset) (Info, error) {
	if asset.Duration <= 0 {
		return Info{}, fmt.Errorf("audio: no declared duration: %w", anim.ErrUnsupportedAudio)
	}
	return Info{Duration: asset.Duration}, nil
}

// WAVDecoder reads the RIFF/WAVE header of uncompressed audio. Other
// formats fall back to the declared duration when FallbackToDeclared is
// set.
type WAVDecoder struct {
	FallbackToDeclared bool
}

var (
	riffTag = []byte("RIFF")
	waveTag = []byte("WAVE")
)

// Decode parses the fmt and data chunks.
func (d WAVDecoder) Decode(asset *scene.AudioAsset) (Info, error) {
	info, err := parseWAV(asset.Data)
	if err != nil && d.FallbackToDeclared && asset.Duration > 0 {
		return Info{Duration: asset.Duration}, nil
	}
	return info, err
}

func parseWAV(data []byte) (Info, error) {
	if len(data) < 12 || !bytes.Equal(data[0:4], riffTag) || !bytes.Equal(data[8:12], waveTag) {
		return Info{}, fmt.Errorf("audio: not a RIFF/WAVE stream: %w", anim.ErrUnsupportedAudio)
	}
	var (
		info     Info
		byteRate uint32
		haveFmt  bool
	)
	for pos := 12; pos+8 <= len(data); {
		id := string(data[pos : pos+4])
		size := int(binary.LittleEndian.Uint32(data[pos+4 : pos+8]))
		body := pos + 8
		if size < 0 || body+size > len(data) {
			// Streams written before their length was known often
			// overstate the data chunk.
			size = len(data) - body
		}
		switch id {
		case "fmt ":
			if size < 16 {
				return Info{}, fmt.Errorf("audio: short fmt chunk: %w", anim.ErrUnsupportedAudio)
			}
			info.Channels = int(binary.LittleEndian.Uint16(data[body+2:]))
			info.SampleRate = int(binary.LittleEndian.Uint32(data[body+4:]))
			byteRate = binary.LittleEndian.Uint32(data[body+8:])
			haveFmt = true
		case "data":
			if !haveFmt || byteRate == 0 {
				return Info{}, fmt.Errorf("audio: data chunk before fmt: %w", anim.ErrUnsupportedAudio)
			}
			info.Duration = int64(size) * anim.MicrosecondsPerSecond / int64(byteRate)
			return info, nil
		}
		pos = body + size + size&1
	}
	return Info{}, fmt.Errorf("audio: no data chunk: %w", anim.ErrUnsupportedAudio)
}
