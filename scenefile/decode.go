package scenefile

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/anim"
	"github.com/gogpu/anim/scene"
)

var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

// Decode reads a scene file from r. Pre-compose layers that reference
// other files fail with ErrNoResolver; use a Loader for those.
func Decode(r io.Reader) (*scene.File, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("scenefile: reading: %w", err)
	}
	return decode(data, nil)
}

// DecodeBytes is Decode over a byte slice.
func DecodeBytes(data []byte) (*scene.File, error) {
	return decode(data, nil)
}

func decode(data []byte, resolve func(string) (*scene.File, error)) (*scene.File, error) {
	data, err := decompress(data)
	if err != nil {
		return nil, err
	}
	var spec fileSpec
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&spec); err != nil {
		return nil, malformed("yaml", err)
	}
	b := &builder{resolve: resolve}
	f, err := b.file(&spec)
	if err != nil {
		return nil, err
	}
	if err := f.Check(); err != nil {
		return nil, fmt.Errorf("scenefile: %w", err)
	}
	anim.Logger().Debug("scene file decoded",
		"compositions", len(f.Compositions), "root", f.Root.ID, "stretch", f.TimeStretchMode)
	return f, nil
}

func decompress(data []byte) ([]byte, error) {
	if !bytes.HasPrefix(data, zstdMagic) {
		return data, nil
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("scenefile: creating zstd decoder: %w", err)
	}
	defer dec.Close()
	out, err := dec.DecodeAll(data, nil)
	if err != nil {
		return nil, malformed("zstd", err)
	}
	return out, nil
}
