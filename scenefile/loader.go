package scenefile

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"

	"golang.org/x/sync/singleflight"
	"lukechampine.com/blake3"

	"github.com/gogpu/anim"
	"github.com/gogpu/anim/cache"
	"github.com/gogpu/anim/scene"
)

// Digest is the BLAKE3-256 hash of a file's raw bytes.
type Digest = [32]byte

// Loader reads scene files and shares the decoded graph between every
// load of identical content. Nested file references resolve relative to
// the referencing file. Since entries are keyed by content, a file
// loaded from two directories resolves its references from the first.
//
// Loader is safe for concurrent use.
type Loader struct {
	read  func(name string) ([]byte, error)
	join  func(from, ref string) string
	files *cache.Cache[Digest, *scene.File]
	group singleflight.Group
}

// Option configures a Loader.
type Option func(*Loader)

// WithCache shares a decoded-file cache between loaders.
func WithCache(c *cache.Cache[Digest, *scene.File]) Option {
	return func(l *Loader) {
		if c != nil {
			l.files = c
		}
	}
}

// WithFS reads files from fsys instead of the operating system.
func WithFS(fsys fs.FS) Option {
	return func(l *Loader) {
		l.read = func(name string) ([]byte, error) { return fs.ReadFile(fsys, name) }
		l.join = func(from, ref string) string { return path.Join(path.Dir(from), ref) }
	}
}

// NewLoader returns a Loader over the OS filesystem with an LRU cache of
// cache.DefaultCapacity files.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		read: os.ReadFile,
		join: func(from, ref string) string { return filepath.Join(filepath.Dir(from), ref) },
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.files == nil {
		l.files = cache.New[Digest, *scene.File]()
	}
	return l
}

// Load reads, decodes and checks the named file. Concurrent loads of the
// same content share one decode.
func (l *Loader) Load(name string) (*scene.File, error) {
	data, err := l.read(name)
	if err != nil {
		return nil, fmt.Errorf("scenefile: %w", err)
	}
	key := blake3.Sum256(data)
	if f, ok := l.files.Get(key); ok {
		return f, nil
	}
	v, err, shared := l.group.Do(hex.EncodeToString(key[:]), func() (any, error) {
		// A flight that finished between Get and Do has already stored it.
		if f, ok := l.files.Get(key); ok {
			return f, nil
		}
		return l.decodeFile(name, data, key, nil)
	})
	if err != nil {
		return nil, err
	}
	anim.Logger().Debug("scene file loaded", "name", name, "shared", shared)
	return v.(*scene.File), nil
}

// Stats reports the hit rate of the decoded-file cache.
func (l *Loader) Stats() cache.Stats {
	return l.files.Stats()
}

// nested resolves a file reference outside any flight, so a cycle split
// across concurrent loads still reaches the digest check.
func (l *Loader) nested(name string, stack []Digest) (*scene.File, error) {
	data, err := l.read(name)
	if err != nil {
		return nil, fmt.Errorf("scenefile: %w", err)
	}
	key := blake3.Sum256(data)
	if slices.Contains(stack, key) {
		return nil, malformed(name, errors.New("file references itself"))
	}
	if f, ok := l.files.Get(key); ok {
		return f, nil
	}
	return l.decodeFile(name, data, key, stack)
}

func (l *Loader) decodeFile(name string, data []byte, key Digest, stack []Digest) (*scene.File, error) {
	stack = append(slices.Clip(stack), key)
	f, err := decode(data, func(ref string) (*scene.File, error) {
		return l.nested(l.join(name, ref), stack)
	})
	if err != nil {
		return nil, err
	}
	l.files.Set(key, f)
	return f, nil
}
