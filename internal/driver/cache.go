package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"sigil/internal/source"
)

// Increment when the payload format changes; stale entries just miss.
const cacheSchemaVersion uint16 = 1

// TypeHash is one cached fingerprint.
type TypeHash struct {
	Name string
	Hash uint64
}

// FingerprintCache stores computed fingerprints on disk, keyed by a digest
// of the whole compilation unit. A hit means every input byte is unchanged,
// so the cached fingerprints are exactly what a recompute would produce.
// Safe for concurrent use.
type FingerprintCache struct {
	mu  sync.RWMutex
	dir string
}

type cachePayload struct {
	Schema uint16
	Types  []TypeHash
}

// OpenFingerprintCache initializes the cache at the standard location
// ($XDG_CACHE_HOME/<app> or ~/.cache/<app>).
func OpenFingerprintCache(app string) (*FingerprintCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FingerprintCache{dir: dir}, nil
}

// UnitKey digests a compilation unit: every file's content hash in input
// order, plus the options that influence fingerprints.
func UnitKey(fs *source.FileSet, packagePrefix string) [32]byte {
	h := sha256.New()
	for i := 0; i < fs.Len(); i++ {
		f := fs.Get(source.FileID(i))
		h.Write(f.Hash[:])
	}
	h.Write([]byte(packagePrefix))
	var key [32]byte
	copy(key[:], h.Sum(nil))
	return key
}

func (c *FingerprintCache) pathFor(key [32]byte) string {
	return filepath.Join(c.dir, "units", hex.EncodeToString(key[:])+".mp")
}

// Put atomically writes the fingerprints for a unit key.
func (c *FingerprintCache) Put(key [32]byte, types []TypeHash) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())

	if err := msgpack.NewEncoder(f).Encode(&cachePayload{
		Schema: cacheSchemaVersion,
		Types:  types,
	}); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), p)
}

// Get reads the fingerprints for a unit key; ok is false on miss or on a
// payload from another schema version.
func (c *FingerprintCache) Get(key [32]byte) ([]TypeHash, bool, error) {
	if c == nil {
		return nil, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	defer f.Close()

	var payload cachePayload
	if err := msgpack.NewDecoder(f).Decode(&payload); err != nil {
		return nil, false, err
	}
	if payload.Schema != cacheSchemaVersion {
		return nil, false, nil
	}
	return payload.Types, true, nil
}
