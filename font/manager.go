package font

import (
	"sync"

	"typeset/errs"
	"typeset/units"
)

// key identifies a cached Font by typeface and variant, independent of
// point size - SizedFont instances are produced on demand from the cached
// Font, never cached themselves.
type key struct {
	typeface string
	variant  Variant
}

// Loader resolves a (typeface, variant) pair to a Font. It may fail with a
// *errs.Error of KindLoad. Loading happens lazily, on first request, and is
// the caller's responsibility to serialize or pre-warm - the engine never
// blocks on I/O itself.
type Loader func(typeface string, variant Variant) (Font, error)

// Manager caches (typeface, variant) -> Font for the lifetime of a process.
// It is safe for concurrent readers and writers: two goroutines racing to
// resolve the same key may both invoke the loader, but since the loader is
// expected to be deterministic for a given key, the last write wins without
// producing an inconsistent result.
type Manager struct {
	loader           Loader
	fallbackTypeface string

	mu    sync.RWMutex
	cache map[key]Font
}

// NewManager returns a Manager backed by loader. fallbackTypeface, if
// non-empty, names the typeface GetSized composes in as a failover whenever
// the requested typeface differs from it.
func NewManager(loader Loader, fallbackTypeface string) *Manager {
	return &Manager{
		loader:           loader,
		fallbackTypeface: fallbackTypeface,
		cache:            make(map[key]Font),
	}
}

func (m *Manager) get(typeface string, variant Variant) (Font, error) {
	const op = "Manager.get"
	k := key{typeface, variant}

	m.mu.RLock()
	f, ok := m.cache[k]
	m.mu.RUnlock()
	if ok {
		return f, nil
	}

	loaded, err := m.loader(typeface, variant)
	if err != nil {
		return nil, errs.Load(op, err)
	}

	m.mu.Lock()
	m.cache[k] = loaded
	m.mu.Unlock()
	return loaded, nil
}

// GetSized returns a SizedFont for typeface/variant/size. When a fallback
// typeface is configured and differs from the one requested, the result is
// a failover composing primary+fallback at the same size; if the fallback
// itself cannot be loaded, GetSized degrades to the primary alone rather
// than failing the whole request.
func (m *Manager) GetSized(typeface string, variant Variant, size units.SP) (SizedFont, error) {
	primaryFont, err := m.get(typeface, variant)
	if err != nil {
		return nil, err
	}
	primary := primaryFont.Sized(size)

	if m.fallbackTypeface == "" || m.fallbackTypeface == typeface {
		return primary, nil
	}

	fallbackFont, err := m.get(m.fallbackTypeface, variant)
	if err != nil {
		return primary, nil
	}
	return NewFailover(primary, fallbackFont.Sized(size)), nil
}
