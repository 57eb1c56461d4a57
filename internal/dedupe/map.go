package dedupe

import "runtime/debug"

type MapBackend struct {
	storage map[string]struct{}
}

func NewMapBackend() *MapBackend {
	return &MapBackend{storage: map[string]struct{}{}}
}

func (m *MapBackend) Upsert(token string) {
	m.storage[token] = struct{}{}
}

func (m *MapBackend) IterCallback(callback func(token string)) {
	for k := range m.storage {
		callback(k)
	}
}

func (m *MapBackend) Cleanup() {
	m.storage = nil
	// GC does not release allocated memory immediately on its own,
	// force it so large token sets don't linger
	debug.FreeOSMemory()
}
