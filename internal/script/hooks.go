package script

import (
	"sort"
	"sync"

	"github.com/MKhiriev/go-config-resolver/models"
)

// Hooks is the registry of configure hooks that configuration modules can
// attach to a section with `configure = hook("name")`.
type Hooks struct {
	mu    sync.RWMutex
	hooks map[string]models.Configurable
}

// NewHooks returns an empty registry.
func NewHooks() *Hooks {
	return &Hooks{hooks: make(map[string]models.Configurable)}
}

// Register makes hook available under name, replacing any earlier hook with
// the same name.
func (h *Hooks) Register(name string, hook models.Configurable) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.hooks[name] = hook
}

// Lookup returns the hook registered under name.
func (h *Hooks) Lookup(name string) (models.Configurable, bool) {
	if h == nil {
		return nil, false
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	hook, ok := h.hooks[name]
	return hook, ok
}

// Names returns the registered hook names in sorted order.
func (h *Hooks) Names() []string {
	if h == nil {
		return nil
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	names := make([]string, 0, len(h.hooks))
	for name := range h.hooks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
