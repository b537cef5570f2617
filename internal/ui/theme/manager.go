package theme

import (
	"sort"
	"sync"
)

var registry = &manager{themes: make(map[string]Theme)}

type manager struct {
	mu      sync.RWMutex
	themes  map[string]Theme
	name    string
	current Theme
}

// RegisterTheme adds a theme to the registry. The first registered
// theme becomes the default.
func RegisterTheme(name string, t Theme) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.themes[name] = t
	if registry.current == nil {
		registry.name = name
		registry.current = t
	}
}

// SetTheme switches to a registered theme by name. Returns true if the
// theme was found and set.
func SetTheme(name string) bool {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	t, ok := registry.themes[name]
	if !ok {
		return false
	}
	registry.name = name
	registry.current = t
	return true
}

// Current returns the active theme.
func Current() Theme {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	return registry.current
}

// CurrentName returns the name of the active theme.
func CurrentName() string {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	return registry.name
}

// Available returns all registered theme names in sorted order.
func Available() []string {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	names := make([]string, 0, len(registry.themes))
	for name := range registry.themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CycleTheme switches to the next theme in sorted order and returns
// its name.
func CycleTheme() string {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	names := make([]string, 0, len(registry.themes))
	for name := range registry.themes {
		names = append(names, name)
	}
	sort.Strings(names)
	if len(names) == 0 {
		return ""
	}
	idx := sort.SearchStrings(names, registry.name)
	next := names[(idx+1)%len(names)]
	registry.name = next
	registry.current = registry.themes[next]
	return next
}
