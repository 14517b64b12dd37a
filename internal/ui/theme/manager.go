package theme

import (
	"sort"
	"sync"
)

// DefaultName is the theme used when nothing is configured.
const DefaultName = "tokyonight"

var globalManager = &manager{
	themes: make(map[string]Theme),
}

type manager struct {
	mu           sync.RWMutex
	themes       map[string]Theme
	currentName  string
	currentTheme Theme
}

// RegisterTheme adds a theme to the registry.
// The first registered theme becomes current until SetTheme is called.
func RegisterTheme(name string, t Theme) {
	globalManager.mu.Lock()
	defer globalManager.mu.Unlock()
	globalManager.themes[name] = t
	if globalManager.currentName == "" || name == DefaultName {
		globalManager.currentName = name
		globalManager.currentTheme = t
	}
}

// SetTheme switches to a registered theme by name.
// Returns true if the theme was found and set.
func SetTheme(name string) bool {
	globalManager.mu.Lock()
	defer globalManager.mu.Unlock()
	if t, ok := globalManager.themes[name]; ok {
		globalManager.currentName = name
		globalManager.currentTheme = t
		return true
	}
	return false
}

// Current returns the active theme.
func Current() Theme {
	globalManager.mu.RLock()
	defer globalManager.mu.RUnlock()
	return globalManager.currentTheme
}

// CurrentName returns the name of the active theme.
func CurrentName() string {
	globalManager.mu.RLock()
	defer globalManager.mu.RUnlock()
	return globalManager.currentName
}

// Available returns all registered theme names in sorted order.
func Available() []string {
	globalManager.mu.RLock()
	defer globalManager.mu.RUnlock()
	return sortedNames()
}

// CycleTheme switches to the next theme in sorted order and returns its name.
func CycleTheme() string {
	globalManager.mu.Lock()
	defer globalManager.mu.Unlock()

	names := sortedNames()
	if len(names) == 0 {
		return ""
	}
	next := 0
	for i, name := range names {
		if name == globalManager.currentName {
			next = (i + 1) % len(names)
			break
		}
	}
	globalManager.currentName = names[next]
	globalManager.currentTheme = globalManager.themes[names[next]]
	return names[next]
}

// sortedNames must be called with the lock held.
func sortedNames() []string {
	names := make([]string, 0, len(globalManager.themes))
	for name := range globalManager.themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
