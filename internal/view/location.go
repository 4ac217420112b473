package view

import "sync"

// Renderer is the presentation collaborator. It receives the complete view
// after every pass and owns everything visual: the results count, the
// empty-state region, badge markup and reorder animation.
type Renderer interface {
	Render(v View)
}

// Location is the address bar. Replace swaps the current query string
// without adding a history entry.
type Location interface {
	Replace(rawQuery string)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(v View)

// Render implements Renderer.
func (f RendererFunc) Render(v View) { f(v) }

// MemoryLocation is a Location that keeps the URL in memory. It backs the
// HTTP and CLI surfaces, where there is no browser history.
type MemoryLocation struct {
	mu       sync.Mutex
	path     string
	query    string
	replaced int
}

// NewMemoryLocation returns a location for path with an empty query.
func NewMemoryLocation(path string) *MemoryLocation {
	return &MemoryLocation{path: path}
}

// Replace implements Location.
func (l *MemoryLocation) Replace(rawQuery string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.query = rawQuery
	l.replaced++
}

// URL returns the path plus the current query, or the bare path when the
// query is empty.
func (l *MemoryLocation) URL() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.query == "" {
		return l.path
	}
	return l.path + "?" + l.query
}

// Replacements returns how many times Replace was called.
func (l *MemoryLocation) Replacements() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.replaced
}
