package verboselog

import "sync"

// Location supplies the URL of the current page.
type Location interface {
	Href() string
}

// StaticLocation is a Location that never changes.
type StaticLocation string

// Href returns the location itself.
func (s StaticLocation) Href() string {
	return string(s)
}

// LocationFunc adapts a function to the Location interface.
type LocationFunc func() string

// Href calls f.
func (f LocationFunc) Href() string {
	return f()
}

// NavigableLocation is a Location that can be moved, the way a single-page
// application changes its URL without reloading.
type NavigableLocation struct {
	mu   sync.RWMutex
	href string
}

// NewNavigableLocation creates a location starting at href.
func NewNavigableLocation(href string) *NavigableLocation {
	return &NavigableLocation{href: href}
}

// Navigate moves the location to href.
func (n *NavigableLocation) Navigate(href string) {
	n.mu.Lock()
	n.href = href
	n.mu.Unlock()
}

// Href returns the current URL.
func (n *NavigableLocation) Href() string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.href
}
