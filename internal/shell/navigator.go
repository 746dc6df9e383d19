package shell

import "sync"

// Navigator holds the current path of one browsing context. Navigate is the
// single writer; the router reads Current when it renders.
type Navigator struct {
	mu      sync.RWMutex
	current string
	visits  int
}

// NewNavigator creates a navigator positioned at initial, or "/" when empty.
func NewNavigator(initial string) *Navigator {
	if initial == "" {
		initial = "/"
	}
	return &Navigator{current: NormalizePath(initial)}
}

// Navigate moves to path and returns the path it left.
func (n *Navigator) Navigate(path string) string {
	n.mu.Lock()
	defer n.mu.Unlock()

	prev := n.current
	n.current = NormalizePath(path)
	n.visits++
	return prev
}

// Current returns the current path.
func (n *Navigator) Current() string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.current
}

// Visits returns how many navigations have happened.
func (n *Navigator) Visits() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.visits
}
