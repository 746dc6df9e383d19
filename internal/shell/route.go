// Package shell implements the application shell: a fixed route table, the
// layout frame that wraps every page, and the router that matches a path to
// exactly one page and renders it inside the frame.
package shell

import (
	"errors"
	"fmt"

	"github.com/a-h/templ"
)

// Route table errors
var (
	ErrEmptyTable    = errors.New("route table has no routes")
	ErrEmptyPage     = errors.New("route page id cannot be empty")
	ErrNilComponent  = errors.New("route component cannot be nil")
	ErrDuplicatePath = errors.New("route path is already registered")
	ErrDuplicatePage = errors.New("route page id is already registered")
)

// PageID identifies a page independently of the path it is mounted on.
type PageID string

// Route binds a URL path to the page rendered for it.
type Route struct {
	Path      string
	Page      PageID
	Title     string
	Component templ.Component
}

// Table is the ordered, immutable set of routes. Build it once with NewTable.
type Table struct {
	routes []Route
	byPath map[string]int
	pages  map[PageID]struct{}
}

// NewTable validates routes and returns a table holding them in order.
func NewTable(routes ...Route) (*Table, error) {
	if len(routes) == 0 {
		return nil, ErrEmptyTable
	}

	t := &Table{
		routes: make([]Route, 0, len(routes)),
		byPath: make(map[string]int, len(routes)),
		pages:  make(map[PageID]struct{}, len(routes)),
	}

	for _, r := range routes {
		if err := ValidatePath(r.Path); err != nil {
			return nil, fmt.Errorf("route %q: %w", r.Path, err)
		}
		if r.Page == "" {
			return nil, fmt.Errorf("route %q: %w", r.Path, ErrEmptyPage)
		}
		if r.Component == nil {
			return nil, fmt.Errorf("route %q: %w", r.Path, ErrNilComponent)
		}
		if _, ok := t.byPath[r.Path]; ok {
			return nil, fmt.Errorf("route %q: %w", r.Path, ErrDuplicatePath)
		}
		if _, ok := t.pages[r.Page]; ok {
			return nil, fmt.Errorf("route %q (page %s): %w", r.Path, r.Page, ErrDuplicatePage)
		}

		t.byPath[r.Path] = len(t.routes)
		t.pages[r.Page] = struct{}{}
		t.routes = append(t.routes, r)
	}

	return t, nil
}

// Routes returns a copy of the routes in declaration order.
func (t *Table) Routes() []Route {
	out := make([]Route, len(t.routes))
	copy(out, t.routes)
	return out
}

// Len returns the number of routes.
func (t *Table) Len() int {
	return len(t.routes)
}

// Match returns the route registered for path. The path is normalized first,
// so "/lesson-planner/" matches "/lesson-planner". Matching is case-sensitive.
func (t *Table) Match(path string) (Route, bool) {
	i, ok := t.byPath[NormalizePath(path)]
	if !ok {
		return Route{}, false
	}
	return t.routes[i], true
}
