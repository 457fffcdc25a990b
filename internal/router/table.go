package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Route maps one literal URL path to a handler. Name identifies the
// route for reverse lookup and may be empty.
type Route struct {
	Method  string          `json:"method"`
	Path    string          `json:"path"`
	Name    string          `json:"name,omitempty"`
	Handler gin.HandlerFunc `json:"-"`
}

// Table is the application's route table: every registration in order,
// indexed by path and by name. It is filled during bootstrap, before
// the server accepts traffic, and read-only afterwards.
type Table struct {
	routes []*Route
	byPath map[string]*Route
	byName map[string]*Route
}

func NewTable() *Table {
	return &Table{
		byPath: make(map[string]*Route),
		byName: make(map[string]*Route),
	}
}

// Scope registers routes on group while recording them in the table
// under the group's base path.
func (t *Table) Scope(group *gin.RouterGroup) *Scope {
	prefix := group.BasePath()
	if prefix == "/" {
		prefix = ""
	}
	return &Scope{table: t, group: group, prefix: prefix}
}

// Lookup resolves a full path to its route.
func (t *Table) Lookup(path string) (*Route, bool) {
	rt, ok := t.byPath[path]
	return rt, ok
}

// Reverse returns the full path registered under name.
func (t *Table) Reverse(name string) (string, bool) {
	rt, ok := t.byName[name]
	if !ok {
		return "", false
	}
	return rt.Path, true
}

// Routes returns the table in registration order.
func (t *Table) Routes() []*Route {
	out := make([]*Route, len(t.routes))
	copy(out, t.routes)
	return out
}

func (t *Table) Len() int {
	return len(t.routes)
}

func (t *Table) add(rt *Route) {
	if _, dup := t.byPath[rt.Path]; dup {
		panic("router: duplicate route path " + rt.Path)
	}
	if rt.Name != "" {
		if _, dup := t.byName[rt.Name]; dup {
			panic("router: duplicate route name " + rt.Name)
		}
	}
	t.routes = append(t.routes, rt)
	t.byPath[rt.Path] = rt
	if rt.Name != "" {
		t.byName[rt.Name] = rt
	}
}

// Scope is a registration view over a Table, bound to one gin route
// group and its mount prefix.
type Scope struct {
	table  *Table
	group  gin.IRoutes
	prefix string
}

func (s *Scope) GET(path, name string, handler gin.HandlerFunc) {
	s.Handle(http.MethodGet, path, name, handler)
}

func (s *Scope) POST(path, name string, handler gin.HandlerFunc) {
	s.Handle(http.MethodPost, path, name, handler)
}

func (s *Scope) Handle(method, path, name string, handler gin.HandlerFunc) {
	s.table.add(&Route{
		Method:  method,
		Path:    s.prefix + path,
		Name:    name,
		Handler: handler,
	})
	s.group.Handle(method, path, handler)
}
