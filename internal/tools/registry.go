package tools

import (
	"fmt"
	"regexp"
	"strings"
)

// allowedMethods is the whitelist of HTTP methods a route may use.
var allowedMethods = map[string]bool{
	"GET": true, "POST": true, "PATCH": true, "DELETE": true,
}

var placeholderPattern = regexp.MustCompile(`\{([a-z_]+)\}`)

// Registry is the ordered, immutable set of routes.
type Registry struct {
	routes      []Route
	index       map[string]int
	definitions []Definition
}

// NewRegistry validates routes and indexes them by name. Order is preserved.
func NewRegistry(routes []Route) (*Registry, error) {
	reg := &Registry{
		routes:      make([]Route, 0, len(routes)),
		index:       make(map[string]int, len(routes)),
		definitions: make([]Definition, 0, len(routes)),
	}
	for _, r := range routes {
		if err := ValidateRoute(r); err != nil {
			return nil, err
		}
		if _, dup := reg.index[r.Name]; dup {
			return nil, fmt.Errorf("duplicate tool %q", r.Name)
		}
		reg.index[r.Name] = len(reg.routes)
		reg.routes = append(reg.routes, r)
		reg.definitions = append(reg.definitions, r.Definition())
	}
	return reg, nil
}

// ValidateRoute checks a single route descriptor.
func ValidateRoute(r Route) error {
	if r.Name == "" {
		return fmt.Errorf("tool has empty name")
	}
	if !allowedMethods[r.Method] {
		return fmt.Errorf("tool %q has unsupported method %q", r.Name, r.Method)
	}
	if !strings.HasPrefix(r.Path, "/") {
		return fmt.Errorf("tool %q has invalid path %q (must start with /)", r.Name, r.Path)
	}
	if strings.Contains(r.Path, "..") || strings.Contains(r.Path, "?") {
		return fmt.Errorf("tool %q has invalid path %q", r.Name, r.Path)
	}

	seen := make(map[string]bool, len(r.Params))
	pathParams := map[string]bool{}
	for _, p := range r.Params {
		if p.Name == "" {
			return fmt.Errorf("tool %q has a parameter with empty name", r.Name)
		}
		if seen[p.Name] {
			return fmt.Errorf("tool %q has duplicate parameter %q", r.Name, p.Name)
		}
		seen[p.Name] = true
		switch p.In {
		case InPath:
			if !strings.Contains(r.Path, "{"+p.Name+"}") {
				return fmt.Errorf("tool %q path parameter %q not in path %q", r.Name, p.Name, r.Path)
			}
			pathParams[p.Name] = true
		case InQuery, InBody:
		default:
			return fmt.Errorf("tool %q parameter %q has invalid location %q", r.Name, p.Name, p.In)
		}
	}

	for _, m := range placeholderPattern.FindAllStringSubmatch(r.Path, -1) {
		if !pathParams[m[1]] {
			return fmt.Errorf("tool %q path placeholder {%s} has no path parameter", r.Name, m[1])
		}
	}
	return nil
}

// Get returns the route registered under name.
func (reg *Registry) Get(name string) (Route, bool) {
	i, ok := reg.index[name]
	if !ok {
		return Route{}, false
	}
	return reg.routes[i], true
}

// Routes returns the routes in registration order.
func (reg *Registry) Routes() []Route {
	out := make([]Route, len(reg.routes))
	copy(out, reg.routes)
	return out
}

// Definitions returns the advertised tool definitions in registration order.
func (reg *Registry) Definitions() []Definition {
	out := make([]Definition, len(reg.definitions))
	copy(out, reg.definitions)
	return out
}

// Len returns the number of registered tools.
func (reg *Registry) Len() int {
	return len(reg.routes)
}
