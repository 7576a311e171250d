// Package router rewrites request paths according to a fixed table of aliases.
package router

import (
	"fmt"
	"net/http"
	"path"
	"strings"
)

type Router interface {
	// Route returns the target for the path if the method is GET and
	// the path has a route. Otherwise the path is returned unchanged.
	Route(method, path string) string

	// Routes returns a copy of the routes.
	Routes() map[string]string
}

// DefaultRoutes are the aliases the server is using.
var DefaultRoutes = map[string]string{
	"/":        "/index.html",
	"/home":    "/index.html",
	"/about":   "/about.html",
	"/contact": "/contact.html",
}

type router struct {
	routes map[string]string
}

// New returns a Router for the given routes. Routes with a blocked prefix and
// targets that are not absolute paths are rejected.
func New(blockedPrefixes []string, routes map[string]string) (Router, error) {
	r := &router{
		routes: make(map[string]string, len(routes)),
	}

	for route, target := range routes {
		for _, prefix := range blockedPrefixes {
			if strings.HasPrefix(route, prefix) {
				return nil, fmt.Errorf("the prefix of the route %s is blocked", route)
			}
		}

		if !strings.HasPrefix(route, "/") {
			return nil, fmt.Errorf("the route %s must start with /", route)
		}

		if !strings.HasPrefix(target, "/") || path.Clean(target) != target {
			return nil, fmt.Errorf("invalid target %s for route %s", target, route)
		}

		r.routes[route] = target
	}

	return r, nil
}

func (r *router) Route(method, path string) string {
	if method != http.MethodGet {
		return path
	}

	if target, ok := r.routes[path]; ok {
		return target
	}

	return path
}

func (r *router) Routes() map[string]string {
	routes := make(map[string]string, len(r.routes))

	for k, v := range r.routes {
		routes[k] = v
	}

	return routes
}
