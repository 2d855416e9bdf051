// Package nav is the site's route registry. Views never hard-code anchors to
// internal pages; they ask the registry for a link by destination path, so a
// link to a page the server does not serve fails loudly at render time.
package nav

import (
	"errors"
	"fmt"
	"io"
	"slices"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

var ErrUnknownRoute = errors.New("unknown route")

type Route struct {
	Path    string
	Title   string
	Summary string
}

var siteRoutes = []Route{
	{Path: "/", Title: "Home", Summary: "Furniture, lighting and decor from makers across West Africa."},
	{Path: "/new-arrivals", Title: "New Arrivals", Summary: "The latest pieces to land in our showroom."},
	{Path: "/shops", Title: "Shops", Summary: "Browse the independent studios we work with."},
	{Path: "/about", Title: "About Us", Summary: "How Blend & Beam started and who we work with."},
	{Path: "/contact", Title: "Contact", Summary: "Reach our team by phone, email or at the Accra showroom."},
	{Path: "/faq", Title: "FAQ", Summary: "Answers to the questions we hear most often."},
	{Path: "/returns", Title: "Returns", Summary: "How returns and exchanges work."},
	{Path: "/privacy", Title: "Privacy Policy", Summary: "What we collect and how we use it."},
}

// Routes returns the pages served by the storefront.
func Routes() []Route {
	return slices.Clone(siteRoutes)
}

type Registry struct {
	routes []Route
	byPath map[string]Route
}

// NewRegistry indexes routes by path. A later route with the same path
// replaces an earlier one.
func NewRegistry(routes ...Route) *Registry {
	r := &Registry{byPath: make(map[string]Route, len(routes))}
	for _, route := range routes {
		if _, exists := r.byPath[route.Path]; !exists {
			r.routes = append(r.routes, route)
		} else {
			i := slices.IndexFunc(r.routes, func(x Route) bool { return x.Path == route.Path })
			r.routes[i] = route
		}
		r.byPath[route.Path] = route
	}
	return r
}

func (r *Registry) Routes() []Route {
	return slices.Clone(r.routes)
}

func (r *Registry) Lookup(path string) (Route, bool) {
	route, ok := r.byPath[path]
	return route, ok
}

// Link renders an anchor to dest. The anchor is boosted, so htmx swaps the
// page body in place instead of doing a full reload.
func (r *Registry) Link(dest string, children ...g.Node) g.Node {
	if _, ok := r.Lookup(dest); !ok {
		return g.NodeFunc(func(io.Writer) error {
			return fmt.Errorf("link to %q: %w", dest, ErrUnknownRoute)
		})
	}
	return A(Href(dest), g.Attr("hx-boost", "true"), g.Group(children))
}

// Validate reports every destination that does not resolve to a route.
func (r *Registry) Validate(dests ...string) error {
	var errs []error
	for _, dest := range dests {
		if _, ok := r.Lookup(dest); !ok {
			errs = append(errs, fmt.Errorf("destination %q: %w", dest, ErrUnknownRoute))
		}
	}
	return errors.Join(errs...)
}
