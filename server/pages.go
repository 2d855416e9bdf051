package server

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/blendandbeam/storefront/internal/nav"
)

func pageTitle(route nav.Route) string {
	if route.Path == "/" {
		return ""
	}
	return route.Title
}

func pageBody(route nav.Route) g.Node {
	if route.Path == "/" {
		return Section(Class("hero"),
			H1(g.Text("Blend & Beam")),
			P(Class("lead"), g.Text(route.Summary)),
		)
	}
	return Section(Class("page"),
		H1(g.Text(route.Title)),
		P(Class("lead"), g.Text(route.Summary)),
	)
}
