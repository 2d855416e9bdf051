package layout

import (
	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"
)

const (
	siteName   = "Blend & Beam"
	stylesheet = "/static/css/site.css"
	htmxSrc    = "https://unpkg.com/htmx.org@2.0.4"
)

type Props struct {
	Title       string
	Description string
	Body        g.Node
	Footer      g.Node
}

// Page wraps body in the site document. A nil Footer is left out.
func Page(p Props) g.Node {
	title := siteName
	if p.Title != "" {
		title = p.Title + " | " + siteName
	}

	return c.HTML5(c.HTML5Props{
		Title:       title,
		Description: p.Description,
		Language:    "en",
		Head: []g.Node{
			Link(Rel("stylesheet"), Href(stylesheet)),
			Script(Src(htmxSrc), Defer()),
		},
		Body: []g.Node{
			header(),
			Main(ID("content"), Class("site-main"), p.Body),
			p.Footer,
		},
	})
}

func header() g.Node {
	return Header(Class("site-header"),
		A(Class("site-brand"), Href("/"), g.Attr("hx-boost", "true"), g.Text(siteName)),
	)
}

// ErrorPage is rendered when a page could not be built. It has no footer,
// since the footer itself may be what failed.
func ErrorPage(status int, message string) g.Node {
	return Page(Props{
		Title: message,
		Body: Section(Class("error"),
			H1(g.Textf("%d", status)),
			P(g.Text(message)),
			A(Href("/"), g.Text("Back to the homepage")),
		),
	})
}
