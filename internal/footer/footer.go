// Package footer renders the storefront's site footer: brand block, link
// groups, contact details, social icons and the copyright bar.
//
// Everything in the footer is static except the copyright year, which is
// read from the clock each time Render is called.
package footer

import (
	"fmt"
	"slices"
	"time"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/blendandbeam/storefront/internal/icons"
)

const (
	contactIconSize = 16
	socialIconSize  = 18
)

// Navigator renders a link to a site destination.
type Navigator interface {
	Link(destination string, children ...g.Node) g.Node
}

// IconSet renders a glyph at the given pixel size.
type IconSet interface {
	Icon(glyph icons.Glyph, size int) g.Node
}

type Clock func() time.Time

func Year(clock Clock) int {
	if clock == nil {
		clock = time.Now
	}
	return clock().Year()
}

func CopyrightLine(year int) string {
	return fmt.Sprintf("© %d %s. All rights reserved.", year, BrandName)
}

type View struct {
	clock   Clock
	nav     Navigator
	icons   IconSet
	groups  []LinkGroup
	contact ContactInfo
	socials []SocialLink
}

type ViewOption func(*View)

func WithClock(clock Clock) ViewOption {
	return func(v *View) { v.clock = clock }
}

func WithLinkGroups(groups []LinkGroup) ViewOption {
	return func(v *View) { v.groups = cloneGroups(groups) }
}

func WithContact(c ContactInfo) ViewOption {
	return func(v *View) { v.contact = c }
}

func WithSocials(links []SocialLink) ViewOption {
	return func(v *View) { v.socials = slices.Clone(links) }
}

func New(nav Navigator, iconSet IconSet, opts ...ViewOption) *View {
	v := &View{
		clock:   time.Now,
		nav:     nav,
		icons:   iconSet,
		groups:  LinkGroups(),
		contact: Contact(),
		socials: Socials(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Destinations lists every link target in group order.
func (v *View) Destinations() []string {
	var dests []string
	for _, group := range v.groups {
		for _, entry := range group.Entries {
			dests = append(dests, entry.Destination)
		}
	}
	return dests
}

func (v *View) Render() g.Node {
	year := Year(v.clock)

	return Footer(Class("site-footer"),
		Div(Class("footer-grid"),
			v.brand(),
			g.Map(v.groups, v.linkGroup),
			v.contactBlock(),
		),
		Div(Class("footer-bottom"),
			P(Class("copyright"), g.Text(CopyrightLine(year))),
		),
	)
}

func (v *View) brand() g.Node {
	return Div(Class("footer-brand"), g.Attr("data-region", "brand"),
		Span(Class("brand-mark"), Aria("hidden", "true"), g.Text(BrandMark)),
		H2(Class("brand-name"), g.Text(BrandName)),
		P(Class("brand-tagline"), g.Text(Tagline)),
		P(Class("brand-description max-sm:hidden"), g.Text(ShortDescription)),
	)
}

func (v *View) linkGroup(group LinkGroup) g.Node {
	return Nav(Class("footer-links"), g.Attr("data-region", "links"), Aria("label", group.Title),
		H3(g.Text(group.Title)),
		Ul(
			g.Map(group.Entries, func(e LinkEntry) g.Node {
				return Li(v.nav.Link(e.Destination, g.Text(e.Label)))
			}),
		),
	)
}

func (v *View) contactBlock() g.Node {
	return Div(Class("footer-contact"), g.Attr("data-region", "contact"),
		H3(g.Text("Get in touch")),
		Ul(
			v.contactRow(icons.Phone, v.contact.Phone),
			v.contactRow(icons.Mail, v.contact.Email),
			v.contactRow(icons.MapPin, v.contact.Location),
		),
		Div(Class("footer-social"),
			g.Map(v.socials, func(s SocialLink) g.Node {
				return A(Class("social-link"), Href(s.Href), Aria("label", s.AccessibleLabel),
					Target("_blank"), Rel("noopener noreferrer"),
					v.icons.Icon(icons.Glyph(s.Platform), socialIconSize),
				)
			}),
		),
	)
}

func (v *View) contactRow(glyph icons.Glyph, text string) g.Node {
	return Li(Class("contact-row"),
		v.icons.Icon(glyph, contactIconSize),
		Span(g.Text(text)),
	)
}
