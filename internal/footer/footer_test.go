package footer

import (
	"bytes"
	"errors"
	"html/template"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"testing"
	"time"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/blendandbeam/storefront/internal/icons"
	"github.com/blendandbeam/storefront/internal/nav"
)

var routePaths = []string{"/", "/new-arrivals", "/shops", "/about", "/contact", "/faq", "/returns", "/privacy"}

type recordingNav struct {
	destinations []string
}

func (n *recordingNav) Link(dest string, children ...g.Node) g.Node {
	n.destinations = append(n.destinations, dest)
	return A(Href(dest), g.Group(children))
}

type recordingIcons struct {
	glyphs []icons.Glyph
}

func (i *recordingIcons) Icon(glyph icons.Glyph, size int) g.Node {
	i.glyphs = append(i.glyphs, glyph)
	return g.El("i", g.Attr("data-glyph", string(glyph)), g.Attr("data-size", strconv.Itoa(size)))
}

func fixedClock(year int) Clock {
	return func() time.Time {
		return time.Date(year, time.June, 15, 12, 0, 0, 0, time.UTC)
	}
}

func renderView(t *testing.T, v *View) string {
	t.Helper()
	var buf bytes.Buffer
	if err := v.Render().Render(&buf); err != nil {
		t.Fatalf("render footer: %v", err)
	}
	return buf.String()
}

func assertInOrder(t *testing.T, out string, parts ...string) {
	t.Helper()
	last := -1
	for _, part := range parts {
		idx := strings.Index(out, part)
		if idx == -1 {
			t.Errorf("expected output to contain %q", part)
			return
		}
		if idx <= last {
			t.Errorf("expected %q after previous entries", part)
			return
		}
		last = idx
	}
}

func TestLinkGroups(t *testing.T) {
	groups := LinkGroups()
	if len(groups) != 2 {
		t.Fatalf("expected 2 link groups, got %d", len(groups))
	}

	want := []LinkGroup{
		{Title: "Explore", Entries: []LinkEntry{
			{"Home", "/"}, {"New Arrivals", "/new-arrivals"}, {"Shops", "/shops"}, {"About Us", "/about"},
		}},
		{Title: "Support", Entries: []LinkEntry{
			{"Contact", "/contact"}, {"FAQ", "/faq"}, {"Returns", "/returns"}, {"Privacy Policy", "/privacy"},
		}},
	}
	for i, group := range groups {
		if group.Title != want[i].Title {
			t.Errorf("group %d: expected title %q, got %q", i, want[i].Title, group.Title)
		}
		if !slices.Equal(group.Entries, want[i].Entries) {
			t.Errorf("group %q: expected entries %v, got %v", group.Title, want[i].Entries, group.Entries)
		}
	}
}

func TestLinkGroupsReturnsCopy(t *testing.T) {
	groups := LinkGroups()
	groups[0].Entries[0].Destination = "/changed"

	if LinkGroups()[0].Entries[0].Destination != "/" {
		t.Error("mutating the returned groups changed the footer configuration")
	}
}

func TestRenderLinkGroupsInOrder(t *testing.T) {
	out := renderView(t, New(&recordingNav{}, &recordingIcons{}, WithClock(fixedClock(2025))))

	if n := strings.Count(out, `data-region="links"`); n != 2 {
		t.Fatalf("expected 2 link groups, got %d", n)
	}
	assertInOrder(t, out,
		`aria-label="Explore"`,
		`<a href="/">Home</a>`,
		`<a href="/new-arrivals">New Arrivals</a>`,
		`<a href="/shops">Shops</a>`,
		`<a href="/about">About Us</a>`,
		`aria-label="Support"`,
		`<a href="/contact">Contact</a>`,
		`<a href="/faq">FAQ</a>`,
		`<a href="/returns">Returns</a>`,
		`<a href="/privacy">Privacy Policy</a>`,
	)
}

func TestRenderContactInOrder(t *testing.T) {
	ic := &recordingIcons{}
	out := renderView(t, New(&recordingNav{}, ic, WithClock(fixedClock(2025))))

	if n := strings.Count(out, `class="contact-row"`); n != 3 {
		t.Fatalf("expected 3 contact rows, got %d", n)
	}
	assertInOrder(t, out,
		`<i data-glyph="phone" data-size="16"></i><span>+233 55 467 1026</span>`,
		`<i data-glyph="mail" data-size="16"></i><span>info@blendandbeam.com</span>`,
		`<i data-glyph="map-pin" data-size="16"></i><span>Accra, Ghana</span>`,
	)
}

func TestCopyrightLine(t *testing.T) {
	if got := CopyrightLine(2024); got != "© 2024 Blend & Beam. All rights reserved." {
		t.Errorf("unexpected copyright line %q", got)
	}
}

func TestRenderCopyrightFollowsClock(t *testing.T) {
	for _, year := range []int{2024, 2030} {
		t.Run(strconv.Itoa(year), func(t *testing.T) {
			out := renderView(t, New(&recordingNav{}, &recordingIcons{}, WithClock(fixedClock(year))))

			want := `<p class="copyright">` + template.HTMLEscapeString(CopyrightLine(year)) + `</p>`
			if !strings.Contains(out, want) {
				t.Errorf("expected %q in output", want)
			}
		})
	}
}

func TestRenderReadsClockEveryTime(t *testing.T) {
	now := time.Date(2025, time.December, 31, 23, 59, 59, 0, time.UTC)
	v := New(&recordingNav{}, &recordingIcons{}, WithClock(func() time.Time { return now }))

	if out := renderView(t, v); !strings.Contains(out, "© 2025 ") {
		t.Fatal("expected 2025 before the year boundary")
	}

	now = now.Add(2 * time.Second)
	if out := renderView(t, v); !strings.Contains(out, "© 2026 ") {
		t.Error("expected 2026 on the first render after the year boundary")
	}
}

func TestYearDefaultsToWallClock(t *testing.T) {
	before := time.Now().Year()
	got := Year(nil)
	after := time.Now().Year()

	if got != before && got != after {
		t.Errorf("expected current year, got %d", got)
	}
}

func TestRenderDestinationsResolve(t *testing.T) {
	n := &recordingNav{}
	renderView(t, New(n, &recordingIcons{}, WithClock(fixedClock(2025))))

	if len(n.destinations) != len(routePaths) {
		t.Fatalf("expected %d links, got %d", len(routePaths), len(n.destinations))
	}
	for _, dest := range n.destinations {
		if dest == "" {
			t.Error("link with empty destination")
		}
		if !slices.Contains(routePaths, dest) {
			t.Errorf("unexpected destination %q", dest)
		}
	}
}

func TestDestinationsMatchSiteRoutes(t *testing.T) {
	v := New(nav.NewRegistry(nav.Routes()...), icons.Set{})

	if !slices.Equal(v.Destinations(), routePaths) {
		t.Errorf("expected destinations %v, got %v", routePaths, v.Destinations())
	}
	if err := nav.NewRegistry(nav.Routes()...).Validate(v.Destinations()...); err != nil {
		t.Errorf("footer links to unknown routes: %v", err)
	}
}

func TestRenderIsIdempotent(t *testing.T) {
	v := New(nav.NewRegistry(nav.Routes()...), icons.Set{}, WithClock(fixedClock(2025)))

	first := renderView(t, v)
	second := renderView(t, v)
	if first != second {
		t.Error("expected identical output for renders with the same clock reading")
	}
}

func TestRenderSocialLinks(t *testing.T) {
	ic := &recordingIcons{}
	out := renderView(t, New(&recordingNav{}, ic, WithClock(fixedClock(2025))))

	if n := strings.Count(out, `class="social-link"`); n != 2 {
		t.Fatalf("expected 2 social links, got %d", n)
	}

	var social []icons.Glyph
	for _, glyph := range ic.glyphs {
		if glyph == icons.Facebook || glyph == icons.Instagram {
			social = append(social, glyph)
		}
	}
	if !slices.Equal(social, []icons.Glyph{icons.Facebook, icons.Instagram}) {
		t.Errorf("expected facebook and instagram icons, got %v", social)
	}

	labels := regexp.MustCompile(`class="social-link" href="[^"]*" aria-label="([^"]*)"`).FindAllStringSubmatch(out, -1)
	if len(labels) != 2 {
		t.Fatalf("expected 2 labelled social links, got %d", len(labels))
	}
	for _, m := range labels {
		if strings.TrimSpace(m[1]) == "" {
			t.Error("social link with empty accessible label")
		}
	}
}

func TestSocialsHaveLabels(t *testing.T) {
	for _, s := range Socials() {
		if s.AccessibleLabel == "" {
			t.Errorf("%s has no accessible label", s.Platform)
		}
		if s.Href == "" {
			t.Errorf("%s has no href", s.Platform)
		}
	}
}

func TestRenderHidesDescriptionOnNarrowScreens(t *testing.T) {
	out := renderView(t, New(&recordingNav{}, &recordingIcons{}, WithClock(fixedClock(2025))))

	want := `<p class="brand-description max-sm:hidden">` + ShortDescription + `</p>`
	if !strings.Contains(out, want) {
		t.Errorf("expected %q in output", want)
	}
	if !strings.Contains(out, `<p class="brand-tagline">`+Tagline+`</p>`) {
		t.Error("expected tagline to render on every breakpoint")
	}
}

func TestRenderWithSubstitutedData(t *testing.T) {
	v := New(&recordingNav{}, &recordingIcons{},
		WithClock(fixedClock(2025)),
		WithLinkGroups([]LinkGroup{{Title: "Help", Entries: []LinkEntry{{Label: "FAQ", Destination: "/faq"}}}}),
		WithContact(ContactInfo{Phone: "000", Email: "a@b.c", Location: "Kumasi"}),
		WithSocials(nil),
	)
	out := renderView(t, v)

	if n := strings.Count(out, `data-region="links"`); n != 1 {
		t.Errorf("expected 1 link group, got %d", n)
	}
	assertInOrder(t, out, "<span>000</span>", "<span>a@b.c</span>", "<span>Kumasi</span>")
	if strings.Contains(out, "social-link") {
		t.Error("expected no social links")
	}
}

func TestRenderPropagatesCollaboratorErrors(t *testing.T) {
	v := New(nav.NewRegistry(nav.Route{Path: "/"}), icons.Set{}, WithClock(fixedClock(2025)))

	var buf bytes.Buffer
	err := v.Render().Render(&buf)
	if !errors.Is(err, nav.ErrUnknownRoute) {
		t.Fatalf("expected ErrUnknownRoute, got %v", err)
	}

	v = New(nav.NewRegistry(nav.Routes()...), icons.Set{},
		WithClock(fixedClock(2025)),
		WithSocials([]SocialLink{{Platform: "tiktok", Href: "#", AccessibleLabel: "TikTok"}}),
	)
	buf.Reset()
	err = v.Render().Render(&buf)
	if !errors.Is(err, icons.ErrUnknownGlyph) {
		t.Fatalf("expected ErrUnknownGlyph, got %v", err)
	}
}
