package icons

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type Glyph string

const (
	Phone     Glyph = "phone"
	Mail      Glyph = "mail"
	MapPin    Glyph = "map-pin"
	Facebook  Glyph = "facebook"
	Instagram Glyph = "instagram"
)

const DefaultSize = 18

var ErrUnknownGlyph = errors.New("unknown glyph")

// Outline shapes drawn on a 24x24 grid.
var shapes = map[Glyph]g.Group{
	Phone: {
		path("M22 16.92v3a2 2 0 0 1-2.18 2 19.79 19.79 0 0 1-8.63-3.07 19.5 19.5 0 0 1-6-6 19.79 19.79 0 0 1-3.07-8.67A2 2 0 0 1 4.11 2h3a2 2 0 0 1 2 1.72 12.84 12.84 0 0 0 .7 2.81 2 2 0 0 1-.45 2.11L8.09 9.91a16 16 0 0 0 6 6l1.27-1.27a2 2 0 0 1 2.11-.45 12.84 12.84 0 0 0 2.81.7A2 2 0 0 1 22 16.92z"),
	},
	Mail: {
		g.El("rect", g.Attr("x", "2"), g.Attr("y", "4"), g.Attr("width", "20"), g.Attr("height", "16"), g.Attr("rx", "2")),
		path("m22 7-8.97 5.7a1.94 1.94 0 0 1-2.06 0L2 7"),
	},
	MapPin: {
		path("M20 10c0 6-8 12-8 12s-8-6-8-12a8 8 0 0 1 16 0Z"),
		g.El("circle", g.Attr("cx", "12"), g.Attr("cy", "10"), g.Attr("r", "3")),
	},
	Facebook: {
		path("M18 2h-3a5 5 0 0 0-5 5v3H7v4h3v8h4v-8h3l1-4h-4V7a1 1 0 0 1 1-1h3z"),
	},
	Instagram: {
		g.El("rect", g.Attr("x", "2"), g.Attr("y", "2"), g.Attr("width", "20"), g.Attr("height", "20"), g.Attr("rx", "5"), g.Attr("ry", "5")),
		path("M16 11.37A4 4 0 1 1 12.63 8 4 4 0 0 1 16 11.37z"),
		g.El("line", g.Attr("x1", "17.5"), g.Attr("x2", "17.51"), g.Attr("y1", "6.5"), g.Attr("y2", "6.5")),
	},
}

func path(d string) g.Node {
	return g.El("path", g.Attr("d", d))
}

// Set renders glyphs as inline SVG that inherits the surrounding text colour.
type Set struct{}

func (Set) Icon(glyph Glyph, size int) g.Node {
	shape, ok := shapes[glyph]
	if !ok {
		return g.NodeFunc(func(io.Writer) error {
			return fmt.Errorf("icon %q: %w", glyph, ErrUnknownGlyph)
		})
	}
	if size <= 0 {
		size = DefaultSize
	}
	px := strconv.Itoa(size)

	return g.El("svg",
		g.Attr("xmlns", "http://www.w3.org/2000/svg"),
		Width(px), Height(px),
		g.Attr("viewBox", "0 0 24 24"),
		g.Attr("fill", "none"),
		g.Attr("stroke", "currentColor"),
		g.Attr("stroke-width", "2"),
		g.Attr("stroke-linecap", "round"),
		g.Attr("stroke-linejoin", "round"),
		Class("icon icon-"+string(glyph)),
		Aria("hidden", "true"),
		shape,
	)
}

// Glyphs lists every glyph the set can draw.
func Glyphs() []Glyph {
	return []Glyph{Phone, Mail, MapPin, Facebook, Instagram}
}
