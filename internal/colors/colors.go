// Package colors is the color keyword table used by the lint rules.
//
// The keyword set is the CSS named-color list. Channel values are resolved
// once, on first use, through csscolorparser so the table never drifts from
// what browsers render.
package colors

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/mazznoer/csscolorparser"
)

// RGB is a 24-bit color.
type RGB struct {
	R, G, B uint8
}

var (
	hexPattern    = regexp.MustCompile(`(?i)^#(?:[0-9a-f]{3}|[0-9a-f]{6})$`)
	hexRunPattern = regexp.MustCompile(`(?i)^#[0-9a-f]{3,6}$`)
)

// keywordNames lists the CSS named colors. "transparent" is absent: it
// carries alpha.
var keywordNames = []string{
	"aliceblue", "antiquewhite", "aqua", "aquamarine", "azure",
	"beige", "bisque", "black", "blanchedalmond", "blue",
	"blueviolet", "brown", "burlywood", "cadetblue", "chartreuse",
	"chocolate", "coral", "cornflowerblue", "cornsilk", "crimson",
	"cyan", "darkblue", "darkcyan", "darkgoldenrod", "darkgray",
	"darkgreen", "darkgrey", "darkkhaki", "darkmagenta", "darkolivegreen",
	"darkorange", "darkorchid", "darkred", "darksalmon", "darkseagreen",
	"darkslateblue", "darkslategray", "darkslategrey", "darkturquoise", "darkviolet",
	"deeppink", "deepskyblue", "dimgray", "dimgrey", "dodgerblue",
	"firebrick", "floralwhite", "forestgreen", "fuchsia", "gainsboro",
	"ghostwhite", "gold", "goldenrod", "gray", "green",
	"greenyellow", "grey", "honeydew", "hotpink", "indianred",
	"indigo", "ivory", "khaki", "lavender", "lavenderblush",
	"lawngreen", "lemonchiffon", "lightblue", "lightcoral", "lightcyan",
	"lightgoldenrodyellow", "lightgray", "lightgreen", "lightgrey", "lightpink",
	"lightsalmon", "lightseagreen", "lightskyblue", "lightslategray", "lightslategrey",
	"lightsteelblue", "lightyellow", "lime", "limegreen", "linen",
	"magenta", "maroon", "mediumaquamarine", "mediumblue", "mediumorchid",
	"mediumpurple", "mediumseagreen", "mediumslateblue", "mediumspringgreen", "mediumturquoise",
	"mediumvioletred", "midnightblue", "mintcream", "mistyrose", "moccasin",
	"navajowhite", "navy", "oldlace", "olive", "olivedrab",
	"orange", "orangered", "orchid", "palegoldenrod", "palegreen",
	"paleturquoise", "palevioletred", "papayawhip", "peachpuff", "peru",
	"pink", "plum", "powderblue", "purple", "rebeccapurple",
	"red", "rosybrown", "royalblue", "saddlebrown", "salmon",
	"sandybrown", "seagreen", "seashell", "sienna", "silver",
	"skyblue", "slateblue", "slategray", "slategrey", "snow",
	"springgreen", "steelblue", "tan", "teal", "thistle",
	"tomato", "turquoise", "violet", "wheat", "white",
	"whitesmoke", "yellow", "yellowgreen",
}

// table maps lower-case keyword to color. Built once, never mutated.
var table = sync.OnceValue(func() map[string]RGB {
	m := make(map[string]RGB, len(keywordNames))
	for _, name := range keywordNames {
		c, err := csscolorparser.Parse(name)
		if err != nil {
			continue
		}
		m[name] = RGB{R: channel(c.R), G: channel(c.G), B: channel(c.B)}
	}
	return m
})

func channel(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}

// Lookup returns the canonical hex code for a color keyword, matched
// case-insensitively.
func Lookup(word string) (string, bool) {
	c, ok := Keyword(word)
	if !ok {
		return "", false
	}
	return ToHex(c), true
}

// Keyword returns the color for a keyword, matched case-insensitively.
func Keyword(word string) (RGB, bool) {
	c, ok := table()[strings.ToLower(word)]
	return c, ok
}

// IsKeyword reports whether word is a known color keyword.
func IsKeyword(word string) bool {
	_, ok := Keyword(word)
	return ok
}

// IsHex reports whether s is a "#rgb" or "#rrggbb" literal.
func IsHex(s string) bool {
	return hexPattern.MatchString(s)
}

// IsColor reports whether s reads as a color: a "#" followed by three to
// six hex digits, or a color keyword.
func IsColor(s string) bool {
	return hexRunPattern.MatchString(s) || IsKeyword(s)
}

// Keywords returns all keyword names in sorted order.
func Keywords() []string {
	names := make([]string, 0, len(table()))
	for name := range table() {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ToHex serializes c in its shortest form: "#abc" when every channel's two
// hex digits are equal, "#aabbcd" otherwise. Digits are lower case.
func ToHex(c RGB) string {
	if short(c.R) && short(c.G) && short(c.B) {
		return fmt.Sprintf("#%x%x%x", c.R&0xf, c.G&0xf, c.B&0xf)
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func short(v uint8) bool {
	return v>>4 == v&0xf
}

// ParseHex parses a "#rgb" or "#rrggbb" literal.
func ParseHex(s string) (RGB, error) {
	if !IsHex(s) {
		return RGB{}, fmt.Errorf("invalid hex color %q", s)
	}
	c, err := csscolorparser.Parse(s)
	if err != nil {
		return RGB{}, fmt.Errorf("parse hex color %q: %w", s, err)
	}
	return RGB{R: channel(c.R), G: channel(c.G), B: channel(c.B)}, nil
}

// Canonical re-serializes a hex literal or keyword in shortest hex form.
// Canonical(Canonical(s)) == Canonical(s).
func Canonical(s string) (string, bool) {
	if c, ok := Keyword(s); ok {
		return ToHex(c), true
	}
	c, err := ParseHex(s)
	if err != nil {
		return "", false
	}
	return ToHex(c), true
}
