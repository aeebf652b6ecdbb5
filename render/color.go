package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ParseColor converts a CSS colour string (#rgb, #rrggbb, #rrggbbaa or
// rgba(r,g,b,a)) into a drawing.Color. Unparseable input yields opaque black.
func ParseColor(s string) drawing.Color {
	s = strings.TrimSpace(s)
	if s == "" {
		return drawing.ColorBlack
	}
	if strings.HasPrefix(s, "#") {
		hex := s[1:]
		if len(hex) == 8 {
			c := drawing.ColorFromHex(hex[:6])
			if a, err := strconv.ParseUint(hex[6:], 16, 8); err == nil {
				c.A = uint8(a)
			}
			return c
		}
		return drawing.ColorFromHex(hex)
	}
	lower := strings.ToLower(s)
	if strings.HasPrefix(lower, "rgba(") || strings.HasPrefix(lower, "rgb(") {
		inner := lower[strings.Index(lower, "(")+1:]
		inner = strings.TrimSuffix(inner, ")")
		parts := strings.Split(inner, ",")
		if len(parts) >= 3 {
			r, _ := strconv.Atoi(strings.TrimSpace(parts[0]))
			g, _ := strconv.Atoi(strings.TrimSpace(parts[1]))
			b, _ := strconv.Atoi(strings.TrimSpace(parts[2]))
			a := 1.0
			if len(parts) == 4 {
				a, _ = strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
			}
			return drawing.Color{R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(a * 255)}
		}
	}
	switch lower {
	case "white":
		return drawing.ColorWhite
	case "black":
		return drawing.ColorBlack
	case "red":
		return drawing.ColorRed
	case "green":
		return drawing.ColorGreen
	case "blue":
		return drawing.ColorBlue
	case "transparent", "none":
		return drawing.ColorTransparent
	}
	return drawing.ColorBlack
}

// cssColor renders a drawing.Color for SVG attributes: #rrggbb when opaque,
// rgba() otherwise.
func cssColor(c drawing.Color) string {
	if c.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("rgba(%d,%d,%d,%.2f)", c.R, c.G, c.B, float64(c.A)/255)
}
