// Package defaults provides the standalone collaborator implementations
// used by cmd/exprc and cmd/exprd when no host map style engine is
// wired in: a small CSS-ish color parser and linear interpolation for
// number, color and array outputs.
package defaults

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/styleexpr/exprlang/internal/compile"
	"github.com/styleexpr/exprlang/internal/etypes"
)

var named = map[string]etypes.RGBA{
	"black":       {R: 0, G: 0, B: 0, A: 1},
	"white":       {R: 255, G: 255, B: 255, A: 1},
	"red":         {R: 255, G: 0, B: 0, A: 1},
	"green":       {R: 0, G: 128, B: 0, A: 1},
	"blue":        {R: 0, G: 0, B: 255, A: 1},
	"transparent": {R: 0, G: 0, B: 0, A: 0},
}

// ParseColor supports #rgb, #rrggbb, #rrggbbaa and a handful of named
// colors - enough to exercise curve/color builtins without pulling in a
// full CSS color grammar.
func ParseColor(s string) (etypes.RGBA, bool) {
	s = strings.TrimSpace(strings.ToLower(s))
	if rgba, ok := named[s]; ok {
		return rgba, true
	}
	if strings.HasPrefix(s, "#") {
		return parseHex(s[1:])
	}
	return etypes.RGBA{}, false
}

func parseHex(hex string) (etypes.RGBA, bool) {
	expand := func(c byte) string { return string([]byte{c, c}) }
	switch len(hex) {
	case 3:
		hex = expand(hex[0]) + expand(hex[1]) + expand(hex[2])
	case 4:
		hex = expand(hex[0]) + expand(hex[1]) + expand(hex[2]) + expand(hex[3])
	case 6, 8:
	default:
		return etypes.RGBA{}, false
	}

	channel := func(i int) (float64, bool) {
		v, err := strconv.ParseUint(hex[i:i+2], 16, 8)
		if err != nil {
			return 0, false
		}
		return float64(v), true
	}

	r, ok := channel(0)
	if !ok {
		return etypes.RGBA{}, false
	}
	g, ok := channel(2)
	if !ok {
		return etypes.RGBA{}, false
	}
	b, ok := channel(4)
	if !ok {
		return etypes.RGBA{}, false
	}
	a := float64(255)
	if len(hex) == 8 {
		if v, ok := channel(6); ok {
			a = v
		}
	}
	return etypes.RGBA{R: r, G: g, B: b, A: a / 255}, true
}

func InterpolateNumber(a, b, t float64) float64 { return a + (b-a)*t }

func InterpolateColor(a, b etypes.RGBA, t float64) etypes.RGBA {
	return etypes.RGBA{
		R: InterpolateNumber(a.R, b.R, t),
		G: InterpolateNumber(a.G, b.G, t),
		B: InterpolateNumber(a.B, b.B, t),
		A: InterpolateNumber(a.A, b.A, t),
	}
}

func InterpolateArray(a, b []float64, t float64) []float64 {
	if len(a) != len(b) {
		panic(fmt.Sprintf("interpolate.array: mismatched lengths %d, %d", len(a), len(b)))
	}
	out := make([]float64, len(a))
	for i := range a {
		out[i] = InterpolateNumber(a[i], b[i], t)
	}
	return out
}

// Options returns a compile.Options wired to this package's collaborators.
func Options() compile.Options {
	return compile.Options{
		ParseColor:       ParseColor,
		InterpolateNum:   InterpolateNumber,
		InterpolateColor: InterpolateColor,
		InterpolateArray: InterpolateArray,
	}
}
