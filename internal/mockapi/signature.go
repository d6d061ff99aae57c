package mockapi

import (
	"encoding/base64"
	"fmt"
	"math/rand"
	"strings"
)

// scribbleSignature renders a randomized multi-segment curved scribble on a
// 100x50 canvas and returns it as an inline SVG data URI. It stands in for
// a captured signature wherever the seed data needs one.
func scribbleSignature(rng *rand.Rand) string {
	const w, h = 100, 50

	var path strings.Builder
	x := 5 + rng.Float64()*10
	y := 20 + rng.Float64()*10
	fmt.Fprintf(&path, "M%.1f,%.1f", x, y)

	steps := 5 + rng.Intn(4)
	for i := 0; i < steps; i++ {
		x += 8 + rng.Float64()*12
		y = 10 + rng.Float64()*30
		cx := x - 5 + rng.Float64()*10
		cy := 10 + rng.Float64()*30
		fmt.Fprintf(&path, " Q%.1f,%.1f %.1f,%.1f", cx, cy, x, y)
	}

	svg := fmt.Sprintf(
		"<svg xmlns='http://www.w3.org/2000/svg' viewBox='0 0 %d %d'><path d='%s' fill='none' stroke='white' stroke-width='2' stroke-linecap='round'/></svg>",
		w, h, path.String(),
	)
	return "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte(svg))
}
