package color

// Shade returns the color shifted lighter or darker by percent. The shift
// direction flips for light colors so a given percent produces a visually
// consistent contrast step on both light and dark base colors, and small
// shifts on very dark colors are doubled, since small additive deltas are
// barely visible on dark channels. Alpha passes through unchanged.
func Shade(c Color, percent float64) Color {
	avg := float64(int(c.R)+int(c.G)+int(c.B)) / 3

	if avg > 128 {
		percent = -percent
	}
	if percent < 25 && avg < 64 {
		percent *= 2
	}

	// Truncates toward zero, not rounds: 255*0.1 gives a delta of 25.
	delta := int(255 * percent / 100)

	c.R = shadeChannel(c.R, delta)
	c.G = shadeChannel(c.G, delta)
	c.B = shadeChannel(c.B, delta)
	return c
}

func shadeChannel(v uint8, delta int) uint8 {
	n := int(v) + delta
	if n < 0 {
		n = 0
	}
	if n > 255 {
		n = 255
	}
	return uint8(n)
}
