package render

// DefaultChanmA is the draw of one WS2812 channel at full scale.
const DefaultChanmA = 20.0

// ApplyWhiteCap scales any LED whose channel sum exceeds capFrac of full
// white (3*255) back down to that budget, keeping hue. capFrac <= 0 or >= 1
// leaves the frame untouched.
func ApplyWhiteCap(frame []RGB8, capFrac float64) {
	if capFrac <= 0 || capFrac >= 1 {
		return
	}
	budget := capFrac * 3 * 255
	for i, c := range frame {
		s := float64(c.R) + float64(c.G) + float64(c.B)
		if s > budget {
			frame[i] = scaleDown(c, budget/s)
		}
	}
}

// EstimateCurrent returns the frame's draw in amps assuming linear channels.
func EstimateCurrent(frame []RGB8, chanmA float64) float64 {
	var total float64
	for _, c := range frame {
		total += (float64(c.R) + float64(c.G) + float64(c.B)) / 255 * chanmA
	}
	return total / 1000
}

// scaleDown truncates so the capped sum never exceeds the budget.
func scaleDown(c RGB8, k float64) RGB8 {
	return RGB8{
		R: uint8(float64(c.R) * k),
		G: uint8(float64(c.G) * k),
		B: uint8(float64(c.B) * k),
	}
}
