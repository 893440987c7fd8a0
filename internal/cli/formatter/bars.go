package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderScoreBar renders a 0-100 score as a bar like [████░░░░]  84.
// The bar is colored by score: green >=70, yellow 40-69, red <40.
func RenderScoreBar(score int, width int) string {
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	if width < 2 {
		width = 2
	}

	filled := score * width / 100
	if filled > width {
		filled = width
	}
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	if score < 40 {
		style = StyleRed
	} else if score < 70 {
		style = StyleYellow
	}

	return fmt.Sprintf("[%s] %3d", style.Render(bar), score)
}

// RenderHourBar renders a quantity bar scaled against a maximum, used for
// the 7-day workload chart. Zero max yields an empty bar.
func RenderHourBar(hours, max float64, width int) string {
	if width < 2 {
		width = 2
	}
	filled := 0
	if max > 0 && hours > 0 {
		filled = int(hours / max * float64(width))
		if filled > width {
			filled = width
		}
		if filled == 0 {
			filled = 1
		}
	}
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)
	return StyleBlue.Render(bar)
}
