package layout

import (
	"github.com/cafebazaar/teambubbles/pkg/teambubbles"
)

// Bubble diameters in pixels.
const (
	MinSize = 60.0
	MaxSize = 180.0

	// Bubbles at or below this diameter use the smaller font.
	SmallFontThreshold = 100.0
)

// Scale maps votes linearly onto [MinSize, MaxSize] relative to maxVotes.
func Scale(votes, maxVotes int) float64 {
	if maxVotes == 0 {
		return MinSize
	}

	ratio := float64(votes) / float64(maxVotes)
	return MinSize + (MaxSize-MinSize)*ratio
}

// MaxVotes returns the highest TotalVotes among aggregates, or 0 when there are none.
func MaxVotes(aggregates []teambubbles.TeamAggregate) int {
	result := 0

	for _, a := range aggregates {
		if a.TotalVotes > result {
			result = a.TotalVotes
		}
	}

	return result
}

func fontSizeFor(size float64) teambubbles.FontSize {
	if size > SmallFontThreshold {
		return teambubbles.FontSizeSmall
	}

	return teambubbles.FontSizeExtraSmall
}
