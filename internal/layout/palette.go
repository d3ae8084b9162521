package layout

import (
	"unicode"
	"unicode/utf16"
)

var Palette = [...]string{
	"#4dabf7",
	"#63e6be",
	"#ffd43b",
	"#ff8787",
	"#9775fa",
	"#ffa94d",
	"#69db7c",
	"#a5d8ff",
}

// ColorForTeam sums the leading UTF-16 code unit of every character in the
// team name and picks a palette entry by that sum.
func ColorForTeam(team string) string {
	sum := 0
	for _, r := range team {
		sum += leadingCodeUnit(r)
	}

	if sum < 0 {
		sum = -sum
	}

	return Palette[sum%len(Palette)]
}

func leadingCodeUnit(r rune) int {
	if high, _ := utf16.EncodeRune(r); high != unicode.ReplacementChar {
		return int(high)
	}

	return int(r)
}
