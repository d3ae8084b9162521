package render

import (
	"strings"

	"github.com/cafebazaar/teambubbles/pkg/teambubbles"
)

const (
	FormatHTML = "html"
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

var Formats = []string{FormatHTML, FormatText, FormatJSON, FormatYAML}

// New is a teambubbles.RendererFactory over the built-in formats.
func New(format string) (teambubbles.Renderer, error) {
	switch strings.ToLower(format) {
	case FormatHTML:
		return NewHTML(), nil

	case FormatText:
		return NewText(DefaultTextWidth), nil

	case FormatJSON:
		return NewJSON(), nil

	case FormatYAML:
		return NewYAML(), nil

	default:
		return nil, teambubbles.ErrUnknownFormat
	}
}
