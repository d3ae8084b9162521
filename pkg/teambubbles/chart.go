package teambubbles

import "io"

type FontSize string

const (
	FontSizeSmall      FontSize = "sm"
	FontSizeExtraSmall FontSize = "xs"
)

type Bubble struct {
	Team       string   `json:"team" yaml:"team"`
	TotalVotes int      `json:"totalVotes" yaml:"totalVotes"`
	TaskCount  int      `json:"taskCount" yaml:"taskCount"`
	Size       float64  `json:"size" yaml:"size"`
	Color      string   `json:"color" yaml:"color"`
	FontSize   FontSize `json:"fontSize" yaml:"fontSize"`
	Tooltip    string   `json:"tooltip" yaml:"tooltip"`
	Caption    string   `json:"caption" yaml:"caption"`
}

// Chart is the renderable result of one pass. Placeholder is set exactly
// when Bubbles is empty.
type Chart struct {
	Bubbles     []Bubble `json:"bubbles" yaml:"bubbles"`
	Placeholder string   `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
}

func (c *Chart) Empty() bool {
	return len(c.Bubbles) == 0
}

type Layout interface {
	Layout(aggregates []TeamAggregate, locale string) (*Chart, error)
}

type Renderer interface {
	ContentType() string
	Render(w io.Writer, chart *Chart) error
}

type RendererFactory func(format string) (Renderer, error)
