package layout

import (
	"strconv"

	"github.com/cafebazaar/teambubbles/pkg/teambubbles"
	"golang.org/x/text/message"
)

type layout struct {
	defaultLocale string
}

type Option func(l *layout)

func WithDefaultLocale(locale string) Option {
	return func(l *layout) {
		l.defaultLocale = locale
	}
}

func New(options ...Option) teambubbles.Layout {
	result := &layout{}

	for _, option := range options {
		option(result)
	}

	return result
}

// Layout turns sorted aggregates into a chart. Order is preserved, so the
// first bubble is the one with the most votes.
func (l *layout) Layout(aggregates []teambubbles.TeamAggregate, locale string) (*teambubbles.Chart, error) {
	if locale == "" {
		locale = l.defaultLocale
	}

	tag, err := ParseLocale(locale)
	if err != nil {
		return nil, err
	}
	printer := message.NewPrinter(tag)

	if len(aggregates) == 0 {
		return &teambubbles.Chart{
			Bubbles:     []teambubbles.Bubble{},
			Placeholder: printer.Sprintf(placeholderKey),
		}, nil
	}

	maxVotes := MaxVotes(aggregates)
	bubbles := make([]teambubbles.Bubble, 0, len(aggregates))

	for _, a := range aggregates {
		size := Scale(a.TotalVotes, maxVotes)

		bubbles = append(bubbles, teambubbles.Bubble{
			Team:       a.Team,
			TotalVotes: a.TotalVotes,
			TaskCount:  a.TaskCount,
			Size:       size,
			Color:      ColorForTeam(a.Team),
			FontSize:   fontSizeFor(size),
			Tooltip:    printer.Sprintf(tooltipKey, a.Team, strconv.Itoa(a.TotalVotes), strconv.Itoa(a.TaskCount)),
			Caption:    a.Team,
		})
	}

	return &teambubbles.Chart{Bubbles: bubbles}, nil
}
