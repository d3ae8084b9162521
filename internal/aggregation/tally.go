package aggregation

import (
	"github.com/cafebazaar/teambubbles/pkg/teambubbles"
)

// tally accumulates per-team totals in first-encounter order.
type tally struct {
	items []*tallyItem
	index map[string]*tallyItem
}

type tallyItem struct {
	team  string
	votes int
	tasks int
}

func newTally() *tally {
	return &tally{index: make(map[string]*tallyItem)}
}

func (t *tally) add(team string, votes int) {
	if item, ok := t.index[team]; ok {
		item.votes = item.votes + votes
		item.tasks++
		return
	}

	item := &tallyItem{
		team:  team,
		votes: votes,
		tasks: 1,
	}
	t.items = append(t.items, item)
	t.index[team] = item
}

func (t *tally) empty() bool {
	return len(t.items) == 0
}

func (t *tally) aggregates() []teambubbles.TeamAggregate {
	result := make([]teambubbles.TeamAggregate, 0, len(t.items))

	for _, item := range t.items {
		result = append(result, teambubbles.TeamAggregate{
			Team:       item.team,
			TotalVotes: item.votes,
			TaskCount:  item.tasks,
		})
	}

	return result
}
