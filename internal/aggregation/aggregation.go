package aggregation

import (
	"sort"

	"github.com/cafebazaar/teambubbles/pkg/teambubbles"
)

type aggregator struct {
	nameTieBreak bool
}

type Option func(a *aggregator)

// WithNameTieBreak orders teams with equal vote totals by name instead of
// by the order in which they were first seen.
func WithNameTieBreak() Option {
	return func(a *aggregator) {
		a.nameTieBreak = true
	}
}

func New(options ...Option) teambubbles.Aggregator {
	result := &aggregator{}

	for _, option := range options {
		option(result)
	}

	return result
}

func (a *aggregator) Aggregate(tasks []teambubbles.Task) []teambubbles.TeamAggregate {
	t := newTally()

	for _, task := range tasks {
		if len(task.Teams) == 0 {
			continue
		}

		votes := task.VoteCount()
		for _, team := range uniqueTeams(task.Teams) {
			t.add(team, votes)
		}
	}

	if t.empty() {
		return []teambubbles.TeamAggregate{}
	}

	result := t.aggregates()
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].TotalVotes != result[j].TotalVotes {
			return result[i].TotalVotes > result[j].TotalVotes
		}

		if a.nameTieBreak {
			return result[i].Team < result[j].Team
		}

		return false
	})

	return result
}

func uniqueTeams(teams []string) []string {
	seen := make(map[string]struct{}, len(teams))
	result := make([]string, 0, len(teams))

	for _, team := range teams {
		if _, ok := seen[team]; ok {
			continue
		}
		seen[team] = struct{}{}
		result = append(result, team)
	}

	return result
}
