package teambubbles

type TeamAggregate struct {
	Team       string `json:"team" yaml:"team"`
	TotalVotes int    `json:"totalVotes" yaml:"totalVotes"`
	TaskCount  int    `json:"taskCount" yaml:"taskCount"`
}

type Aggregator interface {
	Aggregate(tasks []Task) []TeamAggregate
}
