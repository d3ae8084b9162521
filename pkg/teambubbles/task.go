package teambubbles

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Vote is a single vote entry. Its content is kept as decoded and never
// interpreted; any JSON or YAML value is accepted.
type Vote struct {
	Value interface{}
}

func (v Vote) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Value)
}

func (v *Vote) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &v.Value)
}

func (v Vote) MarshalYAML() (interface{}, error) {
	return v.Value, nil
}

func (v *Vote) UnmarshalYAML(node *yaml.Node) error {
	return node.Decode(&v.Value)
}

// Task is an idea as it arrives from a task source. Only Teams and the number
// of Votes are consumed by the aggregation.
type Task struct {
	ID    string   `json:"id" yaml:"id"`
	Title string   `json:"title,omitempty" yaml:"title,omitempty"`
	Teams []string `json:"teams,omitempty" yaml:"teams,omitempty"`
	Votes []Vote   `json:"votes" yaml:"votes"`
}

func (t Task) VoteCount() int {
	return len(t.Votes)
}
