package render

import (
	"encoding/json"
	"io"

	"github.com/cafebazaar/teambubbles/pkg/teambubbles"
	"gopkg.in/yaml.v3"
)

type jsonRenderer struct{}

func NewJSON() teambubbles.Renderer {
	return jsonRenderer{}
}

func (jsonRenderer) ContentType() string {
	return "application/json"
}

func (jsonRenderer) Render(w io.Writer, chart *teambubbles.Chart) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(chart)
}

type yamlRenderer struct{}

func NewYAML() teambubbles.Renderer {
	return yamlRenderer{}
}

func (yamlRenderer) ContentType() string {
	return "application/yaml"
}

func (yamlRenderer) Render(w io.Writer, chart *teambubbles.Chart) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)

	if err := encoder.Encode(chart); err != nil {
		return err
	}

	return encoder.Close()
}
