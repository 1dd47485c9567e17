package overrides

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML implements custom YAML unmarshaling for Template.
// Accepts:
//   - Scalar: "this.c"
//   - Map mirroring the XML form: {template: "this.c"}
func (t *Template) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string

		err := node.Decode(&str)
		if err != nil {
			return err
		}

		t.Text = str

		return nil

	case yaml.MappingNode:
		var m struct {
			Template *string `yaml:"template"`
		}

		err := node.Decode(&m)
		if err != nil {
			return err
		}

		if m.Template == nil {
			return errors.New("expected {template: ...} mapping")
		}

		t.Text = *m.Template

		return nil

	default:
		return fmt.Errorf("expected string or {template: ...}, got %v", node.Kind)
	}
}

// MarshalYAML implements custom YAML marshaling for Template.
// Outputs the plain scalar form.
func (t Template) MarshalYAML() (any, error) {
	return t.Text, nil
}
