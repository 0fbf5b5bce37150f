package cmdutil

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ghodss/yaml"
)

// Output formats of commands that print structured data.
const (
	Text = "text"
	JSON = "json"
	YAML = "yaml"
)

// Marshaller turns a value into its printed form.
type Marshaller func(interface{}) ([]byte, error)

func marshalJSON(v interface{}) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}

// marshalYAML goes through JSON so printed types only need json tags.
func marshalYAML(v interface{}) ([]byte, error) {
	jsonBytes, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return yaml.JSONToYAML(jsonBytes)
}

// NewMarshaller returns the marshaller of format. Text has no marshaller; it
// returns nil so that commands print their own tables.
func NewMarshaller(format string) (Marshaller, error) {
	switch strings.ToLower(format) {
	case Text:
		return nil, nil
	case JSON:
		return marshalJSON, nil
	case YAML, "yml":
		return marshalYAML, nil
	}
	return nil, fmt.Errorf("the %v format is not supported. Supported formats are %v, %v and %v", format, Text, JSON, YAML)
}

// Marshal marshals v.
func (m Marshaller) Marshal(v interface{}) (string, error) {
	bytes, err := m(v)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// Print marshals v and prints it on Stdout, ending with a newline.
func (m Marshaller) Print(v interface{}) error {
	out, err := m.Marshal(v)
	if err != nil {
		return err
	}
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	Print(out)
	return nil
}
