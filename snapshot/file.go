package snapshot

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"strings"

	"github.com/ekinanp/jsonschema"
	"github.com/ghodss/yaml"
	"github.com/pkg/errors"
	"github.com/puppetlabs/accfind/acc"
	"github.com/xeipuuv/gojsonschema"
)

// File is the document a snapshot is loaded from.
type File struct {
	Windows []*WindowSpec `json:"windows"`
}

// WindowSpec describes a window and its child controls.
type WindowSpec struct {
	Handle int64  `json:"handle"`
	Class  string `json:"class"`
	ID     int    `json:"id,omitempty"`
	Hidden bool   `json:"hidden,omitempty"`
	// Tree is the window's MSAA tree. Its root is the WINDOW object.
	Tree *Node `json:"tree,omitempty"`
	UIA  *Node `json:"uia,omitempty"`
	Java *Node `json:"java,omitempty"`
	// Agent is set when an agent can be injected into the window's process.
	Agent bool `json:"agent,omitempty"`
	// EnableAfter is the number of enablement requests after which lazy
	// objects become available. It defaults to 1.
	EnableAfter int           `json:"enableAfter,omitempty"`
	Children    []*WindowSpec `json:"children,omitempty"`
}

// Node describes an accessible object.
type Node struct {
	// Role is a role name like "PUSHBUTTON", a role number, or a custom string role.
	Role         string            `json:"role"`
	Name         string            `json:"name,omitempty"`
	Value        string            `json:"value,omitempty"`
	Description  string            `json:"description,omitempty"`
	Help         string            `json:"help,omitempty"`
	Action       string            `json:"action,omitempty"`
	Key          string            `json:"key,omitempty"`
	AutomationID string            `json:"automationId,omitempty"`
	State        []string          `json:"state,omitempty"`
	Rect         *acc.Rect         `json:"rect,omitempty"`
	HTML         map[string]string `json:"html,omitempty"`
	// Elem is the index of a sub-element. Sub-elements have no children.
	Elem int `json:"elem,omitempty"`
	// Navigate marks the object that Firefox-style document navigation returns.
	Navigate bool `json:"navigate,omitempty"`
	// Lazy objects are BUSY and have no children until their window is enabled.
	Lazy bool `json:"lazy,omitempty"`
	// Pending objects don't exist until their window is enabled.
	Pending bool `json:"pending,omitempty"`
	// Repeat makes this object appear that many times among its siblings.
	Repeat int `json:"repeat,omitempty"`
	// Fail lists the operations that fail on this object: role, state,
	// location, property, children or child (fetching this object).
	Fail     []string `json:"fail,omitempty"`
	Children []*Node  `json:"children,omitempty"`

	role     acc.Role
	roleName string
	state    acc.State
	fails    map[string]bool
}

// Schema returns the JSON schema of snapshot documents.
func Schema() *jsonschema.Schema {
	r := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		ExpandedStruct:            true,
	}
	return r.Reflect(&File{})
}

var schemaLoader = gojsonschema.NewGoLoader(Schema())

// Validate checks a JSON document against the snapshot schema.
func Validate(data []byte) error {
	r, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(data))
	if err != nil {
		return errors.Wrap(err, "could not validate snapshot")
	}
	if r.Valid() {
		return nil
	}
	msgs := make([]string, len(r.Errors()))
	for i, e := range r.Errors() {
		msgs[i] = e.String()
	}
	return fmt.Errorf("invalid snapshot:\n  %v", strings.Join(msgs, "\n  "))
}

// Parse parses a YAML or JSON snapshot document.
func Parse(data []byte) (*Snapshot, error) {
	data, err := yaml.YAMLToJSON(data)
	if err != nil {
		return nil, errors.Wrap(err, "could not parse snapshot")
	}
	if err := Validate(data); err != nil {
		return nil, err
	}
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(err, "could not parse snapshot")
	}
	return New(&f)
}

// Load reads a snapshot file.
func Load(path string) (*Snapshot, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := Parse(data)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	return s, nil
}
