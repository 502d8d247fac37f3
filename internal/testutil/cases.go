// Package testutil holds the parser fixtures shared by the test suites.
package testutil

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/KimNorgaard/go-rfc2253/errors"
)

//go:embed testdata/*.yaml
var fixtures embed.FS

// Case is a single parser fixture. A case with a Reason other than
// ReasonUnknown is expected to fail at Offset; otherwise it is expected to
// yield Attributes.
type Case struct {
	Name       string            `yaml:"name"`
	Input      string            `yaml:"input"`
	Attributes map[string]string `yaml:"attributes"`
	Reason     errors.Reason     `yaml:"reason"`
	Offset     int               `yaml:"offset"`
}

// WantError reports whether the case describes rejected input.
func (c Case) WantError() bool {
	return c.Reason != errors.ReasonUnknown
}

// LoadCases decodes the named YAML fixture file from testdata.
func LoadCases(name string) ([]Case, error) {
	data, err := fixtures.ReadFile("testdata/" + name)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture file '%s': %w", name, err)
	}

	var cases []Case
	if err := yaml.Unmarshal(data, &cases); err != nil {
		return nil, fmt.Errorf("failed to decode fixtures from '%s': %w", name, err)
	}
	for i := range cases {
		if cases[i].Attributes == nil && !cases[i].WantError() {
			cases[i].Attributes = map[string]string{}
		}
	}
	return cases, nil
}
