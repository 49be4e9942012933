// Package worksheet loads and saves truth table worksheets: a named set of
// variables and statements together with output preferences, stored as YAML.
package worksheet

import (
	"fmt"
	"os"

	"github.com/gnolang/truthtable/internal/table"
	"gopkg.in/yaml.v3"
)

const DefaultPath = ".truthtable.yaml"

type Output struct {
	Format string `yaml:"format,omitempty"`
	Color  string `yaml:"color,omitempty"`
}

type Worksheet struct {
	Name       string   `yaml:"name"`
	Variables  []string `yaml:"variables,omitempty"`
	Statements []string `yaml:"statements"`
	Output     Output   `yaml:"output,omitempty"`
}

// Default returns the worksheet written by "truthtable init".
func Default() *Worksheet {
	return &Worksheet{
		Name:      "truthtable",
		Variables: []string{"p", "q"},
		Statements: []string{
			"p and q",
			"p --> q",
			"not p or q",
		},
		Output: Output{Format: "text", Color: "auto"},
	}
}

// Load reads the worksheet stored at path.
func Load(path string) (*Worksheet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var ws Worksheet
	if err := yaml.NewDecoder(f).Decode(&ws); err != nil {
		return nil, fmt.Errorf("decoding worksheet %s: %w", path, err)
	}
	return &ws, nil
}

// Save writes ws to path, replacing any existing file.
func Save(path string, ws *Worksheet) error {
	d, err := yaml.Marshal(ws)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(d)
	return err
}

// EffectiveVariables returns the declared variables, or the ones used by
// the statements when none are declared.
func (ws *Worksheet) EffectiveVariables() []string {
	if len(ws.Variables) > 0 {
		return ws.Variables
	}
	return table.InferVariables(ws.Statements)
}

func (ws *Worksheet) Generate() (*table.Table, error) {
	return table.Generate(ws.EffectiveVariables(), ws.Statements)
}
