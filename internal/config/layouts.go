package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/freeeve/subhunt/pkg/submarine"
)

// LayoutsFile is the YAML document holding extra placements.
//
//	layouts:
//	  - name: corners
//	    rows: ["X...X", ".....", ".....", ".....", "X...X"]
type LayoutsFile struct {
	Layouts []LayoutEntry `yaml:"layouts"`
}

// LayoutEntry is one placement drawn as five rows of X and '.'.
type LayoutEntry struct {
	Name string   `yaml:"name"`
	Rows []string `yaml:"rows"`
}

func loadYAML(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(b, out)
}

// LoadLayouts parses the layouts file at path, marking every X with maxHP.
// Rule validation is left to the caller.
func LoadLayouts(path string, maxHP int) ([]submarine.Layout, error) {
	var f LayoutsFile
	if err := loadYAML(path, &f); err != nil {
		return nil, fmt.Errorf("load layouts %s: %w", path, err)
	}
	out := make([]submarine.Layout, 0, len(f.Layouts))
	for i, e := range f.Layouts {
		name := e.Name
		if name == "" {
			name = fmt.Sprintf("%s#%d", path, i+1)
		}
		l, err := submarine.ParseLayout(name, e.Rows, maxHP)
		if err != nil {
			return nil, fmt.Errorf("load layouts %s: %w", path, err)
		}
		out = append(out, l)
	}
	return out, nil
}
