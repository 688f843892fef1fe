package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/longwapps/leave-alert/internal/directory"
)

// rosterFile represents the on-disk YAML structure of the roster file
type rosterFile struct {
	Employees map[string]struct {
		Name  string `yaml:"name"`
		Email string `yaml:"email"`
	} `yaml:"employees"`
	Teams        []*directory.Team        `yaml:"teams"`
	ManualLeaves []*directory.ManualLeave `yaml:"manual_leaves"`
}

// LoadRoster reads and parses the roster file (employee directory, teams and manual leave
// declarations) into a directory index
func LoadRoster(path string) (*directory.Index, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read the roster file: %w", err)
	}

	file := new(rosterFile)
	if err := yaml.Unmarshal(raw, file); err != nil {
		return nil, fmt.Errorf("could not parse the roster file: %w", err)
	}

	index := &directory.Index{
		Employees:    make(map[string]*directory.Employee, len(file.Employees)),
		Teams:        file.Teams,
		ManualLeaves: file.ManualLeaves,
	}
	for id, entry := range file.Employees {
		index.Employees[id] = &directory.Employee{
			ID:    id,
			Name:  entry.Name,
			Email: entry.Email,
		}
	}
	return index, nil
}
