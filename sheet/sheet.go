// Package sheet reads declarative icon sheets (YAML) and resolves them into
// renderable icons.
package sheet

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	yaml "gopkg.in/yaml.v3"
)

type (
	// IconSpec describes single icon. Nil Style/Transform mean group is
	// absent, empty list means group is present and empty.
	IconSpec struct {
		Props     []string  `yaml:"props"`
		Style     *[]string `yaml:"style,omitempty"`
		Transform *[]string `yaml:"transform,omitempty"`
	}

	StackSpec struct {
		Size   string    `yaml:"size,omitempty"`
		Top    *IconSpec `yaml:"top"`
		Bottom *IconSpec `yaml:"bottom"`
	}

	// EntrySpec must have exactly one of Icon and Stack.
	EntrySpec struct {
		Name  string     `yaml:"name"`
		Label string     `yaml:"label,omitempty"`
		Icon  *IconSpec  `yaml:"icon,omitempty"`
		Stack *StackSpec `yaml:"stack,omitempty"`
	}

	Sheet struct {
		ID       string      `yaml:"id,omitempty"`
		Title    string      `yaml:"title"`
		Language string      `yaml:"language,omitempty"`
		Entries  []EntrySpec `yaml:"entries"`
	}
)

// Load decodes sheet. Unknown fields are rejected.
func Load(data []byte) (*Sheet, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	s := &Sheet{}
	if err := dec.Decode(s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("sheet is empty")
		}
		return nil, fmt.Errorf("failed to decode sheet: %w", err)
	}
	return s, nil
}

// LoadFile reads and decodes sheet from file.
func LoadFile(path string) (*Sheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet file: %w", err)
	}
	s, err := Load(data)
	if err != nil {
		return nil, fmt.Errorf("sheet %q: %w", path, err)
	}
	return s, nil
}
