package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Step is one scripted call: either a bound creator by name, or a raw action
// type dispatched as is.
type Step struct {
	Creator string `json:"creator,omitempty" yaml:"creator,omitempty"`
	Type    string `json:"type,omitempty" yaml:"type,omitempty"`
	Payload any    `json:"payload,omitempty" yaml:"payload,omitempty"`
}

// LoadScript reads a JSON or YAML list of steps.
func LoadScript(filename string) ([]Step, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}

	var steps []Step
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &steps)
	default:
		err = json.Unmarshal(data, &steps)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse script: %w", err)
	}

	for i, s := range steps {
		if (s.Creator == "") == (s.Type == "") {
			return nil, fmt.Errorf("step %d: exactly one of creator or type is required", i)
		}
		steps[i].Payload = normalize(s.Payload)
	}
	return steps, nil
}

// normalize turns JSON numbers that hold integers into ints so scripted
// payloads match what the demo reducers expect.
func normalize(v any) any {
	if f, ok := v.(float64); ok && f == float64(int(f)) {
		return int(f)
	}
	return v
}
