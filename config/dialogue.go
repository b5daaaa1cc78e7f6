package config

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed dialogue.yaml
var dialogueYAML []byte

// Dialogue maps boundary names to the text shown on contact.
var Dialogue map[string]string

// ParseDialogue decodes a dialogue dictionary.
func ParseDialogue(data []byte) (map[string]string, error) {
	texts := map[string]string{}
	if err := yaml.Unmarshal(data, &texts); err != nil {
		return nil, fmt.Errorf("failed to decode dialogue: %w", err)
	}
	for k, v := range texts {
		texts[k] = strings.TrimSpace(v)
	}
	return texts, nil
}

func init() {
	texts, err := ParseDialogue(dialogueYAML)
	if err != nil {
		panic(err)
	}
	Dialogue = texts
}
