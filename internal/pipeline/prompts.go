package pipeline

import (
	"fmt"
	"os"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"
)

// Default prompt templates, one per stage. Each template receives a single
// {{.Data}} variable carrying the stage input.
const (
	defaultNormalizePrompt = `Clean and standardize this resource posting for better matching.
Remove typos, format consistently, extract key details.
Input: {{.Data}}
Output only the cleaned version:`

	defaultScreenPrompt = `Scan this resource posting for safety or privacy risks (personal info, inappropriate content, etc.): {{.Data}}
Respond with: APPROVED or REJECTED followed by a brief reason.`

	defaultRecommendPrompt = `Based on this resource: {{.Data}}
Suggest 3 similar resources a student might also need (books, notes, equipment).
Format as a numbered list.`
)

// Prompts holds the three stage templates.
type Prompts struct {
	Normalize string `yaml:"normalize"`
	Screen    string `yaml:"screen"`
	Recommend string `yaml:"recommend"`
}

// DefaultPrompts returns the built-in stage templates.
func DefaultPrompts() Prompts {
	return Prompts{
		Normalize: defaultNormalizePrompt,
		Screen:    defaultScreenPrompt,
		Recommend: defaultRecommendPrompt,
	}
}

// LoadPrompts loads prompt overrides from a YAML file. A missing file is not
// an error; defaults apply, and empty fields keep their default.
func LoadPrompts(path string) (Prompts, error) {
	prompts := DefaultPrompts()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return prompts, nil
		}
		return prompts, err
	}

	var override Prompts
	if err := yaml.Unmarshal(data, &override); err != nil {
		return prompts, fmt.Errorf("failed to parse prompts file: %w", err)
	}

	if override.Normalize != "" {
		prompts.Normalize = override.Normalize
	}
	if override.Screen != "" {
		prompts.Screen = override.Screen
	}
	if override.Recommend != "" {
		prompts.Recommend = override.Recommend
	}

	return prompts, nil
}

// render substitutes the stage input into a prompt template.
func render(name, tmpl, data string) (string, error) {
	t, err := template.New(name).Parse(tmpl)
	if err != nil {
		return "", fmt.Errorf("invalid %s prompt template: %w", name, err)
	}

	var sb strings.Builder
	if err := t.Execute(&sb, struct{ Data string }{Data: data}); err != nil {
		return "", fmt.Errorf("failed to render %s prompt: %w", name, err)
	}
	return sb.String(), nil
}
