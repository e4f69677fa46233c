package pipeline

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRender(t *testing.T) {
	got, err := render("normalize", defaultNormalizePrompt, "title: Physics notes")
	if err != nil {
		t.Fatalf("render() error = %v", err)
	}
	if !strings.Contains(got, "title: Physics notes") {
		t.Errorf("render() output missing the data:\n%s", got)
	}
	if strings.Contains(got, "{{") {
		t.Errorf("render() left template markers in output:\n%s", got)
	}
}

func TestLoadPrompts_MissingFile(t *testing.T) {
	prompts, err := LoadPrompts(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadPrompts() error = %v, want nil for missing file", err)
	}
	if prompts != DefaultPrompts() {
		t.Error("LoadPrompts() missing file should return defaults")
	}
}

func TestLoadPrompts_PartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prompts.yaml")
	content := "screen: |\n  Check {{.Data}} and answer APPROVED or REJECTED.\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	prompts, err := LoadPrompts(path)
	if err != nil {
		t.Fatalf("LoadPrompts() error = %v", err)
	}

	if !strings.Contains(prompts.Screen, "Check {{.Data}}") {
		t.Errorf("Screen prompt not overridden: %q", prompts.Screen)
	}
	if prompts.Normalize != defaultNormalizePrompt {
		t.Error("Normalize prompt should keep its default")
	}
	if prompts.Recommend != defaultRecommendPrompt {
		t.Error("Recommend prompt should keep its default")
	}
}

func TestLoadPrompts_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prompts.yaml")
	if err := os.WriteFile(path, []byte(":\t not yaml ["), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadPrompts(path); err == nil {
		t.Error("LoadPrompts() error = nil, want parse error")
	}
}
