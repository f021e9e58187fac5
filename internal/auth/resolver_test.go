package auth

import (
	"strings"
	"testing"
)

func TestResolve_FlagBeatsEnv(t *testing.T) {
	t.Setenv("REPOJUMP_TEST_TOKEN", "from-env")

	result, err := NewResolver("GitHub").
		WithFlagValue("from-flag").
		WithEnv("REPOJUMP_TEST_TOKEN").
		Resolve()
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	if result.Token != "from-flag" {
		t.Errorf("Token = %q, want the flag value", result.Token)
	}

	if result.Source != SourceFlag {
		t.Errorf("Source = %q, want %q", result.Source, SourceFlag)
	}
}

func TestResolve_EnvOrder(t *testing.T) {
	t.Setenv("REPOJUMP_TEST_A", "")
	t.Setenv("REPOJUMP_TEST_B", "from-b")

	result, err := NewResolver("GitHub").
		WithEnvs("REPOJUMP_TEST_A", "REPOJUMP_TEST_B").
		Resolve()
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	if result.Token != "from-b" {
		t.Errorf("Token = %q, want the first non-empty env", result.Token)
	}

	if result.Source != SourceEnv {
		t.Errorf("Source = %q, want %q", result.Source, SourceEnv)
	}

	if result.Name != "REPOJUMP_TEST_B" {
		t.Errorf("Name = %q, want the env var name", result.Name)
	}
}

func TestResolve_CustomProvider(t *testing.T) {
	result, err := NewResolver("GitHub").
		WithProvider(func() (string, string, error) {
			return "from-config", "config", nil
		}).
		Resolve()
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	if result.Source != SourceConfig {
		t.Errorf("Source = %q, want %q", result.Source, SourceConfig)
	}
}

func TestResolve_NoTokenIncludesHelp(t *testing.T) {
	_, err := NewResolver("GitHub").
		WithFlagValue("").
		WithHelpMessage("set a token first").
		Resolve()
	if err == nil {
		t.Fatal("Resolve() error = nil, want error")
	}

	if !strings.Contains(err.Error(), "set a token first") {
		t.Errorf("error %q does not include the help message", err)
	}
}
