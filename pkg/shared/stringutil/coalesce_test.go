package stringutil

import "testing"

func TestEnvOr(t *testing.T) {
	if got := EnvOr("https://file.example", "  "); got != "https://file.example" {
		t.Fatalf("blank override should keep existing value, got %q", got)
	}
	if got := EnvOr("https://file.example", " https://env.example\n"); got != "https://env.example" {
		t.Fatalf("expected trimmed override, got %q", got)
	}
}
