package utils

import (
	"strings"
	"testing"
)

func withProduction(t *testing.T, on bool) {
	t.Helper()
	old := IsProduction
	IsProduction = on
	t.Cleanup(func() { IsProduction = old })
}

func TestMaskStringInProduction(t *testing.T) {
	withProduction(t, true)

	masked := MaskString("user alice@example.com spent 120.50 ETB")

	if strings.Contains(masked, "alice@example.com") {
		t.Error("email should be masked in production")
	}
	if strings.Contains(masked, "120.50 ETB") {
		t.Error("amount with currency should be masked in production")
	}
}

func TestMaskStringShortensUUIDs(t *testing.T) {
	withProduction(t, true)

	masked := MaskString("budget 6b1f6c2e-9c1d-4f3a-8a2e-1d2c3b4a5f60 updated")

	if strings.Contains(masked, "6b1f6c2e-9c1d-4f3a-8a2e-1d2c3b4a5f60") {
		t.Error("full uuid should not appear in production logs")
	}
	if !strings.Contains(masked, "6b1f6c2e...") {
		t.Errorf("expected shortened uuid prefix, got %q", masked)
	}
}

func TestMaskStringPassThroughInDevelopment(t *testing.T) {
	withProduction(t, false)

	input := "user alice@example.com spent 120.50 ETB"
	if got := MaskString(input); got != input {
		t.Errorf("development logs should be untouched, got %q", got)
	}
}

func TestMaskID(t *testing.T) {
	withProduction(t, true)

	if got := MaskID("6b1f6c2e-9c1d-4f3a-8a2e-1d2c3b4a5f60"); got != "6b1f6c2e..." {
		t.Errorf("expected shortened id, got %q", got)
	}
	if got := MaskID("short"); got != "***" {
		t.Errorf("short ids should be fully masked, got %q", got)
	}
}
