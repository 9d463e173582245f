package roomcode

import (
	"regexp"
	"testing"
)

func TestNewCodeFormat(t *testing.T) {
	g, err := NewGenerator()
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}

	pattern := regexp.MustCompile(`^[0-9a-z]{3}-[0-9a-z]{4}-[0-9a-z]{3}$`)
	for i := 0; i < 100; i++ {
		code := g.NewCode()
		if !pattern.MatchString(code) {
			t.Fatalf("malformed code: %q", code)
		}
	}
}

func TestNewCodeUniqueness(t *testing.T) {
	g, err := NewGenerator()
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}

	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		code := g.NewCode()
		if _, dup := seen[code]; dup {
			t.Fatalf("duplicate code after %d draws: %q", i, code)
		}
		seen[code] = struct{}{}
	}
}
