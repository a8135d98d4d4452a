package configs

import "testing"

func TestFirst(t *testing.T) {
	loader := NewLoader([]string{"test.cue", "test2.cue"}, testSchema)

	if name := First[string](loader, "name"); name != "bar" {
		t.Fatalf("got %v", name)
	}
	if name := First[string](loader, "missing"); name != "" {
		t.Fatalf("got %v", name)
	}
}
