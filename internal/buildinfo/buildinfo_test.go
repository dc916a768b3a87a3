package buildinfo

import "testing"

func TestString(t *testing.T) {
	old := Version
	t.Cleanup(func() { Version = old })

	Version = "v1.2.3"
	if got := String(); got != "promptloop v1.2.3 (commit=none, date=unknown)" {
		t.Fatalf("unexpected build info %q", got)
	}
}
