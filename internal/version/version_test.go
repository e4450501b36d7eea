package version

import "testing"

func TestString(t *testing.T) {
	got := String("coilgen")
	want := "coilgen " + Version + " (commit " + GitCommit + ", built " + BuildTime + ")"
	if got != want {
		t.Errorf("got %q, expected %q", got, want)
	}
}
