package cli

import (
	"testing"

	"github.com/pacerlabs/pacer/internal/domain"
)

func TestFormatSeconds(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "00:00"},
		{65, "01:05"},
		{1500, "25:00"},
		{3600, "1:00:00"},
		{3725, "1:02:05"},
	}
	for _, tt := range tests {
		if got := formatSeconds(tt.in); got != tt.want {
			t.Errorf("formatSeconds(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestShortID(t *testing.T) {
	if got := shortID("b7a9f1c2-0000-4000-8000-000000000001"); got != "b7a9f1c2" {
		t.Errorf("shortID() = %q, want %q", got, "b7a9f1c2")
	}
	if got := shortID("abc"); got != "abc" {
		t.Errorf("shortID(short input) = %q, want unchanged", got)
	}
}

func TestFormatTarget(t *testing.T) {
	open := domain.Task{}
	if got := formatTarget(open); got != "—" {
		t.Errorf("formatTarget(open-ended) = %q, want em dash", got)
	}
	timed := domain.Task{Timed: true, DurationSeconds: 1500}
	if got := formatTarget(timed); got != "25:00" {
		t.Errorf("formatTarget(timed) = %q, want 25:00", got)
	}
}
