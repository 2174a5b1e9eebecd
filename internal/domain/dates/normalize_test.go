package dates

import (
	"errors"
	"testing"
	"time"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	want := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)

	inputs := []string{
		"2024-06-15",
		" 2024-06-15 ",
		"2024-06-15T00:00:00Z",
		"2024-06-15T23:59:59.999Z",
		"2024-06-15T10:00:00+09:00",
		"2024-06-15T10:00:00",
		"2024-06-15T10:00",
		"2024-06-15 10:00:00",
	}

	for _, in := range inputs {
		got, err := Normalize(in, time.UTC)
		if err != nil {
			t.Errorf("Normalize(%q) error = %v", in, err)
			continue
		}
		if !got.Equal(want) {
			t.Errorf("Normalize(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNormalize_Errors(t *testing.T) {
	t.Parallel()

	if _, err := Normalize("", time.UTC); !errors.Is(err, errEmpty) {
		t.Errorf("Normalize(\"\") error = %v, want errEmpty", err)
	}
	for _, in := range []string{"June 15, 2024", "2024/06/15", "15-06-2024", "2024-06-31"} {
		if _, err := Normalize(in, time.UTC); !errors.Is(err, errMalformed) {
			t.Errorf("Normalize(%q) error = %v, want errMalformed", in, err)
		}
	}
}

func TestNormalize_NilLocationUsesLocal(t *testing.T) {
	t.Parallel()

	got, err := Normalize("2024-06-15", nil)
	if err != nil {
		t.Fatalf("Normalize error = %v", err)
	}
	if got.Location() != time.Local {
		t.Errorf("Location = %v, want Local", got.Location())
	}
}

func TestLeadingYear(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"2024", 2024, true},
		{"2024-06-15", 2024, true},
		{"  1999abc", 1999, true},
		{"+2001", 2001, true},
		{"-12", -12, true},
		{"abc", 0, false},
		{"-", 0, false},
		{"", 0, false},
		{"99999999999999999999999", 0, false},
	}

	for _, tt := range tests {
		got, ok := leadingYear(tt.in)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("leadingYear(%q) = (%d, %v), want (%d, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestToday_TruncatesToMidnight(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, time.June, 15, 18, 45, 12, 99, time.UTC)
	got := Today(FixedClock(now), time.UTC)

	want := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("Today = %v, want %v", got, want)
	}
}
