package models

import "testing"

func TestNormalizeClock(t *testing.T) {
	cases := map[string]string{
		"9:00":     "09:00",
		"09:00":    "09:00",
		"09:00:00": "09:00",
		" 14:30 ":  "14:30",
	}
	for in, want := range cases {
		got, err := NormalizeClock(in)
		if err != nil {
			t.Errorf("NormalizeClock(%q): %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("NormalizeClock(%q) = %q, want %q", in, got, want)
		}
	}

	for _, in := range []string{"", "nueve", "25:00", "10:75", "10"} {
		if _, err := NormalizeClock(in); err == nil {
			t.Errorf("NormalizeClock(%q) succeeded, want error", in)
		}
	}
}

func TestNewTimeInterval(t *testing.T) {
	iv, err := NewTimeInterval("9:00", "10:30:00")
	if err != nil {
		t.Fatal(err)
	}
	if iv.Start != "09:00" || iv.End != "10:30" {
		t.Errorf("got %v", iv)
	}
	if iv.String() != "09:00-10:30" {
		t.Errorf("String() = %q", iv.String())
	}

	if _, err := NewTimeInterval("10:00", "10:00"); err == nil {
		t.Error("zero-length interval must be rejected")
	}
	if _, err := NewTimeInterval("11:00", "10:00"); err == nil {
		t.Error("inverted interval must be rejected")
	}
}
