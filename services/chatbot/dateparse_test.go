package chatbot

import (
	"testing"
	"time"
)

// Monday 2026-01-26 keeps relative-date expectations easy to follow.
var testNow = time.Date(2026, 1, 26, 10, 0, 0, 0, time.UTC)

func TestResolveDateRelative(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"espacios libres hoy", "2026-01-26"},
		{"ocupación mañana", "2026-01-27"},
		{"ocupacion manana", "2026-01-27"},
		{"libres pasado mañana", "2026-01-28"},
		{"libres pasado manana", "2026-01-28"},
	}
	for _, tc := range cases {
		if got := ResolveDate(tc.text, testNow); got != tc.want {
			t.Errorf("ResolveDate(%q) = %q, want %q", tc.text, got, tc.want)
		}
	}
}

func TestResolveDateExplicit(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"reserva para 2026-01-29", "2026-01-29"},
		{"libres el 29/01/2026", "2026-01-29"},
		{"libres el 29/01/26", "2026-01-29"},
		{"libres el 29-01-2026", "2026-01-29"},
		{"el 29 de enero", "2026-01-29"},
		{"el 5 de mayo", "2026-05-05"},
		// Already past this year: rolls to the next.
		{"el 3 de enero", "2027-01-03"},
		{"miércoles 28", "2026-01-28"},
		{"miercoles 28", "2026-01-28"},
		// Day already past this month: rolls to the next month.
		{"jueves 10", "2026-02-10"},
	}
	for _, tc := range cases {
		if got := ResolveDate(tc.text, testNow); got != tc.want {
			t.Errorf("ResolveDate(%q) = %q, want %q", tc.text, got, tc.want)
		}
	}
}

func TestResolveDateRejectsSpaceCodes(t *testing.T) {
	cases := []string{
		"capacidad A-002",
		"ocupación del A010",
		"aula a1-2",
		"",
		"una pregunta sin fecha",
		// 31 de febrero no existe.
		"el 31/02/2026",
	}
	for _, text := range cases {
		if got := ResolveDate(text, testNow); got != "" {
			t.Errorf("ResolveDate(%q) = %q, want empty", text, got)
		}
	}
}

func TestResolveDateOrderOfRules(t *testing.T) {
	// A relative keyword wins over an explicit date in the same sentence.
	if got := ResolveDate("mañana o el 29/01/2026", testNow); got != "2026-01-27" {
		t.Errorf("got %q, want the relative date to win", got)
	}
}

func TestFoldAccentsKeepsEnie(t *testing.T) {
	if got := foldAccents("miércoles"); got != "miercoles" {
		t.Errorf("foldAccents(miércoles) = %q", got)
	}
	if got := foldAccents("mañana"); got != "mañana" {
		t.Errorf("foldAccents must not touch ñ, got %q", got)
	}
}
