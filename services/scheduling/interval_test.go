package scheduling

import (
	"testing"

	"reservas/models"
)

func iv(start, end string) models.TimeInterval {
	return models.TimeInterval{Start: start, End: end}
}

func busy(start, end string, kind models.BusyKind) models.BusyInterval {
	return models.BusyInterval{TimeInterval: iv(start, end), Kind: kind}
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name string
		a, b models.TimeInterval
		want bool
	}{
		{"disjoint", iv("08:00", "09:00"), iv("10:00", "11:00"), false},
		{"back to back", iv("08:00", "09:00"), iv("09:00", "10:00"), false},
		{"partial", iv("08:00", "09:30"), iv("09:00", "10:00"), true},
		{"contained", iv("08:00", "12:00"), iv("09:00", "10:00"), true},
		{"identical", iv("08:00", "09:00"), iv("08:00", "09:00"), true},
		{"one minute", iv("08:59", "09:30"), iv("08:00", "09:00"), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Overlaps(tc.a, tc.b); got != tc.want {
				t.Errorf("Overlaps(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
			// Overlap is symmetric.
			if got := Overlaps(tc.b, tc.a); got != tc.want {
				t.Errorf("Overlaps(%v, %v) = %v, want %v", tc.b, tc.a, got, tc.want)
			}
		})
	}
}

func TestHasConflict(t *testing.T) {
	occupied := []models.BusyInterval{
		busy("09:00", "10:00", models.BusyClass),
		busy("14:00", "16:00", models.BusyReservation),
	}
	if !HasConflict(iv("09:30", "10:30"), occupied) {
		t.Error("expected conflict with 09:00-10:00 class")
	}
	if HasConflict(iv("10:00", "11:00"), occupied) {
		t.Error("adjacent interval must not conflict")
	}
	if HasConflict(iv("12:00", "13:00"), nil) {
		t.Error("empty busy set must never conflict")
	}
}

func TestComputeFreeBlocks(t *testing.T) {
	cases := []struct {
		name string
		busy []models.BusyInterval
		want []models.TimeInterval
	}{
		{
			name: "empty day is one full block",
			busy: nil,
			want: []models.TimeInterval{iv("07:00", "22:00")},
		},
		{
			name: "two morning blocks",
			busy: []models.BusyInterval{
				busy("09:00", "10:00", models.BusyClass),
				busy("10:00", "11:30", models.BusyReservation),
			},
			want: []models.TimeInterval{iv("07:00", "09:00"), iv("11:30", "22:00")},
		},
		{
			name: "overlapping busy entries merge",
			busy: []models.BusyInterval{
				busy("09:00", "12:00", models.BusyClass),
				busy("10:00", "11:00", models.BusyReservation),
			},
			want: []models.TimeInterval{iv("07:00", "09:00"), iv("12:00", "22:00")},
		},
		{
			name: "busy before opening clamps",
			busy: []models.BusyInterval{busy("06:00", "08:00", models.BusyClass)},
			want: []models.TimeInterval{iv("08:00", "22:00")},
		},
		{
			name: "fully booked day",
			busy: []models.BusyInterval{busy("07:00", "22:00", models.BusyReservation)},
			want: nil,
		},
		{
			name: "unsorted input",
			busy: []models.BusyInterval{
				busy("15:00", "16:00", models.BusyReservation),
				busy("08:00", "09:00", models.BusyClass),
			},
			want: []models.TimeInterval{iv("07:00", "08:00"), iv("09:00", "15:00"), iv("16:00", "22:00")},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputeFreeBlocks(tc.busy, "07:00", "22:00")
			if len(got) != len(tc.want) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("block %d: got %v, want %v", i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestComputeFreeBlocksDoesNotMutateInput(t *testing.T) {
	occupied := []models.BusyInterval{
		busy("15:00", "16:00", models.BusyReservation),
		busy("08:00", "09:00", models.BusyClass),
	}
	ComputeFreeBlocks(occupied, "07:00", "22:00")
	if occupied[0].Start != "15:00" || occupied[1].Start != "08:00" {
		t.Error("input slice order changed")
	}
}
