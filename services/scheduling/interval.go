package scheduling

import (
	"sort"

	"reservas/models"
)

// Overlaps reports whether two half-open intervals intersect. Touching
// endpoints (a.End == b.Start) do not conflict.
func Overlaps(a, b models.TimeInterval) bool {
	return a.Start < b.End && b.Start < a.End
}

// HasConflict reports whether the candidate overlaps any busy interval.
// An empty busy set never conflicts.
func HasConflict(candidate models.TimeInterval, busy []models.BusyInterval) bool {
	for _, b := range busy {
		if Overlaps(candidate, b.TimeInterval) {
			return true
		}
	}
	return false
}

// ComputeFreeBlocks partitions the operating window [dayStart, dayEnd) into
// the maximal blocks not covered by any busy interval. Input order does not
// matter and overlapping or contained busy intervals are merged by the sweep:
// the cursor only ever moves forward, so a busy interval inside an already
// covered region contributes nothing.
func ComputeFreeBlocks(busy []models.BusyInterval, dayStart, dayEnd string) []models.TimeInterval {
	sorted := make([]models.BusyInterval, len(busy))
	copy(sorted, busy)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Start != sorted[j].Start {
			return sorted[i].Start < sorted[j].Start
		}
		return sorted[i].End < sorted[j].End
	})

	var free []models.TimeInterval
	cursor := dayStart
	for _, b := range sorted {
		if b.Start >= dayEnd {
			break
		}
		if b.Start > cursor {
			free = append(free, models.TimeInterval{Start: cursor, End: minClock(b.Start, dayEnd)})
		}
		if b.End > cursor {
			cursor = b.End
		}
	}
	if cursor < dayEnd {
		free = append(free, models.TimeInterval{Start: cursor, End: dayEnd})
	}
	return free
}

func minClock(a, b string) string {
	if a < b {
		return a
	}
	return b
}
