package models

import (
	"fmt"
	"strings"
)

// BusyKind tags the origin of a busy interval.
type BusyKind string

const (
	BusyClass       BusyKind = "clase"
	BusyReservation BusyKind = "reserva"
)

// TimeInterval is a same-day time span in "HH:MM" form, start strictly before
// end. Zero-padded HH:MM strings order correctly under plain string
// comparison, which is how every interval operation compares them.
type TimeInterval struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// NewTimeInterval validates and normalizes a start/end pair. Inputs may carry
// seconds ("HH:MM:SS"); they are truncated to HH:MM.
func NewTimeInterval(start, end string) (TimeInterval, error) {
	s, err := NormalizeClock(start)
	if err != nil {
		return TimeInterval{}, err
	}
	e, err := NormalizeClock(end)
	if err != nil {
		return TimeInterval{}, err
	}
	if e <= s {
		return TimeInterval{}, fmt.Errorf("invalid interval %s-%s: end must be after start", s, e)
	}
	return TimeInterval{Start: s, End: e}, nil
}

// NormalizeClock turns "H:MM", "HH:MM" or "HH:MM:SS" into zero-padded "HH:MM".
func NormalizeClock(raw string) (string, error) {
	parts := strings.Split(strings.TrimSpace(raw), ":")
	if len(parts) < 2 {
		return "", fmt.Errorf("invalid time %q: want HH:MM", raw)
	}
	var h, m int
	if _, err := fmt.Sscanf(parts[0], "%d", &h); err != nil {
		return "", fmt.Errorf("invalid time %q: %w", raw, err)
	}
	if _, err := fmt.Sscanf(parts[1], "%d", &m); err != nil {
		return "", fmt.Errorf("invalid time %q: %w", raw, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return "", fmt.Errorf("invalid time %q: out of range", raw)
	}
	return fmt.Sprintf("%02d:%02d", h, m), nil
}

func (t TimeInterval) String() string {
	return t.Start + "-" + t.End
}

// BusyInterval is a TimeInterval tagged with its origin: a weekly class block
// or an active (pending/approved) reservation.
type BusyInterval struct {
	TimeInterval
	Kind     BusyKind `json:"kind"`
	SourceID string   `json:"source_id"`
}
