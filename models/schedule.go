package models

// ClassSchedule is a recurring weekly class block on a space.
// Weekday follows the Monday=0 .. Sunday=6 convention everywhere.
type ClassSchedule struct {
	ID          string `bson:"id" json:"id"`
	SpaceID     string `bson:"space_id" json:"space_id"`
	Weekday     int    `bson:"weekday" json:"weekday"`
	StartTime   string `bson:"start_time" json:"start_time"`
	EndTime     string `bson:"end_time" json:"end_time"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
}

// Interval returns the schedule's time window.
func (s ClassSchedule) Interval() (TimeInterval, error) {
	return NewTimeInterval(s.StartTime, s.EndTime)
}
