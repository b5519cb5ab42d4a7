package model

// TimeSlot is one bookable time-of-day position in the clinic day. The grid of
// slots is fixed and independent of any date; Date is stamped at resolution
// time only.
type TimeSlot struct {
	ID              int64  `db:"id" json:"id"`
	Time            string `db:"time" json:"time"`
	IsEmptyTimeSlot bool   `db:"isEmptyTimeSlot" json:"isEmptyTimeSlot"`
	Date            string `db:"-" json:"date,omitempty"`
}

// ScheduleEntry is one row of a resolved day: either a booked appointment or a
// free slot from the grid, never both for the same time-of-day.
type ScheduleEntry struct {
	Date            string       `json:"date"`
	Time            string       `json:"time"`
	IsEmptyTimeSlot bool         `json:"isEmptyTimeSlot"`
	Appointment     *Appointment `json:"appointment,omitempty"`
}
