package models

// AvailabilityStatus is a doctor-level display badge. It is authored
// independently of the schedule, so the badge and the actual open-slot count
// can disagree; booking always trusts the schedule.
type AvailabilityStatus string

const (
	AvailableToday    AvailabilityStatus = "Available Today"
	AvailableTomorrow AvailabilityStatus = "Available Tomorrow"
	FullyBooked       AvailabilityStatus = "Fully Booked"
	OnLeave           AvailabilityStatus = "On Leave"
)

// TimeSlot is a one-hour booking window for a specific doctor and date.
// (Date, StartTime) is unique within one doctor's schedule. Slots are created
// in bulk when the directory is seeded and are only ever mutated by the store
// when a booking consumes one.
type TimeSlot struct {
	ID          string `json:"id"`
	Date        string `json:"date"`       // "2006-01-02"
	StartTime   string `json:"start_time"` // "15:04", 24-hour
	EndTime     string `json:"end_time"`
	IsAvailable bool   `json:"is_available"`
}

type Doctor struct {
	ID              string             `json:"id"`
	Name            string             `json:"name"`
	Specialization  string             `json:"specialization"`
	ProfileImage    string             `json:"profile_image"`
	Availability    AvailabilityStatus `json:"availability"`
	Experience      int                `json:"experience"`
	Rating          float64            `json:"rating"`
	Location        string             `json:"location"`
	Education       string             `json:"education"`
	About           string             `json:"about"`
	Schedule        []TimeSlot         `json:"schedule"`
	ConsultationFee int                `json:"consultation_fee"`
}

// OpenSlotCount reports how many slots in the schedule are still bookable.
func (d *Doctor) OpenSlotCount() int {
	count := 0
	for _, slot := range d.Schedule {
		if slot.IsAvailable {
			count++
		}
	}
	return count
}
