package validation

import (
	"regexp"
	"slices"
	"strings"
	"time"
)

// Booking form field keys, matching the JSON names of the request body.
const (
	FieldPatientName     = "patient_name"
	FieldPatientEmail    = "patient_email"
	FieldAppointmentDate = "appointment_date"
	FieldAppointmentTime = "appointment_time"
)

// Bookings are accepted at most this many days ahead of today.
const maxBookingDays = 90

var (
	// Letters and spaces only. Periods, hyphens, apostrophes and digits are
	// rejected, so "Dr. Smith" fails even though doctor display names carry
	// periods.
	patientNameRegex = regexp.MustCompile(`^[a-zA-Z\s]+$`)

	// Local part, "@", domain, dot-containing suffix. No attempt at full
	// RFC 5322 grammar.
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// BookingForm is the raw user input for one booking submission.
type BookingForm struct {
	PatientName     string
	PatientEmail    string
	AppointmentDate string
	AppointmentTime string
}

// ValidateBooking classifies the form against the start times currently
// available for the selected date. It returns a field-to-message map where
// an absent key means the field is valid; the first failing rule per field
// wins and every field is checked even when another has already failed. The
// function only classifies input and never mutates anything.
func ValidateBooking(form BookingForm, availableTimes []string, today time.Time) map[string]string {
	errs := make(map[string]string)

	name := strings.TrimSpace(form.PatientName)
	switch {
	case name == "":
		errs[FieldPatientName] = "Patient name is required"
	case len(name) < 2:
		errs[FieldPatientName] = "Patient name must be at least 2 characters"
	case !patientNameRegex.MatchString(name):
		errs[FieldPatientName] = "Patient name should only contain letters and spaces"
	}

	email := strings.TrimSpace(form.PatientEmail)
	switch {
	case email == "":
		errs[FieldPatientEmail] = "Email is required"
	case !emailRegex.MatchString(email):
		errs[FieldPatientEmail] = "Please enter a valid email address"
	}

	// Dates are fixed-width zero-padded "YYYY-MM-DD", so plain string
	// comparison orders them correctly.
	todayStr := today.Format("2006-01-02")
	maxStr := today.AddDate(0, 0, maxBookingDays).Format("2006-01-02")
	switch {
	case form.AppointmentDate == "":
		errs[FieldAppointmentDate] = "Please select an appointment date"
	case form.AppointmentDate < todayStr:
		errs[FieldAppointmentDate] = "Please select a future date"
	case form.AppointmentDate > maxStr:
		errs[FieldAppointmentDate] = "Please select a date within the next 90 days"
	}

	switch {
	case form.AppointmentTime == "":
		errs[FieldAppointmentTime] = "Please select an appointment time"
	case !slices.Contains(availableTimes, form.AppointmentTime):
		errs[FieldAppointmentTime] = "Selected time slot is no longer available"
	}

	return errs
}
