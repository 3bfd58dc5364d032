package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var today = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func validForm() BookingForm {
	return BookingForm{
		PatientName:     "Jane Doe",
		PatientEmail:    "jane@example.com",
		AppointmentDate: "2026-03-11",
		AppointmentTime: "09:00",
	}
}

var openTimes = []string{"09:00", "10:00", "14:00"}

func TestValidateBookingAcceptsValidForm(t *testing.T) {
	errs := ValidateBooking(validForm(), openTimes, today)
	assert.Empty(t, errs)
}

func TestValidateBookingPatientName(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr string
	}{
		{"empty", "", "Patient name is required"},
		{"whitespace only", "   ", "Patient name is required"},
		{"single char", "J", "Patient name must be at least 2 characters"},
		{"digits", "Jane42", "Patient name should only contain letters and spaces"},
		{"hyphen", "Mary-Jane", "Patient name should only contain letters and spaces"},
		{"period", "Dr. Smith", "Patient name should only contain letters and spaces"},
		{"plain letters", "Jane Doe", ""},
		{"padded", "  Jane Doe  ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			form.PatientName = tt.value
			errs := ValidateBooking(form, openTimes, today)
			if tt.wantErr == "" {
				assert.NotContains(t, errs, FieldPatientName)
			} else {
				assert.Equal(t, tt.wantErr, errs[FieldPatientName])
			}
		})
	}
}

func TestValidateBookingEmail(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr string
	}{
		{"empty", "", "Email is required"},
		{"no at", "janeexample.com", "Please enter a valid email address"},
		{"no dot in suffix", "jane@example", "Please enter a valid email address"},
		{"space inside", "jane doe@example.com", "Please enter a valid email address"},
		{"valid", "jane@example.com", ""},
		{"subdomain", "jane@mail.example.co", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			form.PatientEmail = tt.value
			errs := ValidateBooking(form, openTimes, today)
			if tt.wantErr == "" {
				assert.NotContains(t, errs, FieldPatientEmail)
			} else {
				assert.Equal(t, tt.wantErr, errs[FieldPatientEmail])
			}
		})
	}
}

func TestValidateBookingDateBoundaries(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		wantErr string
	}{
		{"empty", "", "Please select an appointment date"},
		{"yesterday", "2026-03-09", "Please select a future date"},
		{"today", "2026-03-10", ""},
		{"exactly 90 days out", "2026-06-08", ""},
		{"91 days out", "2026-06-09", "Please select a date within the next 90 days"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			form.AppointmentDate = tt.date
			errs := ValidateBooking(form, openTimes, today)
			if tt.wantErr == "" {
				assert.NotContains(t, errs, FieldAppointmentDate)
			} else {
				assert.Equal(t, tt.wantErr, errs[FieldAppointmentDate])
			}
		})
	}
}

func TestValidateBookingTime(t *testing.T) {
	form := validForm()
	form.AppointmentTime = ""
	errs := ValidateBooking(form, openTimes, today)
	assert.Equal(t, "Please select an appointment time", errs[FieldAppointmentTime])

	form.AppointmentTime = "13:00"
	errs = ValidateBooking(form, openTimes, today)
	assert.Equal(t, "Selected time slot is no longer available", errs[FieldAppointmentTime])

	errs = ValidateBooking(validForm(), nil, today)
	assert.Equal(t, "Selected time slot is no longer available", errs[FieldAppointmentTime])
}

func TestValidateBookingChecksEveryField(t *testing.T) {
	errs := ValidateBooking(BookingForm{}, openTimes, today)
	assert.Len(t, errs, 4, "every field is reported even when the first fails")
}

func TestValidateBookingIsIdempotent(t *testing.T) {
	form := BookingForm{
		PatientName:     "J",
		PatientEmail:    "not-an-email",
		AppointmentDate: "2020-01-01",
		AppointmentTime: "13:00",
	}
	first := ValidateBooking(form, openTimes, today)
	second := ValidateBooking(form, openTimes, today)
	assert.Equal(t, first, second)
	assert.Len(t, first, 4)
}
