package models

import (
	"fmt"
	"time"
)

type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusNoShow    AppointmentStatus = "no-show"
)

// Appointment is one confirmed booking. The booking flow only ever produces
// scheduled appointments; the maintenance sweep moves them to completed once
// their slot has passed.
type Appointment struct {
	ID              string            `json:"id"`
	DoctorID        string            `json:"doctor_id"`
	PatientName     string            `json:"patient_name"`
	PatientEmail    string            `json:"patient_email"`
	AppointmentDate string            `json:"appointment_date"` // "2006-01-02"
	AppointmentTime string            `json:"appointment_time"` // slot start, "15:04"
	Status          AppointmentStatus `json:"status"`
	CreatedAt       string            `json:"created_at"` // RFC 3339
}

// UpdateStatus enforces the allowed transitions: a scheduled appointment can
// move to completed, cancelled or no-show; every other status is terminal.
func (a *Appointment) UpdateStatus(newStatus AppointmentStatus) error {
	switch a.Status {
	case StatusScheduled:
		if newStatus != StatusCompleted && newStatus != StatusCancelled && newStatus != StatusNoShow {
			return fmt.Errorf("invalid transition from scheduled to %s", newStatus)
		}
	case StatusCompleted, StatusCancelled, StatusNoShow:
		return fmt.Errorf("no transitions allowed from %s", a.Status)
	}
	a.Status = newStatus
	return nil
}

// StartsAt parses the appointment's date and slot time in the given location.
func (a *Appointment) StartsAt(loc *time.Location) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", a.AppointmentDate+" "+a.AppointmentTime, loc)
}
