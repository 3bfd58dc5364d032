package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/carebook/carebook/models"
	"github.com/carebook/carebook/snapshot"
	"github.com/carebook/carebook/utils"
)

// ErrSlotUnavailable is returned when a booking targets a slot that does not
// exist or has already been taken.
var ErrSlotUnavailable = errors.New("time slot not available")

// Store owns the doctor directory and the appointment list for the lifetime
// of the process. It is constructed once at startup and handed to its
// consumers explicitly; every read and write goes through the mutex, so a
// booking's check-and-reserve is a single atomic step.
//
// Only the appointment list is mirrored to the snapshot. Schedules are
// regenerated on every start, so slot availability resets while booked
// appointments stay recorded.
type Store struct {
	mu           sync.RWMutex
	doctors      []models.Doctor
	appointments []models.Appointment
	snap         snapshot.Snapshot
}

// BookingRequest carries the fields of a booking submission. The id, status
// and creation timestamp are assigned by the store.
type BookingRequest struct {
	DoctorID        string `json:"doctor_id"`
	PatientName     string `json:"patient_name"`
	PatientEmail    string `json:"patient_email"`
	AppointmentDate string `json:"appointment_date"`
	AppointmentTime string `json:"appointment_time"`
}

// New builds a store over the given directory and restores the appointment
// list from the snapshot when one exists.
func New(doctors []models.Doctor, snap snapshot.Snapshot) (*Store, error) {
	s := &Store{
		doctors: doctors,
		snap:    snap,
	}
	if snap != nil {
		data, ok, err := snap.Load(context.Background())
		if err != nil {
			return nil, fmt.Errorf("failed to load appointment snapshot: %w", err)
		}
		if ok {
			if err := json.Unmarshal(data, &s.appointments); err != nil {
				return nil, fmt.Errorf("failed to decode appointment snapshot: %w", err)
			}
		}
	}
	return s, nil
}

// Doctors returns a copy of the full directory.
func (s *Store) Doctors() []models.Doctor {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doctors := make([]models.Doctor, 0, len(s.doctors))
	for i := range s.doctors {
		doctors = append(doctors, copyDoctor(&s.doctors[i]))
	}
	return doctors
}

// GetDoctorByID looks a doctor up by identity. The second return is false
// when the id is unknown.
func (s *Store) GetDoctorByID(id string) (models.Doctor, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.doctors {
		if s.doctors[i].ID == id {
			return copyDoctor(&s.doctors[i]), true
		}
	}
	return models.Doctor{}, false
}

// GetAvailableSlots returns the doctor's open slots for the exact date, in
// schedule order. An unknown doctor yields an empty list, not an error.
func (s *Store) GetAvailableSlots(doctorID, date string) []models.TimeSlot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	slots := []models.TimeSlot{}
	for i := range s.doctors {
		if s.doctors[i].ID != doctorID {
			continue
		}
		for _, slot := range s.doctors[i].Schedule {
			if slot.Date == date && slot.IsAvailable {
				slots = append(slots, slot)
			}
		}
		break
	}
	return slots
}

// AddAppointment reserves the requested slot and records the appointment in
// one step under the store lock. If the (date, start time) slot does not
// exist or is already taken, nothing is recorded and ErrSlotUnavailable is
// returned, so two submissions racing for one slot admit exactly one winner.
func (s *Store) AddAppointment(req BookingRequest) (models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.reserveSlot(req.DoctorID, req.AppointmentDate, req.AppointmentTime) {
		return models.Appointment{}, ErrSlotUnavailable
	}

	appointment := models.Appointment{
		ID:              utils.GenerateID(),
		DoctorID:        req.DoctorID,
		PatientName:     req.PatientName,
		PatientEmail:    req.PatientEmail,
		AppointmentDate: req.AppointmentDate,
		AppointmentTime: req.AppointmentTime,
		Status:          models.StatusScheduled,
		CreatedAt:       time.Now().UTC().Format(time.RFC3339),
	}
	s.appointments = append(s.appointments, appointment)
	s.persistLocked()
	return appointment, nil
}

// reserveSlot flips the matching slot to unavailable. Caller must hold the
// write lock.
func (s *Store) reserveSlot(doctorID, date, startTime string) bool {
	for i := range s.doctors {
		if s.doctors[i].ID != doctorID {
			continue
		}
		for j := range s.doctors[i].Schedule {
			slot := &s.doctors[i].Schedule[j]
			if slot.Date == date && slot.StartTime == startTime && slot.IsAvailable {
				slot.IsAvailable = false
				return true
			}
		}
		return false
	}
	return false
}

// Appointments returns a copy of the full appointment list in creation order.
func (s *Store) Appointments() []models.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	appointments := make([]models.Appointment, len(s.appointments))
	copy(appointments, s.appointments)
	return appointments
}

// GetAppointmentByID looks an appointment up by identity.
func (s *Store) GetAppointmentByID(id string) (models.Appointment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, appointment := range s.appointments {
		if appointment.ID == id {
			return appointment, true
		}
	}
	return models.Appointment{}, false
}

// UpcomingAppointments returns the scheduled appointments starting within
// [from, to), for the reminder sweep.
func (s *Store) UpcomingAppointments(from, to time.Time) []models.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var upcoming []models.Appointment
	for _, appointment := range s.appointments {
		if appointment.Status != models.StatusScheduled {
			continue
		}
		startsAt, err := appointment.StartsAt(from.Location())
		if err != nil {
			continue
		}
		if !startsAt.Before(from) && startsAt.Before(to) {
			upcoming = append(upcoming, appointment)
		}
	}
	return upcoming
}

// CompletePastAppointments marks scheduled appointments whose slot has
// passed as completed and reports how many were updated.
func (s *Store) CompletePastAppointments(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated := 0
	for i := range s.appointments {
		appointment := &s.appointments[i]
		if appointment.Status != models.StatusScheduled {
			continue
		}
		startsAt, err := appointment.StartsAt(now.Location())
		if err != nil {
			continue
		}
		if startsAt.Before(now) {
			if err := appointment.UpdateStatus(models.StatusCompleted); err != nil {
				continue
			}
			updated++
		}
	}
	if updated > 0 {
		s.persistLocked()
	}
	return updated
}

// persistLocked mirrors the appointment list to the snapshot. Failures are
// logged and never fatal; the in-memory list stays authoritative for the
// session. Caller must hold the write lock.
func (s *Store) persistLocked() {
	if s.snap == nil {
		return
	}
	data, err := json.Marshal(s.appointments)
	if err != nil {
		log.Printf("Failed to serialize appointments: %v", err)
		return
	}
	if err := s.snap.Save(context.Background(), data); err != nil {
		log.Printf("Failed to save appointment snapshot: %v", err)
	}
}

func copyDoctor(d *models.Doctor) models.Doctor {
	doctor := *d
	doctor.Schedule = make([]models.TimeSlot, len(d.Schedule))
	copy(doctor.Schedule, d.Schedule)
	return doctor
}
