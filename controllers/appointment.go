package controllers

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/carebook/carebook/models"
	"github.com/carebook/carebook/store"
	"github.com/carebook/carebook/utils"
	"github.com/carebook/carebook/validation"
	"github.com/gofiber/fiber/v2"
)

// AppointmentController serves the booking flow and the appointment list.
type AppointmentController struct {
	Store *store.Store

	// BookingDelay is the simulated processing latency applied before a
	// booking is finalized. It always runs to completion; clients are
	// expected to disable resubmission while a booking is in flight.
	BookingDelay time.Duration
}

func NewAppointmentController(s *store.Store, bookingDelay time.Duration) *AppointmentController {
	return &AppointmentController{
		Store:        s,
		BookingDelay: bookingDelay,
	}
}

// GetAllAppointments returns every recorded appointment in creation order.
func (ac *AppointmentController) GetAllAppointments(c *fiber.Ctx) error {
	appointments := ac.Store.Appointments()
	return c.JSON(fiber.Map{
		"appointments": appointments,
		"count":        len(appointments),
	})
}

// GetAppointment returns an appointment by ID.
func (ac *AppointmentController) GetAppointment(c *fiber.Ctx) error {
	appointment, ok := ac.Store.GetAppointmentByID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Appointment not found",
		})
	}
	return c.JSON(appointment)
}

// CreateAppointment handles a booking submission: validate the form against
// the slots currently open for the selected date, wait out the simulated
// processing delay, then reserve the slot and record the appointment in one
// step.
func (ac *AppointmentController) CreateAppointment(c *fiber.Ctx) error {
	var req store.BookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	req.PatientName = strings.TrimSpace(req.PatientName)
	req.PatientEmail = strings.TrimSpace(req.PatientEmail)

	doctor, ok := ac.Store.GetDoctorByID(req.DoctorID)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Doctor not found",
		})
	}

	slots := ac.Store.GetAvailableSlots(doctor.ID, req.AppointmentDate)
	availableTimes := make([]string, 0, len(slots))
	for _, slot := range slots {
		availableTimes = append(availableTimes, slot.StartTime)
	}

	form := validation.BookingForm{
		PatientName:     req.PatientName,
		PatientEmail:    req.PatientEmail,
		AppointmentDate: req.AppointmentDate,
		AppointmentTime: req.AppointmentTime,
	}
	if errs := validation.ValidateBooking(form, availableTimes, time.Now()); len(errs) > 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"message": "Booking validation failed",
			"errors":  errs,
		})
	}

	if ac.BookingDelay > 0 {
		time.Sleep(ac.BookingDelay)
	}

	appointment, err := ac.Store.AddAppointment(req)
	if err != nil {
		if errors.Is(err, store.ErrSlotUnavailable) {
			return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
				Message: "Time slot not available",
				Error:   err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to book appointment",
			Error:   err.Error(),
		})
	}

	// Confirmation mail is best-effort; booking success never depends on it.
	if err := sendConfirmationEmail(&appointment, &doctor); err != nil {
		log.Printf("Failed to send confirmation for appointment %s: %v", appointment.ID, err)
	}

	return c.Status(fiber.StatusCreated).JSON(appointment)
}

// sendConfirmationEmail constructs and sends the booking confirmation mail.
func sendConfirmationEmail(appointment *models.Appointment, doctor *models.Doctor) error {
	subject := fmt.Sprintf("Appointment Confirmed - %s", doctor.Name)
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your appointment has been booked successfully.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Doctor:</strong> %s (%s)</li>
			<li><strong>Location:</strong> %s</li>
			<li><strong>Date:</strong> %s</li>
			<li><strong>Time:</strong> %s</li>
			<li><strong>Consultation Fee:</strong> %d</li>
		</ul>
		<p>Please arrive on time. If you need to reschedule or cancel, contact us as soon as possible.</p>
		<p>Best regards,</p>
		<p>Your Carebook Team</p>
	`, appointment.PatientName, doctor.Name, doctor.Specialization, doctor.Location,
		utils.FormatDate(appointment.AppointmentDate),
		utils.FormatTime(appointment.AppointmentTime),
		doctor.ConsultationFee)

	return utils.SendEmail(appointment.PatientEmail, subject, body)
}
