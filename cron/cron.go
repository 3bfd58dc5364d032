package cron

import (
	"fmt"
	"log"
	"time"

	"github.com/carebook/carebook/models"
	"github.com/carebook/carebook/store"
	"github.com/carebook/carebook/utils"
	"github.com/robfig/cron/v3"
)

// StartCronJobs initializes and starts the scheduler for the appointment
// maintenance sweep: every minute, past scheduled appointments are marked
// completed and patients with an appointment in the next hour get a
// reminder.
func StartCronJobs(s *store.Store) {
	c := cron.New()
	_, err := c.AddFunc("* * * * *", func() {
		completePastAppointments(s)
		sendAppointmentReminders(s)
	})
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	c.Start()
	log.Println("Cron job scheduler started for appointment maintenance")
}

func completePastAppointments(s *store.Store) {
	if updated := s.CompletePastAppointments(time.Now()); updated > 0 {
		log.Printf("Marked %d past appointments as completed", updated)
	}
}

// sendAppointmentReminders checks for appointments and sends reminders
func sendAppointmentReminders(s *store.Store) {
	now := time.Now()
	// Look for appointments starting in the next hour
	appointments := s.UpcomingAppointments(now.Add(55*time.Minute), now.Add(65*time.Minute))

	for _, appointment := range appointments {
		doctor, ok := s.GetDoctorByID(appointment.DoctorID)
		if !ok {
			continue
		}
		if err := sendReminderEmail(&appointment, &doctor); err != nil {
			log.Printf("Failed to send reminder for appointment %s: %v", appointment.ID, err)
			continue
		}
		log.Printf("Sent reminder for appointment %s to %s", appointment.ID, appointment.PatientEmail)
	}
}

// sendReminderEmail constructs and sends the reminder email
func sendReminderEmail(appointment *models.Appointment, doctor *models.Doctor) error {
	subject := fmt.Sprintf("Reminder: Upcoming Appointment - %s", doctor.Name)
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>This is a reminder for your upcoming appointment scheduled in one hour.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Doctor:</strong> %s (%s)</li>
			<li><strong>Location:</strong> %s</li>
			<li><strong>Date:</strong> %s</li>
			<li><strong>Time:</strong> %s</li>
			<li><strong>Status:</strong> %s</li>
		</ul>
		<p>Please arrive on time. If you need to reschedule or cancel, contact us as soon as possible.</p>
		<p>Best regards,</p>
		<p>Your Carebook Team</p>
	`, appointment.PatientName, doctor.Name, doctor.Specialization, doctor.Location,
		utils.FormatDate(appointment.AppointmentDate),
		utils.FormatTime(appointment.AppointmentTime),
		appointment.Status)

	return utils.SendEmail(appointment.PatientEmail, subject, body)
}
