package routes

import (
	"time"

	"github.com/carebook/carebook/controllers"
	"github.com/carebook/carebook/store"
	"github.com/gofiber/fiber/v2"
)

// SetupAppointmentRoutes configures all appointment related routes
func SetupAppointmentRoutes(app *fiber.App, s *store.Store, bookingDelay time.Duration) {
	ac := controllers.NewAppointmentController(s, bookingDelay)
	appointment := app.Group("/appointments")
	appointment.Get("/", ac.GetAllAppointments)
	appointment.Get("/:id", ac.GetAppointment)
	appointment.Post("/", ac.CreateAppointment)
}
