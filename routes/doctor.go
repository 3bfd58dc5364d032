package routes

import (
	"github.com/carebook/carebook/controllers"
	"github.com/carebook/carebook/store"
	"github.com/gofiber/fiber/v2"
)

// SetupDoctorRoutes configures the directory, profile and availability routes
func SetupDoctorRoutes(app *fiber.App, s *store.Store) {
	dc := controllers.NewDoctorController(s)
	doctor := app.Group("/doctors")
	doctor.Get("/", dc.GetAllDoctors)
	doctor.Get("/:id", dc.GetDoctor)
	doctor.Get("/:id/slots", dc.GetAvailableSlots)
}
