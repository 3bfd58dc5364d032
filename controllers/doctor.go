package controllers

import (
	"github.com/carebook/carebook/store"
	"github.com/carebook/carebook/utils"
	"github.com/gofiber/fiber/v2"
)

// DoctorController serves the directory, profile and availability views.
type DoctorController struct {
	Store *store.Store
}

func NewDoctorController(s *store.Store) *DoctorController {
	return &DoctorController{Store: s}
}

// GetAllDoctors returns the doctor directory, filtered by the optional ?q=
// search term over name, specialization and location.
func (dc *DoctorController) GetAllDoctors(c *fiber.Ctx) error {
	doctors := dc.Store.SearchDoctors(c.Query("q"))
	return c.JSON(fiber.Map{
		"doctors": doctors,
		"count":   len(doctors),
	})
}

// GetDoctor returns a single doctor profile by ID.
func (dc *DoctorController) GetDoctor(c *fiber.Ctx) error {
	doctor, ok := dc.Store.GetDoctorByID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Doctor not found",
		})
	}
	return c.JSON(fiber.Map{
		"doctor":          doctor,
		"open_slot_count": doctor.OpenSlotCount(),
	})
}

// GetAvailableSlots returns the doctor's open slots for the ?date= query.
// Unknown doctors and empty days both yield an empty list, never an error.
func (dc *DoctorController) GetAvailableSlots(c *fiber.Ctx) error {
	slots := dc.Store.GetAvailableSlots(c.Params("id"), c.Query("date"))
	return c.JSON(fiber.Map{
		"slots": slots,
		"count": len(slots),
	})
}
