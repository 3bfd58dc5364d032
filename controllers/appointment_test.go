package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carebook/carebook/data"
	"github.com/carebook/carebook/models"
	"github.com/carebook/carebook/routes"
	"github.com/carebook/carebook/snapshot"
	"github.com/carebook/carebook/store"
)

func newTestApp(t *testing.T) (*fiber.App, *store.Store) {
	t.Helper()

	doctors := data.SeedDoctors(time.Now(), rand.New(rand.NewSource(1)))
	for i := range doctors[0].Schedule {
		doctors[0].Schedule[i].IsAvailable = true
	}
	s, err := store.New(doctors, snapshot.NewMemory())
	require.NoError(t, err)

	app := fiber.New()
	routes.SetupDoctorRoutes(app, s)
	routes.SetupAppointmentRoutes(app, s, 0)
	return app, s
}

func postJSON(t *testing.T, app *fiber.App, path string, payload any) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func getJSON(t *testing.T, app *fiber.App, path string, out any) *http.Response {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil), -1)
	require.NoError(t, err)
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func decode(t *testing.T, r io.Reader, out any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(r).Decode(out))
}

func bookingPayload(s *store.Store) map[string]string {
	date := time.Now().Format("2006-01-02")
	slot := s.GetAvailableSlots("1", date)[0]
	return map[string]string{
		"doctor_id":        "1",
		"patient_name":     "Jane Doe",
		"patient_email":    "jane@example.com",
		"appointment_date": slot.Date,
		"appointment_time": slot.StartTime,
	}
}

func TestCreateAppointment(t *testing.T) {
	app, s := newTestApp(t)
	payload := bookingPayload(s)

	resp := postJSON(t, app, "/appointments/", payload)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var appointment models.Appointment
	decode(t, resp.Body, &appointment)
	assert.NotEmpty(t, appointment.ID)
	assert.Equal(t, models.StatusScheduled, appointment.Status)
	assert.Equal(t, payload["appointment_time"], appointment.AppointmentTime)

	// The booked slot is no longer offered.
	for _, slot := range s.GetAvailableSlots("1", payload["appointment_date"]) {
		assert.NotEqual(t, payload["appointment_time"], slot.StartTime)
	}
}

func TestCreateAppointmentValidationErrors(t *testing.T) {
	app, s := newTestApp(t)
	payload := bookingPayload(s)
	payload["patient_name"] = "Dr. Smith"
	payload["patient_email"] = "not-an-email"

	resp := postJSON(t, app, "/appointments/", payload)
	require.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	var body struct {
		Errors map[string]string `json:"errors"`
	}
	decode(t, resp.Body, &body)
	assert.Equal(t, "Patient name should only contain letters and spaces", body.Errors["patient_name"])
	assert.Equal(t, "Please enter a valid email address", body.Errors["patient_email"])
	assert.Empty(t, s.Appointments())
}

func TestCreateAppointmentRebookingSameSlotFails(t *testing.T) {
	app, s := newTestApp(t)
	payload := bookingPayload(s)

	resp := postJSON(t, app, "/appointments/", payload)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = postJSON(t, app, "/appointments/", payload)
	require.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	var body struct {
		Errors map[string]string `json:"errors"`
	}
	decode(t, resp.Body, &body)
	assert.Equal(t, "Selected time slot is no longer available", body.Errors["appointment_time"])
	assert.Len(t, s.Appointments(), 1)
}

func TestCreateAppointmentUnknownDoctor(t *testing.T) {
	app, s := newTestApp(t)
	payload := bookingPayload(s)
	payload["doctor_id"] = "999"

	resp := postJSON(t, app, "/appointments/", payload)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestCreateAppointmentMalformedBody(t *testing.T) {
	app, _ := newTestApp(t)
	req := httptest.NewRequest(http.MethodPost, "/appointments/", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestGetAppointments(t *testing.T) {
	app, s := newTestApp(t)
	payload := bookingPayload(s)

	resp := postJSON(t, app, "/appointments/", payload)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var created models.Appointment
	decode(t, resp.Body, &created)

	var list struct {
		Appointments []models.Appointment `json:"appointments"`
		Count        int                  `json:"count"`
	}
	resp = getJSON(t, app, "/appointments/", &list)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, list.Count)

	var got models.Appointment
	resp = getJSON(t, app, fmt.Sprintf("/appointments/%s", created.ID), &got)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, created, got)

	resp = getJSON(t, app, "/appointments/nope", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
