package main

import (
	"log"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/joho/godotenv"

	"github.com/carebook/carebook/cron"
	"github.com/carebook/carebook/data"
	"github.com/carebook/carebook/routes"
	"github.com/carebook/carebook/snapshot"
	"github.com/carebook/carebook/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file. Using environment variables directly.")
	}

	snap, err := newSnapshot()
	if err != nil {
		log.Fatal("Failed to open appointment snapshot: ", err)
	}

	// Schedules are regenerated on every start; only booked appointments
	// survive a restart through the snapshot.
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	doctors := data.SeedDoctors(time.Now(), rng)

	s, err := store.New(doctors, snap)
	if err != nil {
		log.Fatal("Failed to initialize appointment store: ", err)
	}
	log.Printf("✅ Appointment store initialized with %d doctors and %d appointments", len(doctors), len(s.Appointments()))

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Hello, World!")
	})
	routes.SetupDoctorRoutes(app, s)
	routes.SetupAppointmentRoutes(app, s, bookingDelay())

	cron.StartCronJobs(s)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	log.Fatal(app.Listen(":" + port))
}

// newSnapshot picks the snapshot backend: Redis when REDIS_ADDR is set, a
// local JSON file otherwise.
func newSnapshot() (snapshot.Snapshot, error) {
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		return snapshot.NewRedis(addr)
	}
	path := os.Getenv("SNAPSHOT_FILE")
	if path == "" {
		path = "appointments.json"
	}
	return snapshot.NewFile(path), nil
}

func bookingDelay() time.Duration {
	ms, err := strconv.Atoi(os.Getenv("BOOKING_DELAY_MS"))
	if err != nil || ms < 0 {
		ms = 1500
	}
	return time.Duration(ms) * time.Millisecond
}
