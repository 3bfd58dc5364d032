package data

import (
	"math/rand"
	"time"

	"github.com/carebook/carebook/models"
)

// SeedDoctors returns the hand-authored doctor directory with freshly
// generated schedules. The availability badge is authored alongside the
// record, not derived from the schedule; the two doctors carrying a
// "Fully Booked" and an "On Leave" badge also get every slot forced
// unavailable.
func SeedDoctors(now time.Time, rng *rand.Rand) []models.Doctor {
	return []models.Doctor{
		{
			ID:              "1",
			Name:            "Dr. Sarah Johnson",
			Specialization:  "Cardiologist",
			ProfileImage:    "/images/doctor1.jpg",
			Availability:    models.AvailableToday,
			Experience:      12,
			Rating:          4.8,
			Location:        "Heart Care Center, Mumbai",
			Education:       "MBBS, MD (Cardiology) - AIIMS Delhi",
			About:           "Dr. Sarah Johnson is a renowned cardiologist with over 12 years of experience in treating heart conditions. She specializes in preventive cardiology and has helped thousands of patients maintain healthy hearts.",
			Schedule:        GenerateTimeSlots(now, rng),
			ConsultationFee: 800,
		},
		{
			ID:              "2",
			Name:            "Dr. Michael Chen",
			Specialization:  "Dermatologist",
			ProfileImage:    "/images/doctor2.jpg",
			Availability:    models.AvailableToday,
			Experience:      8,
			Rating:          4.6,
			Location:        "Skin Care Clinic, Delhi",
			Education:       "MBBS, MD (Dermatology) - PGIMER Chandigarh",
			About:           "Dr. Michael Chen is an expert dermatologist specializing in skin disorders, cosmetic procedures, and hair treatments. He stays updated with the latest dermatological advancements.",
			Schedule:        GenerateTimeSlots(now, rng),
			ConsultationFee: 600,
		},
		{
			ID:              "3",
			Name:            "Dr. Priya Sharma",
			Specialization:  "Pediatrician",
			ProfileImage:    "/images/doctor3.jpg",
			Availability:    models.FullyBooked,
			Experience:      15,
			Rating:          4.9,
			Location:        "Children's Hospital, Bangalore",
			Education:       "MBBS, MD (Pediatrics) - CMC Vellore",
			About:           "Dr. Priya Sharma is a dedicated pediatrician with extensive experience in child healthcare. She is known for her gentle approach and expertise in treating various childhood conditions.",
			Schedule:        unavailableSchedule(now, rng),
			ConsultationFee: 700,
		},
		{
			ID:              "4",
			Name:            "Dr. Robert Wilson",
			Specialization:  "Orthopedic",
			ProfileImage:    "/images/doctor1.jpg",
			Availability:    models.AvailableTomorrow,
			Experience:      10,
			Rating:          4.7,
			Location:        "Bone & Joint Center, Chennai",
			Education:       "MBBS, MS (Orthopedics) - JIPMER",
			About:           "Dr. Robert Wilson specializes in orthopedic surgery and sports medicine. He has successfully treated numerous patients with bone and joint disorders.",
			Schedule:        GenerateTimeSlots(now, rng),
			ConsultationFee: 900,
		},
		{
			ID:              "5",
			Name:            "Dr. Emily Davis",
			Specialization:  "Gynecologist",
			ProfileImage:    "/images/doctor2.jpg",
			Availability:    models.OnLeave,
			Experience:      14,
			Rating:          4.8,
			Location:        "Women's Health Center, Pune",
			Education:       "MBBS, MD (Gynecology) - KEM Hospital Mumbai",
			About:           "Dr. Emily Davis is a compassionate gynecologist with expertise in women's health, pregnancy care, and reproductive medicine.",
			Schedule:        unavailableSchedule(now, rng),
			ConsultationFee: 750,
		},
		{
			ID:              "6",
			Name:            "Dr. James Miller",
			Specialization:  "Neurologist",
			ProfileImage:    "/images/doctor3.jpg",
			Availability:    models.AvailableToday,
			Experience:      16,
			Rating:          4.9,
			Location:        "Neuro Care Institute, Hyderabad",
			Education:       "MBBS, DM (Neurology) - NIMHANS Bangalore",
			About:           "Dr. James Miller is a highly experienced neurologist specializing in brain and nervous system disorders. He uses cutting-edge diagnostic techniques.",
			Schedule:        GenerateTimeSlots(now, rng),
			ConsultationFee: 1000,
		},
	}
}
