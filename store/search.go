package store

import (
	"regexp"
	"strings"

	"github.com/carebook/carebook/models"
)

var drPrefix = regexp.MustCompile(`^dr\.?\s*`)

// SearchDoctors filters the directory by a free-text term over name,
// specialization and location. An empty term returns everyone. Searching for
// a bare doctor prefix ("dr", "dr.", "doctor") matches every doctor, and
// "dr <name>" matches against the part of the name after the prefix.
func (s *Store) SearchDoctors(term string) []models.Doctor {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doctors := []models.Doctor{}
	for i := range s.doctors {
		if matchesSearch(&s.doctors[i], term) {
			doctors = append(doctors, copyDoctor(&s.doctors[i]))
		}
	}
	return doctors
}

func matchesSearch(doctor *models.Doctor, term string) bool {
	search := strings.ToLower(strings.TrimSpace(term))
	if search == "" {
		return true
	}

	name := strings.ToLower(doctor.Name)
	if search == "dr" || search == "dr." || search == "doctor" {
		return strings.HasPrefix(name, "dr")
	}

	words := strings.Fields(search)
	if len(words) > 0 && (words[0] == "dr" || words[0] == "dr.") && strings.HasPrefix(name, "dr") {
		if len(words) == 1 {
			return true
		}
		nameAfterPrefix := drPrefix.ReplaceAllString(name, "")
		for _, word := range words[1:] {
			if strings.Contains(nameAfterPrefix, word) {
				return true
			}
		}
		return false
	}

	specialization := strings.ToLower(doctor.Specialization)
	location := strings.ToLower(doctor.Location)
	for _, word := range words {
		if strings.Contains(name, word) ||
			strings.Contains(specialization, word) ||
			strings.Contains(location, word) {
			return true
		}
		if anyWordHasPrefix(name, word) || anyWordHasPrefix(specialization, word) {
			return true
		}
	}
	return false
}

func anyWordHasPrefix(text, prefix string) bool {
	for _, word := range strings.Fields(text) {
		if strings.HasPrefix(word, prefix) {
			return true
		}
	}
	return false
}
