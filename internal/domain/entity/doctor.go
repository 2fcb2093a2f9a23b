package entity

// Doctor represents a healthcare provider profile and its booking metadata.
// The catalog is read-only: records are supplied by the seed data and never
// mutated at runtime. ID is the sole lookup key and is unique.
type Doctor struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Specialization  string   `json:"specialization"`
	ProfileImage    string   `json:"profileImage"`
	Rating          float64  `json:"rating"`
	ReviewCount     int      `json:"reviewCount"`
	Location        string   `json:"location"`
	Experience      int      `json:"experience"`
	IsAvailable     bool     `json:"isAvailable"`
	Bio             string   `json:"bio"`
	Qualifications  []string `json:"qualifications"`
	Languages       []string `json:"languages"`
	ConsultationFee float64  `json:"consultationFee"`
	AvailableSlots  []string `json:"availableSlots"`
}

// HasSlot reports whether slot is one of the doctor's bookable time slots.
func (d *Doctor) HasSlot(slot string) bool {
	for _, s := range d.AvailableSlots {
		if s == slot {
			return true
		}
	}
	return false
}
