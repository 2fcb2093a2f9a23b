package dto

// Response DTOs

type DoctorResponse struct {
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
