package responses

type Donor struct {
	ID                string `json:"id"`
	FullName          string `json:"full_name"`
	BloodType         string `json:"blood_type"`
	IsAvailable       bool   `json:"is_available"`
	ProfilePictureURL string `json:"profile_picture_url,omitempty"`
}
