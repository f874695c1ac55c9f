package models

// Donor is the eligibility snapshot the matcher queries. The document ID
// equals the donor's user ID; identity itself is owned by the auth
// collaborator.
type Donor struct {
	ID                string    `json:"id" bson:"_id,omitempty"`
	FullName          string    `json:"fullName" bson:"fullName"`
	BloodType         BloodType `json:"bloodType" bson:"bloodType"`
	IsAvailable       bool      `json:"isAvailable" bson:"isAvailable"`
	Location          GeoPoint  `json:"location" bson:"location"`
	ProfilePictureURL string    `json:"profilePictureUrl,omitempty" bson:"profilePictureUrl,omitempty"`
	TimeModel         `bson:",inline"`
}
