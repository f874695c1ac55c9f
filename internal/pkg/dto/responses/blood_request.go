package responses

import "time"

type AcceptanceRecord struct {
	DonorID     string     `json:"donor_id"`
	AcceptedAt  time.Time  `json:"accepted_at"`
	SubStatus   string     `json:"sub_status"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

type BloodRequest struct {
	ID             string             `json:"id"`
	RequesterID    string             `json:"requester_id"`
	BloodType      string             `json:"blood_type"`
	QuantityNeeded int                `json:"quantity_needed"`
	Urgency        string             `json:"urgency"`
	PatientRef     string             `json:"patient_ref,omitempty"`
	Longitude      float64            `json:"longitude"`
	Latitude       float64            `json:"latitude"`
	IsDirect       bool               `json:"is_direct"`
	RecipientID    string             `json:"recipient_id,omitempty"`
	Status         string             `json:"status"`
	AcceptedBy     []AcceptanceRecord `json:"accepted_by"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}
