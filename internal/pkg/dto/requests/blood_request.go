package requests

type CreateBloodRequest struct {
	BloodType      string   `json:"blood_type" validate:"required,blood_type"`
	QuantityNeeded int      `json:"quantity_needed" validate:"required,min=1"`
	Urgency        string   `json:"urgency" validate:"required,urgency"`
	PatientRef     string   `json:"patient_ref,omitempty" validate:"omitempty,max=128"`
	Longitude      *float64 `json:"longitude" validate:"required,min=-180,max=180"`
	Latitude       *float64 `json:"latitude" validate:"required,min=-90,max=90"`
	IsDirect       bool     `json:"is_direct"`
	RecipientID    string   `json:"recipient_id,omitempty" validate:"required_if=IsDirect true"`
}

type VerifyDonation struct {
	DonorID   string `json:"donor_id" validate:"required"`
	RequestID string `json:"request_id,omitempty"`
}
