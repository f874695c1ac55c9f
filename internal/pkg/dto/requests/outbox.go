package requests

// Outbox payloads published to RabbitMQ after a verified donation. The
// inventory and mailer consumers live outside this service.

type InventoryIncrementEvent struct {
	FacilityID string `json:"facility_id"`
	BloodType  string `json:"blood_type"`
	Units      int    `json:"units"`
	RequestID  string `json:"request_id"`
}

type CertificateEmailEvent struct {
	DonorID    string `json:"donor_id"`
	FacilityID string `json:"facility_id"`
	RequestID  string `json:"request_id"`
}
