package models

import "time"

type BloodType string

const (
	BloodTypeAPos  BloodType = "A+"
	BloodTypeANeg  BloodType = "A-"
	BloodTypeBPos  BloodType = "B+"
	BloodTypeBNeg  BloodType = "B-"
	BloodTypeABPos BloodType = "AB+"
	BloodTypeABNeg BloodType = "AB-"
	BloodTypeOPos  BloodType = "O+"
	BloodTypeONeg  BloodType = "O-"
)

type RequestUrgency string

const (
	UrgencyCritical RequestUrgency = "critical"
	UrgencyModerate RequestUrgency = "moderate"
	UrgencyLow      RequestUrgency = "low"
)

type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "pending"
	RequestStatusAccepted  RequestStatus = "accepted"
	RequestStatusFulfilled RequestStatus = "fulfilled"
	RequestStatusCancelled RequestStatus = "cancelled"
	RequestStatusRejected  RequestStatus = "rejected"
)

// IsTerminal reports whether no further status mutation is permitted.
func (s RequestStatus) IsTerminal() bool {
	return s == RequestStatusFulfilled || s == RequestStatusCancelled || s == RequestStatusRejected
}

// CanTransitionTo encodes the full transition table. Rejection is legal
// only for direct requests; the usecase enforces that extra condition.
func (s RequestStatus) CanTransitionTo(next RequestStatus) bool {
	switch s {
	case RequestStatusPending:
		return next == RequestStatusAccepted || next == RequestStatusCancelled || next == RequestStatusRejected
	case RequestStatusAccepted:
		return next == RequestStatusFulfilled || next == RequestStatusCancelled
	default:
		return false
	}
}

type AcceptanceSubStatus string

const (
	AcceptanceAccepted  AcceptanceSubStatus = "accepted"
	AcceptanceCompleted AcceptanceSubStatus = "completed"
	AcceptanceNoShow    AcceptanceSubStatus = "no_show"
)

// GeoPoint is a GeoJSON point, coordinates ordered [longitude, latitude].
type GeoPoint struct {
	Type        string    `json:"type" bson:"type"`
	Coordinates []float64 `json:"coordinates" bson:"coordinates"`
}

func NewGeoPoint(longitude, latitude float64) GeoPoint {
	return GeoPoint{
		Type:        "Point",
		Coordinates: []float64{longitude, latitude},
	}
}

func (p GeoPoint) IsValid() bool {
	if p.Type != "Point" || len(p.Coordinates) != 2 {
		return false
	}
	longitude, latitude := p.Coordinates[0], p.Coordinates[1]
	return longitude >= -180 && longitude <= 180 && latitude >= -90 && latitude <= 90
}

// AcceptanceRecord is owned by its BloodRequest and keyed by DonorID.
type AcceptanceRecord struct {
	DonorID     string              `json:"donorId" bson:"donorId"`
	AcceptedAt  time.Time           `json:"acceptedAt" bson:"acceptedAt"`
	SubStatus   AcceptanceSubStatus `json:"subStatus" bson:"subStatus"`
	CompletedAt *time.Time          `json:"completedAt,omitempty" bson:"completedAt,omitempty"`
}

type BloodRequest struct {
	ID             string             `json:"id" bson:"_id,omitempty"`
	RequesterID    string             `json:"requesterId" bson:"requesterId"`
	BloodType      BloodType          `json:"bloodType" bson:"bloodType"`
	QuantityNeeded int                `json:"quantityNeeded" bson:"quantityNeeded"`
	Urgency        RequestUrgency     `json:"urgency" bson:"urgency"`
	PatientRef     string             `json:"patientRef,omitempty" bson:"patientRef,omitempty"`
	Location       GeoPoint           `json:"location" bson:"location"`
	IsDirect       bool               `json:"isDirect" bson:"isDirect"`
	RecipientID    string             `json:"recipientId,omitempty" bson:"recipientId,omitempty"`
	Status         RequestStatus      `json:"status" bson:"status"`
	AcceptedBy     []AcceptanceRecord `json:"acceptedBy" bson:"acceptedBy"`
	TimeModel      `bson:",inline"`
}

// ActiveAcceptance returns the record with sub-status accepted, keyed by
// donor rather than position. Under the single-winner policy there is at
// most one.
func (r *BloodRequest) ActiveAcceptance() *AcceptanceRecord {
	for i := range r.AcceptedBy {
		if r.AcceptedBy[i].SubStatus == AcceptanceAccepted {
			return &r.AcceptedBy[i]
		}
	}
	return nil
}
