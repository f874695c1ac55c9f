package utils

import (
	"lifelink-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validCreateRequest() *requests.CreateBloodRequest {
	longitude := 106.8456
	latitude := -6.2088
	return &requests.CreateBloodRequest{
		BloodType:      "O-",
		QuantityNeeded: 2,
		Urgency:        "critical",
		Longitude:      &longitude,
		Latitude:       &latitude,
	}
}

func TestValidateCreateBloodRequest(t *testing.T) {
	t.Run("valid broadcast request", func(t *testing.T) {
		assert.NoError(t, ValidateStruct(validCreateRequest()))
	})

	t.Run("unknown blood type", func(t *testing.T) {
		request := validCreateRequest()
		request.BloodType = "C+"
		assert.Error(t, ValidateStruct(request))
	})

	t.Run("unknown urgency", func(t *testing.T) {
		request := validCreateRequest()
		request.Urgency = "whenever"
		assert.Error(t, ValidateStruct(request))
	})

	t.Run("missing coordinates", func(t *testing.T) {
		request := validCreateRequest()
		request.Longitude = nil
		assert.Error(t, ValidateStruct(request))
	})

	t.Run("zero coordinates are legitimate", func(t *testing.T) {
		request := validCreateRequest()
		zero := 0.0
		request.Longitude = &zero
		request.Latitude = &zero
		assert.NoError(t, ValidateStruct(request))
	})

	t.Run("direct request requires a recipient", func(t *testing.T) {
		request := validCreateRequest()
		request.IsDirect = true
		assert.Error(t, ValidateStruct(request))

		request.RecipientID = "donor-1"
		assert.NoError(t, ValidateStruct(request))
	})

	t.Run("quantity must be positive", func(t *testing.T) {
		request := validCreateRequest()
		request.QuantityNeeded = 0
		assert.Error(t, ValidateStruct(request))
	})
}

func TestValidateVerifyDonation(t *testing.T) {
	assert.Error(t, ValidateStruct(&requests.VerifyDonation{}))
	assert.NoError(t, ValidateStruct(&requests.VerifyDonation{DonorID: "donor-1"}))
	assert.NoError(t, ValidateStruct(&requests.VerifyDonation{DonorID: "donor-1", RequestID: "req-1"}))
}
