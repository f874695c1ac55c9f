package verifications

import (
	"context"
	"lifelink-service/internal/app/contracts"
	"lifelink-service/internal/pkg/constvars"
	"lifelink-service/internal/pkg/dto/requests"
	"lifelink-service/internal/pkg/exceptions"
	"lifelink-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type VerificationController struct {
	VerificationUsecase contracts.VerificationUsecase
	Log                 *zap.Logger
}

func NewVerificationController(verificationUsecase contracts.VerificationUsecase, logger *zap.Logger) *VerificationController {
	return &VerificationController{
		VerificationUsecase: verificationUsecase,
		Log:                 logger,
	}
}

func (ctrl *VerificationController) VerifyDonation(w http.ResponseWriter, r *http.Request) {
	request := new(requests.VerifyDonation)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	session, err := utils.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	response, err := ctrl.VerificationUsecase.Verify(ctx, session.UserID, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.VerificationSuccess, response)
}
