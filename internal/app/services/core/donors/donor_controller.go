package donors

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

type DonorController struct {
	DonorUsecase contracts.DonorUsecase
	Log          *zap.Logger
}

func NewDonorController(donorUsecase contracts.DonorUsecase, logger *zap.Logger) *DonorController {
	return &DonorController{
		DonorUsecase: donorUsecase,
		Log:          logger,
	}
}

func (ctrl *DonorController) UpdateAvailability(w http.ResponseWriter, r *http.Request) {
	request := new(requests.UpdateAvailability)
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

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = ctrl.DonorUsecase.UpdateAvailability(ctx, session.UserID, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DonorAvailabilityUpdatedSuccess, nil)
}

func (ctrl *DonorController) UploadProfilePicture(w http.ResponseWriter, r *http.Request) {
	request := new(requests.UploadProfilePicture)
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

	imageData, imageExtension, err := utils.DecodeBase64Image(request.ProfilePicture)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrImageValidation(err))
		return
	}
	request.ProfilePictureData = imageData
	request.ProfilePictureExtension = imageExtension

	session, err := utils.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	response, err := ctrl.DonorUsecase.UploadProfilePicture(ctx, session.UserID, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DonorProfilePictureUpdateSuccess, response)
}
