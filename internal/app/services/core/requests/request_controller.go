package requests

import (
	"context"
	"lifelink-service/internal/app/contracts"
	"lifelink-service/internal/pkg/constvars"
	"lifelink-service/internal/pkg/dto/requests"
	"lifelink-service/internal/pkg/exceptions"
	"lifelink-service/internal/pkg/utils"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type RequestController struct {
	RequestUsecase contracts.RequestUsecase
	Log            *zap.Logger
}

func NewRequestController(requestUsecase contracts.RequestUsecase, logger *zap.Logger) *RequestController {
	return &RequestController{
		RequestUsecase: requestUsecase,
		Log:            logger,
	}
}

func (ctrl *RequestController) CreateRequest(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateBloodRequest)
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

	response, err := ctrl.RequestUsecase.CreateRequest(ctx, session, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.RequestCreatedSuccess, response)
}

func (ctrl *RequestController) GetPendingBroadcast(w http.ResponseWriter, r *http.Request) {
	queryParams := parseQueryParams(r)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	response, err := ctrl.RequestUsecase.FindPendingBroadcast(ctx, queryParams)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RequestsFetchedSuccess, response)
}

func (ctrl *RequestController) GetOwnRequests(w http.ResponseWriter, r *http.Request) {
	session, err := utils.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	queryParams := parseQueryParams(r)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	response, err := ctrl.RequestUsecase.FindOwn(ctx, session, queryParams)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RequestsFetchedSuccess, response)
}

func (ctrl *RequestController) GetRequestByID(w http.ResponseWriter, r *http.Request) {
	requestID := chi.URLParam(r, constvars.URLParamRequestID)
	if requestID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamMissing(constvars.URLParamRequestID))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	response, err := ctrl.RequestUsecase.FindByID(ctx, requestID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RequestFetchedSuccess, response)
}

func (ctrl *RequestController) AcceptRequest(w http.ResponseWriter, r *http.Request) {
	requestID := chi.URLParam(r, constvars.URLParamRequestID)
	if requestID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamMissing(constvars.URLParamRequestID))
		return
	}

	session, err := utils.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	response, err := ctrl.RequestUsecase.AcceptRequest(ctx, requestID, session.UserID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RequestAcceptedSuccess, response)
}

func (ctrl *RequestController) RejectRequest(w http.ResponseWriter, r *http.Request) {
	requestID := chi.URLParam(r, constvars.URLParamRequestID)
	if requestID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamMissing(constvars.URLParamRequestID))
		return
	}

	session, err := utils.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	response, err := ctrl.RequestUsecase.RejectRequest(ctx, requestID, session.UserID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RequestRejectedSuccess, response)
}

func (ctrl *RequestController) CancelRequest(w http.ResponseWriter, r *http.Request) {
	requestID := chi.URLParam(r, constvars.URLParamRequestID)
	if requestID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamMissing(constvars.URLParamRequestID))
		return
	}

	session, err := utils.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	response, err := ctrl.RequestUsecase.CancelRequest(ctx, requestID, session.UserID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RequestCancelledSuccess, response)
}

func parseQueryParams(r *http.Request) *requests.QueryParams {
	page, _ := strconv.Atoi(r.URL.Query().Get(constvars.QueryParamPage))
	pageSize, _ := strconv.Atoi(r.URL.Query().Get(constvars.QueryParamPageSize))
	return &requests.QueryParams{
		Page:     page,
		PageSize: pageSize,
	}
}
