package notifications

import (
	"context"
	"lifelink-service/internal/app/contracts"
	"lifelink-service/internal/pkg/constvars"
	"lifelink-service/internal/pkg/dto/requests"
	"lifelink-service/internal/pkg/dto/responses"
	"lifelink-service/internal/pkg/exceptions"
	"lifelink-service/internal/pkg/utils"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type NotificationController struct {
	NotificationUsecase contracts.NotificationUsecase
	Log                 *zap.Logger
}

func NewNotificationController(notificationUsecase contracts.NotificationUsecase, logger *zap.Logger) *NotificationController {
	return &NotificationController{
		NotificationUsecase: notificationUsecase,
		Log:                 logger,
	}
}

func (ctrl *NotificationController) GetOwnNotifications(w http.ResponseWriter, r *http.Request) {
	session, err := utils.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get(constvars.QueryParamPage))
	pageSize, _ := strconv.Atoi(r.URL.Query().Get(constvars.QueryParamPageSize))
	queryParams := &requests.QueryParams{Page: page, PageSize: pageSize}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	response, pagination, err := ctrl.NotificationUsecase.FindOwn(ctx, session.UserID, queryParams)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.NotificationsFetchedSuccess, pagination, response)
}

func (ctrl *NotificationController) GetUnreadCount(w http.ResponseWriter, r *http.Request) {
	session, err := utils.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := ctrl.NotificationUsecase.CountUnread(ctx, session.UserID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UnreadCountFetchedSuccess, &responses.UnreadCount{Count: count})
}

func (ctrl *NotificationController) MarkRead(w http.ResponseWriter, r *http.Request) {
	notificationID := chi.URLParam(r, constvars.URLParamNotificationID)
	if notificationID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamMissing(constvars.URLParamNotificationID))
		return
	}

	session, err := utils.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	response, err := ctrl.NotificationUsecase.MarkRead(ctx, notificationID, session.UserID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.NotificationMarkedReadSuccess, response)
}
