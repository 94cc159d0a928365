package controllers

import (
	"context"
	"net/http"
	"salon-service/internal/app/contracts"
	"salon-service/internal/pkg/constvars"
	"salon-service/internal/pkg/dto/requests"
	"salon-service/internal/pkg/exceptions"
	"salon-service/internal/pkg/utils"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type RewardController struct {
	Log           *zap.Logger
	RewardUsecase contracts.RewardUsecase
}

func NewRewardController(logger *zap.Logger, rewardUsecase contracts.RewardUsecase) *RewardController {
	return &RewardController{
		Log:           logger,
		RewardUsecase: rewardUsecase,
	}
}

func (ctrl *RewardController) GetCustomerRewards(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("RewardController.GetCustomerRewards requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	customerID := chi.URLParam(r, "customerID")

	ctrl.Log.Info("RewardController.GetCustomerRewards called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCustomerIDKey, customerID))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	response, err := ctrl.RewardUsecase.GetCustomerRewards(ctx, customerID)
	if err != nil {
		ctrl.Log.Error("RewardController.GetCustomerRewards RewardUsecase.GetCustomerRewards error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))

		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetRewardsSuccessMessage, response)
}

func (ctrl *RewardController) AddPoints(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("RewardController.AddPoints requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	request := &requests.AddPoints{}
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctrl.Log.Info("RewardController.AddPoints called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCustomerIDKey, request.CustomerID),
		zap.Int("points", request.Points))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	response, err := ctrl.RewardUsecase.AddPoints(ctx, request)
	if err != nil {
		ctrl.Log.Error("RewardController.AddPoints RewardUsecase.AddPoints error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))

		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AddPointsSuccessMessage, response)
}

func (ctrl *RewardController) RedeemPoints(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("RewardController.RedeemPoints requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	request := &requests.RedeemPoints{}
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctrl.Log.Info("RewardController.RedeemPoints called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCustomerIDKey, request.CustomerID),
		zap.Int("points", request.Points))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	response, err := ctrl.RewardUsecase.RedeemPoints(ctx, request)
	if err != nil {
		ctrl.Log.Error("RewardController.RedeemPoints RewardUsecase.RedeemPoints error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))

		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RedeemPointsSuccessMessage, response)
}

func (ctrl *RewardController) GetHistory(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("RewardController.GetHistory requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	customerID := chi.URLParam(r, "customerID")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	response, err := ctrl.RewardUsecase.GetHistory(ctx, customerID)
	if err != nil {
		ctrl.Log.Error("RewardController.GetHistory RewardUsecase.GetHistory error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))

		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetRewardsHistorySuccessMessage, response)
}

func (ctrl *RewardController) GetTiers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	response := ctrl.RewardUsecase.GetTiers(ctx)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetRewardsTiersSuccessMessage, response)
}
