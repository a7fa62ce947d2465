package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/akosachev/panelshop/internal/logger"
	"github.com/akosachev/panelshop/internal/models"
	"github.com/akosachev/panelshop/internal/services"
)

// UserAdmin defines the admin-service operations behind the user endpoints.
type UserAdmin interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, userID int64) (models.User, error)
	EditSubscription(ctx context.Context, userID int64, edit services.SubscriptionEdit) (models.User, error)
}

// WalletAdjuster defines the wallet operation behind manual balance edits.
type WalletAdjuster interface {
	Adjust(ctx context.Context, userID int64, amount float64, note string) (float64, error)
}

// AdjustRequest represents a manual wallet correction
// swagger:model AdjustRequest
type AdjustRequest struct {
	// Signed amount; positive credits, negative debits
	// required: true
	Amount float64 `json:"amount"`

	// Reason recorded on the transaction
	Note string `json:"note"`
}

// AdjustResponse represents the wallet state after a correction
// swagger:model AdjustResponse
type AdjustResponse struct {
	// New wallet balance
	NewBalance float64 `json:"new_balance"`
}

// UserErrorResponse represents an error on user endpoints
// swagger:model UserErrorResponse
type UserErrorResponse struct {
	// Error message
	// default: User not found
	Error string `json:"error"`
}

func userIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// NewListUsersHandler returns all users with their wallets and histories.
// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {array} models.User
// @Router /users [get]
// @Security BearerAuth
func NewListUsersHandler(svc UserAdmin) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		users, err := svc.ListUsers(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list users", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(UserErrorResponse{Error: "Internal server error"})
			return
		}
		json.NewEncoder(w).Encode(users)
	}
}

// NewGetUserHandler returns one user.
// @Summary Get user
// @Tags users
// @Produce json
// @Param id path int true "User id"
// @Success 200 {object} models.User
// @Failure 404 {object} handlers.UserErrorResponse "User not found"
// @Router /users/{id} [get]
// @Security BearerAuth
func NewGetUserHandler(svc UserAdmin) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		userID, err := userIDParam(r)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UserErrorResponse{Error: "Invalid user id"})
			return
		}

		user, err := svc.GetUser(r.Context(), userID)
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(UserErrorResponse{Error: "User not found"})
				return
			}
			logger.Log.Errorw("failed to get user", "user_id", userID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(UserErrorResponse{Error: "Internal server error"})
			return
		}
		json.NewEncoder(w).Encode(user)
	}
}

// NewEditSubscriptionHandler edits a user's subscription expiry or plan.
// @Summary Edit user subscription
// @Description Changes the subscription's expiry and/or plan. A plan change is pushed to the control panel before the record updates.
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User id"
// @Param edit body services.SubscriptionEdit true "Subscription changes"
// @Success 200 {object} models.User
// @Failure 404 {object} handlers.UserErrorResponse "User not found or no subscription"
// @Router /users/{id}/subscription [put]
// @Security BearerAuth
func NewEditSubscriptionHandler(svc UserAdmin) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		userID, err := userIDParam(r)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UserErrorResponse{Error: "Invalid user id"})
			return
		}

		var edit services.SubscriptionEdit
		if err := json.NewDecoder(r.Body).Decode(&edit); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UserErrorResponse{Error: "Invalid request body"})
			return
		}

		user, err := svc.EditSubscription(r.Context(), userID, edit)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound), errors.Is(err, services.ErrNoSubscription):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(UserErrorResponse{Error: "User not found or has no subscription"})
			case errors.Is(err, services.ErrProvisioningFailed):
				w.WriteHeader(http.StatusBadGateway)
				json.NewEncoder(w).Encode(UserErrorResponse{Error: "Control panel rejected the plan change"})
			default:
				logger.Log.Errorw("failed to edit subscription", "user_id", userID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(UserErrorResponse{Error: "Internal server error"})
			}
			return
		}
		json.NewEncoder(w).Encode(user)
	}
}

// NewAdjustWalletHandler applies a manual wallet correction through the
// wallet service, so balance and history stay consistent.
// @Summary Adjust user wallet
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User id"
// @Param adjustRequest body handlers.AdjustRequest true "Adjustment"
// @Success 200 {object} handlers.AdjustResponse
// @Failure 400 {object} handlers.UserErrorResponse "Invalid amount or insufficient funds"
// @Failure 404 {object} handlers.UserErrorResponse "User not found"
// @Router /users/{id}/wallet/adjust [post]
// @Security BearerAuth
func NewAdjustWalletHandler(wallet WalletAdjuster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		userID, err := userIDParam(r)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UserErrorResponse{Error: "Invalid user id"})
			return
		}

		var req AdjustRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UserErrorResponse{Error: "Invalid request body"})
			return
		}

		balance, err := wallet.Adjust(r.Context(), userID, req.Amount, req.Note)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(UserErrorResponse{Error: "User not found"})
			case errors.Is(err, services.ErrInsufficientFunds), errors.Is(err, services.ErrInvalidAmount):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(UserErrorResponse{Error: "Invalid amount or insufficient funds"})
			default:
				logger.Log.Errorw("failed to adjust wallet", "user_id", userID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(UserErrorResponse{Error: "Internal server error"})
			}
			return
		}
		json.NewEncoder(w).Encode(AdjustResponse{NewBalance: balance})
	}
}
