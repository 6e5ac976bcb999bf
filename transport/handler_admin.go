package transport

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/fw-development/constant"
	"github.com/muhammadheryan/fw-development/model"
	utilsContext "github.com/muhammadheryan/fw-development/utils/context"
	"github.com/muhammadheryan/fw-development/utils/errors"
)

// Login handler
// @Summary Admin login
// @Description Login with the admin credentials and receive a JWT token
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} model.LoginResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Router /admin/login [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if s.UserApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	res, err := s.UserApp.Login(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Logout handler
// @Summary Admin logout
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.StatusMessage
// @Failure 401 {object} model.ErrorResponse
// @Router /admin/logout [post]
func (s *RestHandler) Logout(w http.ResponseWriter, r *http.Request) {
	session, _ := utilsContext.GetSession(r.Context())
	if session == nil {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	if err := s.UserApp.Logout(r.Context(), session.ID); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, model.StatusMessage{Message: "logged out"})
}

// Me handler
// @Summary Current admin session
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.Session
// @Failure 401 {object} model.ErrorResponse
// @Router /admin/me [get]
func (s *RestHandler) Me(w http.ResponseWriter, r *http.Request) {
	session, ok := utilsContext.GetSession(r.Context())
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}
	writeSuccess(w, session)
}

// AdminGetOrder handler
// @Summary Order with status and flow
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param orderId path string true "Order ID"
// @Success 200 {object} model.OrderDetailResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /admin/orders/{orderId} [get]
func (s *RestHandler) AdminGetOrder(w http.ResponseWriter, r *http.Request) {
	s.GetOrder(w, r)
}

// VerifyPayment handler
// @Summary Mark a submitted payment as verified
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param orderId path string true "Order ID"
// @Success 200 {object} model.StatusUpdateResponse
// @Failure 404 {object} model.ErrorResponse
// @Failure 409 {object} model.ErrorResponse
// @Router /admin/orders/{orderId}/verify [post]
func (s *RestHandler) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	s.updateStatus(w, r, constant.OrderStatusVerified)
}

// ProofReceived handler
// @Summary Worker callback after a proof submission event
// @Tags Internal
// @Produce json
// @Param orderId path string true "Order ID"
// @Success 200 {object} model.StatusUpdateResponse
// @Failure 403 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /internal/v1/orders/{orderId}/proof-received [post]
func (s *RestHandler) ProofReceived(w http.ResponseWriter, r *http.Request) {
	s.updateStatus(w, r, constant.OrderStatusProofSubmitted)
}

func (s *RestHandler) updateStatus(w http.ResponseWriter, r *http.Request, status constant.OrderStatus) {
	orderID := mux.Vars(r)["orderId"]
	if err := s.OrderApp.UpdateStatus(r.Context(), orderID, status); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, model.StatusUpdateResponse{OrderID: orderID, Status: string(status)})
}
