package handler

import (
	"errors"
	"fmt"
	"net/http"

	"piquante/internal/core"
	"piquante/internal/http/payload"

	"go.uber.org/zap"
)

var (
	Signup = "POST /api/auth/signup"
	Login  = "POST /api/auth/login"
)

type UserHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	users            UserService
}

func NewUserHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, userService UserService) *UserHandler {
	return &UserHandler{
		logs:             logger,
		requestValidator: requestValidator,
		users:            userService,
	}
}

func (h *UserHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var signupPayload payload.SignupRequest
	err := h.requestValidator.DecodeAndValidateJSONPayload(r, &signupPayload)
	if err != nil {
		respond(h.logs, w, Response{
			Message: "Could not create user",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Signup,
			"request_id", requestId)
		return
	}

	err = h.users.Signup(r.Context(), signupPayload.ToMessage())
	if err != nil {
		resp := Response{
			Message: "Could not create user",
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrEmailTaken) {
			httpCode = http.StatusBadRequest
			resp.Error = err.Error()
		} else {
			resp.Error = "unexpected error occurred"
		}

		respond(h.logs, w, resp, httpCode, requestId)
		h.logs.Errorw("signup failed",
			"error", err,
			"handler", Signup,
			"request_id", requestId)
		return
	}

	respond(h.logs, w, Response{Message: "User created"}, http.StatusCreated, requestId)
}

func (h *UserHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var loginPayload payload.LoginRequest
	err := h.requestValidator.DecodeAndValidateJSONPayload(r, &loginPayload)
	if err != nil {
		respond(h.logs, w, Response{
			Message: "Could not authenticate",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Login,
			"request_id", requestId)
		return
	}

	result, err := h.users.Login(r.Context(), loginPayload.ToMessage())
	if err != nil {
		resp := Response{
			Message: "Login failed",
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrUserNotFound) || errors.Is(err, core.ErrIncorrectPassword) {
			httpCode = http.StatusUnauthorized
			resp.Error = err.Error()
		} else {
			resp.Error = "unexpected error occurred"
		}

		respond(h.logs, w, resp, httpCode, requestId)
		h.logs.Errorw("login failed",
			"error", err,
			"handler", Login,
			"request_id", requestId)
		return
	}

	respond(h.logs, w, result, http.StatusOK, requestId)
}
