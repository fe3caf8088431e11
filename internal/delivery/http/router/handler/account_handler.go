// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"signon/internal/delivery/http/response"
	"signon/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AccountHandler holds dependencies for credential-management handlers.
type AccountHandler struct {
	uc     usecase.AccountUsecase
	logger *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		uc:     uc,
		logger: logger,
	}
}

// signupRequest is the inbound signup payload. Field names follow the wire
// contract; every field is required and emailAddress must carry at least one
// entry.
type signupRequest struct {
	UserName     string   `json:"userName" validate:"required"`
	Password     string   `json:"password" validate:"required"`
	EmailAddress []string `json:"emailAddress" validate:"required,min=1,dive,required"`
}

// loginRequest is the inbound login payload.
type loginRequest struct {
	UserName string `json:"userName" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// registeredUserView is the outward-facing result of a signup. The stored
// password hash never appears here.
type registeredUserView struct {
	UserName     string   `json:"userName"`
	EmailAddress []string `json:"emailAddress"`
}

// Signup handles the user registration request.
func (h *AccountHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid signup input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Signup(c.Request().Context(), &usecase.SignupInput{
		UserName:       req.UserName,
		Password:       req.Password,
		EmailAddresses: req.EmailAddress,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, registeredUserView{
		UserName:     output.UserName,
		EmailAddress: output.EmailAddresses,
	}, "Registered user")
}

// Login handles the user login request.
func (h *AccountHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	_, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		UserName: req.UserName,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "User logged in")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
