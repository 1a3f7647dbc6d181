// Package handler contains the HTTP handlers of the search API.
package handler

import (
	"net/http"
	"slices"

	"souk/internal/delivery/http/response"
	"souk/internal/domain/entity"
	domainerrors "souk/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

// getUserID extracts the authenticated user ID from the context.
func getUserID(c echo.Context) (uuid.UUID, error) {
	userIDVal := c.Get("userID")
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return uuid.Nil, response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	return userID, nil
}

// declaredRole checks the role the caller declared for this search
// against the token's roles claim. Declaring a role the token does not
// carry is an authorization failure, not a validation one.
func declaredRole(c echo.Context, raw string) (entity.Role, error) {
	role := entity.Role(raw)
	if !role.IsValid() {
		return "", response.BadRequest(c, domainerrors.ErrValidationFailed.ErrorCode(), "Unknown role: "+raw)
	}

	rolesVal := c.Get("roles")
	roles, ok := rolesVal.([]string)
	if !ok || !slices.Contains(roles, raw) {
		return "", response.Forbidden(c, domainerrors.ErrRoleNotAllowed.ErrorCode(), "Token does not carry the declared role")
	}

	return role, nil
}

// handleAppError translates application errors into the unified
// response envelope; anything unrecognized goes to the error
// middleware with its stack attached.
func handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
