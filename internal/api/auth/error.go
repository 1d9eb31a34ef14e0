package auth

import (
	"net/http"

	"finflow/pkg/response"
)

var (
	ErrEmailAlreadyExists     = response.NewError(http.StatusBadRequest, "user already exists")
	ErrInvalidEmailOrPassword = response.NewError(http.StatusBadRequest, "invalid credentials")
	ErrUserNotFound           = response.NewError(http.StatusNotFound, "user not found")
)
