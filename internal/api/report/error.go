package report

import (
	"net/http"

	"finflow/pkg/response"
)

var (
	ErrInvalidPeriod = response.NewError(http.StatusBadRequest, "invalid report period")
	ErrUserNotFound  = response.NewError(http.StatusNotFound, "user not found")
)
