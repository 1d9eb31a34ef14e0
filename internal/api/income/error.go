package income

import (
	"net/http"

	"finflow/pkg/response"
)

var (
	ErrIncomeNotFound = response.NewError(http.StatusNotFound, "income not found")
	ErrIncomeNotOwned = response.NewError(http.StatusForbidden, "income does not belong to user")
	ErrInvalidAmount  = response.NewError(http.StatusBadRequest, "invalid income amount")
	ErrCreateIncome   = response.NewError(http.StatusInternalServerError, "failed to create income")
	ErrUpdateIncome   = response.NewError(http.StatusInternalServerError, "failed to update income")
	ErrDeleteIncome   = response.NewError(http.StatusInternalServerError, "failed to delete income")
)
