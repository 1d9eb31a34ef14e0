package budget

import (
	"net/http"

	"finflow/pkg/response"
)

var (
	ErrBudgetNotFound = response.NewError(http.StatusNotFound, "budget not found")
	ErrBudgetNotOwned = response.NewError(http.StatusForbidden, "budget does not belong to user")
	ErrInvalidAmount  = response.NewError(http.StatusBadRequest, "invalid budget amount")
	ErrCreateBudget   = response.NewError(http.StatusInternalServerError, "failed to create budget")
	ErrUpdateBudget   = response.NewError(http.StatusInternalServerError, "failed to update budget")
	ErrDeleteBudget   = response.NewError(http.StatusInternalServerError, "failed to delete budget")
)
