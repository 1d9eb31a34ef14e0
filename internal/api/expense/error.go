package expense

import (
	"net/http"

	"finflow/pkg/response"
)

var (
	ErrExpenseNotFound = response.NewError(http.StatusNotFound, "expense not found")
	ErrExpenseNotOwned = response.NewError(http.StatusForbidden, "expense does not belong to user")
	ErrBudgetNotFound  = response.NewError(http.StatusNotFound, "budget not found")
	ErrBudgetNotOwned  = response.NewError(http.StatusForbidden, "budget does not belong to user")
	ErrInvalidAmount   = response.NewError(http.StatusBadRequest, "invalid expense amount")
	ErrFailedToUpload  = response.NewError(http.StatusInternalServerError, "failed to upload receipt")
	ErrCreateExpense   = response.NewError(http.StatusInternalServerError, "failed to create expense")
	ErrUpdateExpense   = response.NewError(http.StatusInternalServerError, "failed to update expense")
	ErrDeleteExpense   = response.NewError(http.StatusInternalServerError, "failed to delete expense")
)
