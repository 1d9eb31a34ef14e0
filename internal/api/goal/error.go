package goal

import (
	"net/http"

	"finflow/pkg/response"
)

var (
	ErrGoalNotFound  = response.NewError(http.StatusNotFound, "goal not found")
	ErrGoalNotOwned  = response.NewError(http.StatusForbidden, "goal does not belong to user")
	ErrGoalCompleted = response.NewError(http.StatusBadRequest, "goal is already completed")
	ErrGoalNotFunded = response.NewError(http.StatusBadRequest, "insufficient savings to complete goal")
	ErrInvalidAmount = response.NewError(http.StatusBadRequest, "invalid goal amount")
	ErrCreateGoal    = response.NewError(http.StatusInternalServerError, "failed to create goal")
	ErrUpdateGoal    = response.NewError(http.StatusInternalServerError, "failed to update goal")
	ErrDeleteGoal    = response.NewError(http.StatusInternalServerError, "failed to delete goal")
	ErrCompleteGoal  = response.NewError(http.StatusInternalServerError, "failed to complete goal")
)
