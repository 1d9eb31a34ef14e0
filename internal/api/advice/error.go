package advice

import (
	"net/http"

	"finflow/pkg/response"
)

var (
	ErrRateLimitExceeded = response.NewError(http.StatusInternalServerError, "Failed to get advice from AI")
	ErrAdviceNotFound    = response.NewError(http.StatusNotFound, "no advice generated yet")
)
