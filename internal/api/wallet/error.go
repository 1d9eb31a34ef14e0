package wallet

import (
	"net/http"

	"finflow/pkg/response"
)

var (
	ErrWalletNotFound = response.NewError(http.StatusNotFound, "wallet not found")
)
