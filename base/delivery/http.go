package delivery

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/debay/auctionclient/domain"
)

type JsonResponseStatus string

const (
	JsonResponseStatusSuccess JsonResponseStatus = "success"
	JsonResponseStatusFail    JsonResponseStatus = "fail"
)

type JsonResponse struct {
	Data   interface{}        `json:"data"`
	Status JsonResponseStatus `json:"status"`
}

// MakeJsonResp renders data, remapping domain error kinds to http statuses
// so the frontend can tell a reconnect-the-wallet failure from a bad bid.
func MakeJsonResp(c echo.Context, status int, data interface{}) error {
	if err, ok := data.(error); ok {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			status = http.StatusNotFound
		case errors.Is(err, domain.ErrInvalidBidInput):
			status = http.StatusBadRequest
		case errors.Is(err, domain.ErrNoSession), errors.Is(err, domain.ErrNetworkMismatch):
			status = http.StatusUnauthorized
		case errors.Is(err, domain.ErrTransactionRejected):
			status = http.StatusConflict
		case errors.Is(err, domain.ErrLedgerReadFailure), errors.Is(err, domain.ErrMetadataUnavailable):
			status = http.StatusBadGateway
		}
		data = err.Error()
	}

	if status >= 400 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusFail})
	}

	if status >= 200 && status < 300 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusSuccess})
	}

	return c.JSON(status, data)
}
