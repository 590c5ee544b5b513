package api

import (
	"errors"
	"net/http"

	"github.com/bitmark-inc/covid-dashboard/catalog"
	"github.com/bitmark-inc/covid-dashboard/dashboard"
	"github.com/bitmark-inc/covid-dashboard/query"
	"github.com/bitmark-inc/covid-dashboard/render"
	"github.com/bitmark-inc/covid-dashboard/schema"
)

var (
	errorMessageMap = map[int64]string{
		999: "internal server error",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1100: catalog.ErrUnknownMetric.Error(),
		1101: schema.ErrMissingField.Error(),
		1102: "invalid date",
		1103: catalog.ErrUnknownColumn.Error(),
		1104: render.ErrUnknownFormat.Error(),
		1105: query.ErrInvalidOrder.Error(),
		1106: "unknown table or field",
	}

	errorInternalServer = errorJSON(999)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorUnknownMetric       = errorJSON(1100)
	errorMissingField        = errorJSON(1101)
	errorInvalidDate         = errorJSON(1102)
	errorUnknownRankedColumn = errorJSON(1103)
	errorUnknownFormat       = errorJSON(1104)
	errorInvalidRankOrder    = errorJSON(1105)
	errorUnknownTable        = errorJSON(1106)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}

// errorFor maps a dashboard error to its status and response.
func errorFor(err error) (int, ErrorResponse) {
	switch {
	case errors.Is(err, catalog.ErrUnknownMetric):
		return http.StatusNotFound, errorUnknownMetric
	case errors.Is(err, schema.ErrMissingField):
		return http.StatusInternalServerError, errorMissingField
	case errors.Is(err, catalog.ErrUnknownColumn):
		return http.StatusBadRequest, errorUnknownRankedColumn
	case errors.Is(err, render.ErrUnknownFormat):
		return http.StatusBadRequest, errorUnknownFormat
	case errors.Is(err, query.ErrInvalidOrder):
		return http.StatusBadRequest, errorInvalidRankOrder
	case errors.Is(err, dashboard.ErrUnknownTable), errors.Is(err, dashboard.ErrUnknownField):
		return http.StatusBadRequest, errorUnknownTable
	default:
		return http.StatusInternalServerError, errorInternalServer
	}
}
