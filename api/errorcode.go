package api

import "github.com/openaquifer/groundwater-api/store"

var (
	errorMessageMap = map[int64]string{
		999: "internal server error",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1100: store.ErrDataNotLoaded.Error(),
		1101: store.ErrNoDataForYear.Error(),
		1102: store.ErrUnknownSortKey.Error(),

		1200: store.ErrDistrictNotFound.Error(),

		1300: store.ErrAlreadySubscribed.Error(),
		1301: store.ErrInvalidSubscriptionType.Error(),
		1302: "invalid email address",
	}

	errorInternalServer = errorJSON(999)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorDataNotLoaded  = errorJSON(1100)
	errorNoDataForYear  = errorJSON(1101)
	errorUnknownSortKey = errorJSON(1102)

	errorDistrictNotFound = errorJSON(1200)

	errorAlreadySubscribed       = errorJSON(1300)
	errorInvalidSubscriptionType = errorJSON(1301)
	errorInvalidEmail            = errorJSON(1302)
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
