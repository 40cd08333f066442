package boundary

import (
	"github.com/rs/zerolog"

	"github.com/ib-77/fcore/pkg/fcore"
	"github.com/ib-77/fcore/pkg/fcore/result"
)

// UnknownError is the message used when there is no error to describe.
const UnknownError = "unknown error"

type ErrorResponse struct {
	Message string `json:"message"`
}

// NewErrorResponse describes err by the message of its innermost cause.
func NewErrorResponse(err error) ErrorResponse {
	base := fcore.BaseError(err)
	if fcore.IsNil(base) {
		return ErrorResponse{Message: UnknownError}
	}
	return ErrorResponse{Message: base.Error()}
}

func (e ErrorResponse) Error() string {
	return e.Message
}

func (e ErrorResponse) MarshalZerologObject(ev *zerolog.Event) {
	ev.Str("message", e.Message)
}

// ToErrorResponse replaces the error of r with its ErrorResponse.
func ToErrorResponse[S any](r result.Result[S, error]) result.Result[S, ErrorResponse] {
	return result.MapFailure(r, NewErrorResponse)
}
