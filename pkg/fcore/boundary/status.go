package boundary

import (
	"github.com/ib-77/fcore/pkg/fcore"
	"github.com/ib-77/fcore/pkg/fcore/result"
)

// StatusOK is the status of a successful result when no success formatter
// is given.
const StatusOK = "OK"

// ToStatus renders r as a status line. onOk formats success values (nil
// yields StatusOK) and format formats errors (nil yields the error message).
// A formatter that panics is replaced by the default; ToStatus never panics.
func ToStatus[S any](r result.Result[S, error], onOk func(S) string, format func(error) string) string {
	return result.Match(r,
		func(v S) string {
			if onOk == nil {
				return StatusOK
			}
			return guarded(func() string { return onOk(v) }, StatusOK)
		},
		func(err error) string {
			return errorText(err, format)
		})
}

// ToErrorMessage is the error text of r, or "" when r is Ok.
func ToErrorMessage[S any](r result.Result[S, error], format func(error) string) string {
	return result.Match(r,
		func(S) string { return "" },
		func(err error) string { return errorText(err, format) })
}

func errorText(err error, format func(error) string) string {
	fallback := UnknownError
	if !fcore.IsNil(err) {
		fallback = guarded(err.Error, UnknownError)
	}
	if format == nil {
		return fallback
	}
	return guarded(func() string { return format(err) }, fallback)
}

func guarded(render func() string, fallback string) (text string) {
	defer func() {
		if recover() != nil {
			text = fallback
		}
	}()
	return render()
}
