package notice

import (
	"errors"
	"fmt"
	"strings"

	"github.com/heartmarshall/meetup-client/internal/domain"
)

// Describe turns err into a short user-facing sentence. Classification uses
// sentinel errors and structured codes only, never the error text.
func Describe(err error) string {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		parts := make([]string, 0, len(ve.Errors))
		for _, fe := range ve.Errors {
			parts = append(parts, fe.Field+": "+fe.Message)
		}
		return "Please check your input (" + strings.Join(parts, "; ") + ")."
	}

	var re *domain.RemoteError
	if errors.As(err, &re) && re.Message != "" {
		switch re.Code {
		case domain.CodeBadRequest, domain.CodeValidation, domain.CodeConflict:
			return fmt.Sprintf("The server rejected the request: %s.", strings.TrimRight(re.Message, "."))
		}
	}

	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		return "Your session has expired. Please log in again."
	case errors.Is(err, domain.ErrForbidden):
		return "You are not allowed to do that."
	case errors.Is(err, domain.ErrNotFound):
		return "It no longer exists. The list will refresh shortly."
	case errors.Is(err, domain.ErrConflict):
		return "That change conflicts with the current state. Refresh and try again."
	case errors.Is(err, domain.ErrInvalidTransition):
		return "That action is not available for this participant."
	case errors.Is(err, domain.ErrRateLimited):
		return "Too many requests. Please wait a moment."
	case errors.Is(err, domain.ErrValidation):
		return "The server rejected the request."
	case errors.Is(err, domain.ErrUnavailable):
		return "Network error, please try again."
	}
	return "Something went wrong. Please try again."
}
