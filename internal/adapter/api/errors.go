package api

import (
	"encoding/json"
	"strings"

	"github.com/heartmarshall/meetup-client/internal/domain"
)

// errorBody is the shape of a failed backend response. Older endpoints only
// send {"error": "..."}; newer ones add a machine-readable code.
type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

// codeAliases maps code spellings used by different backend versions onto
// the client's ErrorCode set.
var codeAliases = map[string]domain.ErrorCode{
	"NOT_FOUND":         domain.CodeNotFound,
	"ALREADY_EXISTS":    domain.CodeConflict,
	"CONFLICT":          domain.CodeConflict,
	"VALIDATION":        domain.CodeValidation,
	"VALIDATION_ERROR":  domain.CodeValidation,
	"BAD_REQUEST":       domain.CodeBadRequest,
	"UNAUTHENTICATED":   domain.CodeUnauthorized,
	"UNAUTHORIZED":      domain.CodeUnauthorized,
	"FORBIDDEN":         domain.CodeForbidden,
	"RATE_LIMITED":      domain.CodeRateLimited,
	"TOO_MANY_REQUESTS": domain.CodeRateLimited,
	"INTERNAL":          domain.CodeInternal,
	"INTERNAL_ERROR":    domain.CodeInternal,
}

// decodeError classifies a non-2xx response. The body's code wins over the
// status; human-readable text is kept only for display and logs.
func decodeError(op string, status int, requestID string, raw []byte) *domain.RemoteError {
	rerr := &domain.RemoteError{
		Op:        op,
		Status:    status,
		Code:      domain.CodeFromStatus(status),
		RequestID: requestID,
	}

	var body errorBody
	if err := json.Unmarshal(raw, &body); err != nil {
		return rerr
	}

	if code, ok := codeAliases[strings.ToUpper(strings.TrimSpace(body.Code))]; ok {
		rerr.Code = code
	}
	rerr.Message = body.Message
	if rerr.Message == "" {
		rerr.Message = body.Error
	}

	return rerr
}

// truncate shortens s for logging.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
