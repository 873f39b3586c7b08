package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/heartmarshall/meetup-client/pkg/ctxutil"
)

// RoundTripperFunc adapts a function to http.RoundTripper.
type RoundTripperFunc func(*http.Request) (*http.Response, error)

func (f RoundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

// Middleware wraps an http.RoundTripper.
type Middleware func(http.RoundTripper) http.RoundTripper

// Chain combines multiple middleware into a single Middleware.
// Chain(mw1, mw2)(rt) results in mw1(mw2(rt)), so mw1 runs first (outermost).
func Chain(mws ...Middleware) Middleware {
	return func(final http.RoundTripper) http.RoundTripper {
		for i := len(mws) - 1; i >= 0; i-- {
			final = mws[i](final)
		}
		return final
	}
}

// RequestID stamps X-Request-Id from the context, generating one when absent.
func RequestID() Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(r *http.Request) (*http.Response, error) {
			id := ctxutil.RequestIDFromCtx(r.Context())
			if id == "" {
				id = uuid.New().String()
			}
			r = r.Clone(ctxutil.WithRequestID(r.Context(), id))
			r.Header.Set("X-Request-Id", id)
			return next.RoundTrip(r)
		})
	}
}

// UserAgent sets the User-Agent header on every request.
func UserAgent(ua string) Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(r *http.Request) (*http.Response, error) {
			r = r.Clone(r.Context())
			r.Header.Set("User-Agent", ua)
			return next.RoundTrip(r)
		})
	}
}

// RateLimit blocks each request until the token bucket admits it.
// A nil limiter disables limiting.
func RateLimit(limiter *rate.Limiter) Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		if limiter == nil {
			return next
		}
		return RoundTripperFunc(func(r *http.Request) (*http.Response, error) {
			if err := limiter.Wait(r.Context()); err != nil {
				return nil, err
			}
			return next.RoundTrip(r)
		})
	}
}

// Logger logs each request with method, path, status, duration, and the
// request_id and operation carried by the context.
func Logger(logger *slog.Logger) Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(r *http.Request) (*http.Response, error) {
			start := time.Now()
			resp, err := next.RoundTrip(r)
			duration := time.Since(start)

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Duration("duration", duration),
				slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
			}
			if op := ctxutil.OperationFromCtx(r.Context()); op != "" {
				attrs = append(attrs, slog.String("operation", op))
			}

			level := slog.LevelDebug
			switch {
			case err != nil:
				level = slog.LevelWarn
				attrs = append(attrs, slog.String("error", err.Error()))
			case resp.StatusCode >= 500:
				level = slog.LevelError
				attrs = append(attrs, slog.Int("status", resp.StatusCode))
			case resp.StatusCode >= 400:
				level = slog.LevelWarn
				attrs = append(attrs, slog.Int("status", resp.StatusCode))
			default:
				attrs = append(attrs, slog.Int("status", resp.StatusCode))
			}
			logger.LogAttrs(r.Context(), level, "api.request", attrs...)

			return resp, err
		})
	}
}
