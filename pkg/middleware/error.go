package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/Raptors65/hack404/pkg/apierror"
	"github.com/Raptors65/hack404/pkg/logger"
)

// RecoverMiddleware converts panics into a standardized 500 response.
func RecoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Log.Errorf("Panic recovered: %v", rec)
				WriteError(w, apierror.ErrInternal)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// WriteError writes an APIError as a JSON response with an "error" field.
func WriteError(w http.ResponseWriter, err error) {
	apiErr, ok := err.(*apierror.APIError)
	if !ok {
		apiErr = apierror.Wrap(err, "UNKNOWN_ERROR", "Unexpected error", apierror.ErrInternal.Status)
	}
	// Log server errors
	if apiErr.Status >= 500 {
		logger.Log.Errorf("Server error %s (Details: %s)", apiErr.Error(), apiErr.Details)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(apiErr.Status)
	json.NewEncoder(w).Encode(apiErr)
}
