package routes

import (
	"agriassist/agriassist/controllers"
	"agriassist/agriassist/services/predictor"
	"agriassist/agriassist/sources/psql/dao"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// handleJSON adapts a (result, status, error) handler. Errors are written as
// {"error": msg} with the returned status.
func handleJSON(handler func(r *http.Request) (any, int, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, status, err := handler(r)
		if err != nil {
			writeJSON(w, status, map[string]string{"error": err.Error()})
			return
		}
		writeJSON(w, status, res)
	}
}

// decodeBody reads a JSON body into v. An empty body leaves v untouched.
func decodeBody(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	return nil
}

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, predictor.ErrInvalidFeatures),
		errors.Is(err, dao.ErrInvalidKnowledge),
		errors.Is(err, controllers.ErrInvalidAction):
		return http.StatusBadRequest
	case errors.Is(err, controllers.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, controllers.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, controllers.ErrStorageUnavailable),
		errors.Is(err, controllers.ErrAuthNotConfigured):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
