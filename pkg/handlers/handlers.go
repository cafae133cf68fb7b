// Package handlers provides HTTP response utilities for JSON APIs.
// These stateless functions standardize response formatting across handlers.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// RespondJSON writes a JSON response with the given status code and data.
// It sets the Content-Type header to application/json.
func RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// RespondIndentedJSON writes data as two-space indented JSON.
func RespondIndentedJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.Encode(data)
}

// RespondError logs the error and writes a JSON error response.
// The response body contains {"error": "<error message>"}.
func RespondError(w http.ResponseWriter, logger *slog.Logger, status int, err error) {
	logError(logger, status, err)
	RespondJSON(w, status, map[string]string{"error": err.Error()})
}

// RespondIndentedError is RespondError with an indented body.
func RespondIndentedError(w http.ResponseWriter, logger *slog.Logger, status int, err error) {
	logError(logger, status, err)
	RespondIndentedJSON(w, status, map[string]string{"error": err.Error()})
}

// RespondInternalError logs err and writes
// {"error": "Internal Server Error", "details": "<error message>"}.
func RespondInternalError(w http.ResponseWriter, logger *slog.Logger, err error) {
	logError(logger, http.StatusInternalServerError, err)
	RespondIndentedJSON(w, http.StatusInternalServerError, map[string]string{
		"error":   http.StatusText(http.StatusInternalServerError),
		"details": err.Error(),
	})
}

func logError(logger *slog.Logger, status int, err error) {
	if status >= http.StatusInternalServerError {
		logger.Error("handler error", "error", err, "status", status)
		return
	}
	logger.Warn("handler error", "error", err, "status", status)
}
