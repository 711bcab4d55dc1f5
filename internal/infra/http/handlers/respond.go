package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/Abidimam7/leadgen/internal/infra/http/middleware"
	"github.com/Abidimam7/leadgen/internal/logger"
	"github.com/Abidimam7/leadgen/internal/usecase"
)

type errorResponse struct {
	Error          string            `json:"error"`
	Details        map[string]string `json:"details,omitempty"`
	Row            *int              `json:"row,omitempty"`
	MissingColumns []string          `json:"missing_columns,omitempty"`
	ColumnsFound   []string          `json:"columns_found,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeError translates use case errors into status codes and JSON bodies.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromContext(r.Context())

	var (
		verrs    usecase.ValidationErrors
		rowErr   *usecase.RowValidationError
		colErr   *usecase.MissingColumnsError
		input    *usecase.InputError
		notFound *usecase.NotFoundError
		upstream *usecase.UpstreamError
	)

	switch {
	case errors.As(err, &verrs):
		log.Info("validation failed", zap.Error(err))
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Validation failed", Details: verrs.Fields()})
	case errors.As(err, &rowErr):
		log.Info("upload row rejected", zap.Int("row", rowErr.Row), zap.Any("details", rowErr.Details))
		row := rowErr.Row
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: rowErr.Error(), Details: rowErr.Details, Row: &row})
	case errors.As(err, &colErr):
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:          colErr.Error(),
			MissingColumns: colErr.Missing,
			ColumnsFound:   nonNil(colErr.Found),
		})
	case errors.As(err, &input):
		log.Info("bad request", zap.String("reason", input.Message))
		writeMessage(w, http.StatusBadRequest, input.Message)
	case errors.As(err, &notFound):
		writeMessage(w, http.StatusNotFound, notFound.Message)
	case errors.As(err, &upstream):
		log.Error("upstream failure", zap.String("service", upstream.Service), zap.Error(upstream.Err))
		middleware.RecordIntegrationError(upstream.Service)
		writeMessage(w, http.StatusInternalServerError, upstream.Message)
	default:
		log.Error("request failed", zap.Error(err))
		writeMessage(w, http.StatusInternalServerError, "Internal server error")
	}
}

// decodeJSON reads an optional JSON body into v. An empty body leaves v untouched.
func decodeJSON(r *http.Request, v any) error {
	if r.Body == nil {
		return nil
	}
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return &usecase.InputError{Message: "Invalid JSON: " + err.Error()}
	}
	return nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
