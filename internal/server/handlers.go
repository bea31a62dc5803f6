package server

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/finfold/bankstat/internal/common"
	"github.com/finfold/bankstat/internal/model"
)

// uploadField is the multipart form field carrying the statement.
const uploadField = "file"

// handleParse accepts a multipart statement upload and relays the engine's
// ParseResult. A parse that ran but found nothing is still a 200; only
// rejected inputs and decode failures map to error statuses.
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)
	if err := r.ParseMultipartForm(s.cfg.MaxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart upload")
		return
	}

	file, header, err := r.FormFile(uploadField)
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing form field \"file\"")
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "reading upload failed")
		return
	}

	result, err := s.engine.ParseFile(data, header.Filename)
	writeJSON(w, parseStatus(err), result)
}

// parseStatus maps an engine error to the HTTP status of the response.
func parseStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, common.ErrNoTransactions):
		// Best-effort parse that found nothing is not a protocol error.
		return http.StatusOK
	case errors.Is(err, common.ErrUnsupportedExtension),
		errors.Is(err, common.ErrPDFNotSupported):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encoding response failed", "error", err)
	}
}

// writeError emits a failed ParseResult so every response shares one shape.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, &model.ParseResult{
		Success:      false,
		Transactions: []model.Transaction{},
		Error:        msg,
	})
}
