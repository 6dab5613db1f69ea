package server

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/matzehuels/flowreach/pkg/errors"
	"github.com/matzehuels/flowreach/pkg/flow"
	"github.com/matzehuels/flowreach/pkg/io"
)

type errorBody struct {
	Code  errors.Code `json:"code"`
	Error string      `json:"error"`
}

// handleReport reads a text graph from the body and writes its report.
// Query parameters: mode (frontier|shortest), format (json|text).
//
// Graphs over the node or edge limits, and reports whose traversals pass the
// frontier limit, get 413; reports that run past the timeout get 503. Both
// carry LIMIT_EXCEEDED.
func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	mode := s.opts.Mode
	if q := r.URL.Query().Get("mode"); q != "" {
		m, err := flow.ParseMode(q)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		mode = m
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = io.FormatJSON
	}
	if err := io.ValidateFormat(format); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	g, err := io.ReadText(http.MaxBytesReader(w, r.Body, maxBodyBytes),
		io.WithMaxNodes(uint64(s.opts.MaxNodes)),
		io.WithMaxEdges(uint64(s.opts.MaxEdges)))
	if err != nil {
		status := http.StatusBadRequest
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) || errors.Is(err, errors.ErrCodeLimitExceeded) {
			status = http.StatusRequestEntityTooLarge
		}
		writeError(w, status, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.opts.Timeout)
	defer cancel()

	report, err := flow.Compute(ctx, g, flow.WithMode(mode), flow.WithFrontierLimit(s.opts.FrontierLimit))
	switch {
	case err == nil:
	case errors.Is(err, errors.ErrCodeLimitExceeded):
		writeError(w, http.StatusRequestEntityTooLarge, err)
		return
	case stderrors.Is(err, context.DeadlineExceeded):
		writeError(w, http.StatusServiceUnavailable,
			errors.Wrap(errors.ErrCodeLimitExceeded, err, "report did not finish within %s", s.opts.Timeout))
		return
	default:
		// The client is gone.
		s.logger.Debug("report cancelled", "err", err)
		return
	}

	if format == io.FormatText {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	} else {
		w.Header().Set("Content-Type", "application/json")
	}
	if err := io.Write(w, format, report); err != nil {
		s.logger.Warn("write report", "err", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInvalidInput
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorBody{Code: code, Error: errors.UserMessage(err)})
}
