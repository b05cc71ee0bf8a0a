package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/MikeSquared-Agency/sift/internal/extract"
	"github.com/MikeSquared-Agency/sift/internal/transcript"
)

// ExtractRequest is the request payload for all extraction endpoints. Text
// is a pointer so an absent field can be told apart from an empty string:
// empty text is a valid call, a missing field is not.
type ExtractRequest struct {
	Text    *string         `json:"text"`
	Options *ExtractOptions `json:"options,omitempty"`
}

// ExtractOptions carries optional per-call settings. Format selects the
// input encoding: "text" (default) or "chat_jsonl" for a structured chat
// export flattened before extraction.
type ExtractOptions struct {
	Format string `json:"format,omitempty"`
}

// ExtractResponse wraps an extractor result with a per-call id.
type ExtractResponse struct {
	RequestID string `json:"request_id"`
	Result    any    `json:"result"`
}

func (s *Server) handleExtract(op string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ExtractRequest
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, int64(s.maxInput)+4096)).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		if req.Text == nil {
			writeError(w, http.StatusBadRequest, "missing text")
			return
		}
		if len(*req.Text) > s.maxInput {
			writeError(w, http.StatusBadRequest, "text exceeds input size limit")
			return
		}

		text := *req.Text
		if req.Options != nil {
			switch req.Options.Format {
			case "", "text":
			case "chat_jsonl":
				flattened, err := transcript.Flatten(text)
				if err != nil {
					writeError(w, http.StatusBadRequest, err.Error())
					return
				}
				text = flattened
			default:
				writeError(w, http.StatusBadRequest, "unknown format "+req.Options.Format)
				return
			}
		}

		requestID := uuid.NewString()
		start := time.Now()
		result, err := s.engine.Dispatch(op, text)
		s.metrics.Observe(op, time.Since(start), err)
		if err != nil {
			if errors.Is(err, extract.ErrInvalidInput) {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			slog.Error("extraction failed", "op", op, "request_id", requestID, "error", err)
			writeError(w, http.StatusInternalServerError, "extraction failed")
			return
		}

		slog.Debug("extraction served", "op", op, "request_id", requestID, "bytes", len(text))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ExtractResponse{RequestID: requestID, Result: result})
	}
}

func writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
