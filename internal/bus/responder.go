package bus

import (
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/MikeSquared-Agency/sift/internal/extract"
	"github.com/MikeSquared-Agency/sift/internal/metrics"
	"github.com/MikeSquared-Agency/sift/internal/transcript"
)

// SubjectPrefix is the base subject for extraction requests. The full
// subject is the prefix plus the operation name, e.g. "sift.extract.timeline".
const SubjectPrefix = "sift.extract."

// Request mirrors the HTTP adapter's payload: {"text": "...", "options": {...}}.
type Request struct {
	Text    *string  `json:"text"`
	Options *Options `json:"options,omitempty"`
}

// Options mirrors the HTTP adapter's per-call settings.
type Options struct {
	Format string `json:"format,omitempty"`
}

// Response mirrors the HTTP adapter's success envelope.
type Response struct {
	RequestID string `json:"request_id"`
	Result    any    `json:"result"`
}

// ErrorResponse mirrors the HTTP adapter's error body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Responder serves extraction requests over NATS.
type Responder struct {
	client   *Client
	engine   *extract.Engine
	metrics  *metrics.Metrics
	maxInput int
	logger   *slog.Logger
}

func NewResponder(client *Client, engine *extract.Engine, m *metrics.Metrics, maxInput int, logger *slog.Logger) *Responder {
	return &Responder{
		client:   client,
		engine:   engine,
		metrics:  m,
		maxInput: maxInput,
		logger:   logger,
	}
}

// Start subscribes one request-reply handler per operation.
func (r *Responder) Start() error {
	for _, op := range extract.Operations() {
		if err := r.client.SubscribeRequest(SubjectPrefix+op, r.Handle(op)); err != nil {
			return err
		}
	}
	return nil
}

// Handle returns the request handler for one operation. Exported separately
// from Start so the decode/dispatch/encode path is testable without a broker.
func (r *Responder) Handle(op string) func(data []byte) []byte {
	return func(data []byte) []byte {
		var req Request
		if err := json.Unmarshal(data, &req); err != nil {
			return encodeError("invalid JSON body")
		}
		if req.Text == nil {
			return encodeError("missing text")
		}
		if len(*req.Text) > r.maxInput {
			return encodeError("text exceeds input size limit")
		}

		text := *req.Text
		if req.Options != nil {
			switch req.Options.Format {
			case "", "text":
			case "chat_jsonl":
				flattened, err := transcript.Flatten(text)
				if err != nil {
					return encodeError(err.Error())
				}
				text = flattened
			default:
				return encodeError("unknown format " + req.Options.Format)
			}
		}

		requestID := uuid.NewString()
		start := time.Now()
		result, err := r.engine.Dispatch(op, text)
		r.metrics.Observe(op, time.Since(start), err)
		if err != nil {
			if errors.Is(err, extract.ErrInvalidInput) {
				return encodeError(err.Error())
			}
			r.logger.Error("extraction failed", "op", op, "request_id", requestID, "error", err)
			return encodeError("extraction failed")
		}

		out, err := json.Marshal(Response{RequestID: requestID, Result: result})
		if err != nil {
			r.logger.Error("marshal response", "op", op, "error", err)
			return encodeError("extraction failed")
		}
		return out
	}
}

func encodeError(msg string) []byte {
	out, _ := json.Marshal(ErrorResponse{Error: msg})
	return out
}
