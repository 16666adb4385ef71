package intent

import (
	"context"
	"log/slog"

	"github.com/Veraticus/lifedash/internal/llm"
	"github.com/Veraticus/lifedash/internal/model"
)

// Remote classifies text through an external completion service.
type Remote interface {
	Classify(ctx context.Context, text string) llm.Result
}

// Hybrid asks a remote classifier first and falls back to keyword scoring
// whenever the remote path fails. The keyword path is always available.
type Hybrid struct {
	local  *Classifier
	remote Remote
	logger *slog.Logger
}

// NewHybrid combines a keyword classifier with an optional remote one.
// A nil remote makes Hybrid behave exactly like local.
func NewHybrid(local *Classifier, remote Remote, logger *slog.Logger) *Hybrid {
	if local == nil {
		local = Default()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Hybrid{local: local, remote: remote, logger: logger}
}

// Classify never fails: every error resolves to the keyword result.
func (h *Hybrid) Classify(ctx context.Context, text string) model.Intent {
	if h.remote == nil || Normalize(text) == "" {
		return h.local.Classify(text)
	}

	res := h.remote.Classify(ctx, text)
	if res.Err != nil {
		h.logger.Warn("Remote classification failed, using keyword classifier",
			"error", res.Err)
		return h.local.Classify(text)
	}

	in := res.Intent
	if len(in.Parameters) == 0 {
		in.Parameters = ExtractParameters(Normalize(text), in.Module)
	}
	return in
}
