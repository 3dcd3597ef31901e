package notification

import (
	"context"

	"go.uber.org/zap"
)

// Report summarizes one dispatch attempt. Attempted is false when no push
// provider is configured; callers treat that as a no-op, never an error.
type Report struct {
	Attempted    bool          `json:"attempted"`
	SuccessCount int           `json:"successCount"`
	FailureCount int           `json:"failureCount"`
	Outcomes     []SendOutcome `json:"outcomes,omitempty"`
	DeadTokens   []string      `json:"deadTokens,omitempty"`
	Error        string        `json:"error,omitempty"`
}

// Dispatcher sends booking notifications through a Sender and classifies the
// per-token results. Delivery is best effort; Dispatch never returns an
// error, it only describes what happened.
type Dispatcher struct {
	Sender Sender
	Logger *zap.Logger
}

func NewDispatcher(sender Sender, logger *zap.Logger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{Sender: sender, Logger: logger}
}

// Dispatch sends msg to the given tokens. Tokens are deduplicated and
// filtered to non-empty strings first; an empty list short-circuits to a
// zero report without touching the provider.
func (d *Dispatcher) Dispatch(ctx context.Context, tokens []string, msg PushMessage) Report {
	if d == nil || d.Sender == nil {
		return Report{}
	}

	targets := dedupTokens(tokens)
	if len(targets) == 0 {
		return Report{Attempted: true}
	}

	outcomes, err := d.Sender.SendBatch(ctx, targets, msg)
	if err != nil {
		d.Logger.Warn("push dispatch failed",
			zap.Int("tokens", len(targets)),
			zap.Error(err))
		return Report{Attempted: true, FailureCount: len(targets), Error: err.Error()}
	}

	report := Report{Attempted: true, Outcomes: outcomes}
	for _, o := range outcomes {
		if o.Success {
			report.SuccessCount++
			continue
		}
		report.FailureCount++
		if o.Permanent() {
			report.DeadTokens = append(report.DeadTokens, o.Token)
		}
	}

	if report.FailureCount > 0 {
		d.Logger.Warn("push dispatch completed with failures",
			zap.Int("success", report.SuccessCount),
			zap.Int("failure", report.FailureCount),
			zap.Int("dead", len(report.DeadTokens)))
	}
	return report
}

func dedupTokens(tokens []string) []string {
	seen := make(map[string]struct{}, len(tokens))
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
