// Package resolver maps a data kind plus inbound query parameters to one or
// two upstream calls and exactly one outcome. All failure policy lives here:
// a kind either answers failures with a canned payload (HTTP 200) or with a
// generic error envelope (HTTP 500), never both and never a raw error.
package resolver

import (
	"encoding/json"
	"errors"
	"time"

	"astrolink/internal/nasa"
)

// Outcome is the single terminal result of resolving one request.
type Outcome struct {
	Status      int
	ContentType string // empty means application/json
	Body        []byte

	// Fallback is set when Body is canned data rather than a live upstream
	// response. Secondary is set when a second upstream call produced Body
	// (the Mars photos empty-result retry); SubstitutedSol then carries the
	// sol that was silently substituted.
	Fallback       bool
	Secondary      bool
	SubstitutedSol string
}

// Label returns the outcome class for metrics: "success", "secondary",
// "fallback" or "error".
func (o Outcome) Label() string {
	switch {
	case o.Status >= 400:
		return "error"
	case o.Fallback:
		return "fallback"
	case o.Secondary:
		return "secondary"
	default:
		return "success"
	}
}

// Resolver resolves inbound requests against the upstream provider set.
// It is stateless across requests; a single instance serves all traffic.
type Resolver struct {
	client   *nasa.Client
	timeouts map[nasa.Kind]time.Duration
}

// New creates a resolver. timeoutOverrides may be nil; entries replace the
// built-in per-kind timeout.
func New(client *nasa.Client, timeoutOverrides map[nasa.Kind]time.Duration) *Resolver {
	return &Resolver{client: client, timeouts: timeoutOverrides}
}

func (r *Resolver) timeout(k nasa.Kind) time.Duration {
	if d, ok := r.timeouts[k]; ok {
		return d
	}
	return nasa.DefaultTimeout(k)
}

func today() string {
	return time.Now().UTC().Format("2006-01-02")
}

func success(body []byte) Outcome {
	return Outcome{Status: 200, Body: body}
}

func fallback(body []byte) Outcome {
	return Outcome{Status: 200, Body: body, Fallback: true}
}

// genericError builds the plain {"error": msg} envelope.
func genericError(msg string) Outcome {
	body, _ := json.Marshal(map[string]string{"error": msg})
	return Outcome{Status: 500, Body: body}
}

// detailedError builds the {"error": msg, "details": ...} envelope. When the
// upstream answered with a JSON error body it is passed through verbatim as
// details; otherwise the transport error string is used.
func detailedError(msg string, err error) Outcome {
	var details any = err.Error()
	var httpErr *nasa.HTTPError
	if errors.As(err, &httpErr) && json.Valid(httpErr.Body) {
		details = json.RawMessage(httpErr.Body)
	}
	body, merr := json.Marshal(map[string]any{"error": msg, "details": details})
	if merr != nil {
		return genericError(msg)
	}
	return Outcome{Status: 500, Body: body}
}
