// Package workflow implements the email processing orchestration: a
// conditional state graph that classifies an inbound email, acknowledges
// the sender, stores and extracts attachments, branches to a translation or
// review pipeline, and delivers the processed document.
package workflow

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	gaoconfig "github.com/JaimeStill/go-agents-orchestration/pkg/config"
	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/JaimeStill/courier/internal/emails"
	"github.com/JaimeStill/courier/internal/guard"
)

// Execute runs the full workflow for a single inbound email. Gate failures
// are not errors: they surface as terminal outcomes on the Result. An error
// return indicates the orchestration itself failed.
func Execute(ctx context.Context, rt *Runtime, msg emails.Message) (*Result, error) {
	runID := uuid.New()

	graph, err := buildGraph(rt)
	if err != nil {
		return nil, fmt.Errorf("build graph: %w", err)
	}

	initial := state.New(nil)
	initial = initial.Set(KeyRunID, runID.String())
	initial = initial.Set(KeyEmailSubject, msg.Subject)
	initial = initial.Set(KeyEmailBody, msg.Body)
	initial = initial.Set(KeyEmailSender, msg.SenderEmail)
	initial = initial.Set(KeyInitialAttachments, msg.Filenames())
	initial = initial.Set(KeyAttachmentPayloads, msg.Attachments)

	final, err := graph.Execute(ctx, initial)
	if err != nil {
		return nil, fmt.Errorf("execute graph: %w", err)
	}

	return extractResult(runID, final)
}

func buildGraph(rt *Runtime) (state.StateGraph, error) {
	cfg := gaoconfig.DefaultGraphConfig("courier-email")
	cfg.Observer = "noop"

	graph, err := state.NewGraph(cfg)
	if err != nil {
		return nil, err
	}

	ts := newToolset(rt)

	nodes := map[string]state.StateNode{
		"classify":    ClassifyNode(rt),
		"acknowledge": AcknowledgeNode(rt),
		"download":    DownloadNode(rt, ts),
		"extract":     ExtractNode(rt, ts),
		"translate":   TranslateNode(rt, ts),
		"review":      ReviewNode(rt, ts),
		"send":        SendNode(rt, ts),
		"complete":    CompleteNode(rt),
	}

	for name, node := range nodes {
		if err := graph.AddNode(name, node); err != nil {
			return nil, err
		}
	}

	isTranslation := func(s state.State) bool {
		return !outcomeSet(s) && stateEmailType(s) == EmailTypeTranslation
	}
	isReview := func(s state.State) bool {
		return !outcomeSet(s) && stateEmailType(s) == EmailTypeReview
	}
	// defensive: reached only if a branch condition regresses
	isUnroutable := func(s state.State) bool {
		return outcomeSet(s) ||
			(stateEmailType(s) != EmailTypeTranslation && stateEmailType(s) != EmailTypeReview)
	}

	edges := []struct {
		from, to string
		cond     func(state.State) bool
	}{
		{"classify", "complete", outcomeSet},
		{"classify", "acknowledge", state.Not(outcomeSet)},
		{"acknowledge", "download", nil},
		{"download", "complete", outcomeSet},
		{"download", "extract", state.Not(outcomeSet)},
		{"extract", "translate", isTranslation},
		{"extract", "review", isReview},
		{"extract", "complete", isUnroutable},
		{"translate", "complete", outcomeSet},
		{"translate", "send", state.Not(outcomeSet)},
		{"review", "complete", outcomeSet},
		{"review", "send", state.Not(outcomeSet)},
		{"send", "complete", nil},
	}

	for _, e := range edges {
		if err := graph.AddEdge(e.from, e.to, e.cond); err != nil {
			return nil, err
		}
	}

	if err := graph.SetEntryPoint("classify"); err != nil {
		return nil, err
	}

	if err := graph.SetExitPoint("complete"); err != nil {
		return nil, err
	}

	return graph, nil
}

func extractResult(runID uuid.UUID, s state.State) (*Result, error) {
	val, ok := s.Get(KeyOutcome)
	if !ok {
		return nil, fmt.Errorf("missing %s in final state", KeyOutcome)
	}

	outcome, ok := val.(Outcome)
	if !ok {
		return nil, fmt.Errorf("%s is not Outcome", KeyOutcome)
	}

	return &Result{
		RunID:     runID,
		EmailType: stateEmailType(s),
		Outcome:   outcome,
		Message:   stateString(s, KeyMessage),
		State:     snapshot(s),
	}, nil
}

// snapshot captures the final session state for the caller. Only known keys
// are included; raw attachment payloads are omitted.
func snapshot(s state.State) map[string]any {
	out := make(map[string]any)
	for _, key := range snapshotKeys {
		if v, ok := s.Get(key); ok {
			out[key] = v
		}
	}

	for _, tool := range []string{"translate_text", "check_translation"} {
		key := guard.MapKey(tool)
		if v, ok := s.Get(key); ok {
			out[key] = v
		}
	}

	return out
}
