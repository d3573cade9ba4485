package workflow

import (
	"context"
	"fmt"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/JaimeStill/courier/internal/guard"
	"github.com/JaimeStill/courier/internal/tools"
)

// Step is one orchestrated unit of work. Steps communicate only through
// session state; a step signals failure by returning an error, which the
// enclosing pipeline logs without halting. Downstream gates detect failure
// as the absence of an expected state key.
type Step interface {
	Name() string
	Run(ctx context.Context, rt *Runtime, s state.State) (state.State, error)
}

// completionStep invokes the model with a composed prompt and writes the
// response to a single state key.
type completionStep struct {
	name      string
	output    string
	prompt    func(rt *Runtime, s state.State) (string, error)
	transform func(string) string
}

func (st *completionStep) Name() string { return st.name }

func (st *completionStep) Run(ctx context.Context, rt *Runtime, s state.State) (state.State, error) {
	prompt, err := st.prompt(rt, s)
	if err != nil {
		return s, fmt.Errorf("%s: %w", st.name, err)
	}

	content, err := rt.Completer.Complete(ctx, prompt)
	if err != nil {
		return s, fmt.Errorf("%s: %w", st.name, err)
	}

	if st.transform != nil {
		content = st.transform(content)
	}

	return s.Set(st.output, content), nil
}

// toolStep invokes one tool with arguments drawn from state, bracketing the
// call with the sensitive data guard when the tool is designated, and binds
// named result outputs back to state keys.
type toolStep struct {
	tool tools.Tool
	args func(rt *Runtime, s state.State) tools.Args
	bind map[string]string
}

func (st *toolStep) Name() string { return st.tool.Name() }

func (st *toolStep) Run(ctx context.Context, rt *Runtime, s state.State) (state.State, error) {
	name := st.tool.Name()
	args := st.args(rt, s)

	s = st.redact(rt, s, args)

	result := st.tool.Call(ctx, args)

	st.restore(rt, s, result)

	// outputs bind regardless of status so error signals like send_status
	// stay visible to downstream gates
	for field, key := range st.bind {
		if v, ok := result.Output[field]; ok {
			s = s.Set(key, v)
		}
	}

	if result.Status != tools.StatusSuccess {
		return s, fmt.Errorf("%s: %s", name, result.Message)
	}

	return s, nil
}

func (st *toolStep) redact(rt *Runtime, s state.State, args tools.Args) state.State {
	field, ok := rt.Guard.ArgField(st.tool.Name())
	if !ok {
		return s
	}

	text, ok := args[field].(string)
	if !ok {
		return s
	}

	mapKey := guard.MapKey(st.tool.Name())
	redacted, mapping := rt.Guard.Redact(text, stateSensitiveMap(s, mapKey))
	args[field] = redacted

	return s.Set(mapKey, mapping)
}

func (st *toolStep) restore(rt *Runtime, s state.State, result *tools.Result) {
	field, ok := rt.Guard.ResponseField(st.tool.Name())
	if !ok {
		return
	}

	text, ok := result.Output[field].(string)
	if !ok {
		return
	}

	mapping := stateSensitiveMap(s, guard.MapKey(st.tool.Name()))
	result.Output[field] = rt.Guard.Restore(text, mapping)
}
