// Package prompts holds the model instructions for each workflow stage and
// the composition helpers that bind them to run data.
package prompts

import (
	"encoding/json"
	"slices"
)

// Stage represents a workflow stage backed by a model invocation.
type Stage string

// Valid workflow stages.
const (
	StageClassify  Stage = "classify"
	StageReply     Stage = "reply"
	StageTranslate Stage = "translate"
	StageCritique  Stage = "critique"
	StageEdit      Stage = "edit"
	StageConfirm   Stage = "confirm"
)

var stages = []Stage{
	StageClassify,
	StageReply,
	StageTranslate,
	StageCritique,
	StageEdit,
	StageConfirm,
}

// Stages returns the list of valid workflow stages.
func Stages() []Stage {
	return stages
}

// UnmarshalJSON validates that the decoded string is a known stage value.
func (s *Stage) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v := Stage(raw)
	if !slices.Contains(stages, v) {
		return ErrInvalidStage
	}
	*s = v
	return nil
}

// ParseStage validates a string as a known workflow stage.
// Returns ErrInvalidStage if the value is not recognized.
func ParseStage(s string) (Stage, error) {
	v := Stage(s)
	if !slices.Contains(stages, v) {
		return "", ErrInvalidStage
	}
	return v, nil
}
