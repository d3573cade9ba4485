package workflow

import (
	"context"
	"fmt"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/JaimeStill/courier/internal/prompts"
	"github.com/JaimeStill/courier/internal/tools"
	"github.com/JaimeStill/courier/pkg/artifacts"
)

// Pipeline is a fixed ordered chain of steps with state-key handoff between
// stages. A failed step is logged and the chain continues; the orchestrator
// detects pipeline failure by the absence of the final expected key.
type Pipeline struct {
	Name  string
	Steps []Step
}

// Run executes the pipeline steps in order against the given state.
func (p *Pipeline) Run(ctx context.Context, rt *Runtime, s state.State) state.State {
	for _, step := range p.Steps {
		next, err := step.Run(ctx, rt, s)
		s = next
		if err != nil {
			rt.Logger.WarnContext(ctx, "pipeline step failed",
				"pipeline", p.Name,
				"step", step.Name(),
				"error", err,
			)
		}
	}
	return s
}

// translationPipeline translates the extracted text, reviews the result,
// and converts it into a Word document artifact.
func translationPipeline(ts *toolset) *Pipeline {
	return &Pipeline{
		Name: "translation",
		Steps: []Step{
			&toolStep{
				tool: ts.translate,
				args: func(rt *Runtime, s state.State) tools.Args {
					return tools.Args{
						"text":            stateString(s, KeyExtractedText),
						"target_language": rt.TargetLanguage,
					}
				},
				bind: map[string]string{
					"translated_text": KeyTranslatedText,
				},
			},
			&toolStep{
				tool: ts.check,
				args: func(rt *Runtime, s state.State) tools.Args {
					return tools.Args{
						"original_text":   stateString(s, KeyExtractedText),
						"translated_text": stateString(s, KeyTranslatedText),
					}
				},
				bind: map[string]string{
					"feedback_text": KeyQualityFeedback,
					"score":         KeyQualityScore,
				},
			},
			&toolStep{
				tool: ts.convert,
				args: func(rt *Runtime, s state.State) tools.Args {
					return tools.Args{
						"translated_text": stateString(s, KeyTranslatedText),
						"original_format": stateString(s, KeyOriginalFormat),
						"source_filename": firstAttachment(s),
					}
				},
				bind: map[string]string{
					"translated_document_artifact": KeyTranslatedDocument,
				},
			},
		},
	}
}

// reviewPipeline derives edit instructions by comparing the original text
// against the candidate translation, then applies them to the reviewed
// document as a new artifact version.
func reviewPipeline(ts *toolset) *Pipeline {
	return &Pipeline{
		Name: "review",
		Steps: []Step{
			&toolStep{
				tool: ts.check,
				args: func(rt *Runtime, s state.State) tools.Args {
					return tools.Args{
						"original_text":   stateString(s, KeyExtractedText),
						"translated_text": stateString(s, KeyTranslatedText),
					}
				},
				bind: map[string]string{
					"feedback_text": KeyEditInstructions,
				},
			},
			&toolStep{
				tool: ts.edit,
				args: func(rt *Runtime, s state.State) tools.Args {
					name := firstAttachment(s)
					return tools.Args{
						"artifact_name":     name,
						"artifact_version":  stateRefs(s, KeyAttachmentArtifacts)[name],
						"edit_instructions": stateString(s, KeyEditInstructions),
					}
				},
				bind: map[string]string{
					"edited_document_artifact": KeyEditedDocument,
				},
			},
		},
	}
}

// sendPipeline delivers the final document and emits a completion
// confirmation.
func sendPipeline(ts *toolset) *Pipeline {
	return &Pipeline{
		Name: "send",
		Steps: []Step{
			&toolStep{
				tool: ts.send,
				args: func(rt *Runtime, s state.State) tools.Args {
					ref := finalDocument(s)
					return tools.Args{
						"recipient":        stateString(s, KeyEmailSender),
						"subject":          replySubject(stateString(s, KeyEmailSubject)),
						"body":             stateString(s, KeyInitialReply),
						"artifact_name":    ref.Name,
						"artifact_version": ref.Version,
					}
				},
				bind: map[string]string{
					"send_status":  KeySendStatus,
					"send_failure": KeySendFailure,
				},
			},
			&completionStep{
				name:   "confirm",
				output: KeyConfirmation,
				prompt: func(rt *Runtime, s state.State) (string, error) {
					if stateString(s, KeySendStatus) != "success" {
						return "", fmt.Errorf("final email was not sent")
					}
					return prompts.Confirm(
						stateString(s, KeyEmailSender),
						finalDocument(s).Name,
					)
				},
			},
		},
	}
}

func firstAttachment(s state.State) string {
	filenames := stateStrings(s, KeyInitialAttachments)
	if len(filenames) == 0 {
		return ""
	}
	return filenames[0]
}

// finalDocument selects the deliverable artifact by email type: translation
// runs produce translated_document_artifact, review runs
// edited_document_artifact.
func finalDocument(s state.State) artifacts.Ref {
	key := KeyTranslatedDocument
	if stateEmailType(s) == EmailTypeReview {
		key = KeyEditedDocument
	}

	v, ok := s.Get(key)
	if !ok {
		return artifacts.Ref{}
	}

	ref, _ := v.(artifacts.Ref)
	return ref
}

func replySubject(subject string) string {
	if subject == "" {
		return "Your document"
	}
	return "Re: " + subject
}
