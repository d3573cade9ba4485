package workflow

import (
	"context"
	"fmt"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/JaimeStill/courier/internal/emails"
	"github.com/JaimeStill/courier/internal/prompts"
	"github.com/JaimeStill/courier/internal/tools"
	"github.com/JaimeStill/courier/pkg/formatting"
)

// ClassifyNode determines the email type from the subject and body. An
// unrecognized type aborts the run at this gate with no downstream keys
// written.
func ClassifyNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		prompt, err := prompts.Classify(
			stateString(s, KeyEmailSubject),
			stateString(s, KeyEmailBody),
		)
		if err != nil {
			return s, fmt.Errorf("classify: %w", err)
		}

		content, err := rt.Completer.Complete(ctx, prompt)
		if err != nil {
			return s, fmt.Errorf("classify: %w", err)
		}

		raw := formatting.ParseWord(content)
		emailType := ParseEmailType(raw)
		s = s.Set(KeyEmailType, emailType)

		rt.Logger.InfoContext(ctx, "email classified", "type", emailType, "raw", raw)

		if emailType == EmailTypeOther {
			s = s.Set(KeyOutcome, OutcomeUnsupportedType)
			s = s.Set(KeyMessage, fmt.Sprintf(MsgUnsupportedType, raw))
		}

		return s, nil
	})
}

// AcknowledgeNode drafts the acknowledgment reply. A missing reply is a
// soft warning, not a gate; the send tool enforces the body precondition.
func AcknowledgeNode(rt *Runtime) state.StateNode {
	step := &completionStep{
		name:   "reply",
		output: KeyInitialReply,
		prompt: func(rt *Runtime, s state.State) (string, error) {
			return prompts.Reply(
				string(stateEmailType(s)),
				stateString(s, KeyEmailSubject),
				stateString(s, KeyEmailSender),
				rt.Signature,
			)
		},
	}

	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		next, err := step.Run(ctx, rt, s)
		if err != nil {
			rt.Logger.WarnContext(ctx, "acknowledgment generation failed", "error", err)
		}
		return next, nil
	})
}

// DownloadNode persists attachments to the artifact store and gates on a
// non-empty artifact mapping.
func DownloadNode(rt *Runtime, ts *toolset) state.StateNode {
	step := &toolStep{
		tool: ts.download,
		args: func(rt *Runtime, s state.State) tools.Args {
			payloads, _ := mustGet(s, KeyAttachmentPayloads).([]emails.Attachment)
			return tools.Args{"attachments": payloads}
		},
		bind: map[string]string{
			"attachment_artifacts": KeyAttachmentArtifacts,
			"original_file_format": KeyOriginalFormat,
		},
	}

	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		next, err := step.Run(ctx, rt, s)
		s = next
		if err != nil {
			rt.Logger.WarnContext(ctx, "download step failed", "error", err)
		}

		if len(stateRefs(s, KeyAttachmentArtifacts)) == 0 {
			s = s.Set(KeyOutcome, OutcomeDownloadFailed)
			s = s.Set(KeyMessage, MsgDownloadFailed)
		}

		return s, nil
	})
}

// ExtractNode pulls text out of the stored attachments and gates on a
// non-empty extraction.
func ExtractNode(rt *Runtime, ts *toolset) state.StateNode {
	step := &toolStep{
		tool: ts.extract,
		args: func(rt *Runtime, s state.State) tools.Args {
			return tools.Args{
				"attachment_artifacts": stateRefs(s, KeyAttachmentArtifacts),
				"filenames":            stateStrings(s, KeyInitialAttachments),
			}
		},
		bind: map[string]string{
			"extracted_text":       KeyExtractedText,
			"original_file_format": KeyOriginalFormat,
			"translated_text":      KeyTranslatedText,
		},
	}

	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		next, err := step.Run(ctx, rt, s)
		s = next
		if err != nil {
			rt.Logger.WarnContext(ctx, "extract step failed", "error", err)
		}

		if stateString(s, KeyExtractedText) == "" {
			s = s.Set(KeyOutcome, OutcomeExtractionFailed)
			s = s.Set(KeyMessage, MsgExtractionFailed)
		}

		return s, nil
	})
}

// TranslateNode runs the translation pipeline and gates on the produced
// document artifact.
func TranslateNode(rt *Runtime, ts *toolset) state.StateNode {
	pipeline := translationPipeline(ts)

	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		s = pipeline.Run(ctx, rt, s)

		if _, ok := s.Get(KeyTranslatedDocument); !ok {
			s = s.Set(KeyOutcome, OutcomeTranslationFailed)
			s = s.Set(KeyMessage, MsgTranslationFailed)
		}

		return s, nil
	})
}

// ReviewNode runs the review pipeline and gates on the edited document
// artifact.
func ReviewNode(rt *Runtime, ts *toolset) state.StateNode {
	pipeline := reviewPipeline(ts)

	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		s = pipeline.Run(ctx, rt, s)

		if _, ok := s.Get(KeyEditedDocument); !ok {
			s = s.Set(KeyOutcome, OutcomeReviewFailed)
			s = s.Set(KeyMessage, MsgReviewFailed)
		}

		return s, nil
	})
}

// SendNode runs the send pipeline and gates on delivery confirmation. A
// delivery failure after the preconditions held carries the tool's failure
// reason; a precondition failure keeps the missing-information message.
func SendNode(rt *Runtime, ts *toolset) state.StateNode {
	pipeline := sendPipeline(ts)

	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		s = pipeline.Run(ctx, rt, s)

		if stateString(s, KeySendStatus) != "success" {
			s = s.Set(KeyOutcome, OutcomeSendFailed)
			if reason := stateString(s, KeySendFailure); reason != "" {
				s = s.Set(KeyMessage, fmt.Sprintf(MsgSendError, reason))
			} else {
				s = s.Set(KeyMessage, MsgSendFailed)
			}
		}

		return s, nil
	})
}

// CompleteNode resolves the terminal outcome. Gate failures arrive with the
// outcome already set; a successful delivery completes the run; anything
// else is a routing error.
func CompleteNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		if outcomeSet(s) {
			return s, nil
		}

		if stateString(s, KeySendStatus) == "success" {
			s = s.Set(KeyOutcome, OutcomeCompleted)
			if msg := stateString(s, KeyConfirmation); msg != "" {
				s = s.Set(KeyMessage, msg)
			} else {
				s = s.Set(KeyMessage, MsgCompleted)
			}
			return s, nil
		}

		s = s.Set(KeyOutcome, OutcomeRoutingError)
		s = s.Set(KeyMessage, MsgRoutingError)
		return s, nil
	})
}

func mustGet(s state.State, key string) any {
	v, _ := s.Get(key)
	return v
}
