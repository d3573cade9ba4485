package workflow

import (
	"github.com/JaimeStill/go-agents-orchestration/pkg/state"
)

// Session state keys. Keys are the contract between steps: a step may only
// consume a key that an earlier step produces.
const (
	KeyRunID              = "run_id"
	KeyEmailSubject       = "email_subject"
	KeyEmailBody          = "email_body"
	KeyEmailSender        = "email_sender_email"
	KeyInitialAttachments = "initial_attachments"
	KeyAttachmentPayloads = "attachment_payloads"

	KeyEmailType    = "email_type"
	KeyInitialReply = "initial_reply_text"

	KeyAttachmentArtifacts = "attachment_artifacts"
	KeyOriginalFormat      = "original_file_format"
	KeyExtractedText       = "extracted_text"

	KeyTranslatedText     = "translated_text"
	KeyQualityFeedback    = "translation_quality_feedback"
	KeyQualityScore       = "translation_quality_score"
	KeyEditInstructions   = "review_edit_instructions"
	KeyTranslatedDocument = "translated_document_artifact"
	KeyEditedDocument     = "edited_document_artifact"

	KeySendStatus   = "send_status"
	KeySendFailure  = "send_failure_reason"
	KeyConfirmation = "completion_confirmation"

	KeyOutcome = "workflow_outcome"
	KeyMessage = "workflow_message"
)

// snapshotKeys lists every key included in the final state snapshot.
// Attachment payloads are excluded; state carries artifact references, and
// the raw bytes only exist pre-download.
var snapshotKeys = []string{
	KeyRunID,
	KeyEmailSubject,
	KeyEmailBody,
	KeyEmailSender,
	KeyInitialAttachments,
	KeyEmailType,
	KeyInitialReply,
	KeyAttachmentArtifacts,
	KeyOriginalFormat,
	KeyExtractedText,
	KeyTranslatedText,
	KeyQualityFeedback,
	KeyQualityScore,
	KeyEditInstructions,
	KeyTranslatedDocument,
	KeyEditedDocument,
	KeySendStatus,
	KeySendFailure,
	KeyConfirmation,
	KeyOutcome,
	KeyMessage,
}

func stateString(s state.State, key string) string {
	v, ok := s.Get(key)
	if !ok {
		return ""
	}
	text, _ := v.(string)
	return text
}

func stateStrings(s state.State, key string) []string {
	v, ok := s.Get(key)
	if !ok {
		return nil
	}
	items, _ := v.([]string)
	return items
}

func stateRefs(s state.State, key string) map[string]int {
	v, ok := s.Get(key)
	if !ok {
		return nil
	}
	refs, _ := v.(map[string]int)
	return refs
}

func stateSensitiveMap(s state.State, key string) map[string]string {
	v, ok := s.Get(key)
	if !ok {
		return nil
	}
	mapping, _ := v.(map[string]string)
	return mapping
}

func stateEmailType(s state.State) EmailType {
	v, ok := s.Get(KeyEmailType)
	if !ok {
		return ""
	}
	et, _ := v.(EmailType)
	return et
}

func outcomeSet(s state.State) bool {
	_, ok := s.Get(KeyOutcome)
	return ok
}
