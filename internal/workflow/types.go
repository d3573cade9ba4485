package workflow

import (
	"github.com/google/uuid"
)

// EmailType is the classified intent of an inbound email.
type EmailType string

// Recognized email types. Anything outside translation and review is
// folded into EmailTypeOther.
const (
	EmailTypeTranslation EmailType = "translation"
	EmailTypeReview      EmailType = "review"
	EmailTypeOther       EmailType = "other"
)

// ParseEmailType maps raw classifier output onto a recognized email type.
func ParseEmailType(raw string) EmailType {
	switch EmailType(raw) {
	case EmailTypeTranslation:
		return EmailTypeTranslation
	case EmailTypeReview:
		return EmailTypeReview
	default:
		return EmailTypeOther
	}
}

// Outcome is the terminal result code of one workflow run.
type Outcome string

const (
	OutcomeCompleted         Outcome = "completed"
	OutcomeUnsupportedType   Outcome = "unsupported_type"
	OutcomeDownloadFailed    Outcome = "download_failed"
	OutcomeExtractionFailed  Outcome = "extraction_failed"
	OutcomeTranslationFailed Outcome = "translation_failed"
	OutcomeReviewFailed      Outcome = "review_failed"
	OutcomeSendFailed        Outcome = "send_failed"
	OutcomeRoutingError      Outcome = "internal_routing_error"
)

// Terminal messages surfaced to the caller when a gate aborts the run.
const (
	MsgUnsupportedType   = "Cannot process email type: %s. Workflow ended."
	MsgDownloadFailed    = "Failed to download attachments. Workflow ended."
	MsgExtractionFailed  = "Failed to extract text from attachments. Workflow ended."
	MsgTranslationFailed = "Translation workflow failed. Cannot send email."
	MsgReviewFailed      = "Review workflow failed. Cannot send email."
	MsgSendFailed        = "Cannot send email, missing required information."
	MsgSendError         = "Failed to send email: %s."
	MsgRoutingError      = "Internal routing error. Workflow ended."
	MsgCompleted         = "Workflow completed successfully."
)

// Result is the outcome of one workflow run: a terminal code, a
// human-readable message, and the final session state snapshot.
type Result struct {
	RunID     uuid.UUID      `json:"run_id"`
	EmailType EmailType      `json:"email_type"`
	Outcome   Outcome        `json:"outcome"`
	Message   string         `json:"message"`
	State     map[string]any `json:"state"`
}
