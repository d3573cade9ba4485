package prompts

import (
	"fmt"
	"strings"
)

// Classify builds the classification prompt from the email subject and body.
func Classify(subject, body string) (string, error) {
	return compose(StageClassify,
		section("Subject", subject),
		section("Body", body),
	)
}

// Reply builds the acknowledgment prompt for a classified email.
func Reply(emailType, subject, sender, signature string) (string, error) {
	return compose(StageReply,
		section("Request type", emailType),
		section("Subject", subject),
		section("Sender", sender),
		section("Sign off as", signature),
	)
}

// Translate builds the translation prompt for the given text and target language.
func Translate(text, targetLanguage string) (string, error) {
	return compose(StageTranslate,
		section("Target language", targetLanguage),
		section("Text", text),
	)
}

// Critique builds the quality review prompt comparing a translation against
// its original.
func Critique(original, translated string) (string, error) {
	return compose(StageCritique,
		section("Original", original),
		section("Translation", translated),
	)
}

// Edit builds the revision prompt applying edit instructions to document text.
func Edit(text, editInstructions string) (string, error) {
	return compose(StageEdit,
		section("Edit instructions", editInstructions),
		section("Document", text),
	)
}

// Confirm builds the completion confirmation prompt.
func Confirm(recipient, filename string) (string, error) {
	return compose(StageConfirm,
		section("Recipient", recipient),
		section("Document", filename),
	)
}

func compose(stage Stage, sections ...string) (string, error) {
	text, err := Instructions(stage)
	if err != nil {
		return "", fmt.Errorf("compose %s prompt: %w", stage, err)
	}

	var sb strings.Builder
	sb.WriteString(text)
	for _, s := range sections {
		sb.WriteString("\n\n")
		sb.WriteString(s)
	}

	return sb.String(), nil
}

func section(label, content string) string {
	return fmt.Sprintf("%s:\n%s", label, content)
}
