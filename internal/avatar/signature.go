// Package avatar derives a deterministic cute line-art avatar from a user's
// type and raw answers. The same user, type, and answer set always produce
// the identical config and SVG markup.
package avatar

import (
	"sort"
	"strings"

	"mindprint/internal/seed"
)

// AnswerInput is a raw answer as submitted. Option may be a Likert digit
// ("1".."5") or a letter choice ("A".."E"); anything else maps to neutral.
type AnswerInput struct {
	QuestionID string `json:"questionId"`
	Option     string `json:"option"`
}

// NormalizedAnswer has a trimmed id and an uppercased non-empty option.
type NormalizedAnswer struct {
	QuestionID string `json:"questionId"`
	Option     string `json:"option"`
}

// NormalizeAnswers drops answers without a question id and canonicalizes the
// option text. Blank options become "0" so they hash consistently.
func NormalizeAnswers(answers []AnswerInput) []NormalizedAnswer {
	out := make([]NormalizedAnswer, 0, len(answers))
	for _, a := range answers {
		id := strings.TrimSpace(a.QuestionID)
		if id == "" {
			continue
		}
		option := strings.ToUpper(strings.TrimSpace(a.Option))
		if option == "" {
			option = "0"
		}
		out = append(out, NormalizedAnswer{QuestionID: id, Option: option})
	}
	return out
}

// BuildAnswersSignature produces the canonical identity key for an answer
// set. Answer order never affects the signature.
func BuildAnswersSignature(answers []AnswerInput) string {
	normalized := NormalizeAnswers(answers)
	sort.SliceStable(normalized, func(i, j int) bool {
		return normalized[i].QuestionID < normalized[j].QuestionID
	})
	parts := make([]string, 0, len(normalized))
	for _, a := range normalized {
		parts = append(parts, a.QuestionID+":"+a.Option)
	}
	return strings.Join(parts, "|")
}

// BuildSeed folds identity and signature into the 32-bit render seed.
// Variant arithmetic wraps, matching uint32 overflow semantics.
func BuildSeed(userID, mbti, answersSignature string, variant uint32) uint32 {
	return seed.Hash32(userID+"|"+mbti+"|"+answersSignature) + variant
}
