package pipeline

import "fmt"

// NotFoundError reports a missing user or session by kind and id.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s '%s' not found", e.Kind, e.ID)
}

// EmptySubmissionError is returned when a submission carries no usable
// answers for its question set.
type EmptySubmissionError struct {
	UserID string
}

func (e EmptySubmissionError) Error() string {
	return fmt.Sprintf("submission for user '%s' has no answers", e.UserID)
}
