package storage

import "time"

type User struct {
	ID        string
	Name      *string
	CreatedAt time.Time
	StyleDNA  []byte // JSON genome blob, nil until the first session completes
}

type Session struct {
	ID        string
	UserID    string
	CreatedAt time.Time
	MBTI      string

	// JSON blobs as produced by the engine; decoded by the service layer.
	Questions  []byte
	Answers    []byte
	Scores     []byte
	Behavior   []byte
	AxisResult []byte
	PetModel   []byte
}

type AvatarRow struct {
	ID               int64
	Version          string
	UserID           string
	MBTI             string
	AnswersSignature string
	SessionID        *string
	Config           []byte
	SVG              string
	CreatedAt        time.Time
}
