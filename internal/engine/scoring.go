package engine

// likertToNumeric maps a 1..5 Likert choice onto the signed scale -2..2.
// Out-of-range choices map to 0 (the neutral midpoint).
func likertToNumeric(choice int) float64 {
	switch choice {
	case 1:
		return -2
	case 2:
		return -1
	case 3:
		return 0
	case 4:
		return 1
	case 5:
		return 2
	default:
		return 0
	}
}

// resolveContribution orients a raw Likert value by the question's direction
// and reverse-scoring flag.
func resolveContribution(q Question, choice int) float64 {
	reverse := 1.0
	if q.ReverseScoring {
		reverse = -1
	}
	return likertToNumeric(choice) * float64(q.Direction) * reverse
}

// ScoreResult is the full output of Likert scoring for one session.
type ScoreResult struct {
	RawScores        DimensionScores    `json:"rawScores"`
	NormalizedScores DimensionScores    `json:"normalizedScores"`
	Letters          DimensionLetters   `json:"letters"`
	MBTI             string             `json:"mbti"`
	// AnswerMappedValues carries the oriented contribution of every matched
	// answer, keyed by question id. Behavior analytics consumes it.
	AnswerMappedValues map[string]float64 `json:"answerMappedValues"`
}

// ScoreSession aggregates answers into per-dimension raw and normalized
// scores and a 4-letter type code.
//
// Lenient read policy: an answer whose questionId matches no question is
// silently skipped. Input validation is the caller's boundary, not ours.
func ScoreSession(questions []Question, answers []Answer) ScoreResult {
	byID := make(map[string]Question, len(questions))
	maxByDimension := zeroScores()
	for _, q := range questions {
		byID[q.ID] = q
		maxByDimension[q.Dimension] += 2
	}

	raw := zeroScores()
	mapped := make(map[string]float64, len(answers))
	for _, a := range answers {
		q, ok := byID[a.QuestionID]
		if !ok {
			continue
		}
		contribution := resolveContribution(q, a.Choice)
		raw[q.Dimension] += contribution
		mapped[a.QuestionID] = contribution
	}

	normalized := zeroScores()
	letters := DimensionLetters{}
	mbti := ""
	for _, dim := range Dimensions {
		maxAbs := maxByDimension[dim]
		if maxAbs == 0 {
			maxAbs = 1
		}
		score := round4(clamp(raw[dim]/maxAbs, -1, 1))
		normalized[dim] = score
		positive, negative := dim.Poles()
		if score >= 0 {
			letters[dim] = positive
		} else {
			letters[dim] = negative
		}
		mbti += letters[dim]
	}

	return ScoreResult{
		RawScores:          raw,
		NormalizedScores:   normalized,
		Letters:            letters,
		MBTI:               mbti,
		AnswerMappedValues: mapped,
	}
}
