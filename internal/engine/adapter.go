package engine

// ToAxisInputs bridges the Likert question/answer shapes into the alternate
// axis scorer's item shape. Direction and reverse-scoring collapse into a
// single POS/NEG keying.
func ToAxisInputs(questions []Question, answers []Answer) ([]AxisItem, []AxisAnswer) {
	items := make([]AxisItem, 0, len(questions))
	for _, q := range questions {
		sign := 1
		if q.Direction < 0 {
			sign = -1
		}
		if q.ReverseScoring {
			sign = -sign
		}
		keyed := KeyedPos
		if sign < 0 {
			keyed = KeyedNeg
		}
		items = append(items, AxisItem{
			ID:    q.ID,
			Axis:  Axis(q.Dimension),
			Keyed: keyed,
			Text:  q.Text,
		})
	}

	axisAnswers := make([]AxisAnswer, 0, len(answers))
	for _, a := range answers {
		axisAnswers = append(axisAnswers, AxisAnswer{ID: a.QuestionID, Answer: a.Choice})
	}
	return items, axisAnswers
}
