package engine

import "math"

// CalculateBehaviorStats derives response-pattern signals from the same
// resolved contributions the scorer uses. completionSeconds <= 0 leaves
// CompletionPace unset.
func CalculateBehaviorStats(questions []Question, answers []Answer, completionSeconds float64) BehaviorStats {
	byID := make(map[string]Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}

	var mappedAbs, neutralFlags []float64
	byDimension := map[Dimension][]float64{}
	forwardByDimension := map[Dimension][]float64{}
	reverseByDimension := map[Dimension][]float64{}

	answered := 0
	for _, a := range answers {
		q, ok := byID[a.QuestionID]
		if !ok {
			continue
		}
		answered++

		rawLikert := likertToNumeric(a.Choice)
		oriented := resolveContribution(q, a.Choice)

		mappedAbs = append(mappedAbs, math.Abs(rawLikert))
		if a.Choice == 3 {
			neutralFlags = append(neutralFlags, 1)
		} else {
			neutralFlags = append(neutralFlags, 0)
		}
		byDimension[q.Dimension] = append(byDimension[q.Dimension], oriented)
		if q.ReverseScoring {
			reverseByDimension[q.Dimension] = append(reverseByDimension[q.Dimension], oriented)
		} else {
			forwardByDimension[q.Dimension] = append(forwardByDimension[q.Dimension], oriented)
		}
	}

	extremity := round4(clamp01(mean(mappedAbs) / 2))
	neutrality := round4(clamp01(mean(neutralFlags)))

	stds := make([]float64, 0, len(Dimensions))
	for _, dim := range Dimensions {
		stds = append(stds, stdDev(byDimension[dim]))
	}
	consistency := round4(clamp01(1 - mean(stds)/2))

	// A dimension counts as contradictory only when forward- and reverse-keyed
	// items point in opposite directions and neither side is weak (|mean|<0.25).
	conflicts := make([]float64, 0, len(Dimensions))
	for _, dim := range Dimensions {
		fwd := forwardByDimension[dim]
		rev := reverseByDimension[dim]
		if len(fwd) == 0 || len(rev) == 0 {
			conflicts = append(conflicts, 0)
			continue
		}
		fwdMean := mean(fwd)
		revMean := mean(rev)
		sameDirection := sign(fwdMean) == sign(revMean)
		weak := math.Abs(fwdMean) < 0.25 || math.Abs(revMean) < 0.25
		if sameDirection || weak {
			conflicts = append(conflicts, 0)
		} else {
			conflicts = append(conflicts, 1)
		}
	}
	reverseSensitivity := round4(clamp01(mean(conflicts)))

	stats := BehaviorStats{
		Extremity:          extremity,
		Consistency:        consistency,
		Neutrality:         neutrality,
		ReverseSensitivity: reverseSensitivity,
	}

	if completionSeconds > 0 && answered > 0 {
		secPerQuestion := completionSeconds / float64(answered)
		pace := round4(clamp01((20 - secPerQuestion) / 15))
		stats.CompletionPace = &pace
	}

	return stats
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
