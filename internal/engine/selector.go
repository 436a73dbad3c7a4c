package engine

import (
	"fmt"
	"math"
	"sort"

	"mindprint/internal/seed"
)

// GenerationContext carries prior-session signals that steer item selection.
// Every field is optional; a zero context yields the cold-start allocation.
type GenerationContext struct {
	Persona             *PersonaModel
	HistoryCount        int
	RecentQuestionTexts []string
	LatestScores        DimensionScores
	LatestBehavior      *BehaviorStats
}

func weightedDimensionMap(ctx *GenerationContext) map[Dimension]float64 {
	weights := map[Dimension]float64{
		DimensionEI: 1, DimensionSN: 1, DimensionTF: 1, DimensionJP: 1,
	}
	if ctx == nil {
		return weights
	}

	if persona := ctx.Persona; persona != nil {
		weights[persona.VulnerableDimension] += 0.9
		weights[persona.GrowthDimension] += 0.55
		weights[persona.StableDimension] += 0.2
		if persona.ContradictionIndex > 0.55 {
			weights[persona.VulnerableDimension] += 0.4
		}
	}

	if ctx.LatestScores != nil {
		for _, dim := range Dimensions {
			score, ok := ctx.LatestScores[dim]
			if !ok {
				continue
			}
			certainty := math.Abs(score)
			if certainty < 0.22 {
				weights[dim] += 0.75
			}
			if certainty >= 0.75 {
				weights[dim] += 0.12
			}
		}
	}

	if ctx.LatestBehavior != nil && ctx.LatestBehavior.ReverseSensitivity > 0.55 {
		weights[DimensionTF] += 0.2
		weights[DimensionJP] += 0.2
	}
	return weights
}

// allocateCounts splits count across the four dimensions proportionally to
// their weights, keeping a floor of 5 per dimension. Overflow past the floor
// is reclaimed from the lowest-weighted dimensions.
func allocateCounts(count int, ctx *GenerationContext) map[Dimension]int {
	weights := weightedDimensionMap(ctx)

	sum := 0.0
	for _, dim := range Dimensions {
		sum += weights[dim]
	}

	result := map[Dimension]int{}
	allocated := 0
	for _, dim := range Dimensions {
		base := int(math.Floor(float64(count) * weights[dim] / sum))
		if base < 5 {
			base = 5
		}
		result[dim] = base
		allocated += base
	}

	ranking := make([]Dimension, len(Dimensions))
	copy(ranking, Dimensions)
	sort.SliceStable(ranking, func(i, j int) bool {
		return weights[ranking[i]] > weights[ranking[j]]
	})

	remain := count - allocated
	i := 0
	for remain > 0 {
		dim := ranking[i%len(ranking)]
		result[dim]++
		remain--
		i++
	}
	for remain < 0 {
		dim := ranking[len(ranking)-1-(i%len(ranking))]
		if result[dim] > 5 {
			result[dim]--
			remain++
		}
		i++
	}
	return result
}

// pickMany samples count items without replacement via a seeded shuffle,
// skipping excluded texts unless the pool cannot cover the request. Picked
// texts are added to excludes so later calls stay disjoint.
func pickMany(pool []BankItem, count int, rng seed.Stream, excludes map[string]bool) []BankItem {
	available := make([]BankItem, 0, len(pool))
	for _, it := range pool {
		if !excludes[it.Text] {
			available = append(available, it)
		}
	}
	source := available
	if len(available) < count {
		source = pool
	}
	if len(source) == 0 || count <= 0 {
		return nil
	}

	type keyed struct {
		item BankItem
		key  float64
	}
	shuffled := make([]keyed, 0, len(source))
	for _, it := range source {
		shuffled = append(shuffled, keyed{item: it, key: rng()})
	}
	sort.SliceStable(shuffled, func(i, j int) bool { return shuffled[i].key < shuffled[j].key })

	sampled := make([]BankItem, 0, count)
	for _, row := range shuffled {
		if len(sampled) == count {
			break
		}
		sampled = append(sampled, row.item)
	}
	// Repeat items when the pool is smaller than the request.
	for len(sampled) < count {
		sampled = append(sampled, shuffled[int(rng()*float64(len(shuffled)))].item)
	}

	for _, it := range sampled {
		excludes[it.Text] = true
	}
	return sampled
}

func selectByDimension(dim Dimension, target int, rng seed.Stream, ctx *GenerationContext, excludes map[string]bool) []BankItem {
	all := BankByDimension(dim)
	baseline := make([]BankItem, 0, len(all))
	depth := make([]BankItem, 0, len(all))
	for _, it := range all {
		if it.Intent == IntentDepth {
			depth = append(depth, it)
		} else {
			baseline = append(baseline, it)
		}
	}

	depthRatio := 0.46
	if ctx != nil && ctx.Persona != nil {
		depthRatio = clamp(0.42+ctx.Persona.ReflectionDepth*0.36, 0.4, 0.84)
	}
	depthCount := int(math.Round(float64(target) * depthRatio))
	baselineCount := target - depthCount

	picked := append(pickMany(baseline, baselineCount, rng, excludes), pickMany(depth, depthCount, rng, excludes)...)
	sort.SliceStable(picked, func(i, j int) bool { return rng()-0.5 < 0 })
	return picked
}

// GenerateQuestions builds a deterministic adaptive quiz of finalCount items.
// The same seed and context always yield the same questions in the same
// order; ids encode order index, item code, and a seed-bound short hash.
func GenerateQuestions(count int, quizSeed string, ctx *GenerationContext) []Question {
	finalCount := count
	if finalCount < 20 {
		finalCount = 20
	}
	if finalCount > 60 {
		finalCount = 60
	}
	rng := seed.FromString(quizSeed)

	counts := allocateCounts(finalCount, ctx)
	excludes := map[string]bool{}
	if ctx != nil {
		for _, text := range ctx.RecentQuestionTexts {
			excludes[text] = true
		}
	}

	var selected []BankItem
	for _, dim := range Dimensions {
		selected = append(selected, selectByDimension(dim, counts[dim], rng, ctx, excludes)...)
	}

	type ordered struct {
		item BankItem
		key  float64
	}
	shuffled := make([]ordered, 0, len(selected))
	for _, it := range selected {
		shuffled = append(shuffled, ordered{item: it, key: rng()})
	}
	sort.SliceStable(shuffled, func(i, j int) bool { return shuffled[i].key < shuffled[j].key })

	questions := make([]Question, 0, len(shuffled))
	for orderIndex, row := range shuffled {
		it := row.item
		questions = append(questions, Question{
			ID:             fmt.Sprintf("q%d_%s_%s", orderIndex+1, it.Code, seed.ShortHash(quizSeed+"-"+it.Code, 8)),
			Text:           it.Text,
			Dimension:      it.Dimension,
			Direction:      it.Direction,
			ReverseScoring: it.ReverseScoring,
			Intent:         it.Intent,
		})
	}
	return questions
}
