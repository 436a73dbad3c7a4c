package avatar

import (
	"sort"
	"strings"

	"mindprint/internal/seed"
)

type accessoryDef struct {
	id   string
	tags []string
}

var accessoryCatalog = []accessoryDef{
	{id: "glasses", tags: []string{"tech", "order"}},
	{id: "scarf", tags: []string{"social", "nature"}},
	{id: "headphones", tags: []string{"tech", "social"}},
	{id: "book", tags: []string{"order", "mystic"}},
	{id: "coffee", tags: []string{"social", "order"}},
	{id: "star_hairpin", tags: []string{"mystic"}},
	{id: "leaf_pin", tags: []string{"nature"}},
	{id: "moon_badge", tags: []string{"mystic", "order"}},
	{id: "ruler", tags: []string{"order", "tech"}},
	{id: "mini_keyboard", tags: []string{"tech"}},
	{id: "cat_plush", tags: []string{"social", "nature"}},
	{id: "speech_bubble", tags: []string{"social"}},
	{id: "tiny_satchel", tags: []string{"order", "nature"}},
	{id: "spark_orb", tags: []string{"mystic", "tech"}},
}

var backgroundGlyphs = []string{"stars", "ripples", "grid", "triangles", "sparkles", "annotation"}

func tagScore(tag string, traits TraitVector, mbti string) float64 {
	upper := strings.ToUpper(mbti)
	letterBonus := func(letter string, bonus float64) float64 {
		if strings.Contains(upper, letter) {
			return bonus
		}
		return 0
	}
	switch tag {
	case "tech":
		return traits.Tech + letterBonus("T", 0.2)
	case "nature":
		return traits.Nature + letterBonus("F", 0.12)
	case "mystic":
		return traits.Mystic + letterBonus("N", 0.2)
	case "order":
		return traits.Order + letterBonus("J", 0.18)
	}
	return traits.Openness + traits.Energy*0.2
}

func scoreAccessory(item accessoryDef, traits TraitVector, mbti string) float64 {
	sum := 0.0
	for _, tag := range item.tags {
		sum += tagScore(tag, traits, mbti)
	}
	return 0.18 + sum/float64(len(item.tags))
}

// selectAccessories picks 1..4 ids from an affinity-ranked list. Picks come
// from a top window that widens each attempt, so early picks stay on-theme
// while the guard keeps the loop finite.
func selectAccessories(traits TraitVector, mbti string, rng seed.Stream) []string {
	type scored struct {
		id    string
		score float64
	}
	sorted := make([]scored, 0, len(accessoryCatalog))
	for _, item := range accessoryCatalog {
		sorted = append(sorted, scored{id: item.id, score: scoreAccessory(item, traits, mbti)})
	}
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].score > sorted[j].score })

	countBase := 2
	if traits.Simplicity > 0.7 {
		countBase = 1
	} else if traits.Simplicity < 0.35 {
		countBase = 3
	}
	count := countBase
	if traits.Energy > 0.78 {
		count++
	}
	if count < 1 {
		count = 1
	}
	if count > 4 {
		count = 4
	}

	var picked []string
	seen := map[string]bool{}
	for guard := 1; len(picked) < count && guard < 31; guard++ {
		window := 7 + guard
		if window > len(sorted) {
			window = len(sorted)
		}
		next := seed.PickOne(rng, sorted[:window])
		if !seen[next.id] {
			seen[next.id] = true
			picked = append(picked, next.id)
		}
	}
	return picked
}

func selectBackgroundGlyph(traits TraitVector, rng seed.Stream) string {
	if traits.Tech > 0.7 {
		return "grid"
	}
	if traits.Nature > 0.7 {
		return "ripples"
	}
	if traits.Mystic > 0.66 {
		return "sparkles"
	}
	if traits.Energy > 0.72 {
		return seed.PickOne(rng, []string{"triangles", "stars"})
	}
	if traits.Simplicity > 0.68 {
		return "annotation"
	}
	return seed.PickOne(rng, backgroundGlyphs)
}

// AccessoryCatalog lists every accessory id the renderer can draw.
func AccessoryCatalog() []string {
	ids := make([]string, 0, len(accessoryCatalog))
	for _, item := range accessoryCatalog {
		ids = append(ids, item.id)
	}
	return ids
}
