package engine

import (
	"strconv"
	"strings"
	"testing"
)

func countByDimension(questions []Question) map[Dimension]int {
	counts := map[Dimension]int{}
	for _, q := range questions {
		counts[q.Dimension]++
	}
	return counts
}

func TestGenerateQuestionsDeterministic(t *testing.T) {
	a := GenerateQuestions(36, "quiz:main_user:42", nil)
	b := GenerateQuestions(36, "quiz:main_user:42", nil)

	if len(a) != 36 || len(b) != 36 {
		t.Fatalf("lengths %d/%d, want 36", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("question %d diverged: %+v vs %+v", i, a[i], b[i])
		}
	}

	c := GenerateQuestions(36, "quiz:main_user:43", nil)
	same := true
	for i := range a {
		if a[i].Text != c[i].Text {
			same = false
			break
		}
	}
	if same {
		t.Fatalf("different seeds produced an identical quiz")
	}
}

func TestGenerateQuestionsCountClamp(t *testing.T) {
	if got := len(GenerateQuestions(4, "s", nil)); got != 20 {
		t.Fatalf("low count clamped to %d, want 20", got)
	}
	if got := len(GenerateQuestions(999, "s", nil)); got != 60 {
		t.Fatalf("high count clamped to %d, want 60", got)
	}
}

func TestGenerateQuestionsDimensionFloor(t *testing.T) {
	vulnerable := &GenerationContext{
		Persona: &PersonaModel{
			StableDimension:     DimensionEI,
			VulnerableDimension: DimensionTF,
			GrowthDimension:     DimensionTF,
			ContradictionIndex:  0.9,
		},
	}

	questions := GenerateQuestions(24, "floor-seed", vulnerable)
	counts := countByDimension(questions)

	total := 0
	for _, dim := range Dimensions {
		if counts[dim] < 5 {
			t.Fatalf("dimension %s got %d questions, floor is 5", dim, counts[dim])
		}
		total += counts[dim]
	}
	if total != 24 {
		t.Fatalf("allocated %d questions, want 24", total)
	}
	if counts[DimensionTF] <= counts[DimensionEI] {
		t.Fatalf("vulnerable TF (%d) should outweigh stable EI (%d)", counts[DimensionTF], counts[DimensionEI])
	}
}

func TestGenerateQuestionsExcludesRecentTexts(t *testing.T) {
	recent := GenerateQuestions(20, "first", nil)
	texts := make([]string, 0, len(recent))
	for _, q := range recent {
		texts = append(texts, q.Text)
	}

	ctx := &GenerationContext{RecentQuestionTexts: texts[:8]}
	next := GenerateQuestions(20, "second", ctx)

	excluded := map[string]bool{}
	for _, text := range texts[:8] {
		excluded[text] = true
	}
	hits := 0
	for _, q := range next {
		if excluded[q.Text] {
			hits++
		}
	}
	// The per-dimension pools are deep enough at 20 questions to avoid all of
	// the excluded texts.
	if hits != 0 {
		t.Fatalf("%d recently-seen texts reappeared", hits)
	}
}

func TestGenerateQuestionsIDFormat(t *testing.T) {
	questions := GenerateQuestions(20, "id-seed", nil)
	for i, q := range questions {
		parts := strings.Split(q.ID, "_")
		if len(parts) != 3 {
			t.Fatalf("id %q has %d segments, want 3", q.ID, len(parts))
		}
		if want := "q" + strconv.Itoa(i+1); parts[0] != want {
			t.Fatalf("id %q order prefix=%q, want %q", q.ID, parts[0], want)
		}
		if len(parts[2]) != 8 {
			t.Fatalf("id %q hash suffix length=%d, want 8", q.ID, len(parts[2]))
		}
	}
}
