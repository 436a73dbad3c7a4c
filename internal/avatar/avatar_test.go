package avatar

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type memoryStorage struct {
	records map[string]Record
	saves   int
	lookups int
	failGet bool
}

func newMemoryStorage() *memoryStorage {
	return &memoryStorage{records: map[string]Record{}}
}

func (m *memoryStorage) key(version, userID, mbti, sig string) string {
	return version + "|" + userID + "|" + mbti + "|" + sig
}

func (m *memoryStorage) GetBySignature(q SignatureQuery) (*Record, error) {
	m.lookups++
	if m.failGet {
		return nil, errors.New("storage offline")
	}
	record, ok := m.records[m.key(q.Version, q.UserID, q.MBTI, q.AnswersSignature)]
	if !ok {
		return nil, nil
	}
	return &record, nil
}

func (m *memoryStorage) Save(record Record) error {
	m.saves++
	c := record.Config
	m.records[m.key(c.Version, c.UserID, c.MBTI, c.AnswersSignature)] = record
	return nil
}

func sampleAnswers() []AnswerInput {
	return []AnswerInput{
		{QuestionID: "q1", Option: "4"},
		{QuestionID: "q2", Option: "2"},
		{QuestionID: "q3", Option: "5"},
		{QuestionID: "q4", Option: "1"},
	}
}

func TestBuildAnswersSignatureOrderInvariance(t *testing.T) {
	forward := BuildAnswersSignature(sampleAnswers())

	shuffledInput := []AnswerInput{
		{QuestionID: "q3", Option: "5"},
		{QuestionID: "q1", Option: "4"},
		{QuestionID: "q4", Option: "1"},
		{QuestionID: "q2", Option: "2"},
	}
	require.Equal(t, forward, BuildAnswersSignature(shuffledInput))

	normalizedInput := []AnswerInput{
		{QuestionID: " q1 ", Option: " 4 "},
		{QuestionID: "q2", Option: "2"},
		{QuestionID: "q3", Option: "5"},
		{QuestionID: "q4", Option: "1"},
	}
	require.Equal(t, forward, BuildAnswersSignature(normalizedInput))
}

func TestNormalizeAnswers(t *testing.T) {
	normalized := NormalizeAnswers([]AnswerInput{
		{QuestionID: "q1", Option: "a"},
		{QuestionID: "q2", Option: ""},
		{QuestionID: "  ", Option: "3"},
	})

	require.Len(t, normalized, 2)
	require.Equal(t, "A", normalized[0].Option)
	require.Equal(t, "0", normalized[1].Option)
}

func TestBuildSeedVariantOffset(t *testing.T) {
	sig := BuildAnswersSignature(sampleAnswers())
	base := BuildSeed("u1", "INTJ", sig, 0)
	require.Equal(t, base+1, BuildSeed("u1", "INTJ", sig, 1))
	require.NotEqual(t, base, BuildSeed("u1", "ENFP", sig, 0))
}

func TestGetOrCreateDeterministic(t *testing.T) {
	input := GetOrCreateInput{UserID: "u1", MBTI: "INTJ", Answers: sampleAnswers()}

	first, err := GetOrCreate(input)
	require.NoError(t, err)
	second, err := GetOrCreate(input)
	require.NoError(t, err)

	require.Equal(t, first.Config, second.Config)
	require.Equal(t, first.SVG, second.SVG)
	require.Equal(t, Version, first.Config.Version)
	require.Equal(t, 0, first.Config.Variant)
	require.True(t, strings.HasPrefix(first.SVG, "<svg"))
	require.NotEmpty(t, first.Config.Accessories)
	require.LessOrEqual(t, len(first.Config.Accessories), 4)
}

func TestGetOrCreateReturnsStoredRecord(t *testing.T) {
	store := newMemoryStorage()
	input := GetOrCreateInput{UserID: "u1", MBTI: "INTJ", Answers: sampleAnswers(), Storage: store}

	first, err := GetOrCreate(input)
	require.NoError(t, err)
	require.Equal(t, 1, store.saves)

	second, err := GetOrCreate(input)
	require.NoError(t, err)
	require.Equal(t, 1, store.saves)
	require.Equal(t, first.Config, second.Config)
}

func TestGetOrCreateExistingConfigShortCircuit(t *testing.T) {
	store := newMemoryStorage()
	seeded, err := GetOrCreate(GetOrCreateInput{UserID: "u1", MBTI: "INTJ", Answers: sampleAnswers()})
	require.NoError(t, err)

	store.failGet = true
	record, err := GetOrCreate(GetOrCreateInput{
		UserID:         "u1",
		MBTI:           "INTJ",
		Answers:        sampleAnswers(),
		Storage:        store,
		ExistingConfig: &seeded.Config,
	})
	require.NoError(t, err)
	require.Equal(t, seeded.Config, record.Config)
	require.Zero(t, store.lookups)
}

func TestGetOrCreateStorageError(t *testing.T) {
	store := newMemoryStorage()
	store.failGet = true

	_, err := GetOrCreate(GetOrCreateInput{UserID: "u1", MBTI: "INTJ", Answers: sampleAnswers(), Storage: store})
	require.ErrorContains(t, err, "lookup avatar")
}

func TestRegenerateVariant(t *testing.T) {
	store := newMemoryStorage()
	base, err := GetOrCreate(GetOrCreateInput{UserID: "u1", MBTI: "INTJ", Answers: sampleAnswers(), Storage: store})
	require.NoError(t, err)

	next, err := RegenerateVariant(base.Config, RegenerateUserRequested, store, "")
	require.NoError(t, err)

	require.Equal(t, base.Config.Seed+1, next.Config.Seed)
	require.Equal(t, base.Config.Variant+1, next.Config.Variant)
	require.Equal(t, base.Config.TraitVector, next.Config.TraitVector)
	require.Equal(t, base.Config.AnswersSignature, next.Config.AnswersSignature)
	require.NotEqual(t, base.SVG, next.SVG)
	require.Equal(t, 2, store.saves)

	again, err := RegenerateVariant(base.Config, RegenerateUserRequested, nil, "")
	require.NoError(t, err)
	require.Equal(t, next.Config, again.Config)
}

func TestParseConfig(t *testing.T) {
	require.Nil(t, ParseConfig(nil))
	require.Nil(t, ParseConfig([]byte("{broken")))

	record, err := GetOrCreate(GetOrCreateInput{UserID: "u1", MBTI: "INTJ", Answers: sampleAnswers()})
	require.NoError(t, err)

	raw, err := json.Marshal(record.Config)
	require.NoError(t, err)
	parsed := ParseConfig(raw)
	require.NotNil(t, parsed)
	require.Equal(t, record.Config, *parsed)

	stale := record.Config
	stale.Version = "avatar-line-v0"
	raw, err = json.Marshal(stale)
	require.NoError(t, err)
	require.Nil(t, ParseConfig(raw))
}

func TestBuildTraitVectorBounds(t *testing.T) {
	for _, mbti := range []string{"INTJ", "ENFP", "ESTJ", "ISFP"} {
		traits := BuildTraitVector(mbti, sampleAnswers())
		for _, key := range traitKeys {
			value := *traits.field(key)
			require.GreaterOrEqualf(t, value, 0.0, "%s trait %s", mbti, key)
			require.LessOrEqualf(t, value, 1.0, "%s trait %s", mbti, key)
		}
		require.GreaterOrEqual(t, traits.Roundness, 0.08)
	}
}

func TestAccessoryCatalogAllDrawable(t *testing.T) {
	ids := AccessoryCatalog()
	require.Len(t, ids, 14)
	for _, id := range ids {
		require.NotEmptyf(t, drawAccessory(id, "hsl(0 0% 0%)"), "accessory %s has no markup", id)
	}
	require.Empty(t, drawAccessory("unknown", "hsl(0 0% 0%)"))
}

func TestRenderSVGStable(t *testing.T) {
	record, err := GetOrCreate(GetOrCreateInput{UserID: "u1", MBTI: "ENFP", Answers: sampleAnswers()})
	require.NoError(t, err)

	require.Equal(t, record.SVG, RenderSVG(record.Config))
	require.Contains(t, record.SVG, `viewBox="0 0 200 200"`)
	require.Contains(t, record.SVG, "</svg>")
}
