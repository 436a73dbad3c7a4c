package avatar

import (
	"encoding/json"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"mindprint/internal/seed"
)

// Version tags stored configs. Bumping it invalidates every cached avatar,
// which is why trait routing and render geometry are frozen under it.
const Version = "avatar-line-v1"

// Config is the full derivation result. It contains everything needed to
// re-render the SVG without the original answers.
type Config struct {
	Version          string         `json:"version"`
	UserID           string         `json:"userId"`
	MBTI             string         `json:"mbti"`
	Seed             uint32         `json:"seed"`
	Variant          int            `json:"variant"`
	AnswersSignature string         `json:"answersSignature"`
	TraitVector      TraitVector    `json:"traitVector"`
	StyleProfileID   StyleProfileID `json:"styleProfileId"`
	PoseID           PoseID         `json:"poseId"`
	Accessories      []string       `json:"accessories"`
	BackgroundGlyph  string         `json:"backgroundGlyph"`
	Palette          Palette        `json:"palette"`
}

// Record pairs a config with its rendered markup.
type Record struct {
	Config    Config `json:"config"`
	SVG       string `json:"svg"`
	SessionID string `json:"sessionId,omitempty"`
}

// SignatureQuery identifies one stored avatar.
type SignatureQuery struct {
	UserID           string
	MBTI             string
	AnswersSignature string
	Version          string
	SessionID        string
}

// StorageAdapter abstracts the persistence layer. GetBySignature returns
// (nil, nil) when no record matches.
type StorageAdapter interface {
	GetBySignature(q SignatureQuery) (*Record, error)
	Save(record Record) error
}

// RegenerateReason distinguishes a user-requested reroll from a forced
// rebuild after a version bump.
type RegenerateReason string

const (
	RegenerateUserRequested RegenerateReason = "user_requested"
	RegenerateSchemaUpgrade RegenerateReason = "schema_upgrade"
)

// GetOrCreateInput carries everything GetOrCreate may consult. Storage and
// ExistingConfig are both optional.
type GetOrCreateInput struct {
	UserID         string
	MBTI           string
	Answers        []AnswerInput
	Storage        StorageAdapter
	SessionID      string
	ExistingConfig *Config
}

func composeConfig(userID, mbti, answersSignature string, traits TraitVector, renderSeed uint32, variant int) Config {
	rng := seed.Mulberry32(renderSeed)
	style := selectStyleProfile(traits, rng)
	pose := selectPose(traits, rng)
	accessories := selectAccessories(traits, mbti, rng)
	glyph := selectBackgroundGlyph(traits, rng)
	palette := buildPalette(mbti, traits, style)

	return Config{
		Version:          Version,
		UserID:           userID,
		MBTI:             mbti,
		Seed:             renderSeed,
		Variant:          variant,
		AnswersSignature: answersSignature,
		TraitVector:      traits,
		StyleProfileID:   style.ID,
		PoseID:           pose.ID,
		Accessories:      accessories,
		BackgroundGlyph:  glyph,
		Palette:          palette,
	}
}

// GetOrCreate returns the stored avatar for this identity when one exists,
// otherwise derives, renders, and persists a fresh one at variant 0.
func GetOrCreate(input GetOrCreateInput) (Record, error) {
	answersSignature := BuildAnswersSignature(input.Answers)

	if cfg := input.ExistingConfig; cfg != nil &&
		cfg.Version == Version &&
		cfg.UserID == input.UserID &&
		cfg.MBTI == input.MBTI &&
		cfg.AnswersSignature == answersSignature {
		return Record{Config: *cfg, SVG: renderCached(*cfg)}, nil
	}

	if input.Storage != nil {
		existing, err := input.Storage.GetBySignature(SignatureQuery{
			UserID:           input.UserID,
			MBTI:             input.MBTI,
			AnswersSignature: answersSignature,
			Version:          Version,
			SessionID:        input.SessionID,
		})
		if err != nil {
			return Record{}, fmt.Errorf("lookup avatar: %w", err)
		}
		if existing != nil {
			return *existing, nil
		}
	}

	traits := BuildTraitVector(input.MBTI, input.Answers)
	renderSeed := BuildSeed(input.UserID, input.MBTI, answersSignature, 0)
	config := composeConfig(input.UserID, input.MBTI, answersSignature, traits, renderSeed, 0)
	record := Record{Config: config, SVG: renderCached(config), SessionID: input.SessionID}

	if input.Storage != nil {
		if err := input.Storage.Save(record); err != nil {
			return Record{}, fmt.Errorf("save avatar: %w", err)
		}
	}
	return record, nil
}

// RegenerateVariant rerolls style, pose, accessories, and glyph while keeping
// the trait vector. The seed advances by one with uint32 wraparound so the
// next variant is deterministic too.
func RegenerateVariant(config Config, reason RegenerateReason, storage StorageAdapter, sessionID string) (Record, error) {
	nextSeed := config.Seed + 1
	nextConfig := composeConfig(config.UserID, config.MBTI, config.AnswersSignature, config.TraitVector, nextSeed, config.Variant+1)
	record := Record{Config: nextConfig, SVG: renderCached(nextConfig), SessionID: sessionID}

	if storage != nil {
		if err := storage.Save(record); err != nil {
			return Record{}, fmt.Errorf("save avatar variant (%s): %w", reason, err)
		}
	}
	return record, nil
}

// ParseConfig decodes a stored config blob. Any structural mismatch,
// including a version bump, yields nil so callers regenerate.
func ParseConfig(raw []byte) *Config {
	if len(raw) == 0 {
		return nil
	}
	var cfg Config
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil
	}
	if cfg.Version != Version {
		return nil
	}
	if cfg.UserID == "" || cfg.MBTI == "" || cfg.AnswersSignature == "" {
		return nil
	}
	return &cfg
}

// renderCache keeps recently rendered markup keyed by seed and variant.
// Renders are pure, so a hit is always byte-identical to a re-render.
var renderCache, _ = lru.New[string, string](128)

func renderCached(config Config) string {
	key := fmt.Sprintf("%s:%d:%d", config.AnswersSignature, config.Seed, config.Variant)
	if svg, ok := renderCache.Get(key); ok {
		return svg
	}
	svg := RenderSVG(config)
	renderCache.Add(key, svg)
	return svg
}
