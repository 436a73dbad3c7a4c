// Package pipeline orchestrates the full session flow: adaptive question
// generation, scoring, behavior analytics, genome and pet derivation, and
// avatar persistence, all over the sqlite repos.
package pipeline

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"mindprint/internal/avatar"
	"mindprint/internal/engine"
	"mindprint/internal/genome"
	"mindprint/internal/storage"
)

type Service struct {
	db       *sql.DB
	users    *storage.UserRepo
	sessions *storage.SessionRepo
	avatars  *storage.AvatarRepo
}

func NewService(db *sql.DB) *Service {
	return &Service{
		db:       db,
		users:    storage.NewUserRepo(db),
		sessions: storage.NewSessionRepo(db),
		avatars:  storage.NewAvatarRepo(db),
	}
}

func (s *Service) UserRepo() *storage.UserRepo       { return s.users }
func (s *Service) SessionRepo() *storage.SessionRepo { return s.sessions }
func (s *Service) AvatarRepo() *storage.AvatarRepo   { return s.avatars }

// Quiz pairs the generated questions with the seed that produced them, so a
// client can reproduce or resume the same quiz.
type Quiz struct {
	Seed      string
	Questions []engine.Question
}

// StartQuiz builds an adaptive question set for the user. History steers the
// dimension weights; a fresh user gets the cold-start allocation.
func (s *Service) StartQuiz(ctx context.Context, userID string, count int) (*Quiz, error) {
	if _, err := s.users.GetOrCreate(ctx, userID); err != nil {
		return nil, err
	}

	genCtx, err := s.buildGenerationContext(ctx, userID)
	if err != nil {
		return nil, err
	}

	quizSeed := userID + ":" + strconv.FormatInt(time.Now().UnixNano(), 10)
	return &Quiz{
		Seed:      quizSeed,
		Questions: engine.GenerateQuestions(count, quizSeed, genCtx),
	}, nil
}

func (s *Service) buildGenerationContext(ctx context.Context, userID string) (*engine.GenerationContext, error) {
	history, err := s.sessions.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(history) == 0 {
		return nil, nil
	}

	personaHistory := make([]engine.HistorySession, 0, len(history))
	for _, sess := range history {
		item := engine.HistorySession{MBTI: sess.MBTI}
		if sess.Scores != nil {
			_ = json.Unmarshal(sess.Scores, &item.Scores)
		}
		if sess.Behavior != nil {
			var b engine.BehaviorStats
			if json.Unmarshal(sess.Behavior, &b) == nil {
				item.Behavior = &b
			}
		}
		personaHistory = append(personaHistory, item)
	}
	persona := engine.BuildPersonaModel(personaHistory)

	latest := history[len(history)-1]
	genCtx := &engine.GenerationContext{
		Persona:      &persona,
		HistoryCount: len(history),
	}
	if latest.Scores != nil {
		_ = json.Unmarshal(latest.Scores, &genCtx.LatestScores)
	}
	if latest.Behavior != nil {
		var b engine.BehaviorStats
		if json.Unmarshal(latest.Behavior, &b) == nil {
			genCtx.LatestBehavior = &b
		}
	}
	if latest.Questions != nil {
		var questions []engine.Question
		if json.Unmarshal(latest.Questions, &questions) == nil {
			for _, q := range questions {
				genCtx.RecentQuestionTexts = append(genCtx.RecentQuestionTexts, q.Text)
			}
		}
	}
	return genCtx, nil
}

// SubmitInput is one completed quiz. Questions must be the set StartQuiz
// produced for this sitting.
type SubmitInput struct {
	UserID    string
	Questions []engine.Question
	Answers   []engine.Answer
}

// SubmitResult bundles every artifact one submission produces.
type SubmitResult struct {
	SessionID string
	Score     engine.ScoreResult
	Behavior  engine.BehaviorStats
	Axis      engine.AxisScoreResult
	StyleDNA  genome.StyleDNA
	Pet       genome.PetModel
	Avatar    avatar.Record
}

// SubmitSession runs the full pipeline and persists everything in one pass.
// The style genome is created on the user's first session and reused after.
func (s *Service) SubmitSession(ctx context.Context, in SubmitInput) (*SubmitResult, error) {
	if len(in.Answers) == 0 {
		return nil, EmptySubmissionError{UserID: in.UserID}
	}
	user, err := s.users.GetOrCreate(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	score := engine.ScoreSession(in.Questions, in.Answers)
	behavior := engine.CalculateBehaviorStats(in.Questions, in.Answers, completionSeconds(in.Answers))

	axisItems, axisAnswers := engine.ToAxisInputs(in.Questions, in.Answers)
	axisResult := engine.ScoreAxes(axisAnswers, axisItems)

	sessionID, err := s.persistSession(ctx, in, score, behavior, axisResult)
	if err != nil {
		return nil, err
	}

	styleDNA, err := s.ensureStyleDNA(ctx, user, sessionID, score.NormalizedScores, behavior)
	if err != nil {
		return nil, err
	}

	pet := genome.GeneratePet(genome.PetInput{
		UserID:    in.UserID,
		SessionID: sessionID,
		MBTI:      score.MBTI,
		StyleDNA:  styleDNA,
		Scores:    score.NormalizedScores,
		Behavior:  behavior,
	})
	petRaw, err := json.Marshal(pet)
	if err != nil {
		return nil, fmt.Errorf("marshal pet model: %w", err)
	}
	if err := s.sessions.UpdatePetModel(ctx, sessionID, petRaw); err != nil {
		return nil, err
	}

	avatarRecord, err := avatar.GetOrCreate(avatar.GetOrCreateInput{
		UserID:    in.UserID,
		MBTI:      score.MBTI,
		Answers:   avatarAnswers(in.Answers),
		Storage:   s.avatars.Adapter(ctx),
		SessionID: sessionID,
	})
	if err != nil {
		return nil, err
	}

	return &SubmitResult{
		SessionID: sessionID,
		Score:     score,
		Behavior:  behavior,
		Axis:      axisResult,
		StyleDNA:  styleDNA,
		Pet:       pet,
		Avatar:    avatarRecord,
	}, nil
}

// completionSeconds sums per-answer elapsed times. Answers without timing
// are charged a 3.5s default; the floor keeps pace math finite.
func completionSeconds(answers []engine.Answer) float64 {
	var totalMs int64
	for _, a := range answers {
		if a.ElapsedMs > 0 {
			totalMs += a.ElapsedMs
		} else {
			totalMs += 3500
		}
	}
	seconds := float64(totalMs) / 1000
	if seconds < 1 {
		seconds = 1
	}
	return seconds
}

func avatarAnswers(answers []engine.Answer) []avatar.AnswerInput {
	out := make([]avatar.AnswerInput, 0, len(answers))
	for _, a := range answers {
		out = append(out, avatar.AnswerInput{
			QuestionID: a.QuestionID,
			Option:     strconv.Itoa(a.Choice),
		})
	}
	return out
}

func (s *Service) persistSession(ctx context.Context, in SubmitInput, score engine.ScoreResult, behavior engine.BehaviorStats, axisResult engine.AxisScoreResult) (string, error) {
	questionsRaw, err := json.Marshal(in.Questions)
	if err != nil {
		return "", fmt.Errorf("marshal questions: %w", err)
	}
	answersRaw, err := json.Marshal(in.Answers)
	if err != nil {
		return "", fmt.Errorf("marshal answers: %w", err)
	}
	scoresRaw, err := json.Marshal(score.NormalizedScores)
	if err != nil {
		return "", fmt.Errorf("marshal scores: %w", err)
	}
	behaviorRaw, err := json.Marshal(behavior)
	if err != nil {
		return "", fmt.Errorf("marshal behavior: %w", err)
	}
	axisRaw, err := json.Marshal(axisResult)
	if err != nil {
		return "", fmt.Errorf("marshal axis result: %w", err)
	}

	return s.sessions.Insert(ctx, storage.SessionInsert{
		UserID:     in.UserID,
		MBTI:       score.MBTI,
		Questions:  questionsRaw,
		Answers:    answersRaw,
		Scores:     scoresRaw,
		Behavior:   behaviorRaw,
		AxisResult: axisRaw,
	})
}

func (s *Service) ensureStyleDNA(ctx context.Context, user *storage.User, sessionID string, scores engine.DimensionScores, behavior engine.BehaviorStats) (genome.StyleDNA, error) {
	if existing := genome.ParseStyleDNA(user.StyleDNA); existing != nil {
		return *existing, nil
	}

	dna := genome.Generate(genome.Input{
		UserID:    user.ID,
		SessionID: sessionID,
		Scores:    scores,
		Behavior:  behavior,
	})
	raw, err := json.Marshal(dna)
	if err != nil {
		return genome.StyleDNA{}, fmt.Errorf("marshal style dna: %w", err)
	}
	if err := s.users.SaveStyleDNA(ctx, user.ID, raw); err != nil {
		return genome.StyleDNA{}, err
	}
	return dna, nil
}

// Persona rebuilds the persona model from the user's full history.
func (s *Service) Persona(ctx context.Context, userID string) (engine.PersonaModel, error) {
	history, err := s.sessions.ListByUser(ctx, userID)
	if err != nil {
		return engine.PersonaModel{}, err
	}
	personaHistory := make([]engine.HistorySession, 0, len(history))
	for _, sess := range history {
		item := engine.HistorySession{MBTI: sess.MBTI}
		if sess.Scores != nil {
			_ = json.Unmarshal(sess.Scores, &item.Scores)
		}
		if sess.Behavior != nil {
			var b engine.BehaviorStats
			if json.Unmarshal(sess.Behavior, &b) == nil {
				item.Behavior = &b
			}
		}
		personaHistory = append(personaHistory, item)
	}
	return engine.BuildPersonaModel(personaHistory), nil
}

// Trend analyzes the user's score history and derives coaching advice.
func (s *Service) Trend(ctx context.Context, userID string) (engine.TrendAnalysis, engine.Advice, error) {
	points, err := s.Timeline(ctx, userID)
	if err != nil {
		return engine.TrendAnalysis{}, engine.Advice{}, err
	}
	analysis := engine.AnalyzeTrend(points)
	return analysis, engine.GenerateAdvice(analysis), nil
}

// Timeline returns the user's sessions as trend points, oldest first.
func (s *Service) Timeline(ctx context.Context, userID string) ([]engine.TrendPoint, error) {
	history, err := s.sessions.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	points := make([]engine.TrendPoint, 0, len(history))
	for _, sess := range history {
		point := engine.TrendPoint{CreatedAt: sess.CreatedAt, MBTI: sess.MBTI}
		if sess.Scores != nil {
			_ = json.Unmarshal(sess.Scores, &point.Scores)
		}
		if point.Scores == nil {
			continue
		}
		points = append(points, point)
	}
	return points, nil
}

// LatestAvatar returns the avatar for the user's most recent session.
func (s *Service) LatestAvatar(ctx context.Context, userID string) (*avatar.Record, error) {
	sess, err := s.sessions.Latest(ctx, userID)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, NotFoundError{Kind: "session", ID: userID}
	}

	var answers []engine.Answer
	if sess.Answers != nil {
		_ = json.Unmarshal(sess.Answers, &answers)
	}
	record, err := avatar.GetOrCreate(avatar.GetOrCreateInput{
		UserID:    userID,
		MBTI:      sess.MBTI,
		Answers:   avatarAnswers(answers),
		Storage:   s.avatars.Adapter(ctx),
		SessionID: sess.ID,
	})
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// RegenerateAvatar rerolls the user's current avatar into its next variant.
func (s *Service) RegenerateAvatar(ctx context.Context, userID string, reason avatar.RegenerateReason) (*avatar.Record, error) {
	current, err := s.LatestAvatar(ctx, userID)
	if err != nil {
		return nil, err
	}
	record, err := avatar.RegenerateVariant(current.Config, reason, s.avatars.Adapter(ctx), current.SessionID)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// LatestPet returns the pet model derived for the user's most recent session.
func (s *Service) LatestPet(ctx context.Context, userID string) (*genome.PetModel, error) {
	sess, err := s.sessions.Latest(ctx, userID)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, NotFoundError{Kind: "session", ID: userID}
	}
	if pet := genome.ParsePetModel(sess.PetModel); pet != nil {
		return pet, nil
	}
	return nil, NotFoundError{Kind: "pet model", ID: sess.ID}
}

// StyleDNA returns the user's stored genome, backfilling the companion for
// genomes saved before the companion existed.
func (s *Service) StyleDNA(ctx context.Context, userID string) (*genome.StyleDNA, error) {
	user, err := s.users.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, NotFoundError{Kind: "user", ID: userID}
	}
	dna := genome.ParseStyleDNA(user.StyleDNA)
	if dna == nil {
		return nil, NotFoundError{Kind: "style dna", ID: userID}
	}
	return dna, nil
}
