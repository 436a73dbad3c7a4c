package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"mindprint/internal/engine"
	"mindprint/internal/pipeline"
	"mindprint/internal/ui"
)

type quizModel struct {
	ctx    context.Context
	svc    *pipeline.Service
	userID string
	count  int

	width  int
	height int

	quiz      *pipeline.Quiz
	answers   []engine.Answer
	index     int
	shownAt   time.Time
	result    *pipeline.SubmitResult
	submitted bool

	lastLog string
	loading bool
	err     error
}

type quizLoadedMsg struct {
	quiz *pipeline.Quiz
	err  error
}

type submittedMsg struct {
	result *pipeline.SubmitResult
	err    error
}

func newQuizModel(ctx context.Context, svc *pipeline.Service, userID string, count int) quizModel {
	return quizModel{
		ctx:     ctx,
		svc:     svc,
		userID:  userID,
		count:   count,
		loading: true,
		lastLog: "Preparing questions…",
	}
}

func (m quizModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m quizModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		quiz, err := m.svc.StartQuiz(m.ctx, m.userID, m.count)
		return quizLoadedMsg{quiz: quiz, err: err}
	}
}

func (m quizModel) submitCmd() tea.Cmd {
	questions := m.quiz.Questions
	answers := m.answers
	return func() tea.Msg {
		result, err := m.svc.SubmitSession(m.ctx, pipeline.SubmitInput{
			UserID:    m.userID,
			Questions: questions,
			Answers:   answers,
		})
		return submittedMsg{result: result, err: err}
	}
}

func (m quizModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case quizLoadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			m.lastLog = "Load failed: " + msg.err.Error()
			return m, nil
		}
		m.quiz = msg.quiz
		m.shownAt = time.Now()
		m.lastLog = fmt.Sprintf("%d 道题，按 1-5 作答。", len(m.quiz.Questions))
		return m, nil
	case submittedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			m.lastLog = "Submit failed: " + msg.err.Error()
			return m, nil
		}
		m.result = msg.result
		m.lastLog = "完成！按 q 退出。"
		return m, nil
	case tea.KeyMsg:
		switch key := msg.String(); key {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "1", "2", "3", "4", "5":
			if m.quiz == nil || m.submitted || m.index >= len(m.quiz.Questions) {
				return m, nil
			}
			choice := int(key[0] - '0')
			elapsed := time.Since(m.shownAt).Milliseconds()
			if elapsed < 1 {
				elapsed = 1
			}
			m.answers = append(m.answers, engine.Answer{
				QuestionID: m.quiz.Questions[m.index].ID,
				Choice:     choice,
				ElapsedMs:  elapsed,
			})
			m.index++
			m.shownAt = time.Now()
			if m.index == len(m.quiz.Questions) {
				m.submitted = true
				m.loading = true
				m.lastLog = "提交中…"
				return m, m.submitCmd()
			}
			return m, nil
		case "backspace", "u":
			if m.quiz == nil || m.submitted || m.index == 0 {
				return m, nil
			}
			m.index--
			m.answers = m.answers[:len(m.answers)-1]
			m.shownAt = time.Now()
			return m, nil
		}
	}
	return m, nil
}

func (m quizModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}
	if m.loading {
		return ui.Heading(ui.IconMind, "Mindprint") + "\n\n" + m.lastLog + "\n"
	}
	if m.result != nil {
		return m.renderResult()
	}
	return m.renderQuestion()
}

func (m quizModel) renderQuestion() string {
	q := m.quiz.Questions[m.index]
	var b strings.Builder
	b.WriteString(ui.Heading(ui.IconQuiz, "Mindprint 测验"))
	b.WriteString("\n\n")
	b.WriteString(ui.Muted.Render(fmt.Sprintf("第 %d / %d 题", m.index+1, len(m.quiz.Questions))))
	b.WriteString("\n\n")
	b.WriteString(ui.H2.Render(q.Text))
	b.WriteString("\n\n")
	for i, label := range engine.LikertChoiceLabels {
		b.WriteString(fmt.Sprintf("  %d. %s\n", i+1, label))
	}
	b.WriteString("\n")
	b.WriteString(ui.Dim.Render("1-5 作答 · u 回退 · q 退出"))
	b.WriteString("\n\n")
	b.WriteString(m.lastLog)
	b.WriteString("\n")
	return b.String()
}

func (m quizModel) renderResult() string {
	r := m.result
	var b strings.Builder
	b.WriteString(ui.Heading(ui.IconSparkle, "你的结果"))
	b.WriteString("\n\n")
	b.WriteString(ui.LabelValue("类型", ui.Gold.Render(r.Score.MBTI)))
	b.WriteString("\n\n")
	for _, dim := range engine.Dimensions {
		positive, negative := dim.Poles()
		score := r.Score.NormalizedScores[dim]
		b.WriteString(fmt.Sprintf("  %s %s %s %.2f\n", negative, ui.ScoreBar(score, 8), positive, score))
	}
	b.WriteString("\n")
	b.WriteString(ui.H2.Render("行为画像"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  极端度 %.2f · 一致性 %.2f · 中立率 %.2f · 反向敏感 %.2f\n",
		r.Behavior.Extremity, r.Behavior.Consistency, r.Behavior.Neutrality, r.Behavior.ReverseSensitivity))
	if r.StyleDNA.Companion != nil {
		b.WriteString("\n")
		b.WriteString(ui.H2.Render("同伴"))
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("  %s · %s\n  %s\n",
			r.StyleDNA.Companion.Name, r.StyleDNA.Companion.Role, ui.Muted.Render(r.StyleDNA.Companion.Motto)))
	}
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s · %s %s\n",
		ui.Key.Render("宠物:"), string(r.Pet.Species), ui.Key.Render("心情:"), string(r.Pet.Mood)))
	b.WriteString("\n")
	b.WriteString(m.lastLog)
	b.WriteString("\n")
	return b.String()
}
