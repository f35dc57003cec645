package service

import (
	"time"

	"finlit_backend/internal/catalog"
	"finlit_backend/internal/util"

	"github.com/google/uuid"
)

// SessionState 测验会话状态机的状态。
// AwaitingAnswer(i) → ShowingFeedback(i) → AwaitingAnswer(i+1) → … → Finished
type SessionState string

const (
	StateAwaitingAnswer  SessionState = "awaiting_answer"
	StateShowingFeedback SessionState = "showing_feedback"
	StateFinished        SessionState = "finished"
)

// QuizSession 单次测验会话，纯内存、随会话销毁。
// 每道题的答案一经记录不可更改：复看流程中学员已经见过正确答案，
// 允许改答案会让复习变成刷分
type QuizSession struct {
	ID           string
	ModuleID     string
	Questions    []catalog.Question
	State        SessionState
	CurrentIndex int
	Answers      map[int]int // 题目下标 → 所选选项下标，每键只写一次
	Score        int         // 随答题递增维护，结束时必须等于 FinalScore()
	StartedAt    time.Time

	selection    int // 当前题的待提交选项
	hasSelection bool
}

// NewQuizSession 创建处于 AwaitingAnswer(0) 的新会话
func NewQuizSession(moduleID string, questions []catalog.Question) *QuizSession {
	return &QuizSession{
		ID:           uuid.New().String(),
		ModuleID:     moduleID,
		Questions:    questions,
		State:        StateAwaitingAnswer,
		CurrentIndex: 0,
		Answers:      make(map[int]int, len(questions)),
		StartedAt:    time.Now(),
	}
}

// SelectOption 仅在 AwaitingAnswer(i) 合法。该题已有答案时是空操作，
// 不覆盖、不报错
func (q *QuizSession) SelectOption(questionIndex, optionIndex int) error {
	if _, answered := q.Answers[questionIndex]; answered {
		return nil
	}
	if q.State != StateAwaitingAnswer || questionIndex != q.CurrentIndex {
		return util.ErrNotCurrentState
	}
	if optionIndex < 0 || optionIndex >= len(q.Questions[questionIndex].Options) {
		return util.ErrNoSelection
	}

	q.selection = optionIndex
	q.hasSelection = true
	return nil
}

// FeedbackResult 提交答案后的即时反馈
type FeedbackResult struct {
	Correct      bool   `json:"correct"`
	CorrectIndex int    `json:"correctIndex"`
	Explanation  string `json:"explanation"`
}

// SubmitAnswer AwaitingAnswer(i) → ShowingFeedback(i)。
// 未选择任何选项时是守卫条件而非静默成功
func (q *QuizSession) SubmitAnswer(questionIndex int) (*FeedbackResult, error) {
	if q.State != StateAwaitingAnswer || questionIndex != q.CurrentIndex {
		return nil, util.ErrNotCurrentState
	}
	if !q.hasSelection {
		return nil, util.ErrNoSelection
	}

	question := q.Questions[questionIndex]
	q.Answers[questionIndex] = q.selection

	correct := q.selection == question.CorrectIndex
	if correct {
		q.Score++
	}

	q.State = StateShowingFeedback
	q.hasSelection = false

	return &FeedbackResult{
		Correct:      correct,
		CorrectIndex: question.CorrectIndex,
		Explanation:  question.Explanation,
	}, nil
}

// Advance ShowingFeedback(i) → AwaitingAnswer(i+1)，最后一题后进入 Finished
func (q *QuizSession) Advance() error {
	if q.State != StateShowingFeedback {
		return util.ErrNotCurrentState
	}

	if q.CurrentIndex+1 < len(q.Questions) {
		q.CurrentIndex++
		q.State = StateAwaitingAnswer
	} else {
		q.State = StateFinished
	}
	return nil
}

// FinalScore 仅在 Finished 状态有效：已答条目中选项等于正确项的数量
func (q *QuizSession) FinalScore() (int, error) {
	if q.State != StateFinished {
		return 0, util.ErrSessionNotDone
	}

	score := 0
	for i, selected := range q.Answers {
		if selected == q.Questions[i].CorrectIndex {
			score++
		}
	}
	return score, nil
}

// Reset 丢弃全部答案，回到 AwaitingAnswer(0)。只动内存，
// 持久化只能通过显式提交给进度引擎发生
func (q *QuizSession) Reset() {
	q.State = StateAwaitingAnswer
	q.CurrentIndex = 0
	q.Answers = make(map[int]int, len(q.Questions))
	q.Score = 0
	q.hasSelection = false
}

// Finished 会话是否已到终态
func (q *QuizSession) Finished() bool {
	return q.State == StateFinished
}
