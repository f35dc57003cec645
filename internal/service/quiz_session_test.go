package service

import (
	"math/rand"
	"sync"
	"testing"

	"finlit_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func answerQuestion(t *testing.T, s *QuizSession, optionIndex int) *FeedbackResult {
	t.Helper()
	require.NoError(t, s.SelectOption(s.CurrentIndex, optionIndex))
	feedback, err := s.SubmitAnswer(s.CurrentIndex)
	require.NoError(t, err)
	require.NoError(t, s.Advance())
	return feedback
}

func TestQuizSessionFullRun(t *testing.T) {
	s := NewQuizSession("budgeting", testQuestions)
	assert.Equal(t, StateAwaitingAnswer, s.State)
	assert.Equal(t, 0, s.CurrentIndex)

	// 两对一错
	feedback := answerQuestion(t, s, 1)
	assert.True(t, feedback.Correct)
	feedback = answerQuestion(t, s, 0)
	assert.False(t, feedback.Correct)
	assert.NotEmpty(t, feedback.Explanation)
	feedback = answerQuestion(t, s, 0)
	assert.True(t, feedback.Correct)

	require.True(t, s.Finished())

	// 终态分数必须等于过程中递增维护的计数器
	final, err := s.FinalScore()
	require.NoError(t, err)
	assert.Equal(t, 2, final)
	assert.Equal(t, s.Score, final)

	// 每道题在终态都恰有一条作答记录
	assert.Len(t, s.Answers, len(s.Questions))
	for i := range s.Questions {
		_, ok := s.Answers[i]
		assert.True(t, ok, "question %d missing answer", i)
	}
}

// 答案一经记录不可更改：复看时再次选择是空操作
func TestAnswerImmutable(t *testing.T) {
	s := NewQuizSession("budgeting", testQuestions)

	require.NoError(t, s.SelectOption(0, 1))
	_, err := s.SubmitAnswer(0)
	require.NoError(t, err)

	// 已作答的题再选不同选项：不报错、不覆盖
	require.NoError(t, s.SelectOption(0, 2))
	assert.Equal(t, 1, s.Answers[0])

	require.NoError(t, s.Advance())
	require.NoError(t, s.SelectOption(0, 0))
	assert.Equal(t, 1, s.Answers[0])
}

func TestSubmitWithoutSelection(t *testing.T) {
	s := NewQuizSession("budgeting", testQuestions)

	_, err := s.SubmitAnswer(0)
	assert.ErrorIs(t, err, util.ErrNoSelection)
	assert.Equal(t, StateAwaitingAnswer, s.State)
	assert.Empty(t, s.Answers)
}

func TestStateGuards(t *testing.T) {
	s := NewQuizSession("budgeting", testQuestions)

	// 反馈状态之外不能推进
	assert.ErrorIs(t, s.Advance(), util.ErrNotCurrentState)

	// 只能对当前题目操作
	assert.ErrorIs(t, s.SelectOption(1, 0), util.ErrNotCurrentState)
	_, err := s.SubmitAnswer(2)
	assert.ErrorIs(t, err, util.ErrNotCurrentState)

	// 终态之前取不到最终分数
	_, err = s.FinalScore()
	assert.ErrorIs(t, err, util.ErrSessionNotDone)

	// 选项下标越界
	assert.Error(t, s.SelectOption(0, 99))
	assert.Error(t, s.SelectOption(0, -1))
}

func TestQuizSessionReset(t *testing.T) {
	s := NewQuizSession("budgeting", testQuestions)
	answerQuestion(t, s, 1)
	answerQuestion(t, s, 1)

	s.Reset()

	assert.Equal(t, StateAwaitingAnswer, s.State)
	assert.Equal(t, 0, s.CurrentIndex)
	assert.Empty(t, s.Answers)
	assert.Equal(t, 0, s.Score)

	// 重置后第一题可以重新作答
	require.NoError(t, s.SelectOption(0, 2))
	feedback, err := s.SubmitAnswer(0)
	require.NoError(t, err)
	assert.False(t, feedback.Correct)
}

// 多个学员同时开考共用同一个洗牌随机源，必须串行化（go test -race 守护）
func TestConcurrentStarts(t *testing.T) {
	db := newTestDB(t)
	progress := newTestProgress(t, db)
	quiz := NewQuizService(testCatalog(), progress, rand.New(rand.NewSource(1)))

	var wg sync.WaitGroup
	for u := uint(1); u <= 8; u++ {
		wg.Add(1)
		go func(userID uint) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				_, err := quiz.Start(userID, "budgeting")
				assert.NoError(t, err)
			}
		}(u)
	}
	wg.Wait()

	for u := uint(1); u <= 8; u++ {
		s, err := quiz.Session(u, "budgeting")
		require.NoError(t, err)
		assert.Len(t, s.Questions, len(testQuestions))
	}
}

func TestQuizServiceComplete(t *testing.T) {
	db := newTestDB(t)
	progress := newTestProgress(t, db)
	quiz := NewQuizService(testCatalog(), progress, nil)

	// 100% 及格线模块：答对 2/3 不通过，按换算百分比落库
	s, err := quiz.Start(1, "budgeting")
	require.NoError(t, err)
	answerQuestion(t, s, 1)
	answerQuestion(t, s, 1)
	answerQuestion(t, s, 2)

	result, err := quiz.Complete(1, "budgeting")
	require.NoError(t, err)
	assert.False(t, result.Passed)
	assert.Equal(t, 66, result.Score)
	assert.Equal(t, 1, result.AttemptNumber)

	// 完成后会话被回收
	_, err = quiz.Session(1, "budgeting")
	assert.ErrorIs(t, err, util.ErrSessionNotFound)

	// 80% 及格线模块：2/3 ≈ 66.7% 不达标，3/3 预换算成满分通过
	s, err = quiz.Start(1, "car-sim")
	require.NoError(t, err)
	answerQuestion(t, s, 1)
	answerQuestion(t, s, 1)
	answerQuestion(t, s, 0)

	result, err = quiz.Complete(1, "car-sim")
	require.NoError(t, err)
	assert.True(t, result.Passed)
	assert.Equal(t, 100, result.Score)
}

func TestQuizCompleteRequiresFinished(t *testing.T) {
	db := newTestDB(t)
	progress := newTestProgress(t, db)
	quiz := NewQuizService(testCatalog(), progress, nil)

	_, err := quiz.Start(1, "budgeting")
	require.NoError(t, err)

	_, err = quiz.Complete(1, "budgeting")
	assert.ErrorIs(t, err, util.ErrSessionNotDone)

	// 失败的完成尝试不能丢弃会话
	_, err = quiz.Session(1, "budgeting")
	assert.NoError(t, err)
}

func TestPrescale(t *testing.T) {
	testCases := []struct {
		score, total int
		passPercent  float64
		wantScore    int
	}{
		{3, 3, 100, 100},
		{2, 3, 100, 66},
		{4, 5, 80, 100}, // 达到 80% 及格线 → 满分
		{3, 5, 80, 60},
		{8, 10, 80, 100},
		{0, 3, 100, 0},
		{0, 0, 100, 0},
	}

	for _, tc := range testCases {
		score, maxScore := prescale(tc.score, tc.total, tc.passPercent)
		assert.Equal(t, tc.wantScore, score, "prescale(%d, %d, %v)", tc.score, tc.total, tc.passPercent)
		assert.Equal(t, 100, maxScore)
	}
}
