package service

import (
	"testing"

	"finlit_backend/internal/catalog"
	"finlit_backend/internal/repository"
	"finlit_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitScorePassThreshold(t *testing.T) {
	db := newTestDB(t)
	svc := newTestProgress(t, db)

	testCases := []struct {
		name     string
		score    int
		maxScore int
		passed   bool
	}{
		{"满分通过", 100, 100, true},
		{"99分不过", 99, 100, false},
		{"零分不过", 0, 100, false},
		{"非百分制满分", 10, 10, true},
		{"非百分制差一题", 9, 10, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := svc.SubmitScore(1, "budgeting", tc.score, tc.maxScore)
			require.NoError(t, err)
			assert.Equal(t, tc.passed, result.Passed)
		})
	}
}

func TestSubmitScoreUnknownModule(t *testing.T) {
	db := newTestDB(t)
	svc := newTestProgress(t, db)

	_, err := svc.SubmitScore(1, "no-such-module", 100, 100)
	assert.ErrorIs(t, err, util.ErrModuleNotFound)
}

func TestAttemptNumberMonotonic(t *testing.T) {
	db := newTestDB(t)
	svc := newTestProgress(t, db)

	for i := 1; i <= 5; i++ {
		result, err := svc.SubmitScore(1, "budgeting", 50, 100)
		require.NoError(t, err)
		assert.Equal(t, i, result.AttemptNumber)
	}

	// 其他学员的尝试互不影响
	result, err := svc.SubmitScore(2, "budgeting", 50, 100)
	require.NoError(t, err)
	assert.Equal(t, 1, result.AttemptNumber)
}

// 现行策略是"最近一次覆盖"：后提交的低分会覆盖之前的通过记录。
// 这里显式固化该行为——若未来改成"保留最好成绩"，本测试应当失败
func TestLatestAttemptOverwritesPassingRecord(t *testing.T) {
	db := newTestDB(t)
	svc := newTestProgress(t, db)

	result, err := svc.SubmitScore(1, "budgeting", 100, 100)
	require.NoError(t, err)
	require.True(t, result.Passed)

	result, err = svc.SubmitScore(1, "budgeting", 40, 100)
	require.NoError(t, err)
	assert.False(t, result.Passed)
	assert.Equal(t, 2, result.AttemptNumber)

	passed, err := svc.IsModulePassed(1, "budgeting")
	require.NoError(t, err)
	assert.False(t, passed, "通过记录应被后来的低分覆盖")
}

func TestIsModulePassedNoRecord(t *testing.T) {
	db := newTestDB(t)
	svc := newTestProgress(t, db)

	passed, err := svc.IsModulePassed(1, "budgeting")
	require.NoError(t, err)
	assert.False(t, passed)

	_, err = svc.IsModulePassed(1, "no-such-module")
	assert.ErrorIs(t, err, util.ErrModuleNotFound)
}

func TestResetModuleIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := newTestProgress(t, db)

	_, err := svc.SubmitScore(1, "budgeting", 100, 100)
	require.NoError(t, err)

	require.NoError(t, svc.ResetModule(1, "budgeting"))

	passed, err := svc.IsModulePassed(1, "budgeting")
	require.NoError(t, err)
	assert.False(t, passed)

	// 重复重置是空操作，不报错
	require.NoError(t, svc.ResetModule(1, "budgeting"))

	// 重置后重新提交从第 1 次尝试开始
	result, err := svc.SubmitScore(1, "budgeting", 100, 100)
	require.NoError(t, err)
	assert.Equal(t, 1, result.AttemptNumber)
}

// 80% 及格线模块：调用方预换算后提交满分，共享引擎按 100% 判定仍然通过
func TestPreScaledEightyPercentModule(t *testing.T) {
	db := newTestDB(t)
	svc := newTestProgress(t, db)

	_, err := svc.SubmitScore(1, "car-sim", 70, 100)
	require.NoError(t, err)

	// 8/10 达到 80% 及格线，调用方换算成 100/100 提交
	result, err := svc.SubmitScore(1, "car-sim", 100, 100)
	require.NoError(t, err)
	assert.True(t, result.Passed)
	assert.Equal(t, 2, result.AttemptNumber)
}

func TestGetProgressSnapshot(t *testing.T) {
	db := newTestDB(t)
	svc := newTestProgress(t, db)

	_, err := svc.SubmitScore(1, "budgeting", 100, 100)
	require.NoError(t, err)
	_, err = svc.SubmitScore(1, "car-sim", 60, 100)
	require.NoError(t, err)

	progress, err := svc.GetProgress(1)
	require.NoError(t, err)
	require.Len(t, progress.ModuleScores, 2)
	assert.Equal(t, 0, progress.Streak)
	assert.Empty(t, progress.Achievements)
}

// 通关成就钩子：首次通过发 first-pass，全部模块通过发 all-modules
func TestPassAchievementHooks(t *testing.T) {
	db := newTestDB(t)
	achievement := newTestAchievement(t, db)
	progress := NewProgressService(
		repository.NewProgressRepository(db),
		repository.NewCheckinRepository(db),
		repository.NewAchievementRepository(db),
		testCatalog(),
		achievement,
		nil,
	)
	user := seedUser(t, db, "dana")

	// 不及格的提交不触发任何成就
	_, err := progress.SubmitScore(user.ID, "budgeting", 50, 100)
	require.NoError(t, err)
	got, err := achievement.GetUserAchievements(user.ID)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = progress.SubmitScore(user.ID, "budgeting", 100, 100)
	require.NoError(t, err)
	got, err = achievement.GetUserAchievements(user.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, catalog.AchFirstPass, got[0].Code)

	_, err = progress.SubmitScore(user.ID, "car-sim", 100, 100)
	require.NoError(t, err)
	_, err = progress.SubmitScore(user.ID, "stock-market", 100, 100)
	require.NoError(t, err)

	got, err = achievement.GetUserAchievements(user.ID)
	require.NoError(t, err)
	codes := make([]string, 0, len(got))
	for _, a := range got {
		codes = append(codes, a.Code)
	}
	assert.Contains(t, codes, catalog.AchAllModules)
}
