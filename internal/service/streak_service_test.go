package service

import (
	"testing"
	"time"

	"finlit_backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStreak(t *testing.T) *StreakService {
	t.Helper()
	db := newTestDB(t)
	return NewStreakService(repository.NewCheckinRepository(db), nil)
}

func day(y int, m time.Month, d, hour int) time.Time {
	return time.Date(y, m, d, hour, 0, 0, 0, time.UTC)
}

func TestStreakFirstActivity(t *testing.T) {
	s := newTestStreak(t)

	result, err := s.calculateAt(1, day(2026, time.March, 10, 9))
	require.NoError(t, err)
	assert.Equal(t, 1, result.Streak)
	assert.True(t, result.IncrementedToday)
}

// 同一自然日内的第二次计算不再递增
func TestStreakSameDayIdempotent(t *testing.T) {
	s := newTestStreak(t)

	first, err := s.calculateAt(1, day(2026, time.March, 10, 9))
	require.NoError(t, err)

	second, err := s.calculateAt(1, day(2026, time.March, 10, 22))
	require.NoError(t, err)
	assert.Equal(t, first.Streak, second.Streak)
	assert.False(t, second.IncrementedToday)
}

func TestStreakConsecutiveDays(t *testing.T) {
	s := newTestStreak(t)

	for i, want := range []int{1, 2, 3, 4} {
		result, err := s.calculateAt(1, day(2026, time.March, 10+i, 8))
		require.NoError(t, err)
		assert.Equal(t, want, result.Streak)
		assert.True(t, result.IncrementedToday)
	}
}

// 断档后重置为 1 而不是从旧值继续
func TestStreakGapResets(t *testing.T) {
	s := newTestStreak(t)

	for i := 0; i < 5; i++ {
		_, err := s.calculateAt(1, day(2026, time.March, 10+i, 8))
		require.NoError(t, err)
	}

	result, err := s.calculateAt(1, day(2026, time.March, 18, 8))
	require.NoError(t, err)
	assert.Equal(t, 1, result.Streak)
	assert.True(t, result.IncrementedToday)
}

func TestStreakPerUserIsolation(t *testing.T) {
	s := newTestStreak(t)

	_, err := s.calculateAt(1, day(2026, time.March, 10, 8))
	require.NoError(t, err)
	_, err = s.calculateAt(1, day(2026, time.March, 11, 8))
	require.NoError(t, err)

	result, err := s.calculateAt(2, day(2026, time.March, 11, 8))
	require.NoError(t, err)
	assert.Equal(t, 1, result.Streak)
}

func TestNextStreakDays(t *testing.T) {
	testCases := []struct {
		name       string
		lastActive time.Time
		now        time.Time
		lastStreak int
		want       int
	}{
		{"昨天活跃则递增", day(2026, time.March, 10, 23), day(2026, time.March, 11, 1), 4, 5},
		{"当天晚些时候不变相当于断档判定", day(2026, time.March, 10, 8), day(2026, time.March, 10, 20), 4, 1},
		{"隔一天重置", day(2026, time.March, 10, 8), day(2026, time.March, 12, 8), 4, 1},
		{"长断档重置", day(2026, time.March, 1, 8), day(2026, time.March, 20, 8), 30, 1},
		{"时钟回拨重置", day(2026, time.March, 12, 8), day(2026, time.March, 10, 8), 4, 1},
		{"跨月递增", day(2026, time.March, 31, 8), day(2026, time.April, 1, 8), 2, 3},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NextStreakDays(tc.lastActive, tc.now, tc.lastStreak))
		})
	}
}
