package service

import (
	"math/rand"
	"sync"

	"finlit_backend/internal/catalog"
	"finlit_backend/internal/util"
	"finlit_backend/pkg/logger"

	"go.uber.org/zap"
)

// QuizService 管理活跃的测验会话：每个(学员, 模块)至多一个会话。
// 各课程模块共用同一状态机，差异只在题目数据和及格线配置
type QuizService struct {
	Catalog  *catalog.Catalog
	Progress *ProgressService

	mu       sync.RWMutex
	sessions map[uint]map[string]*QuizSession

	// shuffle 可注入的洗牌随机源，nil 时保持目录顺序（测试用）
	shuffle *rand.Rand
}

func NewQuizService(cat *catalog.Catalog, progress *ProgressService, shuffle *rand.Rand) *QuizService {
	return &QuizService{
		Catalog:  cat,
		Progress: progress,
		sessions: make(map[uint]map[string]*QuizSession),
		shuffle:  shuffle,
	}
}

// Start 新建会话。已有会话被丢弃重建（重考流程）
func (s *QuizService) Start(userID uint, moduleID string) (*QuizSession, error) {
	def, err := s.Catalog.Module(moduleID)
	if err != nil {
		return nil, err
	}

	questions := make([]catalog.Question, len(def.Questions))
	copy(questions, def.Questions)

	session := NewQuizSession(moduleID, questions)

	s.mu.Lock()
	defer s.mu.Unlock()

	// rand.Rand 不是并发安全的，洗牌必须和会话表共用同一把锁
	if s.shuffle != nil {
		s.shuffle.Shuffle(len(questions), func(i, j int) {
			questions[i], questions[j] = questions[j], questions[i]
		})
	}

	if s.sessions[userID] == nil {
		s.sessions[userID] = make(map[string]*QuizSession)
	}
	s.sessions[userID][moduleID] = session

	return session, nil
}

// Session 取学员在某模块的活跃会话
func (s *QuizService) Session(userID uint, moduleID string) (*QuizSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[userID][moduleID]
	if !ok {
		return nil, util.ErrSessionNotFound
	}
	return session, nil
}

// Abandon 丢弃会话，不触碰任何持久化状态
func (s *QuizService) Abandon(userID uint, moduleID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions[userID], moduleID)
}

// Complete 终态会话交接给进度引擎。模块及格线低于 100% 时在此预换算：
// 自身百分比达标则按满分提交，共享引擎始终按 100% 判定。
// 持久化失败时保留会话和内存中的成绩，学员可手动重试提交
func (s *QuizService) Complete(userID uint, moduleID string) (*SubmitResult, error) {
	session, err := s.Session(userID, moduleID)
	if err != nil {
		return nil, err
	}

	finalScore, err := session.FinalScore()
	if err != nil {
		return nil, err
	}
	if finalScore != session.Score {
		// 递增计数器与终态核算不一致说明状态机被绕过了
		logger.Log.Error("quiz score mismatch",
			zap.Uint("userID", userID),
			zap.String("moduleID", moduleID),
			zap.Int("running", session.Score),
			zap.Int("final", finalScore),
		)
	}

	def, err := s.Catalog.Module(moduleID)
	if err != nil {
		return nil, err
	}

	score, maxScore := prescale(finalScore, len(session.Questions), def.PassPercent)

	result, err := s.Progress.SubmitScore(userID, moduleID, score, maxScore)
	if err != nil {
		return nil, err
	}

	s.Abandon(userID, moduleID)
	return result, nil
}

// prescale 把模块自身的及格线换算到引擎的 100% 判定上：
// 达标提交满分，未达标提交换算后的百分比
func prescale(score, total int, passPercent float64) (int, int) {
	if total == 0 {
		return 0, util.DefaultMaxScore
	}

	percentage := float64(score) / float64(total) * 100
	if percentage >= passPercent {
		return util.DefaultMaxScore, util.DefaultMaxScore
	}
	return int(percentage), util.DefaultMaxScore
}
