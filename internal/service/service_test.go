package service

import (
	"fmt"
	"testing"

	"finlit_backend/internal/catalog"
	"finlit_backend/internal/repository"
	"finlit_backend/pkg/database"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

var testQuestions = []catalog.Question{
	{ID: "q1", Prompt: "1+1=?", Options: []string{"1", "2", "3"}, CorrectIndex: 1, Explanation: "二"},
	{ID: "q2", Prompt: "2+2=?", Options: []string{"3", "4", "5"}, CorrectIndex: 1, Explanation: "四"},
	{ID: "q3", Prompt: "3+3=?", Options: []string{"6", "7", "8"}, CorrectIndex: 0, Explanation: "六"},
}

func testCatalog() *catalog.Catalog {
	modules := []catalog.ModuleDefinition{
		{ID: "budgeting", Name: "预算", PassPercent: 100, Questions: testQuestions},
		{ID: "car-sim", Name: "购车", PassPercent: 80, Questions: testQuestions},
		{ID: "stock-market", Name: "股市", PassPercent: 80, Questions: testQuestions},
	}
	instruments := []catalog.InstrumentSeed{
		{ID: "AAA", Name: "Alpha Corp", Sector: "tech", Price: 100, Volatility: 0.05},
		{ID: "BBB", Name: "Beta Fuels", Sector: "energy", Price: 50, Volatility: 0.08},
		{ID: "CCC", Name: "Gamma Tech", Sector: "tech", Price: 20, Volatility: 0.9},
	}
	events := []catalog.MarketEvent{
		{ID: "tech-up", Headline: "tech rally", Scope: catalog.ScopeSector, Target: "tech", Multiplier: 1.2, DurationSec: 10},
		{ID: "crash", Headline: "flash crash", Scope: catalog.ScopeMarket, Multiplier: 0.0001, DurationSec: 10},
		{ID: "aaa-dip", Headline: "Alpha dip", Scope: catalog.ScopeInstrument, Target: "AAA", Multiplier: 0.5, DurationSec: 10},
	}
	return catalog.New(modules, nil, instruments, events)
}

func newTestProgress(t *testing.T, db *gorm.DB) *ProgressService {
	t.Helper()
	return NewProgressService(
		repository.NewProgressRepository(db),
		repository.NewCheckinRepository(db),
		repository.NewAchievementRepository(db),
		testCatalog(),
		nil, // 成就钩子单独测试
		nil, // 无 Redis，直接走数据库
	)
}
