package catalog

import (
	"testing"

	"finlit_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogIntegrity(t *testing.T) {
	c := Default()

	modules := c.Modules()
	require.Equal(t, 8, len(modules))
	assert.Equal(t, c.ModuleCount(), len(modules))

	seen := map[string]bool{}
	for _, m := range modules {
		assert.NotEmpty(t, m.ID)
		assert.False(t, seen[m.ID], "duplicate module id %s", m.ID)
		seen[m.ID] = true

		assert.Contains(t, []float64{80, 100}, m.PassPercent, "module %s", m.ID)
		assert.NotEmpty(t, m.Questions, "module %s has no questions", m.ID)
		for _, q := range m.Questions {
			require.GreaterOrEqual(t, len(q.Options), 2, "question %s", q.ID)
			assert.GreaterOrEqual(t, q.CorrectIndex, 0, "question %s", q.ID)
			assert.Less(t, q.CorrectIndex, len(q.Options), "question %s", q.ID)
		}
	}
}

func TestModulesPreserveDeclarationOrder(t *testing.T) {
	defs := []ModuleDefinition{
		{ID: "c", PassPercent: 100},
		{ID: "a", PassPercent: 100},
		{ID: "b", PassPercent: 80},
	}
	c := New(defs, nil, nil, nil)

	got := c.Modules()
	require.Len(t, got, 3)
	assert.Equal(t, "c", got[0].ID)
	assert.Equal(t, "a", got[1].ID)
	assert.Equal(t, "b", got[2].ID)
}

func TestModuleLookup(t *testing.T) {
	c := Default()

	def, err := c.Module("50-30-20")
	require.NoError(t, err)
	assert.Equal(t, 100.0, def.PassPercent)

	_, err = c.Module("no-such-module")
	assert.ErrorIs(t, err, util.ErrModuleNotFound)

	_, err = c.Module("")
	assert.ErrorIs(t, err, util.ErrModuleNotFound)
}

func TestEventLookup(t *testing.T) {
	c := Default()

	ev, err := c.Event("rate-hike")
	require.NoError(t, err)
	assert.Equal(t, ScopeMarket, ev.Scope)
	assert.Greater(t, ev.Multiplier, 0.0)

	_, err = c.Event("no-such-event")
	assert.ErrorIs(t, err, util.ErrEventUnknown)
}

func TestDefaultEventsWellFormed(t *testing.T) {
	c := Default()
	instruments := map[string]InstrumentSeed{}
	sectors := map[string]bool{}
	for _, seed := range c.Instruments {
		instruments[seed.ID] = seed
		sectors[seed.Sector] = true
	}

	for id, ev := range c.Events {
		assert.Greater(t, ev.Multiplier, 0.0, "event %s", id)
		assert.Greater(t, ev.DurationSec, 0, "event %s", id)
		switch ev.Scope {
		case ScopeInstrument:
			_, ok := instruments[ev.Target]
			assert.True(t, ok, "event %s targets unknown instrument %s", id, ev.Target)
		case ScopeSector:
			assert.True(t, sectors[ev.Target], "event %s targets unknown sector %s", id, ev.Target)
		case ScopeMarket:
			assert.Empty(t, ev.Target, "event %s", id)
		default:
			t.Errorf("event %s has unknown scope %q", id, ev.Scope)
		}
	}
}

func TestAchievementLookup(t *testing.T) {
	c := Default()

	def, ok := c.Achievement(AchFirstPass)
	require.True(t, ok)
	assert.Greater(t, def.XP, 0)

	_, ok = c.Achievement("no-such-achievement")
	assert.False(t, ok)
}
