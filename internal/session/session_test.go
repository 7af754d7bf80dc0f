package session

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/typerun/internal/generator"
	"github.com/verte-zerg/typerun/internal/model"
	"github.com/verte-zerg/typerun/internal/vocab"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestSession(t *testing.T, words int) (*Session, *fakeClock) {
	t.Helper()
	list, err := vocab.Embedded(vocab.DefaultName)
	require.NoError(t, err)
	clock := &fakeClock{now: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)}
	opts := DefaultOptions()
	opts.Words = words
	opts.Clock = clock
	return New(generator.NewWithSeed(11), list, opts), clock
}

func TestNewSessionNotStarted(t *testing.T) {
	s, _ := newTestSession(t, 50)
	assert.False(t, s.Started())
	assert.Len(t, strings.Fields(s.Target()), 50)
	assert.Equal(t, model.Metrics{Accuracy: 100}, s.Metrics())
	assert.Equal(t, 0, s.Line().Current)
	assert.Equal(t, time.Duration(0), s.Elapsed())
}

func TestOnInputStartsClockOnce(t *testing.T) {
	s, clock := newTestSession(t, 50)
	start := clock.now
	s.OnInput("x")
	assert.True(t, s.Started())
	assert.Equal(t, start, s.StartedAt())

	clock.Advance(10 * time.Second)
	s.OnInput("xy")
	assert.Equal(t, start, s.StartedAt())
	assert.Equal(t, 10*time.Second, s.Elapsed())
}

func TestOnInputComputesMetrics(t *testing.T) {
	s, clock := newTestSession(t, 50)
	words := strings.Fields(s.Target())
	s.OnInput(words[0][:1])
	clock.Advance(30 * time.Second)
	typed := words[0] + " " + words[1]
	s.OnInput(typed)

	m := s.Metrics()
	assert.Equal(t, 2, m.Words)
	assert.Equal(t, len([]rune(typed)), m.Chars)
	assert.Equal(t, 0, m.Errors)
	assert.Equal(t, 100, m.Accuracy)
	assert.Equal(t, 4, m.WPM)
	assert.Equal(t, 1, s.Line().Words[s.Line().Current].Index)
}

func TestResetMidSession(t *testing.T) {
	s, clock := newTestSession(t, 50)
	before := s.Target()
	s.OnInput("zzz qqq")
	clock.Advance(time.Minute)
	s.Tick()
	require.NotZero(t, s.Metrics().Errors)

	s.Reset()
	assert.False(t, s.Started())
	assert.Equal(t, "", s.Input())
	assert.Equal(t, model.Metrics{WPM: 0, Accuracy: 100}, s.Metrics())
	assert.NotEqual(t, before, s.Target())
	assert.Len(t, strings.Fields(s.Target()), 50)
}

func TestExtensionAtLastWord(t *testing.T) {
	s, _ := newTestSession(t, 3)
	before := s.Target()
	words := strings.Fields(before)

	s.OnInput(words[0] + " " + words[1])
	assert.Equal(t, before, s.Target(), "no extension before the last word")

	s.OnInput(words[0] + " " + words[1] + " ")
	after := s.Target()
	require.True(t, strings.HasPrefix(after, before+" "), "extension must follow one space: %q", after)
	appended := strings.TrimPrefix(after, before+" ")
	assert.NotEmpty(t, appended)
	assert.False(t, strings.HasPrefix(appended, " "))
	assert.Len(t, strings.Fields(appended), generator.DefaultExtendWords)
}

func TestExtensionPastEightyPercent(t *testing.T) {
	s, _ := newTestSession(t, 10)
	before := s.Target()
	s.OnInput(strings.Repeat("x ", 8) + "x")
	assert.Len(t, strings.Fields(s.Target()), 20)
	assert.True(t, strings.HasPrefix(s.Target(), before+" "))
}

func TestClearingInputKeepsStartTime(t *testing.T) {
	s, clock := newTestSession(t, 50)
	s.OnInput("abc")
	start := s.StartedAt()
	clock.Advance(5 * time.Second)
	s.OnInput("")
	assert.Equal(t, start, s.StartedAt())
	assert.Equal(t, model.Metrics{Accuracy: 100}, s.Metrics())
}

func TestTickBeforeStartIsNoop(t *testing.T) {
	s, clock := newTestSession(t, 50)
	clock.Advance(time.Hour)
	s.Tick()
	assert.Equal(t, model.Metrics{Accuracy: 100}, s.Metrics())
}
