// Package session owns the state of one practice session.
package session

import (
	"time"

	"github.com/verte-zerg/typerun/internal/generator"
	"github.com/verte-zerg/typerun/internal/match"
	"github.com/verte-zerg/typerun/internal/model"
	"github.com/verte-zerg/typerun/internal/stats"
)

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Options configures a session.
type Options struct {
	Words       int
	ExtendWords int
	Window      match.Options
	Clock       Clock
}

// DefaultOptions returns the standard session settings.
func DefaultOptions() Options {
	return Options{
		Words:       generator.DefaultWords,
		ExtendWords: generator.DefaultExtendWords,
		Window:      match.DefaultOptions(),
	}
}

// Session holds the target text, the typed input and the start time.
// Everything else is derived from those on each change.
type Session struct {
	gen   *generator.Generator
	vocab []string
	opts  Options
	clock Clock

	target    string
	input     string
	startedAt time.Time

	metrics model.Metrics
	line    model.Line
}

// New creates a session with freshly generated target text.
func New(gen *generator.Generator, vocab []string, opts Options) *Session {
	if opts.Words <= 0 {
		opts.Words = generator.DefaultWords
	}
	if opts.ExtendWords <= 0 {
		opts.ExtendWords = generator.DefaultExtendWords
	}
	clock := opts.Clock
	if clock == nil {
		clock = systemClock{}
	}
	s := &Session{gen: gen, vocab: vocab, opts: opts, clock: clock}
	s.Reset()
	return s
}

// OnInput replaces the typed input. The first call starts the clock.
func (s *Session) OnInput(value string) {
	if s.startedAt.IsZero() {
		s.startedAt = s.clock.Now()
	}
	s.input = value
	s.extendIfNeeded()
	s.recompute()
}

// Reset regenerates the target text and clears all typed state.
func (s *Session) Reset() {
	s.target = s.gen.Text(s.vocab, s.opts.Words)
	s.input = ""
	s.startedAt = time.Time{}
	s.metrics = stats.Zero()
	s.line = match.Classify(s.target, s.input, s.opts.Window)
}

// Tick refreshes time-dependent metrics without an input change.
func (s *Session) Tick() {
	if !s.Started() {
		return
	}
	s.metrics = stats.Compute(s.target, s.input, s.Elapsed())
}

func (s *Session) extendIfNeeded() {
	targetWords := len(match.TargetWords(s.target))
	inputWords := len(match.SplitInput(s.input))
	if generator.NeedsExtension(targetWords, inputWords) {
		s.target = s.gen.Extend(s.target, s.vocab, s.opts.ExtendWords)
	}
}

func (s *Session) recompute() {
	s.metrics = stats.Compute(s.target, s.input, s.Elapsed())
	s.line = match.Classify(s.target, s.input, s.opts.Window)
}

// Target returns the full target text.
func (s *Session) Target() string { return s.target }

// Input returns the typed input.
func (s *Session) Input() string { return s.input }

// Metrics returns the current metrics.
func (s *Session) Metrics() model.Metrics { return s.metrics }

// Line returns the classified visible window.
func (s *Session) Line() model.Line { return s.line }

// Started reports whether the first keystroke has happened.
func (s *Session) Started() bool { return !s.startedAt.IsZero() }

// StartedAt returns the time of the first keystroke, zero before it.
func (s *Session) StartedAt() time.Time { return s.startedAt }

// Elapsed returns the time since the first keystroke.
func (s *Session) Elapsed() time.Duration {
	if !s.Started() {
		return 0
	}
	d := s.clock.Now().Sub(s.startedAt)
	if d < 0 {
		return 0
	}
	return d
}
