// Package model defines shared data structures.
package model

// Config defines practice settings.
type Config struct {
	Words       int
	ExtendWords int
	WindowSize  int
	WindowBack  int
	Vocab       string
	VocabFile   string
	Seed        int64
}

// Status classifies a word or a letter against the target text.
type Status int

const (
	StatusRemaining Status = iota
	StatusCurrent
	StatusCorrect
	StatusIncorrect
	// StatusExtra marks letters typed past the end of the target word.
	StatusExtra
)

func (s Status) String() string {
	switch s {
	case StatusRemaining:
		return "remaining"
	case StatusCurrent:
		return "current"
	case StatusCorrect:
		return "correct"
	case StatusIncorrect:
		return "incorrect"
	case StatusExtra:
		return "extra"
	default:
		return "unknown"
	}
}

// Letter is a single classified rune of the current word.
type Letter struct {
	Rune   rune
	Status Status
}

// Word is a classified target word inside the visible window.
// Letters is only populated for the current word.
type Word struct {
	Index   int
	Text    string
	Status  Status
	Letters []Letter
}

// Line is the visible window of the target text.
type Line struct {
	Start   int
	Words   []Word
	Current int
}

// Metrics holds the live session numbers shown in the stats bar.
type Metrics struct {
	WPM      int
	Accuracy int
	Words    int
	Chars    int
	Errors   int
}
