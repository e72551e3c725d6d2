package game

// State is the run state of the game loop
type State int

const (
	StatePlaying State = iota
	StatePaused
)

func (s State) String() string {
	if s == StatePaused {
		return "paused"
	}
	return "playing"
}

// Message represents an on-screen message that fades over time.
type Message struct {
	Text     string
	TimeLeft float64 // Seconds remaining
	MaxTime  float64 // Initial duration
}

// Alpha returns the remaining opacity in [0, 1]
func (m Message) Alpha() float64 {
	if m.MaxTime <= 0 {
		return 0
	}
	return m.TimeLeft / m.MaxTime
}
