package core

import "time"

// DefaultTickRate is the simulation rate in ticks per second. All game
// intervals are expressed in ticks at this rate.
const DefaultTickRate = 60

// TickInterval converts a tick rate to the wall-clock period of one tick.
func TickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = DefaultTickRate
	}
	return time.Second / time.Duration(tickRate)
}

// GameKind is the closed set of screens the dispatcher can show.
type GameKind uint8

const (
	KindMenu GameKind = iota
	KindTetris
	KindSnake
	KindTanks
	KindRaces
	KindLife
)

// GameKinds lists the playable games in menu order.
var GameKinds = [...]GameKind{KindTetris, KindSnake, KindTanks, KindRaces, KindLife}

// String returns the game identifier used by the CLI and replay records.
func (k GameKind) String() string {
	switch k {
	case KindMenu:
		return "menu"
	case KindTetris:
		return "tetris"
	case KindSnake:
		return "snake"
	case KindTanks:
		return "tanks"
	case KindRaces:
		return "races"
	case KindLife:
		return "life"
	default:
		return "unknown"
	}
}

// Outcome is the result of advancing a game by one tick.
type Outcome uint8

const (
	Continue Outcome = iota
	GameOver
)

// GameState represents the current state of a game.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// Logger is the logging surface the core writes to. *log.Logger from
// charmbracelet/log satisfies it; LED and browser builds use NopLogger.
type Logger interface {
	Debug(msg interface{}, keyvals ...interface{})
	Info(msg interface{}, keyvals ...interface{})
}

// NopLogger discards everything.
type NopLogger struct{}

func (NopLogger) Debug(interface{}, ...interface{}) {}
func (NopLogger) Info(interface{}, ...interface{})  {}
