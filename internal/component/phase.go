// internal/component/phase.go
package component

// GamePhase — общее состояние игры.
type GamePhase int

const (
	PhaseMenu GamePhase = iota
	PhasePlaying
	PhaseGameOver
	PhaseVictory
)

// String возвращает имя фазы.
func (p GamePhase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	case PhaseVictory:
		return "victory"
	default:
		return "?"
	}
}

// Причины окончания игры.
const (
	GameOverCausePlayer = "player" // кончились жизни
	GameOverCauseBase   = "base"   // разрушена база
)
