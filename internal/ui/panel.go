// internal/ui/panel.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-tanchiki/internal/app"
	"go-tanchiki/internal/component"
	"go-tanchiki/internal/config"
)

// InfoPanel — боковая панель справа от поля: этап, очки, жизни,
// счётчики врагов, таймеры бонусов и подсказки по управлению.
type InfoPanel struct {
	fontFace  font.Face
	HighScore int // лучший результат из базы, обновляет GameState
}

// NewInfoPanel создаёт панель.
func NewInfoPanel(fontFace font.Face) *InfoPanel {
	return &InfoPanel{fontFace: fontFace}
}

// Draw рисует панель по снапшоту.
func (p *InfoPanel) Draw(screen *ebiten.Image, snap app.Snapshot) {
	x0 := float32(config.PlayAreaWidth)
	vector.DrawFilledRect(screen, x0, 0, config.PanelWidth, config.ScreenHeight, config.PanelBG, false)
	vector.DrawFilledRect(screen, x0, 0, 2, config.ScreenHeight, config.PanelAccent, false)

	tx := config.PlayAreaWidth + 16
	y := 28

	p.line(screen, tx, &y, config.PanelAccent, "TANCHIKI")
	y += 8
	p.line(screen, tx, &y, config.PanelText, fmt.Sprintf("STAGE  %d", snap.Stage))
	p.line(screen, tx, &y, config.PanelText, fmt.Sprintf("SCORE  %d", snap.Score))
	p.line(screen, tx, &y, config.PanelText, fmt.Sprintf("BEST   %d", p.HighScore))
	p.line(screen, tx, &y, config.PanelText, fmt.Sprintf("LIVES  %d", snap.Lives))
	y += 8
	p.line(screen, tx, &y, config.PanelText, fmt.Sprintf("ENEMIES %d", snap.EnemiesLeft))
	p.line(screen, tx, &y, config.PanelText, fmt.Sprintf("ACTIVE  %d", snap.EnemiesActive))

	y += 8
	if snap.PlayerDead {
		p.line(screen, tx, &y, config.DefeatColor, fmt.Sprintf("RESPAWN %.1f", snap.RespawnTimer))
	}
	if snap.InvulnTimer > 0 {
		p.line(screen, tx, &y, config.FlashColor, fmt.Sprintf("SHIELD  %.1f", snap.InvulnTimer))
	}
	if snap.RapidTimer > 0 {
		p.line(screen, tx, &y, config.PanelAccent, fmt.Sprintf("RAPID   %.1f", snap.RapidTimer))
	}
	if snap.SpeedTimer > 0 {
		p.line(screen, tx, &y, config.PanelAccent, fmt.Sprintf("SPEED   %.1f", snap.SpeedTimer))
	}

	if snap.Phase == component.PhasePlaying {
		y = config.ScreenHeight - 76
		p.line(screen, tx, &y, config.HintText, "ARROWS/WASD move")
		p.line(screen, tx, &y, config.HintText, "SPACE fire")
		p.line(screen, tx, &y, config.HintText, "ESC pause, Q quit")
	}
}

func (p *InfoPanel) line(screen *ebiten.Image, x int, y *int, clr color.Color, s string) {
	text.Draw(screen, s, p.fontFace, x, *y, clr)
	*y += 16
}
