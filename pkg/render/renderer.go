// pkg/render/renderer.go
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"go-tanchiki/internal/app"
	"go-tanchiki/internal/component"
	"go-tanchiki/internal/config"
)

// Renderer рисует кадр по снапшоту симуляции. Живые структуры игры
// сюда не попадают.
type Renderer struct {
	fontFace font.Face
}

// NewRenderer создаёт рендерер с растровым шрифтом.
func NewRenderer() *Renderer {
	return &Renderer{fontFace: basicfont.Face7x13}
}

// Font возвращает шрифт рендерера (его же использует панель).
func (r *Renderer) Font() font.Face {
	return r.fontFace
}

// Draw рисует игровое поле: тайлы, бонусы, танки, пули и поверх
// всего — лес. Порядок слоёв фиксированный, лес прячет танки.
func (r *Renderer) Draw(screen *ebiten.Image, snap app.Snapshot) {
	screen.Fill(config.BGColor)
	vector.DrawFilledRect(screen, 0, 0, config.PlayAreaWidth, config.PlayAreaHeight, config.FieldColor, false)

	for _, t := range snap.Tiles {
		if t.Overlay {
			continue
		}
		r.drawTile(screen, t)
	}

	for _, pu := range snap.PowerUps {
		r.drawPowerUp(screen, pu)
	}

	for _, tank := range snap.Tanks {
		r.drawTank(screen, tank)
	}

	for _, b := range snap.Bullets {
		half := float32(config.BulletSize / 2)
		vector.DrawFilledRect(screen, float32(b.X)-half, float32(b.Y)-half,
			float32(config.BulletSize), float32(config.BulletSize), config.BulletColor, false)
	}

	for _, t := range snap.Tiles {
		if t.Overlay {
			r.drawTile(screen, t)
		}
	}
}

func (r *Renderer) drawTile(screen *ebiten.Image, t app.TileView) {
	x := float32(t.GridX * config.TileSize)
	y := float32(t.GridY * config.TileSize)
	vector.DrawFilledRect(screen, x, y, config.TileSize, config.TileSize, t.Color, false)
}

func (r *Renderer) drawPowerUp(screen *ebiten.Image, pu app.PowerUpView) {
	const inset = 3
	x := float32(pu.X) + inset
	y := float32(pu.Y) + inset
	size := float32(config.TileSize - 2*inset)
	vector.DrawFilledRect(screen, x, y, size, size, pu.Color, false)
	vector.StrokeRect(screen, x, y, size, size, 1, config.PanelText, false)
	// Буква вида бонуса по центру клетки.
	label := string([]rune(string(pu.Kind))[0:1])
	bounds := text.BoundString(r.fontFace, label)
	tx := int(pu.X) + config.TileSize/2 - bounds.Dx()/2
	ty := int(pu.Y) + config.TileSize/2 + bounds.Dy()/2
	text.Draw(screen, label, r.fontFace, tx, ty, config.BGColor)
}

// drawTank рисует корпус и ствол. Мигающая обводка — неуязвимость.
func (r *Renderer) drawTank(screen *ebiten.Image, t app.TankView) {
	x := float32(t.X)
	y := float32(t.Y)
	vector.DrawFilledRect(screen, x, y, config.TileSize, config.TileSize, t.Color, false)

	// Ствол: короткий брусок от центра в сторону направления.
	const barrelW = 6
	const barrelL = 10
	cx := x + config.TileSize/2
	cy := y + config.TileSize/2
	var bx, by, bw, bh float32
	switch t.Dir {
	case component.DirUp:
		bx, by, bw, bh = cx-barrelW/2, cy-barrelL, barrelW, barrelL
	case component.DirDown:
		bx, by, bw, bh = cx-barrelW/2, cy, barrelW, barrelL
	case component.DirLeft:
		bx, by, bw, bh = cx-barrelL, cy-barrelW/2, barrelL, barrelW
	case component.DirRight:
		bx, by, bw, bh = cx, cy-barrelW/2, barrelL, barrelW
	}
	barrel := darken(t.Color)
	vector.DrawFilledRect(screen, bx, by, bw, bh, barrel, false)

	if t.Invulnerable {
		vector.StrokeRect(screen, x-1, y-1, config.TileSize+2, config.TileSize+2, 2, config.FlashColor, false)
	}
}

func darken(c color.RGBA) color.RGBA {
	return color.RGBA{c.R / 2, c.G / 2, c.B / 2, c.A}
}

// DrawOverlay затемняет экран и выводит заголовок с подсказкой —
// общий вид для меню, паузы, поражения и победы.
func (r *Renderer) DrawOverlay(screen *ebiten.Image, title string, titleColor color.RGBA, lines []string) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayScreen, false)

	cx := config.PlayAreaWidth / 2
	y := config.PlayAreaHeight/2 - 30

	bounds := text.BoundString(r.fontFace, title)
	text.Draw(screen, title, r.fontFace, cx-bounds.Dx()/2, y, titleColor)

	y += 24
	for _, line := range lines {
		b := text.BoundString(r.fontFace, line)
		text.Draw(screen, line, r.fontFace, cx-b.Dx()/2, y, config.HintText)
		y += 16
	}
}
