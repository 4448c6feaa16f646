package game

import (
	"fmt"
	"strings"

	"github.com/wellhopper/wellhopper/internal/core"
	"github.com/wellhopper/wellhopper/internal/levelgen"
	"github.com/wellhopper/wellhopper/internal/physics"
)

// Visual characters for rendering.
const (
	PlayerChar    = '●'
	PlanetChar    = '█'
	BlackHoleChar = '▓'
	GoalChar      = '◎'
)

// hudRows is reserved at the top of the screen for the status line.
const hudRows = 1

// Render draws the session into the screen buffer. World units map to
// cells per axis, which also corrects the terminal's tall cell aspect.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < 40 || dst.Height() < 12 {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, "Need 40x12")
		return
	}

	g.renderHUD(dst)
	g.renderWorld(dst)
	g.renderOverlay(dst)
}

// renderHUD draws score, level, lives, and the launch speed meter.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextColor(1, 0, g.statusLine(), core.ColorBrightWhite)

	if g.mode != ModePractice {
		lives := "LIVES " + strings.Repeat("♥", core.Max(g.lives, 0))
		dst.DrawTextColor(dst.Width()-18-len([]rune(lives)), 0, lives, core.ColorBrightRed)
	}

	// Speed meter: filled past the escape mark means the next launch
	// separates from the well.
	ratio := g.SpeedRatio()
	const meterW = 10
	filled := int(ratio*meterW + 0.5)
	var meter strings.Builder
	meter.WriteString("SPD [")
	for i := 0; i < meterW; i++ {
		if i < filled {
			meter.WriteRune('█')
		} else {
			meter.WriteRune('·')
		}
	}
	meter.WriteString("]")
	color := core.ColorYellow
	if ratio >= physics.EscapeThreshold {
		color = core.ColorBrightGreen
	}
	dst.DrawTextColor(dst.Width()-meterW-7, 0, meter.String(), color)
}

// renderWorld draws every gravity source and the player.
func (g *Game) renderWorld(dst *core.Screen) {
	DrawLevel(dst, g.level, g.body.Pos)
}

// DrawLevel draws a level's gravity sources and a body marker into the
// screen buffer below the HUD row. Shared by the live renderer and the
// level preview command.
func DrawLevel(dst *core.Screen, lvl *levelgen.Level, bodyPos physics.Vec2) {
	w := &lvl.World
	sx := float64(dst.Width()) / w.Bounds.X
	sy := float64(dst.Height()-hudRows) / w.Bounds.Y

	toCell := func(pos physics.Vec2) (int, int) {
		return int(pos.X * sx), hudRows + int(pos.Y*sy)
	}

	for i := range w.Planets {
		pl := &w.Planets[i]
		cx, cy := toCell(pl.Pos)
		dst.FillEllipse(cx, cy, pl.Radius*sx, pl.Radius*sy, PlanetChar, core.ColorBlue)
	}

	for i := range w.BlackHoles {
		bh := &w.BlackHoles[i]
		cx, cy := toCell(bh.Pos)
		dst.FillEllipse(cx, cy, bh.Radius*sx, bh.Radius*sy, BlackHoleChar, core.ColorMagenta)
		dst.SetCell(cx, cy, '@', core.ColorBrightMagenta)
	}

	gx, gy := toCell(w.Goal.Pos)
	dst.DrawEllipse(gx, gy, w.Goal.Radius*sx, w.Goal.Radius*sy, '·', core.ColorGreen)
	dst.SetCell(gx, gy, GoalChar, core.ColorBrightGreen)

	px, py := toCell(bodyPos)
	dst.SetCell(px, py, PlayerChar, core.ColorBrightWhite)
}

// renderOverlay draws transition and terminal-state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	cy := dst.Height() / 2

	switch g.state {
	case StateLevelClear:
		dst.DrawTextCenteredColor(cy, fmt.Sprintf(" LEVEL %d CLEAR ", g.levelNum), core.ColorBrightGreen)
	case StateDying:
		dst.DrawTextCenteredColor(cy, " CONSUMED BY THE VOID ", core.ColorBrightRed)
	case StateGameOver:
		box := core.NewRect(dst.Width()/2-16, cy-2, 32, 5)
		dst.DrawBox(box)
		dst.DrawTextCenteredColor(cy-1, "GAME OVER", core.ColorBrightRed)
		dst.DrawTextCentered(cy, fmt.Sprintf("Final score: %d", g.score))
		dst.DrawTextCentered(cy+1, "R to restart, Q to quit")
	case StatePaused:
		dst.DrawTextCenteredColor(cy, " PAUSED ", core.ColorBrightYellow)
	}
}
