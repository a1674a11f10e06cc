package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/avelisk/systems-critical/internal/core"
	"github.com/avelisk/systems-critical/internal/game"
)

// hudRows is the number of screen rows reserved at the top for the HUD.
const hudRows = 2

// radarRingRadius is the base ring radius in world units; the pulse's
// scale multiplies it as the ring sweeps outward.
const radarRingRadius = 16.0

// ringPoints is how many cells approximate one radar ring.
const ringPoints = 48

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorOrange:  lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// renderFrame draws one snapshot onto the screen buffer. The playing
// field is scaled to fit the grid below the HUD; overlapping actors
// resolve through the buffer's layer rules.
func renderFrame(s *core.Screen, snap game.Snapshot, fieldW, fieldH float64) {
	s.Clear()
	drawHUD(s, snap)

	gridW := s.Width()
	gridH := s.Height() - hudRows
	if gridW <= 0 || gridH <= 0 {
		return
	}

	project := func(p core.Vec2) (int, int) {
		sx := int((p.X + fieldW/2) / fieldW * float64(gridW))
		sy := hudRows + int((fieldH/2-p.Y)/fieldH*float64(gridH))
		return sx, sy
	}

	for _, v := range snap.Radar {
		drawRing(s, v, project)
	}
	for _, v := range snap.Wormholes {
		x, y := project(v.Pos)
		s.SetLayer(x, y, '@', core.ColorMagenta, v.Layer)
	}
	for _, v := range snap.Rocks {
		x, y := project(v.Pos)
		s.SetLayer(x, y, 'O', core.ColorGray, v.Layer)
	}
	for _, v := range snap.Shots {
		x, y := project(v.Pos)
		s.SetLayer(x, y, '*', core.ColorYellow, v.Layer)
	}

	px, py := project(snap.Player.Pos)
	s.SetLayer(px, py, playerGlyph(snap.Player.Facing), core.ColorGreen, snap.Player.Layer)
}

// drawRing approximates a radar pulse's expanding circle with discrete
// cells at the pulse's own draw layer, so actors always sit on top.
func drawRing(s *core.Screen, v game.ActorView, project func(core.Vec2) (int, int)) {
	radius := v.Scale * radarRingRadius
	for i := 0; i < ringPoints; i++ {
		angle := 2 * math.Pi * float64(i) / ringPoints
		p := core.Vec2{
			X: v.Pos.X + radius*math.Sin(angle),
			Y: v.Pos.Y + radius*math.Cos(angle),
		}
		x, y := project(p)
		s.SetLayer(x, y, '·', core.ColorCyan, v.Layer)
	}
}

// playerGlyph picks the arrow that best matches the ship's facing.
// Facing zero points up; the angle grows clockwise.
func playerGlyph(facing float64) rune {
	dx := math.Sin(facing)
	dy := math.Cos(facing)
	if math.Abs(dx) > math.Abs(dy) {
		if dx > 0 {
			return '>'
		}
		return '<'
	}
	if dy > 0 {
		return '^'
	}
	return 'v'
}

// drawHUD writes the score line and the subsystem selector.
func drawHUD(s *core.Screen, snap game.Snapshot) {
	status := fmt.Sprintf("SCORE %04d  LEVEL %02d", snap.Score, snap.Level)
	s.DrawText(1, 0, status, core.ColorWhite)

	systems := []struct {
		sys   game.Subsystem
		label string
	}{
		{game.SubsystemEngines, "[1]ENGINES"},
		{game.SubsystemWeapons, "[2]WEAPONS"},
		{game.SubsystemRadar, "[3]RADAR"},
	}
	x := len(status) + 4
	for _, entry := range systems {
		color := core.ColorGray
		if snap.Sys == entry.sys {
			color = core.ColorOrange
		}
		s.DrawText(x, 0, entry.label, color)
		x += len(entry.label) + 2
	}

	s.DrawHLine(0, 1, s.Width(), '─', core.ColorGray)
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
