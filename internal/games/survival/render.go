package survival

import (
	"fmt"
	"math"

	"github.com/vovakirdan/space-survival/internal/core"
	"github.com/vovakirdan/space-survival/internal/ledger"
)

// World units covered by one terminal cell. Cells are about twice as tall as wide.
const (
	cellW = 12.0
	cellH = 24.0
)

// Minimum terminal size the game renders in.
const (
	MinScreenW = 40
	MinScreenH = 12
)

// Visual characters for rendering
const (
	AlienChar  = '@'
	BulletChar = '•'
	ClipChar   = '≡'
	VoidChar   = '░'
	StarChar   = '·'
)

// shipGlyphs are indexed by heading octant, starting at +X and turning clockwise.
var shipGlyphs = [8]rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}

// clipBlinkWindow is how long before expiry a clip starts blinking.
const clipBlinkWindow core.Millis = 2000

// camera maps world coordinates to screen cells, centred on the ship.
type camera struct {
	originX, originY float64
	top              int
	w, h             int
}

func newCamera(center core.Vec2, w, h, top int) camera {
	return camera{
		originX: center.X - float64(w)/2*cellW,
		originY: center.Y - float64(h)/2*cellH,
		top:     top,
		w:       w,
		h:       h,
	}
}

func (c camera) toScreen(p core.Vec2) (int, int, bool) {
	x := int(math.Floor((p.X - c.originX) / cellW))
	y := int(math.Floor((p.Y-c.originY)/cellH)) + c.top
	return x, y, x >= 0 && x < c.w && y >= c.top && y < c.top+c.h
}

func (c camera) toWorld(x, y int) core.Vec2 {
	return core.V(c.originX+(float64(x)+0.5)*cellW, c.originY+(float64(y-c.top)+0.5)*cellH)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	w, h := dst.Width(), dst.Height()

	if w < MinScreenW || h < MinScreenH {
		dst.DrawTextCentered(h/2, "Terminal too small", core.ColorYellow)
		dst.DrawTextCentered(h/2+1, fmt.Sprintf("need %dx%d", MinScreenW, MinScreenH), core.ColorGray)
		return
	}

	cam := newCamera(g.ship.Pos, w, h-1, 1)
	g.drawBackdrop(dst, cam)

	g.clips.Each(func(_ Handle, c *AmmoClip) {
		if c.ExpiresAt-g.now < clipBlinkWindow && (g.now/250)%2 == 0 {
			return
		}
		if x, y, ok := cam.toScreen(c.Pos); ok {
			dst.SetColored(x, y, ClipChar, core.ColorBrightCyan)
		}
	})
	g.bullets.Each(func(_ Handle, b *Bullet) {
		if x, y, ok := cam.toScreen(b.Pos); ok {
			dst.SetColored(x, y, BulletChar, core.ColorBrightYellow)
		}
	})
	g.aliens.Each(func(_ Handle, a *Alien) {
		if x, y, ok := cam.toScreen(a.Pos); ok {
			dst.SetColored(x, y, AlienChar, core.ColorBrightGreen)
		}
	})
	if g.session.Alive {
		if x, y, ok := cam.toScreen(g.ship.Pos); ok {
			dst.SetColored(x, y, shipGlyph(g.ship.Angle), core.ColorWhite)
		}
	}

	g.drawHUD(dst)

	if g.paused {
		drawPanel(dst, core.ColorYellow, []panelLine{
			{"PAUSED", core.ColorBrightYellow},
			{"", core.ColorDefault},
			{"Press P to resume", core.ColorGray},
		})
	}

	if !g.session.Alive {
		g.drawDeathPanel(dst)
	}
}

// drawBackdrop shades everything outside the world and scatters fixed stars inside it.
func (g *Game) drawBackdrop(dst *core.Screen, cam camera) {
	world := g.cfg.World.Size
	for y := cam.top; y < cam.top+cam.h; y++ {
		for x := 0; x < cam.w; x++ {
			p := cam.toWorld(x, y)
			if !inWorld(p, world) {
				dst.SetColored(x, y, VoidChar, core.ColorGray)
				continue
			}
			ix := int64(math.Floor(p.X / cellW))
			iy := int64(math.Floor(p.Y / cellH))
			if starAt(ix, iy) {
				dst.SetColored(x, y, StarChar, core.ColorGray)
			}
		}
	}
}

// starAt deterministically decides whether a world cell holds a star.
func starAt(ix, iy int64) bool {
	h := uint64(ix)*0x9E3779B97F4A7C15 ^ uint64(iy)*0xC2B2AE3D27D4EB4F
	h ^= h >> 31
	return h%29 == 0
}

func shipGlyph(angle float64) rune {
	octant := int(math.Round(angle/(math.Pi/4))) % 8
	if octant < 0 {
		octant += 8
	}
	return shipGlyphs[octant]
}

func (g *Game) drawHUD(dst *core.Screen) {
	s := g.session
	dst.DrawRect(core.NewRect(0, 0, dst.Width(), 1), ' ')

	ammoColor := core.ColorWhite
	if s.Ammo == 0 {
		ammoColor = core.ColorBrightRed
	}
	x := 1
	x = drawField(dst, x, "AMMO ", fmt.Sprintf("%d", s.Ammo), ammoColor)
	x = drawField(dst, x, "SCORE ", fmt.Sprintf("%d", s.Score), core.ColorWhite)
	x = drawField(dst, x, "KILLS ", fmt.Sprintf("%d", s.Kills), core.ColorWhite)
	x = drawField(dst, x, "ACC ", s.Accuracy().String(), core.ColorWhite)
	x = drawField(dst, x, "TIME ", fmt.Sprintf("%.0fs", s.Elapsed(g.now).Seconds()), core.ColorWhite)

	if s.Alive && !WeaponArmed(s, g.now, g.cfg.Player) {
		dst.DrawTextColored(x, 0, "ARMING", core.ColorYellow)
	} else if s.Alive && s.Ammo == 0 {
		dst.DrawTextColored(x, 0, "NO AMMO", core.ColorBrightRed)
	}

	if len(g.leaderboard) > 0 {
		best := fmt.Sprintf("BEST %d ", g.leaderboard[0].Points())
		dst.DrawTextColored(dst.Width()-len(best), 0, best, core.ColorGray)
	}
}

// drawField draws "label value  " and returns the column after it.
func drawField(dst *core.Screen, x int, label, value string, c core.Color) int {
	dst.DrawTextColored(x, 0, label, core.ColorGray)
	x += len(label)
	dst.DrawTextColored(x, 0, value, c)
	return x + len(value) + 3
}

func (g *Game) drawDeathPanel(dst *core.Screen) {
	s := g.session
	lines := []panelLine{
		{"YOU DIED", core.ColorBrightRed},
		{fmt.Sprintf("Score %d   Kills %d   Accuracy %s", s.Score, s.Kills, s.Accuracy()), core.ColorWhite},
		{"", core.ColorDefault},
		{"HIGHSCORES", core.ColorBrightYellow},
	}

	if len(g.leaderboard) == 0 {
		lines = append(lines, panelLine{"no highscores yet", core.ColorGray})
	}
	for i, e := range g.leaderboard {
		lines = append(lines, panelLine{formatEntry(i+1, e), core.ColorWhite})
	}
	if g.lastSaved {
		lines = append(lines, panelLine{"", core.ColorDefault}, panelLine{"score saved", core.ColorGreen})
	}

	lines = append(lines,
		panelLine{"", core.ColorDefault},
		panelLine{"Press R to restart  ·  Q to quit", core.ColorGray},
	)
	drawPanel(dst, core.ColorRed, lines)
}

func formatEntry(rank int, e ledger.Entry) string {
	return fmt.Sprintf("%d. %6s  %4s  %s", rank, e.Score, e.Accuracy, e.Date)
}

type panelLine struct {
	text  string
	color core.Color
}

// drawPanel draws a bordered box of centred lines in the middle of the screen.
func drawPanel(dst *core.Screen, border core.Color, lines []panelLine) {
	inner := 0
	for _, l := range lines {
		inner = core.Max(inner, len([]rune(l.text)))
	}
	boxW := core.Min(inner+4, dst.Width())
	boxH := core.Min(len(lines)+2, dst.Height())
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box, border)

	for i, l := range lines {
		n := len([]rune(l.text))
		dst.DrawTextColored(boxX+(boxW-n)/2, boxY+1+i, l.text, l.color)
	}
}
