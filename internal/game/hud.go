package game

import (
	"fmt"
	"log/slog"

	"labescape/internal/effects"

	"github.com/chewxy/math32"
	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const hudFontPath = "assets/fonts/Outfit-Regular.ttf"

var hudFont rl.Font

var (
	colorPanel     = rl.NewColor(18, 18, 24, 220)
	colorElement   = rl.NewColor(28, 28, 38, 255)
	colorHover     = rl.NewColor(38, 38, 52, 255)
	colorAccent    = rl.NewColor(108, 99, 255, 255)
	colorText      = rl.NewColor(200, 200, 208, 255)
	colorTextLight = rl.NewColor(255, 255, 255, 255)
	colorBarBg     = rl.NewColor(40, 40, 50, 255)
	colorBarBorder = rl.NewColor(60, 60, 75, 255)
)

var effectColors = map[effects.Kind]rl.Color{
	effects.InvertControls: rl.NewColor(80, 200, 80, 255),
	effects.InvertColors:   rl.NewColor(230, 160, 60, 255),
	effects.FlipRoll:       rl.NewColor(167, 139, 250, 255),
}

// hudActions are clicks from the debug panel, applied on the next Step.
// reset goes through the same path as the R key.
type hudActions struct {
	freeFly   bool
	collision bool
	light     bool
	reset     bool
}

func initHUDStyle() {
	hudFont = rl.LoadFontEx(hudFontPath, 48, nil)
	if hudFont.Texture.ID > 0 {
		rl.SetTextureFilter(hudFont.Texture, rl.FilterBilinear)
		gui.SetFont(hudFont)
	} else {
		slog.Debug("hud font not loaded, using default", "path", hudFontPath)
	}

	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(colorElement))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_FOCUSED, gui.NewColorPropertyValue(colorHover))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(colorAccent))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(colorText))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_FOCUSED, gui.NewColorPropertyValue(colorTextLight))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_PRESSED, gui.NewColorPropertyValue(colorTextLight))

	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_NORMAL, gui.NewColorPropertyValue(rl.NewColor(50, 50, 65, 255)))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_FOCUSED, gui.NewColorPropertyValue(colorAccent))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 18)
}

// drawCentered draws text centered in r with the HUD font, or raylib's
// default font when it did not load.
func drawCentered(text string, r rl.Rectangle, size float32, color rl.Color) {
	if hudFont.Texture.ID > 0 {
		m := rl.MeasureTextEx(hudFont, text, size, 1)
		pos := rl.Vector2{X: r.X + (r.Width-m.X)/2, Y: r.Y + (r.Height-m.Y)/2}
		rl.DrawTextEx(hudFont, text, pos, size, 1, color)
		return
	}
	tw := rl.MeasureText(text, int32(size))
	rl.DrawText(text, int32(r.X+(r.Width-float32(tw))/2), int32(r.Y+(r.Height-size)/2), int32(size), color)
}

// barFill is the filled width of a countdown bar.
func barFill(remaining, duration, width float32) float32 {
	if duration <= 0 {
		return 0
	}
	p := remaining / duration
	return width * math32.Max(0, math32.Min(1, p))
}

func (g *Game) applyHUD() {
	a := g.pending
	g.pending = hudActions{}

	s := g.State
	if a.freeFly {
		s.FreeFly = !s.FreeFly
	}
	if a.collision {
		s.Collision = !s.Collision
	}
	if a.light {
		g.World.Renderer.Light.Enabled = !g.World.Renderer.Light.Enabled
	}
}

// drawHUD draws the 2D overlay and returns the panel clicks of this frame.
func (g *Game) drawHUD() hudActions {
	s := g.State
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())

	// Crosshair
	cx, cy := int32(w/2), int32(h/2)
	rl.DrawLine(cx-8, cy, cx+8, cy, colorTextLight)
	rl.DrawLine(cx, cy-8, cx, cy+8, colorTextLight)

	// Hint
	hint := rl.Rectangle{X: w/2 - 300, Y: h - 70, Width: 600, Height: 40}
	rl.DrawRectangleRec(hint, colorPanel)
	drawCentered(s.Hint, hint, 20, colorTextLight)

	// Active effects
	y := float32(16)
	for _, k := range s.Effects.ActiveKinds() {
		bar := rl.Rectangle{X: 16, Y: y + 20, Width: 200, Height: 10}
		gui.Label(rl.Rectangle{X: 16, Y: y, Width: 200, Height: 20},
			fmt.Sprintf("%s %.1fs", k, s.Effects.Remaining(k)))

		rl.DrawRectangleRec(bar, colorBarBg)
		fill := bar
		fill.Width = barFill(s.Effects.Remaining(k), effects.Duration, bar.Width)
		if fill.Width > 0 {
			rl.DrawRectangleRec(fill, effectColors[k])
		}
		rl.DrawRectangleLinesEx(bar, 1, colorBarBorder)
		y += 40
	}

	if !s.Debug {
		return hudActions{}
	}
	return g.drawDebugPanel(w)
}

func (g *Game) drawDebugPanel(screenW float32) hudActions {
	s := g.State
	var a hudActions

	panel := rl.Rectangle{X: screenW - 236, Y: 16, Width: 220, Height: 220}
	rl.DrawRectangleRec(panel, colorPanel)
	rl.DrawRectangleLinesEx(panel, 1, colorBarBorder)

	x := panel.X + 12
	y := panel.Y + 10
	gui.Label(rl.Rectangle{X: x, Y: y, Width: 196, Height: 20}, fmt.Sprintf("FPS %d", rl.GetFPS()))
	y += 22
	p := s.Camera.Position
	gui.Label(rl.Rectangle{X: x, Y: y, Width: 196, Height: 20}, fmt.Sprintf("%.2f %.2f %.2f", p.X, p.Y, p.Z))
	y += 22
	gui.Label(rl.Rectangle{X: x, Y: y, Width: 196, Height: 20}, fmt.Sprintf("door %s", s.Door.State()))
	y += 30

	box := func(label string, on bool) bool {
		r := rl.Rectangle{X: x, Y: y, Width: 18, Height: 18}
		y += 26
		return gui.CheckBox(r, label, on) != on
	}
	a.freeFly = box("Free-fly", s.FreeFly)
	a.collision = box("Collision", s.Collision)
	a.light = box("Light", g.World.Renderer.Light.Enabled)

	a.reset = gui.Button(rl.Rectangle{X: x, Y: y + 4, Width: 196, Height: 26}, "Reset")
	return a
}
