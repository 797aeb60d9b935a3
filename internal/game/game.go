// Package game hosts the particle field in an ebiten window.
package game

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/iburimskiy/particle-field/internal/config"
	"github.com/iburimskiy/particle-field/internal/field"
	"github.com/iburimskiy/particle-field/internal/metrics"
	"github.com/iburimskiy/particle-field/internal/palette"
	"github.com/ncruces/zenity"
)

type Game struct {
	cfg       config.Config
	cfgPath   string
	overrides config.Overrides
	watcher   *config.Watcher

	// field
	frames  field.FrameQueue
	anim    *field.Animator
	surface *screenSurface
	theme   palette.Theme

	// viewport, as last reported by Layout
	width, height int

	// overlay
	tap     *metrics.FrameTap
	started time.Time
	overlay bool
	text    *ebiten.Image // white debug glyphs, tinted with the theme on draw

	// input edge detection
	prevKey map[ebiten.Key]bool

	// state
	pendingStart bool
	lastErr      error
}

// New builds a game for cfg. When cfgPath is set the file is watched and
// reloaded on change; a watcher failure is logged and otherwise ignored.
// overrides are re-applied on every reload.
func New(cfg config.Config, cfgPath string, overrides config.Overrides) *Game {
	theme := cfg.ThemeColors()
	g := &Game{
		cfgPath:   cfgPath,
		overrides: overrides,
		surface:   &screenSurface{background: theme.Background},
		theme:     theme,
		tap:       metrics.NewFrameTap(config.FrameRingSize),
		started:   time.Now(),
		prevKey:   map[ebiten.Key]bool{},
	}
	g.apply(cfg)
	if cfgPath != "" {
		g.watch(cfgPath)
	}
	return g
}

func (g *Game) watch(path string) {
	if g.watcher != nil {
		_ = g.watcher.Close()
		g.watcher = nil
	}
	w, err := config.NewWatcher(path)
	if err != nil {
		log.Printf("config: not watching %s: %v", path, err)
		return
	}
	g.watcher = w
}

// Close releases the config watcher.
func (g *Game) Close() error {
	g.anim.Stop()
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}

// apply swaps in a new animator for cfg. The old one is stopped so its
// queued tick turns into a no-op.
func (g *Game) apply(cfg config.Config) {
	if g.anim != nil {
		g.anim.Stop()
	}
	g.cfg = cfg
	opts := append(cfg.FieldOptions(), field.WithViewport(g.viewport))
	g.anim = field.NewAnimator(&g.frames, opts...)
	g.pendingStart = true
}

func (g *Game) viewport() (float64, float64) {
	return float64(g.width), float64(g.height)
}

func (g *Game) start() {
	g.lastErr = nil
	if err := g.anim.Start(g.surface, g.cfg.Particles); err != nil {
		log.Printf("field: start: %v", err)
		g.lastErr = err
	}
}

func (g *Game) Update() error {

	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	g.pollConfig()

	if w, h := g.surface.Size(); g.width > 0 && (float64(g.width) != w || float64(g.height) != h) {
		g.anim.Resize(float64(g.width), float64(g.height))
	}
	if g.pendingStart && g.width > 0 && g.height > 0 {
		g.pendingStart = false
		g.start()
	}

	if justPressed(ebiten.KeySpace) {
		if g.anim.Running() {
			g.anim.Stop()
		} else {
			g.start()
		}
	}
	if justPressed(ebiten.KeyR) {
		g.reload()
	}
	if justPressed(ebiten.KeyT) {
		g.theme = g.theme.Toggle()
		g.surface.background = g.theme.Background
	}
	if justPressed(ebiten.KeyF1) {
		g.overlay = !g.overlay
	}
	if justPressed(ebiten.KeyO) {
		if err := g.openConfigDialog(); err != nil {
			g.lastErr = err
		}
	}
	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.target = screen
	g.tap.Mark(time.Now())

	g.frames.Pump()
	if !g.anim.Running() {
		// Nothing ticked; repaint the frozen field (or just the background).
		g.surface.Clear()
		g.anim.Render()
	}

	g.drawStatus(screen)
}

func (g *Game) drawStatus(screen *ebiten.Image) {
	status := "Stopped - Space to start"
	if g.anim.Running() {
		status = "Running - Space to stop, R to reload, T for theme, O to open config"
	}
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}

	b := screen.Bounds()
	if g.text == nil || g.text.Bounds() != b {
		if g.text != nil {
			g.text.Deallocate()
		}
		g.text = ebiten.NewImage(b.Dx(), b.Dy())
	}
	g.text.Clear()
	ebitenutil.DebugPrintAt(g.text, status, 12, 12)

	if g.overlay {
		f := g.anim.Field()
		lines := fmt.Sprintf("FPS %.1f  TPS %.1f\nparticles %d  field %.0fx%.0f\ntheme %s  uptime %s",
			g.tap.FPS(), ebiten.ActualTPS(),
			len(f.Particles), f.Width, f.Height,
			g.theme.Name, metrics.FormatDuration(time.Since(g.started)))
		ebitenutil.DebugPrintAt(g.text, lines, 12, 32)
	}

	op := &ebiten.DrawImageOptions{}
	op.ColorScale.ScaleWithColor(g.theme.Text)
	screen.DrawImage(g.text, op)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// pollConfig applies a pending file change without blocking the frame.
func (g *Game) pollConfig() {
	if g.watcher == nil {
		return
	}
	select {
	case <-g.watcher.Events:
		g.reload()
	case err := <-g.watcher.Errors:
		log.Printf("config: watch %s: %v", g.cfgPath, err)
	default:
	}
}

// reload re-reads the config file and restarts the field with it. Without a
// file it just restarts.
func (g *Game) reload() {
	if g.cfgPath == "" {
		g.pendingStart = true
		return
	}
	cfg, err := config.LoadWith(g.cfgPath, g.overrides)
	if err != nil {
		log.Printf("config: reload: %v", err)
		g.lastErr = err
		return
	}
	log.Printf("config: reloaded %s", g.cfgPath)
	g.theme = cfg.ThemeColors()
	g.surface.background = g.theme.Background
	g.apply(cfg)
}

func (g *Game) openConfigDialog() error {
	path, err := PickConfig()
	if err != nil {
		return err
	}
	if path == "" {
		return nil
	}
	g.cfgPath = path
	g.watch(path)
	g.reload()
	return nil
}

// PickConfig asks for a YAML config with a native file dialog. A cancelled
// dialog returns "", nil.
func PickConfig() (string, error) {
	filename, err := zenity.SelectFile(
		zenity.Title("Open Particle Field Config"),
		zenity.FileFilters{{
			Name:     "YAML",
			Patterns: []string{"*.yaml", "*.yml"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", nil
		}
		return "", err
	}
	return filename, nil
}
