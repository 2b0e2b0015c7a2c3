// Package loop provides the terminal frame loop driving the simulation.
package loop

import (
	"bufio"
	"io"
	"math/rand"
	"time"

	"github.com/tomz197/invaders/internal/draw"
	"github.com/tomz197/invaders/internal/game"
	"github.com/tomz197/invaders/internal/input"
)

// Options configure a single loop run.
type Options struct {
	// TermSize reports the terminal dimensions each frame. Defaults to
	// the local terminal on stdout.
	TermSize draw.TermSizeFunc

	// Seed for enemy fire selection. Zero means time-based.
	Seed int64

	// IdleTimeout ends the run after this long without input. Zero
	// disables the timeout. Used by the SSH frontend to reap abandoned
	// sessions.
	IdleTimeout time.Duration
}

// Run starts the game loop with the standard Input → Update → Draw cycle.
// It returns when the player quits, the reader closes, or the idle timeout
// expires.
func Run(r *bufio.Reader, w io.Writer, opts Options) error {
	sizeFn := opts.TermSize
	if sizeFn == nil {
		sizeFn = draw.DefaultTermSizeFunc
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	cfg := game.DefaultConfig()
	match := game.NewMatch(cfg, rand.New(rand.NewSource(seed)))
	state := NewState(match)
	stream := input.StartStream(r)

	draw.HideCursor(w)
	defer draw.ShowCursor(w)
	draw.ClearScreen(w)

	termWidth, termHeight, err := sizeFn()
	if err != nil {
		return err
	}
	canvas := draw.NewCanvas(termWidth, termHeight, cfg.FieldWidth, cfg.FieldHeight)
	fitCanvas(canvas, termWidth, termHeight)
	cw := draw.NewChunkWriter(w, canvas.OffsetCol(), canvas.OffsetRow())

	lastTime := time.Now()

	for state.Running {
		frameStart := time.Now()
		dt := frameStart.Sub(lastTime).Seconds()
		lastTime = frameStart

		// ===== INPUT PHASE =====
		inp := input.ReadInput(stream)
		if inp.Quit {
			state.Running = false
			continue
		}
		if opts.IdleTimeout > 0 {
			if inp.Any {
				state.lastInput = frameStart
			} else if frameStart.Sub(state.lastInput) > opts.IdleTimeout {
				state.Running = false
				continue
			}
		}

		// ===== UPDATE PHASE =====
		termWidth, termHeight, err = sizeFn()
		if err != nil {
			return err
		}
		fitCanvas(canvas, termWidth, termHeight)
		cw.SetOffset(canvas.OffsetCol(), canvas.OffsetRow())

		switch state.Screen {
		case ScreenTitle:
			if inp.Fire || inp.Restart {
				input.Reset(stream)
				state.Screen = ScreenPlaying
			}
		case ScreenPlaying:
			updatePlaying(state, inp, dt)
		}

		// ===== DRAW PHASE =====
		if err := drawFrame(state, cw, canvas); err != nil {
			return err
		}

		// ===== FRAME TIMING =====
		elapsed := time.Since(frameStart)
		if elapsed < targetFrameTime {
			time.Sleep(targetFrameTime - elapsed)
		}
	}

	draw.ClearScreen(w)
	return nil
}

// updatePlaying advances the simulation by one tick and syncs effects.
func updatePlaying(state *State, inp input.Input, dt float64) {
	intent := game.Intent{Fire: inp.Fire, Restart: inp.Restart}
	if inp.Left {
		intent.Move--
	}
	if inp.Right {
		intent.Move++
	}

	wasOver := state.Match.GameOver()
	state.Match.Tick(intent)
	if wasOver && !state.Match.GameOver() {
		state.clearEffects()
	}

	state.spawnEffects(state.Match.Events())
	state.updateEffects(dt)
}

// fitCanvas resizes the canvas to the terminal, capping the render area and
// centering it on large terminals.
func fitCanvas(c *draw.Canvas, termWidth, termHeight int) {
	cols, rows := termWidth, termHeight
	if cols > maxRenderCols {
		cols = maxRenderCols
	}
	if rows > maxRenderRows {
		rows = maxRenderRows
	}
	c.Resize(cols, rows)
	c.SetOffset((termWidth-cols)/2, (termHeight-rows)/2)
}

// drawFrame renders one frame through the chunk writer.
func drawFrame(state *State, cw *draw.ChunkWriter, canvas *draw.Canvas) error {
	draw.ClearScreen(cw)
	canvas.Clear()

	switch state.Screen {
	case ScreenTitle:
		canvas.RenderBorder(cw)
		drawTitleScreen(cw, canvas)
	case ScreenPlaying:
		drawMatch(state, canvas)
		drawParticles(state, canvas)
		canvas.RenderBorder(cw)
		canvas.Render(cw)
		drawHUD(state, cw, canvas)
		drawPopups(state, cw, canvas)
		if state.Match.GameOver() {
			drawGameOverScreen(state, cw, canvas)
		}
	}

	return cw.Flush()
}

// drawMatch draws the player, enemies and projectiles onto the canvas.
func drawMatch(state *State, canvas *draw.Canvas) {
	r := state.Match.PlayerRect()
	canvas.DrawPolygon([]draw.Point{
		{X: r.CenterX(), Y: r.Top()},
		{X: r.Left(), Y: r.Bottom()},
		{X: r.Right(), Y: r.Bottom()},
	}, true)

	for _, e := range state.Match.Enemies() {
		canvas.FillRect(e.Rect.X, e.Rect.Y, e.Rect.W, e.Rect.H)
	}
	for _, p := range state.Match.Projectiles() {
		canvas.FillRect(p.Rect.X, p.Rect.Y, p.Rect.W, p.Rect.H)
	}
}

// drawParticles plots explosion debris as single pixels.
func drawParticles(state *State, canvas *draw.Canvas) {
	for _, p := range state.Particles {
		canvas.Set(p.X, p.Y)
	}
}
