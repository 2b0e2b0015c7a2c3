package loop

import (
	"fmt"

	"github.com/tomz197/invaders/internal/draw"
)

// drawTitleScreen draws the title screen centered in the render area.
func drawTitleScreen(cw *draw.ChunkWriter, canvas *draw.Canvas) {
	centerX := canvas.TerminalWidth() / 2
	centerY := canvas.TerminalHeight() / 2

	title := "I N V A D E R S"
	cw.WriteAt(centerX-len(title)/2, centerY-2, title)

	subtitle := "Press SPACE to Start"
	cw.WriteAt(centerX-len(subtitle)/2, centerY+1, subtitle)

	controls := "Controls: A/D or Arrows to move, SPACE to shoot, Q to quit"
	cw.WriteAt(centerX-len(controls)/2, centerY+4, controls)
}

// drawHUD draws the in-game overlay (score, wave, lives).
func drawHUD(state *State, cw *draw.ChunkWriter, canvas *draw.Canvas) {
	termWidth := canvas.TerminalWidth()

	scoreText := fmt.Sprintf("Score: %d", state.Match.Score())
	cw.WriteAt(2, 1, scoreText)

	waveText := fmt.Sprintf("Wave: %d", state.Match.Wave())
	cw.WriteAt(termWidth/2-len(waveText)/2, 1, waveText)

	livesText := fmt.Sprintf("Lives: %d", state.Match.Lives())
	cw.WriteAt(termWidth-len(livesText)-1, 1, livesText)
}

// drawPopups draws floating score labels next to destroyed enemies.
func drawPopups(state *State, cw *draw.ChunkWriter, canvas *draw.Canvas) {
	for _, p := range state.Popups {
		col, row := canvas.LogicalToTerminal(p.X, p.Y)
		cw.WriteAt(col-len(p.Text)/2, row, p.Text)
	}
}

// drawGameOverScreen draws the game over overlay on top of the frozen field.
func drawGameOverScreen(state *State, cw *draw.ChunkWriter, canvas *draw.Canvas) {
	centerX := canvas.TerminalWidth() / 2
	centerY := canvas.TerminalHeight() / 2

	title := "GAME OVER"
	cw.WriteAt(centerX-len(title)/2, centerY-2, title)

	scoreText := fmt.Sprintf("Final Score: %d", state.Match.Score())
	cw.WriteAt(centerX-len(scoreText)/2, centerY, scoreText)

	prompt := "Press ENTER or R to restart"
	cw.WriteAt(centerX-len(prompt)/2, centerY+2, prompt)
}
