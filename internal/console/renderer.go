package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const (
	borderLine = "---------"

	colorX = "1" // red
	colorO = "4" // blue
)

// Renderer prints the board framed by border lines.
type Renderer struct {
	output *termenv.Output
	styles map[string]termenv.Style
}

func NewRenderer(w io.Writer, colorMode string) *Renderer {
	var output *termenv.Output

	switch colorMode {
	case config.ColorAlways:
		output = termenv.NewOutput(w, termenv.WithProfile(termenv.ANSI))
	case config.ColorNever:
		output = termenv.NewOutput(w, termenv.WithProfile(termenv.Ascii))
	default:
		output = termenv.NewOutput(w)
	}

	return &Renderer{
		output: output,
		styles: map[string]termenv.Style{
			entity.PlayerX: output.String(entity.PlayerX).Foreground(output.Color(colorX)).Bold(),
			entity.PlayerO: output.String(entity.PlayerO).Foreground(output.Color(colorO)).Bold(),
		},
	}
}

func (that *Renderer) Draw(board entity.Board) error {
	var sb strings.Builder

	sb.WriteString(borderLine + "\n")
	for row := 0; row < entity.BoardSize; row++ {
		sb.WriteString("|")
		for col := 0; col < entity.BoardSize; col++ {
			sb.WriteString(" " + that.cell(board.Cell(row, col)))
		}
		sb.WriteString(" |\n")
	}
	sb.WriteString(borderLine + "\n")

	if _, err := io.WriteString(that.output, sb.String()); err != nil {
		return fmt.Errorf("failed to draw board: %w", err)
	}

	return nil
}

func (that *Renderer) cell(mark string) string {
	style, ok := that.styles[mark]
	if !ok {
		return " "
	}

	return style.String()
}
