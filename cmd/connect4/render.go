package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/iamasit07/connect4-engine/internal/domain"
	"github.com/muesli/termenv"
)

// human disks are pink, the engine's are yellow
const (
	humanColor     = "205"
	automatedColor = "220"
)

type renderer struct {
	out *termenv.Output
}

func newRenderer(w io.Writer, opts ...termenv.OutputOption) *renderer {
	return &renderer{out: termenv.NewOutput(w, opts...)}
}

func (r *renderer) disk(p domain.PlayerID) string {
	switch p {
	case domain.HumanPiece:
		return r.out.String("X").Foreground(r.out.Color(humanColor)).Bold().String()
	case domain.AutomatedPiece:
		return r.out.String("O").Foreground(r.out.Color(automatedColor)).Bold().String()
	default:
		return r.out.String(".").Faint().String()
	}
}

func (r *renderer) board(b *domain.Board) string {
	var sb strings.Builder
	for col := 0; col < domain.Columns; col++ {
		sb.WriteString(" " + strconv.Itoa(col+1))
	}
	sb.WriteByte('\n')
	for row := 0; row < domain.Rows; row++ {
		for col := 0; col < domain.Columns; col++ {
			sb.WriteString(" " + r.disk(b[row][col]))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (r *renderer) outcome(state domain.GameState) string {
	switch state {
	case domain.StateHumanWon:
		return r.out.String("You win!").Foreground(r.out.Color(humanColor)).Bold().String()
	case domain.StateAutomatedWon:
		return r.out.String("The bot wins.").Foreground(r.out.Color(automatedColor)).Bold().String()
	case domain.StateDraw:
		return r.out.String("Draw, the board is full.").Bold().String()
	}
	return ""
}

// parseColumn reads a 1-based column typed by the player.
func parseColumn(input string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return domain.NoColumn, fmt.Errorf("%q is not a column number", strings.TrimSpace(input))
	}
	if n < 1 || n > domain.Columns {
		return domain.NoColumn, domain.ErrInvalidColumn
	}
	return n - 1, nil
}
