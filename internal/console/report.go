package console

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/starford/seqren/internal/models"
)

var (
	green  = color.New(color.FgGreen)
	red    = color.New(color.FgRed)
	yellow = color.New(color.FgYellow)
	bold   = color.New(color.Bold)
)

// PrintFiles writes files one per line, numbered in batch order.
func PrintFiles(w io.Writer, files []string) {
	for i, name := range files {
		fmt.Fprintf(w, "%4d  %s\n", i+1, name)
	}
}

// PrintPlan writes the moves of a dry run.
func PrintPlan(w io.Writer, res *models.Result) {
	bold.Fprintf(w, "Plan for %s\n", res.Directory)
	printMoves(w, res.Moves)
	fmt.Fprintf(w, "%d files would be renamed.\n", res.Renamed)
}

// PrintResult writes the moves of a finished batch and any warnings.
func PrintResult(w io.Writer, res *models.Result) {
	printMoves(w, res.Moves)
	for _, name := range res.Foreign {
		yellow.Fprintf(w, "! %s changed during the batch by another process\n", name)
	}
	if res.Verified {
		green.Fprintln(w, "✓ contents verified")
	}
}

func printMoves(w io.Writer, moves []models.Move) {
	for _, m := range moves {
		final := m.Final
		if final == "" {
			final = m.Temporary + " (not finalized)"
		}
		if m.Disambiguated {
			final += " *"
		}
		fmt.Fprintf(w, "  %s -> %s\n", m.Original, final)
	}
}
