package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/starford/seqren/internal/models"
	"github.com/starford/seqren/internal/renamer"
)

// Flow walks one folder through a batch the way a person at a terminal
// expects: ask, show the count, confirm, rename, report.
type Flow struct {
	Renamer  *renamer.Renamer
	Prompter Prompter
	Out      io.Writer

	Yes         bool // skip confirmation
	DryRun      bool // print the plan and stop
	Interactive bool // stdin is a terminal
}

// Run processes dir, prompting for it when empty. A nil result with a nil
// error means the user backed out or there was nothing to do.
func (f *Flow) Run(dir string) (*models.Result, error) {
	if dir == "" {
		if !f.Interactive {
			return nil, ErrNotInteractive
		}
		answer, err := f.Prompter.InputDirectory("Folder to rename")
		if err != nil {
			return nil, err
		}
		dir = strings.TrimSpace(answer)
		if dir == "" {
			fmt.Fprintln(f.Out, "No folder selected. Nothing to do.")
			return nil, nil
		}
	}

	files, err := f.Renamer.List(dir)
	if err != nil {
		red.Fprintf(f.Out, "Could not read that folder: %v\n", err)
		return nil, err
	}
	if len(files) == 0 {
		fmt.Fprintln(f.Out, "There are no files in that folder to rename.")
		return nil, nil
	}

	if f.DryRun {
		res, err := f.Renamer.Plan(dir)
		if err != nil {
			red.Fprintf(f.Out, "Could not plan: %v\n", err)
			return nil, err
		}
		PrintPlan(f.Out, res)
		return res, nil
	}

	if !f.Yes {
		if !f.Interactive {
			return nil, ErrNotInteractive
		}
		ok, err := f.Prompter.Confirm(fmt.Sprintf("Rename %d files in %s", len(files), dir))
		if err != nil {
			return nil, err
		}
		if !ok {
			fmt.Fprintln(f.Out, "Operation cancelled.")
			return nil, nil
		}
	}

	res, err := f.Renamer.RenameFiles(dir, files)
	if res != nil {
		PrintResult(f.Out, res)
	}
	if err != nil {
		red.Fprintf(f.Out, "Rename failed: %v\n", err)
		if res != nil && res.Renamed > 0 {
			red.Fprintf(f.Out, "%d files were renamed before the failure.\n", res.Renamed)
		}
		return res, err
	}
	green.Fprintf(f.Out, "Done! Total files renamed: %d\n", res.Renamed)
	return res, nil
}
