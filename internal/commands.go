package internal

import (
	"context"
	"fmt"

	"github.com/starford/seqren/internal/console"
	"github.com/starford/seqren/internal/renamer"
)

// RenameRequest carries the rename command's arguments.
type RenameRequest struct {
	Dir    string // empty means ask
	Yes    bool
	DryRun bool
}

func (a *application) renamer() *renamer.Renamer {
	return renamer.New(a.config.RenamerOptions(a.logger)...)
}

// Rename runs the interactive console flow on one directory.
func Rename(ctx context.Context, req RenameRequest, opts ...Option) error {
	app, err := newApplication(opts...)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	flow := &console.Flow{
		Renamer:     app.renamer(),
		Prompter:    app.prompter,
		Out:         app.out,
		Yes:         req.Yes,
		DryRun:      req.DryRun,
		Interactive: *app.interactive,
	}
	if _, err := flow.Run(req.Dir); err != nil {
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}

// Plan prints what a batch in dir would do.
func Plan(ctx context.Context, dir string, opts ...Option) error {
	app, err := newApplication(opts...)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	res, err := app.renamer().Plan(dir)
	if err != nil {
		return fmt.Errorf("plan: %w", err)
	}
	console.PrintPlan(app.out, res)
	return nil
}

// List prints the files a batch in dir would rename, in order.
func List(ctx context.Context, dir string, opts ...Option) error {
	app, err := newApplication(opts...)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	files, err := app.renamer().List(dir)
	if err != nil {
		return fmt.Errorf("list: %w", err)
	}
	console.PrintFiles(app.out, files)
	return nil
}
