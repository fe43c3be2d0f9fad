package renamer

import (
	"fmt"
	"io/fs"

	"github.com/starford/seqren/internal/apperr"
	"github.com/starford/seqren/internal/models"
	"github.com/starford/seqren/internal/storage"
)

// replica is an in-memory copy of a directory's name set.
type replica map[string]bool

func newReplica(entries []models.Entry) replica {
	r := make(replica, len(entries))
	for _, e := range entries {
		r[e.Name] = true
	}
	return r
}

func (r replica) Exists(name string) (bool, error) { return r[name], nil }

func (r replica) Move(oldName, newName string) error {
	if !r[oldName] {
		return fmt.Errorf("plan: %s: %w", oldName, fs.ErrNotExist)
	}
	delete(r, oldName)
	r[newName] = true
	return nil
}

// Plan runs the batch against a replica of dir and returns the moves a
// real Rename would make, without touching the filesystem.
func (r *Renamer) Plan(dir string) (*models.Result, error) {
	store, err := storage.NewFS(dir)
	if err != nil {
		return nil, err
	}
	entries, err := store.List()
	if err != nil {
		return nil, &apperr.OpError{Op: "list", Name: dir, Err: err}
	}

	res := r.newResult(store.Root())
	res.DryRun = true

	moves, err := r.run(newReplica(entries), r.selectFiles(entries), r.logger)
	res.Moves = moves
	res.Renamed = finalized(moves)
	return res, err
}
