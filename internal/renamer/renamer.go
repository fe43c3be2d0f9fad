// Package renamer renames every regular file in a directory to
// "part 1.ext", "part 2.ext", ... in sorted name order.
//
// A batch runs in two passes. Quarantine moves every input file to a
// unique temporary name; finalize moves each temporary name to its
// target. No rename in either pass can land on a name that is still
// occupied, so a file already called "part 2.txt" is never overwritten
// before its own turn comes. Nothing is rolled back on failure: files
// stay wherever the last successful rename put them.
package renamer

import (
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/starford/seqren/internal/apperr"
	"github.com/starford/seqren/internal/models"
	"github.com/starford/seqren/internal/monitor"
	"github.com/starford/seqren/internal/storage"
)

// namespace is the part of a directory the algorithm needs. storage.FS
// and the in-memory replica used by Plan both satisfy it.
type namespace interface {
	Exists(name string) (bool, error)
	Move(oldName, newName string) error
}

// Renamer runs batches. The zero value is not usable; call New.
type Renamer struct {
	naming         Naming
	followSymlinks bool
	verify         bool
	monitor        bool
	settle         time.Duration
	logger         *slog.Logger
}

// Option is a functional option for configuring a Renamer.
type Option func(*Renamer)

// WithNaming overrides the final and temporary name stems.
func WithNaming(n Naming) Option {
	return func(r *Renamer) { r.naming = n }
}

// WithFollowSymlinks also selects symlinks whose target is a regular file.
func WithFollowSymlinks(on bool) Option {
	return func(r *Renamer) { r.followSymlinks = on }
}

// WithVerify checks that the (content, extension) multiset survives the batch.
func WithVerify(on bool) Option {
	return func(r *Renamer) { r.verify = on }
}

// WithMonitor watches the directory during the batch and reports foreign
// activity. settle is how long to wait for late notifications.
func WithMonitor(on bool, settle time.Duration) Option {
	return func(r *Renamer) {
		r.monitor = on
		r.settle = settle
	}
}

// WithLogger sets the logger. The default discards.
func WithLogger(l *slog.Logger) Option {
	return func(r *Renamer) { r.logger = l }
}

// New creates a Renamer with the default naming scheme.
func New(opts ...Option) *Renamer {
	r := &Renamer{
		naming: DefaultNaming(),
		settle: 100 * time.Millisecond,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ListRegularFiles returns the sorted names of the regular files directly in dir.
func ListRegularFiles(dir string) ([]string, error) {
	return New().List(dir)
}

// RenameSequentially renames files (already ordered) inside dir and
// returns how many reached their final name.
func RenameSequentially(dir string, files []string) (int, error) {
	res, err := New().RenameFiles(dir, files)
	if res == nil {
		return 0, err
	}
	return res.Renamed, err
}

// Rename lists dir and renames everything in it. An empty directory
// returns 0 without touching anything.
func Rename(dir string) (int, error) {
	res, err := New().Rename(dir)
	if res == nil {
		return 0, err
	}
	return res.Renamed, err
}

// List returns the sorted names of the files a batch in dir would rename.
func (r *Renamer) List(dir string) ([]string, error) {
	store, err := storage.NewFS(dir)
	if err != nil {
		return nil, err
	}
	entries, err := store.List()
	if err != nil {
		return nil, &apperr.OpError{Op: "list", Name: dir, Err: err}
	}
	return r.selectFiles(entries), nil
}

func (r *Renamer) selectFiles(entries []models.Entry) []string {
	var files []string
	for _, e := range entries {
		switch {
		case e.Kind == models.KindRegular:
			files = append(files, e.Name)
		case r.followSymlinks && e.Kind == models.KindSymlink && e.TargetRegular:
			files = append(files, e.Name)
		}
	}
	sort.Strings(files)
	return files
}

// Rename renames every selected file in dir. On an I/O failure the
// returned Result describes the moves completed before it.
func (r *Renamer) Rename(dir string) (*models.Result, error) {
	store, err := storage.NewFS(dir)
	if err != nil {
		return nil, err
	}
	entries, err := store.List()
	if err != nil {
		return nil, &apperr.OpError{Op: "list", Name: dir, Err: err}
	}
	return r.execute(store, r.selectFiles(entries))
}

// RenameFiles renames files, in the given order, inside dir. Names must
// be direct children of dir.
func (r *Renamer) RenameFiles(dir string, files []string) (*models.Result, error) {
	store, err := storage.NewFS(dir)
	if err != nil {
		return nil, err
	}
	return r.execute(store, files)
}

func (r *Renamer) newResult(root string) *models.Result {
	return &models.Result{
		ID:        uuid.NewString(),
		Directory: root,
		Moves:     []models.Move{},
	}
}

func (r *Renamer) execute(store storage.Provider, files []string) (*models.Result, error) {
	res := r.newResult(store.Root())
	log := r.logger.With(slog.String("run_id", res.ID), slog.String("dir", res.Directory))

	if len(files) == 0 {
		log.Info("no files to rename")
		return res, nil
	}

	var before manifest
	if r.verify {
		m, err := snapshot(store, files)
		if err != nil {
			return res, err
		}
		before = m
	}

	var mon *monitor.Monitor
	if r.monitor {
		m, err := monitor.Start(store.Root(), log)
		if err != nil {
			log.Warn("monitor unavailable, continuing unmonitored", slog.String("error", err.Error()))
		} else {
			mon = m
		}
	}

	moves, err := r.run(store, files, log)
	res.Moves = moves
	res.Renamed = finalized(moves)

	if mon != nil {
		for _, ev := range monitor.Foreign(mon.Stop(r.settle), touched(moves)) {
			log.Warn("foreign activity during batch", slog.String("name", ev.Name), slog.String("op", ev.Op))
			res.Foreign = append(res.Foreign, ev.Name)
		}
	}

	if err != nil {
		log.Error("batch halted",
			slog.Int("renamed", res.Renamed),
			slog.Int("total", len(files)),
			slog.String("error", err.Error()))
		return res, err
	}

	if r.verify {
		if err := before.verify(store, moves); err != nil {
			log.Error("verification failed", slog.String("error", err.Error()))
			return res, err
		}
		res.Verified = true
	}

	log.Info("batch complete", slog.Int("renamed", res.Renamed))
	return res, nil
}

// run is the two-pass algorithm. It returns the moves made so far even
// when it fails.
func (r *Renamer) run(ns namespace, files []string, log *slog.Logger) ([]models.Move, error) {
	moves := make([]models.Move, 0, len(files))

	for i, name := range files {
		pos := i + 1
		_, ext := SplitExt(name)
		tmp, _, err := firstFree(ns, func(n int) string { return r.naming.TempName(pos, n, ext) })
		if err != nil {
			return moves, &apperr.OpError{Op: "quarantine", Name: name, Err: err}
		}
		if err := ns.Move(name, tmp); err != nil {
			return moves, &apperr.OpError{Op: "quarantine", Name: name, Err: err}
		}
		log.Debug("quarantined", slog.Int("position", pos), slog.String("from", name), slog.String("to", tmp))
		moves = append(moves, models.Move{Position: pos, Original: name, Temporary: tmp})
	}

	for i := range moves {
		m := &moves[i]
		_, ext := SplitExt(m.Temporary)
		final, decorated, err := firstFree(ns, func(n int) string { return r.naming.FinalName(m.Position, n, ext) })
		if err != nil {
			return moves, &apperr.OpError{Op: "finalize", Name: m.Temporary, Err: err}
		}
		if err := ns.Move(m.Temporary, final); err != nil {
			return moves, &apperr.OpError{Op: "finalize", Name: m.Temporary, Err: err}
		}
		m.Final = final
		m.Disambiguated = decorated
		log.Debug("finalized", slog.Int("position", m.Position), slog.String("from", m.Temporary), slog.String("to", final))
	}

	return moves, nil
}

// firstFree probes candidate(0), candidate(1), ... and returns the first
// unoccupied name and whether it needed a counter.
func firstFree(ns namespace, candidate func(n int) string) (string, bool, error) {
	for n := 0; ; n++ {
		name := candidate(n)
		taken, err := ns.Exists(name)
		if err != nil {
			return "", false, err
		}
		if !taken {
			return name, n > 0, nil
		}
	}
}

func finalized(moves []models.Move) int {
	n := 0
	for _, m := range moves {
		if m.Final != "" {
			n++
		}
	}
	return n
}

func touched(moves []models.Move) map[string]bool {
	out := make(map[string]bool, len(moves)*3)
	for _, m := range moves {
		out[m.Original] = true
		out[m.Temporary] = true
		if m.Final != "" {
			out[m.Final] = true
		}
	}
	return out
}
