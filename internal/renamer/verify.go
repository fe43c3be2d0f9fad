package renamer

import (
	"fmt"

	"github.com/starford/seqren/internal/apperr"
	"github.com/starford/seqren/internal/checksum"
	"github.com/starford/seqren/internal/models"
	"github.com/starford/seqren/internal/storage"
)

// manifest is a multiset of (content digest, extension) keys.
type manifest map[string]int

func manifestKey(digest, name string) string {
	_, ext := SplitExt(name)
	return digest + "\x00" + ext
}

func digest(store storage.Provider, name string) (string, error) {
	rc, err := store.Open(name)
	if err != nil {
		return "", err
	}
	defer rc.Close()
	return checksum.SumReader(rc)
}

func snapshot(store storage.Provider, names []string) (manifest, error) {
	m := make(manifest, len(names))
	for _, name := range names {
		d, err := digest(store, name)
		if err != nil {
			return nil, &apperr.OpError{Op: "checksum", Name: name, Err: err}
		}
		m[manifestKey(d, name)]++
	}
	return m, nil
}

// verify recomputes the manifest from the final names and compares it
// with m.
func (m manifest) verify(store storage.Provider, moves []models.Move) error {
	finals := make([]string, len(moves))
	for i, mv := range moves {
		finals[i] = mv.Final
	}
	after, err := snapshot(store, finals)
	if err != nil {
		return err
	}
	if len(after) != len(m) {
		return fmt.Errorf("%w: %d distinct files before, %d after", apperr.ErrVerificationFailed, len(m), len(after))
	}
	for k, n := range m {
		if after[k] != n {
			return fmt.Errorf("%w: content/extension multiset changed", apperr.ErrVerificationFailed)
		}
	}
	return nil
}
