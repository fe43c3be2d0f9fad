package mcpserver

import (
	"fmt"

	"github.com/starford/seqren/internal/renamer"
)

// NamingScheme describes how a batch names files so that LLM consumers can
// predict the outcome before calling rename_files.
func NamingScheme(n renamer.Naming) string {
	return fmt.Sprintf(`# seqren Naming Scheme

A batch renames every regular file directly inside one directory.
Subdirectories, symlinks and special files are left alone.

## Order

Files are sorted by name, byte-wise ("B.txt" sorts before "a.txt").
The 1-based position in that order is the file's number N.

## Final names

- `+"`%[1]s N.ext`"+` where ext is the original extension, kept verbatim
  (case preserved, dot included, empty if the file had none).
- The extension is everything from the last dot of the name, unless that
  dot is part of a leading run of dots: ".bashrc" has no extension,
  "archive.tar.gz" has ".gz".
- If `+"`%[1]s N.ext`"+` is already taken, the first free
  `+"`%[1]s N (k).ext`"+` with k = 1, 2, ... is used.

## Temporary names

During a batch each file is first moved to `+"`%[2]sN.ext`"+`
(or `+"`%[2]sN_k.ext`"+` if taken). No temporary names remain after a
successful batch.

## Guarantees

- No existing file is ever overwritten.
- File contents are never modified; only names change.
- A failed batch stops at the first error and reports how far it got.
- Call plan_rename first to see the exact outcome without touching disk.
`, n.Prefix, n.TempPrefix)
}
