package renamer

import (
	"errors"
	"fmt"
	"strings"
)

// Default name stems.
const (
	DefaultPrefix     = "part"
	DefaultTempPrefix = "__tmp_renamer_"
)

// Naming holds the final and quarantine name stems.
//
//	final:     "<Prefix> <i><ext>"       then "<Prefix> <i> (<n>)<ext>"
//	temporary: "<TempPrefix><i><ext>"    then "<TempPrefix><i>_<n><ext>"
type Naming struct {
	Prefix     string
	TempPrefix string
}

// DefaultNaming returns the "part N" / "__tmp_renamer_N" scheme.
func DefaultNaming() Naming {
	return Naming{Prefix: DefaultPrefix, TempPrefix: DefaultTempPrefix}
}

// Validate rejects stems that contain separators or whose name spaces
// could overlap, which would let a temporary name shadow a final one.
func (n Naming) Validate() error {
	if n.Prefix == "" || n.TempPrefix == "" {
		return errors.New("naming: prefix and temp prefix are required")
	}
	for _, s := range []string{n.Prefix, n.TempPrefix} {
		if strings.ContainsAny(s, `/\`) || strings.ContainsRune(s, 0) {
			return fmt.Errorf("naming: %q must not contain path separators", s)
		}
	}
	// The finalize pass reads the extension back off the temporary name.
	if strings.Contains(strings.TrimLeft(n.TempPrefix, "."), ".") {
		return fmt.Errorf("naming: temp prefix %q may only contain leading dots", n.TempPrefix)
	}
	final := n.Prefix + " "
	if strings.HasPrefix(n.TempPrefix, final) || strings.HasPrefix(final, n.TempPrefix) {
		return fmt.Errorf("naming: temp prefix %q overlaps final prefix %q", n.TempPrefix, n.Prefix)
	}
	return nil
}

// TempName returns the quarantine name for position pos. counter 0 is the
// undecorated form.
func (n Naming) TempName(pos, counter int, ext string) string {
	if counter == 0 {
		return fmt.Sprintf("%s%d%s", n.TempPrefix, pos, ext)
	}
	return fmt.Sprintf("%s%d_%d%s", n.TempPrefix, pos, counter, ext)
}

// FinalName returns the target name for position pos. suffix 0 is the
// undecorated form.
func (n Naming) FinalName(pos, suffix int, ext string) string {
	if suffix == 0 {
		return fmt.Sprintf("%s %d%s", n.Prefix, pos, ext)
	}
	return fmt.Sprintf("%s %d (%d)%s", n.Prefix, pos, suffix, ext)
}

// SplitExt splits name into stem and extension. The extension runs from
// the last dot to the end, but dots leading the name never start one:
// ".bashrc" and ".." have no extension, "a.tar.gz" has ".gz", "a." has ".".
func SplitExt(name string) (stem, ext string) {
	dot := strings.LastIndexByte(name, '.')
	if dot <= 0 {
		return name, ""
	}
	if strings.TrimLeft(name[:dot], ".") == "" {
		return name, ""
	}
	return name[:dot], name[dot:]
}
