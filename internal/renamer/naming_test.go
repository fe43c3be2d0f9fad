package renamer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitExt(t *testing.T) {
	tests := []struct {
		in, stem, ext string
	}{
		{"a.txt", "a", ".txt"},
		{"archive.tar.gz", "archive.tar", ".gz"},
		{"noext", "noext", ""},
		{".bashrc", ".bashrc", ""},
		{"..", "..", ""},
		{"..hidden.txt", "..hidden", ".txt"},
		{"trailing.", "trailing", "."},
		{"part 1 (2).png", "part 1 (2)", ".png"},
		{"", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			stem, ext := SplitExt(tt.in)
			assert.Equal(t, tt.stem, stem)
			assert.Equal(t, tt.ext, ext)
		})
	}
}

func TestNamingFormats(t *testing.T) {
	n := DefaultNaming()
	assert.Equal(t, "__tmp_renamer_3.jpg", n.TempName(3, 0, ".jpg"))
	assert.Equal(t, "__tmp_renamer_3_2.jpg", n.TempName(3, 2, ".jpg"))
	assert.Equal(t, "__tmp_renamer_1", n.TempName(1, 0, ""))
	assert.Equal(t, "part 7.txt", n.FinalName(7, 0, ".txt"))
	assert.Equal(t, "part 7 (1).txt", n.FinalName(7, 1, ".txt"))
}

func TestNamingValidate(t *testing.T) {
	tests := []struct {
		name    string
		naming  Naming
		wantErr bool
	}{
		{"default", DefaultNaming(), false},
		{"custom", Naming{Prefix: "chapter", TempPrefix: ".seqren-"}, false},
		{"empty prefix", Naming{TempPrefix: "t"}, true},
		{"empty temp", Naming{Prefix: "p"}, true},
		{"separator", Naming{Prefix: "a/b", TempPrefix: "t"}, true},
		{"temp inside final space", Naming{Prefix: "part", TempPrefix: "part 9"}, true},
		{"final inside temp space", Naming{Prefix: "x", TempPrefix: "x"}, true},
		{"dot inside temp prefix", Naming{Prefix: "part", TempPrefix: "tmp.x_"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.naming.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
