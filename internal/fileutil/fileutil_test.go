package fileutil_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memedex/memedex/internal/fileutil"
)

func TestSafeJoin(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		tests := []struct {
			name string
			base string
			elem []string
			want string
		}{
			{"Simple", "/library", []string{"memes_a"}, "/library/memes_a"},
			{"Nested", "/library", []string{"memes_a", "cat.jpg"}, "/library/memes_a/cat.jpg"},
			{"DotSegment", "/library", []string{"./memes_a"}, "/library/memes_a"},
			{"EmptyElem", "/library", []string{""}, "/library"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				got, err := fileutil.SafeJoin(tt.base, tt.elem...)
				require.NoError(t, err)
				assert.Equal(t, filepath.FromSlash(tt.want), got)
			})
		}
	})

	t.Run("Escapes", func(t *testing.T) {
		tests := []struct {
			name string
			elem []string
		}{
			{"ParentDir", []string{".."}},
			{"ParentTraversal", []string{"../other"}},
			{"DeepTraversal", []string{"memes_a", "../../etc/passwd"}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := fileutil.SafeJoin("/library", tt.elem...)
				assert.Error(t, err)
			})
		}
	})
}
