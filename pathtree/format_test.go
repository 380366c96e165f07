package pathtree

import (
	"errors"
	"strings"
	"testing"

	"github.com/erraggy/restcli/rcerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatMalformed(t *testing.T) {
	out, err := Format([]Record{{Path: "relative/path"}})
	assert.Empty(t, out)
	assert.True(t, errors.Is(err, rcerrors.ErrMalformedPath))
}

func TestSubtree(t *testing.T) {
	root := mustBuild(t, surveyRecords()...)

	t.Run("empty segments returns root", func(t *testing.T) {
		got, ok := Subtree(root, nil)
		require.True(t, ok)
		assert.Same(t, root, got)
	})

	t.Run("missing path", func(t *testing.T) {
		got, ok := Subtree(root, []string{"languages", "cobol"})
		assert.False(t, ok)
		assert.Nil(t, got)
	})

	t.Run("ancestors fold into the label without attributes", func(t *testing.T) {
		sub, ok := Subtree(root, []string{"languages", "go", "applications"})
		require.True(t, ok)

		want := ".languages.go.applications:\n" +
			"  .etcd:\n" +
			"    category database\n" +
			"  .kubernetes:\n" +
			"    company Google\n"
		assert.Equal(t, want, Render(Compress(sub)))

		goNode, ok := sub.Lookup("languages", "go")
		require.True(t, ok)
		assert.Zero(t, goNode.Attributes.Len())
	})

	t.Run("target keeps its own attributes", func(t *testing.T) {
		sub, ok := Subtree(root, []string{"languages", "go"})
		require.True(t, ok)
		assert.True(t, strings.HasPrefix(Render(Compress(sub)), ".languages.go:\n  GC yes\n"))
	})

	t.Run("original tree untouched", func(t *testing.T) {
		_, ok := Subtree(root, []string{"languages", "rust"})
		require.True(t, ok)

		langs, _ := root.Child("languages")
		assert.Equal(t, 3, langs.Len())
	})

	t.Run("decoded names", func(t *testing.T) {
		sub, ok := Subtree(root, []string{"languages", "C/C++", "applications", "linux"})
		require.True(t, ok)
		assert.Equal(t, ".languages.C/C++.applications.linux:\n  category kernel\n", Render(Compress(sub)))
	})
}
