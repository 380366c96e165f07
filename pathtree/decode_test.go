package pathtree

import (
	"errors"
	"testing"

	"github.com/erraggy/restcli/rcerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"single segment", "/languages", []string{"languages"}},
		{"nested", "/languages/go/applications/etcd", []string{"languages", "go", "applications", "etcd"}},
		{"encoded slash stays in segment", "/languages/C%2FC++/applications/linux", []string{"languages", "C/C++", "applications", "linux"}},
		{"lowercase hex", "/a%2fb", []string{"a/b"}},
		{"encoded space", "/hello%20world", []string{"hello world"}},
		{"plus is literal", "/a+b", []string{"a+b"}},
		{"dot in segment", "/v1.2/x", []string{"v1.2", "x"}},
		{"trailing slash ignored", "/a/b/", []string{"a", "b"}},
		{"utf-8 bytes", "/caf%C3%A9", []string{"caf\u00e9"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		index     int
		segment   string
		reason    string
		wantCause bool
	}{
		{"empty", "", -1, "", "path is empty", false},
		{"relative", "languages/go", -1, "", "path must start with '/'", false},
		{"root only", "/", -1, "", "path has no segments", false},
		{"double slash root", "//", -1, "", "path has no segments", false},
		{"empty interior segment", "/a//b", 1, "", "empty segment", false},
		{"empty segment before trailing slash", "/a//", 1, "", "empty segment", false},
		{"non-hex escape", "/a/%zz", 1, "%zz", "invalid percent-encoding", true},
		{"truncated escape", "/a/b%", 1, "b%", "invalid percent-encoding", true},
		{"short escape", "/x%2", 0, "x%2", "invalid percent-encoding", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.raw)
			require.Error(t, err)
			assert.Nil(t, got)
			assert.True(t, errors.Is(err, rcerrors.ErrMalformedPath))

			var mpe *rcerrors.MalformedPathError
			require.True(t, errors.As(err, &mpe))
			assert.Equal(t, tt.raw, mpe.Path)
			assert.Equal(t, tt.index, mpe.Index)
			assert.Equal(t, tt.segment, mpe.Segment)
			assert.Equal(t, tt.reason, mpe.Reason)
			if tt.wantCause {
				assert.Error(t, mpe.Cause)
			} else {
				assert.NoError(t, mpe.Cause)
			}
		})
	}
}

func TestDecoderNormalize(t *testing.T) {
	// "e" followed by U+0301 COMBINING ACUTE ACCENT.
	decomposed := "/caf%65%CC%81"

	plain, err := Decode(decomposed)
	require.NoError(t, err)
	assert.Equal(t, []string{"cafe\u0301"}, plain)

	got, err := Decoder{Normalize: true}.Decode(decomposed)
	require.NoError(t, err)
	assert.Equal(t, []string{"caf\u00e9"}, got)
}
