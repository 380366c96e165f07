package options

import (
	"errors"
	"testing"

	"github.com/erraggy/restcli/rcerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExactlyOne(t *testing.T) {
	tests := []struct {
		name      string
		sources   []Source
		wantErr   string
		wantValue any
	}{
		{
			name:    "exactly one",
			sources: []Source{{"file", false}, {"content", true}},
		},
		{
			name:    "none set",
			sources: []Source{{"file", false}, {"content", false}},
			wantErr: "configuration error for input: exactly one of file or content must be provided",
		},
		{
			name:      "two of three set",
			sources:   []Source{{"WithFilePath", true}, {"WithReader", false}, {"WithBytes", true}},
			wantErr:   "configuration error for input (value: WithFilePath, WithBytes): exactly one of WithFilePath, WithReader or WithBytes must be provided",
			wantValue: "WithFilePath, WithBytes",
		},
		{
			name:    "no sources at all",
			wantErr: "configuration error for input: exactly one of nothing must be provided",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ExactlyOne("input", tt.sources...)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.EqualError(t, err, tt.wantErr)
			assert.True(t, errors.Is(err, rcerrors.ErrConfig))

			var cfgErr *rcerrors.ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.wantValue, cfgErr.Value)
		})
	}
}
