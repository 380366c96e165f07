package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandleMCP_Args(t *testing.T) {
	assert.NoError(t, HandleMCP([]string{"--help"}))
	assert.Error(t, HandleMCP([]string{"extra"}))
	assert.Error(t, HandleMCP([]string{"-unknown"}))
}
