package server

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestMapEnvToGinMode(t *testing.T) {
	tests := []struct {
		env  string
		want string
	}{
		{"production", gin.ReleaseMode},
		{"prod", gin.ReleaseMode},
		{"release", gin.ReleaseMode},
		{"test", gin.TestMode},
		{"testing", gin.TestMode},
		{"development", gin.DebugMode},
		{"debug", gin.DebugMode},
		{"", gin.DebugMode},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			assert.Equal(t, tt.want, mapEnvToGinMode(tt.env))
		})
	}
}

func TestNewCommandFlags(t *testing.T) {
	cmd := NewCommand()
	assert.Equal(t, "server", cmd.Use)
	assert.NotNil(t, cmd.Flags().Lookup("env"))
	assert.NotNil(t, cmd.Flags().Lookup("config-dir"))
}
