package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/poiesic/resound/ai"
)

func newSetupApp() *cli.App {
	return &cli.App{
		Name: "test",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Value:   "info",
			},
		},
		Before: setup,
		Action: func(c *cli.Context) error {
			return nil
		},
	}
}

func TestSetup(t *testing.T) {
	t.Run("valid log levels", func(t *testing.T) {
		for _, level := range []string{"debug", "info", "warn", "error", "DEBUG", "WaRn"} {
			t.Run(level, func(t *testing.T) {
				err := newSetupApp().Run([]string{"test", "--log-level", level})
				require.NoError(t, err)
			})
		}
	})

	t.Run("invalid log level returns error", func(t *testing.T) {
		err := newSetupApp().Run([]string{"test", "--log-level", "loud"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
	})
}

func TestContentTypeForFile(t *testing.T) {
	cases := []struct {
		path string
		want string
	}{
		{"walk.mp3", "audio/mpeg"},
		{"walk.MP3", "audio/mpeg"},
		{"note.wav", "audio/wav"},
		{"voice.m4a", "audio/mp4"},
		{"talk.ogg", "audio/ogg"},
		{"master.flac", "audio/flac"},
		{"mystery.bin", "application/octet-stream"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, contentTypeForFile(tc.path), tc.path)
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("DEEPGRAM_API_KEY", "test-key")
	t.Setenv("RESOUND_CHAT_HOST", "http://chat.local")
	t.Setenv("RESOUND_CHAT_MODEL", "test-model")

	config := configFromEnv()
	assert.Equal(t, "test-key", config.TranscriptionKey)
	assert.Equal(t, "http://chat.local", config.ChatHost)
	assert.Equal(t, "test-model", config.ChatModel)

	// Unset variables keep defaults
	defaults := ai.DefaultConfig()
	assert.Equal(t, defaults.TranscriptionHost, config.TranscriptionHost)
	assert.Equal(t, defaults.ChatToken, config.ChatToken)
}
