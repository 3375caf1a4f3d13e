package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScreen(t *testing.T) {
	tests := []struct {
		in   string
		want Screen
	}{
		{"splash", ScreenSplash},
		{"onboarding2", ScreenOnboarding2},
		{"video-call", ScreenVideoCall},
		{"settings", ScreenSettings},
		{"", ScreenSplash},
		{"videocall", ScreenSplash},
		{"Dashboard", ScreenSplash},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseScreen(tt.in))
		})
	}
}

func TestScreens_AllValidAndCopied(t *testing.T) {
	all := Screens()
	require.Len(t, all, 13)
	assert.Equal(t, ScreenSplash, all[0])
	assert.Equal(t, ScreenVideoCall, all[len(all)-1])
	for _, s := range all {
		assert.True(t, s.Valid(), s)
	}

	all[0] = "mutated"
	assert.Equal(t, ScreenSplash, Screens()[0])
}

func TestScreen_Normalize(t *testing.T) {
	assert.Equal(t, ScreenChat, ScreenChat.Normalize())
	assert.Equal(t, ScreenSplash, Screen("nowhere").Normalize())
}
