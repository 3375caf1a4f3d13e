package state

import (
	"testing"

	"github.com/dmitrijs2005/saludconecta/internal/client/models"
	"github.com/stretchr/testify/assert"
)

func TestNavigation_StartsOnSplash(t *testing.T) {
	assert.Equal(t, models.ScreenSplash, NewStore().Screen())
}

func TestNavigation_SetThenReadEveryScreen(t *testing.T) {
	s := NewStore()
	for _, scr := range models.Screens() {
		s.SetScreen(scr)
		assert.Equal(t, scr, s.Screen())
	}
}

func TestNavigation_LastWriteWins(t *testing.T) {
	s := NewStore()
	s.SetScreen(models.ScreenLogin)
	s.SetScreen(models.ScreenDashboard)
	assert.Equal(t, models.ScreenDashboard, s.Screen())
}

func TestNavigation_UnknownTagFallsBackToSplash(t *testing.T) {
	s := NewStore()
	s.SetScreen(models.ScreenChat)
	s.SetScreen(models.Screen("billing"))
	assert.Equal(t, models.ScreenSplash, s.Screen())
}

func TestNavigation_PublishesOnlyOnChange(t *testing.T) {
	s := NewStore()
	var got []Change
	unsub := s.Subscribe(func(c Change) { got = append(got, c) })

	s.SetScreen(models.ScreenLogin)
	s.SetScreen(models.ScreenLogin)
	s.SetScreen(models.ScreenDashboard)
	unsub()
	s.SetScreen(models.ScreenChat)

	assert.Equal(t, []Change{ChangeScreen, ChangeScreen}, got)
}
