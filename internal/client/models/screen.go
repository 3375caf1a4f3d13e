// Package models defines the client-side data models of SaludConecta:
// screens, the signed-in user, notifications, the call session and the
// records returned by the collaborators.
package models

// Screen names one mutually exclusive view of the application.
type Screen string

const (
	ScreenSplash      Screen = "splash"
	ScreenOnboarding1 Screen = "onboarding1"
	ScreenOnboarding2 Screen = "onboarding2"
	ScreenOnboarding3 Screen = "onboarding3"
	ScreenRegister    Screen = "register"
	ScreenLogin       Screen = "login"
	ScreenDashboard   Screen = "dashboard"
	ScreenProfile     Screen = "profile"
	ScreenChat        Screen = "chat"
	ScreenCalendar    Screen = "calendar"
	ScreenResources   Screen = "resources"
	ScreenSettings    Screen = "settings"
	ScreenVideoCall   Screen = "video-call"
)

var screens = []Screen{
	ScreenSplash,
	ScreenOnboarding1,
	ScreenOnboarding2,
	ScreenOnboarding3,
	ScreenRegister,
	ScreenLogin,
	ScreenDashboard,
	ScreenProfile,
	ScreenChat,
	ScreenCalendar,
	ScreenResources,
	ScreenSettings,
	ScreenVideoCall,
}

// Screens returns every screen in declaration order.
func Screens() []Screen {
	out := make([]Screen, len(screens))
	copy(out, screens)
	return out
}

// Valid reports whether s is one of the enumerated screens.
func (s Screen) Valid() bool {
	for _, known := range screens {
		if s == known {
			return true
		}
	}
	return false
}

// ParseScreen converts a tag into a Screen. Unknown tags fall back to splash.
func ParseScreen(tag string) Screen {
	s := Screen(tag)
	if !s.Valid() {
		return ScreenSplash
	}
	return s
}

// Normalize returns s, or splash when s is not a known screen.
func (s Screen) Normalize() Screen {
	if !s.Valid() {
		return ScreenSplash
	}
	return s
}
