package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/saludconecta/internal/client/client"
	"github.com/dmitrijs2005/saludconecta/internal/client/forms"
	"github.com/dmitrijs2005/saludconecta/internal/client/models"
	"github.com/dmitrijs2005/saludconecta/internal/client/state"
)

// hydrate restores the persisted session. The loading phase ends whatever
// the outcome.
func (a *App) hydrate() {
	a.spawnIn(a.ctx, state.KindSession, func(ctx context.Context, _ state.Ticket) func() {
		u, err := a.auth.Restore(ctx)
		return func() {
			if err != nil {
				a.log.Warn(a.ctx, "session not restored", "error", err)
				u = nil
			}
			a.store.FinishHydration(u)
		}
	})
}

func splashScreen() *screen {
	return &screen{
		title: "SaludConecta",
		enter: func(a *App) {
			a.splashElapsed = false
			a.after(a.config.SplashDelay, func() {
				if a.store.Screen() != models.ScreenSplash {
					return
				}
				a.splashElapsed = true
				a.maybeLeaveSplash()
			})
		},
		render: func(a *App, b *strings.Builder) {
			line(b, "%s", styles.subtitle.Render("Tu salud, conectada"))
			if a.store.Phase() == state.PhaseLoading {
				line(b, "%s", styles.muted.Render("Loading..."))
			}
		},
		commands: map[string]command{
			"skip": {run: func(a *App, _ []string) {
				if a.store.Phase() != state.PhaseReady {
					a.println("Still loading, one moment")
					return
				}
				a.splashElapsed = true
				a.maybeLeaveSplash()
			}},
		},
	}
}

// maybeLeaveSplash advances once the splash delay has elapsed and the
// session is known: to the dashboard for a restored session, otherwise to
// onboarding.
func (a *App) maybeLeaveSplash() {
	if a.store.Screen() != models.ScreenSplash || !a.splashElapsed || a.store.Phase() != state.PhaseReady {
		return
	}
	if a.store.IsAuthenticated() {
		a.store.SetScreen(models.ScreenDashboard)
		return
	}
	a.store.SetScreen(models.ScreenOnboarding1)
}

type onboardingPage struct {
	screen      models.Screen
	title       string
	subtitle    string
	description string
	next        models.Screen
	prev        models.Screen
}

var onboardingPages = []onboardingPage{
	{
		screen:      models.ScreenOnboarding1,
		title:       "Consultas médicas",
		subtitle:    "desde casa",
		description: "Conecta con especialistas certificados desde la comodidad de tu hogar, 24/7.",
		next:        models.ScreenOnboarding2,
	},
	{
		screen:      models.ScreenOnboarding2,
		title:       "Agenda tu cita",
		subtitle:    "en segundos",
		description: "Programa consultas de manera rápida y sencilla con médicos disponibles en tu zona.",
		next:        models.ScreenOnboarding3,
		prev:        models.ScreenOnboarding1,
	},
	{
		screen:      models.ScreenOnboarding3,
		title:       "Cuidado personalizado",
		subtitle:    "para ti",
		description: "Recibe atención médica adaptada a tus necesidades y historial clínico personal.",
		next:        models.ScreenRegister,
		prev:        models.ScreenOnboarding2,
	},
}

func onboardingScreen(i int) *screen {
	p := onboardingPages[i]
	cmds := map[string]command{
		"next":  goTo(p.next),
		"skip":  goTo(models.ScreenRegister),
		"login": goTo(models.ScreenLogin),
	}
	if p.prev != "" {
		cmds["back"] = goTo(p.prev)
	}
	return &screen{
		title: p.title + " " + p.subtitle,
		render: func(_ *App, b *strings.Builder) {
			line(b, "%s", p.description)
			dots := make([]string, len(onboardingPages))
			for j := range onboardingPages {
				dots[j] = "○"
				if j == i {
					dots[j] = "●"
				}
			}
			line(b, "%s", styles.muted.Render(strings.Join(dots, " ")))
		},
		commands: cmds,
	}
}

func registerScreen() *screen {
	return &screen{
		title: "Crear cuenta",
		render: func(_ *App, b *strings.Builder) {
			line(b, "Type 'register' to fill in your details.")
		},
		commands: map[string]command{
			"register": {run: func(a *App, _ []string) {
				a.openForm(a.submitRegister,
					formField{name: forms.FieldName, label: "Full name"},
					formField{name: forms.FieldEmail, label: "Email"},
					formField{name: forms.FieldPassword, label: "Password", secret: true},
					formField{name: forms.FieldConfirmPassword, label: "Confirm password", secret: true},
				)
			}},
			"login": goTo(models.ScreenLogin),
			"back":  goTo(models.ScreenOnboarding3),
		},
	}
}

func loginScreen() *screen {
	return &screen{
		title: "Iniciar sesión",
		render: func(_ *App, b *strings.Builder) {
			line(b, "Type 'login' to sign in or 'forgot' to recover your password.")
		},
		commands: map[string]command{
			"login": {run: func(a *App, _ []string) {
				a.openForm(a.submitLogin,
					formField{name: forms.FieldEmail, label: "Email"},
					formField{name: forms.FieldPassword, label: "Password", secret: true},
				)
			}},
			"forgot": {run: func(a *App, _ []string) {
				a.openForm(a.submitForgot, formField{name: forms.FieldEmail, label: "Email"})
			}},
			"register": goTo(models.ScreenRegister),
			"back":     goTo(models.ScreenRegister),
		},
	}
}

// signedIn is the apply step shared by login and registration. The store
// is only touched on success.
func (a *App) signedIn(t state.Ticket, u *models.User, err error, failure string) {
	if err != nil {
		a.toast(failure + ": " + describe(err))
		return
	}
	if err := a.store.SignIn(t, u); err != nil {
		a.log.Warn(a.ctx, "sign in rejected", "ticket", t.String(), "error", err)
		a.toast(failure)
		return
	}
	a.toast("Welcome, " + u.Name)
	a.store.SetScreen(models.ScreenDashboard)
}

func (a *App) submitLogin(v map[string]string) {
	email, password := strings.TrimSpace(v[forms.FieldEmail]), v[forms.FieldPassword]
	if fe := forms.ValidateLogin(email, password); len(fe) > 0 {
		a.renderFieldErrors(fe)
		return
	}

	a.println("Signing in...")
	a.spawn(state.KindAuth, func(ctx context.Context, t state.Ticket) func() {
		u, err := a.auth.Login(ctx, email, password)
		return func() { a.signedIn(t, u, err, "Login failed") }
	})
}

func (a *App) submitRegister(v map[string]string) {
	name := strings.TrimSpace(v[forms.FieldName])
	email := strings.TrimSpace(v[forms.FieldEmail])
	password, confirm := v[forms.FieldPassword], v[forms.FieldConfirmPassword]
	if fe := forms.ValidateRegister(name, email, password, confirm); len(fe) > 0 {
		a.renderFieldErrors(fe)
		return
	}

	a.println("Creating account...")
	a.spawn(state.KindAuth, func(ctx context.Context, t state.Ticket) func() {
		u, err := a.auth.Register(ctx, email, password, name)
		return func() { a.signedIn(t, u, err, "Registration failed") }
	})
}

func (a *App) submitForgot(v map[string]string) {
	email := strings.TrimSpace(v[forms.FieldEmail])
	if msg := forms.ValidateEmail(email); msg != "" {
		a.renderFieldErrors(map[string]string{forms.FieldEmail: msg})
		return
	}

	// Recovery does not replace a pending login, so it takes no ticket.
	a.spawn("", func(ctx context.Context, _ state.Ticket) func() {
		msg, err := a.auth.ForgotPassword(ctx, email)
		return func() {
			if err != nil {
				a.toast("Could not send the recovery email: " + describe(err))
				return
			}
			a.toast(msg)
		}
	})
}

// describe turns a collaborator error into a short user-facing reason.
func describe(err error) string {
	switch {
	case errors.Is(err, client.ErrInvalidCredentials):
		return "invalid email or password"
	case errors.Is(err, client.ErrAccountExists):
		return "an account with this email already exists"
	case errors.Is(err, client.ErrUnavailable):
		return "service unavailable, try again later"
	case errors.Is(err, client.ErrPermissionDenied):
		return "permission denied"
	case errors.Is(err, client.ErrNotFound):
		return "not found"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "request cancelled"
	default:
		return err.Error()
	}
}
