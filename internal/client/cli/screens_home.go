package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/saludconecta/internal/client/models"
	"github.com/dmitrijs2005/saludconecta/internal/client/state"
)

func dashboardScreen() *screen {
	return &screen{
		title: "Inicio",
		enter: (*App).loadAppointments,
		render: func(a *App, b *strings.Builder) {
			name := "there"
			if u := a.store.User(); u != nil && u.Name != "" {
				name = strings.Fields(u.Name)[0]
			}
			line(b, "Hello, %s!", name)
			if n := a.store.UnreadCount(); n > 0 {
				line(b, "%s", styles.badge.Render(fmt.Sprintf("🔔 %s unread notifications (type 'inbox')", state.UnreadBadge(n))))
			}
			if c := a.store.Call(); c.Active {
				line(b, "%s", styles.toast.Render("Call in progress: "+c.AppointmentID+" (type 'call' to return)"))
			}

			section(b, "Upcoming appointments")
			switch {
			case a.view.loading:
				line(b, "%s", styles.muted.Render("  Loading..."))
			case len(a.view.appointments) == 0:
				line(b, "%s", styles.muted.Render("  No appointments"))
			default:
				for _, ap := range a.view.appointments {
					renderAppointment(b, ap)
				}
			}

			section(b, "Quick actions")
			line(b, "  video      Videoconsulta")
			line(b, "  calendar   Agendar cita")
			line(b, "  chat       Chat médico")
			line(b, "  resources  Recursos")
		},
		commands: map[string]command{
			"video": {run: func(a *App, _ []string) {
				a.openCall(fmt.Sprintf("demo-call-%d", a.now().UnixMilli()))
			}},
			"join": {usage: "join <appointment-id>", run: (*App).joinAppointment},
			"call": {run: func(a *App, _ []string) {
				if !a.store.Call().Active {
					a.println("No call in progress")
					return
				}
				a.store.SetScreen(models.ScreenVideoCall)
			}},
			"refresh":   {run: func(a *App, _ []string) { a.loadAppointments() }},
			"calendar":  goTo(models.ScreenCalendar),
			"chat":      goTo(models.ScreenChat),
			"resources": goTo(models.ScreenResources),
			"profile":   goTo(models.ScreenProfile),
			"settings":  goTo(models.ScreenSettings),
		},
	}
}

// loadAppointments fetches the user's appointments. A failure shows an
// empty list.
func (a *App) loadAppointments() {
	u := a.store.User()
	if u == nil {
		return
	}
	a.view.loading = true
	a.spawn(state.KindAppointments, func(ctx context.Context, _ state.Ticket) func() {
		list, err := a.care.Appointments(ctx, u.ID)
		return func() {
			a.view.loading = false
			if err != nil {
				a.log.Warn(a.ctx, "appointments not loaded", "error", err)
				a.toast("Could not load appointments")
				list = nil
			}
			a.view.appointments = list
			a.render()
		}
	})
}

func (a *App) joinAppointment(args []string) {
	if len(args) != 1 {
		a.usage(a.screens[models.ScreenDashboard].commands["join"])
		return
	}
	for _, ap := range a.view.appointments {
		if ap.ID != args[0] {
			continue
		}
		if ap.Type != models.AppointmentVideo {
			a.println(fmt.Sprintf("Appointment %s is not a video consultation", ap.ID))
			return
		}
		a.openCall(ap.ID)
		return
	}
	a.println("Unknown appointment: " + args[0])
}

func profileScreen() *screen {
	return &screen{
		title: "Mi perfil",
		render: func(a *App, b *strings.Builder) {
			u := a.store.User()
			if u == nil {
				line(b, "%s", styles.muted.Render("Not signed in"))
				return
			}
			line(b, "  Name:       %s", u.Name)
			line(b, "  Email:      %s", u.Email)
			line(b, "  Phone:      %s", u.Phone)
			line(b, "  Birth date: %s", u.BirthDate)
			line(b, "  Avatar:     %s", u.Avatar)
			if len(u.MedicalHistory) > 0 {
				line(b, "  History:    %s", strings.Join(u.MedicalHistory, ", "))
			}
			if ec := u.EmergencyContact; ec != nil {
				line(b, "  Emergency:  %s %s", ec.Name, ec.Phone)
			}
		},
		commands: map[string]command{
			"edit":     {usage: "edit name|email|phone|birthdate|history|emergency <value>", run: (*App).editProfile},
			"avatar":   {usage: "avatar <image-file>", run: (*App).uploadAvatar},
			"back":     goTo(models.ScreenDashboard),
			"settings": goTo(models.ScreenSettings),
		},
	}
}

// parsePatch builds a one-field patch. history takes a comma separated
// list; emergency takes "<name>, <phone>".
func parsePatch(field, value string) (models.UserPatch, error) {
	var p models.UserPatch
	switch strings.ToLower(field) {
	case "name":
		p.Name = &value
	case "email":
		p.Email = &value
	case "phone":
		p.Phone = &value
	case "birthdate":
		p.BirthDate = &value
	case "history":
		items := []string{}
		for _, s := range strings.Split(value, ",") {
			if s = strings.TrimSpace(s); s != "" {
				items = append(items, s)
			}
		}
		p.MedicalHistory = items
	case "emergency":
		name, phone, ok := strings.Cut(value, ",")
		if !ok {
			return p, fmt.Errorf("emergency contact must be '<name>, <phone>'")
		}
		p.EmergencyContact = &models.EmergencyContact{Name: strings.TrimSpace(name), Phone: strings.TrimSpace(phone)}
	default:
		return p, fmt.Errorf("unknown field %q", field)
	}
	return p, nil
}

func (a *App) editProfile(args []string) {
	if len(args) < 2 {
		a.usage(a.screens[models.ScreenProfile].commands["edit"])
		return
	}
	u := a.store.User()
	if u == nil {
		a.println("Not signed in")
		return
	}
	patch, err := parsePatch(args[0], strings.Join(args[1:], " "))
	if err != nil {
		a.println(err.Error())
		return
	}

	a.println("Saving...")
	// Patches add up; a later edit must not drop an earlier one.
	a.spawn("", func(ctx context.Context, _ state.Ticket) func() {
		_, err := a.auth.UpdateProfile(ctx, *u, patch)
		return func() {
			if err != nil {
				a.toast("Profile not updated: " + describe(err))
				return
			}
			if err := a.store.UpdateUser(patch); err != nil {
				a.log.Warn(a.ctx, "profile update not applied", "error", err)
				return
			}
			a.toast("Profile updated")
			a.render()
		}
	})
}

func (a *App) uploadAvatar(args []string) {
	if len(args) != 1 {
		a.usage(a.screens[models.ScreenProfile].commands["avatar"])
		return
	}
	u := a.store.User()
	if u == nil {
		a.println("Not signed in")
		return
	}

	a.println("Uploading...")
	a.spawn("", func(ctx context.Context, _ state.Ticket) func() {
		updated, err := a.avatars.Upload(ctx, *u, args[0])
		return func() {
			if err != nil {
				a.toast("Avatar not uploaded: " + describe(err))
				return
			}
			avatar := updated.Avatar
			if err := a.store.UpdateUser(models.UserPatch{Avatar: &avatar}); err != nil {
				a.log.Warn(a.ctx, "avatar not applied", "error", err)
				return
			}
			a.toast("Avatar updated")
			a.render()
		}
	})
}

func settingsScreen() *screen {
	return &screen{
		title: "Configuración",
		render: func(a *App, b *strings.Builder) {
			status := "off"
			if a.notifier != nil && a.notifier.Enabled() {
				status = "on"
			}
			section(b, "Notificaciones")
			line(b, "  Push notifications: %s", status)
			section(b, "Cuenta")
			line(b, "  profile  Información personal")
			line(b, "  logout   Cerrar sesión")
		},
		commands: map[string]command{
			"notifications": {usage: "notifications on|off", run: (*App).setNotifications},
			"logout":        {run: (*App).logout},
			"reset":         {run: (*App).resetLocalData},
			"profile":       goTo(models.ScreenProfile),
			"back":          goTo(models.ScreenDashboard),
		},
	}
}

func (a *App) setNotifications(args []string) {
	if len(args) != 1 || (args[0] != "on" && args[0] != "off") {
		a.usage(a.screens[models.ScreenSettings].commands["notifications"])
		return
	}
	on := args[0] == "on"
	if a.notifier != nil {
		a.notifier.SetEnabled(on)
	}
	if a.sessions != nil {
		if err := a.sessions.SetNotificationsEnabled(a.ctx, on); err != nil {
			a.log.Warn(a.ctx, "notification preference not saved", "error", err)
		}
	}
	a.toast("Notifications " + args[0])
}

// logout signs out locally once the collaborator has been told, and goes
// back to the splash screen.
func (a *App) logout(_ []string) {
	a.println("Signing out...")
	callID := ""
	if c := a.store.Call(); c.Active {
		callID = c.AppointmentID
	}
	a.spawn(state.KindAuth, func(ctx context.Context, t state.Ticket) func() {
		var leaveErr error
		if callID != "" {
			leaveErr = a.calls.Leave(ctx, callID)
		}
		err := a.auth.Logout(ctx)
		return func() {
			if leaveErr != nil {
				a.log.Warn(a.ctx, "call not ended on logout", "appointment", callID, "error", leaveErr)
			}
			if err != nil {
				a.log.Warn(a.ctx, "logout reported an error", "error", err)
			}
			if err := a.store.SignOut(t); err != nil {
				a.log.Warn(a.ctx, "sign out rejected", "error", err)
				return
			}
			if callID != "" {
				a.rec.RecordCall("ended")
			}
			a.call = callView{}
			a.store.EndCall()
			a.store.SetScreen(models.ScreenSplash)
		}
	})
}

// resetLocalData forgets the persisted session and preferences.
func (a *App) resetLocalData(_ []string) {
	if a.sessions == nil {
		return
	}
	if err := a.sessions.Reset(a.ctx); err != nil {
		a.toast("Local data not cleared: " + describe(err))
		return
	}
	a.toast("Local data cleared")
}
