package cli

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/saludconecta/internal/client/models"
	"github.com/dmitrijs2005/saludconecta/internal/client/state"
)

// openCall marks the call active for appointmentID and shows the call
// screen, which then initializes the connection.
func (a *App) openCall(appointmentID string) {
	if c := a.store.Call(); c.Active {
		a.println("Call in progress: " + c.AppointmentID + " (type 'call' to return and 'end' to hang up)")
		return
	}
	if err := a.store.StartCall(appointmentID); err != nil {
		a.println("Could not start the call: " + err.Error())
		return
	}
	a.store.SetScreen(models.ScreenVideoCall)
}

func videoCallScreen() *screen {
	return &screen{
		title: "Videoconsulta",
		enter: (*App).connectCall,
		render: func(a *App, b *strings.Builder) {
			c := a.store.Call()
			line(b, "Appointment: %s", c.AppointmentID)
			if a.call.grant == nil {
				line(b, "%s", styles.muted.Render("Connecting..."))
				return
			}
			line(b, "%s %s", styles.toast.Render("Connected"), formatDuration(a.now().Sub(a.call.connectedAt)))
			line(b, "Room: %s", a.call.grant.URL)
			mic, cam := "on", "on"
			if a.call.muted {
				mic = "muted"
			}
			if a.call.cameraOff {
				cam = "off"
			}
			line(b, "Microphone: %s  Camera: %s", mic, cam)
		},
		commands: map[string]command{
			"mute": {run: func(a *App, _ []string) {
				a.call.muted = !a.call.muted
				if a.call.muted {
					a.toast("Microphone muted")
				} else {
					a.toast("Microphone on")
				}
			}},
			"camera": {run: func(a *App, _ []string) {
				a.call.cameraOff = !a.call.cameraOff
				if a.call.cameraOff {
					a.toast("Camera off")
				} else {
					a.toast("Camera on")
				}
			}},
			"status": {run: func(a *App, _ []string) { a.render() }},
			"chat": {run: func(a *App, _ []string) {
				a.toast("Opening chat during the consultation")
				a.store.SetScreen(models.ScreenChat)
			}},
			"end": {run: (*App).endCall},
		},
	}
}

// connectCall initializes the active call. Returning to a call that is
// already connected keeps its grant and duration.
func (a *App) connectCall() {
	c := a.store.Call()
	if !c.Active {
		a.store.SetScreen(models.ScreenDashboard)
		return
	}
	if a.call.appointmentID == c.AppointmentID && a.call.grant != nil {
		return
	}
	a.call = callView{appointmentID: c.AppointmentID}

	id := c.AppointmentID
	a.spawn(state.KindCall, func(ctx context.Context, _ state.Ticket) func() {
		g, err := a.calls.Join(ctx, id)
		return func() {
			if err != nil {
				a.log.Warn(a.ctx, "call not initialized", "appointment", id, "error", err)
				a.rec.RecordCall("failed")
				a.call = callView{}
				a.store.EndCall()
				a.toast("Could not start the call: " + describe(err))
				a.store.SetScreen(models.ScreenDashboard)
				return
			}
			a.call.grant = g
			a.call.connectedAt = a.now()
			a.rec.RecordCall("started")
			a.render()
		}
	})
}

// endCall tells the video collaborator and, once it agreed, clears the
// call and returns to the dashboard.
func (a *App) endCall(_ []string) {
	id := a.store.Call().AppointmentID
	a.spawn(state.KindCall, func(ctx context.Context, _ state.Ticket) func() {
		var err error
		if id != "" {
			err = a.calls.Leave(ctx, id)
		}
		return func() {
			if err != nil {
				a.toast("Could not end the call: " + describe(err))
				return
			}
			a.call = callView{}
			a.store.EndCall()
			a.rec.RecordCall("ended")
			a.toast("Call ended")
			a.store.SetScreen(models.ScreenDashboard)
		}
	})
}
