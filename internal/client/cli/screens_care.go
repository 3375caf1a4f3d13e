package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/saludconecta/internal/client/client"
	"github.com/dmitrijs2005/saludconecta/internal/client/models"
	"github.com/dmitrijs2005/saludconecta/internal/client/services"
	"github.com/dmitrijs2005/saludconecta/internal/client/state"
)

// doctorReply is the canned answer the demo doctor sends after each
// message.
const doctorReply = "Gracias por la información. Es probable que sea fatiga visual. Te recomiendo tomar descansos cada 20 minutos y mantener una buena postura."

func chatScreen() *screen {
	return &screen{
		title: "Dr. Carlos Ruiz",
		enter: func(a *App) {
			a.view.loading = true
			a.spawn(state.KindChat, func(ctx context.Context, _ state.Ticket) func() {
				msgs, err := a.care.Messages(ctx, client.DefaultChatID)
				return func() {
					a.view.loading = false
					if err != nil {
						a.toast("Could not load messages: " + describe(err))
						return
					}
					a.view.messages = msgs
					a.render()
				}
			})
		},
		render: func(a *App, b *strings.Builder) {
			if a.view.loading {
				line(b, "%s", styles.muted.Render("Loading..."))
				return
			}
			for _, m := range a.view.messages {
				renderMessage(b, m)
			}
		},
		commands: map[string]command{
			"send": {usage: "send <text>", run: (*App).sendMessage},
			"call": {run: func(a *App, _ []string) {
				if a.store.Call().Active {
					a.store.SetScreen(models.ScreenVideoCall)
					return
				}
				a.println("No call in progress")
			}},
			"back": goTo(models.ScreenDashboard),
		},
	}
}

func renderMessage(b *strings.Builder, m models.ChatMessage) {
	line(b, "%s %s: %s", styles.muted.Render(m.Timestamp.Format("15:04")), m.SenderName, m.Message)
}

// sendMessage sends text and appends it once the collaborator accepted it.
// Every send applies its own result.
func (a *App) sendMessage(args []string) {
	text := strings.TrimSpace(strings.Join(args, " "))
	if text == "" {
		a.usage(a.screens[models.ScreenChat].commands["send"])
		return
	}
	u := a.store.User()
	if u == nil {
		a.println("Not signed in")
		return
	}

	screenCtx := a.screenCtx
	a.spawn("", func(ctx context.Context, _ state.Ticket) func() {
		msg, err := a.care.Send(ctx, client.DefaultChatID, *u, text)
		return func() {
			if err != nil {
				a.toast("Message not sent: " + describe(err))
				return
			}
			a.view.messages = append(a.view.messages, *msg)
			var b strings.Builder
			renderMessage(&b, *msg)
			fmt.Fprint(a.out, b.String())

			a.after(2*a.config.MockLatency, func() {
				if screenCtx.Err() != nil {
					return
				}
				reply := models.ChatMessage{
					SenderID:   client.DefaultChatID,
					SenderName: "Dr. Carlos Ruiz",
					Message:    doctorReply,
					Timestamp:  a.now(),
					Type:       models.MessageText,
				}
				a.view.messages = append(a.view.messages, reply)
				var b strings.Builder
				renderMessage(&b, reply)
				fmt.Fprint(a.out, b.String())
			})
		}
	})
}

func calendarScreen() *screen {
	return &screen{
		title: "Agendar cita",
		render: func(_ *App, b *strings.Builder) {
			section(b, "Doctors")
			for _, d := range services.Doctors {
				line(b, "  %-4s %s", d.ID, d.Name)
			}
			line(b, "Types: video, chat, in-person")
		},
		commands: map[string]command{
			"book": {usage: "book <YYYY-MM-DD> <HH:MM> [video|chat|in-person] [doctor]", run: (*App).book},
			"back": goTo(models.ScreenDashboard),
		},
	}
}

func (a *App) book(args []string) {
	if len(args) < 2 {
		a.usage(a.screens[models.ScreenCalendar].commands["book"])
		return
	}
	u := a.store.User()
	if u == nil {
		a.println("Not signed in")
		return
	}
	b := services.Booking{PatientID: u.ID, Date: args[0], Time: args[1]}
	if len(args) > 2 {
		b.Type = models.AppointmentType(args[2])
	}
	if len(args) > 3 {
		b.DoctorID = strings.Join(args[3:], " ")
	}

	a.println("Booking...")
	a.spawn(state.KindAppointments, func(ctx context.Context, _ state.Ticket) func() {
		ap, err := a.care.Book(ctx, b)
		return func() {
			if err != nil {
				a.toast("Appointment not booked: " + describe(err))
				return
			}
			a.store.AddNotification(models.NotificationInput{
				Title:    "Cita programada",
				Message:  fmt.Sprintf("Tu cita con %s es el %s a las %s", ap.DoctorName, ap.Date, ap.Time),
				Severity: models.SeveritySuccess,
			})
			a.rec.RecordNotification(string(models.SeveritySuccess))
			a.toast("Appointment booked: " + ap.ID)
		}
	})
}

func resourcesScreen() *screen {
	return &screen{
		title: "Recursos",
		enter: func(a *App) { a.loadResources("") },
		render: func(a *App, b *strings.Builder) {
			if a.view.loading {
				line(b, "%s", styles.muted.Render("Loading..."))
				return
			}
			if a.view.category != "" {
				line(b, "%s", styles.muted.Render("Category: "+string(a.view.category)))
			}
			if len(a.view.resources) == 0 {
				line(b, "%s", styles.muted.Render("No resources"))
			}
			for _, r := range a.view.resources {
				line(b, "  [%s] %s (%s)", r.ID, r.Title, r.Category)
				line(b, "      %s", styles.muted.Render(r.Description))
			}
		},
		commands: map[string]command{
			"show":   {usage: "show <id>", run: (*App).showResource},
			"filter": {usage: "filter article|video|tip|emergency|all", run: (*App).filterResources},
			"back":   goTo(models.ScreenDashboard),
		},
	}
}

func (a *App) loadResources(category models.ResourceCategory) {
	a.view.loading = true
	a.view.category = category
	a.spawn(state.KindResources, func(ctx context.Context, _ state.Ticket) func() {
		res, err := a.care.FilterResources(ctx, category)
		return func() {
			a.view.loading = false
			if err != nil {
				a.toast("Could not load resources: " + describe(err))
				res = nil
			}
			a.view.resources = res
			a.render()
		}
	})
}

func (a *App) filterResources(args []string) {
	if len(args) != 1 {
		a.usage(a.screens[models.ScreenResources].commands["filter"])
		return
	}
	if args[0] == "all" {
		a.loadResources("")
		return
	}
	c, err := models.ParseResourceCategory(args[0])
	if err != nil {
		a.println(err.Error())
		return
	}
	a.loadResources(c)
}

func (a *App) showResource(args []string) {
	if len(args) != 1 {
		a.usage(a.screens[models.ScreenResources].commands["show"])
		return
	}
	for _, r := range a.view.resources {
		if r.ID != args[0] {
			continue
		}
		var b strings.Builder
		section(&b, r.Title)
		line(&b, "%s", r.Content)
		if r.ReadTime > 0 {
			line(&b, "%s", styles.muted.Render(fmt.Sprintf("%d min read, %s", r.ReadTime, r.PublishDate)))
		}
		if r.VideoURL != "" {
			line(&b, "Video: %s", r.VideoURL)
		}
		fmt.Fprint(a.out, b.String())
		return
	}
	a.println("Unknown resource: " + args[0])
}
