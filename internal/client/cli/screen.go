package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/saludconecta/internal/client/models"
)

// command is one word understood by a screen.
type command struct {
	usage string
	run   func(a *App, args []string)
}

// screen is a consumer of the store: render reads facets and the
// commands map input to mutators and tasks.
type screen struct {
	title    string
	enter    func(a *App)
	leave    func(a *App)
	render   func(a *App, b *strings.Builder)
	commands map[string]command
}

// view is the per-screen data loaded by tasks. It is reset on navigation.
type view struct {
	loading      bool
	appointments []models.Appointment
	messages     []models.ChatMessage
	resources    []models.Resource
	category     models.ResourceCategory
}

// callView is the terminal side of the active call.
type callView struct {
	appointmentID string
	grant         *models.CallGrant
	connectedAt   time.Time
	muted         bool
	cameraOff     bool
}

func screenSet() map[models.Screen]*screen {
	return map[models.Screen]*screen{
		models.ScreenSplash:      splashScreen(),
		models.ScreenOnboarding1: onboardingScreen(0),
		models.ScreenOnboarding2: onboardingScreen(1),
		models.ScreenOnboarding3: onboardingScreen(2),
		models.ScreenRegister:    registerScreen(),
		models.ScreenLogin:       loginScreen(),
		models.ScreenDashboard:   dashboardScreen(),
		models.ScreenProfile:     profileScreen(),
		models.ScreenChat:        chatScreen(),
		models.ScreenCalendar:    calendarScreen(),
		models.ScreenResources:   resourcesScreen(),
		models.ScreenSettings:    settingsScreen(),
		models.ScreenVideoCall:   videoCallScreen(),
	}
}

// goTo is a command that only navigates.
func goTo(s models.Screen) command {
	return command{run: func(a *App, _ []string) { a.store.SetScreen(s) }}
}

func (a *App) usage(c command) {
	a.println("Usage: " + c.usage)
}

// formField is one prompted value.
type formField struct {
	name   string
	label  string
	secret bool
}

// form collects several lines before submitting them. While a form is
// open every input line is a field value.
type form struct {
	fields []formField
	pos    int
	values map[string]string
	submit func(values map[string]string)
}

func (a *App) openForm(submit func(map[string]string), fields ...formField) {
	a.form = &form{fields: fields, values: make(map[string]string, len(fields)), submit: submit}
}

// accept stores line as the current field and reports whether the form is
// complete.
func (f *form) accept(line string) bool {
	f.values[f.fields[f.pos].name] = line
	f.pos++
	return f.pos == len(f.fields)
}

// globalCommands work on every screen.
var globalCommands map[string]command

func init() {
	globalCommands = map[string]command{
		"help":  {usage: "help", run: (*App).help},
		"inbox": {usage: "inbox", run: (*App).inbox},
		"read":  {usage: "read <id>|all", run: (*App).read},
		"clear": {usage: "clear", run: func(a *App, _ []string) { a.store.ClearAll(); a.println("Notifications cleared") }},
		"exit":  {usage: "exit", run: (*App).exit},
		"quit":  {usage: "quit", run: (*App).exit},
	}
}

func (a *App) help(_ []string) {
	sc := a.screens[a.store.Screen()]
	var b strings.Builder
	if len(sc.commands) > 0 {
		section(&b, sc.title)
		for _, name := range commandNames(sc.commands) {
			line(&b, "  %s", usageOf(name, sc.commands[name]))
		}
	}
	section(&b, "Anywhere")
	for _, name := range commandNames(globalCommands) {
		line(&b, "  %s", usageOf(name, globalCommands[name]))
	}
	fmt.Fprint(a.out, b.String())
}

func usageOf(name string, c command) string {
	if c.usage == "" {
		return name
	}
	return c.usage
}

func (a *App) inbox(_ []string) {
	feed := a.store.Notifications()
	if len(feed) == 0 {
		a.println("No notifications")
		return
	}
	var b strings.Builder
	section(&b, fmt.Sprintf("Notifications (%d unread)", a.store.UnreadCount()))
	now := a.now()
	for _, n := range feed {
		renderNotification(&b, n, now)
	}
	fmt.Fprint(a.out, b.String())
}

func (a *App) read(args []string) {
	if len(args) != 1 {
		a.usage(globalCommands["read"])
		return
	}
	if args[0] == "all" {
		for _, n := range a.store.Notifications() {
			a.store.MarkAsRead(n.ID)
		}
		return
	}
	a.store.MarkAsRead(args[0])
}

func (a *App) exit(_ []string) {
	a.println("Bye!")
	a.quit = true
}
