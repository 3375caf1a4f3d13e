package cli

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dmitrijs2005/saludconecta/internal/client/models"
	"github.com/dmitrijs2005/saludconecta/internal/client/state"
)

var (
	saludBlue  = lipgloss.Color("#2563EB")
	saludGreen = lipgloss.Color("#10B981")
	saludGray  = lipgloss.Color("#6B7280")
	saludRed   = lipgloss.Color("#EF4444")
	saludAmber = lipgloss.Color("#F59E0B")
)

var styles = struct {
	header   lipgloss.Style
	subtitle lipgloss.Style
	section  lipgloss.Style
	muted    lipgloss.Style
	prompt   lipgloss.Style
	badge    lipgloss.Style
	toast    lipgloss.Style
	fieldErr lipgloss.Style
	unread   lipgloss.Style
}{
	header: lipgloss.NewStyle().
		Bold(true).
		Foreground(saludBlue).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(saludBlue).
		Padding(0, 1),
	subtitle: lipgloss.NewStyle().Italic(true).Foreground(saludGray),
	section:  lipgloss.NewStyle().Bold(true).Underline(true),
	muted:    lipgloss.NewStyle().Foreground(saludGray),
	prompt:   lipgloss.NewStyle().Bold(true).Foreground(saludBlue),
	badge:    lipgloss.NewStyle().Bold(true).Foreground(saludRed),
	toast:    lipgloss.NewStyle().Foreground(saludGreen),
	fieldErr: lipgloss.NewStyle().Foreground(saludRed),
	unread:   lipgloss.NewStyle().Bold(true).Foreground(saludAmber),
}

// render prints the current screen.
func (a *App) render() {
	sc := a.screens[a.store.Screen()]
	var b strings.Builder
	b.WriteString(styles.header.Render(sc.title))
	b.WriteString("\n")
	if sc.render != nil {
		sc.render(a, &b)
	}
	if len(sc.commands) > 0 {
		b.WriteString(styles.muted.Render("Commands: " + strings.Join(commandNames(sc.commands), ", ")))
		b.WriteString("\n")
	}
	fmt.Fprint(a.out, b.String())
}

func commandNames(cmds map[string]command) []string {
	names := make([]string, 0, len(cmds))
	for name := range cmds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func section(b *strings.Builder, title string) {
	b.WriteString(styles.section.Render(title))
	b.WriteString("\n")
}

func line(b *strings.Builder, format string, args ...any) {
	fmt.Fprintf(b, format, args...)
	b.WriteString("\n")
}

// renderFieldErrors prints one line per invalid field.
func (a *App) renderFieldErrors(fe map[string]string) {
	keys := make([]string, 0, len(fe))
	for k := range fe {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		a.println(styles.fieldErr.Render(fmt.Sprintf("  %s: %s", k, fe[k])))
	}
}

func renderAppointment(b *strings.Builder, ap models.Appointment) {
	line(b, "  [%s] %s %s  %s (%s, %s)", ap.ID, ap.Date, ap.Time, ap.DoctorName, ap.Type, ap.Status)
}

func renderNotification(b *strings.Builder, n models.Notification, now time.Time) {
	mark := " "
	title := n.Title
	if !n.Read {
		mark = "•"
		title = styles.unread.Render(title)
	}
	line(b, "%s %s %s  %s %s", mark, n.ID, title, n.Message, styles.muted.Render("("+state.FormatAge(n.CreatedAt, now)+")"))
}

// formatDuration renders d as mm:ss.
func formatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
