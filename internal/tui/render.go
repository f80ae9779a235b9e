package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/cleanco/cleanco/internal/booking"
	"github.com/cleanco/cleanco/internal/catalog"
	"github.com/cleanco/cleanco/internal/database/repository"
	"github.com/cleanco/cleanco/internal/pricing"
	"github.com/cleanco/cleanco/internal/service"
)

type bookingRow struct {
	ref      string
	when     string
	service  string
	customer string
	total    pricing.Amount
}

func toRows(list []repository.Booking) []bookingRow {
	rows := make([]bookingRow, 0, len(list))
	for _, b := range list {
		label := b.ServiceKey
		if svc, ok := catalog.Service(b.ServiceKey); ok {
			label = svc.Label
		}
		rows = append(rows, bookingRow{
			ref:      service.Reference(b.ID),
			when:     b.Date + " " + b.TimeSlot,
			service:  label,
			customer: b.Name,
			total:    pricing.Amount(b.TotalCents),
		})
	}
	return rows
}

var landingFeatures = [][2]string{
	{"Trusted Professionals", "Vetted, insured and trained cleaners"},
	{"Eco-Friendly", "Safe products for your family and pets"},
	{"Satisfaction Guaranteed", "Not happy? We clean again for free"},
}

func (a *App) View() string {
	var body string
	switch {
	case a.page == pageHistory:
		body = a.renderHistory()
	case a.state.InBooking():
		body = a.renderBooking()
	default:
		body = a.renderLanding()
	}
	view := lipgloss.JoinVertical(lipgloss.Left,
		a.renderHeader(),
		"",
		body,
		"",
		a.renderStatus(),
		a.renderFooter(),
	)
	if a.page == pageWizard && a.state.ShowConfirmation {
		view = centerOverlay(view, a.renderConfirmation(), a.width, a.height)
	}
	return view
}

func (a *App) renderHeader() string {
	brand := brandStyle.Render(a.cfg.UI.Brand)
	return headerStyle.Render(brand + mutedStyle.Render("  professional cleaning services"))
}

func (a *App) renderLanding() string {
	var b strings.Builder
	b.WriteString(heroStyle.Render("Professional cleaning, booked in minutes"))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("Homes, offices and deep cleans with flexible scheduling."))
	b.WriteString("\n\n")

	cards := make([]string, 0, len(landingFeatures))
	for _, f := range landingFeatures {
		cards = append(cards, cardStyle.Render(labelStyle.Render(f[0])+"\n"+mutedStyle.Render(f[1])))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	b.WriteString("\n\n")
	if a.summary.Count > 0 {
		fmt.Fprintf(&b, "%s\n\n", mutedStyle.Render(fmt.Sprintf("%d booking(s) this session, %s total",
			a.summary.Count, a.money(a.summary.Total))))
	}
	b.WriteString(cursorStyle.Render("Press enter to book now"))
	return b.String()
}

func (a *App) renderBooking() string {
	var body string
	switch a.state.Step {
	case booking.StepService:
		body = a.renderServiceStep()
	case booking.StepSchedule:
		body = a.renderScheduleStep()
	default:
		body = a.renderDetailsStep()
	}
	return a.renderProgress() + "\n\n" + body
}

func (a *App) renderProgress() string {
	parts := make([]string, 0, len(booking.Steps()))
	for _, s := range booking.Steps() {
		label := fmt.Sprintf("%d %s", int(s), s.Title())
		switch {
		case s == a.state.Step:
			parts = append(parts, stepActiveStyle.Render("● "+label))
		case s < a.state.Step:
			parts = append(parts, stepDoneStyle.Render("✓ "+label))
		default:
			parts = append(parts, stepPendingStyle.Render("○ "+label))
		}
	}
	return strings.Join(parts, mutedStyle.Render("  ──  "))
}

func (a *App) renderServiceStep() string {
	var b strings.Builder
	b.WriteString(heroStyle.Render("Choose your service"))
	b.WriteString("\n")
	cards := make([]string, 0, 3)
	for i, svc := range catalog.Services() {
		style := cardStyle
		switch {
		case i == a.serviceCursor:
			style = activeCardStyle
		case svc.Key == a.state.Draft.ServiceType:
			style = chosenCardStyle
		}
		title := svc.Label
		if svc.Key == a.state.Draft.ServiceType {
			title = "✓ " + title
		}
		cards = append(cards, style.Render(
			labelStyle.Render(title)+"\n"+
				mutedStyle.Render(svc.Description)+"\n"+
				priceStyle.Render(a.money(pricing.Amount(svc.PriceCents)))))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	b.WriteString(a.fieldError(booking.FieldServiceType))
	return b.String()
}

func (a *App) renderScheduleStep() string {
	var b strings.Builder
	b.WriteString(heroStyle.Render("Pick a date and time"))
	b.WriteString("\n\n")
	b.WriteString(a.renderInput(booking.FieldDate, "Date"))
	b.WriteString(a.fieldError(booking.FieldDate))
	b.WriteString("\n")
	b.WriteString(a.renderInput(booking.FieldTime, "Time"))
	b.WriteString(a.fieldError(booking.FieldTime))
	b.WriteString("\n")
	for _, slot := range catalog.Slots() {
		marker := "  "
		line := mutedStyle.Render(slot.Label)
		if slot.Key == a.state.Draft.Time {
			marker = cursorStyle.Render("▸ ")
			line = labelStyle.Render(slot.Label)
		}
		b.WriteString("  " + marker + line + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (a *App) renderDetailsStep() string {
	var b strings.Builder
	b.WriteString(heroStyle.Render("Your details"))
	b.WriteString("\n\n")
	for _, f := range []struct {
		field booking.Field
		label string
	}{
		{booking.FieldName, "Name"},
		{booking.FieldEmail, "Email"},
		{booking.FieldPhone, "Phone"},
		{booking.FieldAddress, "Address"},
	} {
		b.WriteString(a.renderInput(f.field, f.label))
		b.WriteString(a.fieldError(f.field))
		b.WriteString("\n")
	}

	label := a.state.Draft.Frequency
	if plan, ok := catalog.Frequency(a.state.Draft.Frequency); ok {
		label = plan.Label
	}
	freq := "‹ " + label + " ›"
	if f, _ := a.focusedField(); f == booking.FieldFrequency {
		freq = cursorStyle.Render(freq)
	}
	b.WriteString(labelStyle.Render(padRight("Frequency", 10)) + freq)
	b.WriteString(a.fieldError(booking.FieldFrequency))
	b.WriteString("\n\n")
	total := pricing.Total(a.state.Draft.ServiceType, a.state.Draft.Frequency)
	b.WriteString(labelStyle.Render(padRight("Total", 10)) + priceStyle.Render(a.money(total)))
	return b.String()
}

func (a *App) renderInput(f booking.Field, label string) string {
	in := a.inputs[f]
	prefix := "  "
	if focused, _ := a.focusedField(); focused == f {
		prefix = cursorStyle.Render("▸ ")
	}
	return prefix + labelStyle.Render(padRight(label, 8)) + in.View()
}

func (a *App) fieldError(f booking.Field) string {
	if !a.state.Errors.Has(f) {
		return ""
	}
	return "\n    " + errorStyle.Render(a.state.Errors.Message(f))
}

func (a *App) renderConfirmation() string {
	d := a.state.Draft
	quote, ok := pricing.NewQuote(d.ServiceType, d.Frequency)
	if !ok {
		return modalStyle.Render(errorStyle.Render("This booking cannot be priced"))
	}
	slot := d.Time
	if s, found := catalog.Slot(d.Time); found {
		slot = s.Label
	}
	row := func(k, v string) string {
		return labelStyle.Render(padRight(k, 11)) + v
	}
	lines := []string{
		modalTitleStyle.Render("Booking Summary"),
		"",
		row("Name", d.Name),
		row("Phone", d.Phone),
		row("Service", quote.Service.Label),
		row("Frequency", quote.Frequency.Label),
		row("Date", d.Date),
		row("Time", slot),
		"",
		row("Base", a.money(quote.Base)),
	}
	if quote.DiscountPercent > 0 {
		lines = append(lines, row("Discount", fmt.Sprintf("-%s (%d%%)", a.money(quote.Discount), quote.DiscountPercent)))
	}
	lines = append(lines,
		row("Total", priceStyle.Render(a.money(quote.Total))),
		"",
		mutedStyle.Render("enter confirm  esc edit"),
	)
	return modalStyle.Render(strings.Join(lines, "\n"))
}

func (a *App) renderHistory() string {
	var b strings.Builder
	b.WriteString(heroStyle.Render("Bookings this session"))
	b.WriteString("\n\n")
	if len(a.history) == 0 {
		b.WriteString(mutedStyle.Render("No bookings yet this session."))
		return b.String()
	}
	b.WriteString(historyHeadStyle.Render(fmt.Sprintf("%-9s %-17s %-22s %-18s %s", "REF", "WHEN", "SERVICE", "CUSTOMER", "TOTAL")))
	b.WriteString("\n")
	for _, r := range a.history {
		fmt.Fprintf(&b, "%-9s %-17s %-22s %-18s %s\n",
			r.ref, r.when, ansi.Truncate(r.service, 22, "…"), ansi.Truncate(r.customer, 18, "…"), a.money(r.total))
	}
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(fmt.Sprintf("%d booking(s), %s total", a.summary.Count, a.money(a.summary.Total))))
	return b.String()
}

func (a *App) renderStatus() string {
	msg := strings.TrimSpace(a.status)
	style := statusBarStyle
	switch {
	case msg == "":
		msg = "Ready"
	case a.statusErr:
		style = statusErrBarStyle
	case a.confirming:
		style = statusWarnStyle
	}
	return renderBar(style, max(1, a.width), msg)
}

func (a *App) renderFooter() string {
	bindings := a.keys.BindingsForScope(a.scope())
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		kb := key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(b.Keys[0], b.Description))
		h := kb.Help()
		parts = append(parts, footerKeyStyle.Render(h.Key)+footerDescStyle.Render(" "+h.Desc))
	}
	return renderBar(footerStyle, max(1, a.width), strings.Join(parts, footerDescStyle.Render("  ")))
}

func renderBar(style lipgloss.Style, width int, text string) string {
	line := strings.ReplaceAll(text, "\n", " ")
	if width > 1 {
		line = padRight(ansi.Truncate(line, width, ""), width)
	}
	return style.Render(line)
}
