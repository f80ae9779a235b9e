package tui

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/cleanco/cleanco/internal/booking"
	"github.com/cleanco/cleanco/internal/catalog"
	"github.com/cleanco/cleanco/internal/config"
	"github.com/cleanco/cleanco/internal/pricing"
	"github.com/cleanco/cleanco/internal/service"
	"github.com/cleanco/cleanco/internal/wizard"
)

const historyLimit = 20

// App is the bubbletea model for the booking wizard. It owns only
// presentation state; booking semantics live in the wizard machine.
type App struct {
	ctx      context.Context
	cfg      config.Config
	machine  *wizard.Machine
	services Services
	logger   *zap.Logger
	keys     *keyRegistry

	state       wizard.State
	unsubscribe func()
	page        page
	width       int
	height      int

	serviceCursor int
	focus         int
	inputs        map[booking.Field]textinput.Model

	history []bookingRow
	summary service.Summary

	status     string
	statusErr  bool
	confirming bool
}

type Services struct {
	Confirmation *service.ConfirmationService
	Maintenance  *service.MaintenanceService
}

type page string

const (
	pageWizard  page = "wizard"
	pageHistory page = "history"
)

// stepFields lists the focusable fields of each step in tab order.
var stepFields = map[booking.Step][]booking.Field{
	booking.StepSchedule: {booking.FieldDate, booking.FieldTime},
	booking.StepDetails:  {booking.FieldName, booking.FieldEmail, booking.FieldPhone, booking.FieldAddress, booking.FieldFrequency},
}

var inputDefs = []struct {
	field       booking.Field
	placeholder string
	limit       int
}{
	{booking.FieldDate, booking.DateLayout, 10},
	{booking.FieldTime, "HH:MM", 5},
	{booking.FieldName, "Full name", 80},
	{booking.FieldEmail, "you@example.com", 120},
	{booking.FieldPhone, "+60123456789", 15},
	{booking.FieldAddress, "Street, city", 200},
}

func New(ctx context.Context, cfg config.Config, machine *wizard.Machine, services Services, logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	a := &App{
		ctx:      ctx,
		cfg:      cfg,
		machine:  machine,
		services: services,
		logger:   logger,
		keys:     newKeyRegistry(defaultKeyBindings()),
		state:    machine.State(),
		page:     pageWizard,
		inputs:   make(map[booking.Field]textinput.Model, len(inputDefs)),
	}
	for _, def := range inputDefs {
		in := textinput.New()
		in.Prompt = ""
		in.Placeholder = def.placeholder
		in.CharLimit = def.limit
		in.Width = 40
		in.Cursor.SetMode(cursor.CursorStatic)
		a.inputs[def.field] = in
	}
	a.unsubscribe = machine.Subscribe(func(s wizard.State) { a.state = s })
	a.syncInputs()
	return a
}

func (a *App) Init() tea.Cmd {
	return a.loadHistory()
}

// Close detaches the app from the machine.
func (a *App) Close() {
	if a.unsubscribe != nil {
		a.unsubscribe()
		a.unsubscribe = nil
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
	case tea.KeyMsg:
		if m.String() == "ctrl+c" {
			return a, tea.Quit
		}
		return a, a.handleKey(m)
	case bookingConfirmedMsg:
		a.confirming = false
		if !a.dispatch(wizard.ConfirmAndReset{}) {
			// the booking is recorded, so the draft must not survive
			a.dispatch(wizard.Reset{})
		}
		a.setStatus(fmt.Sprintf("Booking %s confirmed: %s",
			service.Reference(m.booking.ID), a.money(pricing.Amount(m.booking.TotalCents))), false)
		return a, a.loadHistory()
	case historyMsg:
		a.history = toRows(m.bookings)
		a.summary = m.summary
	case historyClearedMsg:
		a.setStatus(fmt.Sprintf("Cleared %d bookings", m.removed), false)
		return a, a.loadHistory()
	case statusMsg:
		a.setStatus(string(m), false)
	case errMsg:
		a.confirming = false
		a.logger.Error("ledger", zap.Error(m.error))
		a.setStatus("error: "+m.Error(), true)
	}
	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	scope := a.scope()
	if a.confirming && scope == scopeConfirm {
		return nil
	}
	act, ok := a.keys.Lookup(msg, scope)
	if !ok {
		return a.updateFocusedInput(msg)
	}
	switch act {
	case actionQuit:
		return tea.Quit
	case actionStart:
		a.dispatch(wizard.StartBooking{})
	case actionHistory:
		a.page = pageHistory
		return a.loadHistory()
	case actionCloseHistory:
		a.page = pageWizard
	case actionClearHistory:
		return a.clearHistoryCmd()
	case actionAdvance:
		a.advance()
	case actionBack:
		if a.state.CanRetreat() {
			a.dispatch(wizard.Retreat{})
		} else {
			a.dispatch(wizard.GoHome{})
		}
	case actionHome:
		a.dispatch(wizard.GoHome{})
	case actionReset:
		if a.dispatch(wizard.Reset{}) {
			a.setStatus("Form reset", false)
		}
	case actionNextField:
		a.moveFocus(1)
	case actionPrevField:
		a.moveFocus(-1)
	case actionUp, actionDown:
		a.moveVertical(act == actionDown)
	case actionLeft, actionRight:
		if f, _ := a.focusedField(); f != booking.FieldFrequency {
			return a.updateFocusedInput(msg)
		}
		a.cycleFrequency(act == actionRight)
	case actionSelect:
		a.selectCurrent()
	case actionConfirm:
		return a.confirmCmd()
	case actionDismiss:
		a.dispatch(wizard.DismissConfirmation{})
	}
	return nil
}

func (a *App) scope() string {
	switch {
	case a.page == pageHistory:
		return scopeHistory
	case !a.state.InBooking():
		return scopeLanding
	case a.state.ShowConfirmation:
		return scopeConfirm
	}
	switch a.state.Step {
	case booking.StepService:
		return scopeService
	case booking.StepSchedule:
		return scopeSchedule
	default:
		return scopeDetails
	}
}

// dispatch applies e to the machine and refreshes the inputs. Rejected
// events are logged and leave the app unchanged.
func (a *App) dispatch(e wizard.Event) bool {
	prev := a.state
	if _, err := a.machine.Dispatch(e); err != nil {
		a.logger.Debug("event rejected", zap.String("event", wizard.Name(e)), zap.Error(err))
		return false
	}
	if prev.View != a.state.View || prev.Step != a.state.Step {
		a.enterStep()
	}
	a.syncInputs()
	return true
}

func (a *App) advance() {
	if !a.dispatch(wizard.Advance{}) {
		return
	}
	errs := a.state.Errors
	if errs.Empty() {
		a.setStatus("", false)
		return
	}
	msg := fmt.Sprintf("Please check %d field(s)", len(errs))
	if fe, ok := errs[booking.FieldTime]; ok && fe.Kind == booking.UnresolvedReference {
		if s, found := catalog.Suggest(a.state.Draft.Time, catalog.SlotKeys()); found {
			msg += fmt.Sprintf(": did you mean %s?", s)
		}
	}
	a.setStatus(msg, true)
	a.focusFirstError()
}

func (a *App) selectCurrent() {
	switch a.state.Step {
	case booking.StepService:
		svcs := catalog.Services()
		if a.serviceCursor < 0 || a.serviceCursor >= len(svcs) {
			return
		}
		a.dispatch(wizard.SetField{Field: booking.FieldServiceType, Value: svcs[a.serviceCursor].Key})
		a.advance()
	default:
		fields := stepFields[a.state.Step]
		if a.focus >= len(fields)-1 {
			a.advance()
			return
		}
		a.moveFocus(1)
	}
}

func (a *App) moveVertical(down bool) {
	delta := -1
	if down {
		delta = 1
	}
	switch a.state.Step {
	case booking.StepService:
		a.serviceCursor = clamp(a.serviceCursor+delta, 0, len(catalog.Services())-1)
	case booking.StepSchedule:
		if f, _ := a.focusedField(); f == booking.FieldTime {
			a.cycleSlot(delta)
			return
		}
		a.moveFocus(delta)
	default:
		a.moveFocus(delta)
	}
}

func (a *App) cycleSlot(delta int) {
	keys := catalog.SlotKeys()
	idx := slices.Index(keys, a.state.Draft.Time)
	switch {
	case idx < 0 && delta > 0:
		idx = 0
	case idx < 0:
		idx = len(keys) - 1
	default:
		idx = (idx + delta + len(keys)) % len(keys)
	}
	a.dispatch(wizard.SetField{Field: booking.FieldTime, Value: keys[idx]})
}

func (a *App) cycleFrequency(forward bool) {
	keys := catalog.FrequencyKeys()
	idx := max(0, slices.Index(keys, a.state.Draft.Frequency))
	if forward {
		idx = (idx + 1) % len(keys)
	} else {
		idx = (idx - 1 + len(keys)) % len(keys)
	}
	a.dispatch(wizard.SetField{Field: booking.FieldFrequency, Value: keys[idx]})
}

func (a *App) focusedField() (booking.Field, bool) {
	if !a.state.InBooking() || a.state.ShowConfirmation {
		return 0, false
	}
	fields := stepFields[a.state.Step]
	if a.focus < 0 || a.focus >= len(fields) {
		return 0, false
	}
	return fields[a.focus], true
}

func (a *App) moveFocus(delta int) {
	fields := stepFields[a.state.Step]
	if len(fields) == 0 {
		return
	}
	a.setFocus(clamp(a.focus+delta, 0, len(fields)-1))
}

func (a *App) setFocus(i int) {
	a.focus = i
	focused, _ := a.focusedField()
	for f, in := range a.inputs {
		if f == focused {
			in.Focus()
		} else {
			in.Blur()
		}
		a.inputs[f] = in
	}
}

func (a *App) focusFirstError() {
	for i, f := range stepFields[a.state.Step] {
		if a.state.Errors.Has(f) {
			a.setFocus(i)
			return
		}
	}
}

// enterStep resets per-step presentation state after a view or step change.
func (a *App) enterStep() {
	if i := slices.IndexFunc(catalog.Services(), func(s catalog.ServiceType) bool {
		return s.Key == a.state.Draft.ServiceType
	}); i >= 0 {
		a.serviceCursor = i
	}
	a.setFocus(0)
}

// updateFocusedInput forwards a key to the focused text input and mirrors
// its value into the draft.
func (a *App) updateFocusedInput(msg tea.KeyMsg) tea.Cmd {
	if a.page != pageWizard {
		return nil
	}
	f, ok := a.focusedField()
	if !ok {
		return nil
	}
	in, ok := a.inputs[f]
	if !ok {
		return nil
	}
	in, cmd := in.Update(msg)
	a.inputs[f] = in
	if v := in.Value(); v != a.state.Draft.Get(f) {
		a.dispatch(wizard.SetField{Field: f, Value: v})
	}
	return cmd
}

// syncInputs pulls draft values into the text inputs, e.g. after a reset.
func (a *App) syncInputs() {
	for f, in := range a.inputs {
		if v := a.state.Draft.Get(f); in.Value() != v {
			in.SetValue(v)
			a.inputs[f] = in
		}
	}
}

func (a *App) setStatus(text string, isErr bool) {
	a.status = text
	a.statusErr = isErr
}

func (a *App) money(v pricing.Amount) string {
	return a.cfg.UI.CurrencySymbol + " " + v.String()
}

// commands

func (a *App) confirmCmd() tea.Cmd {
	if a.confirming {
		return nil
	}
	svc := a.services.Confirmation
	if svc == nil {
		return func() tea.Msg { return errMsg{errors.New("ledger not configured")} }
	}
	a.confirming = true
	ctx, st := a.ctx, a.state
	return func() tea.Msg {
		b, err := svc.Confirm(ctx, st)
		if err != nil {
			return errMsg{err}
		}
		return bookingConfirmedMsg{booking: b}
	}
}

func (a *App) loadHistory() tea.Cmd {
	svc := a.services.Confirmation
	if svc == nil {
		return nil
	}
	ctx := a.ctx
	return func() tea.Msg {
		list, err := svc.History(ctx, historyLimit)
		if err != nil {
			return errMsg{err}
		}
		sum, err := svc.Summary(ctx)
		if err != nil {
			return errMsg{err}
		}
		return historyMsg{bookings: list, summary: sum}
	}
}

func (a *App) clearHistoryCmd() tea.Cmd {
	svc := a.services.Maintenance
	if svc == nil {
		return nil
	}
	ctx := a.ctx
	return func() tea.Msg {
		n, err := svc.ClearHistory(ctx)
		if err != nil {
			return errMsg{err}
		}
		return historyClearedMsg{removed: n}
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
