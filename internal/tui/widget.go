package tui

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/jask/jaskfx/internal/catalog"
	"github.com/jask/jaskfx/internal/convert"
	"github.com/jask/jaskfx/internal/converter"
	"github.com/jask/jaskfx/internal/rates"
)

type focusField int

const (
	focusAmount focusField = iota
	focusFrom
	focusTo
	focusCount
)

// Options configure a Widget.
type Options struct {
	Defaults converter.Defaults
	Locale   string
	ToastTTL time.Duration
	Logger   *log.Logger
}

// Widget is the interactive converter: form, result panel and notifications.
type Widget struct {
	ctx      context.Context
	provider rates.Provider
	logger   *log.Logger
	format   *convert.Formatter
	state    *converter.State

	keys    keyMap
	help    help.Model
	amount  textinput.Model
	spinner spinner.Model
	focus   focusField
	picker  *picker

	toast    *converter.Notice
	toastID  int
	toastTTL time.Duration

	width, height int
}

// NewWidget builds a widget. Fetches run against provider using ctx.
func NewWidget(ctx context.Context, provider rates.Provider, opts Options) *Widget {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.ToastTTL <= 0 {
		opts.ToastTTL = 5 * time.Second
	}

	state := converter.New(opts.Defaults)

	in := textinput.New()
	in.Prompt = ""
	in.Placeholder = "Enter amount"
	in.CharLimit = 32
	in.Width = 24
	in.SetValue(state.Amount())
	in.CursorEnd()
	in.Focus()

	sp := spinner.New(spinner.WithSpinner(spinner.Line), spinner.WithStyle(spinnerStyle))

	return &Widget{
		ctx:      ctx,
		provider: provider,
		logger:   logger,
		format:   convert.NewFormatter(opts.Locale),
		state:    state,
		keys:     defaultKeys(),
		help:     help.New(),
		amount:   in,
		spinner:  sp,
		focus:    focusAmount,
		toastTTL: opts.ToastTTL,
	}
}

// State exposes the underlying state for read access.
func (w *Widget) State() converter.ConversionState { return w.state.Snapshot() }

// Init issues the first rate fetch.
func (w *Widget) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, w.dispatch(w.state.Start()))
}

// Update handles one message.
func (w *Widget) Update(msg tea.Msg) (*Widget, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		w.width, w.height = m.Width, m.Height
		w.help.Width = m.Width
		return w, nil
	case tea.KeyMsg:
		return w.handleKey(m)
	case rateMsg:
		return w, w.resolve(converter.Result(m))
	case toastExpiredMsg:
		if int(m) == w.toastID {
			w.toast = nil
		}
		return w, nil
	case spinner.TickMsg:
		if !w.state.Loading() {
			return w, nil
		}
		var cmd tea.Cmd
		w.spinner, cmd = w.spinner.Update(m)
		return w, cmd
	}

	if w.focus == focusAmount {
		var cmd tea.Cmd
		w.amount, cmd = w.amount.Update(msg)
		return w, cmd
	}
	return w, nil
}

func (w *Widget) handleKey(m tea.KeyMsg) (*Widget, tea.Cmd) {
	if keyMatches(m, w.keys.ForceQuit) {
		return w, tea.Quit
	}
	if w.picker != nil {
		return w.handlePickerKey(m)
	}

	typing := w.focus == focusAmount && typingKey(m.String())
	switch {
	case !typing && keyMatches(m, w.keys.Quit):
		return w, tea.Quit
	case keyMatches(m, w.keys.NextField):
		w.setFocus((w.focus + 1) % focusCount)
		return w, nil
	case keyMatches(m, w.keys.PrevField):
		w.setFocus((w.focus + focusCount - 1) % focusCount)
		return w, nil
	case !typing && keyMatches(m, w.keys.Swap):
		req, ok := w.state.Swap()
		w.amount.SetValue(w.state.Amount())
		w.amount.CursorEnd()
		return w, w.dispatch(req, ok)
	case !typing && keyMatches(m, w.keys.Refresh):
		return w, w.dispatch(w.state.Refresh())
	case w.focus != focusAmount && keyMatches(m, w.keys.Pick):
		field := pickFrom
		current := w.state.From()
		if w.focus == focusTo {
			field, current = pickTo, w.state.To()
		}
		w.picker = newPicker(field, current)
		return w, textinput.Blink
	}

	if w.focus != focusAmount {
		return w, nil
	}
	if m.Type == tea.KeySpace {
		return w, nil
	}
	if m.Type == tea.KeyRunes {
		for _, r := range m.Runes {
			if !numericRune(r) {
				return w, nil
			}
		}
	}
	before := w.amount.Value()
	var cmd tea.Cmd
	w.amount, cmd = w.amount.Update(m)
	if v := w.amount.Value(); v != before {
		w.state.SetAmount(v)
	}
	return w, cmd
}

func (w *Widget) handlePickerKey(m tea.KeyMsg) (*Widget, tea.Cmd) {
	done, code, cmd := w.picker.Update(m)
	if !done {
		return w, cmd
	}
	field := w.picker.field
	w.picker = nil
	if code == "" {
		return w, nil
	}
	if field == pickTo {
		return w, w.dispatch(w.state.SetTo(code))
	}
	return w, w.dispatch(w.state.SetFrom(code))
}

func (w *Widget) setFocus(f focusField) {
	w.focus = f
	if f == focusAmount {
		w.amount.Focus()
		return
	}
	w.amount.Blur()
}

// dispatch turns an issued request into a fetch command.
func (w *Widget) dispatch(req converter.Request, ok bool) tea.Cmd {
	if !ok {
		return nil
	}
	w.logger.Debug("rate fetch issued", "seq", req.Seq, "base", req.Base, "target", req.Target)
	provider, ctx := w.provider, w.ctx
	fetch := func() tea.Msg {
		q, err := provider.Rate(ctx, req.Base, req.Target)
		return rateMsg(converter.Result{Seq: req.Seq, Quote: q, Err: err})
	}
	return tea.Batch(fetch, w.spinner.Tick)
}

func (w *Widget) resolve(res converter.Result) tea.Cmd {
	notice, applied := w.state.Resolve(res)
	if !applied {
		w.logger.Debug("stale rate response dropped", "seq", res.Seq)
		return nil
	}
	if res.Err != nil {
		w.logger.Warn("rate fetch failed", "seq", res.Seq, "base", w.state.From(), "target", w.state.To(), "err", res.Err)
	}
	if notice == nil {
		return nil
	}
	w.toast = notice
	w.toastID++
	id := w.toastID
	return tea.Tick(w.toastTTL, func(time.Time) tea.Msg { return toastExpiredMsg(id) })
}

// View renders the form card, the result card and any notification.
func (w *Widget) View() string {
	snap := w.state.Snapshot()
	keys := w.keys
	keys.Swap.SetEnabled(!snap.Loading)
	keys.Refresh.SetEnabled(!snap.Loading)

	left := w.renderForm(snap)
	if w.picker != nil {
		left = w.picker.View(44, 16)
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", w.renderResult(snap))

	var b strings.Builder
	b.WriteString(body)
	if w.toast != nil {
		b.WriteString("\n")
		b.WriteString(toastStyle.Render(toastTitleStyle.Render(w.toast.Title) + "\n" + w.toast.Body))
	}
	b.WriteString("\n")
	b.WriteString(w.help.View(keys))
	return b.String()
}

func (w *Widget) renderForm(s converter.ConversionState) string {
	var rows []string
	rows = append(rows, cardTitleStyle.Render("💱 Currency Converter"))
	if !s.UpdatedAt.IsZero() {
		rows = append(rows, updatedStyle.Render("Last updated: "+s.UpdatedAt.Local().Format("3:04:05 PM")))
	}
	rows = append(rows, "")

	rows = append(rows, labelStyle.Render("Amount"), w.field(focusAmount, w.amount.View()))
	if s.AmountInvalid {
		rows = append(rows, warnStyle.Render("enter a number"))
	}
	rows = append(rows,
		labelStyle.Render("From"), w.field(focusFrom, currencyLabel(s.From)),
		w.button("⇄ Swap", !s.Loading),
		labelStyle.Render("To"), w.field(focusTo, currencyLabel(s.To)),
		"",
	)

	if s.HasRate {
		rate := fmt.Sprintf("1 %s = %s %s", s.From, w.format.FormatRate(s.Rate), s.To)
		rows = append(rows, labelStyle.Render("Current Exchange Rate"), rateBoxStyle.Render(rate), "")
	}

	if s.Loading {
		rows = append(rows, disabledButtonStyle.Render(w.spinner.View()+" Updating..."))
	} else {
		rows = append(rows, w.button("⟳ Refresh Rates", true))
	}
	return cardStyle.Width(44).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (w *Widget) renderResult(s converter.ConversionState) string {
	converted := w.format.FormatCurrency(s.Converted, s.To)
	rows := []string{
		resultTitleStyle.Render("💰 Converted Amount"),
		"",
		resultAmountStyle.Render(converted),
		"",
		w.format.FormatCurrency(s.Amount, s.From),
		mutedStyle.Render("equals"),
		resultAmountStyle.Render(converted),
		"",
		fmt.Sprintf("%s %s  ⇄  %s %s", catalog.Flag(s.From), s.From, catalog.Flag(s.To), s.To),
	}
	if s.Loading {
		rows = append(rows, "", spinnerStyle.Render(w.spinner.View()+" Updating rates..."))
	}
	return resultCardStyle.Width(34).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (w *Widget) field(f focusField, content string) string {
	style := fieldStyle
	marker := "  "
	if w.focus == f && w.picker == nil {
		style = focusedFieldStyle
		marker = cursorStyle.Render("▶ ")
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, marker, style.Width(36).Render(content))
}

func (w *Widget) button(label string, enabled bool) string {
	if !enabled {
		return disabledButtonStyle.Render(label)
	}
	return buttonStyle.Render(label)
}

func currencyLabel(code string) string {
	if c, ok := catalog.Lookup(code); ok {
		return c.Label()
	}
	if code == "" {
		return mutedStyle.Render("(none)")
	}
	return code
}

// messages
type rateMsg converter.Result

type toastExpiredMsg int
