package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/jask/jaskfx/internal/config"
	"github.com/jask/jaskfx/internal/converter"
	"github.com/jask/jaskfx/internal/rates"
)

// ---------------------------------------------------------------------------
// Test helpers
// ---------------------------------------------------------------------------

type fakeProvider struct {
	mu    sync.Mutex
	rates map[string]float64 // "USD/EUR" -> rate
	err   error
	calls []string
}

func (f *fakeProvider) Rate(_ context.Context, base, target string) (rates.Quote, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	pair := base + "/" + target
	f.calls = append(f.calls, pair)
	if f.err != nil {
		return rates.Quote{}, f.err
	}
	r, ok := f.rates[pair]
	if !ok {
		return rates.Quote{}, fmt.Errorf("%w: %s", rates.ErrUnsupported, target)
	}
	return rates.Quote{Base: base, Target: target, Rate: r, FetchedAt: time.Date(2026, 10, 14, 9, 30, 0, 0, time.UTC)}, nil
}

func (f *fakeProvider) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func (f *fakeProvider) setErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = err
}

// collect runs cmd and returns the messages it produces. Commands that do not
// answer quickly (ticks, blinks) are dropped.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	select {
	case msg := <-ch:
		if batch, ok := msg.(tea.BatchMsg); ok {
			var out []tea.Msg
			for _, c := range batch {
				out = append(out, collect(c)...)
			}
			return out
		}
		return []tea.Msg{msg}
	case <-time.After(100 * time.Millisecond):
		return nil
	}
}

// settle feeds fetch results back into the widget until none are pending.
func settle(w *Widget, cmd tea.Cmd) []tea.Msg {
	var other []tea.Msg
	for _, msg := range collect(cmd) {
		if rm, ok := msg.(rateMsg); ok {
			var next tea.Cmd
			w, next = w.Update(rm)
			other = append(other, settle(w, next)...)
			continue
		}
		other = append(other, msg)
	}
	return other
}

func press(w *Widget, k tea.KeyMsg) tea.Cmd {
	_, cmd := w.Update(k)
	return cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestWidget(t *testing.T, p *fakeProvider, d converter.Defaults) *Widget {
	t.Helper()
	w := NewWidget(context.Background(), p, Options{Defaults: d, Locale: "en-US"})
	settle(w, w.Init())
	return w
}

// ---------------------------------------------------------------------------
// Widget tests
// ---------------------------------------------------------------------------

func TestWidgetInitialFetch(t *testing.T) {
	p := &fakeProvider{rates: map[string]float64{"USD/EUR": 0.9123}}
	w := newTestWidget(t, p, converter.Defaults{Amount: "100"})

	require.Equal(t, 1, p.callCount())
	s := w.State()
	require.Equal(t, "91.2300", s.Converted)
	require.False(t, s.Loading)
	require.Equal(t, converter.Ready, s.Status)

	view := w.View()
	require.Contains(t, view, "€91.23")
	require.Contains(t, view, "$100.00")
	require.Contains(t, view, "1 USD = 0.9123 EUR")
	require.Contains(t, view, "Refresh Rates")
	require.Contains(t, view, "Last updated")
}

func TestWidgetLoadingView(t *testing.T) {
	p := &fakeProvider{rates: map[string]float64{"USD/EUR": 0.9}}
	w := NewWidget(context.Background(), p, Options{Locale: "en-US"})
	_ = w.Init()

	require.True(t, w.State().Loading)
	view := w.View()
	require.Contains(t, view, "Updating...")
	require.Contains(t, view, "Updating rates...")
	require.NotContains(t, view, "Current Exchange Rate")
}

func TestWidgetTypingAmountDoesNotFetch(t *testing.T) {
	p := &fakeProvider{rates: map[string]float64{"USD/EUR": 0.5}}
	w := newTestWidget(t, p, converter.Defaults{Amount: "10"})
	require.Equal(t, 1, p.callCount())

	settle(w, press(w, runes("0")))
	require.Equal(t, "100", w.State().Amount)
	require.Equal(t, "50.0000", w.State().Converted)

	settle(w, press(w, tea.KeyMsg{Type: tea.KeyBackspace}))
	settle(w, press(w, tea.KeyMsg{Type: tea.KeyBackspace}))
	require.Equal(t, "1", w.State().Amount)
	require.Equal(t, "0.5000", w.State().Converted)
	require.Equal(t, 1, p.callCount())
}

func TestWidgetIgnoresNonNumericRunes(t *testing.T) {
	p := &fakeProvider{rates: map[string]float64{"USD/EUR": 0.5}}
	w := newTestWidget(t, p, converter.Defaults{Amount: "10"})

	for _, k := range []string{"x", "s", "r", "q"} {
		cmd := press(w, runes(k))
		require.Empty(t, settle(w, cmd), "key %q", k)
	}
	settle(w, press(w, tea.KeyMsg{Type: tea.KeySpace}))
	require.Equal(t, "10", w.State().Amount)
	require.Equal(t, 1, p.callCount())
}

func TestWidgetSwap(t *testing.T) {
	p := &fakeProvider{rates: map[string]float64{"USD/EUR": 0.9, "EUR/USD": 1.1111}}
	w := newTestWidget(t, p, converter.Defaults{Amount: "100"})

	settle(w, press(w, tea.KeyMsg{Type: tea.KeyCtrlS}))
	require.Equal(t, 2, p.callCount())
	s := w.State()
	require.Equal(t, "EUR", s.From)
	require.Equal(t, "USD", s.To)
	require.Equal(t, "90.0000", s.Amount)
	require.Equal(t, "90.0000", w.amount.Value())
	require.Equal(t, "99.9990", s.Converted)
}

func TestWidgetSwapKeyOutsideAmountField(t *testing.T) {
	p := &fakeProvider{rates: map[string]float64{"USD/EUR": 2, "EUR/USD": 0.5}}
	w := newTestWidget(t, p, converter.Defaults{Amount: "3"})

	press(w, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, focusFrom, w.focus)
	settle(w, press(w, runes("s")))
	require.Equal(t, "EUR", w.State().From)
	require.Equal(t, "6.0000", w.State().Amount)
	require.Equal(t, "3.0000", w.State().Converted)
}

func TestWidgetSwapIgnoredWhileLoading(t *testing.T) {
	p := &fakeProvider{rates: map[string]float64{"USD/EUR": 0.9}}
	w := NewWidget(context.Background(), p, Options{})
	_ = w.Init()

	require.Nil(t, press(w, tea.KeyMsg{Type: tea.KeyCtrlS}))
	require.Equal(t, "USD", w.State().From)
}

func TestWidgetRefresh(t *testing.T) {
	p := &fakeProvider{rates: map[string]float64{"USD/EUR": 0.9}}
	w := newTestWidget(t, p, converter.Defaults{})

	settle(w, press(w, tea.KeyMsg{Type: tea.KeyCtrlR}))
	require.Equal(t, 2, p.callCount())
	require.False(t, w.State().Loading)
}

func TestWidgetPickerChangesCurrency(t *testing.T) {
	p := &fakeProvider{rates: map[string]float64{"USD/EUR": 0.9, "GBP/EUR": 1.2}}
	w := newTestWidget(t, p, converter.Defaults{Amount: "10"})

	press(w, tea.KeyMsg{Type: tea.KeyTab})
	press(w, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, w.picker)
	require.Equal(t, "USD", w.picker.Selected())
	require.Contains(t, w.View(), "Select From currency")

	for _, r := range "gbp" {
		press(w, runes(string(r)))
	}
	require.Equal(t, "GBP", w.picker.Selected())

	settle(w, press(w, tea.KeyMsg{Type: tea.KeyEnter}))
	require.Nil(t, w.picker)
	require.Equal(t, 2, p.callCount())
	require.Equal(t, "GBP", w.State().From)
	require.Equal(t, "12.0000", w.State().Converted)
}

func TestWidgetPickerToField(t *testing.T) {
	p := &fakeProvider{rates: map[string]float64{"USD/EUR": 0.9, "USD/JPY": 150}}
	w := newTestWidget(t, p, converter.Defaults{Amount: "2"})

	press(w, tea.KeyMsg{Type: tea.KeyShiftTab})
	require.Equal(t, focusTo, w.focus)
	press(w, tea.KeyMsg{Type: tea.KeyEnter})
	for _, r := range "yen" {
		press(w, runes(string(r)))
	}
	settle(w, press(w, tea.KeyMsg{Type: tea.KeyEnter}))
	require.Equal(t, "JPY", w.State().To)
	require.Equal(t, "300.0000", w.State().Converted)
}

func TestWidgetPickerCancel(t *testing.T) {
	p := &fakeProvider{rates: map[string]float64{"USD/EUR": 0.9}}
	w := newTestWidget(t, p, converter.Defaults{})

	press(w, tea.KeyMsg{Type: tea.KeyTab})
	press(w, tea.KeyMsg{Type: tea.KeyEnter})
	press(w, tea.KeyMsg{Type: tea.KeyDown})
	require.Nil(t, press(w, tea.KeyMsg{Type: tea.KeyEsc}))
	require.Nil(t, w.picker)
	require.Equal(t, "USD", w.State().From)
	require.Equal(t, 1, p.callCount())
}

func TestWidgetPickerSameCurrencyIsNoop(t *testing.T) {
	p := &fakeProvider{rates: map[string]float64{"USD/EUR": 0.9}}
	w := newTestWidget(t, p, converter.Defaults{})

	press(w, tea.KeyMsg{Type: tea.KeyTab})
	press(w, tea.KeyMsg{Type: tea.KeyEnter})
	require.Nil(t, press(w, tea.KeyMsg{Type: tea.KeyEnter}))
	require.Equal(t, 1, p.callCount())
}

func TestWidgetFetchFailureShowsToast(t *testing.T) {
	p := &fakeProvider{rates: map[string]float64{"USD/EUR": 0.8}}
	w := newTestWidget(t, p, converter.Defaults{Amount: "10"})

	p.setErr(errors.New("connection refused"))
	settle(w, press(w, tea.KeyMsg{Type: tea.KeyCtrlR}))

	s := w.State()
	require.False(t, s.Loading)
	require.Equal(t, converter.Failed, s.Status)
	require.InDelta(t, 0.8, s.Rate, 1e-12)
	require.Equal(t, "8.0000", s.Converted)
	require.NotNil(t, w.toast)
	require.Equal(t, converter.FetchFailed, *w.toast)
	require.Contains(t, w.View(), "Failed to fetch exchange rates. Please try again.")

	w.Update(toastExpiredMsg(w.toastID))
	require.Nil(t, w.toast)
}

func TestWidgetUnsupportedTargetShowsSameToast(t *testing.T) {
	p := &fakeProvider{rates: map[string]float64{"USD/EUR": 0.8}}
	w := newTestWidget(t, p, converter.Defaults{})

	press(w, tea.KeyMsg{Type: tea.KeyShiftTab})
	press(w, tea.KeyMsg{Type: tea.KeyEnter})
	for _, r := range "chf" {
		press(w, runes(string(r)))
	}
	settle(w, press(w, tea.KeyMsg{Type: tea.KeyEnter}))
	require.NotNil(t, w.toast)
	require.Equal(t, converter.FetchFailed, *w.toast)
	require.False(t, w.State().Loading)
}

func TestWidgetOldToastExpiryKeepsNewToast(t *testing.T) {
	p := &fakeProvider{err: errors.New("down")}
	w := newTestWidget(t, p, converter.Defaults{})
	first := w.toastID

	settle(w, press(w, tea.KeyMsg{Type: tea.KeyCtrlR}))
	require.Greater(t, w.toastID, first)

	w.Update(toastExpiredMsg(first))
	require.NotNil(t, w.toast)
}

func TestWidgetFirstFailureShowsFallback(t *testing.T) {
	p := &fakeProvider{err: errors.New("offline")}
	w := newTestWidget(t, p, converter.Defaults{})

	require.False(t, w.State().HasRate)
	require.Contains(t, w.View(), "0.00")
}

func TestWidgetQuitKeys(t *testing.T) {
	p := &fakeProvider{rates: map[string]float64{"USD/EUR": 0.9}}
	w := newTestWidget(t, p, converter.Defaults{})

	cmd := press(w, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())

	press(w, tea.KeyMsg{Type: tea.KeyTab})
	cmd = press(w, runes("q"))
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
}

// ---------------------------------------------------------------------------
// App shell
// ---------------------------------------------------------------------------

func TestAppHostsWidget(t *testing.T) {
	p := &fakeProvider{rates: map[string]float64{"GBP/JPY": 190}}
	cfg := config.Config{UI: config.UIConfig{
		DefaultAmount: "2", DefaultFrom: "GBP", DefaultTo: "JPY", Locale: "en-US", ToastSeconds: 3,
	}}
	app := New(context.Background(), cfg, p, nil)
	settle(app.Widget(), app.Init())

	model, _ := app.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	view := model.View()
	require.Contains(t, view, "Real-Time Currency Converter")
	require.Contains(t, view, "Convert currencies with live exchange rates")
	require.Contains(t, view, "¥380.00")
	require.True(t, strings.Contains(view, "GBP") && strings.Contains(view, "JPY"))
	require.Equal(t, 3*time.Second, app.Widget().toastTTL)
}
