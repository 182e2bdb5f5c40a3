// Package converter holds the converter widget's state and every transition
// on it. It performs no I/O: transitions that need a rate return a Request,
// and the caller reports the outcome back through Resolve.
package converter

import (
	"strings"
	"time"

	"github.com/jask/jaskfx/internal/convert"
	"github.com/jask/jaskfx/internal/rates"
)

// Status is the fetch lifecycle of the widget.
type Status int

const (
	Idle Status = iota
	Loading
	Ready
	Failed
)

func (s Status) String() string {
	switch s {
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	default:
		return "idle"
	}
}

// Request asks the caller to fetch the rate from Base to Target.
type Request struct {
	Seq    uint64
	Base   string
	Target string
}

// Result is the outcome of a Request.
type Result struct {
	Seq   uint64
	Quote rates.Quote
	Err   error
}

// Notice is a user-facing notification.
type Notice struct {
	Title string
	Body  string
}

// FetchFailed is raised for every kind of fetch failure.
var FetchFailed = Notice{
	Title: "Error",
	Body:  "Failed to fetch exchange rates. Please try again.",
}

// Defaults seed a new State. Empty fields take 1, USD and EUR.
type Defaults struct {
	Amount string
	From   string
	To     string
}

// ConversionState is a read-only copy of the widget state.
type ConversionState struct {
	Amount        string
	From          string
	To            string
	Rate          float64
	HasRate       bool
	Converted     string
	Loading       bool
	UpdatedAt     time.Time
	Status        Status
	AmountInvalid bool
}

// State is the converter's state container. It is not safe for concurrent
// use; the bubbletea loop serialises access.
type State struct {
	cur ConversionState
	seq uint64
}

// New returns the state a freshly mounted widget starts with.
func New(d Defaults) *State {
	if d.Amount == "" {
		d.Amount = "1"
	}
	if d.From == "" {
		d.From = "USD"
	}
	if d.To == "" {
		d.To = "EUR"
	}
	s := &State{cur: ConversionState{
		Amount:    d.Amount,
		From:      normCode(d.From),
		To:        normCode(d.To),
		Converted: "0",
		Status:    Idle,
	}}
	s.recompute()
	return s
}

// Snapshot returns a copy of the current state.
func (s *State) Snapshot() ConversionState { return s.cur }

func (s *State) Amount() string    { return s.cur.Amount }
func (s *State) From() string      { return s.cur.From }
func (s *State) To() string        { return s.cur.To }
func (s *State) Converted() string { return s.cur.Converted }
func (s *State) Loading() bool     { return s.cur.Loading }

// Start issues the fetch a newly mounted widget makes.
func (s *State) Start() (Request, bool) {
	return s.issue()
}

// SetAmount stores new amount text and recomputes. It never fetches.
func (s *State) SetAmount(text string) {
	s.cur.Amount = text
	s.recompute()
}

// SetFrom changes the base currency. Reselecting the current code is a no-op.
func (s *State) SetFrom(code string) (Request, bool) {
	code = normCode(code)
	if code == s.cur.From {
		return Request{}, false
	}
	s.cur.From = code
	return s.issue()
}

// SetTo changes the target currency. Reselecting the current code is a no-op.
func (s *State) SetTo(code string) (Request, bool) {
	code = normCode(code)
	if code == s.cur.To {
		return Request{}, false
	}
	s.cur.To = code
	return s.issue()
}

// Swap exchanges the currencies and pivots the amount to the converted
// text. It is unavailable while a fetch is in flight.
func (s *State) Swap() (Request, bool) {
	if s.cur.Loading {
		return Request{}, false
	}
	samePair := s.cur.From == s.cur.To
	s.cur.From, s.cur.To = s.cur.To, s.cur.From
	s.cur.Amount = s.cur.Converted
	s.recompute()
	if samePair {
		return Request{}, false
	}
	return s.issue()
}

// Refresh refetches the current pair unless a fetch is already in flight.
func (s *State) Refresh() (Request, bool) {
	if s.cur.Loading {
		return Request{}, false
	}
	return s.issue()
}

// Resolve applies a fetch outcome. Results for anything but the latest
// request are discarded and applied is false. A non-nil notice is returned
// when the user must be told about a failure.
func (s *State) Resolve(r Result) (notice *Notice, applied bool) {
	if r.Seq != s.seq || !s.cur.Loading {
		return nil, false
	}
	s.cur.Loading = false

	if r.Err != nil || !(r.Quote.Rate > 0) {
		s.cur.Status = Failed
		n := FetchFailed
		return &n, true
	}

	s.cur.Rate = r.Quote.Rate
	s.cur.HasRate = true
	s.cur.UpdatedAt = r.Quote.FetchedAt
	s.cur.Status = Ready
	s.recompute()
	return nil, true
}

func (s *State) issue() (Request, bool) {
	if s.cur.From == "" || s.cur.To == "" {
		return Request{}, false
	}
	s.seq++
	s.cur.Loading = true
	s.cur.Status = Loading
	return Request{Seq: s.seq, Base: s.cur.From, Target: s.cur.To}, true
}

// recompute derives Converted from Amount and Rate. Without a rate, or with
// an amount that is not a number, the last converted text stays.
func (s *State) recompute() {
	_, err := convert.ParseAmount(s.cur.Amount)
	s.cur.AmountInvalid = err != nil
	if !s.cur.HasRate || s.cur.AmountInvalid {
		return
	}
	text, err := convert.Convert(s.cur.Amount, s.cur.Rate)
	if err != nil {
		return
	}
	s.cur.Converted = text
}

func normCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
