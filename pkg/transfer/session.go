package transfer

import (
	"fmt"
	"sync"
	"time"

	"github.com/chainsafe/bridge-console/pkg/location"
	"github.com/chainsafe/bridge-console/pkg/plan"
	"github.com/chainsafe/bridge-console/pkg/route"
)

// OutcomeStatus is the state of the last submit
type OutcomeStatus string

const (
	OutcomeIdle    OutcomeStatus = "idle"
	OutcomePending OutcomeStatus = "pending"
	OutcomeErrors  OutcomeStatus = "errors"
	OutcomePassed  OutcomeStatus = "passed"
)

// Outcome is the result of a submit. Errors holds one message per failed
// precondition; Passed outcomes hand over to the external submission flow.
type Outcome struct {
	Status   OutcomeStatus  `json:"status"`
	Errors   []string       `json:"errors,omitempty"`
	Failures []plan.Failure `json:"failures,omitempty"`
}

// FieldChange carries the fields a user edited. Nil fields are unchanged.
type FieldChange struct {
	Source            *string `json:"source,omitempty"`
	Destination       *string `json:"destination,omitempty"`
	Token             *string `json:"token,omitempty"`
	Amount            *string `json:"amount,omitempty"`
	Beneficiary       *string `json:"beneficiary,omitempty"`
	ManualBeneficiary *bool   `json:"manualBeneficiary,omitempty"`
}

// Ticket identifies one in-flight feasibility check
type Ticket struct {
	SessionID  string
	Generation uint64
	Route      route.Route
	Values     FormValues
}

// Session is the state of one transfer form. All methods are safe for
// concurrent use; each call observes and mutates the form atomically.
type Session struct {
	id string

	mu         sync.Mutex
	values     FormValues
	route      route.Route
	manual     bool
	generation uint64
	inFlight   bool
	outcome    Outcome
	lastSeen   time.Time
}

// View is a read-only snapshot of a session
type View struct {
	ID                string               `json:"id"`
	Values            FormValues           `json:"values"`
	Destinations      []*location.Location `json:"destinations"`
	Tokens            *location.TokenMap   `json:"tokens"`
	ManualBeneficiary bool                 `json:"manualBeneficiary"`
	Generation        uint64               `json:"generation"`
	InFlight          bool                 `json:"inFlight"`
	Outcome           Outcome              `json:"outcome"`
}

// NewSession creates a session on the catalog's initial route
func NewSession(id string, catalog *location.Catalog, now time.Time) (*Session, error) {
	r, err := route.Initial(catalog)
	if err != nil {
		return nil, err
	}
	return &Session{
		id:       id,
		values:   DefaultValues(r),
		route:    r,
		outcome:  Outcome{Status: OutcomeIdle},
		lastSeen: now,
	}, nil
}

// ID returns the session id
func (s *Session) ID() string {
	return s.id
}

// Route returns the current route
func (s *Session) Route() route.Route {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.route
}

// View returns a snapshot of the session
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

func (s *Session) viewLocked() View {
	v := View{
		ID:                s.id,
		Values:            s.values,
		Destinations:      append([]*location.Location(nil), s.route.Destinations...),
		ManualBeneficiary: s.manual,
		Generation:        s.generation,
		InFlight:          s.inFlight,
		Outcome:           s.outcome,
	}
	if s.route.Destination != nil {
		v.Tokens = s.route.Destination.ERC20TokensReceivable
	}
	return v
}

// Update applies a user edit and re-derives the route. The corrected
// destination and token are written back into the form, and the beneficiary
// is cleared when the source or destination changed. Any route change
// invalidates an in-flight check.
func (s *Session) Update(catalog *location.Catalog, change FieldChange) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.values
	if change.Source != nil {
		next.Source = *change.Source
	}
	if change.Destination != nil {
		next.Destination = *change.Destination
	}
	if change.Token != nil {
		next.Token = *change.Token
	}
	if change.Amount != nil {
		next.Amount = *change.Amount
	}
	if change.Beneficiary != nil {
		next.Beneficiary = *change.Beneficiary
	}

	r, err := route.Derive(catalog, s.route, next.Source, next.Destination, next.Token)
	if err != nil {
		return View{}, err
	}

	next.Destination = r.DestinationID()
	next.Token = r.Token
	if r.SourceID() != s.route.SourceID() || r.DestinationID() != s.route.DestinationID() {
		next.Beneficiary = ""
	}

	if !r.Equal(s.route) {
		s.generation++
		if !s.inFlight {
			s.outcome = Outcome{Status: OutcomeIdle}
		}
	}

	s.route = r
	s.values = next
	if change.ManualBeneficiary != nil {
		s.manual = *change.ManualBeneficiary
	}

	return s.viewLocked(), nil
}

// BeginSubmit marks a feasibility check in flight for values. The submitted
// source, destination and token must match the session's route.
func (s *Session) BeginSubmit(values FormValues) (Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.inFlight {
		return Ticket{}, ErrSubmitInFlight
	}
	if values.Source != s.route.SourceID() {
		return Ticket{}, fmt.Errorf("%w: source mismatch %s and %s", ErrFormStateMismatch, s.route.SourceID(), values.Source)
	}
	if values.Destination != s.route.DestinationID() {
		return Ticket{}, fmt.Errorf("%w: destination mismatch %s and %s", ErrFormStateMismatch, s.route.DestinationID(), values.Destination)
	}
	if values.Token != s.route.Token {
		return Ticket{}, fmt.Errorf("%w: token mismatch %s and %s", ErrFormStateMismatch, s.route.Token, values.Token)
	}

	s.values.Token = values.Token
	s.values.Amount = values.Amount
	s.values.Beneficiary = values.Beneficiary
	s.inFlight = true
	s.outcome = Outcome{Status: OutcomePending}

	return Ticket{
		SessionID:  s.id,
		Generation: s.generation,
		Route:      s.route,
		Values:     values,
	}, nil
}

// Finish records the outcome of the check identified by t. Outcomes for a
// route the user has since changed are dropped with ErrStaleResult.
func (s *Session) Finish(t Ticket, outcome Outcome) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.inFlight = false
	if t.Generation != s.generation {
		s.outcome = Outcome{Status: OutcomeIdle}
		return ErrStaleResult
	}
	s.outcome = outcome
	return nil
}

// Abort clears the in-flight flag of t without recording an outcome
func (s *Session) Abort(t Ticket) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.inFlight = false
	if t.Generation == s.generation {
		s.outcome = Outcome{Status: OutcomeIdle}
	}
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) idleSince(now time.Time) (time.Duration, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastSeen), s.inFlight
}
