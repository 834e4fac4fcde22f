package transfer

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	s, err := NewSession("s-1", testCatalog(t), time.Now())
	require.NoError(t, err)
	return s
}

func TestNewSession_Defaults(t *testing.T) {
	s := newTestSession(t)
	v := s.View()

	assert.Equal(t, FormValues{
		Source:      "ethereum",
		Destination: "assethub",
		Token:       weth,
		Amount:      "0",
		Beneficiary: "",
	}, v.Values)
	assert.Equal(t, OutcomeIdle, v.Outcome.Status)
	assert.False(t, v.InFlight)
	require.Len(t, v.Destinations, 2)
	require.NotNil(t, v.Tokens)
	assert.Equal(t, []string{weth, usdc}, v.Tokens.Values())
}

func TestSession_SwitchingSourceResetsDestinationAndBeneficiary(t *testing.T) {
	c := testCatalog(t)
	s := newTestSession(t)

	v, err := s.Update(c, FieldChange{Destination: ptr("muse")})
	require.NoError(t, err)
	assert.Equal(t, "muse", v.Values.Destination)
	assert.Equal(t, weth, v.Values.Token)

	v, err = s.Update(c, FieldChange{Beneficiary: ptr(ethAccount)})
	require.NoError(t, err)
	assert.Equal(t, ethAccount, v.Values.Beneficiary)

	v, err = s.Update(c, FieldChange{Source: ptr("bridgehub")})
	require.NoError(t, err)
	assert.Equal(t, "bridgehub", v.Values.Source)
	assert.Equal(t, "assethub", v.Values.Destination)
	assert.Equal(t, weth, v.Values.Token)
	assert.Empty(t, v.Values.Beneficiary)
}

func TestSession_TokenChangeKeepsBeneficiary(t *testing.T) {
	c := testCatalog(t)
	s := newTestSession(t)

	_, err := s.Update(c, FieldChange{Beneficiary: ptr(aliceSS58), Amount: ptr("5")})
	require.NoError(t, err)

	v, err := s.Update(c, FieldChange{Token: ptr(usdc)})
	require.NoError(t, err)
	assert.Equal(t, usdc, v.Values.Token)
	assert.Equal(t, aliceSS58, v.Values.Beneficiary)
	assert.Equal(t, "5", v.Values.Amount)
}

func TestSession_InvalidTokenIsCorrected(t *testing.T) {
	c := testCatalog(t)
	s := newTestSession(t)

	v, err := s.Update(c, FieldChange{Token: ptr(muse)})
	require.NoError(t, err)
	assert.Equal(t, weth, v.Values.Token)
}

func TestSession_GenerationBumpsOnRouteChangeOnly(t *testing.T) {
	c := testCatalog(t)
	s := newTestSession(t)
	g0 := s.View().Generation

	v, err := s.Update(c, FieldChange{Amount: ptr("10")})
	require.NoError(t, err)
	assert.Equal(t, g0, v.Generation)

	v, err = s.Update(c, FieldChange{Token: ptr(usdc)})
	require.NoError(t, err)
	assert.Equal(t, g0+1, v.Generation)

	v, err = s.Update(c, FieldChange{Token: ptr(usdc)})
	require.NoError(t, err)
	assert.Equal(t, g0+1, v.Generation)
}

func TestSession_UnknownSourceLeavesStateUntouched(t *testing.T) {
	c := testCatalog(t)
	s := newTestSession(t)
	before := s.View()

	_, err := s.Update(c, FieldChange{Source: ptr("kusama")})
	require.Error(t, err)
	assert.Equal(t, before, s.View())
}

func TestSession_BeginSubmitMismatch(t *testing.T) {
	s := newTestSession(t)
	values := s.View().Values

	bad := values
	bad.Source = "assethub"
	_, err := s.BeginSubmit(bad)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFormStateMismatch))
	assert.Contains(t, err.Error(), "source mismatch")

	bad = values
	bad.Destination = "muse"
	_, err = s.BeginSubmit(bad)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFormStateMismatch))
	assert.Contains(t, err.Error(), "destination mismatch")

	before := s.View()
	bad = values
	bad.Token = "0x000000000000000000000000000000000000dead"
	bad.Amount = "7"
	_, err = s.BeginSubmit(bad)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFormStateMismatch))
	assert.Contains(t, err.Error(), "token mismatch")
	assert.Equal(t, before, s.View())

	bad = values
	bad.Token = usdc
	_, err = s.BeginSubmit(bad)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFormStateMismatch))

	assert.False(t, s.View().InFlight)
}

func TestSession_SubmitLifecycle(t *testing.T) {
	s := newTestSession(t)
	values := s.View().Values
	values.Amount = "100"
	values.Beneficiary = aliceSS58

	ticket, err := s.BeginSubmit(values)
	require.NoError(t, err)
	assert.Equal(t, "s-1", ticket.SessionID)
	assert.Equal(t, values, ticket.Values)

	v := s.View()
	assert.True(t, v.InFlight)
	assert.Equal(t, OutcomePending, v.Outcome.Status)

	_, err = s.BeginSubmit(values)
	assert.True(t, errors.Is(err, ErrSubmitInFlight))

	require.NoError(t, s.Finish(ticket, Outcome{Status: OutcomeErrors, Errors: []string{"Bridge halted."}}))
	v = s.View()
	assert.False(t, v.InFlight)
	assert.Equal(t, OutcomeErrors, v.Outcome.Status)
	assert.Equal(t, []string{"Bridge halted."}, v.Outcome.Errors)
	assert.Equal(t, aliceSS58, v.Values.Beneficiary)

	// the form stays editable and can be resubmitted
	ticket, err = s.BeginSubmit(values)
	require.NoError(t, err)
	require.NoError(t, s.Finish(ticket, Outcome{Status: OutcomePassed}))
	assert.Equal(t, OutcomePassed, s.View().Outcome.Status)
}

func TestSession_StaleResultDiscarded(t *testing.T) {
	c := testCatalog(t)
	s := newTestSession(t)
	values := s.View().Values

	ticket, err := s.BeginSubmit(values)
	require.NoError(t, err)

	_, err = s.Update(c, FieldChange{Destination: ptr("muse")})
	require.NoError(t, err)

	err = s.Finish(ticket, Outcome{Status: OutcomePassed})
	assert.True(t, errors.Is(err, ErrStaleResult))

	v := s.View()
	assert.False(t, v.InFlight)
	assert.Equal(t, OutcomeIdle, v.Outcome.Status)
	assert.Equal(t, "muse", v.Values.Destination)
}

func TestSession_AbortClearsInFlight(t *testing.T) {
	s := newTestSession(t)
	ticket, err := s.BeginSubmit(s.View().Values)
	require.NoError(t, err)

	s.Abort(ticket)
	v := s.View()
	assert.False(t, v.InFlight)
	assert.Equal(t, OutcomeIdle, v.Outcome.Status)
}

func TestSession_ConcurrentSubmitOnlyOneWins(t *testing.T) {
	s := newTestSession(t)
	values := s.View().Values

	const workers = 16
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		success int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.BeginSubmit(values); err == nil {
				mu.Lock()
				success++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, success)
}
