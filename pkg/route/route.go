// Package route keeps the transfer form's (source, destination, token)
// selection consistent with the location catalog.
package route

import (
	"errors"
	"fmt"

	"github.com/chainsafe/bridge-console/pkg/location"
)

var (
	// ErrUnknownLocation means a selected id is not in the catalog.
	ErrUnknownLocation = errors.New("unknown location")
	// ErrNoDestinations means the source has no resolvable destination.
	// Selectable sources must exclude such locations.
	ErrNoDestinations = errors.New("source has no destinations")
	// ErrNoTokens means the destination receives no tokens.
	ErrNoTokens = errors.New("destination receives no tokens")
)

// Route is the derived (source, destination, token) selection.
// Destination is always a member of Destinations and Token is always one of
// Destination's receivable token addresses.
type Route struct {
	Source       *location.Location
	Destinations []*location.Location
	Destination  *location.Location
	Token        string
}

// SourceID returns the id of the source, or "" for the zero route
func (r Route) SourceID() string {
	if r.Source == nil {
		return ""
	}
	return r.Source.ID
}

// DestinationID returns the id of the destination, or "" for the zero route
func (r Route) DestinationID() string {
	if r.Destination == nil {
		return ""
	}
	return r.Destination.ID
}

// Equal reports whether both routes select the same source, destination and token
func (r Route) Equal(o Route) bool {
	return r.SourceID() == o.SourceID() &&
		r.DestinationID() == o.DestinationID() &&
		r.Token == o.Token
}

// Initial returns the default route: the first selectable source, its first
// destination and that destination's first token.
func Initial(catalog *location.Catalog) (Route, error) {
	sources := catalog.Sources()
	if len(sources) == 0 {
		return Route{}, fmt.Errorf("%w: catalog %q has no selectable source", ErrNoDestinations, catalog.Name())
	}
	return Derive(catalog, Route{}, sources[0].ID, "", "")
}

// Derive recomputes a consistent route after the user changed any of the
// selected source, destination or token ids.
//
// The source is re-resolved only when sourceID differs from previous; the
// destination list is then rebuilt from the source's destination ids. The
// current destination and token are kept when still valid, otherwise the
// first available entry is taken. previous is never modified.
func Derive(catalog *location.Catalog, previous Route, sourceID, destinationID, tokenID string) (Route, error) {
	next := Route{
		Source:       previous.Source,
		Destinations: previous.Destinations,
	}

	if previous.Source == nil || previous.Source.ID != sourceID {
		source, ok := catalog.Find(sourceID)
		if !ok {
			return Route{}, fmt.Errorf("%w: source %q", ErrUnknownLocation, sourceID)
		}
		next.Source = source
		next.Destinations = catalog.DestinationsOf(source)
	}

	if len(next.Destinations) == 0 {
		return Route{}, fmt.Errorf("%w: %s", ErrNoDestinations, next.Source.ID)
	}

	next.Destination = next.Destinations[0]
	for _, d := range next.Destinations {
		if d.ID == destinationID {
			next.Destination = d
			break
		}
	}

	tokens := next.Destination.ERC20TokensReceivable.Values()
	if len(tokens) == 0 {
		return Route{}, fmt.Errorf("%w: %s", ErrNoTokens, next.Destination.ID)
	}
	next.Token = tokens[0]
	for _, tk := range tokens {
		if tk == tokenID {
			next.Token = tk
			break
		}
	}

	// Detach from the caller's slice so later derivations cannot alias it.
	next.Destinations = append([]*location.Location(nil), next.Destinations...)

	return next, nil
}
