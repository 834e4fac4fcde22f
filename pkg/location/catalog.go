package location

import (
	"errors"
	"fmt"
	"math/big"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	ErrDuplicateLocation = errors.New("duplicate location id")
	ErrInvalidLocation   = errors.New("invalid location")
)

// Catalog is the read-only set of locations of one bridge environment.
// Locations keep the order they were declared in.
type Catalog struct {
	name      string
	gateway   string
	locations []*Location
	byID      map[string]*Location
}

// NewCatalog builds a catalog, rejecting duplicate ids and unknown types.
// Destination ids that reference no location are kept; route derivation
// filters them out.
func NewCatalog(name, gateway string, locations []*Location) (*Catalog, error) {
	c := &Catalog{
		name:      name,
		gateway:   gateway,
		locations: make([]*Location, 0, len(locations)),
		byID:      make(map[string]*Location, len(locations)),
	}
	for _, l := range locations {
		if l == nil || l.ID == "" {
			return nil, fmt.Errorf("%w: missing id", ErrInvalidLocation)
		}
		if !l.Type.Valid() {
			return nil, fmt.Errorf("%w: %s has unknown type %q", ErrInvalidLocation, l.ID, l.Type)
		}
		if _, dup := c.byID[l.ID]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateLocation, l.ID)
		}
		if l.ERC20TokensReceivable == nil {
			l.ERC20TokensReceivable = NewTokenMap()
		}
		c.byID[l.ID] = l
		c.locations = append(c.locations, l)
	}
	return c, nil
}

// Name returns the environment name
func (c *Catalog) Name() string { return c.name }

// Gateway returns the bridge gateway contract address of the environment
func (c *Catalog) Gateway() string { return c.gateway }

// All returns every location in declaration order
func (c *Catalog) All() []*Location {
	out := make([]*Location, len(c.locations))
	copy(out, c.locations)
	return out
}

// Find looks up a location by id
func (c *Catalog) Find(id string) (*Location, bool) {
	l, ok := c.byID[id]
	return l, ok
}

// Sources returns the locations that can be selected as transfer source,
// i.e. those with at least one destination that resolves in the catalog.
func (c *Catalog) Sources() []*Location {
	out := make([]*Location, 0, len(c.locations))
	for _, l := range c.locations {
		if l.HasDestinations() && len(c.DestinationsOf(l)) > 0 {
			out = append(out, l)
		}
	}
	return out
}

// DestinationsOf resolves the destination ids of source against the catalog,
// in the order they are declared on source. Dangling ids are dropped.
func (c *Catalog) DestinationsOf(source *Location) []*Location {
	out := make([]*Location, 0, len(source.DestinationIDs))
	for _, id := range source.DestinationIDs {
		if d, ok := c.byID[id]; ok {
			out = append(out, d)
		}
	}
	return out
}

type environmentFile struct {
	Name      string         `yaml:"name"`
	Gateway   string         `yaml:"gateway"`
	Locations []locationFile `yaml:"locations"`
}

type locationFile struct {
	ID                    string        `yaml:"id"`
	Name                  string        `yaml:"name"`
	Type                  Type          `yaml:"type"`
	DestinationIDs        []string      `yaml:"destination_ids"`
	ParaInfo              *paraInfoFile `yaml:"para_info"`
	ERC20TokensReceivable *TokenMap     `yaml:"erc20_tokens_receivable"`
}

type paraInfoFile struct {
	ParaID            uint32 `yaml:"para_id"`
	DestinationFeeDOT string `yaml:"destination_fee_dot"`
	Has20ByteAccounts bool   `yaml:"has_20_byte_accounts"`
}

// LoadCatalog reads an environment file
func LoadCatalog(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read environment file: %w", err)
	}
	return ParseCatalog(raw)
}

// ParseCatalog decodes an environment from YAML
func ParseCatalog(raw []byte) (*Catalog, error) {
	var env environmentFile
	if err := yaml.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("failed to unmarshal environment: %w", err)
	}

	locations := make([]*Location, 0, len(env.Locations))
	for _, lf := range env.Locations {
		l, err := lf.toLocation()
		if err != nil {
			return nil, err
		}
		locations = append(locations, l)
	}

	return NewCatalog(env.Name, env.Gateway, locations)
}

func (lf locationFile) toLocation() (*Location, error) {
	l := &Location{
		ID:                    lf.ID,
		Name:                  lf.Name,
		Type:                  lf.Type,
		DestinationIDs:        lf.DestinationIDs,
		ERC20TokensReceivable: lf.ERC20TokensReceivable,
	}
	if lf.ParaInfo != nil {
		fee := new(big.Int)
		if lf.ParaInfo.DestinationFeeDOT != "" {
			if _, ok := fee.SetString(lf.ParaInfo.DestinationFeeDOT, 10); !ok {
				return nil, fmt.Errorf("%w: %s has invalid destination_fee_dot %q",
					ErrInvalidLocation, lf.ID, lf.ParaInfo.DestinationFeeDOT)
			}
		}
		l.ParaInfo = &ParaInfo{
			ParaID:            lf.ParaInfo.ParaID,
			DestinationFeeDOT: fee,
			Has20ByteAccounts: lf.ParaInfo.Has20ByteAccounts,
		}
	}
	return l, nil
}
