package location

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Token is one symbol → address entry of a TokenMap
type Token struct {
	Symbol  string `json:"symbol"`
	Address string `json:"address"`
}

// TokenMap is an insertion-ordered mapping from token symbol to token address.
// Go maps do not keep order, and route derivation falls back to the first
// declared token, so the order of the environment file is preserved here.
type TokenMap struct {
	entries []Token
	index   map[string]int
}

// NewTokenMap builds a TokenMap from entries in the given order.
// Later duplicates of a symbol overwrite the address but keep the first position.
func NewTokenMap(entries ...Token) *TokenMap {
	m := &TokenMap{}
	for _, e := range entries {
		m.Set(e.Symbol, e.Address)
	}
	return m
}

// Set adds or replaces the address for symbol
func (m *TokenMap) Set(symbol, address string) {
	if m.index == nil {
		m.index = make(map[string]int)
	}
	if i, ok := m.index[symbol]; ok {
		m.entries[i].Address = address
		return
	}
	m.index[symbol] = len(m.entries)
	m.entries = append(m.entries, Token{Symbol: symbol, Address: address})
}

// Len returns the number of tokens
func (m *TokenMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.entries)
}

// Get returns the address registered for symbol
func (m *TokenMap) Get(symbol string) (string, bool) {
	if m == nil {
		return "", false
	}
	i, ok := m.index[symbol]
	if !ok {
		return "", false
	}
	return m.entries[i].Address, true
}

// Entries returns a copy of the entries in insertion order
func (m *TokenMap) Entries() []Token {
	if m == nil {
		return nil
	}
	out := make([]Token, len(m.entries))
	copy(out, m.entries)
	return out
}

// Values returns the token addresses in insertion order
func (m *TokenMap) Values() []string {
	if m == nil {
		return nil
	}
	out := make([]string, len(m.entries))
	for i, e := range m.entries {
		out[i] = e.Address
	}
	return out
}

// ContainsValue reports whether address is one of the receivable tokens
func (m *TokenMap) ContainsValue(address string) bool {
	if m == nil {
		return false
	}
	for _, e := range m.entries {
		if e.Address == address {
			return true
		}
	}
	return false
}

// UnmarshalYAML decodes a YAML mapping keeping key order
func (m *TokenMap) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: token map must be a mapping", node.Line)
	}
	*m = TokenMap{}
	for i := 0; i+1 < len(node.Content); i += 2 {
		var symbol, address string
		if err := node.Content[i].Decode(&symbol); err != nil {
			return fmt.Errorf("line %d: token symbol: %w", node.Content[i].Line, err)
		}
		if err := node.Content[i+1].Decode(&address); err != nil {
			return fmt.Errorf("line %d: token %s address: %w", node.Content[i+1].Line, symbol, err)
		}
		if _, dup := m.Get(symbol); dup {
			return fmt.Errorf("line %d: duplicate token symbol %q", node.Content[i].Line, symbol)
		}
		m.Set(symbol, address)
	}
	return nil
}

// MarshalJSON encodes the map as a JSON object in insertion order
func (m *TokenMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range m.Entries() {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(e.Symbol)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(e.Address)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
