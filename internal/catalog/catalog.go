// Package catalog holds the packet/question data model and the read-only
// catalog that maps packet keys to packets.
package catalog

import (
	"errors"
	"sort"
)

// ErrNotFound is returned when a packet key is unknown or a question index
// is out of range. The two cases are deliberately indistinguishable.
var ErrNotFound = errors.New("not found")

// Catalog is an immutable snapshot of packets keyed by packet key.
// It is safe for concurrent use; accessors return copies.
type Catalog struct {
	packets map[string]Packet
	keys    []string
}

// New validates packets and returns a catalog holding a private copy of
// them. All defects are reported together in a *ValidationError.
func New(packets map[string]Packet) (*Catalog, error) {
	if err := validatePackets(packets); err != nil {
		return nil, err
	}

	c := &Catalog{
		packets: make(map[string]Packet, len(packets)),
		keys:    make([]string, 0, len(packets)),
	}
	for key, p := range packets {
		c.packets[key] = p.clone()
		c.keys = append(c.keys, key)
	}
	sort.Strings(c.keys)
	return c, nil
}

// MustNew is like New but panics on a validation failure. It is meant for
// fixtures compiled into the binary.
func MustNew(packets map[string]Packet) *Catalog {
	c, err := New(packets)
	if err != nil {
		panic(err)
	}
	return c
}

// Keys returns every packet key in lexicographic order.
func (c *Catalog) Keys() []string {
	return append([]string{}, c.keys...)
}

// Len returns the number of packets.
func (c *Catalog) Len() int {
	return len(c.keys)
}

// Packet returns the packet stored under key, or ErrNotFound.
func (c *Catalog) Packet(key string) (Packet, error) {
	p, ok := c.packets[key]
	if !ok {
		return Packet{}, ErrNotFound
	}
	return p.clone(), nil
}

// Question returns question index of the packet stored under key.
// An unknown key and an out-of-range index both yield ErrNotFound.
func (c *Catalog) Question(key string, index int) (Question, error) {
	p, ok := c.packets[key]
	if !ok {
		return Question{}, ErrNotFound
	}
	if index < 0 || index >= len(p.Questions) {
		return Question{}, ErrNotFound
	}
	return p.Questions[index].clone(), nil
}
