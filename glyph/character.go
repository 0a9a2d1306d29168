package glyph

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"golang.org/x/text/unicode/norm"
)

// Flags classify a character within the repertoire.
type Flags uint16

const (
	FlagGB2312      Flags = 1 << iota // in the GB2312 set
	FlagGeneral                       // in the Table of General Standard Chinese Characters
	FlagTraditional                   // traditional form
	FlagPrivate                       // private-use component without a standard codepoint
)

// Has reports whether all bits of o are set in f.
func (f Flags) Has(o Flags) bool { return f&o == o }

// Reading is one pronunciation of a character.
type Reading struct {
	Pinyin     string
	Importance float64
}

// Character is one entry of the repertoire.
type Character struct {
	Unicode  rune
	Name     string
	Flags    Flags
	Glyphs   []Glyph
	Readings []Reading
}

// Key returns the repertoire key of c: its codepoint when set,
// otherwise its name.
func (c Character) Key() string {
	if c.Unicode != 0 {
		return string(c.Unicode)
	}
	return c.Name
}

// Ambiguous reports whether c has more than one glyph variant.
func (c Character) Ambiguous() bool { return len(c.Glyphs) > 1 }

// Repertoire is a read-only table of characters keyed in NFC.
type Repertoire struct {
	chars map[string]Character
}

// NewRepertoire indexes chars by Key. Later duplicates replace earlier ones.
func NewRepertoire(chars ...Character) *Repertoire {
	r := &Repertoire{chars: make(map[string]Character, len(chars))}
	for _, c := range chars {
		r.chars[Normalize(c.Key())] = c
	}
	return r
}

// Normalize returns the NFC form of a character name.
func Normalize(name string) string { return norm.NFC.String(name) }

// Lookup returns the character named name.
func (r *Repertoire) Lookup(name string) (Character, bool) {
	if r == nil {
		return Character{}, false
	}
	c, ok := r.chars[Normalize(name)]
	return c, ok
}

// Has reports whether name is in r.
func (r *Repertoire) Has(name string) bool {
	_, ok := r.Lookup(name)
	return ok
}

// Names returns every key in ascending order.
func (r *Repertoire) Names() []string {
	if r == nil {
		return nil
	}
	names := maps.Keys(r.chars)
	slices.Sort(names)
	return names
}

// Len returns the number of characters.
func (r *Repertoire) Len() int {
	if r == nil {
		return 0
	}
	return len(r.chars)
}
