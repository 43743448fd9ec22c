// Package alphabet defines the symbol set letters are drawn from. The set is
// fixed at configuration time and shared by letter validation, random draws
// and dictionary normalization.
package alphabet

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"lukechampine.com/frand"
)

// Norwegian is the default 29-letter set: A-Z plus Æ, Ø, Å.
const Norwegian = "ABCDEFGHIJKLMNOPQRSTUVWXYZÆØÅ"

type Alphabet struct {
	letters []string
	set     map[string]bool
	upper   cases.Caser
}

func New(letters string) *Alphabet {
	a := &Alphabet{
		set:   make(map[string]bool),
		upper: cases.Upper(language.Norwegian),
	}
	for _, r := range letters {
		l := string(r)
		if !a.set[l] {
			a.letters = append(a.letters, l)
			a.set[l] = true
		}
	}
	return a
}

func (a *Alphabet) Len() int { return len(a.letters) }

// Normalize upper-cases a letter or word using locale-aware casing, so that
// æ/ø/å round-trip correctly.
func (a *Alphabet) Normalize(s string) string {
	return a.upper.String(strings.TrimSpace(s))
}

// Contains reports whether s normalizes to a single letter of the alphabet.
func (a *Alphabet) Contains(s string) bool {
	return a.set[a.Normalize(s)]
}

// Draw picks a letter uniformly at random, with replacement. There is no
// depleting bag; every turn samples the full alphabet.
func (a *Alphabet) Draw() string {
	return a.letters[frand.Intn(len(a.letters))]
}
