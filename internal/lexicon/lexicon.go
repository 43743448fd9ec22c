// Package lexicon holds the fixed set of valid words. The set is loaded once
// at startup and read-only afterwards.
package lexicon

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type Lexicon interface {
	HasWord(word string) bool
}

// Set is an in-memory word set keyed by upper-cased word.
type Set struct {
	words map[string]bool
}

func NewSet(words []string) *Set {
	upper := cases.Upper(language.Norwegian)
	s := &Set{words: make(map[string]bool, len(words))}
	for _, w := range words {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		s.words[upper.String(w)] = true
	}
	return s
}

// Load reads a newline-delimited UTF-8 word list.
func Load(path string) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()

	var words []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		words = append(words, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read word list: %w", err)
	}
	return NewSet(words), nil
}

func (s *Set) HasWord(word string) bool { return s.words[word] }

func (s *Set) Len() int { return len(s.words) }

// AcceptAll treats every string as a word. Test helper.
type AcceptAll struct{}

func (AcceptAll) HasWord(string) bool { return true }
