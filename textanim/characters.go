package textanim

import (
	"unicode"

	"github.com/go-text/typesetting/segmenter"
	"golang.org/x/text/unicode/norm"
)

// Character is one user-perceived character (grapheme cluster) of a text.
type Character struct {
	// Text is the grapheme's content.
	Text string
	// Offset is the rune offset of the grapheme in the normalized text.
	Offset int
	// Space reports whether the grapheme is whitespace.
	Space bool
}

// Characters splits text into grapheme clusters after NFC normalization,
// so a base letter followed by combining marks counts as one character
// whether or not the document stored it precomposed.
func Characters(text string) []Character {
	if text == "" {
		return nil
	}
	runes := []rune(norm.NFC.String(text))

	var seg segmenter.Segmenter
	seg.Init(runes)
	iter := seg.GraphemeIterator()

	chars := make([]Character, 0, len(runes))
	for iter.Next() {
		g := iter.Grapheme()
		chars = append(chars, Character{
			Text:   string(g.Text),
			Offset: g.Offset,
			Space:  isSpace(g.Text),
		})
	}
	return chars
}

func isSpace(runes []rune) bool {
	for _, r := range runes {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return len(runes) > 0
}

// selectorIndices maps each character to its index as seen by a selector
// counting with basedOn, and returns that selector's character count.
// Characters the selector does not count map to -1.
func selectorIndices(chars []Character, basedOn BasedOn) ([]int, int) {
	indices := make([]int, len(chars))
	count := 0
	for i, c := range chars {
		if basedOn == BasedOnCharactersExcludingSpaces && c.Space {
			indices[i] = -1
			continue
		}
		indices[i] = count
		count++
	}
	return indices, count
}
