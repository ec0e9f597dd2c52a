package textanim

// SelectorMode defines how a selector's factor combines with the factors
// of the selectors above it.
type SelectorMode uint8

const (
	ModeAdd SelectorMode = iota
	ModeSubtract
	ModeIntersect
	ModeMin
	ModeMax
	ModeDifference
)

// String returns a human-readable name for the mode.
func (m SelectorMode) String() string {
	switch m {
	case ModeAdd:
		return "Add"
	case ModeSubtract:
		return "Subtract"
	case ModeIntersect:
		return "Intersect"
	case ModeMin:
		return "Min"
	case ModeMax:
		return "Max"
	case ModeDifference:
		return "Difference"
	default:
		return "Unknown"
	}
}

// Overlay folds factor into old using mode and clamps the result to
// [-1, 1]. The first selector of an animator seeds the accumulator with
// its own factor unless its mode is Subtract, in which case it subtracts
// from the initial accumulator of 1.
func Overlay(old, factor float32, mode SelectorMode, isFirst bool) float32 {
	var v float32
	if isFirst && mode != ModeSubtract {
		v = factor
	} else {
		switch mode {
		case ModeSubtract:
			if factor >= 0 {
				v = old * (1 - factor)
			} else {
				v = old * (-1 - factor)
			}
		case ModeIntersect:
			v = old * factor
		case ModeMin:
			v = min(old, factor)
		case ModeMax:
			v = max(old, factor)
		case ModeDifference:
			v = old - factor
			if v < 0 {
				v = -v
			}
		default:
			v = old + factor
		}
	}
	return clampFactor(v)
}

func clampFactor(v float32) float32 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}

// BasedOn selects which characters a selector counts.
type BasedOn uint8

const (
	// BasedOnCharacters counts every grapheme.
	BasedOnCharacters BasedOn = iota
	// BasedOnCharactersExcludingSpaces skips whitespace graphemes; they
	// receive a zero factor from the selector.
	BasedOnCharactersExcludingSpaces
)
