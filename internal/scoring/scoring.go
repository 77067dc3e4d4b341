// Package scoring implements the house Farkle rules: which selections may be
// banked, what they are worth, and whether a roll has anything to bank at all.
//
// The table doubles per die beyond three of a kind:
//
//	ones:  100 each below three, 1000 / 2000 / 4000 / 8000 for 3..6
//	fives:  50 each below three,  500 / 1000 / 2000 / 4000 for 3..6
//	2,3,4,6: face*100 for three, doubling for each extra die
//
// There are no straights, three pairs or other combination bonuses.
package scoring

import "github.com/KirkDiggler/kostka/internal/dice"

const minGroup = 3

// Counts returns how often each face occurs. Index 0 collects faces outside
// the valid range so callers can reject them.
func Counts(faces []int) [dice.Sides + 1]int {
	var counts [dice.Sides + 1]int
	for _, face := range faces {
		if face < 1 || face > dice.Sides {
			counts[0]++
			continue
		}
		counts[face]++
	}
	return counts
}

// isSingleScorer reports whether a lone die of this face scores on its own
func isSingleScorer(face int) bool {
	return face == 1 || face == 5
}

// IsValidSelection reports whether the selected faces may be banked.
// Ones and fives are always legal; any other face must appear at least three
// times. One offending face rejects the whole selection.
func IsValidSelection(selection []int) bool {
	if len(selection) == 0 {
		return false
	}

	counts := Counts(selection)
	if counts[0] > 0 {
		return false
	}

	for face := 1; face <= dice.Sides; face++ {
		if isSingleScorer(face) {
			continue
		}
		if counts[face] > 0 && counts[face] < minGroup {
			return false
		}
	}

	return true
}

// CalculateScore returns the points a selection is worth. Invalid selections
// score 0.
func CalculateScore(selection []int) int {
	if !IsValidSelection(selection) {
		return 0
	}

	counts := Counts(selection)
	total := 0
	for face := 1; face <= dice.Sides; face++ {
		total += faceScore(face, counts[face])
	}

	return total
}

func faceScore(face, count int) int {
	if count == 0 {
		return 0
	}

	if count >= minGroup {
		return groupBase(face) << (count - minGroup)
	}

	switch face {
	case 1:
		return count * 100
	case 5:
		return count * 50
	}

	return 0
}

// groupBase is the value of exactly three of a kind
func groupBase(face int) int {
	if face == 1 {
		return 1000
	}
	return face * 100
}

// HasScoringDice reports whether a full roll contains anything bankable: a 1,
// a 5, or any face three or more times. A false result is a bust.
func HasScoringDice(roll []int) bool {
	counts := Counts(roll)
	if counts[1] > 0 || counts[5] > 0 {
		return true
	}

	for face := 1; face <= dice.Sides; face++ {
		if counts[face] >= minGroup {
			return true
		}
	}

	return false
}

// ScoringIndices returns the positions of every die in the roll that can take
// part in a valid selection. Banking exactly these dice is always valid and
// is the highest scoring selection for the roll. The result is empty for a bust.
func ScoringIndices(roll []int) []int {
	counts := Counts(roll)
	indices := make([]int, 0, len(roll))
	for i, face := range roll {
		if face < 1 || face > dice.Sides {
			continue
		}
		if isSingleScorer(face) || counts[face] >= minGroup {
			indices = append(indices, i)
		}
	}
	return indices
}
