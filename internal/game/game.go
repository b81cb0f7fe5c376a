// Package game holds the number rules of the supported game types: which
// numbers are legal for a game and how panna numbers are canonicalized.
package game

import (
	"slices"
	"sort"

	"github.com/GlebRadaev/wagerhall/internal/domain"
)

const maxSuggestions = 5

// Validate reports whether number is a legal wager number for gameType.
func Validate(gameType domain.GameType, number string) bool {
	switch gameType {
	case domain.SingleDigit:
		return isDigits(number, 1)
	case domain.Jodi:
		return isDigits(number, 2)
	case domain.SinglePanna:
		return isDigits(number, 3) && distinctDigits(number) == 3
	case domain.DoublePanna:
		return isDigits(number, 3) && distinctDigits(number) == 2
	case domain.TriplePanna:
		return isDigits(number, 3) && distinctDigits(number) == 1
	default:
		return false
	}
}

// Canonicalize orders the digits of a 3-digit panna ascending, with 0 ranked
// above 9: "502" becomes "250", "005" becomes "500".
func Canonicalize(panna string) (string, error) {
	if !isDigits(panna, 3) {
		return "", domain.ErrInvalidShape
	}
	digits := []byte(panna)
	sort.Slice(digits, func(i, j int) bool {
		return rank(digits[i]) < rank(digits[j])
	})
	return string(digits), nil
}

// Normalize validates number for gameType and returns the form it is stored
// and matched in.
func Normalize(gameType domain.GameType, number string) (string, error) {
	if !Validate(gameType, number) {
		return "", domain.ErrInvalidNumberFormat
	}
	if !gameType.IsPanna() {
		return number, nil
	}
	return Canonicalize(number)
}

// Suggest completes a 1 or 2 digit prefix into legal panna numbers for
// gameType and returns up to five distinct canonical forms, sorted.
func Suggest(gameType domain.GameType, prefix string) []string {
	if !gameType.IsPanna() || len(prefix) == 0 || len(prefix) >= 3 || !isDigits(prefix, len(prefix)) {
		return nil
	}

	seen := make(map[string]struct{})
	var out []string
	for i := 0; i <= 9; i++ {
		for j := 0; j <= 9; j++ {
			candidate := prefix + string(rune('0'+i))
			if len(prefix) == 1 {
				candidate += string(rune('0' + j))
			} else if j > 0 {
				break
			}
			if !Validate(gameType, candidate) {
				continue
			}
			canonical, _ := Canonicalize(candidate)
			if _, ok := seen[canonical]; ok {
				continue
			}
			seen[canonical] = struct{}{}
			out = append(out, canonical)
		}
	}

	slices.Sort(out)
	if len(out) > maxSuggestions {
		out = out[:maxSuggestions]
	}
	return out
}

// IsWinningNumber reports whether s has the shape of a declarable result.
func IsWinningNumber(s string) bool {
	return len(s) >= 1 && len(s) <= 3 && isDigits(s, len(s))
}

func rank(d byte) int {
	if d == '0' {
		return 10
	}
	return int(d - '0')
}

func isDigits(s string, n int) bool {
	if len(s) != n {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func distinctDigits(s string) int {
	var seen [10]bool
	n := 0
	for i := 0; i < len(s); i++ {
		d := s[i] - '0'
		if !seen[d] {
			seen[d] = true
			n++
		}
	}
	return n
}
