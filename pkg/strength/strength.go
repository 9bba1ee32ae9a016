// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

// Package strength scores passwords with a length and character variety
// heuristic and maps the score to a label and a display color.
package strength

import (
	"unicode/utf8"
)

const (
	LabelEmpty  = "Enter a password"
	LabelWeak   = "Weak"
	LabelOkay   = "Okay"
	LabelStrong = "Strong"

	PlaceholderColor = "#9ef0ff"
	WeakColor        = "#ff4c4c"
	OkayColor        = "#ffcc00"
	StrongColor      = "#00ff99"
)

const (
	// MaxScore is 6 points from length plus one per character class.
	MaxScore = 10

	weakMax = 4
	okayMax = 8
)

// length tiers, each worth 2 points. They are cumulative.
var lengthTiers = []int{8, 12, 16}

// Result is the label and display color for a password.
type Result struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

func (r Result) String() string {
	return r.Label
}

// Evaluate maps a password to its strength label and color. It accepts any
// string and never fails.
func Evaluate(password string) Result {
	if password == "" {
		return Result{Label: LabelEmpty, Color: PlaceholderColor}
	}

	return ForScore(Score(password))
}

// Score computes the heuristic score of a password, between 0 and MaxScore.
func Score(password string) int {
	length := utf8.RuneCountInString(password)

	score := 0
	for _, tier := range lengthTiers {
		if length >= tier {
			score += 2
		}
	}

	return score + Classes(password).Count()
}

// ForScore returns the label for an already computed score.
func ForScore(score int) Result {
	switch {
	case score <= weakMax:
		return Result{Label: LabelWeak, Color: WeakColor}
	case score <= okayMax:
		return Result{Label: LabelOkay, Color: OkayColor}
	default:
		return Result{Label: LabelStrong, Color: StrongColor}
	}
}
