// Package profile holds the user profile values and the rules that turn
// them into the printed profile card.
package profile

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"unicode"
)

// Literal profile values
const (
	DefaultInitial    = 'J'
	DefaultAge        = 30
	DefaultHeight     = 5.9 // feet
	DefaultYearsLater = 5
)

// TallThreshold is the height (in feet) a profile must exceed to be called tall.
const TallThreshold = 6.0

// Fixed card text
const (
	Header         = "--- User Profile ---"
	Footer         = "--- End of Profile ---"
	TallVerdict    = "You're quite tall!"
	AverageVerdict = "Average height noted."
)

// Profile is a single user's profile card.
type Profile struct {
	Initial    rune
	Age        int
	Height     float64 // feet
	YearsLater int
}

// Default returns the profile with the literal values.
func Default() Profile {
	return Profile{
		Initial:    DefaultInitial,
		Age:        DefaultAge,
		Height:     DefaultHeight,
		YearsLater: DefaultYearsLater,
	}
}

// FutureAge is the age after YearsLater years.
func (p Profile) FutureAge() int {
	return p.Age + p.YearsLater
}

// IsTall reports whether the height is strictly above TallThreshold.
func (p Profile) IsTall() bool {
	return p.Height > TallThreshold
}

// Verdict returns the height line for the card.
func (p Profile) Verdict() string {
	if p.IsTall() {
		return TallVerdict
	}
	return AverageVerdict
}

// Lines returns the card lines in print order, without trailing newlines.
func (p Profile) Lines() []string {
	return []string{
		Header,
		fmt.Sprintf("Initial: %c", p.Initial),
		fmt.Sprintf("Current Age: %d years", p.Age),
		fmt.Sprintf("Height: %.1f feet", p.Height),
		fmt.Sprintf("In %d years, age will be: %d", p.YearsLater, p.FutureAge()),
		p.Verdict(),
		Footer,
	}
}

// Validate checks values supplied from outside the literal defaults.
func (p Profile) Validate() error {
	var errs []string

	if p.Initial == 0 || !unicode.IsPrint(p.Initial) || unicode.IsSpace(p.Initial) {
		errs = append(errs, fmt.Sprintf("initial must be a single printable character, got %q", p.Initial))
	}
	if p.Age < 0 {
		errs = append(errs, "age must be non-negative")
	}
	if p.YearsLater < 0 {
		errs = append(errs, "years_later must be non-negative")
	}
	if p.Age >= 0 && p.YearsLater >= 0 && p.Age > math.MaxInt-p.YearsLater {
		errs = append(errs, "age + years_later overflows")
	}
	if math.IsNaN(p.Height) || math.IsInf(p.Height, 0) || p.Height <= 0 {
		errs = append(errs, "height must be a positive number")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

// ParseInitial converts a one-character string into an initial.
func ParseInitial(s string) (rune, error) {
	r := []rune(s)
	if len(r) != 1 {
		return 0, fmt.Errorf("initial must be exactly one character, got %q", s)
	}
	return r[0], nil
}
