// Package rules maps constituency categories to the base parameters the
// synthesizer draws around.
package rules

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidCategory = errors.New("category resolves to no rule")

// Params are the seed values for one seat.
type Params struct {
	BaseCost    float64 `json:"base_cost"`    // lakhs
	BaseTurnout float64 `json:"base_turnout"` // percent
	BaseMCC     float64 `json:"base_mcc"`     // days
}

func (p Params) IsZero() bool { return p == Params{} }

// Predicate reports whether a rule applies to a category.
type Predicate func(category string) bool

type Rule struct {
	Name   string
	Match  Predicate
	Params Params
}

// Table is an ordered cascade. Resolve starts from Default and applies every
// matching rule in order, so the last match wins.
type Table struct {
	Name    string
	Default Params
	Rules   []Rule
}

// Resolve returns the parameters for category and the names of the rules
// that fired, in order. The last entry of the trace is the winning rule.
func (t Table) Resolve(category string) (Params, []string, error) {
	if strings.TrimSpace(category) == "" {
		return Params{}, nil, fmt.Errorf("%w: empty category", ErrInvalidCategory)
	}
	acc := t.Default
	var fired []string
	for _, r := range t.Rules {
		if r.Match != nil && r.Match(category) {
			acc = r.Params
			fired = append(fired, r.Name)
		}
	}
	if acc.IsZero() {
		return Params{}, nil, fmt.Errorf("%w: %s table: %q", ErrInvalidCategory, t.Name, category)
	}
	return acc, fired, nil
}

// Lookup is Resolve without the trace.
func (t Table) Lookup(category string) (Params, error) {
	p, _, err := t.Resolve(category)
	return p, err
}

// Contains matches when the category contains any of subs (case-sensitive).
func Contains(subs ...string) Predicate {
	return func(category string) bool {
		for _, s := range subs {
			if strings.Contains(category, s) {
				return true
			}
		}
		return false
	}
}

// Equals matches the whole category against any of labels.
func Equals(labels ...string) Predicate {
	return func(category string) bool {
		for _, l := range labels {
			if category == l {
				return true
			}
		}
		return false
	}
}
