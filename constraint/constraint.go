// Package constraint implements the value-level rules attached to ISO 20022
// leaf types: patterns, length bounds, numeric bounds, and enumerated
// literal sets.
//
// Constraints are pure predicates. Evaluating one has no side effects and
// violations are never transient: the same value always fails the same way,
// with the same stable numeric code.
package constraint

import (
	"fmt"
	"regexp"
	"slices"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/openpayments/iso20022"
	"github.com/openpayments/iso20022/cache"
)

// Kind identifies which rule a Constraint applies.
type Kind int

const (
	// KindPattern requires the value to fully match a regular expression.
	KindPattern Kind = iota + 1
	// KindMinLength requires at least n characters.
	KindMinLength
	// KindMaxLength requires at most n characters.
	KindMaxLength
	// KindMinValue requires a numeric value >= the declared bound.
	KindMinValue
	// KindMaxValue requires a numeric value <= the declared bound.
	KindMaxValue
	// KindEnumeration requires membership in a fixed literal set.
	KindEnumeration
)

// Constraint is one declared rule over a leaf value.
type Constraint struct {
	kind   Kind
	re     *regexp.Regexp
	expr   string
	length int
	bound  decimal.Decimal
	values []string
}

// Kind returns which rule this constraint applies.
func (c Constraint) Kind() Kind {
	return c.kind
}

// The schema patterns are written without anchors but are matched against
// the whole value, as XSD pattern facets are.
func anchor(expr string) string {
	return `\A(?:` + expr + `)\z`
}

// patterns memoizes compiled expressions supplied at evaluation time.
var patterns = cache.New[string, *regexp.Regexp](256)

// Pattern builds a pattern constraint from an already compiled expression.
// The caller is responsible for anchoring.
func Pattern(re *regexp.Regexp) Constraint {
	return Constraint{kind: KindPattern, re: re}
}

// MustPattern compiles a schema pattern, anchored to match the full value,
// and panics on a malformed expression. Intended for package-level leaf
// type declarations.
func MustPattern(expr string) Constraint {
	return Constraint{kind: KindPattern, re: regexp.MustCompile(anchor(expr))}
}

// PatternExpr defers compilation to evaluation time, memoized through an
// LRU cache. Use it for patterns that are not known until runtime.
func PatternExpr(expr string) Constraint {
	return Constraint{kind: KindPattern, expr: expr}
}

// MinLength requires the value to hold at least n characters.
func MinLength(n int) Constraint {
	return Constraint{kind: KindMinLength, length: n}
}

// MaxLength requires the value to hold at most n characters.
func MaxLength(n int) Constraint {
	return Constraint{kind: KindMaxLength, length: n}
}

// MinValue requires the value to be at least bound.
func MinValue(bound decimal.Decimal) Constraint {
	return Constraint{kind: KindMinValue, bound: bound}
}

// MaxValue requires the value to be at most bound.
func MaxValue(bound decimal.Decimal) Constraint {
	return Constraint{kind: KindMaxValue, bound: bound}
}

// Enumeration requires the value to be one of the listed literals.
func Enumeration(values ...string) Constraint {
	return Constraint{kind: KindEnumeration, values: values}
}

// String evaluates the constraints against a text value in order,
// returning the first violation. name identifies the leaf type in the
// error message.
func String(name, value string, cs ...Constraint) error {
	for _, c := range cs {
		switch c.kind {
		case KindMinLength:
			if utf8.RuneCountInString(value) < c.length {
				return iso20022.NewConstraintError(iso20022.CodeTooShort,
					fmt.Sprintf("%s is shorter than the minimum length of %d", name, c.length))
			}
		case KindMaxLength:
			if utf8.RuneCountInString(value) > c.length {
				return iso20022.NewConstraintError(iso20022.CodeTooLong,
					fmt.Sprintf("%s exceeds the maximum length of %d", name, c.length))
			}
		case KindPattern:
			re := c.re
			if re == nil {
				var err error
				re, err = patterns.GetOrCompute(c.expr, func() (*regexp.Regexp, error) {
					return regexp.Compile(anchor(c.expr))
				})
				if err != nil {
					return iso20022.NewConstraintError(iso20022.CodePatternMismatch,
						fmt.Sprintf("%s pattern is not a valid regular expression", name))
				}
			}
			if !re.MatchString(value) {
				return iso20022.NewConstraintError(iso20022.CodePatternMismatch,
					fmt.Sprintf("%s does not match the required pattern", name))
			}
		case KindEnumeration:
			if !slices.Contains(c.values, value) {
				return iso20022.NewConstraintError(iso20022.CodeInvalidEnum,
					fmt.Sprintf("%s is not one of the allowed enumeration values", name))
			}
		}
	}
	return nil
}

// Number evaluates the constraints against a numeric value in order,
// returning the first violation.
func Number(name string, value decimal.Decimal, cs ...Constraint) error {
	for _, c := range cs {
		switch c.kind {
		case KindMinValue:
			if value.LessThan(c.bound) {
				return iso20022.NewConstraintError(iso20022.CodeBelowMinimum,
					fmt.Sprintf("%s is less than the minimum value of %s", name, formatBound(c.bound)))
			}
		case KindMaxValue:
			if value.GreaterThan(c.bound) {
				return iso20022.NewConstraintError(iso20022.CodeAboveMaximum,
					fmt.Sprintf("%s exceeds the maximum value of %s", name, formatBound(c.bound)))
			}
		}
	}
	return nil
}

// Float adapts Number for schemas that bind amounts as float64.
func Float(name string, value float64, cs ...Constraint) error {
	return Number(name, decimal.NewFromFloat(value), cs...)
}

// Bounds are rendered with six decimal places, matching the wording the
// message catalogs have always used.
func formatBound(d decimal.Decimal) string {
	return d.StringFixed(6)
}
