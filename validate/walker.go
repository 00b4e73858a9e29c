// Package validate implements the composite validation propagator: a
// declaration-order walk over every populated field of a record that
// applies leaf constraints directly and recurses into nested records,
// choices, and lists.
//
// Propagation is fail-fast and bottom-up: the first violation found is
// returned and the walk stops. Errors are never aggregated, and a failing
// list element is reported exactly as it would be in isolation, with no
// positional context added.
package validate

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/openpayments/iso20022"
)

// Propagator validates composite records. The zero value is ready to use
// and matches the lenient behavior of the published schemas.
type Propagator struct {
	// StrictChoices enforces exactly-one population on records marked as
	// choices. Off by default: producers are trusted to populate at most
	// one alternative.
	StrictChoices bool
}

// Record validates rec with a default, lenient Propagator.
func Record(rec any) error {
	return Propagator{}.Record(rec)
}

// Record walks every populated field of rec in declaration order and
// returns the first violation wrapped in a ValidationError. Absent
// optional fields are skipped. Absent required fields are a decode-time
// concern (see Required), never reported here.
func (p Propagator) Record(rec any) error {
	if rec == nil {
		return nil
	}
	if err := p.walk(reflect.ValueOf(rec)); err != nil {
		var ce *iso20022.ConstraintError
		if errors.As(err, &ce) {
			return &iso20022.ValidationError{Cause: ce}
		}
		return err
	}
	return nil
}

var (
	validatorType = reflect.TypeOf((*iso20022.Validator)(nil)).Elem()
	choiceType    = reflect.TypeOf((*iso20022.Choice)(nil)).Elem()
)

func (p Propagator) walk(v reflect.Value) error {
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return nil
		}
		return p.walk(v.Elem())
	}

	// Leaf types carry their own constraints; the walk stops at them.
	if v.Type().Implements(validatorType) {
		return v.Interface().(iso20022.Validator).Validate()
	}

	switch v.Kind() {
	case reflect.Struct:
		if p.StrictChoices && v.Type().Implements(choiceType) {
			if err := exactlyOne(v); err != nil {
				return err
			}
		}
		t := v.Type()
		for i := 0; i < t.NumField(); i++ {
			if !t.Field(i).IsExported() {
				continue
			}
			if err := p.walk(v.Field(i)); err != nil {
				return err
			}
		}
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			if err := p.walk(v.Index(i)); err != nil {
				return err
			}
		}
	}
	return nil
}

// exactlyOne rejects a choice record unless exactly one alternative is
// populated. An alternative counts as populated when its pointer is
// non-nil or its list is non-empty.
func exactlyOne(v reflect.Value) error {
	populated := 0
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		if !t.Field(i).IsExported() {
			continue
		}
		f := v.Field(i)
		switch f.Kind() {
		case reflect.Pointer, reflect.Interface:
			if !f.IsNil() {
				populated++
			}
		case reflect.Slice:
			if f.Len() > 0 {
				populated++
			}
		}
	}
	if populated > 1 {
		return iso20022.NewConstraintError(iso20022.CodeChoiceConflict,
			fmt.Sprintf("%s has more than one alternative populated", t.Name()))
	}
	if populated == 0 {
		return iso20022.NewConstraintError(iso20022.CodeChoiceConflict,
			fmt.Sprintf("%s has no alternative populated", t.Name()))
	}
	return nil
}
