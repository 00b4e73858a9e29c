package validate

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/openpayments/iso20022"
)

// Required reports the first required field absent from a decoded record.
// It runs as part of decoding, not validation: a missing required field is
// a fatal DecodeError, never an advisory ValidationError.
//
// Optionality follows the wire binding: fields whose xml tag carries
// omitempty (and choice alternatives, which are all optional) may be
// absent; everything else must be populated. Numeric and boolean scalars
// cannot signal absence through their zero value and are not checked.
func Required(rec any) error {
	if rec == nil {
		return nil
	}
	return required(reflect.ValueOf(rec))
}

func required(v reflect.Value) error {
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return nil
		}
		return required(v.Elem())
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			if err := required(v.Index(i)); err != nil {
				return err
			}
		}
		return nil
	case reflect.Struct:
	default:
		return nil
	}

	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name, optional := wireTag(f)
		fv := v.Field(i)

		switch fv.Kind() {
		case reflect.Pointer:
			if fv.IsNil() {
				if !optional {
					return missing(t.Name(), name)
				}
				continue
			}
			if err := required(fv.Elem()); err != nil {
				return err
			}
		case reflect.Slice:
			if fv.Len() == 0 {
				if !optional {
					return missing(t.Name(), name)
				}
				continue
			}
			if err := required(fv); err != nil {
				return err
			}
		case reflect.String:
			if !optional && fv.String() == "" {
				return missing(t.Name(), name)
			}
		case reflect.Struct:
			if err := required(fv); err != nil {
				return err
			}
		}
	}
	return nil
}

// wireTag extracts the wire element name and optionality of a field from
// its xml struct tag.
func wireTag(f reflect.StructField) (name string, optional bool) {
	tag := f.Tag.Get("xml")
	name, opts, _ := strings.Cut(tag, ",")
	if name == "" {
		name = f.Name
	}
	return name, strings.Contains(opts, "omitempty")
}

func missing(record, field string) error {
	return iso20022.NewDecodeError(iso20022.CodeMissingRequired,
		fmt.Sprintf("%s.%s is required", record, field))
}
