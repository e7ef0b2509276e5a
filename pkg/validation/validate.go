package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// Validate walks v's attributes against its rule table and returns an Errors
// slice naming every violated constraint, or nil when the value is valid.
// Types implementing CustomValidator are dispatched to their own validator
// instead of the default walker.
//
// Checks run per attribute in declaration order: presence first, then the
// kind-specific checks. An attribute stops at its first violation; remaining
// attributes are still checked so all of them are reported at once.
func Validate(v Validatable) error {
	if cv, ok := v.(CustomValidator); ok {
		return cv.ValidateCustom()
	}

	var errs Errors
	attrs := v.Attributes()
	for _, rule := range v.ValidationRules() {
		checkAttribute(rule, attrs[rule.Attribute], &errs)
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// checkAttribute applies one rule to one value, appending at most the first
// violation for scalar checks and every nested violation for recursive ones.
func checkAttribute(rule Rule, value any, errs *Errors) {
	if isAbsent(value) {
		if rule.Required {
			errs.add(rule.Attribute, "is required")
		}
		return
	}

	switch rule.Kind {
	case String:
		s, ok := value.(string)
		if !ok {
			errs.add(rule.Attribute, "must be a String")
			return
		}
		if len(rule.OneOf) > 0 && !contains(rule.OneOf, s) {
			errs.add(rule.Attribute, fmt.Sprintf("must be one of: %v", rule.OneOf))
		}
	case Int:
		n, ok := asInt(value)
		if !ok {
			errs.add(rule.Attribute, "must be an Integer")
			return
		}
		if rule.Positive && n <= 0 {
			errs.add(rule.Attribute, "must be a positive number")
		}
	case Float:
		if _, ok := asFloat(value); !ok {
			errs.add(rule.Attribute, "must be a Number")
		}
	case Bool:
		if _, ok := value.(bool); !ok {
			errs.add(rule.Attribute, "must be a Boolean")
		}
	case Array:
		rv := reflect.ValueOf(value)
		if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
			errs.add(rule.Attribute, "must be an Array")
			return
		}
		for i := 0; i < rv.Len(); i++ {
			checkElement(rule, rv.Index(i).Interface(), errs)
		}
	case Object:
		nested, ok := value.(Validatable)
		if !ok {
			errs.add(rule.Attribute, "must be an Object")
			return
		}
		checkNested(rule.Attribute, nested, errs)
	case Hash:
		m, ok := value.(map[string]any)
		if !ok {
			errs.add(rule.Attribute, "must be a Hash")
			return
		}
		for _, fieldRule := range rule.Schema {
			checkAttribute(fieldRule, m[fieldRule.Attribute], errs)
		}
	}
}

// checkElement dispatches on the runtime shape of an array element: nested
// payloads recurse into their own rules, map-shaped elements are checked
// against the Items schema, and anything else is treated as a scalar under
// the Items rule.
func checkElement(rule Rule, elem any, errs *Errors) {
	switch e := elem.(type) {
	case Validatable:
		// A typed-nil element would pass the type switch but has no
		// attributes to walk; report it instead of recursing.
		if isAbsent(e) {
			errs.add(rule.Attribute, "is required")
			return
		}
		checkNested(rule.Attribute, e, errs)
	case map[string]any:
		if rule.Items == nil {
			return
		}
		if len(rule.Items.Schema) == 0 {
			return
		}
		for _, fieldRule := range rule.Items.Schema {
			checkAttribute(fieldRule, e[fieldRule.Attribute], errs)
		}
	default:
		if rule.Items == nil {
			return
		}
		itemRule := *rule.Items
		if itemRule.Attribute == "" {
			itemRule.Attribute = rule.Attribute
		}
		checkAttribute(itemRule, elem, errs)
	}
}

// checkNested validates a nested payload against its own rule table and
// surfaces its field errors verbatim, so callers see the nested attribute's
// violation rather than a generic wrapper message.
func checkNested(attribute string, nested Validatable, errs *Errors) {
	err := Validate(nested)
	if err == nil {
		return
	}
	var nestedErrs Errors
	if errors.As(err, &nestedErrs) {
		*errs = append(*errs, nestedErrs...)
		return
	}
	errs.add(attribute, err.Error())
}

// isAbsent reports whether a value counts as missing: nil interfaces, typed
// nil pointers/maps/slices, and blank strings.
func isAbsent(value any) bool {
	if value == nil {
		return true
	}
	if s, ok := value.(string); ok {
		return strings.TrimSpace(s) == ""
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice:
		return rv.IsNil()
	default:
		return false
	}
}

func asInt(value any) (int64, bool) {
	switch n := value.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return int64(n), true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		return int64(n), true
	default:
		return 0, false
	}
}

func asFloat(value any) (float64, bool) {
	if n, ok := asInt(value); ok {
		return float64(n), true
	}
	switch n := value.(type) {
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
