// Package validate provides struct-tag validation for request DTOs.
//
// Supported rules (comma-separated in the `validate` tag):
//
//	required            field must be present: non-nil pointer, non-blank string,
//	                    non-zero number, or a value whose IsZero() reports false
//	nullable            if empty, skip all remaining rules for this field
//	email               valid email address
//	alpha_dash          letters, digits, hyphens, underscores
//	date                parseable date (YYYY-MM-DD or RFC 3339)
//	min=N / max=N       string: char length | number: value
//	gt=N gte=N lt=N lte=N
//	between=min,max     number or string length between min and max (inclusive)
//	in=a,b,c            value must be one of the listed items
//
// Pointer fields are dereferenced before every rule except required and
// nullable. Types exposing InexactFloat64() (shopspring/decimal) are treated
// as numbers.
//
//	type ProductInput struct {
//	    Slug  string           `json:"slug"  validate:"required,alpha_dash,max=120"`
//	    Price *decimal.Decimal `json:"price" validate:"required,gt=0"`
//	}
package validate

import (
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// Struct validates all exported fields of v that carry a `validate` tag.
// Returns a map of fieldName → error message; empty map means no errors.
func Struct(v interface{}) map[string]string {
	errs := make(map[string]string)
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return errs
	}
	rt := rv.Type()

	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}
		if field.Anonymous && rv.Field(i).Kind() == reflect.Struct {
			for k, msg := range Struct(rv.Field(i).Interface()) {
				errs[k] = msg
			}
			continue
		}
		tag := field.Tag.Get("validate")
		if tag == "" {
			continue
		}

		value := rv.Field(i)
		name := jsonFieldName(field)
		rules := splitRules(tag)

		if hasRule(rules, "nullable") && isEmpty(value) {
			continue
		}

		for _, rule := range rules {
			if rule == "nullable" {
				continue
			}
			if msg := applyRule(rule, name, value); msg != "" {
				errs[name] = msg
				break // first failing rule per field
			}
		}
	}

	return errs
}

// HasErrors returns true when the errs map is non-empty.
func HasErrors(errs map[string]string) bool { return len(errs) > 0 }

func applyRule(rule, field string, v reflect.Value) string {
	key, param, _ := strings.Cut(rule, "=")

	if key == "required" {
		if isEmpty(v) {
			return fmt.Sprintf("The %s field is required.", field)
		}
		return ""
	}

	for v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return "" // absence is only an error under `required`
		}
		v = v.Elem()
	}
	raw := text(v)

	switch key {
	case "email":
		if !emailRE.MatchString(raw) {
			return fmt.Sprintf("The %s must be a valid email address.", field)
		}
	case "alpha_dash":
		for _, c := range raw {
			if !unicode.IsLetter(c) && !unicode.IsDigit(c) && c != '-' && c != '_' {
				return fmt.Sprintf("The %s field may only contain letters, numbers, dashes, and underscores.", field)
			}
		}
	case "date":
		if _, err := parseDate(raw); err != nil {
			return fmt.Sprintf("The %s is not a valid date.", field)
		}
	case "min":
		n := mustParseFloat(param)
		if isNumeric(v) {
			if toFloat(v) < n {
				return fmt.Sprintf("The %s must be at least %s.", field, param)
			}
		} else if float64(len([]rune(raw))) < n {
			return fmt.Sprintf("The %s must be at least %s characters.", field, param)
		}
	case "max":
		n := mustParseFloat(param)
		if isNumeric(v) {
			if toFloat(v) > n {
				return fmt.Sprintf("The %s must not be greater than %s.", field, param)
			}
		} else if float64(len([]rune(raw))) > n {
			return fmt.Sprintf("The %s must not exceed %s characters.", field, param)
		}
	case "gt":
		if toFloat(v) <= mustParseFloat(param) {
			return fmt.Sprintf("The %s must be greater than %s.", field, param)
		}
	case "gte":
		if toFloat(v) < mustParseFloat(param) {
			return fmt.Sprintf("The %s must be greater than or equal to %s.", field, param)
		}
	case "lt":
		if toFloat(v) >= mustParseFloat(param) {
			return fmt.Sprintf("The %s must be less than %s.", field, param)
		}
	case "lte":
		if toFloat(v) > mustParseFloat(param) {
			return fmt.Sprintf("The %s must be less than or equal to %s.", field, param)
		}
	case "between":
		lo, hi, ok := strings.Cut(param, ",")
		if !ok {
			return ""
		}
		l, h := mustParseFloat(lo), mustParseFloat(hi)
		if isNumeric(v) {
			if f := toFloat(v); f < l || f > h {
				return fmt.Sprintf("The %s must be between %s and %s.", field, lo, hi)
			}
		} else if n := float64(len([]rune(raw))); n < l || n > h {
			return fmt.Sprintf("The %s must be between %s and %s characters.", field, lo, hi)
		}
	case "in":
		for _, a := range strings.Split(param, ",") {
			if raw == strings.TrimSpace(a) {
				return ""
			}
		}
		return fmt.Sprintf("The selected %s is invalid.", field)
	}

	return ""
}

var emailRE = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

var dateLayouts = []string{time.RFC3339, "2006-01-02", "2006-01-02 15:04:05"}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse %q as date", s)
}

type zeroer interface{ IsZero() bool }

type floater interface{ InexactFloat64() float64 }

func isEmpty(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface:
		return v.IsNil()
	case reflect.String:
		return strings.TrimSpace(v.String()) == ""
	case reflect.Slice, reflect.Map, reflect.Array:
		return v.Len() == 0
	case reflect.Bool:
		return false // false is a valid boolean value, not empty
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	}
	if z, ok := v.Interface().(zeroer); ok {
		return z.IsZero()
	}
	return false
}

func isNumeric(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	_, ok := v.Interface().(floater)
	return ok
}

func toFloat(v reflect.Value) float64 {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint())
	case reflect.Float32, reflect.Float64:
		return v.Float()
	}
	if f, ok := v.Interface().(floater); ok {
		return f.InexactFloat64()
	}
	f, _ := strconv.ParseFloat(text(v), 64)
	return f
}

// text renders v the way it appears on the wire, so Stringer types such as
// dates are checked in their serialized form.
func text(v reflect.Value) string {
	if s, ok := v.Interface().(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%v", v.Interface())
}

func mustParseFloat(s string) float64 {
	f, _ := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return f
}

func jsonFieldName(f reflect.StructField) string {
	name := f.Tag.Get("json")
	if name == "" || name == "-" {
		return strings.ToLower(f.Name)
	}
	if idx := strings.Index(name, ","); idx != -1 {
		name = name[:idx]
	}
	return name
}

// splitRules splits the validate tag by comma while keeping the parameters
// of in= and between= intact:
// "required,in=USER,ADMIN,max=10" → ["required","in=USER,ADMIN","max=10"]
func splitRules(tag string) []string {
	parts := strings.Split(tag, ",")
	rules := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		n := len(rules)
		if n > 0 && !isRuleStart(p) && takesList(rules[n-1]) {
			rules[n-1] += "," + p
			continue
		}
		rules = append(rules, p)
	}
	return rules
}

var knownRules = map[string]bool{
	"required": true, "nullable": true, "email": true, "alpha_dash": true, "date": true,
	"min": true, "max": true, "gt": true, "gte": true, "lt": true, "lte": true,
	"between": true, "in": true,
}

func isRuleStart(s string) bool {
	key, _, _ := strings.Cut(s, "=")
	return knownRules[key]
}

func takesList(rule string) bool {
	return strings.HasPrefix(rule, "in=") || strings.HasPrefix(rule, "between=")
}

func hasRule(rules []string, target string) bool {
	for _, r := range rules {
		if r == target {
			return true
		}
	}
	return false
}
