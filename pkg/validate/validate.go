// Package validate provides struct-tag validation for request input.
//
// Supported rules (comma-separated in the `validate` tag):
//
//	required            field must not be zero/empty
//	nullable            if empty, skip all remaining rules for this field
//	email               valid email address
//	url                 valid URL (http/https)
//	date                parseable calendar date (YYYY-MM-DD)
//	numeric             any number
//	min=N               string: min char length | number: min value
//	max=N               string: max char length | number: max value
//	gte=N               number >= N
//	lte=N               number <= N
//	in=a,b,c            value must be one of the listed items
//
// Example:
//
//	type OrderInput struct {
//	    CustomerName string `json:"customer_name" validate:"required,max=255"`
//	    Status       string `json:"status"        validate:"nullable,in=pending,shipped"`
//	    OrderDate    string `json:"order_date"    validate:"nullable,date"`
//	}
package validate

import (
	"fmt"
	"net/mail"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// ─── Public API ───────────────────────────────────────────────────────────────

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
		value := rv.Field(i)

		tag := field.Tag.Get("validate")
		if tag == "" {
			continue
		}

		name := jsonFieldName(field)
		rules := splitRules(tag)

		// `nullable` on an empty field skips every remaining rule.
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

// ─── Core dispatcher ──────────────────────────────────────────────────────────

func applyRule(rule, field string, v reflect.Value) string {
	raw := fmt.Sprintf("%v", v.Interface())
	key, param, _ := strings.Cut(rule, "=")

	switch key {
	case "required":
		if isEmpty(v) {
			return fmt.Sprintf("The %s field is required.", field)
		}

	case "email":
		if _, err := mail.ParseAddress(raw); err != nil {
			return fmt.Sprintf("The %s field must be a valid email address.", field)
		}

	case "url":
		u, err := url.Parse(raw)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Sprintf("The %s field must be a valid URL.", field)
		}

	case "date":
		if _, err := time.Parse("2006-01-02", raw); err != nil {
			return fmt.Sprintf("The %s field must be a date in YYYY-MM-DD form.", field)
		}

	case "numeric":
		if _, err := strconv.ParseFloat(raw, 64); err != nil {
			return fmt.Sprintf("The %s field must be a number.", field)
		}

	case "min":
		if !compare(v, raw, param, func(a, b float64) bool { return a >= b }) {
			return fmt.Sprintf("The %s field must be at least %s.", field, param)
		}

	case "max":
		if !compare(v, raw, param, func(a, b float64) bool { return a <= b }) {
			return fmt.Sprintf("The %s field may not be greater than %s.", field, param)
		}

	case "gte":
		if !numCompare(v, param, func(a, b float64) bool { return a >= b }) {
			return fmt.Sprintf("The %s field must be greater than or equal to %s.", field, param)
		}

	case "lte":
		if !numCompare(v, param, func(a, b float64) bool { return a <= b }) {
			return fmt.Sprintf("The %s field must be less than or equal to %s.", field, param)
		}

	case "in":
		for _, allowed := range strings.Split(param, ",") {
			if raw == strings.TrimSpace(allowed) {
				return ""
			}
		}
		return fmt.Sprintf("The selected %s is invalid.", field)
	}

	return ""
}

// ─── Helpers ──────────────────────────────────────────────────────────────────

// splitRules splits the tag on commas, folding comma-separated parameters of
// the `in=` rule back into their rule (so "in=a,b,c" stays one rule).
func splitRules(tag string) []string {
	parts := strings.Split(tag, ",")
	var rules []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if len(rules) > 0 && !strings.Contains(p, "=") && paramListRule(rules[len(rules)-1]) {
			rules[len(rules)-1] += "," + p
			continue
		}
		rules = append(rules, p)
	}
	return rules
}

func paramListRule(rule string) bool {
	return strings.HasPrefix(rule, "in=")
}

func hasRule(rules []string, name string) bool {
	for _, r := range rules {
		if r == name {
			return true
		}
	}
	return false
}

func isEmpty(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String:
		return strings.TrimSpace(v.String()) == ""
	case reflect.Slice, reflect.Map, reflect.Array:
		return v.Len() == 0
	case reflect.Ptr, reflect.Interface:
		return v.IsNil()
	default:
		return v.IsZero()
	}
}

// compare applies cmp to the value's "size": numeric value for numbers,
// character length for strings.
func compare(v reflect.Value, raw, param string, cmp func(a, b float64) bool) bool {
	bound, err := strconv.ParseFloat(param, 64)
	if err != nil {
		return true
	}

	if v.Kind() == reflect.String {
		return cmp(float64(len([]rune(raw))), bound)
	}
	return numCompare(v, param, cmp)
}

func numCompare(v reflect.Value, param string, cmp func(a, b float64) bool) bool {
	bound, err := strconv.ParseFloat(param, 64)
	if err != nil {
		return true
	}

	var n float64
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n = float64(v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n = float64(v.Uint())
	case reflect.Float32, reflect.Float64:
		n = v.Float()
	default:
		f, err := strconv.ParseFloat(fmt.Sprintf("%v", v.Interface()), 64)
		if err != nil {
			return false
		}
		n = f
	}
	return cmp(n, bound)
}

func jsonFieldName(field reflect.StructField) string {
	tag := field.Tag.Get("json")
	if tag == "" {
		return field.Name
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" || name == "-" {
		return field.Name
	}
	return name
}
