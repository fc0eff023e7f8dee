// Package validation evaluates declarative per-endpoint field rules against a
// decoded JSON body before any mutation runs.
package validation

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/MriyaDevelopment/pumba-server/database"
)

// Rules maps a field name to a pipe-separated rule string, e.g.
// "required|string|email|unique:users,email".
type Rules map[string]string

// Result maps a failed field to the first rule it violated. A nil Result
// means the input passed.
type Result map[string]string

var reEmail = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Conflict reports the first field that failed a uniqueness rule, if any.
// Uniqueness failures carry a specific message where everything else collapses
// into the generic one.
func (r Result) Conflict() (string, bool) {
	for field, rule := range r {
		if rule == "unique" {
			return field, true
		}
	}
	return "", false
}

// Validate checks every field of rules against input. Rule evaluation stops at
// the first violated rule per field.
func Validate(input map[string]any, rules Rules) Result {
	errs := Result{}

	for field, ruleStr := range rules {
		value, present := input[field]
		for _, rule := range strings.Split(ruleStr, "|") {
			name, arg := rule, ""
			if i := strings.IndexByte(rule, ':'); i >= 0 {
				name, arg = rule[:i], rule[i+1:]
			}
			if !check(name, arg, value, present) {
				errs[field] = name
				break
			}
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func check(name, arg string, value any, present bool) bool {
	// Only "required" complains about an absent field.
	if !present || value == nil {
		return name != "required"
	}

	switch name {
	case "required":
		s, ok := value.(string)
		return !ok || strings.TrimSpace(s) != ""
	case "string":
		_, ok := value.(string)
		return ok
	case "integer":
		switch v := value.(type) {
		case float64:
			return v == float64(int64(v))
		case string:
			_, err := strconv.Atoi(v)
			return err == nil
		}
		return false
	case "boolean":
		switch v := value.(type) {
		case bool:
			return true
		case string:
			return v == "1" || v == "0" || v == "true" || v == "false"
		}
		return false
	case "email":
		s, ok := value.(string)
		return ok && reEmail.MatchString(s)
	case "min":
		n, err := strconv.Atoi(arg)
		if err != nil {
			return true
		}
		switch v := value.(type) {
		case string:
			return len(v) >= n
		case float64:
			return v >= float64(n)
		}
		return false
	case "max":
		n, err := strconv.Atoi(arg)
		if err != nil {
			return true
		}
		if s, ok := value.(string); ok {
			return len(s) <= n
		}
		return true
	case "unique":
		table, column, ok := strings.Cut(arg, ",")
		if !ok {
			return true
		}
		s, isStr := value.(string)
		if !isStr {
			return true
		}
		var count int64
		if err := database.DB.Table(table).Where(column+" = ?", s).Count(&count).Error; err != nil {
			return true
		}
		return count == 0
	}
	return true
}
