// Package validate rejects malformed requests before they reach storage.
//
// A validator is an ordered list of rules. Every rule runs against the
// request and contributes zero or more field violations; nothing
// short-circuits, so the caller always receives the complete list.
package validate

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Locations a violated field can come from, matching the response detail rows.
const (
	LocationBody   = "body"
	LocationQuery  = "query"
	LocationParams = "params"
)

// FieldError describes a single violated constraint.
type FieldError struct {
	Param    string `json:"param"`
	Message  string `json:"message"`
	Location string `json:"location"`
}

// Errors collects every violation found in one request.
type Errors struct {
	Fields []FieldError
}

func (e *Errors) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", f.Param, f.Message))
	}
	return strings.Join(msgs, "; ")
}

func (e *Errors) add(location, param, message string) {
	e.Fields = append(e.Fields, FieldError{Param: param, Message: message, Location: location})
}

// Rule is a pure check appending violations to the shared set.
type Rule func(errs *Errors)

// run executes every rule and reports the collected violations, if any.
func run(rules ...Rule) error {
	errs := &Errors{}
	for _, rule := range rules {
		rule(errs)
	}
	if len(errs.Fields) == 0 {
		return nil
	}
	return errs
}

const dateLayout = "2006-01-02"

var timePattern = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)

func isDate(v string) bool {
	t, err := time.Parse(dateLayout, v)
	return err == nil && t.Format(dateLayout) == v
}

func isClockTime(v string) bool {
	return timePattern.MatchString(v)
}

// today returns the current calendar date in the dateLayout form.
func today() string {
	return time.Now().Format(dateLayout)
}
