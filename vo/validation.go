package vo

import "strings"

type ValidationLevel string

const (
	ValidationLevelError   ValidationLevel = "error"
	ValidationLevelWarning ValidationLevel = "warning"
	ValidationLevelInfo    ValidationLevel = "info"
)

// Validation is one finding, Group names what was checked e.g. a listing
// slug, a json-ld type or a page url.
type Validation struct {
	Level   ValidationLevel `yaml:"level" json:"level"`
	Message string          `yaml:"message" json:"message"`
	Group   string          `yaml:"group" json:"group"`
}

func (v Validation) String() string {
	return string(v.Level) + " " + v.Group + ": " + v.Message
}

type Validations []Validation

func (v *Validations) add(level ValidationLevel, msg string, group string) {
	*v = append(*v, Validation{Level: level, Group: group, Message: msg})
}

func (v *Validations) Error(group, msg string) {
	v.add(ValidationLevelError, msg, group)
}

func (v *Validations) Warning(group, msg string) {
	v.add(ValidationLevelWarning, msg, group)
}

func (v *Validations) Info(group, msg string) {
	v.add(ValidationLevelInfo, msg, group)
}

func (v *Validations) Group(group string) (err func(msg string), warning func(msg string), info func(msg string)) {
	err = func(msg string) { v.Error(group, msg) }
	warning = func(msg string) { v.Warning(group, msg) }
	info = func(msg string) { v.Info(group, msg) }
	return
}

// HasErrors is true when at least one error level finding exists
func (v Validations) HasErrors() bool {
	for _, val := range v {
		if val.Level == ValidationLevelError {
			return true
		}
	}
	return false
}

// Count findings of a level
func (v Validations) Count(level ValidationLevel) (n int) {
	for _, val := range v {
		if val.Level == level {
			n++
		}
	}
	return
}

// Err folds error level findings into one error, nil without errors
func (v Validations) Err() error {
	msgs := []string{}
	for _, val := range v {
		if val.Level == ValidationLevelError {
			msgs = append(msgs, val.Group+": "+val.Message)
		}
	}
	if len(msgs) == 0 {
		return nil
	}
	return &ValidationError{Messages: msgs}
}

type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}
