package userbook

import "strings"

const (
	DefaultCondition   = "Good"
	MaxConditionLength = 50
)

type Condition struct {
	text string
}

// NewCondition falls back to DefaultCondition for blank input.
func NewCondition(s string) (Condition, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Condition{text: DefaultCondition}, nil
	}
	if len(t) > MaxConditionLength {
		return Condition{}, ErrConditionTooLong
	}
	return Condition{text: t}, nil
}

func (c Condition) String() string { return c.text }
