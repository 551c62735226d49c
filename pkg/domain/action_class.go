package domain

import dErrors "decahose/pkg/domain-errors"

// ActionClass buckets compliance actions by the kind of entity they
// affect. Every recognized action name belongs to exactly one class.
//
// Usage: construct via ParseActionClass at trust boundaries to enforce
// the allowlist; direct casting bypasses validation.
type ActionClass string

// Supported action classes.
const (
	ClassUser     ActionClass = "user"
	ClassTweet    ActionClass = "tweet"
	ClassDrop     ActionClass = "drop"
	ClassScrubGeo ActionClass = "scrub_geo"
	ClassLike     ActionClass = "like"
)

// validActionClasses is the single source of truth for valid classes.
var validActionClasses = map[ActionClass]bool{
	ClassUser:     true,
	ClassTweet:    true,
	ClassDrop:     true,
	ClassScrubGeo: true,
	ClassLike:     true,
}

// ParseActionClass constructs an ActionClass from external input.
//
// Errors: returns CodeInvalidClassName when the value is empty or not one
// of the supported classes; no other errors are expected.
func ParseActionClass(s string) (ActionClass, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidClassName, "action class cannot be empty")
	}
	c := ActionClass(s)
	if !c.IsValid() {
		return "", dErrors.New(dErrors.CodeInvalidClassName,
			"invalid action class: must be one of 'user', 'tweet', 'drop', 'scrub_geo', 'like'")
	}
	return c, nil
}

// IsValid checks if the class is one of the supported enum values.
func (c ActionClass) IsValid() bool {
	return validActionClasses[c]
}

// String returns the string representation of the class.
func (c ActionClass) String() string {
	return string(c)
}
