package compliance

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"decahose/pkg/domain"
	dErrors "decahose/pkg/domain-errors"
)

// Base is a classified compliance record. It owns the raw record plus
// the class tag derived at construction; both are immutable afterwards,
// so a Base is safe to share for concurrent reads.
type Base struct {
	rec    Record
	action string
	class  domain.ActionClass
}

// NewBase classifies a raw compliance record.
//
// Errors:
//   - CodeMissingRecord when the record is nil or empty.
//   - CodeUnrecognizedAction when the record has more than one top-level
//     key, or its action name matches zero or multiple class sets.
func NewBase(rec Record) (*Base, error) {
	if len(rec) == 0 {
		return nil, dErrors.New(dErrors.CodeMissingRecord, "compliance record cannot be nil or empty")
	}
	if len(rec) > 1 {
		return nil, dErrors.New(dErrors.CodeUnrecognizedAction,
			fmt.Sprintf("expected exactly one top-level action key, got %d", len(rec)))
	}
	var action string
	for key := range rec {
		action = key
	}
	class, err := domain.ClassOf(action)
	if err != nil {
		return nil, err
	}
	return &Base{rec: rec, action: action, class: class}, nil
}

// Action returns the record's top-level action name.
func (b *Base) Action() string {
	return b.action
}

// Class returns the action class the record was bucketed into.
func (b *Base) Class() domain.ActionClass {
	return b.class
}

// Record returns the underlying record.
func (b *Base) Record() Record {
	return b.rec
}

// IsUserAction reports whether the record is a user action.
func (b *Base) IsUserAction() bool { return b.class == domain.ClassUser }

// IsTweetAction reports whether the record is a tweet action.
func (b *Base) IsTweetAction() bool { return b.class == domain.ClassTweet }

// IsDropAction reports whether the record is a drop action.
func (b *Base) IsDropAction() bool { return b.class == domain.ClassDrop }

// IsGeoAction reports whether the record is a scrub-geo action.
func (b *Base) IsGeoAction() bool { return b.class == domain.ClassScrubGeo }

// IsLikeAction reports whether the record is a like action.
func (b *Base) IsLikeAction() bool { return b.class == domain.ClassLike }

// Lookup descends the underlying record through the given key path.
// See Record.Lookup.
func (b *Base) Lookup(path ...string) any {
	return b.rec.Lookup(path...)
}

// Timestamp returns the time of the compliance message as a
// millisecond-epoch string, regardless of how the record stores it.
//
// Every action class stores an epoch-millis string at
// [action, "timestamp_ms"], except user_withheld records, which store a
// calendar (ISO-8601) timestamp at [action, "timestampMs"] — the field
// casing and format differ upstream; both quirks are preserved here.
// For the calendar form the value is parsed, any timezone offset is
// stripped (wall clock kept, interpreted as UTC), and the instant is
// reconverted to epoch millis so callers see one format.
//
// Errors: CodeValidation when the field is missing or unparseable.
func (b *Base) Timestamp() (string, error) {
	if b.isUserWithheld() {
		t, err := b.withheldTime()
		if err != nil {
			return "", err
		}
		return strconv.FormatInt(t.UnixMilli(), 10), nil
	}
	s, _, err := b.epochMillis()
	return s, err
}

// TimestampTime returns the time of the compliance message as a
// time.Time with millisecond precision. See Timestamp for the
// user_withheld special case.
func (b *Base) TimestampTime() (time.Time, error) {
	if b.isUserWithheld() {
		return b.withheldTime()
	}
	_, ms, err := b.epochMillis()
	if err != nil {
		return time.Time{}, err
	}
	return time.UnixMilli(ms), nil
}

func (b *Base) isUserWithheld() bool {
	return b.action == domain.ActionUserWithheld
}

// epochMillis reads and validates [action, "timestamp_ms"], returning
// both the raw string (preserved exactly) and its integer value.
func (b *Base) epochMillis() (string, int64, error) {
	v := stringValue(b.rec.Lookup(b.action, "timestamp_ms"))
	if v == nil {
		return "", 0, dErrors.New(dErrors.CodeValidation,
			fmt.Sprintf("record has no timestamp_ms field under %q", b.action))
	}
	ms, err := strconv.ParseInt(*v, 10, 64)
	if err != nil {
		return "", 0, dErrors.Wrap(err, dErrors.CodeValidation, "invalid timestamp_ms value")
	}
	return *v, ms, nil
}

// Calendar layouts accepted for user_withheld timestampMs values, with
// and without an explicit offset. Fractional seconds are optional.
var withheldLayouts = []string{
	"2006-01-02T15:04:05.999999999Z07:00",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02",
}

func (b *Base) withheldTime() (time.Time, error) {
	v := stringValue(b.rec.Lookup(b.action, "timestampMs"))
	if v == nil {
		return time.Time{}, dErrors.New(dErrors.CodeValidation,
			"user_withheld record has no timestampMs field")
	}
	var (
		parsed time.Time
		err    error
	)
	for _, layout := range withheldLayouts {
		parsed, err = time.Parse(layout, *v)
		if err == nil {
			// Strip the offset but keep the wall clock, then pin to UTC
			// so extraction is deterministic across host timezones.
			return time.Date(parsed.Year(), parsed.Month(), parsed.Day(),
				parsed.Hour(), parsed.Minute(), parsed.Second(), parsed.Nanosecond(),
				time.UTC), nil
		}
	}
	return time.Time{}, dErrors.Wrap(err, dErrors.CodeValidation, "invalid timestampMs value")
}

// JSON renders the underlying record as indented JSON.
func (b *Base) JSON() (string, error) {
	return b.rec.JSON()
}

// Summary returns a debug rendering: the detected action name followed
// by the indented record.
func (b *Base) Summary() string {
	out, err := b.rec.JSON()
	if err != nil {
		out = fmt.Sprintf("%v", b.rec)
	}
	return fmt.Sprintf("action: %s\ndata:\n%s", b.action, out)
}

// String implements fmt.Stringer with the indented record.
func (b *Base) String() string {
	out, err := b.rec.JSON()
	if err != nil {
		return fmt.Sprintf("%v", b.rec)
	}
	return out
}

// LogValue implements slog.LogValuer so classified records log as
// structured attributes instead of a raw dump.
func (b *Base) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("action", b.action),
		slog.String("class", b.class.String()),
	)
}

// exactlyOne reports whether exactly one flag is set. View constructors
// use it to enforce the one-sub-action invariant.
func exactlyOne(flags ...bool) bool {
	n := 0
	for _, f := range flags {
		if f {
			n++
		}
	}
	return n == 1
}
