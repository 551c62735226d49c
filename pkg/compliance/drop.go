package compliance

import "decahose/pkg/domain"

// DropAction is a classified record narrowed to the drop action class:
// tweets removed from (or restored to) distribution without deletion.
type DropAction struct {
	*Base
}

// NewDropAction classifies a raw record and narrows it to a drop
// action. Fails with CodeWrongActionClass when the record belongs to a
// different class.
func NewDropAction(rec Record) (*DropAction, error) {
	base, err := NewBase(rec)
	if err != nil {
		return nil, err
	}
	return WrapDropAction(base)
}

// WrapDropAction narrows an already classified record to a drop action.
// Classification is re-derived from the underlying record, so wrapping
// is idempotent and never mutates the base.
func WrapDropAction(base *Base) (*DropAction, error) {
	base, err := rewrap(base)
	if err != nil {
		return nil, err
	}
	if !base.IsDropAction() {
		return nil, wrongClassError(domain.ClassDrop, base)
	}
	d := &DropAction{Base: base}
	if !exactlyOne(d.IsDrop(), d.IsUndrop()) {
		return nil, subActionError(base)
	}
	return d, nil
}

// IsDrop reports whether the tweet was dropped.
func (d *DropAction) IsDrop() bool { return d.action == domain.ActionDrop }

// IsUndrop reports whether the tweet was restored.
func (d *DropAction) IsUndrop() bool { return d.action == domain.ActionUndrop }

// TweetID returns the affected tweet's ID, or nil when absent. Present
// for both drop and undrop records.
func (d *DropAction) TweetID() *string {
	return stringValue(d.rec.Lookup(d.action, "status", "id_str"))
}

// UserID returns the affected user's ID, or nil when absent. Present
// for both drop and undrop records.
func (d *DropAction) UserID() *string {
	return stringValue(d.rec.Lookup(d.action, "status", "user_id_str"))
}
