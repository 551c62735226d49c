package compliance

import "decahose/pkg/domain"

// ScrubGeoAction is a classified record narrowed to the scrub-geo
// class: a user scrubbed geo data from their tweets up to a given
// status ID.
type ScrubGeoAction struct {
	*Base
}

// NewScrubGeoAction classifies a raw record and narrows it to a
// scrub-geo action. Fails with CodeWrongActionClass when the record
// belongs to a different class.
func NewScrubGeoAction(rec Record) (*ScrubGeoAction, error) {
	base, err := NewBase(rec)
	if err != nil {
		return nil, err
	}
	return WrapScrubGeoAction(base)
}

// WrapScrubGeoAction narrows an already classified record to a
// scrub-geo action. Classification is re-derived from the underlying
// record, so wrapping is idempotent and never mutates the base.
func WrapScrubGeoAction(base *Base) (*ScrubGeoAction, error) {
	base, err := rewrap(base)
	if err != nil {
		return nil, err
	}
	if !base.IsGeoAction() {
		return nil, wrongClassError(domain.ClassScrubGeo, base)
	}
	g := &ScrubGeoAction{Base: base}
	// Single-kind class; the check still guards class-set growth without
	// a matching sub-action here.
	if !exactlyOne(g.action == domain.ActionScrubGeo) {
		return nil, subActionError(base)
	}
	return g, nil
}

// UserID returns the scrubbing user's ID, or nil when absent.
func (g *ScrubGeoAction) UserID() *string {
	return stringValue(g.rec.Lookup(g.action, "user_id_str"))
}

// UpToStatusID returns the ID of the last tweet whose geo data was
// scrubbed, or nil when absent.
func (g *ScrubGeoAction) UpToStatusID() *string {
	return stringValue(g.rec.Lookup(g.action, "up_to_status_id_str"))
}
