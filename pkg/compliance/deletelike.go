package compliance

import "decahose/pkg/domain"

// DeleteLikeAction is a classified record narrowed to the like class: a
// user unliked (or lost a like on) a tweet. The message body nests its
// fields under a "favorite" object.
type DeleteLikeAction struct {
	*Base
}

// NewDeleteLikeAction classifies a raw record and narrows it to a like
// action. Fails with CodeWrongActionClass when the record belongs to a
// different class.
func NewDeleteLikeAction(rec Record) (*DeleteLikeAction, error) {
	base, err := NewBase(rec)
	if err != nil {
		return nil, err
	}
	return WrapDeleteLikeAction(base)
}

// WrapDeleteLikeAction narrows an already classified record to a like
// action. Classification is re-derived from the underlying record, so
// wrapping is idempotent and never mutates the base.
func WrapDeleteLikeAction(base *Base) (*DeleteLikeAction, error) {
	base, err := rewrap(base)
	if err != nil {
		return nil, err
	}
	if !base.IsLikeAction() {
		return nil, wrongClassError(domain.ClassLike, base)
	}
	l := &DeleteLikeAction{Base: base}
	if !exactlyOne(l.action == domain.ActionFavoriteDelete) {
		return nil, subActionError(base)
	}
	return l, nil
}

// TweetID returns the unliked tweet's ID, or nil when absent.
func (l *DeleteLikeAction) TweetID() *string {
	return stringValue(l.rec.Lookup(l.action, "favorite", "tweet_id_str"))
}

// UserID returns the unliking user's ID, or nil when absent.
func (l *DeleteLikeAction) UserID() *string {
	return stringValue(l.rec.Lookup(l.action, "favorite", "user_id_str"))
}
