package compliance

import (
	"fmt"

	"decahose/pkg/domain"
	dErrors "decahose/pkg/domain-errors"
)

// TweetAction is a classified record narrowed to the tweet action class:
// tweet deletions, tweet edits, and status withholding notices.
type TweetAction struct {
	*Base
}

// EditChain holds every tweet ID an edited tweet has carried.
type EditChain struct {
	// CurrentID is the tweet's latest ID.
	CurrentID string
	// InitialID is the ID the tweet was created with.
	InitialID string
	// TweetIDs holds all IDs the tweet has held, temporally ordered from
	// InitialID to CurrentID.
	TweetIDs []string
}

// NewTweetAction classifies a raw record and narrows it to a tweet
// action. Fails with CodeWrongActionClass when the record belongs to a
// different class.
func NewTweetAction(rec Record) (*TweetAction, error) {
	base, err := NewBase(rec)
	if err != nil {
		return nil, err
	}
	return WrapTweetAction(base)
}

// WrapTweetAction narrows an already classified record to a tweet
// action. Classification is re-derived from the underlying record, so
// wrapping is idempotent and never mutates the base.
func WrapTweetAction(base *Base) (*TweetAction, error) {
	base, err := rewrap(base)
	if err != nil {
		return nil, err
	}
	if !base.IsTweetAction() {
		return nil, wrongClassError(domain.ClassTweet, base)
	}
	t := &TweetAction{Base: base}
	if !exactlyOne(t.IsDelete(), t.IsTweetEdit(), t.IsTweetWithheld()) {
		return nil, subActionError(base)
	}
	return t, nil
}

// IsDelete reports whether this is a tweet deletion.
func (t *TweetAction) IsDelete() bool { return t.action == domain.ActionTweetDelete }

// IsTweetEdit reports whether this is a tweet edit.
func (t *TweetAction) IsTweetEdit() bool { return t.action == domain.ActionTweetEdit }

// IsTweetWithheld reports whether this is a status withholding notice.
func (t *TweetAction) IsTweetWithheld() bool { return t.action == domain.ActionStatusWithheld }

// TweetID returns the tweet ID the action refers to, or nil when the
// record does not carry one. For edits this is the latest ID; see
// EditChain for the full history.
func (t *TweetAction) TweetID() *string {
	switch {
	case t.IsDelete() || t.IsTweetWithheld():
		return stringValue(t.rec.Lookup(t.action, "status", "id_str"))
	case t.IsTweetEdit():
		return stringValue(t.rec.Lookup(t.action, "id"))
	}
	return nil
}

// UserID returns the affected user's ID. Only deletion and withholding
// records carry it; returns nil for edits.
func (t *TweetAction) UserID() *string {
	if t.IsDelete() || t.IsTweetWithheld() {
		return stringValue(t.rec.Lookup(t.action, "status", "user_id_str"))
	}
	return nil
}

// WithheldInCountries returns the countries a tweet is withheld in, or
// nil when this is not a withholding notice.
func (t *TweetAction) WithheldInCountries() []string {
	if t.IsTweetWithheld() {
		return stringSlice(t.rec.Lookup(t.action, "withheld_in_countries"))
	}
	return nil
}

// EditChain returns the full tweet-ID history of an edited tweet, or
// nil when this is not an edit.
func (t *TweetAction) EditChain() *EditChain {
	if !t.IsTweetEdit() {
		return nil
	}
	chain := &EditChain{
		TweetIDs: stringSlice(t.rec.Lookup(t.action, "edit_tweet_ids")),
	}
	if v := stringValue(t.rec.Lookup(t.action, "id")); v != nil {
		chain.CurrentID = *v
	}
	if v := stringValue(t.rec.Lookup(t.action, "initial_tweet_id")); v != nil {
		chain.InitialID = *v
	}
	return chain
}

// rewrap re-derives classification from a base's underlying record.
// Shared by every view's Wrap constructor.
func rewrap(base *Base) (*Base, error) {
	if base == nil {
		return nil, dErrors.New(dErrors.CodeMissingRecord, "classified record cannot be nil")
	}
	return NewBase(base.Record())
}

func wrongClassError(want domain.ActionClass, base *Base) error {
	return dErrors.New(dErrors.CodeWrongActionClass,
		fmt.Sprintf("record does not contain a %s action: got %q (class %q)", want, base.Action(), base.Class()))
}

func subActionError(base *Base) error {
	return dErrors.New(dErrors.CodeUnrecognizedSubAction,
		fmt.Sprintf("action %q matched an unexpected number of sub-actions, want exactly 1", base.Action()))
}
