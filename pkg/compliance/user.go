package compliance

import "decahose/pkg/domain"

// UserAction is a classified record narrowed to the user action class:
// account deletions, protections, suspensions, their reversals, and
// withholding notices.
type UserAction struct {
	*Base
}

// NewUserAction classifies a raw record and narrows it to a user
// action. Fails with CodeWrongActionClass when the record belongs to a
// different class.
func NewUserAction(rec Record) (*UserAction, error) {
	base, err := NewBase(rec)
	if err != nil {
		return nil, err
	}
	return WrapUserAction(base)
}

// WrapUserAction narrows an already classified record to a user action.
// Classification is re-derived from the underlying record, so wrapping
// is idempotent and never mutates the base.
func WrapUserAction(base *Base) (*UserAction, error) {
	base, err := rewrap(base)
	if err != nil {
		return nil, err
	}
	if !base.IsUserAction() {
		return nil, wrongClassError(domain.ClassUser, base)
	}
	u := &UserAction{Base: base}
	if !exactlyOne(
		u.IsUserDelete(),
		u.IsUserProtect(),
		u.IsUserSuspend(),
		u.IsUserUndelete(),
		u.IsUserUnprotect(),
		u.IsUserUnsuspend(),
		u.IsUserWithheld(),
	) {
		return nil, subActionError(base)
	}
	return u, nil
}

func (u *UserAction) IsUserDelete() bool    { return u.action == domain.ActionUserDelete }
func (u *UserAction) IsUserProtect() bool   { return u.action == domain.ActionUserProtect }
func (u *UserAction) IsUserSuspend() bool   { return u.action == domain.ActionUserSuspend }
func (u *UserAction) IsUserUndelete() bool  { return u.action == domain.ActionUserUndelete }
func (u *UserAction) IsUserUnprotect() bool { return u.action == domain.ActionUserUnprotect }
func (u *UserAction) IsUserUnsuspend() bool { return u.action == domain.ActionUserUnsuspend }
func (u *UserAction) IsUserWithheld() bool  { return u.action == domain.ActionUserWithheld }

// UserID returns the affected user's ID, or nil when absent.
//
// Withholding notices nest the ID at [action, "user", "id_str"]; every
// other user action stores it flat at [action, "id"], sometimes as a
// number. The differing shapes are an upstream inconsistency, preserved
// here deliberately.
func (u *UserAction) UserID() *string {
	if u.IsUserWithheld() {
		return stringValue(u.rec.Lookup(u.action, "user", "id_str"))
	}
	return stringValue(u.rec.Lookup(u.action, "id"))
}

// WithheldInCountries returns the countries the account is withheld in,
// or nil when this is not a withholding notice.
func (u *UserAction) WithheldInCountries() []string {
	if u.IsUserWithheld() {
		return stringSlice(u.rec.Lookup(u.action, "withheld_in_countries"))
	}
	return nil
}
