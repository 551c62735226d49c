package domain

import (
	"fmt"

	dErrors "decahose/pkg/domain-errors"
)

// Recognized compliance action names, grouped by class. The firehose
// delivers each as the sole top-level key of a compliance record.
const (
	// User actions.
	ActionUserDelete    = "user_delete"
	ActionUserProtect   = "user_protect"
	ActionUserSuspend   = "user_suspend"
	ActionUserUndelete  = "user_undelete"
	ActionUserUnprotect = "user_unprotect"
	ActionUserUnsuspend = "user_unsuspend"
	ActionUserWithheld  = "user_withheld"

	// Tweet actions.
	ActionTweetDelete    = "delete"
	ActionTweetEdit      = "tweet_edit"
	ActionStatusWithheld = "status_withheld"

	// Drop actions.
	ActionDrop   = "drop"
	ActionUndrop = "undrop"

	// Geo actions.
	ActionScrubGeo = "scrub_geo"

	// Like actions. The upstream stream reuses the "delete" key for like
	// deletions; the distinct name here keeps the class sets disjoint
	// (the favorite sub-object in the message body is unchanged).
	ActionFavoriteDelete = "favorite_delete"
)

// actionsByClass is the single source of truth for class membership.
// Invariant: the five sets are pairwise disjoint and their union is the
// complete universe of recognized action names.
var actionsByClass = map[ActionClass][]string{
	ClassUser: {
		ActionUserDelete,
		ActionUserProtect,
		ActionUserSuspend,
		ActionUserUndelete,
		ActionUserUnprotect,
		ActionUserUnsuspend,
		ActionUserWithheld,
	},
	ClassTweet: {
		ActionTweetDelete,
		ActionTweetEdit,
		ActionStatusWithheld,
	},
	ClassDrop: {
		ActionDrop,
		ActionUndrop,
	},
	ClassScrubGeo: {
		ActionScrubGeo,
	},
	ClassLike: {
		ActionFavoriteDelete,
	},
}

// Actions returns the recognized action names for the given class.
// The returned slice is a copy; callers may modify it freely.
//
// Errors: returns CodeInvalidClassName when the class is not supported.
func Actions(class ActionClass) ([]string, error) {
	names, ok := actionsByClass[class]
	if !ok {
		return nil, dErrors.New(dErrors.CodeInvalidClassName,
			fmt.Sprintf("invalid action class %q: must be one of 'user', 'tweet', 'drop', 'scrub_geo', 'like'", class))
	}
	out := make([]string, len(names))
	copy(out, names)
	return out, nil
}

// ClassOf returns the class an action name belongs to.
//
// Errors: returns CodeUnrecognizedAction when the name matches zero or
// more than one class set. The multi-match branch should be unreachable
// while the sets stay disjoint; it guards against schema drift.
func ClassOf(action string) (ActionClass, error) {
	var (
		found   ActionClass
		matches int
	)
	for class, names := range actionsByClass {
		for _, name := range names {
			if name == action {
				found = class
				matches++
			}
		}
	}
	if matches != 1 {
		return "", dErrors.New(dErrors.CodeUnrecognizedAction,
			fmt.Sprintf("unknown action %q: matched %d action classes, want exactly 1", action, matches))
	}
	return found, nil
}
