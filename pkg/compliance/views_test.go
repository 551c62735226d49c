package compliance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"decahose/pkg/domain"
	dErrors "decahose/pkg/domain-errors"
)

// TestViewClassMatrix validates the construction contract across every
// recognized action and every view: the matching view always succeeds,
// every other view fails with the wrong-class code.
func TestViewClassMatrix(t *testing.T) {
	constructors := map[domain.ActionClass]func(Record) error{
		domain.ClassUser: func(r Record) error {
			_, err := NewUserAction(r)
			return err
		},
		domain.ClassTweet: func(r Record) error {
			_, err := NewTweetAction(r)
			return err
		},
		domain.ClassDrop: func(r Record) error {
			_, err := NewDropAction(r)
			return err
		},
		domain.ClassScrubGeo: func(r Record) error {
			_, err := NewScrubGeoAction(r)
			return err
		},
		domain.ClassLike: func(r Record) error {
			_, err := NewDeleteLikeAction(r)
			return err
		},
	}

	for _, class := range []domain.ActionClass{
		domain.ClassUser, domain.ClassTweet, domain.ClassDrop,
		domain.ClassScrubGeo, domain.ClassLike,
	} {
		actions, err := domain.Actions(class)
		require.NoError(t, err)
		for _, action := range actions {
			record := rec(action, map[string]any{})
			for viewClass, construct := range constructors {
				t.Run(action+"/"+viewClass.String(), func(t *testing.T) {
					err := construct(record)
					if viewClass == class {
						assert.NoError(t, err)
					} else {
						require.Error(t, err)
						assert.True(t, dErrors.HasCode(err, dErrors.CodeWrongActionClass))
					}
				})
			}
		}
	}
}
