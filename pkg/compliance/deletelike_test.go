package compliance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "decahose/pkg/domain-errors"
)

func deleteLikeRecord() Record {
	return rec("favorite_delete", map[string]any{
		"favorite": map[string]any{
			"tweet_id_str": "42",
			"user_id_str":  "7",
		},
		"timestamp_ms": "1610000000123",
	})
}

func TestDeleteLikeAction(t *testing.T) {
	t.Run("rejects a non-like record", func(t *testing.T) {
		// A tweet delete is not a like delete, even though both mark a
		// removal.
		_, err := NewDeleteLikeAction(tweetDeleteRecord())
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeWrongActionClass))
	})

	t.Run("accessors read the favorite object", func(t *testing.T) {
		l, err := NewDeleteLikeAction(deleteLikeRecord())
		require.NoError(t, err)

		require.NotNil(t, l.TweetID())
		assert.Equal(t, "42", *l.TweetID())
		require.NotNil(t, l.UserID())
		assert.Equal(t, "7", *l.UserID())
	})

	t.Run("missing favorite object yields nils", func(t *testing.T) {
		l, err := NewDeleteLikeAction(rec("favorite_delete", map[string]any{}))
		require.NoError(t, err)
		assert.Nil(t, l.TweetID())
		assert.Nil(t, l.UserID())
	})
}

func TestWrapDeleteLikeAction_Idempotent(t *testing.T) {
	raw := deleteLikeRecord()
	base, err := NewBase(raw)
	require.NoError(t, err)

	direct, err := NewDeleteLikeAction(raw)
	require.NoError(t, err)
	wrapped, err := WrapDeleteLikeAction(base)
	require.NoError(t, err)

	assert.Equal(t, direct.TweetID(), wrapped.TweetID())
	assert.Equal(t, direct.UserID(), wrapped.UserID())
	assert.True(t, wrapped.IsLikeAction())
}
