package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "decahose/pkg/domain-errors"
)

func TestParseActionClass(t *testing.T) {
	t.Run("rejects empty string", func(t *testing.T) {
		_, err := ParseActionClass("")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidClassName))
	})

	t.Run("rejects unsupported value", func(t *testing.T) {
		_, err := ParseActionClass("retweet")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidClassName))
	})

	t.Run("accepts every supported class", func(t *testing.T) {
		for _, s := range []string{"user", "tweet", "drop", "scrub_geo", "like"} {
			c, err := ParseActionClass(s)
			require.NoError(t, err)
			assert.Equal(t, s, c.String())
			assert.True(t, c.IsValid())
		}
	})
}
