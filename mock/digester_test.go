package mock_test

import (
	"context"
	"testing"

	"github.com/fwojciec/headlines"
	"github.com/fwojciec/headlines/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDigester_Digest(t *testing.T) {
	t.Parallel()

	t.Run("delegates to DigestFn", func(t *testing.T) {
		t.Parallel()

		var calledWith string
		var calledLimit int
		d := &mock.Digester{
			DigestFn: func(_ context.Context, source string, limit int) (*headlines.Digest, error) {
				calledWith, calledLimit = source, limit
				return &headlines.Digest{Source: source}, nil
			},
		}

		got, err := d.Digest(context.Background(), "https://example.com/", 7)

		require.NoError(t, err)
		assert.Equal(t, "https://example.com/", calledWith)
		assert.Equal(t, 7, calledLimit)
		assert.Equal(t, "https://example.com/", got.Source)
	})

	t.Run("returns error from DigestFn", func(t *testing.T) {
		t.Parallel()

		d := &mock.Digester{
			DigestFn: func(_ context.Context, _ string, _ int) (*headlines.Digest, error) {
				return nil, headlines.Errorf(headlines.EFETCH, "HTTP 503")
			},
		}

		_, err := d.Digest(context.Background(), "https://example.com/", 10)

		assert.Equal(t, headlines.EFETCH, headlines.ErrorCode(err))
	})
}
