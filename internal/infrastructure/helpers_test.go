package infrastructure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teamkits/go-backend/pkg/e"
)

func TestGetExtensionFromMIME(t *testing.T) {
	t.Parallel()

	tests := []struct {
		mime string
		want string
	}{
		{mime: "image/jpeg", want: "jpg"},
		{mime: "image/jpg", want: "jpg"},
		{mime: "image/png", want: "png"},
		{mime: "image/webp", want: "webp"},
		{mime: "application/pdf", want: "pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.mime, func(t *testing.T) {
			t.Parallel()

			got, err := GetExtensionFromMIME(tt.mime)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("unsupported", func(t *testing.T) {
		t.Parallel()

		_, err := GetExtensionFromMIME("image/gif")
		require.ErrorIs(t, err, e.ErrUnsupportedMediaType)
	})
}
