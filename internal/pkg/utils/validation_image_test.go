package utils

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeBase64Image(t *testing.T) {
	t.Run("valid png data uri", func(t *testing.T) {
		payload := base64.StdEncoding.EncodeToString([]byte("fake image bytes"))
		data, ext, err := DecodeBase64Image("data:image/png;base64," + payload)
		require.NoError(t, err)
		assert.Equal(t, []byte("fake image bytes"), data)
		assert.Equal(t, ".png", ext)
	})

	t.Run("missing comma separator", func(t *testing.T) {
		_, _, err := DecodeBase64Image("data:image/png;base64")
		assert.Error(t, err)
	})

	t.Run("payload is not base64", func(t *testing.T) {
		_, _, err := DecodeBase64Image("data:image/png;base64,not-base-64!!!")
		assert.Error(t, err)
	})

	t.Run("unknown content type", func(t *testing.T) {
		payload := base64.StdEncoding.EncodeToString([]byte("x"))
		_, _, err := DecodeBase64Image("data:application/x-nonsense;base64," + payload)
		assert.Error(t, err)
	})
}

func TestValidateImageFormat(t *testing.T) {
	allowed := []string{".jpg", ".jpeg", ".png"}
	assert.NoError(t, ValidateImageFormat(".png", allowed))
	assert.Error(t, ValidateImageFormat(".gif", allowed))
}

func TestValidateImageSize(t *testing.T) {
	assert.NoError(t, ValidateImageSize(make([]byte, 1024), 2))
	assert.Error(t, ValidateImageSize(make([]byte, 3*1024*1024), 2))
}
