package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeToken(t *testing.T) {
	cursor := Cursor{
		Date:      time.Date(2025, 5, 15, 0, 0, 0, 0, time.UTC),
		CreatedAt: time.Date(2025, 5, 15, 14, 30, 45, 123456789, time.UTC),
		ID:        "4b1f0a52-5b0e-4b7b-9d3c-1f7e7c1f0e11",
	}

	token := EncodeToken(cursor)
	assert.NotEmpty(t, token)

	decoded, err := DecodeToken(token)
	require.NoError(t, err)
	assert.Equal(t, cursor, decoded)
}

func TestDecodeTokenError(t *testing.T) {
	_, err := DecodeToken("this is not base64!")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "base64 decode")

	missingID := base64.URLEncoding.EncodeToString([]byte("2025-05-15T00:00:00Z|2025-05-15T00:00:00Z"))
	_, err = DecodeToken(missingID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "split")

	badDate := base64.URLEncoding.EncodeToString([]byte("notadate|2025-05-15T00:00:00Z|id-1"))
	_, err = DecodeToken(badDate)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "date parse")
}
