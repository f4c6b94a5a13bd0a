package token

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/wordtrail/internal/client/models"
)

func mkToken(payload string) string {
	return "h." + base64.RawURLEncoding.EncodeToString([]byte(payload)) + ".s"
}

func TestDecode_SubjectOnly(t *testing.T) {
	c, err := Decode("h.eyJzdWIiOiJhbGljZSJ9.s")
	require.NoError(t, err)
	assert.Equal(t, "alice", c.Subject)
	assert.Empty(t, c.UserID)

	id, ok := c.Identity()
	require.True(t, ok)
	assert.Equal(t, models.Identity{ID: "alice", Username: "alice"}, id)
}

func TestDecode_UserIDPreferred(t *testing.T) {
	c, err := Decode(mkToken(`{"userId":"u-42","sub":"bob"}`))
	require.NoError(t, err)

	id, ok := c.Identity()
	require.True(t, ok)
	assert.Equal(t, models.Identity{ID: "u-42", Username: "bob"}, id)
}

func TestDecode_NumericUserID(t *testing.T) {
	c, err := Decode(mkToken(`{"userId":12345678901234567}`))
	require.NoError(t, err)
	assert.Equal(t, "12345678901234567", c.UserID)

	id, ok := c.Identity()
	require.True(t, ok)
	assert.Equal(t, models.Identity{ID: "12345678901234567", Username: DefaultUsername}, id)
}

func TestDecode_PaddedSegment(t *testing.T) {
	raw := "h." + base64.URLEncoding.EncodeToString([]byte(`{"sub":"al"}`)) + ".s"
	c, err := Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, "al", c.Subject)
}

func TestDecode_NoIdentityClaims(t *testing.T) {
	c, err := Decode(mkToken(`{"exp":1700000000}`))
	require.NoError(t, err)

	_, ok := c.Identity()
	assert.False(t, ok)
}

func TestDecode_Malformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"opaque", "not-a-jwt"},
		{"two segments", "a.b"},
		{"four segments", "a.b.c.d"},
		{"bad base64", "h.!!!not-base64!!!.s"},
		{"not json", mkToken("hello")},
		{"json array", mkToken(`["sub"]`)},
		{"json null", mkToken(`null`)},
		{"empty payload", "h..s"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Decode(tt.raw)
			require.ErrorIs(t, err, ErrMalformed)
			assert.Nil(t, c)
		})
	}
}
