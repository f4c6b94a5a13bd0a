package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/wordtrail/internal/client/models"
	"github.com/dmitrijs2005/wordtrail/internal/common"
)

func TestProfile_SetShowClear(t *testing.T) {
	h := newHarness(t, "")

	out, err := h.exec(t, "profile", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "No profile stored.")

	_, err = h.exec(t, "profile", "set", "--username", "bob", "--email", "bob@example.com")
	require.NoError(t, err)

	out, err = h.exec(t, "profile", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "username: bob")
	assert.Contains(t, out, "email:    bob@example.com")

	out, err = h.exec(t, "profile", "clear")
	require.NoError(t, err)
	assert.Contains(t, out, "Profile cleared.")

	out, err = h.exec(t, "profile", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "No profile stored.")
}

func TestProfile_SetRequiresUsername(t *testing.T) {
	h := newHarness(t, "")
	_, err := h.exec(t, "profile", "set", "--email", "x@example.com")
	require.Error(t, err)
}

func TestProfile_Detail(t *testing.T) {
	h := newHarness(t, "")
	h.signIn(t, "tok", "u1", "bob")
	phone := "+100"
	h.api.detail = &models.UserDetail{UserID: "u1", Username: "bob", Email: "b@x", Phone: &phone, Active: true}

	out, err := h.exec(t, "profile", "detail")
	require.NoError(t, err)
	assert.Contains(t, out, "id:       u1")
	assert.Contains(t, out, "phone:    +100")
	assert.Contains(t, out, "active:   true")
}

func TestProfile_DetailNotSignedIn(t *testing.T) {
	h := newHarness(t, "")
	_, err := h.exec(t, "profile", "detail")
	require.ErrorIs(t, err, common.ErrNotAuthenticated)
}
