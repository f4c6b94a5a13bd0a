// Package token reads the identity claims carried by a bearer token.
//
// Tokens are treated as opaque credentials: the signature is never checked
// and the header is never inspected. Only the middle segment of a
// three-segment token is decoded, and only to recover who the user is when
// nothing better is stored locally.
package token

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/wordtrail/internal/client/models"
)

// ErrMalformed is returned for tokens whose claims cannot be decoded.
var ErrMalformed = errors.New("malformed token")

// DefaultUsername is used when the claims carry no subject.
const DefaultUsername = "user"

var parser = jwt.NewParser(jwt.WithPaddingAllowed())

// Claims are the identity-related claims of a token.
type Claims struct {
	UserID  string
	Subject string
}

// Decode extracts the claims from the payload segment of raw.
func Decode(raw string) (*Claims, error) {
	parts := strings.Split(raw, ".")
	if len(parts) != 3 {
		return nil, fmt.Errorf("%w: expected 3 segments, got %d", ErrMalformed, len(parts))
	}

	payload, err := parser.DecodeSegment(parts[1])
	if err != nil {
		return nil, fmt.Errorf("%w: decode payload: %w", ErrMalformed, err)
	}

	dec := json.NewDecoder(bytes.NewReader(payload))
	dec.UseNumber()

	var mc jwt.MapClaims
	if err := dec.Decode(&mc); err != nil {
		return nil, fmt.Errorf("%w: parse claims: %w", ErrMalformed, err)
	}
	if mc == nil {
		return nil, fmt.Errorf("%w: empty claims", ErrMalformed)
	}

	c := &Claims{UserID: claimString(mc["userId"])}
	if sub, err := mc.GetSubject(); err == nil {
		c.Subject = sub
	}
	return c, nil
}

// Identity derives an Identity from the claims. The id is userId, else sub;
// the username is sub, else DefaultUsername. It reports false when neither
// claim is set.
func (c *Claims) Identity() (models.Identity, bool) {
	id := c.UserID
	if id == "" {
		id = c.Subject
	}
	if id == "" {
		return models.Identity{}, false
	}

	username := c.Subject
	if username == "" {
		username = DefaultUsername
	}

	return models.Identity{ID: id, Username: username}, true
}

func claimString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	default:
		return ""
	}
}
