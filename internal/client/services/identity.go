package services

import (
	"context"
	"encoding/json"

	"github.com/dmitrijs2005/wordtrail/internal/client/models"
	"github.com/dmitrijs2005/wordtrail/internal/client/repositories/kv"
	"github.com/dmitrijs2005/wordtrail/internal/client/token"
	"github.com/dmitrijs2005/wordtrail/internal/common"
	"github.com/dmitrijs2005/wordtrail/internal/logging"
)

// IdentityResolver works out who the current user is from local data.
type IdentityResolver interface {
	// ResolveAndCache tries, in order, the cached identity (userInfo, then
	// the legacy user key), the split userId/username keys, and the token
	// claims. The first source that yields a valid identity wins. An
	// identity found in the split keys or the token is written to userInfo
	// so the next call hits the cache. It returns common.ErrNotAuthenticated
	// when no source yields an identity.
	ResolveAndCache(ctx context.Context) (models.Identity, error)

	// IsAuthenticated reports whether a non-empty token is stored. It does
	// not check that ResolveAndCache would succeed.
	IsAuthenticated(ctx context.Context) bool
}

type identitySource struct {
	name         string
	writeThrough bool
	resolve      func(ctx context.Context) (models.Identity, bool)
}

type identityResolver struct {
	store   kv.Store
	log     logging.Logger
	sources []identitySource
}

func NewIdentityResolver(store kv.Store, log logging.Logger) IdentityResolver {
	r := &identityResolver{
		store: store,
		log:   log.With("service", "identity"),
	}
	r.sources = []identitySource{
		{name: "cache", resolve: r.fromCache},
		{name: "fields", resolve: r.fromFields, writeThrough: true},
		{name: "token", resolve: r.fromToken, writeThrough: true},
	}
	return r
}

func (r *identityResolver) ResolveAndCache(ctx context.Context) (models.Identity, error) {
	for _, src := range r.sources {
		id, ok := src.resolve(ctx)
		if !ok {
			continue
		}

		if src.writeThrough {
			if err := kv.SetJSON(ctx, r.store, kv.KeyUserInfo, id); err != nil {
				r.log.Warn(ctx, "failed to cache identity", "source", src.name, "err", err)
			}
		}

		r.log.Debug(ctx, "identity resolved", "source", src.name, "user_id", id.ID)
		return id, nil
	}

	return models.Identity{}, common.ErrNotAuthenticated
}

func (r *identityResolver) IsAuthenticated(ctx context.Context) bool {
	return readToken(ctx, r.store, r.log) != ""
}

func (r *identityResolver) fromCache(ctx context.Context) (models.Identity, bool) {
	for _, key := range []string{kv.KeyUserInfo, kv.KeyLegacyUser} {
		raw, err := r.store.Get(ctx, key)
		if err != nil {
			r.log.Warn(ctx, "failed to read cached identity", "key", key, "err", err)
			continue
		}
		if raw == nil {
			continue
		}

		st, ok := decodeStoredIdentity(raw)
		if !ok {
			r.log.Debug(ctx, "ignoring unreadable cached identity", "key", key)
			continue
		}

		if id := st.Normalize(); id.Valid() {
			return id, true
		}
	}
	return models.Identity{}, false
}

func (r *identityResolver) fromFields(ctx context.Context) (models.Identity, bool) {
	userID, _, err := kv.GetString(ctx, r.store, kv.KeyUserID)
	if err != nil {
		r.log.Warn(ctx, "failed to read user id", "err", err)
		return models.Identity{}, false
	}
	username, _, err := kv.GetString(ctx, r.store, kv.KeyUsername)
	if err != nil {
		r.log.Warn(ctx, "failed to read username", "err", err)
		return models.Identity{}, false
	}

	id := models.Identity{ID: userID, Username: username}
	return id, id.Valid()
}

func (r *identityResolver) fromToken(ctx context.Context) (models.Identity, bool) {
	tok := readToken(ctx, r.store, r.log)
	if tok == "" {
		return models.Identity{}, false
	}

	claims, err := token.Decode(tok)
	if err != nil {
		r.log.Warn(ctx, "failed to decode token claims",
			"token", common.TokenFingerprint(tok), "err", err)
		return models.Identity{}, false
	}

	return claims.Identity()
}

// decodeStoredIdentity accepts an identity object or a JSON string holding one.
func decodeStoredIdentity(raw []byte) (models.StoredIdentity, bool) {
	var st models.StoredIdentity
	if err := json.Unmarshal(raw, &st); err == nil {
		return st, true
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return st, false
	}
	if err := json.Unmarshal([]byte(s), &st); err != nil {
		return st, false
	}
	return st, true
}
