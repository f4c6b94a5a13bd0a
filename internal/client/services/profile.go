package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/wordtrail/internal/client/client"
	"github.com/dmitrijs2005/wordtrail/internal/client/models"
	"github.com/dmitrijs2005/wordtrail/internal/client/repositories/kv"
	"github.com/dmitrijs2005/wordtrail/internal/common"
	"github.com/dmitrijs2005/wordtrail/internal/logging"
)

// ProfileService manages the display profile under the user_info key and
// fetches the account record from the backend.
type ProfileService interface {
	GetCurrentUser(ctx context.Context) *models.UserProfile
	// SetCurrentUser stores only the username and email.
	SetCurrentUser(ctx context.Context, p models.UserProfile) error
	ClearCurrentUser(ctx context.Context) error
	// FetchCurrentUserDetail resolves the current identity and loads its
	// account record from the backend.
	FetchCurrentUserDetail(ctx context.Context) (*models.UserDetail, error)
}

type profileService struct {
	store    kv.Store
	api      client.Client
	identity IdentityResolver
	log      logging.Logger
}

func NewProfileService(store kv.Store, api client.Client, identity IdentityResolver, log logging.Logger) ProfileService {
	return &profileService{
		store:    store,
		api:      api,
		identity: identity,
		log:      log.With("service", "profile"),
	}
}

func (p *profileService) GetCurrentUser(ctx context.Context) *models.UserProfile {
	s, found, err := kv.GetString(ctx, p.store, kv.KeyUserProfile)
	if err != nil {
		p.log.Warn(ctx, "failed to read profile", "err", err)
		return nil
	}
	if !found || s == "" {
		return nil
	}

	var prof *models.UserProfile
	if err := json.Unmarshal([]byte(s), &prof); err != nil {
		p.log.Warn(ctx, "failed to decode profile",
			"err", fmt.Errorf("%w: %w", common.ErrStoreRead, err))
		return nil
	}
	return prof
}

func (p *profileService) SetCurrentUser(ctx context.Context, prof models.UserProfile) error {
	b, err := json.Marshal(models.UserProfile{Username: prof.Username, Email: prof.Email})
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	return kv.SetString(ctx, p.store, kv.KeyUserProfile, string(b))
}

func (p *profileService) ClearCurrentUser(ctx context.Context) error {
	return p.store.Delete(ctx, kv.KeyUserProfile)
}

func (p *profileService) FetchCurrentUserDetail(ctx context.Context) (*models.UserDetail, error) {
	id, err := p.identity.ResolveAndCache(ctx)
	if err != nil {
		return nil, err
	}

	tok := readToken(ctx, p.store, p.log)
	if tok == "" {
		return nil, common.ErrNotAuthenticated
	}

	detail, err := p.api.GetUserDetail(ctx, tok, id.ID)
	if err != nil {
		p.log.Error(ctx, "failed to fetch user detail", "user_id", id.ID, "err", err)
		return nil, fmt.Errorf("fetch user %s: %w", id.ID, err)
	}
	return detail, nil
}
