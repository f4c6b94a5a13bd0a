package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/wordtrail/internal/client/repositories/kv"
	"github.com/dmitrijs2005/wordtrail/internal/common"
	"github.com/dmitrijs2005/wordtrail/internal/logging"
)

var ErrEmptyToken = errors.New("token must not be empty")

// AuthService manages the locally stored session.
//
// Contract:
//   - SignIn: store a token and, when known, the split identity fields.
//     The previously cached identity is dropped so the next resolution
//     sees the new session.
//   - SignOut: remove the token, identity and profile keys and the current
//     lexicon. Language and learning settings are kept.
//   - Reset: wipe the whole local store.
//
// SignIn and SignOut are atomic when the store supports transactions.
type AuthService interface {
	SignIn(ctx context.Context, token, userID, username string) error
	SignOut(ctx context.Context) error
	Reset(ctx context.Context) error
}

type authService struct {
	store kv.Store
	log   logging.Logger
}

func NewAuthService(store kv.Store, log logging.Logger) AuthService {
	return &authService{store: store, log: log.With("service", "auth")}
}

func (a *authService) SignIn(ctx context.Context, token, userID, username string) error {
	if token == "" {
		return ErrEmptyToken
	}

	err := kv.RunInTx(ctx, a.store, func(ctx context.Context, s kv.Store) error {
		for _, key := range []string{kv.KeyUserInfo, kv.KeyLegacyUser} {
			if err := s.Delete(ctx, key); err != nil {
				return err
			}
		}
		if err := kv.SetString(ctx, s, kv.KeyToken, token); err != nil {
			return err
		}
		if err := setOrDelete(ctx, s, kv.KeyUserID, userID); err != nil {
			return err
		}
		return setOrDelete(ctx, s, kv.KeyUsername, username)
	})
	if err != nil {
		a.log.Error(ctx, "sign-in failed", "token", common.TokenFingerprint(token), "err", err)
		return err
	}

	a.log.Info(ctx, "signed in", "token", common.TokenFingerprint(token), "user_id", userID)
	return nil
}

func (a *authService) SignOut(ctx context.Context) error {
	err := kv.RunInTx(ctx, a.store, func(ctx context.Context, s kv.Store) error {
		for _, key := range kv.SessionKeys {
			if err := s.Delete(ctx, key); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		a.log.Error(ctx, "sign-out failed", "err", err)
		return err
	}

	a.log.Info(ctx, "signed out")
	return nil
}

func (a *authService) Reset(ctx context.Context) error {
	if err := a.store.Clear(ctx); err != nil {
		a.log.Error(ctx, "reset failed", "err", err)
		return err
	}
	a.log.Info(ctx, "local data cleared")
	return nil
}

func setOrDelete(ctx context.Context, s kv.Store, key, value string) error {
	if value == "" {
		return s.Delete(ctx, key)
	}
	return kv.SetString(ctx, s, key, value)
}
