package services

import (
	"context"

	"github.com/dmitrijs2005/wordtrail/internal/client/repositories/kv"
	"github.com/dmitrijs2005/wordtrail/internal/logging"
)

// readToken returns the stored bearer token or "" when none is usable.
func readToken(ctx context.Context, store kv.Store, log logging.Logger) string {
	tok, _, err := kv.GetString(ctx, store, kv.KeyToken)
	if err != nil {
		log.Warn(ctx, "failed to read token", "err", err)
		return ""
	}
	return tok
}
