package dashboard

import (
	"context"
	"time"
)

// syncCache refreshes the local cache with the current user's fleet and
// wallet. Skipped while logged out or before the identity fetch has resolved.
func (s *Server) syncCache() {
	user := s.store.User()
	if user == nil || !s.store.IsAuthenticated() {
		return
	}

	startedAt := time.Now().UTC()
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	err := s.syncOnce(ctx, user.ID)
	if recordErr := s.cache.RecordSync(user.ID, startedAt, err); recordErr != nil {
		s.logger.Warn().Err(recordErr).Msg("Failed to record cache sync")
	}
	if err != nil {
		s.logger.Warn().Err(err).Msg("Cache sync failed")
		return
	}
	s.logger.Debug().Str("user_id", user.ID).Msg("Cache sync completed")
}

func (s *Server) syncOnce(ctx context.Context, userID string) error {
	vehicles, err := s.client.Vehicles(ctx)
	if err != nil {
		return err
	}
	if err := s.cache.ReplaceVehicles(userID, vehicles); err != nil {
		return err
	}

	wallet, err := s.client.WalletBalance(ctx)
	if err != nil {
		return err
	}
	if err := s.cache.SaveWallet(userID, wallet); err != nil {
		return err
	}

	history, err := s.client.TransactionHistory(ctx, 1, 50)
	if err != nil {
		return err
	}
	return s.cache.ReplaceTransactions(userID, history.Transactions)
}
