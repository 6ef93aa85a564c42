// Package watchlist keeps per-user saved tokens in memory. State is volatile
// and lost on restart.
package watchlist

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/alphafinders/teabot/internal/models"
)

// Result reports the outcome of a mutating watchlist operation.
type Result struct {
	Success bool
	Message string
}

// Stats summarizes one user's watchlist.
type Stats struct {
	Count       int
	Tokens      []models.WatchlistEntry
	OldestToken *models.WatchlistEntry
	NewestToken *models.WatchlistEntry
}

// Store holds watchlists keyed by user identifier. Safe for concurrent use.
type Store struct {
	mu    sync.RWMutex
	lists map[string][]models.WatchlistEntry
	log   *zap.Logger
	now   func() time.Time
}

// NewStore creates an empty watchlist store.
func NewStore(log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{
		lists: make(map[string][]models.WatchlistEntry),
		log:   log,
		now:   time.Now,
	}
}

// Add appends the token to the user's watchlist. Adding an address that is
// already present (case-insensitive) fails and leaves the list unchanged.
func (s *Store) Add(userID string, token *models.TokenRecord) Result {
	if userID == "" || token == nil || token.ContractAddress == "" {
		return Result{Success: false, Message: "Invalid token or user ID"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := token.AddressKey()
	for _, entry := range s.lists[userID] {
		if strings.ToLower(entry.ContractAddress) == key {
			return Result{
				Success: false,
				Message: fmt.Sprintf("%s is already in your watchlist!", token.Symbol),
			}
		}
	}

	chainID := token.ChainID
	if chainID == "" {
		chainID = "optimism"
	}

	s.lists[userID] = append(s.lists[userID], models.WatchlistEntry{
		ContractAddress: token.ContractAddress,
		Symbol:          token.Symbol,
		Name:            token.Name,
		ChainID:         chainID,
		AddedAt:         s.now(),
		PriceAtAdd:      token.PriceUSD,
	})

	s.log.Info("watchlist add",
		zap.String("user", userID), zap.String("symbol", token.Symbol))
	return Result{
		Success: true,
		Message: fmt.Sprintf("%s added to your watchlist!", token.Symbol),
	}
}

// Remove deletes the entry with the given address from the user's watchlist.
func (s *Store) Remove(userID, address string) Result {
	if userID == "" || address == "" {
		return Result{Success: false, Message: "Invalid contract address or user ID"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries, ok := s.lists[userID]
	if !ok {
		return Result{Success: false, Message: "You don't have any tokens in your watchlist"}
	}

	key := strings.ToLower(address)
	kept := make([]models.WatchlistEntry, 0, len(entries))
	for _, entry := range entries {
		if strings.ToLower(entry.ContractAddress) != key {
			kept = append(kept, entry)
		}
	}

	if len(kept) == len(entries) {
		return Result{Success: false, Message: "Token not found in your watchlist"}
	}

	s.lists[userID] = kept
	s.log.Info("watchlist remove", zap.String("user", userID), zap.String("address", address))
	return Result{Success: true, Message: "Token removed from your watchlist"}
}

// List returns the user's entries in insertion order.
func (s *Store) List(userID string) []models.WatchlistEntry {
	if userID == "" {
		return nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := s.lists[userID]
	out := make([]models.WatchlistEntry, len(entries))
	copy(out, entries)
	return out
}

// Contains reports whether the address is on the user's watchlist.
func (s *Store) Contains(userID, address string) bool {
	if userID == "" || address == "" {
		return false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	key := strings.ToLower(address)
	for _, entry := range s.lists[userID] {
		if strings.ToLower(entry.ContractAddress) == key {
			return true
		}
	}
	return false
}

// GetStats summarizes the user's watchlist. Oldest and newest are nil when
// the list is empty.
func (s *Store) GetStats(userID string) Stats {
	tokens := s.List(userID)

	stats := Stats{
		Count:  len(tokens),
		Tokens: tokens,
	}
	if len(tokens) == 0 {
		return stats
	}

	oldest, newest := 0, 0
	for i := range tokens {
		if tokens[i].AddedAt.Before(tokens[oldest].AddedAt) {
			oldest = i
		}
		if tokens[i].AddedAt.After(tokens[newest].AddedAt) {
			newest = i
		}
	}
	stats.OldestToken = &tokens[oldest]
	stats.NewestToken = &tokens[newest]
	return stats
}

// Clear removes all entries for the user and returns how many were removed.
func (s *Store) Clear(userID string) int {
	if userID == "" {
		return 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	count := len(s.lists[userID])
	delete(s.lists, userID)

	s.log.Info("watchlist cleared", zap.String("user", userID), zap.Int("removed", count))
	return count
}
