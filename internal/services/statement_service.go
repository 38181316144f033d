// Package services orchestrates statement operations between the
// parser, the parse cache and the in-memory statement store.
package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"banalysis/internal/cache"
	"banalysis/internal/core"
	"banalysis/internal/midata"
	"banalysis/internal/statement"
)

// StatementService loads uploaded midata statements into the store.
type StatementService struct {
	store      *statement.Store
	parseCache *cache.LRU[[]core.Transaction]

	stopCleanup chan struct{}
}

// NewStatementService creates a service caching up to cacheSize parse
// results for cacheTTL each.
func NewStatementService(store *statement.Store, cacheSize int, cacheTTL time.Duration) *StatementService {
	s := &StatementService{
		store:       store,
		parseCache:  cache.NewLRU[[]core.Transaction](cacheSize, cacheTTL),
		stopCleanup: make(chan struct{}),
	}
	go s.cleanupLoop()
	return s
}

// Load parses raw statement bytes and, on success, replaces the
// current statement. Parse failures are returned untouched and leave
// the previously loaded statement in place: the caller gets the whole
// table or none of it.
func (s *StatementService) Load(ctx context.Context, filename string, data []byte) (statement.Statement, error) {
	key := checksum(data)

	txs, hit := s.parseCache.Get(key)
	if hit {
		slog.DebugContext(ctx, "Parse cache hit", "checksum", key, "filename", filename)
	} else {
		parsed, err := midata.ParseBytes(data)
		if err != nil {
			slog.WarnContext(ctx, "Statement rejected",
				"filename", filename, "bytes", len(data), "error", err)
			return statement.Statement{}, err
		}
		txs = parsed
		s.parseCache.Set(key, txs)
	}

	st := statement.Statement{
		ID:           uuid.NewString(),
		Filename:     filename,
		UploadedAt:   time.Now().UTC(),
		Transactions: txs,
		Summary:      core.Summarize(txs),
	}
	s.store.Replace(st)

	slog.InfoContext(ctx, "Statement loaded",
		"statement_id", st.ID,
		"filename", filename,
		"transactions", st.Summary.Transactions,
		"cache_hit", hit)
	return st, nil
}

// Current returns the statement bound to the dashboard, if any.
func (s *StatementService) Current() (statement.Statement, bool) {
	return s.store.Current()
}

// Clear unbinds the current statement.
func (s *StatementService) Clear(ctx context.Context) {
	if st, ok := s.store.Current(); ok {
		slog.InfoContext(ctx, "Statement cleared", "statement_id", st.ID)
	}
	s.store.Clear()
}

// Close stops the cache cleanup goroutine.
func (s *StatementService) Close() {
	close(s.stopCleanup)
}

func (s *StatementService) cleanupLoop() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if n := s.parseCache.CleanExpired(); n > 0 {
				slog.Debug("Parse cache cleanup", "entries_removed", n)
			}
		case <-s.stopCleanup:
			return
		}
	}
}

// checksum keys the parse cache by upload content.
func checksum(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
