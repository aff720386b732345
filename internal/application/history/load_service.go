// Package history drives turn loading against the domain's
// isLoadable/handleLoadSucceeded/handleLoadFailed contract.
package history

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"

	"github.com/davidrhall/conquest-go/internal/application/common"
	"github.com/davidrhall/conquest-go/internal/domain/history"
	"github.com/davidrhall/conquest-go/pkg/utils"
)

// LoadMetrics records load outcomes. A nil recorder disables metrics.
type LoadMetrics interface {
	RecordLoadSuccess(player, turnNumber int)
	RecordLoadFailure(player, turnNumber int)
}

// LoadService fetches historical turns through a Loader and delivers the
// outcomes to the history list. Loads are rate-limited so catching up on a
// long game does not hammer the archive.
type LoadService struct {
	turns   *history.List
	loader  history.Loader
	limiter *rate.Limiter
	metrics LoadMetrics
}

// NewLoadService creates a load service. loadsPerSecond bounds the request
// rate; values <= 0 disable throttling.
func NewLoadService(turns *history.List, loader history.Loader, loadsPerSecond float64, metrics LoadMetrics) *LoadService {
	limit := rate.Inf
	if loadsPerSecond > 0 {
		limit = rate.Limit(loadsPerSecond)
	}
	return &LoadService{
		turns:   turns,
		loader:  loader,
		limiter: rate.NewLimiter(limit, 1),
		metrics: metrics,
	}
}

// Classify refreshes availability for count consecutive turns starting at
// firstTurn, touching only entries still in Unknown state.
func (s *LoadService) Classify(ctx context.Context, player, firstTurn, count int) error {
	if err := s.turns.InitFromTurnLoader(ctx, s.loader, player, firstTurn, count); err != nil {
		return fmt.Errorf("failed to classify turns: %w", err)
	}
	return nil
}

// Load attempts to load one turn and returns its entry. A failed fetch is
// an expected outcome, recorded on the entry, not an error; errors are
// reserved for invalid turn numbers and cancelled contexts.
func (s *LoadService) Load(ctx context.Context, player, turnNumber int) (*history.Turn, error) {
	entry := s.turns.Create(turnNumber)
	if entry == nil {
		return nil, fmt.Errorf("invalid turn number: %d", turnNumber)
	}
	if !entry.IsLoadable() {
		return entry, nil
	}

	requestID := utils.GenerateRequestID("load", player)
	logger := common.LoggerFromContext(ctx)
	logger.Log("info", "loading historical turn", map[string]interface{}{
		"request_id": requestID,
		"player":     player,
		"turn":       turnNumber,
	})

	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	snapshot, err := s.loader.LoadTurn(ctx, player, turnNumber)
	if err != nil {
		entry.HandleLoadFailed()
		if s.metrics != nil {
			s.metrics.RecordLoadFailure(player, turnNumber)
		}
		logger.Log("warn", "turn load failed", map[string]interface{}{
			"request_id": requestID,
			"player":     player,
			"turn":       turnNumber,
			"error":      err.Error(),
		})
		return entry, nil
	}

	entry.HandleLoadSucceeded(snapshot)
	if s.metrics != nil {
		s.metrics.RecordLoadSuccess(player, turnNumber)
	}
	return entry, nil
}

// LoadNewest classifies and loads the newest turn still worth asking
// about, below currentTurn. Returns the entry that was attempted, nil if
// the search bottomed out below turn 1.
func (s *LoadService) LoadNewest(ctx context.Context, player, currentTurn int) (*history.Turn, error) {
	turnNumber := s.turns.FindNewestUnknownTurnNumber(currentTurn)
	if turnNumber <= 0 {
		return nil, nil
	}
	if err := s.Classify(ctx, player, turnNumber, 1); err != nil {
		return nil, err
	}
	return s.Load(ctx, player, turnNumber)
}
