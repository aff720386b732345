// Package scoreview serializes access to the score model. The domain core
// is single-threaded by contract; a Session owns it on one goroutine and
// other threads post build requests and receive freshly built tables back.
package scoreview

import (
	"context"
	"fmt"

	"github.com/davidrhall/conquest-go/internal/domain/dataview"
	"github.com/davidrhall/conquest-go/internal/domain/game"
	"github.com/davidrhall/conquest-go/internal/domain/score"
)

// BuildChartQuery selects the parameters for one chart build
type BuildChartQuery struct {
	VariantIndex int
	ByTeam       bool
	Cumulative   bool
}

// TurnPair names two turn indexes for difference mode
type TurnPair struct {
	First  int
	Second int
}

// BuildTableQuery selects the parameters for one table build.
// A nil Difference shows the single turn at TurnIndex.
type BuildTableQuery struct {
	TurnIndex  int
	ByTeam     bool
	Difference *TurnPair
}

// Session owns the score model and its builders. All reads and writes are
// funneled through the session goroutine, giving the lock-free domain core
// the single logical owner thread it requires.
type Session struct {
	scores  *score.TurnScoreList
	chart   *score.ChartBuilder
	table   *score.TableBuilder
	request chan func()
	done    chan struct{}
}

// NewSession creates a session over the given model and starts its
// goroutine. The player directory, team settings, and host configuration
// must outlive the session.
func NewSession(scores *score.TurnScoreList, players *game.PlayerList, teams *game.TeamSettings,
	host game.HostVersion, config *game.HostConfiguration, tx game.Translator) *Session {

	s := &Session{
		scores:  scores,
		chart:   score.NewChartBuilder(scores, players, teams, host, config, tx),
		table:   score.NewTableBuilder(scores, players, teams, host, config, tx),
		request: make(chan func()),
		done:    make(chan struct{}),
	}
	go s.run()
	return s
}

func (s *Session) run() {
	for fn := range s.request {
		fn()
	}
	close(s.done)
}

// Close shuts down the session goroutine. Pending posts complete first.
func (s *Session) Close() {
	close(s.request)
	<-s.done
}

// post runs a function on the session goroutine and waits for it
func (s *Session) post(ctx context.Context, fn func()) error {
	wrapped := make(chan struct{})
	job := func() {
		fn()
		close(wrapped)
	}
	select {
	case s.request <- job:
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case <-wrapped:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// BuildChart builds a score-over-time table on the session goroutine
func (s *Session) BuildChart(ctx context.Context, q BuildChartQuery) (*dataview.Table, error) {
	var result *dataview.Table
	err := s.post(ctx, func() {
		s.chart.SetVariantIndex(q.VariantIndex)
		s.chart.SetByTeam(q.ByTeam)
		s.chart.SetCumulativeMode(q.Cumulative)
		result = s.chart.Build()
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build chart: %w", err)
	}
	return result, nil
}

// BuildTable builds a single-turn (or turn-difference) table on the
// session goroutine.
func (s *Session) BuildTable(ctx context.Context, q BuildTableQuery) (*dataview.Table, error) {
	var result *dataview.Table
	err := s.post(ctx, func() {
		s.table.SetByTeam(q.ByTeam)
		if q.Difference != nil {
			s.table.SetTurnDifferenceIndexes(q.Difference.First, q.Difference.Second)
		} else {
			s.table.SetTurnIndex(q.TurnIndex)
		}
		result = s.table.Build()
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build table: %w", err)
	}
	return result, nil
}

// ChartVariants returns the chart builder's variant list
func (s *Session) ChartVariants(ctx context.Context) ([]score.Variant, error) {
	var result []score.Variant
	err := s.post(ctx, func() {
		result = s.chart.Variants()
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Update runs a mutation against the score list on the session goroutine
func (s *Session) Update(ctx context.Context, fn func(*score.TurnScoreList)) error {
	return s.post(ctx, func() { fn(s.scores) })
}
