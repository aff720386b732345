package queries

import (
	"context"
	"fmt"

	"github.com/davidrhall/conquest-go/internal/application/common"
	"github.com/davidrhall/conquest-go/internal/application/mediator"
	"github.com/davidrhall/conquest-go/internal/application/scoreview"
)

// BuildChartHandler handles chart build queries against a session
type BuildChartHandler struct {
	session *scoreview.Session
}

// NewBuildChartHandler creates a new chart query handler
func NewBuildChartHandler(session *scoreview.Session) *BuildChartHandler {
	return &BuildChartHandler{session: session}
}

// Handle executes the query
func (h *BuildChartHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	query, ok := request.(scoreview.BuildChartQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type for BuildChartHandler: %T", request)
	}

	logger := common.LoggerFromContext(ctx)
	logger.Log("debug", "building score chart", map[string]interface{}{
		"variant_index": query.VariantIndex,
		"by_team":       query.ByTeam,
		"cumulative":    query.Cumulative,
	})

	return h.session.BuildChart(ctx, query)
}
