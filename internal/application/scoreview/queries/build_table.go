package queries

import (
	"context"
	"fmt"

	"github.com/davidrhall/conquest-go/internal/application/common"
	"github.com/davidrhall/conquest-go/internal/application/mediator"
	"github.com/davidrhall/conquest-go/internal/application/scoreview"
)

// BuildTableHandler handles single-turn table build queries against a session
type BuildTableHandler struct {
	session *scoreview.Session
}

// NewBuildTableHandler creates a new table query handler
func NewBuildTableHandler(session *scoreview.Session) *BuildTableHandler {
	return &BuildTableHandler{session: session}
}

// Handle executes the query
func (h *BuildTableHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	query, ok := request.(scoreview.BuildTableQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type for BuildTableHandler: %T", request)
	}

	logger := common.LoggerFromContext(ctx)
	metadata := map[string]interface{}{
		"turn_index": query.TurnIndex,
		"by_team":    query.ByTeam,
	}
	if query.Difference != nil {
		metadata["difference"] = fmt.Sprintf("%d-%d", query.Difference.First, query.Difference.Second)
	}
	logger.Log("debug", "building score table", metadata)

	return h.session.BuildTable(ctx, query)
}
