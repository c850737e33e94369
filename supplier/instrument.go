package supplier

import (
	"context"

	"github.com/jerry-maheswara-github/supplier-kit/logger"
	"github.com/jerry-maheswara-github/supplier-kit/observability"
)

// Instrument wraps g with fan-out observability: a per-query UUID, a
// span covering the whole fan-out, fan-out metrics, and a summary log
// line. The wrapped group's partition is returned untouched. Both log
// and metrics may be nil; a nil log falls back to the global logger and
// nil metrics skips metric recording.
func Instrument(g Group, log *logger.Logger, metrics *observability.Metrics) Group {
	if log == nil {
		log = logger.GetGlobalLogger()
	}
	return &instrumentedGroup{
		inner:   g,
		log:     log.WithComponent("supplier.group"),
		metrics: metrics,
	}
}

type instrumentedGroup struct {
	inner   Group
	log     *logger.Logger
	metrics *observability.Metrics
}

func (ig *instrumentedGroup) GroupName() string { return ig.inner.GroupName() }

func (ig *instrumentedGroup) Query(ctx context.Context, req Request) GroupResult {
	qc := observability.NewQueryContext(ig.inner.GroupName(), "", ig.metrics)
	ctx = observability.WithQueryContext(ctx, qc)

	ctx, span := qc.StartFanoutSpan(ctx, "group.query."+ig.inner.GroupName())
	observability.SetSpanAttribute(ctx, observability.AttrOperationName, req.Operation.String())

	result := ig.inner.Query(ctx, req)

	members := len(result.Successes) + len(result.Failures)
	qc.EndFanout(ctx, span, members, len(result.Successes), len(result.Failures))

	ig.log.Info("group query done", logger.Fields(
		logger.FieldGroup, ig.inner.GroupName(),
		logger.FieldQueryID, qc.QueryID,
		logger.FieldOperation, req.Operation.String(),
		logger.FieldMembers, members,
		logger.FieldSuccesses, len(result.Successes),
		logger.FieldFailures, len(result.Failures),
		logger.FieldDuration, qc.Duration().Milliseconds(),
	))

	return result
}
