package out

import (
	"context"

	"github.com/bnema/infradeploy/internal/domain"
)

// OperationRecorder receives the outcome of resource operations and workflows.
type OperationRecorder interface {
	RecordOperation(ctx context.Context, resource domain.ResourceKind, op string, err error)
	RecordWorkflow(ctx context.Context, report domain.Report)
}
