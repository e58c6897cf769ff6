package ports

import (
	"context"

	"github.com/MaxiJeziFlexi/finapp-advisor/pkg/domain"
)

// AdviceGenerator is the external generative service that turns a routed
// question plus accumulated context into advice prose. It is treated as
// an opaque, possibly-failing black box: a failure degrades to a fixed
// apology at the orchestration boundary, never an error surfaced to the
// end user.
type AdviceGenerator interface {
	Generate(ctx context.Context, req *domain.AdviceRequest) (*domain.Advice, error)
}
