package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/nerrad567/gray-logic-assist/internal/report"
)

// listEntitiesArgs are the typed arguments for list_entities.
type listEntitiesArgs struct {
	Pattern string `json:"pattern"`
}

// listEntities renders the state report. A bad filter pattern is the
// caller's mistake and maps to invalid params; upstream failures propagate.
func (r *Registry) listEntities(ctx context.Context, raw json.RawMessage) (string, error) {
	var args listEntitiesArgs
	if err := decodeArgs(raw, &args); err != nil {
		return "", err
	}

	text, err := r.reporter.Render(ctx, args.Pattern)
	if err != nil {
		if errors.Is(err, report.ErrBadPattern) {
			return "", fmt.Errorf("%w: %v", ErrInvalidParams, err)
		}
		return "", err
	}
	return text, nil
}
