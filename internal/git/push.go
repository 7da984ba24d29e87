package git

import (
	"context"
	"fmt"
)

// Push runs a plain `git push`, relying on the branch's configured upstream
// and the operator's remote credentials.
func Push(ctx context.Context, r *CommandRunner) error {
	if err := r.RunStreaming(ctx, "push"); err != nil {
		return fmt.Errorf("failed to push: %w", err)
	}
	return nil
}
