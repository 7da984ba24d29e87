package git

import (
	"context"
	"fmt"
	"strings"
)

// StageAll stages all changes including untracked files
func StageAll(ctx context.Context, r *CommandRunner) error {
	_, err := r.Run(ctx, "add", "-A")
	if err != nil {
		return fmt.Errorf("failed to stage all changes: %w", err)
	}
	return nil
}

// HasStagedChanges checks if there are staged changes
func HasStagedChanges(ctx context.Context, r *CommandRunner) (bool, error) {
	output, err := r.Run(ctx, "diff", "--cached", "--shortstat")
	if err != nil {
		return false, fmt.Errorf("failed to check staged changes: %w", err)
	}
	return strings.TrimSpace(output) != "", nil
}
