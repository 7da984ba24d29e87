package git

import (
	"context"
	"fmt"
)

// Commit creates a commit of the staged changes with the given message.
// Git's output (including hook output) is streamed to the runner's writers.
func Commit(ctx context.Context, r *CommandRunner, message string) error {
	if err := r.RunStreaming(ctx, "commit", "-m", message); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}
