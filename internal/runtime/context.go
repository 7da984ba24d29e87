package runtime

import (
	"context"
	"os"
	"time"

	"gca.dev/gca/internal/config"
	"gca.dev/gca/internal/git"
	"gca.dev/gca/internal/tui"
)

// Context provides access to git, prompts and output for commands
type Context struct {
	// Context carries cancellation for git commands. It is canceled on Ctrl+C.
	Context  context.Context
	Splog    *tui.Splog
	Git      git.Runner
	Prompter tui.Prompter
	Config   *config.Config
	// Now stamps generated commit messages
	Now func() time.Time
}

// NewContext creates a context around the given collaborators. A nil config
// means defaults; a nil splog writes to stdout.
func NewContext(ctx context.Context, runner git.Runner, prompter tui.Prompter, splog *tui.Splog, cfg *config.Config) *Context {
	if ctx == nil {
		ctx = context.Background()
	}
	if cfg == nil {
		cfg = &config.Config{}
	}
	if splog == nil {
		splog = tui.NewSplog(os.Stdout)
	}
	return &Context{
		Context:  ctx,
		Splog:    splog,
		Git:      runner,
		Prompter: prompter,
		Config:   cfg,
		Now:      time.Now,
	}
}
