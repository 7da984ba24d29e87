// Package commit implements the interactive commit flow: pick or type a
// message, confirm, stage everything, commit and optionally push.
package commit

import (
	"errors"
	"fmt"

	"gca.dev/gca/internal/conventional"
	gcaerrors "gca.dev/gca/internal/errors"
	"gca.dev/gca/internal/git"
	"gca.dev/gca/internal/runtime"
	"gca.dev/gca/internal/tui"
)

const (
	methodGuided = "guided"
	methodCustom = "custom"
	optionCancel = "cancel"
)

// Options contains options for the commit flow
type Options struct {
	// Timestamp appends the current time to the commit subject
	Timestamp bool
}

// DefaultOptions returns the options derived from the loaded config
func DefaultOptions(ctx *runtime.Context) Options {
	return Options{Timestamp: ctx.Config.TimestampEnabled()}
}

// Action runs one commit pass in the current repository
func Action(ctx *runtime.Context, opts Options) error {
	splog := ctx.Splog

	root, err := ctx.Git.RepoRoot()
	if err != nil {
		return err
	}
	splog.Debug("Repository root: %s", root)

	changes, err := ctx.Git.ChangedFiles(ctx.Context)
	if err != nil {
		return fmt.Errorf("failed to read working tree status: %w", err)
	}
	if len(changes) == 0 {
		return gcaerrors.ErrNothingToCommit
	}
	printChanges(splog, changes)

	msg, err := chooseMessage(ctx)
	if err != nil {
		return err
	}
	if msg == nil {
		splog.Info("Commit canceled")
		return nil
	}

	message := conventional.Format(*msg, ctx.Now(), opts.Timestamp)
	splog.Newline()
	splog.Info("Generated commit message:")
	splog.Info("🔸 %s", tui.ColorCyan(message))
	splog.Newline()

	ok, err := ctx.Prompter.Confirm("Commit these changes?")
	if err != nil {
		return err
	}
	if !ok {
		splog.Info("Commit canceled")
		return nil
	}

	if err := ctx.Git.StageAll(ctx.Context); err != nil {
		return err
	}
	staged, err := ctx.Git.HasStagedChanges(ctx.Context)
	if err != nil {
		return fmt.Errorf("failed to check staged changes: %w", err)
	}
	if !staged {
		return gcaerrors.ErrNothingToCommit
	}
	if err := ctx.Git.Commit(ctx.Context, message); err != nil {
		return err
	}
	splog.Success("Commit successful!")

	return push(ctx)
}

func printChanges(splog *tui.Splog, changes []git.FileStatus) {
	splog.Info("Changes to be committed:")
	for _, c := range changes {
		path := c.Path
		if c.OrigPath != "" {
			path = c.OrigPath + " -> " + c.Path
		}
		splog.Info("  %s %s", tui.ColorYellow(c.Code()), path)
	}
}

// chooseMessage returns nil when the operator picks Cancel from a menu
func chooseMessage(ctx *runtime.Context) (*conventional.Message, error) {
	method, err := ctx.Prompter.Select("How do you want to write the commit message?", []tui.SelectOption{
		{Label: "Guided commit (pick a type and a template)", Value: methodGuided},
		{Label: "Custom message (type is detected automatically)", Value: methodCustom},
		{Label: "Cancel", Value: optionCancel},
	})
	if err != nil {
		return nil, err
	}

	switch method {
	case methodGuided:
		return guidedMessage(ctx)
	case methodCustom:
		return customMessage(ctx)
	default:
		return nil, nil
	}
}

func guidedMessage(ctx *runtime.Context) (*conventional.Message, error) {
	typeOptions := make([]tui.SelectOption, 0, len(conventional.Types())+1)
	for _, t := range conventional.Types() {
		typeOptions = append(typeOptions, tui.SelectOption{
			Label: fmt.Sprintf("%-9s %s", string(t)+":", tui.ColorDim(t.Summary())),
			Value: string(t),
		})
	}
	typeOptions = append(typeOptions, tui.SelectOption{Label: "Cancel", Value: optionCancel})

	picked, err := ctx.Prompter.Select("Select commit type", typeOptions)
	if err != nil {
		return nil, err
	}
	commitType, ok := conventional.ParseType(picked)
	if !ok {
		return nil, nil
	}

	templates := conventional.Templates(commitType, ctx.Config.ExtraTemplates(commitType))
	templateOptions := make([]tui.SelectOption, 0, len(templates))
	for _, desc := range templates {
		templateOptions = append(templateOptions, tui.SelectOption{Label: desc, Value: desc})
	}

	desc, err := ctx.Prompter.Select(fmt.Sprintf("Select a %s message", commitType), templateOptions)
	if err != nil {
		return nil, err
	}
	return &conventional.Message{Type: commitType, Description: desc}, nil
}

func customMessage(ctx *runtime.Context) (*conventional.Message, error) {
	text, err := ctx.Prompter.Input("Enter your commit message (type will be detected automatically):")
	if err != nil {
		return nil, err
	}
	msg := conventional.Detect(text)
	if msg.Description == "" {
		return nil, gcaerrors.ErrEmptyMessage
	}
	ctx.Splog.Debug("Detected commit type %q", msg.Type)
	return &msg, nil
}

func push(ctx *runtime.Context) error {
	splog := ctx.Splog

	prompt := "Push to remote?"
	target, err := ctx.Git.PushTarget()
	switch {
	case err == nil:
		prompt = fmt.Sprintf("Push %s to %s?", target.Branch, target.Remote)
	case errors.Is(err, git.ErrNoRemote):
		splog.Warn("No remote configured; the push will most likely fail")
	default:
		splog.Debug("Could not resolve push target: %v", err)
	}

	ok, err := ctx.Prompter.Confirm(prompt)
	if err != nil {
		return err
	}
	if !ok {
		splog.Tip("Changes are committed locally. Run `git push` when you are ready.")
		return nil
	}

	if err := ctx.Git.Push(ctx.Context); err != nil {
		return err
	}
	splog.Success("Successfully pushed to remote!")
	return nil
}
