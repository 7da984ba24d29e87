package commit

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"gca.dev/gca/internal/config"
	gcaerrors "gca.dev/gca/internal/errors"
	"gca.dev/gca/internal/git"
	"gca.dev/gca/internal/runtime"
	"gca.dev/gca/internal/tui"
)

// fakeGit records the calls the flow makes and returns canned results
type fakeGit struct {
	repoErr    error
	changes    []git.FileStatus
	statusErr  error
	noStaged   bool
	target     git.PushTarget
	targetErr  error
	commitErr  error
	pushErr    error
	calls      []string
	commitMsgs []string
}

func (f *fakeGit) RepoRoot() (string, error) {
	f.calls = append(f.calls, "root")
	if f.repoErr != nil {
		return "", f.repoErr
	}
	return "/repo", nil
}

func (f *fakeGit) PushTarget() (git.PushTarget, error) {
	f.calls = append(f.calls, "target")
	return f.target, f.targetErr
}

func (f *fakeGit) ChangedFiles(_ context.Context) ([]git.FileStatus, error) {
	f.calls = append(f.calls, "status")
	return f.changes, f.statusErr
}

func (f *fakeGit) HasStagedChanges(_ context.Context) (bool, error) {
	f.calls = append(f.calls, "staged")
	return !f.noStaged, nil
}

func (f *fakeGit) StageAll(_ context.Context) error {
	f.calls = append(f.calls, "add")
	return nil
}

func (f *fakeGit) Commit(_ context.Context, message string) error {
	f.calls = append(f.calls, "commit")
	f.commitMsgs = append(f.commitMsgs, message)
	return f.commitErr
}

func (f *fakeGit) Push(_ context.Context) error {
	f.calls = append(f.calls, "push")
	return f.pushErr
}

func (f *fakeGit) count(call string) int {
	n := 0
	for _, c := range f.calls {
		if c == call {
			n++
		}
	}
	return n
}

// scriptedPrompter answers prompts from a fixed script and records the questions
type scriptedPrompter struct {
	t        *testing.T
	answers  []string
	asked    []string
	canceled bool
}

func (p *scriptedPrompter) next(question string) (string, error) {
	p.asked = append(p.asked, question)
	if len(p.answers) == 0 {
		if p.canceled {
			return "", gcaerrors.ErrCanceled
		}
		p.t.Fatalf("unexpected prompt %q", question)
	}
	a := p.answers[0]
	p.answers = p.answers[1:]
	return a, nil
}

func (p *scriptedPrompter) Select(title string, options []tui.SelectOption) (string, error) {
	a, err := p.next(title)
	if err != nil {
		return "", err
	}
	for _, opt := range options {
		if opt.Value == a {
			return a, nil
		}
	}
	return "", fmt.Errorf("answer %q is not an option of %q", a, title)
}

func (p *scriptedPrompter) Input(prompt string) (string, error) {
	return p.next(prompt)
}

func (p *scriptedPrompter) Confirm(prompt string) (bool, error) {
	a, err := p.next(prompt)
	if err != nil {
		return false, err
	}
	return a == "y", nil
}

var fixedNow = time.Date(2026, 3, 14, 9, 26, 0, 0, time.UTC)

type harness struct {
	git      *fakeGit
	prompter *scriptedPrompter
	out      *bytes.Buffer
	ctx      *runtime.Context
}

func newHarness(t *testing.T, answers ...string) *harness {
	t.Helper()
	t.Setenv("DEBUG", "")
	h := &harness{
		git: &fakeGit{
			changes: []git.FileStatus{{Index: ' ', Worktree: 'M', Path: "main.go"}},
			target:  git.PushTarget{Branch: "main", Remote: "origin"},
		},
		prompter: &scriptedPrompter{t: t, answers: answers},
		out:      &bytes.Buffer{},
	}
	h.ctx = runtime.NewContext(context.Background(), h.git, h.prompter, tui.NewSplog(h.out), &config.Config{})
	h.ctx.Now = func() time.Time { return fixedNow }
	return h
}

func (h *harness) run(t *testing.T, timestamp bool) error {
	t.Helper()
	err := Action(h.ctx, Options{Timestamp: timestamp})
	require.Empty(t, h.prompter.answers, "not every scripted answer was used")
	return err
}
