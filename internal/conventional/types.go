// Package conventional holds the commit types gca knows about, their message
// templates, and the keyword table used to classify free-text messages.
package conventional

import (
	"fmt"
	"strings"
)

// Type is a conventional-commit type label
type Type string

// Known commit types, in menu order
const (
	Feat     Type = "feat"
	Fix      Type = "fix"
	Docs     Type = "docs"
	Refactor Type = "refactor"
	Chore    Type = "chore"
)

// DefaultType is used when a free-text message matches no keyword
const DefaultType = Chore

// Types returns the known commit types in menu order
func Types() []Type {
	return []Type{Feat, Fix, Docs, Refactor, Chore}
}

// ParseType returns the known type with the given name, ignoring case
func ParseType(name string) (Type, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, t := range Types() {
		if string(t) == name {
			return t, true
		}
	}
	return "", false
}

// Summary is the one-line description shown next to the type in menus
func (t Type) Summary() string {
	switch t {
	case Feat:
		return "a new feature"
	case Fix:
		return "a bug fix"
	case Docs:
		return "documentation only"
	case Refactor:
		return "restructuring without behaviour change"
	case Chore:
		return "maintenance, tooling, dependencies"
	}
	return ""
}

var templates = map[Type][]string{
	Feat:     {"add new feature", "implement module", "create component", "integrate API"},
	Fix:      {"fix bug", "resolve performance issue", "adjust validation", "repair critical error"},
	Docs:     {"update documentation", "add examples", "fix typo", "improve explanation"},
	Refactor: {"improve code structure", "optimize function", "remove duplicate code", "simplify logic"},
	Chore:    {"update dependencies", "configure environment", "adjust settings", "clean up old code"},
}

// Templates returns the built-in descriptions for t followed by extra, skipping blanks and duplicates
func Templates(t Type, extra []string) []string {
	out := make([]string, 0, len(templates[t])+len(extra))
	seen := map[string]bool{}
	for _, d := range append(append([]string{}, templates[t]...), extra...) {
		d = strings.TrimSpace(d)
		if d == "" || seen[d] {
			continue
		}
		seen[d] = true
		out = append(out, d)
	}
	return out
}

// Message is a conventional commit subject
type Message struct {
	Type        Type
	Scope       string
	Breaking    bool
	Description string
}

// String renders the subject as "type(scope)!: description"
func (m Message) String() string {
	prefix := string(m.Type)
	if m.Scope != "" {
		prefix += "(" + m.Scope + ")"
	}
	if m.Breaking {
		prefix += "!"
	}
	return fmt.Sprintf("%s: %s", prefix, m.Description)
}
