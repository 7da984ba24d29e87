package conventional

import (
	"regexp"
	"strings"
	"unicode"
)

// Rule maps a set of words to a commit type
type Rule struct {
	Type  Type
	Words []string
}

// rules are checked in order; the first rule with a matching word wins.
// "fix" comes first so "fix typo" is a fix and not docs.
var rules = []Rule{
	{Type: Fix, Words: []string{
		"fix", "fixes", "fixed", "fixing", "bug", "bugs", "bugfix", "hotfix",
		"resolve", "resolves", "resolved", "repair", "repairs", "repaired", "patch", "patched",
	}},
	{Type: Docs, Words: []string{
		"doc", "docs", "documentation", "document", "documented",
		"readme", "typo", "typos", "comment", "comments",
	}},
	{Type: Refactor, Words: []string{
		"refactor", "refactors", "refactored", "refactoring", "restructure", "restructured",
		"simplify", "simplified", "rename", "renamed", "optimize", "optimized",
	}},
	{Type: Feat, Words: []string{
		"add", "adds", "added", "adding", "implement", "implements", "implemented",
		"create", "creates", "created", "introduce", "introduces", "introduced",
		"integrate", "integrates", "integrated", "new", "support", "supports",
	}},
}

// Rules returns a copy of the keyword table in evaluation order
func Rules() []Rule {
	out := make([]Rule, len(rules))
	for i, r := range rules {
		out[i] = Rule{Type: r.Type, Words: append([]string(nil), r.Words...)}
	}
	return out
}

var explicitPrefix = regexp.MustCompile(`^([A-Za-z]+)(?:\(([^()]*)\))?(!)?:\s*(.*)$`)

// Detect classifies a free-text commit message.
//
// A leading "type:", "type(scope):" or "type!:" with a known type is kept and
// stripped from the description. Otherwise the words of the message are
// matched against the keyword table and DefaultType is used when nothing matches.
func Detect(text string) Message {
	text = strings.TrimSpace(text)

	if m := explicitPrefix.FindStringSubmatch(text); m != nil {
		if t, ok := ParseType(m[1]); ok {
			return Message{
				Type:        t,
				Scope:       strings.TrimSpace(m[2]),
				Breaking:    m[3] != "",
				Description: strings.TrimSpace(m[4]),
			}
		}
	}

	return Message{Type: classify(text), Description: text}
}

func classify(text string) Type {
	words := map[string]bool{}
	for _, w := range strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}) {
		words[w] = true
	}

	for _, r := range rules {
		for _, w := range r.Words {
			if words[w] {
				return r.Type
			}
		}
	}
	return DefaultType
}
