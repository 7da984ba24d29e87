// Package runtime provides the execution context for gca commands.
//
// It bundles the shared collaborators an action needs: the git runner,
// the prompter, the logger and the loaded configuration.
package runtime
