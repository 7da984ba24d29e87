// Package config manages gca configuration.
//
// It handles:
//   - The optional user config file (YAML): timestamp toggle, log file, extra templates
//   - Environment overrides (GCA_CONFIG, GCA_LOG_FILE, GCA_NON_INTERACTIVE)
package config
