// Package config defines the on-disk configuration surface for the
// dependency-analysis pipeline (§6): framework filter patterns and
// extraction-scoring weights, decoded from YAML via gopkg.in/yaml.v3 and
// validated into the configuration-error taxonomy of §7.
//
// Decoding and validation are deliberately separate steps — Load decodes,
// Validate checks — so callers (the CLI's validate-config subcommand, or a
// future config-reload path) can run validation against a config that was
// constructed in memory rather than read from disk.
package config
