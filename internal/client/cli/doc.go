// Package cli provides the WordTrail command-line client.
//
// It wires configuration, the local store, the backend client and the
// application services into a cobra command tree. Commands can be run one at
// a time or from the interactive shell started with "wordtrail shell".
//
// Command groups:
//   - whoami, login, logout, reset
//   - settings show|set|sync|remote
//   - language list|show|set
//   - lexicon show|set|clear|list
//   - profile show|set|clear|detail
//   - version, shell
//
// Execute is the entry point used by cmd/cli.
package cli
