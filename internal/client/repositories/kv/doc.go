// Package kv provides the device-local key-value store the client mirrors
// its session, identity and settings into.
//
// Values are opaque byte slices at the Store level. The helpers in codec.go
// give them the JSON shapes the rest of the app expects: a string value is
// stored as a JSON string, a record as a JSON object. Keys are listed in
// keys.go and are kept verbatim for compatibility with existing installs.
//
// Two implementations are provided: SQLiteStore, persisted in the kv table
// created by the embedded migrations, and MemoryStore, used for ephemeral
// sessions and tests. Get returns (nil, nil) for an absent key on both.
package kv
