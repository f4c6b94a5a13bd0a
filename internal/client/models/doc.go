// Package models defines the client-side records mirrored in the local store
// and exchanged with the WordTrail backend.
package models
