// Package msp owns the MultiWii Serial Protocol wire contract.
//
// Ownership boundary:
// - frame model and wire constants for both protocol generations
// - stream parser state machine (byte ingest, checksum validation, resync)
// - frame construction for transmission
//
// Semantic payload decoding lives in registry; the transport owning the
// serial link is an external collaborator and is never touched here.
package msp
