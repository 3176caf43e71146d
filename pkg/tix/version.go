// Package tix exposes module-level metadata for the Tix backend.
package tix

// Version is the current release version of the tix module.
const Version = "0.1.0"
