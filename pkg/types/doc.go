// Package types defines the entity types, the ticket patch type, the store
// configuration, and standard error values for the Tix backend.
package types
