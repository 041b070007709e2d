//go:build keysdebug

package usecase

// Builds tagged keysdebug turn invariant violations into panics.
const panicOnInvariant = true
