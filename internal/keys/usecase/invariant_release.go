//go:build !keysdebug

package usecase

const panicOnInvariant = false
