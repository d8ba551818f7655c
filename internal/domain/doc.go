// Package domain defines core data models shared across bolt.
// It contains plain types, protocol constants, error values and
// contracts (interfaces) only.
package domain
