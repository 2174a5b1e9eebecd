// Package domain contains shared domain types used across entity sub-packages.
// The date rules live in domain/dates and the faculty record kinds in
// domain/record. This root package holds the sentinel errors and the
// ValidationError type that every layer maps to and from.
package domain
