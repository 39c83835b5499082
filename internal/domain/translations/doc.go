// Package translations stores per-language values of translatable entity
// fields and defines the machine translation contract.
package translations
