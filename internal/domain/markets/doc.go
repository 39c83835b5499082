// Package markets models the geographic markets the platform operates in
// and the helpers that infer a market from a client address.
package markets
