// Package bookings models appointments between a client and a contractor,
// the contractor requests that confirm them, the access rules on both and
// the events published as they move through their lifecycle.
package bookings
