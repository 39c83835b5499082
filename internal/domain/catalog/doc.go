// Package catalog holds the bookable services, client addresses, client
// profiles and contractors, plus the slot arithmetic used to match
// contractors to a requested appointment.
package catalog
