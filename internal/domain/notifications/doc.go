// Package notifications turns booking events into client messages.
package notifications
