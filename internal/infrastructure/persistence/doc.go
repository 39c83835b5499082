// Package persistence provides database repository implementations.
// It uses GORM as the ORM layer for the booking platform: promo codes,
// gift cards, the service catalogue, markets, bookings and their contractor
// requests, translations and image metadata. Repositories validate entities
// before writing and log every mutation.
package persistence
