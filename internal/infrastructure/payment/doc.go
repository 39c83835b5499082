// Package payment implements the payment gateway on Stripe. Every intent is
// created with manual capture so the card is only charged once a contractor
// accepts the booking.
package payment
