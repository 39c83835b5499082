// Package payments defines the card payment gateway contract and the quote
// a client sees before authorising a booking payment.
package payments
