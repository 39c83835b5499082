// Package giftcards defines gift cards, their debit transactions and the
// rules deciding whether a card can pay for part of a booking.
package giftcards
