// Package promos models promo codes, their usage and the discount rules
// applied when a client redeems one.
//
// Amounts are integer cents. Percentage discounts store the percentage
// (1..100) in DiscountValue; fixed discounts store cents.
package promos
