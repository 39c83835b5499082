package promos

import (
	"fmt"
	"strconv"
	"strings"
)

// CalculateDiscount returns the discount in cents for an order of originalAmount.
// Percentage discounts round down and honour maxDiscount when set. The
// discount never exceeds the original amount and is never negative.
func CalculateDiscount(discountType DiscountType, discountValue, originalAmount int64, maxDiscount *int64) int64 {
	var discount int64

	if discountType == DiscountPercentage {
		discount = originalAmount * discountValue / 100
		if maxDiscount != nil && *maxDiscount < discount {
			discount = *maxDiscount
		}
	} else {
		discount = discountValue
	}

	if discount > originalAmount {
		discount = originalAmount
	}
	if discount < 0 {
		return 0
	}
	return discount
}

// CalculateFinalAmount subtracts discount from originalAmount, clamped at zero
func CalculateFinalAmount(originalAmount, discount int64) int64 {
	if originalAmount-discount < 0 {
		return 0
	}
	return originalAmount - discount
}

// CalculateROI returns (revenue - cost) / cost as a percentage, or 0 without cost
func CalculateROI(totalRevenue, totalPlatformCost int64) float64 {
	if totalPlatformCost == 0 {
		return 0
	}
	return float64(totalRevenue-totalPlatformCost) / float64(totalPlatformCost) * 100
}

// DiscountSummary is a display friendly breakdown of a discount
type DiscountSummary struct {
	OriginalAmount    int64
	DiscountAmount    int64
	FinalAmount       int64
	SavingsPercentage float64
	FormattedOriginal string
	FormattedDiscount string
	FormattedFinal    string
}

// CalculateDiscountSummary applies a discount to originalAmount and formats the result
func CalculateDiscountSummary(originalAmount int64, discountType DiscountType, discountValue int64, maxDiscount *int64) DiscountSummary {
	discount := CalculateDiscount(discountType, discountValue, originalAmount, maxDiscount)
	final := CalculateFinalAmount(originalAmount, discount)

	var savings float64
	if originalAmount > 0 {
		savings = float64(discount) / float64(originalAmount) * 100
	}

	return DiscountSummary{
		OriginalAmount:    originalAmount,
		DiscountAmount:    discount,
		FinalAmount:       final,
		SavingsPercentage: savings,
		FormattedOriginal: FormatAmount(originalAmount),
		FormattedDiscount: FormatAmount(discount),
		FormattedFinal:    FormatAmount(final),
	}
}

// FormatDiscount renders a discount as "20%" or "10€"
func FormatDiscount(discountType DiscountType, discountValue int64) string {
	if discountType == DiscountPercentage {
		return fmt.Sprintf("%d%%", discountValue)
	}
	return fmt.Sprintf("%.0f€", float64(discountValue)/100)
}

// FormatAmount renders cents the way fr-FR formats euros, e.g. "1 234,50 €"
func FormatAmount(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}

	euros := strconv.FormatInt(cents/100, 10)
	var grouped strings.Builder
	for i, r := range euros {
		if i > 0 && (len(euros)-i)%3 == 0 {
			grouped.WriteRune(' ')
		}
		grouped.WriteRune(r)
	}

	return fmt.Sprintf("%s%s,%02d €", sign, grouped.String(), cents%100)
}
