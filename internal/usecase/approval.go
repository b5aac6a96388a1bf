package usecase

import (
	"fmt"

	"corfumania-backoffice/internal/data/entity"
)

// priceTolerance absorbs floating-point rounding when comparing a submitted
// price against the computed list price.
const priceTolerance = 0.01

// evaluateBookingPrice applies the approval gate for excursion bookings.
// Admins book at any price. Other users cannot exceed the list price;
// booking below it is accepted but left pending with the list price stored
// for later admin reconciliation.
func evaluateBookingPrice(adults, children int, priceAdult, priceChild, submitted float64, isAdmin bool) (entity.ApprovalStatus, *float64, error) {
	if isAdmin {
		return entity.ApprovalApproved, nil, nil
	}

	calculated := float64(adults)*priceAdult + float64(children)*priceChild

	if submitted > calculated+priceTolerance {
		return "", nil, fmt.Errorf("price %.2f exceeds the list price %.2f", submitted, calculated)
	}

	if submitted < calculated-priceTolerance {
		return entity.ApprovalPending, &calculated, nil
	}

	return entity.ApprovalApproved, nil, nil
}
