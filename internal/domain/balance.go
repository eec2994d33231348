package domain

import "canteen/internal/errors"

// ValidateBalance enforces the quantity balance invariant: the total quantity
// withdrawn from the catalog must equal the total quantity to be delivered.
// Pure check, no side effects.
func ValidateBalance(withdrawalSum, deliverySum int) error {
	if withdrawalSum != deliverySum {
		return errors.NewQuantityMismatchError(withdrawalSum, deliverySum)
	}
	return nil
}
