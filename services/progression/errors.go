package progression

import "fmt"

// InvalidAmountError reports an XP award with a non-positive amount.
type InvalidAmountError struct {
	Amount int
}

func (e InvalidAmountError) Error() string {
	return fmt.Sprintf("invalid XP amount %d: awards must be positive", e.Amount)
}

// ContentionError reports that a redemption could not complete because the
// ledger balance kept changing underneath it.
type ContentionError struct {
	EmployeeID string
	Attempts   int
}

func (e ContentionError) Error() string {
	return fmt.Sprintf("redemption for %s abandoned after %d conflicting attempts", e.EmployeeID, e.Attempts)
}
