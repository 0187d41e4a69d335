package domain

import (
	"errors"
	"time"
)

// ErrNoAdvancePayDate is returned when a rent-increment projection is asked
// for a lease without a recorded advance payment date.
var ErrNoAdvancePayDate = errors.New("advance pay date not set")

// PendingBalance returns the rent still owed for the month after both
// installments: negative means overpaid, zero paid in full, positive
// outstanding.
func PendingBalance(rentAmount, paid1, paid2 float64) float64 {
	return rentAmount - (paid1 + paid2)
}

// RentIncrementDate projects the next rent revision, exactly two calendar
// years after the advance payment date.
func RentIncrementDate(advancePayDate time.Time) (time.Time, error) {
	if advancePayDate.IsZero() {
		return time.Time{}, ErrNoAdvancePayDate
	}
	return advancePayDate.AddDate(2, 0, 0), nil
}
