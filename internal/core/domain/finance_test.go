package domain

import (
	"testing"
	"time"
)

func TestPendingBalance(t *testing.T) {
	cases := []struct {
		name               string
		rent, paid1, paid2 float64
		want               float64
	}{
		{"outstanding", 1000, 400, 0, 600},
		{"paid in full", 1000, 600, 400, 0},
		{"overpaid", 1000, 1200, 0, -200},
		{"nothing paid", 1500, 0, 0, 1500},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := PendingBalance(tc.rent, tc.paid1, tc.paid2); got != tc.want {
				t.Fatalf("PendingBalance(%v, %v, %v) = %v, want %v", tc.rent, tc.paid1, tc.paid2, got, tc.want)
			}
		})
	}
}

func TestRentIncrementDate(t *testing.T) {
	from := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	got, err := RentIncrementDate(from)
	if err != nil {
		t.Fatalf("RentIncrementDate returned error: %v", err)
	}
	want := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("RentIncrementDate = %v, want %v", got, want)
	}
}

func TestRentIncrementDate_LeapDay(t *testing.T) {
	from := time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC)
	got, err := RentIncrementDate(from)
	if err != nil {
		t.Fatalf("RentIncrementDate returned error: %v", err)
	}
	// 2026 has no Feb 29; AddDate normalises to Mar 1.
	want := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("RentIncrementDate = %v, want %v", got, want)
	}
}

func TestRentIncrementDate_MissingDate(t *testing.T) {
	if _, err := RentIncrementDate(time.Time{}); err != ErrNoAdvancePayDate {
		t.Fatalf("expected ErrNoAdvancePayDate, got %v", err)
	}
}

func TestTenantRecomputeDerived(t *testing.T) {
	tenant := &Tenant{
		RentAmount:             1000,
		MonthlyRentPaidAmount1: 1000,
		AdvancePayDate:         time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC),
	}
	tenant.RecomputeDerived()

	if tenant.BalanceAmountPending != 0 {
		t.Fatalf("expected zero balance, got %v", tenant.BalanceAmountPending)
	}
	if tenant.RentIncrementDate == nil {
		t.Fatalf("expected rent increment date to be set")
	}
	if want := time.Date(2027, time.January, 10, 0, 0, 0, 0, time.UTC); !tenant.RentIncrementDate.Equal(want) {
		t.Fatalf("rent increment date = %v, want %v", tenant.RentIncrementDate, want)
	}
}

func TestTenantRecomputeDerived_NoAdvanceDate(t *testing.T) {
	tenant := &Tenant{RentAmount: 500}
	inc := time.Now()
	tenant.RentIncrementDate = &inc

	tenant.RecomputeDerived()

	if tenant.RentIncrementDate != nil {
		t.Fatalf("expected rent increment date to be cleared without an advance pay date")
	}
	if tenant.BalanceAmountPending != 500 {
		t.Fatalf("expected balance 500, got %v", tenant.BalanceAmountPending)
	}
}
