package domain

import "time"

// Tenant is one shop tenancy: the unit, the person renting it, and the money
// side of the lease. Ownership is fixed at creation to the administrator who
// registered the record; all reads and writes are scoped to that owner.
type Tenant struct {
	ID     string `json:"id"`
	UserID string `json:"user"`

	// Shop details.
	ShopName    string `json:"shop_name"`
	ShopNumber  string `json:"shop_number"`
	ShopFacing  string `json:"shop_facing"`
	FloorNumber int    `json:"floor_number"`

	// Tenant contact details.
	TenantName        string `json:"tenant_name"`
	TenantAddress     string `json:"tenant_address"`
	TenantPhoneNumber string `json:"tenant_phone_number"`
	TenantEmail       string `json:"tenant_email,omitempty"`

	// Financial details. RentalPaymentDate is the day of the month (1-31)
	// the rent falls due.
	AdvancePay             float64    `json:"advance_pay"`
	AdvancePayDate         time.Time  `json:"advance_pay_date"`
	RentalPaymentDate      int        `json:"rental_payment_date"`
	RentAmount             float64    `json:"rent_amount"`
	MonthlyRentPaidAmount1 float64    `json:"monthly_rent_paid_amount1"`
	MonthlyRentPaidAmount2 float64    `json:"monthly_rent_paid_amount2"`
	MonthlyRentPaidDate1   *time.Time `json:"monthly_rent_paid_date1,omitempty"`
	MonthlyRentPaidDate2   *time.Time `json:"monthly_rent_paid_date2,omitempty"`
	BalanceAmountPending   float64    `json:"balance_amount_pending"`

	// TNEB customer number for the shop's electricity account.
	TNEBNumber        string     `json:"tneb_number,omitempty"`
	RentIncrementDate *time.Time `json:"rent_increment_date,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OwnedBy reports whether the record belongs to the given user.
func (t *Tenant) OwnedBy(userID string) bool {
	return t.UserID == userID
}

// RecomputeDerived refreshes the fields derived from the stored ones: the
// pending balance and the rent-increment projection. Call after any mutation
// of the financial fields.
func (t *Tenant) RecomputeDerived() {
	t.BalanceAmountPending = PendingBalance(t.RentAmount, t.MonthlyRentPaidAmount1, t.MonthlyRentPaidAmount2)

	if inc, err := RentIncrementDate(t.AdvancePayDate); err == nil {
		t.RentIncrementDate = &inc
	} else {
		t.RentIncrementDate = nil
	}
}
