package handler

// Request schemas for the tenant endpoints. Dates travel as "2006-01-02"
// strings (or RFC 3339); unparseable values are rejected, never silently
// defaulted. Numeric required fields are pointers so zero values (ground
// floor, zero advance) survive the required check.

type createTenantRequest struct {
	ShopName    string `json:"shop_name" validate:"required"`
	ShopNumber  string `json:"shop_number" validate:"required"`
	ShopFacing  string `json:"shop_facing" validate:"required"`
	FloorNumber *int   `json:"floor_number" validate:"required"`

	TenantName        string `json:"tenant_name" validate:"required"`
	TenantAddress     string `json:"tenant_address" validate:"required"`
	TenantPhoneNumber string `json:"tenant_phone_number" validate:"required"`
	TenantEmail       string `json:"tenant_email" validate:"omitempty,email"`

	AdvancePay             *float64 `json:"advance_pay" validate:"required,gte=0"`
	AdvancePayDate         string   `json:"advance_pay_date" validate:"required"`
	RentalPaymentDate      *int     `json:"rental_payment_date" validate:"required,min=1,max=31"`
	RentAmount             *float64 `json:"rent_amount" validate:"required,gte=0"`
	MonthlyRentPaidAmount1 float64  `json:"monthly_rent_paid_amount1" validate:"gte=0"`
	MonthlyRentPaidAmount2 float64  `json:"monthly_rent_paid_amount2" validate:"gte=0"`
	MonthlyRentPaidDate1   string   `json:"monthly_rent_paid_date1"`
	MonthlyRentPaidDate2   string   `json:"monthly_rent_paid_date2"`

	TNEBNumber string `json:"tneb_number"`
}

type updateTenantRequest struct {
	ShopName    *string `json:"shop_name"`
	ShopNumber  *string `json:"shop_number"`
	ShopFacing  *string `json:"shop_facing"`
	FloorNumber *int    `json:"floor_number"`

	TenantName        *string `json:"tenant_name"`
	TenantAddress     *string `json:"tenant_address"`
	TenantPhoneNumber *string `json:"tenant_phone_number"`
	TenantEmail       *string `json:"tenant_email" validate:"omitempty,email"`

	AdvancePay             *float64 `json:"advance_pay" validate:"omitempty,gte=0"`
	AdvancePayDate         *string  `json:"advance_pay_date"`
	RentalPaymentDate      *int     `json:"rental_payment_date" validate:"omitempty,min=1,max=31"`
	RentAmount             *float64 `json:"rent_amount" validate:"omitempty,gte=0"`
	MonthlyRentPaidAmount1 *float64 `json:"monthly_rent_paid_amount1" validate:"omitempty,gte=0"`
	MonthlyRentPaidAmount2 *float64 `json:"monthly_rent_paid_amount2" validate:"omitempty,gte=0"`
	MonthlyRentPaidDate1   *string  `json:"monthly_rent_paid_date1"`
	MonthlyRentPaidDate2   *string  `json:"monthly_rent_paid_date2"`

	TNEBNumber *string `json:"tneb_number"`
}
