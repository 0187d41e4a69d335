package handler

import (
	"fmt"
	"strings"
	"time"

	"github.com/plazaops/property-system/internal/core/domain"
	"github.com/plazaops/property-system/internal/core/ports"
)

// parseDate accepts a bare date or a full RFC 3339 timestamp.
func parseDate(field, value string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %s is not a valid date", domain.ErrValidation, field)
}

func parseOptionalDate(field, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := parseDate(field, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// --- Request to service input ---

func toCreateTenantInput(req createTenantRequest) (ports.CreateTenantInput, error) {
	advanceDate, err := parseDate("advance_pay_date", req.AdvancePayDate)
	if err != nil {
		return ports.CreateTenantInput{}, err
	}
	paidDate1, err := parseOptionalDate("monthly_rent_paid_date1", req.MonthlyRentPaidDate1)
	if err != nil {
		return ports.CreateTenantInput{}, err
	}
	paidDate2, err := parseOptionalDate("monthly_rent_paid_date2", req.MonthlyRentPaidDate2)
	if err != nil {
		return ports.CreateTenantInput{}, err
	}

	return ports.CreateTenantInput{
		ShopName:               req.ShopName,
		ShopNumber:             req.ShopNumber,
		ShopFacing:             req.ShopFacing,
		FloorNumber:            *req.FloorNumber,
		TenantName:             req.TenantName,
		TenantAddress:          req.TenantAddress,
		TenantPhoneNumber:      req.TenantPhoneNumber,
		TenantEmail:            strings.ToLower(req.TenantEmail),
		AdvancePay:             *req.AdvancePay,
		AdvancePayDate:         advanceDate,
		RentalPaymentDate:      *req.RentalPaymentDate,
		RentAmount:             *req.RentAmount,
		MonthlyRentPaidAmount1: req.MonthlyRentPaidAmount1,
		MonthlyRentPaidAmount2: req.MonthlyRentPaidAmount2,
		MonthlyRentPaidDate1:   paidDate1,
		MonthlyRentPaidDate2:   paidDate2,
		TNEBNumber:             req.TNEBNumber,
	}, nil
}

func toUpdateTenantInput(req updateTenantRequest) (ports.UpdateTenantInput, error) {
	in := ports.UpdateTenantInput{
		ShopName:               req.ShopName,
		ShopNumber:             req.ShopNumber,
		ShopFacing:             req.ShopFacing,
		FloorNumber:            req.FloorNumber,
		TenantName:             req.TenantName,
		TenantAddress:          req.TenantAddress,
		TenantPhoneNumber:      req.TenantPhoneNumber,
		AdvancePay:             req.AdvancePay,
		RentalPaymentDate:      req.RentalPaymentDate,
		RentAmount:             req.RentAmount,
		MonthlyRentPaidAmount1: req.MonthlyRentPaidAmount1,
		MonthlyRentPaidAmount2: req.MonthlyRentPaidAmount2,
		TNEBNumber:             req.TNEBNumber,
	}

	if req.TenantEmail != nil {
		email := strings.ToLower(*req.TenantEmail)
		in.TenantEmail = &email
	}
	if req.AdvancePayDate != nil {
		d, err := parseDate("advance_pay_date", *req.AdvancePayDate)
		if err != nil {
			return ports.UpdateTenantInput{}, err
		}
		in.AdvancePayDate = &d
	}
	if req.MonthlyRentPaidDate1 != nil {
		d, err := parseDate("monthly_rent_paid_date1", *req.MonthlyRentPaidDate1)
		if err != nil {
			return ports.UpdateTenantInput{}, err
		}
		in.MonthlyRentPaidDate1 = &d
	}
	if req.MonthlyRentPaidDate2 != nil {
		d, err := parseDate("monthly_rent_paid_date2", *req.MonthlyRentPaidDate2)
		if err != nil {
			return ports.UpdateTenantInput{}, err
		}
		in.MonthlyRentPaidDate2 = &d
	}

	return in, nil
}
