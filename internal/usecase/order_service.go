package usecase

import (
	"fmt"
	"math"
	"time"

	"github.com/lensmatch/backend/internal/domain"
)

// supplyCutoffDays is the regulatory/business cutoff for the allowed supply
// duration: a prescription with at least this many days left may be filled
// for twelve months, anything less is capped at six. Inclusive at the
// boundary; there is no sliding scale.
const supplyCutoffDays = 150

const expiryDateLayout = "2006-01-02"

// OrderService derives SKU quantity and price from a prescription expiry.
// The chain is stateless and idempotent; the only time-varying input is the
// current date, so results legitimately change day over day as a prescription
// approaches expiry.
type OrderService struct {
	config domain.ProductConfigRepository
	now    func() time.Time
}

// NewOrderService creates an order derivation service backed by the given
// SKU configuration tables
func NewOrderService(config domain.ProductConfigRepository) *OrderService {
	return &OrderService{config: config, now: time.Now}
}

// DaysUntilExpiry returns the whole days between now and the expiry date,
// floor rounded. May be negative for an already-expired prescription.
func (s *OrderService) DaysUntilExpiry(expiry string) (int, error) {
	t, err := time.Parse(expiryDateLayout, expiry)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidExpiryDate, expiry)
	}
	return int(math.Floor(t.Sub(s.now()).Hours() / 24)), nil
}

// AllowedSupplyMonths maps days-until-expiry to the permitted supply duration
func AllowedSupplyMonths(daysUntilExpiry int) int {
	if daysUntilExpiry >= supplyCutoffDays {
		return 12
	}
	return 6
}

// QuantityFor computes the selectable box quantities for a SKU under the
// given prescription expiry. Never cached: days-until-expiry is a moving
// target.
func (s *OrderService) QuantityFor(sku, expiry string) (*domain.QuantityConfig, error) {
	days, err := s.DaysUntilExpiry(expiry)
	if err != nil {
		return nil, err
	}
	if days < 0 {
		return nil, fmt.Errorf("%w: expired %s", domain.ErrPrescriptionExpired, expiry)
	}
	return s.quantityFor(sku, AllowedSupplyMonths(days))
}

func (s *OrderService) quantityFor(sku string, supplyMonths int) (*domain.QuantityConfig, error) {
	monthsPerBox, ok := s.config.DurationMonths(sku)
	if !ok {
		return nil, fmt.Errorf("%w: no box duration configured for %q", domain.ErrUnconfiguredSKU, sku)
	}

	defaultBoxes := (supplyMonths + monthsPerBox - 1) / monthsPerBox

	options := make([]int, defaultBoxes+1)
	for i := range options {
		options[i] = i
	}

	return &domain.QuantityConfig{
		SKU:          sku,
		MonthsPerBox: monthsPerBox,
		Label:        fmt.Sprintf("%d-month supply", supplyMonths),
		DefaultBoxes: defaultBoxes,
		MaxBoxes:     defaultBoxes,
		Options:      options,
	}, nil
}

// Quote runs the full derivation chain: expiry → allowed supply → box
// duration → box count → price. requestedBoxes, when positive, is clamped so
// a user can never order more than the prescription currently allows. An
// empty sku selects the lens's default SKU.
func (s *OrderService) Quote(lensID, sku, expiry string, requestedBoxes int) (*domain.OrderQuote, error) {
	if sku == "" {
		defaultSKU, ok := s.config.DefaultSKU(lensID)
		if !ok {
			return nil, fmt.Errorf("%w: %q", domain.ErrNoDefaultSKU, lensID)
		}
		sku = defaultSKU
	}

	days, err := s.DaysUntilExpiry(expiry)
	if err != nil {
		return nil, err
	}
	if days < 0 {
		return nil, fmt.Errorf("%w: expired %s", domain.ErrPrescriptionExpired, expiry)
	}

	supplyMonths := AllowedSupplyMonths(days)
	quantity, err := s.quantityFor(sku, supplyMonths)
	if err != nil {
		return nil, err
	}

	boxes := quantity.DefaultBoxes
	if requestedBoxes > 0 && requestedBoxes < boxes {
		boxes = requestedBoxes
	}

	unitPrice, ok := s.config.PriceCents(sku)
	if !ok {
		return nil, fmt.Errorf("%w: no price configured for %q", domain.ErrUnconfiguredSKU, sku)
	}

	return &domain.OrderQuote{
		LensID:         lensID,
		SKU:            sku,
		SupplyMonths:   supplyMonths,
		Boxes:          boxes,
		UnitPriceCents: unitPrice,
		TotalCents:     unitPrice * int64(boxes),
		Quantity:       *quantity,
	}, nil
}
