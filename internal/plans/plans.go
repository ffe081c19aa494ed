// Package plans is the static investment plan catalog. Plans are defined at
// compile time and never mutated, so the catalog needs no storage.
package plans

import (
	"github.com/shopspring/decimal"

	"github.com/primevest/investledger/internal/domain"
	"github.com/primevest/investledger/pkg/errs"
)

type Catalog struct {
	plans []domain.Plan
}

func New() *Catalog {
	return &Catalog{plans: defaultPlans()}
}

// Get returns the plan with the given name or errs.ErrPlanNotFound.
func (c *Catalog) Get(name string) (*domain.Plan, error) {
	for i := range c.plans {
		if c.plans[i].Name == name {
			plan := c.plans[i]
			return &plan, nil
		}
	}
	return nil, errs.ErrPlanNotFound
}

// List returns all plans in catalog order.
func (c *Catalog) List() []domain.Plan {
	out := make([]domain.Plan, len(c.plans))
	copy(out, c.plans)
	return out
}

func defaultPlans() []domain.Plan {
	// All plans pay 14.9% of principal over a 7 day term.
	rate := decimal.NewFromFloat(0.149)
	plan := func(name string, min, max int64) domain.Plan {
		return domain.Plan{
			Name:         name,
			MinDeposit:   decimal.NewFromInt(min),
			MaxDeposit:   decimal.NewFromInt(max),
			ReturnRate:   rate,
			DurationDays: 7,
		}
	}
	return []domain.Plan{
		plan("Basic", 1000, 1999),
		plan("Deluxe", 2000, 4999),
		plan("Enterprise", 5000, 9999),
		plan("Gold", 10000, 14999),
		plan("Premium", 15000, 19999),
		plan("Platinum", 20000, 29999),
		plan("VIP", 30000, 49999),
		plan("Silver Platinum", 50000, 99999),
		plan("Gold Platinum", 100000, 1000000),
	}
}
