package farm

import (
	"github.com/mamadbah2/finca/internal/domain/models"
	"github.com/mamadbah2/finca/internal/repository/memory"
)

func (s *Service) wireFinanzas() {
	r := s.reg

	s.Sales = newCollection(s, memory.StoreSales, r.Sales, hooks[models.SaleRecord, models.SaleForm]{
		mapForm: func(f models.SaleForm, _ *models.SaleRecord) (models.SaleRecord, error) { return s.mapper.Sale(f) },
	})

	s.Purchases = newCollection(s, memory.StorePurchases, r.Purchases, hooks[models.PurchaseRecord, models.PurchaseForm]{
		mapForm: func(f models.PurchaseForm, _ *models.PurchaseRecord) (models.PurchaseRecord, error) {
			return s.mapper.Purchase(f)
		},
	})

	s.Budgets = newCollection(s, memory.StoreBudgets, r.Budgets, hooks[models.Budget, models.BudgetForm]{
		mapForm: func(f models.BudgetForm, _ *models.Budget) (models.Budget, error) { return s.mapper.Budget(f) },
		resolve: func(b *models.Budget, existing *models.Budget) error {
			// one budget per category and day, so every purchase counts against at most one
			overlapping := r.Budgets.Find(func(o models.Budget) bool {
				if existing != nil && o.ID == existing.ID {
					return false
				}
				return o.Category == b.Category && !o.PeriodEnd.Before(b.PeriodStart) && !b.PeriodEnd.Before(o.PeriodStart)
			})
			if len(overlapping) > 0 {
				return models.Invariantf("budget for %s overlaps budget %q", b.Category, overlapping[0].ID)
			}
			return nil
		},
	})
}
