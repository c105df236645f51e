package farm

import (
	"go.uber.org/zap"

	"github.com/mamadbah2/finca/internal/domain/models"
	"github.com/mamadbah2/finca/internal/repository/memory"
)

func (s *Service) wireAgro() {
	r := s.reg

	s.Lotes = newCollection(s, memory.StoreLotes, r.Lotes, hooks[models.Lote, models.LoteForm]{
		mapForm: func(f models.LoteForm, _ *models.Lote) (models.Lote, error) { return s.mapper.Lote(f) },
		resolve: func(l *models.Lote, existing *models.Lote) error {
			if existing == nil {
				return nil
			}
			for _, c := range r.Crops.Find(func(c models.Crop) bool { return c.LoteID == existing.ID }) {
				if c.Area > l.Area {
					return models.Invariantf("lote %s area %.2f is smaller than crop %q area %.2f", l.Code, l.Area, c.Name, c.Area)
				}
			}
			return nil
		},
		guard: func(l models.Lote) error {
			onLote := func(id string) bool { return id == l.ID }
			if err := referenced(memory.StoreLotes, l.ID, memory.StoreCrops,
				len(r.Crops.Find(func(c models.Crop) bool { return onLote(c.LoteID) }))); err != nil {
				return err
			}
			if err := referenced(memory.StoreLotes, l.ID, memory.StoreAgroActions,
				len(r.AgroActions.Find(func(a models.AgroAction) bool { return onLote(a.LoteID) }))); err != nil {
				return err
			}
			return referenced(memory.StoreLotes, l.ID, memory.StoreHarvests,
				len(r.Harvests.Find(func(h models.Harvest) bool { return onLote(h.LoteID) })))
		},
	})

	s.Crops = newCollection(s, memory.StoreCrops, r.Crops, hooks[models.Crop, models.CropForm]{
		mapForm: func(f models.CropForm, _ *models.Crop) (models.Crop, error) { return s.mapper.Crop(f) },
		resolve: func(c *models.Crop, existing *models.Crop) error {
			lote, ok := r.Lotes.Get(c.LoteID)
			if !ok {
				return missing("loteId", memory.StoreLotes, c.LoteID)
			}
			if c.Area > lote.Area {
				return models.Invariantf("crop area %.2f exceeds lote %s area %.2f", c.Area, lote.Code, lote.Area)
			}
			if existing != nil {
				harvests := r.Harvests.Find(func(h models.Harvest) bool { return h.CropID == existing.ID })
				if len(harvests) > 0 && existing.LoteID != c.LoteID {
					return mismatch("crop %q has harvests on lote %q and cannot move", existing.ID, existing.LoteID)
				}
				if len(harvests) > 0 {
					total := harvestedQuantity(harvests)
					c.ActualYield = &total
				}
			}
			return nil
		},
		guard: func(c models.Crop) error {
			if err := referenced(memory.StoreCrops, c.ID, memory.StoreHarvests,
				len(r.Harvests.Find(func(h models.Harvest) bool { return h.CropID == c.ID }))); err != nil {
				return err
			}
			return referenced(memory.StoreCrops, c.ID, memory.StoreAgroActions,
				len(r.AgroActions.Find(func(a models.AgroAction) bool { return a.CropID != nil && *a.CropID == c.ID })))
		},
	})

	s.AgroActions = newCollection(s, memory.StoreAgroActions, r.AgroActions, hooks[models.AgroAction, models.AgroActionForm]{
		mapForm: func(f models.AgroActionForm, _ *models.AgroAction) (models.AgroAction, error) {
			return s.mapper.AgroAction(f)
		},
		resolve: func(a *models.AgroAction, _ *models.AgroAction) error {
			if !r.Lotes.Exists(a.LoteID) {
				return missing("loteId", memory.StoreLotes, a.LoteID)
			}
			if a.CropID == nil {
				return nil
			}
			crop, ok := r.Crops.Get(*a.CropID)
			if !ok {
				return missing("cropId", memory.StoreCrops, *a.CropID)
			}
			if crop.LoteID != a.LoteID {
				return mismatch("crop %q belongs to lote %q, not %q", crop.ID, crop.LoteID, a.LoteID)
			}
			return nil
		},
	})

	s.Harvests = newCollection(s, memory.StoreHarvests, r.Harvests, hooks[models.Harvest, models.HarvestForm]{
		mapForm: func(f models.HarvestForm, _ *models.Harvest) (models.Harvest, error) { return s.mapper.Harvest(f) },
		resolve: func(h *models.Harvest, _ *models.Harvest) error {
			crop, ok := r.Crops.Get(h.CropID)
			if !ok {
				return missing("cropId", memory.StoreCrops, h.CropID)
			}
			if crop.LoteID != h.LoteID {
				return mismatch("crop %q belongs to lote %q, not %q", crop.ID, crop.LoteID, h.LoteID)
			}
			return nil
		},
		after: func(before, after *models.Harvest) {
			crops := make(map[string]bool, 2)
			if before != nil {
				crops[before.CropID] = true
			}
			if after != nil {
				crops[after.CropID] = true
			}
			for id := range crops {
				s.syncYield(id)
			}
		},
	})
}

// syncYield sets a crop's actual yield to the sum of its harvests. A crop
// left without harvests keeps its last value. Harvest resolve guarantees the
// crop exists, and the crop store has no natural key, so the update cannot fail
// while the mutation lock is held.
func (s *Service) syncYield(cropID string) {
	harvests := s.reg.Harvests.Find(func(h models.Harvest) bool { return h.CropID == cropID })
	if len(harvests) == 0 || !s.reg.Crops.Exists(cropID) {
		return
	}
	total := harvestedQuantity(harvests)
	if _, err := s.reg.Crops.Update(cropID, func(c *models.Crop) error {
		c.ActualYield = &total
		return nil
	}); err != nil {
		s.logger.Error("crop yield sync failed", zap.String("crop", cropID), zap.Error(err))
		return
	}
	s.invalidate(memory.StoreCrops)
}

func harvestedQuantity(harvests []models.Harvest) float64 {
	var total float64
	for _, h := range harvests {
		total += h.Quantity
	}
	return models.Round2(total)
}
