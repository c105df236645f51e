package farm

import (
	"strings"

	"go.uber.org/zap"

	"github.com/mamadbah2/finca/internal/domain/models"
	"github.com/mamadbah2/finca/internal/repository/memory"
)

func (s *Service) wirePecuario() {
	r := s.reg

	s.Livestock = newCollection(s, memory.StoreLivestock, r.Livestock, hooks[models.Livestock, models.LivestockForm]{
		mapForm: func(f models.LivestockForm, _ *models.Livestock) (models.Livestock, error) {
			return s.mapper.Livestock(f)
		},
		resolve: func(a *models.Livestock, existing *models.Livestock) error {
			if a.PotreroID != nil && !r.Potreros.Exists(*a.PotreroID) {
				return missing("potreroId", memory.StorePotreros, *a.PotreroID)
			}
			self := ""
			if existing != nil {
				self = existing.ID
			}
			if err := s.checkParent("motherId", a.MotherID, self, a.Species, models.GenderFemale); err != nil {
				return err
			}
			if err := s.checkParent("fatherId", a.FatherID, self, a.Species, models.GenderMale); err != nil {
				return err
			}
			if existing != nil && (existing.Gender != a.Gender || existing.Species != a.Species) {
				return s.checkParentRole(*existing)
			}
			return nil
		},
		guard: func(a models.Livestock) error {
			if err := referenced(memory.StoreLivestock, a.ID, memory.StoreHealthRecords,
				len(r.HealthRecords.Find(func(h models.HealthRecord) bool { return h.LivestockID == a.ID }))); err != nil {
				return err
			}
			if err := referenced(memory.StoreLivestock, a.ID, memory.StoreReproduction,
				len(r.Reproduction.Find(func(rec models.ReproductionRecord) bool {
					return rec.CowID == a.ID || is(rec.BullID, a.ID) || is(rec.CalfID, a.ID)
				}))); err != nil {
				return err
			}
			return referenced(memory.StoreLivestock, a.ID, memory.StoreLivestock,
				len(r.Livestock.Find(func(o models.Livestock) bool { return is(o.MotherID, a.ID) || is(o.FatherID, a.ID) })))
		},
	})

	s.LivestockGroups = newCollection(s, memory.StoreLivestockGroups, r.LivestockGroups, hooks[models.LivestockGroup, models.LivestockGroupForm]{
		mapForm: func(f models.LivestockGroupForm, _ *models.LivestockGroup) (models.LivestockGroup, error) {
			return s.mapper.LivestockGroup(f)
		},
		resolve: func(g *models.LivestockGroup, existing *models.LivestockGroup) error {
			if existing == nil {
				return nil
			}
			for _, a := range r.GroupHealthActions.Find(func(a models.GroupHealthAction) bool { return is(a.GroupID, existing.ID) }) {
				if a.AffectedCount > g.Count {
					return models.Invariantf("group %q count %d is below health action %q affected count %d", g.Name, g.Count, a.ID, a.AffectedCount)
				}
			}
			return nil
		},
		after: func(_, after *models.LivestockGroup) {
			if after != nil {
				s.syncGroupActions(*after)
			}
		},
		guard: func(g models.LivestockGroup) error {
			return referenced(memory.StoreLivestockGroups, g.ID, memory.StoreGroupHealthActions,
				len(r.GroupHealthActions.Find(func(a models.GroupHealthAction) bool { return is(a.GroupID, g.ID) })))
		},
	})

	s.Potreros = newCollection(s, memory.StorePotreros, r.Potreros, hooks[models.Potrero, models.PotreroForm]{
		mapForm: func(f models.PotreroForm, _ *models.Potrero) (models.Potrero, error) { return s.mapper.Potrero(f) },
		guard: func(p models.Potrero) error {
			return referenced(memory.StorePotreros, p.ID, memory.StoreLivestock,
				len(r.Livestock.Find(func(a models.Livestock) bool { return is(a.PotreroID, p.ID) })))
		},
	})

	s.HealthRecords = newCollection(s, memory.StoreHealthRecords, r.HealthRecords, hooks[models.HealthRecord, models.HealthRecordForm]{
		mapForm: func(f models.HealthRecordForm, _ *models.HealthRecord) (models.HealthRecord, error) {
			return s.mapper.HealthRecord(f)
		},
		resolve: func(h *models.HealthRecord, _ *models.HealthRecord) error {
			if !r.Livestock.Exists(h.LivestockID) {
				return missing("livestockId", memory.StoreLivestock, h.LivestockID)
			}
			return nil
		},
	})

	s.GroupHealthActions = newCollection(s, memory.StoreGroupHealthActions, r.GroupHealthActions, hooks[models.GroupHealthAction, models.GroupHealthActionForm]{
		mapForm: func(f models.GroupHealthActionForm, _ *models.GroupHealthAction) (models.GroupHealthAction, error) {
			return s.mapper.GroupHealthAction(f)
		},
		resolve: func(a *models.GroupHealthAction, _ *models.GroupHealthAction) error {
			if a.GroupID == nil {
				return nil
			}
			g, ok := r.LivestockGroups.Get(*a.GroupID)
			if !ok {
				return missing("groupId", memory.StoreLivestockGroups, *a.GroupID)
			}
			if a.AffectedCount > g.Count {
				return models.Invariantf("affected count %d exceeds group %q size %d", a.AffectedCount, g.Name, g.Count)
			}
			name, species, category := g.Name, g.Species, g.Category
			a.GroupName = &name
			a.Species = &species
			a.Category = &category
			return nil
		},
	})

	s.Reproduction = newCollection(s, memory.StoreReproduction, r.Reproduction, hooks[models.ReproductionRecord, models.ReproductionForm]{
		mapForm: func(f models.ReproductionForm, existing *models.ReproductionRecord) (models.ReproductionRecord, error) {
			// an unknown cow falls back to the bovine gestation and is rejected by resolve
			cow, _ := r.Livestock.Get(strings.TrimSpace(f.CowID))
			return s.mapper.Reproduction(f, cow.Species, existing)
		},
		resolve: func(rec *models.ReproductionRecord, _ *models.ReproductionRecord) error {
			cow, ok := r.Livestock.Get(rec.CowID)
			if !ok {
				return missing("cowId", memory.StoreLivestock, rec.CowID)
			}
			if cow.Gender != models.GenderFemale {
				return mismatch("cowId %q is not a female", rec.CowID)
			}
			if rec.BullID != nil {
				bull, ok := r.Livestock.Get(*rec.BullID)
				if !ok {
					return missing("bullId", memory.StoreLivestock, *rec.BullID)
				}
				if bull.Gender != models.GenderMale || bull.Species != cow.Species {
					return mismatch("bullId %q is not a %s male", bull.ID, cow.Species)
				}
			}
			if rec.CalfID != nil && !r.Livestock.Exists(*rec.CalfID) {
				return missing("calfId", memory.StoreLivestock, *rec.CalfID)
			}
			return nil
		},
	})

	s.MilkProduction = newCollection(s, memory.StoreMilkProduction, r.MilkProduction, hooks[models.MilkProduction, models.MilkProductionForm]{
		mapForm: func(f models.MilkProductionForm, _ *models.MilkProduction) (models.MilkProduction, error) {
			return s.mapper.MilkProduction(f)
		},
	})
}

// checkParent verifies an optional parent reference: it must exist, differ
// from the animal itself, share its species and have the expected gender.
func (s *Service) checkParent(field string, id *string, self string, species models.Species, gender models.Gender) error {
	if id == nil {
		return nil
	}
	if *id == self {
		return models.Invariantf("%s cannot reference the animal itself", field)
	}
	parent, ok := s.reg.Livestock.Get(*id)
	if !ok {
		return missing(field, memory.StoreLivestock, *id)
	}
	if parent.Species != species || parent.Gender != gender {
		return mismatch("%s %q must be a %s %s", field, *id, gender, species)
	}
	return nil
}

// checkParentRole rejects a gender or species change on an animal that other
// records already use as a parent, cow or bull.
func (s *Service) checkParentRole(a models.Livestock) error {
	offspring := s.reg.Livestock.Find(func(o models.Livestock) bool { return is(o.MotherID, a.ID) || is(o.FatherID, a.ID) })
	if len(offspring) > 0 {
		return mismatch("livestock %q is a parent of %d animals; gender and species are fixed", a.ID, len(offspring))
	}
	services := s.reg.Reproduction.Find(func(rec models.ReproductionRecord) bool { return rec.CowID == a.ID || is(rec.BullID, a.ID) })
	if len(services) > 0 {
		return mismatch("livestock %q is in %d reproduction records; gender and species are fixed", a.ID, len(services))
	}
	return nil
}

// syncGroupActions copies the group's name, species and category onto its
// health actions.
func (s *Service) syncGroupActions(g models.LivestockGroup) {
	actions := s.reg.GroupHealthActions.Find(func(a models.GroupHealthAction) bool { return is(a.GroupID, g.ID) })
	if len(actions) == 0 {
		return
	}
	for _, a := range actions {
		name, species, category := g.Name, g.Species, g.Category
		if _, err := s.reg.GroupHealthActions.Update(a.ID, func(cur *models.GroupHealthAction) error {
			cur.GroupName = &name
			cur.Species = &species
			cur.Category = &category
			return nil
		}); err != nil {
			s.logger.Error("group action sync failed", zap.String("action", a.ID), zap.Error(err))
		}
	}
	s.invalidate(memory.StoreGroupHealthActions)
}

func is(ref *string, id string) bool {
	return ref != nil && *ref == id
}
