package services

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/dopagraming/wastewater-records/models"
	"github.com/dopagraming/wastewater-records/pkg/apperr"
)

// ComponentService handles tested-component-set CRUD. The sector name here is
// a plain label with no uniqueness rule and no link to the sectors table.
type ComponentService struct {
	db *gorm.DB
}

func NewComponentService(db *gorm.DB) *ComponentService {
	return &ComponentService{db: db}
}

type ComponentSetInput struct {
	SectorName string                   `json:"sectorName"`
	Components []models.TestedComponent `json:"components"`
}

func (s *ComponentService) List() ([]models.TestedComponentSet, error) {
	var sets []models.TestedComponentSet
	if err := s.db.Order("created_at DESC").Find(&sets).Error; err != nil {
		return nil, apperr.StoreUnavailable(err)
	}
	return sets, nil
}

func (s *ComponentService) Get(id string) (*models.TestedComponentSet, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, apperr.InvalidID(id)
	}
	var set models.TestedComponentSet
	if err := s.db.First(&set, "id = ?", uid).Error; err != nil {
		return nil, storeErr(err, "tested component set")
	}
	return &set, nil
}

func (s *ComponentService) Create(in ComponentSetInput) (*models.TestedComponentSet, error) {
	if err := validateComponentSet(&in); err != nil {
		return nil, err
	}
	set := models.TestedComponentSet{
		SectorName: in.SectorName,
		Components: componentSeq(in.Components),
	}
	if err := s.db.Create(&set).Error; err != nil {
		return nil, apperr.StoreUnavailable(err)
	}
	return &set, nil
}

func (s *ComponentService) Update(id string, in ComponentSetInput) (*models.TestedComponentSet, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, apperr.InvalidID(id)
	}
	var set models.TestedComponentSet
	if err := s.db.First(&set, "id = ?", uid).Error; err != nil {
		return nil, storeErr(err, "tested component set")
	}
	if err := validateComponentSet(&in); err != nil {
		return nil, err
	}

	set.SectorName = in.SectorName
	set.Components = componentSeq(in.Components)
	if err := s.db.Save(&set).Error; err != nil {
		return nil, apperr.StoreUnavailable(err)
	}
	return &set, nil
}

func (s *ComponentService) Delete(id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return apperr.InvalidID(id)
	}
	res := s.db.Delete(&models.TestedComponentSet{}, "id = ?", uid)
	if res.Error != nil {
		return apperr.StoreUnavailable(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("tested component set")
	}
	return nil
}

func validateComponentSet(in *ComponentSetInput) error {
	in.SectorName = strings.TrimSpace(in.SectorName)
	if in.SectorName == "" {
		return apperr.Validation("sectorName is required", map[string]string{"sectorName": "required"})
	}
	return nil
}

func componentSeq(in []models.TestedComponent) datatypes.JSONSlice[models.TestedComponent] {
	if in == nil {
		in = []models.TestedComponent{}
	}
	return datatypes.NewJSONSlice(in)
}
