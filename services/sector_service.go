package services

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dopagraming/wastewater-records/models"
	"github.com/dopagraming/wastewater-records/pkg/apperr"
)

// SectorService handles sector CRUD and the sector-name uniqueness rule.
type SectorService struct {
	db *gorm.DB
}

func NewSectorService(db *gorm.DB) *SectorService {
	return &SectorService{db: db}
}

type SectorInput struct {
	SectorName               string   `json:"sectorName"`
	TollCollectionWastewater []string `json:"tollCollectionWastewater"`
	ChargeFeeBackgroundInfo  []string `json:"chargeFeeBackgroundInfo"`
	Description              string   `json:"description"`
}

func (s *SectorService) List() ([]models.Sector, error) {
	var sectors []models.Sector
	if err := s.db.Order("created_at DESC").Find(&sectors).Error; err != nil {
		return nil, apperr.StoreUnavailable(err)
	}
	return sectors, nil
}

func (s *SectorService) Get(id string) (*models.Sector, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, apperr.InvalidID(id)
	}
	var sector models.Sector
	if err := s.db.First(&sector, "id = ?", uid).Error; err != nil {
		return nil, storeErr(err, "sector")
	}
	return &sector, nil
}

func (s *SectorService) Create(in SectorInput) (*models.Sector, error) {
	if err := s.validate(&in, uuid.Nil); err != nil {
		return nil, err
	}
	sector := models.Sector{
		SectorName:               in.SectorName,
		TollCollectionWastewater: seq(in.TollCollectionWastewater),
		ChargeFeeBackgroundInfo:  seq(in.ChargeFeeBackgroundInfo),
		Description:              in.Description,
	}
	if err := s.db.Create(&sector).Error; err != nil {
		return nil, writeErr(err, "sectorName")
	}
	return &sector, nil
}

func (s *SectorService) Update(id string, in SectorInput) (*models.Sector, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, apperr.InvalidID(id)
	}
	var sector models.Sector
	if err := s.db.First(&sector, "id = ?", uid).Error; err != nil {
		return nil, storeErr(err, "sector")
	}
	if err := s.validate(&in, uid); err != nil {
		return nil, err
	}

	sector.SectorName = in.SectorName
	sector.TollCollectionWastewater = seq(in.TollCollectionWastewater)
	sector.ChargeFeeBackgroundInfo = seq(in.ChargeFeeBackgroundInfo)
	sector.Description = in.Description
	if err := s.db.Save(&sector).Error; err != nil {
		return nil, writeErr(err, "sectorName")
	}
	return &sector, nil
}

func (s *SectorService) Delete(id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return apperr.InvalidID(id)
	}
	res := s.db.Delete(&models.Sector{}, "id = ?", uid)
	if res.Error != nil {
		return apperr.StoreUnavailable(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("sector")
	}
	return nil
}

// validate trims the name, checks presence and checks uniqueness among the
// existing sectors, excluding the sector being updated.
func (s *SectorService) validate(in *SectorInput, exclude uuid.UUID) error {
	in.SectorName = strings.TrimSpace(in.SectorName)
	if in.SectorName == "" {
		return apperr.Validation("sectorName is required", map[string]string{"sectorName": "required"})
	}

	q := s.db.Where("sector_name = ?", in.SectorName)
	if exclude != uuid.Nil {
		q = q.Where("id <> ?", exclude)
	}
	var existing models.Sector
	err := q.First(&existing).Error
	if err == nil {
		return apperr.Validation("a sector with this name already exists", map[string]string{"sectorName": "must be unique"})
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.StoreUnavailable(err)
	}
	return nil
}
