package services

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dopagraming/wastewater-records/models"
	"github.com/dopagraming/wastewater-records/pkg/apperr"
)

// CouncilService handles council/corporation CRUD. File storage happens at the
// boundary; the service only records the generated filenames.
type CouncilService struct {
	db *gorm.DB
}

func NewCouncilService(db *gorm.DB) *CouncilService {
	return &CouncilService{db: db}
}

// CouncilInput carries the multipart form fields. Mts is always set by the
// caller (empty when the field was absent); Files maps form field names to
// stored filenames for freshly uploaded documents only.
type CouncilInput struct {
	Type              string
	Name              string
	Signature         string
	Copies            string
	YearsOfMonitoring string
	LabName           string
	Mts               []string
	Files             map[string]string
}

func (s *CouncilService) List() ([]models.CouncilOrCompany, error) {
	var councils []models.CouncilOrCompany
	if err := s.db.Order("created_at DESC").Find(&councils).Error; err != nil {
		return nil, apperr.StoreUnavailable(err)
	}
	return councils, nil
}

func (s *CouncilService) Get(id string) (*models.CouncilOrCompany, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, apperr.InvalidID(id)
	}
	var council models.CouncilOrCompany
	if err := s.db.First(&council, "id = ?", uid).Error; err != nil {
		return nil, storeErr(err, "council/company")
	}
	return &council, nil
}

func (s *CouncilService) Create(in CouncilInput) (*models.CouncilOrCompany, error) {
	if err := validateCouncil(&in); err != nil {
		return nil, err
	}
	council := models.CouncilOrCompany{
		Type:              in.Type,
		Name:              in.Name,
		Signature:         in.Signature,
		Copies:            in.Copies,
		YearsOfMonitoring: in.YearsOfMonitoring,
		LabName:           in.LabName,
		Mts:               seq(in.Mts),
	}
	for field, filename := range in.Files {
		council.SetFile(field, filename)
	}
	if err := s.db.Create(&council).Error; err != nil {
		return nil, apperr.StoreUnavailable(err)
	}
	return &council, nil
}

func (s *CouncilService) Update(id string, in CouncilInput) (*models.CouncilOrCompany, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, apperr.InvalidID(id)
	}
	var council models.CouncilOrCompany
	if err := s.db.First(&council, "id = ?", uid).Error; err != nil {
		return nil, storeErr(err, "council/company")
	}
	if err := validateCouncil(&in); err != nil {
		return nil, err
	}

	council.Type = in.Type
	council.Name = in.Name
	council.Signature = in.Signature
	council.Copies = in.Copies
	council.YearsOfMonitoring = in.YearsOfMonitoring
	council.LabName = in.LabName
	// Replace, never merge: an omitted mts field empties the stored sequence.
	council.Mts = seq(in.Mts)
	// A new upload supersedes the prior filename; the old file stays on disk.
	for field, filename := range in.Files {
		council.SetFile(field, filename)
	}
	if err := s.db.Save(&council).Error; err != nil {
		return nil, apperr.StoreUnavailable(err)
	}
	return &council, nil
}

func (s *CouncilService) Delete(id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return apperr.InvalidID(id)
	}
	res := s.db.Delete(&models.CouncilOrCompany{}, "id = ?", uid)
	if res.Error != nil {
		return apperr.StoreUnavailable(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("council/company")
	}
	return nil
}

func validateCouncil(in *CouncilInput) error {
	in.Name = strings.TrimSpace(in.Name)
	fields := map[string]string{}
	if in.Name == "" {
		fields["name"] = "required"
	}
	switch in.Type {
	case models.CouncilTypeCorporation, models.CouncilTypeCouncil:
	case "":
		fields["type"] = "required"
	default:
		fields["type"] = "must be corporation or council"
	}
	if len(fields) > 0 {
		return apperr.Validation("invalid council/company payload", fields)
	}
	return nil
}
