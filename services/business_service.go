package services

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dopagraming/wastewater-records/models"
	"github.com/dopagraming/wastewater-records/pkg/apperr"
)

// BusinessService handles business CRUD and resolves the weak council and
// sector references for every read.
type BusinessService struct {
	db *gorm.DB
}

func NewBusinessService(db *gorm.DB) *BusinessService {
	return &BusinessService{db: db}
}

type BusinessInput struct {
	BusinessName   string `json:"businessName"`
	Phone          string `json:"phone"`
	WorkNumber     string `json:"workNumber"`
	SenderTo       string `json:"senderTo"`
	PayerNumber    string `json:"payerNumber"`
	Email          string `json:"email"`
	FactoryAddress string `json:"factoryAddress"`
	InstitutionID  string `json:"institutionId"`
	SectorID       string `json:"sectorId"`
}

func (s *BusinessService) List() ([]models.BusinessView, error) {
	var businesses []models.Business
	if err := s.db.Preload("Institution").Preload("Sector").
		Order("created_at DESC").Find(&businesses).Error; err != nil {
		return nil, apperr.StoreUnavailable(err)
	}
	views := make([]models.BusinessView, len(businesses))
	for i, b := range businesses {
		views[i] = b.Resolve()
	}
	return views, nil
}

func (s *BusinessService) Get(id string) (*models.BusinessView, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, apperr.InvalidID(id)
	}
	var business models.Business
	if err := s.db.Preload("Institution").Preload("Sector").
		First(&business, "id = ?", uid).Error; err != nil {
		return nil, storeErr(err, "business")
	}
	view := business.Resolve()
	return &view, nil
}

func (s *BusinessService) Create(in BusinessInput) (*models.BusinessView, error) {
	business, err := businessFromInput(&in)
	if err != nil {
		return nil, err
	}
	if err := s.db.Create(business).Error; err != nil {
		return nil, apperr.StoreUnavailable(err)
	}
	// Re-read to resolve references, mirroring the create response shape of
	// every other read.
	return s.Get(business.ID.String())
}

func (s *BusinessService) Update(id string, in BusinessInput) (*models.BusinessView, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, apperr.InvalidID(id)
	}
	var existing models.Business
	if err := s.db.First(&existing, "id = ?", uid).Error; err != nil {
		return nil, storeErr(err, "business")
	}
	business, err := businessFromInput(&in)
	if err != nil {
		return nil, err
	}

	business.ID = existing.ID
	business.CreatedAt = existing.CreatedAt
	if err := s.db.Save(business).Error; err != nil {
		return nil, apperr.StoreUnavailable(err)
	}
	return s.Get(id)
}

func (s *BusinessService) Delete(id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return apperr.InvalidID(id)
	}
	res := s.db.Delete(&models.Business{}, "id = ?", uid)
	if res.Error != nil {
		return apperr.StoreUnavailable(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("business")
	}
	return nil
}

// businessFromInput validates the payload and builds the row to store.
func businessFromInput(in *BusinessInput) (*models.Business, error) {
	in.BusinessName = strings.TrimSpace(in.BusinessName)
	fields := map[string]string{}
	if in.BusinessName == "" {
		fields["businessName"] = "required"
	}

	institutionID, err := parseRef(in.InstitutionID)
	if err != nil {
		fields["institutionId"] = "must be a valid identifier"
	}
	sectorID, err := parseRef(in.SectorID)
	if err != nil {
		fields["sectorId"] = "must be a valid identifier"
	}
	if len(fields) > 0 {
		return nil, apperr.Validation("invalid business payload", fields)
	}

	return &models.Business{
		BusinessName:   in.BusinessName,
		Phone:          strings.TrimSpace(in.Phone),
		WorkNumber:     strings.TrimSpace(in.WorkNumber),
		SenderTo:       strings.TrimSpace(in.SenderTo),
		PayerNumber:    strings.TrimSpace(in.PayerNumber),
		Email:          strings.ToLower(strings.TrimSpace(in.Email)),
		FactoryAddress: strings.TrimSpace(in.FactoryAddress),
		InstitutionID:  institutionID,
		SectorID:       sectorID,
	}, nil
}

// parseRef turns an optional identifier string into a nullable reference.
func parseRef(id string) (*uuid.UUID, error) {
	if strings.TrimSpace(id) == "" {
		return nil, nil
	}
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	return &uid, nil
}
