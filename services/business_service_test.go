package services

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dopagraming/wastewater-records/models"
	"github.com/dopagraming/wastewater-records/pkg/apperr"
)

func TestBusinessFromInputValidation(t *testing.T) {
	tests := []struct {
		name      string
		in        BusinessInput
		wantField string
	}{
		{"missing name", BusinessInput{}, "businessName"},
		{"whitespace name", BusinessInput{BusinessName: "  "}, "businessName"},
		{"bad institution reference", BusinessInput{BusinessName: "Grand Hotel", InstitutionID: "xyz"}, "institutionId"},
		{"bad sector reference", BusinessInput{BusinessName: "Grand Hotel", SectorID: "xyz"}, "sectorId"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := businessFromInput(&tt.in)
			require.Error(t, err)
			assert.True(t, apperr.IsKind(err, apperr.KindValidation))
			e := err.(*apperr.Error)
			assert.Contains(t, e.Fields, tt.wantField)
		})
	}
}

func TestBusinessFromInputNormalizes(t *testing.T) {
	councilID := uuid.NewString()
	b, err := businessFromInput(&BusinessInput{
		BusinessName:  "  Grand Hotel ",
		Email:         " Info@Hotel.Example ",
		InstitutionID: councilID,
		SectorID:      "",
	})
	require.NoError(t, err)
	assert.Equal(t, "Grand Hotel", b.BusinessName)
	assert.Equal(t, "info@hotel.example", b.Email)
	require.NotNil(t, b.InstitutionID)
	assert.Equal(t, councilID, b.InstitutionID.String())
	assert.Nil(t, b.SectorID, "empty reference stays absent")
}

func TestBusinessResolveJoinsReferences(t *testing.T) {
	council := &models.CouncilOrCompany{ID: uuid.New(), Name: "Northern Council", Type: models.CouncilTypeCouncil}
	sector := &models.Sector{ID: uuid.New(), SectorName: "Hotels"}
	b := models.Business{
		ID:           uuid.New(),
		BusinessName: "Grand Hotel",
		Institution:  council,
		Sector:       sector,
	}

	view := b.Resolve()
	require.NotNil(t, view.InstitutionID)
	assert.Equal(t, "Northern Council", view.InstitutionID.Name)
	assert.Equal(t, "council", view.InstitutionID.Type)
	require.NotNil(t, view.SectorID)
	assert.Equal(t, "Hotels", view.SectorID.SectorName)
}

func TestBusinessResolveDanglingReference(t *testing.T) {
	// A deleted sector leaves the reference dangling; reads must render an
	// absent summary, never fail.
	b := models.Business{ID: uuid.New(), BusinessName: "Grand Hotel"}

	view := b.Resolve()
	assert.Nil(t, view.InstitutionID)
	assert.Nil(t, view.SectorID)

	data, err := json.Marshal(view)
	require.NoError(t, err)
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Nil(t, decoded["institutionId"])
	assert.Nil(t, decoded["sectorId"])
}
