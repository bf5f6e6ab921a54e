package services

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/dopagraming/wastewater-records/pkg/apperr"
)

// newMockDB opens a gorm handle over a sqlmock connection. The default sqlmock
// matcher treats expectations as regular expressions matched anywhere in the
// statement, so expectations below pin only the stable parts of the SQL.
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{DisableAutomaticPing: true})
	require.NoError(t, err)
	return db, mock
}

func sectorColumns() []string {
	return []string{"id", "sector_name", "toll_collection_wastewater",
		"charge_fee_background_info", "description", "created_at", "updated_at"}
}

func TestSectorList(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewSectorService(db)

	rows := sqlmock.NewRows(sectorColumns()).
		AddRow(uuid.NewString(), "Hotels", []byte(`["PH"]`), []byte(`["COD"]`), "", time.Now(), time.Now())
	mock.ExpectQuery(`SELECT \* FROM "sectors"`).WillReturnRows(rows)

	sectors, err := svc.List()
	require.NoError(t, err)
	require.Len(t, sectors, 1)
	assert.Equal(t, "Hotels", sectors[0].SectorName)
	assert.Equal(t, []string{"PH"}, []string(sectors[0].TollCollectionWastewater))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSectorGetInvalidIdentifier(t *testing.T) {
	db, _ := newMockDB(t)
	svc := NewSectorService(db)

	_, err := svc.Get("not-a-uuid")
	assert.True(t, apperr.IsKind(err, apperr.KindInvalidID))
}

func TestSectorGetNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewSectorService(db)

	mock.ExpectQuery(`SELECT \* FROM "sectors"`).
		WillReturnRows(sqlmock.NewRows(sectorColumns()))

	_, err := svc.Get(uuid.NewString())
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestSectorCreateRequiresName(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewSectorService(db)

	// Whitespace-only names trim to empty and never reach the store.
	_, err := svc.Create(SectorInput{SectorName: "   "})
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSectorCreateRejectsDuplicateName(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewSectorService(db)

	existing := sqlmock.NewRows([]string{"id", "sector_name"}).
		AddRow(uuid.NewString(), "Hotels")
	mock.ExpectQuery(`SELECT \* FROM "sectors" WHERE sector_name`).WillReturnRows(existing)

	// Same name with surrounding whitespace must still conflict.
	_, err := svc.Create(SectorInput{SectorName: "  Hotels  "})
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSectorUpdateNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewSectorService(db)

	mock.ExpectQuery(`SELECT \* FROM "sectors"`).
		WillReturnRows(sqlmock.NewRows(sectorColumns()))

	_, err := svc.Update(uuid.NewString(), SectorInput{SectorName: "Hotels"})
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestSectorDeleteMissingIsNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewSectorService(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "sectors"`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := svc.Delete(uuid.NewString())
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSectorDelete(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewSectorService(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "sectors"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	assert.NoError(t, svc.Delete(uuid.NewString()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
