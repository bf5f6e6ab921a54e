package config

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"

	"github.com/dopagraming/wastewater-records/models"
)

func Migrations(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, []*gormigrate.Migration{
		{
			ID: "20250812_create_tables",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&models.User{}, &models.Sector{},
					&models.CouncilOrCompany{}, &models.TestedComponentSet{}, &models.Business{})
			},
		},
		{
			// Sparse unique constraint: rows with an empty name never collide.
			ID: "20250812_sector_name_sparse_unique",
			Migrate: func(tx *gorm.DB) error {
				return tx.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_sectors_sector_name
					ON sectors (sector_name) WHERE sector_name <> ''`).Error
			},
		},
	})
	return m.Migrate()
}
