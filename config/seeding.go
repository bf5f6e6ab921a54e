package config

import (
	"log"

	"gorm.io/gorm"

	"github.com/dopagraming/wastewater-records/models"
)

type sectorSeed struct {
	name        string
	toll        []string
	background  []string
	description string
}

// The standard sector catalogue used by the monitoring authority. Seeded once
// into an empty database; operators edit from there.
var sectorCatalogue = []sectorSeed{
	{
		name:       "מוסכים (מכונאות רכב) ותחנות רחיצה בלא מחזור מים",
		toll:       []string{"PH"},
		background: []string{"אין חיוב", "VSS", "TSS 105ºC", "סריקת מתכות כבדות", "שמן מינרלי"},
	},
	{
		name:       "אולמות אירועים, מסעדות, קניונים",
		toll:       []string{"שמנים ושומנים", "כלורידים", "PH"},
		background: []string{"נתרן", "כלורידים", "TSS 105ºC", "נתרן", "COD"},
	},
	{
		name: "משחטות, בתי מטבחיים, בתי נחירה, עיבוד דגים",
		toll: []string{"שמנים ושומנים", "כלורידים", "COD"},
		background: []string{"נתרן", "PH", "TSS 105ºC", "כלורידים", "נתרן",
			"חנקן קיילדל (TKN)", "זרחן כללי", "סולפיד מומס", "מוליכות חשמלית", "BOD"},
	},
	{
		name: "טקסטיל כולל הלבנה או צביעה",
		toll: []string{"כלורידים"},
		background: []string{"כלורידים", "כלל פחמימנים הלוגניים מומסים (DOX)", "סולפאט",
			"PH", "COD", "BOD5", "סריקת מתכות כבדות", "סולפאט", "סולפיד מומס",
			"דטרגנטים אניונים", "TSS 105ºC", "VSS"},
	},
	{
		name:       "טקסטיל בלא הלבנה או צביעה",
		toll:       []string{"כלורידים"},
		background: []string{"כלורידים", "דטרגנטים אניונים", "PH", "TSS 105ºC", "VSS", "סריקת מתכות כבדות", "COD"},
	},
	{
		name: "מפעלי ציפוי מתכות וטיפול פני שטח",
		toll: []string{"סריקת מתכות כבדות"},
		background: []string{"כלורידים", "TSS 105ºC", "סולפאט", "VSS", "שמן מינרלי", "PH",
			"כלורידים", "סולפאט", "סולפיד מומס", "כלל פחמימנים הלוגניים מומסים (DOX)", "ציאנידים", "COD"},
	},
	{
		name: "מכבסות שצריכת המים שלהן גדולה מ-2 מטרים מעוקבים ליום",
		toll: []string{"כלורידים", "נתרן", "בורון", "COD", "סולפיד מומס", "pH", "דטרגנטים אניונים", "TSS 105ºC"},
		background: []string{"כלורידים", "נתרן", "נתרן", "בורון", "בורון", "COD",
			"סולפיד מומס", "PH", "דטרגנטים אניונים", "כלורידים"},
	},
	{
		name:       "תחנות תדלוק",
		toll:       []string{"שמן מינרלי"},
		background: []string{"לא לחייב", "COD", "PH"},
	},
	{
		name: "רפת או חזיריה או לול",
		toll: []string{"נתרן"},
		background: []string{"כלורידים", "בורון", "נתרן", "COD", "PH", "TSS 105ºC",
			"כלורידים", "זרחן כללי", "חנקן קיילדל (TKN)", "חנקן כללי", "כלורידים"},
	},
}

// SeedSectors loads the sector catalogue into an empty database. It is
// skipped entirely once any sector exists, so operator edits survive restarts.
func SeedSectors(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Sector{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, seed := range sectorCatalogue {
		sector := models.Sector{
			SectorName:               seed.name,
			TollCollectionWastewater: seed.toll,
			ChargeFeeBackgroundInfo:  seed.background,
			Description:              seed.description,
		}
		if err := db.Create(&sector).Error; err != nil {
			return err
		}
	}
	log.Printf("Seeded %d sectors", len(sectorCatalogue))
	return nil
}
