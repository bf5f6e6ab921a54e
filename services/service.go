// Package services implements the entity services: validation, cross-entity
// reference resolution and CRUD over the backing store.
package services

import (
	"errors"
	"strings"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/dopagraming/wastewater-records/pkg/apperr"
)

// storeErr translates a gorm read error into the application taxonomy.
func storeErr(err error, what string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound(what)
	}
	return apperr.StoreUnavailable(err)
}

// writeErr translates a gorm write error. Unique-index violations surface as
// validation conflicts, everything else as store unavailability.
func writeErr(err error, field string) error {
	if strings.Contains(err.Error(), "duplicate key") {
		return apperr.Validation(field+" already exists", map[string]string{field: "must be unique"})
	}
	return apperr.StoreUnavailable(err)
}

// seq normalizes an ordered text sequence for storage: nil becomes an empty
// slice so reads render [] rather than null.
func seq(in []string) datatypes.JSONSlice[string] {
	if in == nil {
		in = []string{}
	}
	return datatypes.NewJSONSlice(in)
}
