// Package services implements the use cases behind every controller. Each
// method accepts and returns DTOs and reports failures as *apperr.Error.
package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/ordermanager/pkg/apperr"
	"github.com/shashiranjanraj/ordermanager/pkg/collection"
)

// lookupErr turns a missing row into a NotFound for resource/field/value and
// anything else into a store failure.
func lookupErr(err error, resource, field string, value interface{}) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound(resource, field, value)
	}
	return storeErr(err)
}

// storeErr maps constraint violations gorm recognises to 409 and the rest to
// a generic 500. Errors that are already typed pass through.
func storeErr(err error) error {
	if err == nil {
		return nil
	}
	var ae *apperr.Error
	if errors.As(err, &ae) {
		return ae
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperr.Conflict("Resource already exists")
	}
	return apperr.Store(err)
}

// mapped maps a finder result to DTOs.
func mapped[M, D any](rows []M, err error, fn func(M) D) ([]D, error) {
	if err != nil {
		return nil, storeErr(err)
	}
	return collection.Map(rows, fn), nil
}

// mustExist returns NotFound unless exists reported true.
func mustExist(exists bool, err error, resource string, id uint) error {
	if err != nil {
		return storeErr(err)
	}
	if !exists {
		return apperr.NotFound(resource, "id", id)
	}
	return nil
}
