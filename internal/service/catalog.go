package service

import (
	"context"
	"errors"

	"meal-planner-backend/internal/cache"
	apperrors "meal-planner-backend/internal/errors"
	"meal-planner-backend/internal/logger"
	"meal-planner-backend/internal/repository"

	"gorm.io/gorm"
)

// invalidateViews drops the cached read views after a mutation. A cache failure only costs
// staleness until the TTL expires, so it is logged and swallowed.
func invalidateViews(c cache.Cache) {
	if err := c.Invalidate(context.Background()); err != nil {
		logger.New().WithError(err).Warn("Failed to invalidate cached views")
	}
}

func orNoop(c cache.Cache) cache.Cache {
	if c == nil {
		return cache.Noop{}
	}
	return c
}

// notFound maps gorm.ErrRecordNotFound to the entity's NotFoundError
func notFound(err error, sentinel *apperrors.NotFoundError) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return nil
}

// duplicateFromStore translates a unique index violation raised by the store into the
// entity's DuplicateNameError. Concurrent adds may both pass the pre-check.
func duplicateFromStore(err error, index string, sentinel *apperrors.DuplicateNameError, name string) error {
	if repository.IsUniqueViolation(err, index) {
		return sentinel.WithName(name)
	}
	return nil
}

func logMutation(entity, action string, id uint) {
	logger.New().WithFields(map[string]interface{}{
		"entity": entity,
		"id":     id,
	}).Infof("%s %s", entity, action)
}

func logStoreFailure(entity, action string, err error) {
	logger.New().WithError(err).WithField("entity", entity).Errorf("Failed to %s %s", action, entity)
}
