// Package purchaserepo provides data transfer objects and mapping functions for purchase persistence.
// This package implements the repository pattern for the purchase domain aggregate, handling
// the conversion between domain entities and database representations.
package purchaserepo

import (
	"time"

	"github.com/NotMikev/awesome-pizza-manager/internal/core/domain/model/kernel"
	"github.com/NotMikev/awesome-pizza-manager/internal/core/domain/model/purchase"
)

// PurchaseDTO represents the database structure for persisting purchase aggregates.
// The surrogate primary key stays internal; the code column is the unique external
// handle customers and pizzaiolos use. Timestamp columns are owned by the domain,
// so GORM's automatic timestamp tracking is disabled.
type PurchaseDTO struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Code      string    `gorm:"type:varchar(50);uniqueIndex;not null"`
	Item      string    `gorm:"type:varchar(50);not null"`
	Status    int       `gorm:"index;not null"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime:false"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime:false"`
}

// TableName specifies the database table name for purchase entities.
// Overrides GORM's default naming convention to use "purchases".
func (PurchaseDTO) TableName() string {
	return "purchases"
}

// fromDomain converts a purchase domain aggregate to its database representation.
func fromDomain(aggregate *purchase.Purchase) PurchaseDTO {
	return PurchaseDTO{
		Code:      aggregate.Code().String(),
		Item:      aggregate.Item(),
		Status:    int(aggregate.Status()),
		CreatedAt: aggregate.CreatedAt(),
		UpdatedAt: aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to a purchase domain aggregate.
// Reconstructs the complete aggregate including status and timestamps using RestorePurchase.
func toDomain(dto PurchaseDTO) (*purchase.Purchase, error) {
	code, err := kernel.CodeFromString(dto.Code)
	if err != nil {
		return nil, err
	}

	return purchase.RestorePurchase(
		code,
		dto.Item,
		purchase.Status(dto.Status),
		dto.CreatedAt.UTC(),
		dto.UpdatedAt.UTC(),
	)
}
