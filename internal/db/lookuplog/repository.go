package lookuplog

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	LogLookup(ctx context.Context, lookup *CityLookup) error
}

type LookupSQLRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &LookupSQLRepository{db: db}
}

func (r *LookupSQLRepository) LogLookup(ctx context.Context, lookup *CityLookup) error {
	if lookup.CreatedAt.IsZero() {
		lookup.CreatedAt = time.Now()
	}

	return r.db.WithContext(ctx).Create(lookup).Error
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&CityLookup{})
}
