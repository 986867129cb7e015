package storage

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Blob is the single-table schema behind the SQL drivers.
type Blob struct {
	Key   string `gorm:"primaryKey;type:varchar(191)"`
	Value []byte `gorm:"not null"`
}

// Gorm stores blobs in a relational database. Both the sqlite and mysql
// drivers from gorm plug in here.
type Gorm struct {
	db *gorm.DB
}

func NewGorm(db *gorm.DB) (*Gorm, error) {
	if err := db.AutoMigrate(&Blob{}); err != nil {
		return nil, fmt.Errorf("%w: migrating blob table: %v", ErrStorage, err)
	}
	return &Gorm{db: db}, nil
}

func (g *Gorm) Get(key string) ([]byte, bool, error) {
	var blob Blob
	err := g.db.First(&blob, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w: reading %s: %v", ErrStorage, key, err)
	}
	return blob.Value, true, nil
}

func (g *Gorm) Put(key string, value []byte) error {
	blob := Blob{Key: key, Value: value}
	err := g.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&blob).Error
	if err != nil {
		return fmt.Errorf("%w: writing %s: %v", ErrStorage, key, err)
	}
	return nil
}
