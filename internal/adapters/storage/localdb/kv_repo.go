package localdb

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Entry struct {
	Key       string `gorm:"primaryKey;size:120"`
	Value     string `gorm:"type:text"`
	UpdatedAt time.Time
}

func (Entry) TableName() string { return "local_storage" }

type KVRepo struct{ db *gorm.DB }

func NewKVRepo(db *gorm.DB) *KVRepo { return &KVRepo{db: db} }

func (r *KVRepo) Migrate() error {
	return r.db.AutoMigrate(&Entry{})
}

func (r *KVRepo) Get(ctx context.Context, key string) (string, bool, error) {
	var e Entry
	if err := r.db.WithContext(ctx).First(&e, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return e.Value, true, nil
}

func (r *KVRepo) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return errors.New("clave vacía")
	}
	e := Entry{Key: key, Value: value, UpdatedAt: time.Now()}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&e).Error
}

func (r *KVRepo) Delete(ctx context.Context, key string) error {
	return r.db.WithContext(ctx).Where("key = ?", key).Delete(&Entry{}).Error
}

func (r *KVRepo) Clear(ctx context.Context) error {
	return r.db.WithContext(ctx).Where("1 = 1").Delete(&Entry{}).Error
}

// Keys lista las claves guardadas en orden; lo usa "whoami --keys".
func (r *KVRepo) Keys(ctx context.Context) ([]string, error) {
	keys := []string{}
	if err := r.db.WithContext(ctx).Model(&Entry{}).Order("key asc").Pluck("key", &keys).Error; err != nil {
		return nil, err
	}
	return keys, nil
}
