package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Todo struct - Core domain entity
// UserID is assigned once at creation from the caller identity and never
// reassigned. There is no DeletedAt column: deletion is permanent.
type Todo struct {
	ID        *uuid.UUID `gorm:"type:uuid;primary_key;"`
	Title     *string    `gorm:"type:varchar(100);not null;"`
	Body      *string    `gorm:"type:text"`
	Completed *bool      `gorm:"type:boolean;not null;default:false;"`
	UserID    *string    `gorm:"type:varchar(64);not null;index;"`
	CreatedAt *time.Time `gorm:"type:timestamp"`
	UpdatedAt *time.Time `gorm:"type:timestamp"`
}

// TableName func
func (t *Todo) TableName() string {
	return "todos"
}

// BeforeCreate hook - generates UUID before creating
func (t *Todo) BeforeCreate(tx *gorm.DB) (err error) {
	logrus.Info("BeforeCreate")
	uuid, err := uuid.NewRandom() // v4
	if err != nil {
		return err
	}
	t.ID = &uuid
	return nil
}

// MigrateDatabase func - Auto-migrate database schema
func MigrateDatabase(db *gorm.DB) {
	if db == nil {
		panic("An error when connect database")
	}

	err := db.AutoMigrate(&Todo{})
	if err != nil {
		panic(err)
	}
}
