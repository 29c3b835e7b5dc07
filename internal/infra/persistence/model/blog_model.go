package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BlogModel mirrors the 'blogs' table. UserID references users.id.
type BlogModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title     string    `gorm:"type:varchar(255);not null"`
	Body      string    `gorm:"type:text;not null"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Creator *UserModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (BlogModel) TableName() string {
	return "blogs"
}

func (m *BlogModel) BeforeCreate(*gorm.DB) error {
	if m.ID != uuid.Nil {
		return nil
	}

	id, err := uuid.NewV7()
	if err != nil {
		return err
	}
	m.ID = id

	return nil
}

// All returns every persistence model, in migration order.
func All() []any {
	return []any{
		&UserModel{},
		&BlogModel{},
	}
}
