package model

import (
	"time"

	"gorm.io/datatypes"
)

type Product struct {
	Id        string                      `gorm:"type:text;primaryKey"`
	Title     string                      `gorm:"type:varchar(255);not null"`
	Store     string                      `gorm:"type:varchar(255)"`
	Url       string                      `gorm:"type:text"`
	Image     string                      `gorm:"type:text"`
	Tags      datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	CreatedAt time.Time                   `gorm:"autoCreateTime"`
	UpdatedAt time.Time                   `gorm:"autoUpdateTime"`
}

func (Product) TableName() string {
	return "products"
}
