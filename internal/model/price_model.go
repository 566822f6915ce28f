package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Price carries the commercial side of a product. Price itself is nullable:
// an unpriced row exists while a store feed is incomplete, and the join layer
// drops such products before scoring.
type Price struct {
	Id        uuid.UUID                   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProductId string                      `gorm:"type:text;not null;uniqueIndex"`
	Price     *int                        `gorm:"type:integer"`
	Mrp       *int                        `gorm:"type:integer"`
	Sizes     datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	InStock   *bool                       `gorm:"type:boolean;default:true"`
	UpdatedAt time.Time                   `gorm:"autoUpdateTime"`
}

func (Price) TableName() string {
	return "prices"
}
