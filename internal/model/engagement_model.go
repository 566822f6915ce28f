package model

import "github.com/google/uuid"

// Click and Like are the two engagement sinks. Append-only: there is no
// update or delete path, the rows are exported later as training signal.

type Click struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProductId string    `gorm:"type:text;not null;index"`
	SessionId string    `gorm:"type:text;not null;index"`
	Ts        int64     `gorm:"type:bigint;not null"`
}

func (Click) TableName() string {
	return "clicks"
}

type Like struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProductId string    `gorm:"type:text;not null;index"`
	SessionId string    `gorm:"type:text;not null;index"`
	Ts        int64     `gorm:"type:bigint;not null"`
}

func (Like) TableName() string {
	return "likes"
}
