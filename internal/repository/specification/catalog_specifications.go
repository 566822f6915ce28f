package specification

import "gorm.io/gorm"

// ByProductIds filters price rows by product id membership. An empty id set
// is substituted with a sentinel that matches nothing, so we never issue a
// degenerate `IN ()` query.
type ByProductIds struct {
	Ids []string
}

func (s ByProductIds) Apply(db *gorm.DB) *gorm.DB {
	ids := s.Ids
	if len(ids) == 0 {
		ids = []string{"-"}
	}
	return db.Where("product_id IN ?", ids)
}

// OrderBy applies ordering
type OrderBy struct {
	Field string
	Desc  bool
}

func (s OrderBy) Apply(db *gorm.DB) *gorm.DB {
	dir := "ASC"
	if s.Desc {
		dir = "DESC"
	}
	return db.Order(s.Field + " " + dir)
}
