package mapper

import (
	"github.com/GarvitManralDev/fitlens-backend/internal/entity"
	"github.com/GarvitManralDev/fitlens-backend/internal/model"
)

type CatalogMapper struct{}

func NewCatalogMapper() *CatalogMapper {
	return &CatalogMapper{}
}

// ToCandidate joins one product with its price row into a scoring candidate.
// pr may be nil (no price row); callers drop those before scoring.
func (m *CatalogMapper) ToCandidate(p *model.Product, pr *model.Price) *entity.Product {
	if p == nil {
		return nil
	}

	cand := &entity.Product{
		Id:      p.Id,
		Title:   p.Title,
		Store:   p.Store,
		Url:     p.Url,
		Image:   p.Image,
		Tags:    []string(p.Tags),
		InStock: true,
	}
	if pr == nil {
		return cand
	}

	cand.Price = pr.Price
	cand.Mrp = pr.Mrp
	cand.Sizes = []string(pr.Sizes)
	if pr.InStock != nil {
		cand.InStock = *pr.InStock
	}
	return cand
}
