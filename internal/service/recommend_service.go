package service

import (
	"context"
	"fmt"

	"github.com/GarvitManralDev/fitlens-backend/internal/dto"
	"github.com/GarvitManralDev/fitlens-backend/internal/entity"
	"github.com/GarvitManralDev/fitlens-backend/internal/mapper"
	"github.com/GarvitManralDev/fitlens-backend/internal/pkg/logger"
	"github.com/GarvitManralDev/fitlens-backend/internal/repository/contract"
	"github.com/GarvitManralDev/fitlens-backend/internal/repository/specification"
	"github.com/GarvitManralDev/fitlens-backend/pkg/features"
	"github.com/GarvitManralDev/fitlens-backend/pkg/mlmodel"
	"github.com/GarvitManralDev/fitlens-backend/pkg/ranker"
	"github.com/GarvitManralDev/fitlens-backend/pkg/traits"
)

type IRecommendService interface {
	AnalyzeAndRecommend(ctx context.Context, image []byte, req dto.RecommendRequest) (*dto.RecommendResponse, error)
}

type recommendService struct {
	products  contract.ProductRepository
	prices    contract.PriceRepository
	extractor traits.Extractor
	scorer    mlmodel.Scorer
	mapper    *mapper.CatalogMapper
	log       logger.ILogger
}

func NewRecommendService(
	products contract.ProductRepository,
	prices contract.PriceRepository,
	extractor traits.Extractor,
	scorer mlmodel.Scorer,
	log logger.ILogger,
) IRecommendService {
	return &recommendService{
		products:  products,
		prices:    prices,
		extractor: extractor,
		scorer:    scorer,
		mapper:    mapper.NewCatalogMapper(),
		log:       log,
	}
}

// AnalyzeAndRecommend runs the model-only pipeline:
//  1. extract traits from the uploaded image
//  2. fetch ALL products (no category gating) and join price/size data
//  3. minimal filtering only: drop out-of-stock and unpriced candidates
//  4. build feature rows once and score them in a single batch call
//  5. sort by score, attach reasons, return the top slate
//
// The catalog is re-fetched on every request. That is a known scaling
// ceiling, kept so catalog edits are visible without a process restart.
func (s *recommendService) AnalyzeAndRecommend(ctx context.Context, image []byte, req dto.RecommendRequest) (*dto.RecommendResponse, error) {
	userTraits, err := s.extractor.Extract(image)
	if err != nil {
		return nil, err
	}

	candidates, err := s.fetchCandidates(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]*entity.Product, 0, len(candidates))
	for _, c := range candidates {
		if c.InStock && c.Price != nil {
			filtered = append(filtered, c)
		}
	}

	// Empty candidate set is a valid empty response, and must not touch the
	// model at all.
	if len(filtered) == 0 {
		return &dto.RecommendResponse{Items: []dto.ProductOut{}}, nil
	}

	rows := make([]features.Row, len(filtered))
	for i, c := range filtered {
		rows[i] = features.RowFrom(c, userTraits, req.Style, req.Size)
	}

	probas, err := s.scorer.ScoreBatch(ctx, rows)
	if err != nil {
		s.log.Error("recommend", "batch scoring failed", map[string]interface{}{"error": err.Error()})
		return nil, err
	}

	top := ranker.Rank(filtered, probas, req.Size)

	items := make([]dto.ProductOut, 0, len(top))
	for _, sc := range top {
		items = append(items, toProductOut(sc))
	}
	return &dto.RecommendResponse{Items: items}, nil
}

// fetchCandidates performs the catalog join: all products, inner-joined with
// their price rows on product id. Products without a price row are silently
// dropped — they cannot be scored without a numeric price feature.
func (s *recommendService) fetchCandidates(ctx context.Context) ([]*entity.Product, error) {
	productRows, err := s.products.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch products: %w", err)
	}

	ids := make([]string, len(productRows))
	for i, p := range productRows {
		ids[i] = p.Id
	}

	priceRows, err := s.prices.FindAll(ctx, specification.ByProductIds{Ids: ids})
	if err != nil {
		return nil, fmt.Errorf("fetch prices: %w", err)
	}

	priceByProduct := make(map[string]int, len(priceRows))
	for i, pr := range priceRows {
		priceByProduct[pr.ProductId] = i
	}

	enriched := make([]*entity.Product, 0, len(productRows))
	for _, p := range productRows {
		i, ok := priceByProduct[p.Id]
		if !ok {
			continue
		}
		enriched = append(enriched, s.mapper.ToCandidate(p, priceRows[i]))
	}
	return enriched, nil
}

func toProductOut(sc ranker.ScoredCandidate) dto.ProductOut {
	p := sc.Product
	price := 0
	if p.Price != nil {
		price = *p.Price
	}
	return dto.ProductOut{
		Id:    p.Id,
		Title: p.Title,
		Store: p.Store,
		Url:   p.Url,
		Image: p.Image,
		Price: price,
		Mrp:   p.Mrp,
		Sizes: p.Sizes,
		Tags:  p.Tags,
		Why:   sc.Why,
	}
}
