package service

import (
	"context"
	"errors"
	"testing"

	"github.com/GarvitManralDev/fitlens-backend/internal/dto"
	"github.com/GarvitManralDev/fitlens-backend/internal/mapper"
	"github.com/GarvitManralDev/fitlens-backend/internal/model"
	"github.com/GarvitManralDev/fitlens-backend/internal/repository/specification"
	"github.com/GarvitManralDev/fitlens-backend/pkg/features"
	"github.com/GarvitManralDev/fitlens-backend/pkg/traits"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

// --- fakes ---

type fakeProductRepo struct {
	products []*model.Product
	err      error
}

func (f *fakeProductRepo) Create(context.Context, *model.Product) error { return nil }
func (f *fakeProductRepo) Count(context.Context) (int64, error)         { return int64(len(f.products)), nil }
func (f *fakeProductRepo) FindAll(context.Context, ...specification.Specification) ([]*model.Product, error) {
	return f.products, f.err
}

type fakePriceRepo struct {
	prices []*model.Price
	err    error
}

func (f *fakePriceRepo) Create(context.Context, *model.Price) error { return nil }
func (f *fakePriceRepo) FindAll(context.Context, ...specification.Specification) ([]*model.Price, error) {
	return f.prices, f.err
}

type fakeExtractor struct {
	traits traits.Traits
	err    error
}

func (f *fakeExtractor) Extract([]byte) (traits.Traits, error) { return f.traits, f.err }

// stubScorer returns each row's price scaled to [0,1] and counts calls, so
// tests can both check correspondence and prove the scorer was skipped.
type stubScorer struct {
	calls     int
	lastBatch []features.Row
	err       error
}

func (s *stubScorer) ScoreBatch(_ context.Context, rows []features.Row) ([]float64, error) {
	s.calls++
	s.lastBatch = rows
	if s.err != nil {
		return nil, s.err
	}
	out := make([]float64, len(rows))
	for i, r := range rows {
		out[i] = float64(r.Price) / 10000.0
	}
	return out, nil
}

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }

func neutralTraits() traits.Traits {
	return traits.Traits{
		SkinTemperature: "neutral",
		SkinDepth:       "medium",
		HairType:        "unknown",
		HairColor:       "unknown",
		Frame:           "regular",
		HeightBucket:    "avg",
		Shoulders:       "average",
	}
}

func newService(products *fakeProductRepo, prices *fakePriceRepo, scorer *stubScorer) *recommendService {
	return &recommendService{
		products:  products,
		prices:    prices,
		extractor: &fakeExtractor{traits: neutralTraits()},
		scorer:    scorer,
		mapper:    mapper.NewCatalogMapper(),
		log:       nopLogger{},
	}
}

// --- tests ---

func TestAnalyzeAndRecommendEndToEnd(t *testing.T) {
	products := &fakeProductRepo{products: []*model.Product{
		{Id: "p1", Title: "Navy Tee", Store: "store", Url: "u1", Image: "i1",
			Tags: datatypes.NewJSONSlice([]string{"casual", "navy"})},
		{Id: "p2", Title: "Plain Tee", Store: "store", Url: "u2", Image: "i2",
			Tags: datatypes.NewJSONSlice([]string{"casual"})},
	}}
	prices := &fakePriceRepo{prices: []*model.Price{
		{ProductId: "p1", Price: intPtr(999), Sizes: datatypes.NewJSONSlice([]string{"M", "L"}), InStock: boolPtr(true)},
		{ProductId: "p2", Price: nil, Sizes: datatypes.NewJSONSlice([]string{"M"}), InStock: boolPtr(true)},
	}}
	scorer := &stubScorer{}
	svc := newService(products, prices, scorer)

	res, err := svc.AnalyzeAndRecommend(context.Background(), []byte("img"), dto.RecommendRequest{
		Style: "casual",
		Size:  "M",
	})
	require.NoError(t, err)

	// p2 has a price row but a null price: excluded before scoring.
	require.Len(t, res.Items, 1)
	item := res.Items[0]
	assert.Equal(t, "p1", item.Id)
	assert.Equal(t, 999, item.Price)
	assert.Contains(t, item.Why, "in stock in your size")
	assert.Contains(t, item.Why, "price ₹999")

	// The scorer saw exactly one row, with the expected features.
	require.Equal(t, 1, scorer.calls)
	require.Len(t, scorer.lastBatch, 1)
	assert.Equal(t, 999, scorer.lastBatch[0].Price)
	assert.Equal(t, 1, scorer.lastBatch[0].HasSize)
	assert.Equal(t, "casual;navy", scorer.lastBatch[0].ColorTags)
}

func TestAnalyzeAndRecommendDropsUnjoinedAndOutOfStock(t *testing.T) {
	products := &fakeProductRepo{products: []*model.Product{
		{Id: "priced"},
		{Id: "no_price_row"},
		{Id: "out_of_stock"},
	}}
	prices := &fakePriceRepo{prices: []*model.Price{
		{ProductId: "priced", Price: intPtr(500), InStock: boolPtr(true)},
		{ProductId: "out_of_stock", Price: intPtr(700), InStock: boolPtr(false)},
	}}
	scorer := &stubScorer{}
	svc := newService(products, prices, scorer)

	res, err := svc.AnalyzeAndRecommend(context.Background(), []byte("img"), dto.RecommendRequest{Style: "casual"})
	require.NoError(t, err)

	require.Len(t, res.Items, 1)
	assert.Equal(t, "priced", res.Items[0].Id)
}

func TestAnalyzeAndRecommendEmptyCatalogSkipsScorer(t *testing.T) {
	scorer := &stubScorer{}
	svc := newService(&fakeProductRepo{}, &fakePriceRepo{}, scorer)

	res, err := svc.AnalyzeAndRecommend(context.Background(), []byte("img"), dto.RecommendRequest{Style: "casual"})
	require.NoError(t, err)

	assert.Empty(t, res.Items)
	// Valid empty response, and the model was never invoked.
	assert.Equal(t, 0, scorer.calls)
}

func TestAnalyzeAndRecommendRanksByScore(t *testing.T) {
	products := &fakeProductRepo{products: []*model.Product{
		{Id: "cheap"}, {Id: "mid"}, {Id: "expensive"},
	}}
	prices := &fakePriceRepo{prices: []*model.Price{
		{ProductId: "cheap", Price: intPtr(100), InStock: boolPtr(true)},
		{ProductId: "mid", Price: intPtr(500), InStock: boolPtr(true)},
		{ProductId: "expensive", Price: intPtr(900), InStock: boolPtr(true)},
	}}
	svc := newService(products, prices, &stubScorer{})

	res, err := svc.AnalyzeAndRecommend(context.Background(), []byte("img"), dto.RecommendRequest{Style: "casual"})
	require.NoError(t, err)

	// The stub scores proportionally to price.
	require.Len(t, res.Items, 3)
	assert.Equal(t, "expensive", res.Items[0].Id)
	assert.Equal(t, "mid", res.Items[1].Id)
	assert.Equal(t, "cheap", res.Items[2].Id)
}

func TestAnalyzeAndRecommendPropagatesStorageError(t *testing.T) {
	svc := newService(&fakeProductRepo{err: errors.New("db down")}, &fakePriceRepo{}, &stubScorer{})

	_, err := svc.AnalyzeAndRecommend(context.Background(), []byte("img"), dto.RecommendRequest{Style: "casual"})
	assert.ErrorContains(t, err, "db down")
}

func TestAnalyzeAndRecommendPropagatesScorerError(t *testing.T) {
	products := &fakeProductRepo{products: []*model.Product{{Id: "p1"}}}
	prices := &fakePriceRepo{prices: []*model.Price{
		{ProductId: "p1", Price: intPtr(100), InStock: boolPtr(true)},
	}}
	svc := newService(products, prices, &stubScorer{err: errors.New("model artifact not found")})

	_, err := svc.AnalyzeAndRecommend(context.Background(), []byte("img"), dto.RecommendRequest{Style: "casual"})
	assert.ErrorContains(t, err, "model artifact not found")
}
