package bootstrap

import (
	"log"

	"github.com/GarvitManralDev/fitlens-backend/internal/config"
	"github.com/GarvitManralDev/fitlens-backend/internal/controller"
	"github.com/GarvitManralDev/fitlens-backend/internal/pkg/logger"
	"github.com/GarvitManralDev/fitlens-backend/internal/repository/implementation"
	"github.com/GarvitManralDev/fitlens-backend/internal/service"
	"github.com/GarvitManralDev/fitlens-backend/pkg/mlmodel"
	"github.com/GarvitManralDev/fitlens-backend/pkg/traits"

	pktNats "github.com/GarvitManralDev/fitlens-backend/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	RecommendController controller.IRecommendController
	TrackController     controller.ITrackController
	HealthController    controller.IHealthController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// NATS (optional: the DB sink stays authoritative without it)
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// 3. Repositories
	productRepo := implementation.NewProductRepository(db)
	priceRepo := implementation.NewPriceRepository(db)
	engagementRepo := implementation.NewEngagementRepository(db)

	// 4. Scoring core
	// The scorer is the only cross-request mutable state: loaded at most
	// once, immutable afterwards.
	scorer := mlmodel.NewLazyScorer(cfg.Model.Path)
	extractor := traits.NewExtractor()

	// 5. Services
	publisherService := service.NewPublisherService(cfg.App.EngagementTopic, pubSub)
	consumerService := service.NewConsumerService(pubSub, cfg.App.EngagementTopic, natsPub)

	recommendService := service.NewRecommendService(productRepo, priceRepo, extractor, scorer, sysLogger)
	trackService := service.NewTrackService(engagementRepo, publisherService, sysLogger)

	// 6. Controllers
	return &Container{
		RecommendController: controller.NewRecommendController(recommendService),
		TrackController:     controller.NewTrackController(trackService),
		HealthController:    controller.NewHealthController(),

		ConsumerService: consumerService,
	}
}
