package controller

import (
	"github.com/GarvitManralDev/fitlens-backend/internal/dto"
	"github.com/GarvitManralDev/fitlens-backend/internal/pkg/serverutils"
	"github.com/GarvitManralDev/fitlens-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type ITrackController interface {
	RegisterRoutes(r fiber.Router)
	Track(ctx *fiber.Ctx) error
}

type trackController struct {
	service  service.ITrackService
	validate *validator.Validate
}

func NewTrackController(service service.ITrackService) ITrackController {
	return &trackController{
		service:  service,
		validate: validator.New(),
	}
}

func (c *trackController) RegisterRoutes(r fiber.Router) {
	r.Post("/track", c.Track)
}

func (c *trackController) Track(ctx *fiber.Ctx) error {
	var req dto.TrackRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := c.validate.Struct(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "event must be click/like/hide; product_id and session_id are required"))
	}

	if err := c.service.Record(ctx.Context(), req); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	return ctx.JSON(dto.TrackResponse{Ok: true})
}
