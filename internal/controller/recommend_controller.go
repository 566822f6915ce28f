package controller

import (
	"errors"
	"io"
	"strconv"

	"github.com/GarvitManralDev/fitlens-backend/internal/dto"
	"github.com/GarvitManralDev/fitlens-backend/internal/pkg/serverutils"
	"github.com/GarvitManralDev/fitlens-backend/internal/service"
	"github.com/GarvitManralDev/fitlens-backend/pkg/traits"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var allowedImageTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/webp": {},
}

type IRecommendController interface {
	RegisterRoutes(r fiber.Router)
	AnalyzeAndRecommend(ctx *fiber.Ctx) error
}

type recommendController struct {
	service  service.IRecommendService
	validate *validator.Validate
}

func NewRecommendController(service service.IRecommendService) IRecommendController {
	return &recommendController{
		service:  service,
		validate: validator.New(),
	}
}

func (c *recommendController) RegisterRoutes(r fiber.Router) {
	r.Post("/analyze-and-recommend", c.AnalyzeAndRecommend)
}

func (c *recommendController) AnalyzeAndRecommend(ctx *fiber.Ctx) error {
	fileHeader, err := ctx.FormFile("image")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Image file is required"))
	}
	if _, ok := allowedImageTypes[fileHeader.Header.Get("Content-Type")]; !ok {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Unsupported image type"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid image file"))
	}
	defer file.Close()

	imageData, err := io.ReadAll(file)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid image file"))
	}

	req := dto.RecommendRequest{
		Style: ctx.FormValue("style"),
		Size:  ctx.FormValue("size"),
	}
	if raw := ctx.FormValue("budget"); raw != "" {
		if budget, convErr := strconv.Atoi(raw); convErr == nil {
			req.Budget = &budget
		}
	}
	if err := c.validate.Struct(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "style must be one of: casual, traditional"))
	}

	res, err := c.service.AnalyzeAndRecommend(ctx.Context(), imageData, req)
	if err != nil {
		// Undecodable bytes are the client's fault; everything else
		// (storage, model artifact) is a service failure.
		if errors.Is(err, traits.ErrInvalidImage) {
			return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid image file"))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	return ctx.JSON(res)
}
