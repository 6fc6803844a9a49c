package handlers

import (
	"fridgemate/domain"
	"fridgemate/internal/api/presenters"
	"fridgemate/pkg/food"
	"fridgemate/pkg/notify"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	FoodHandler interface {
		AddFoodItem(c *fiber.Ctx) error
		UpdateFoodItem(c *fiber.Ctx) error
		DeleteFoodItem(c *fiber.Ctx) error
		BatchDeleteFoodItems(c *fiber.Ctx) error
		GetFoodItems(c *fiber.Ctx) error
		GetFoodItemDetails(c *fiber.Ctx) error
		GetDashboard(c *fiber.Ctx) error
		UploadReceipt(c *fiber.Ctx) error
		GetReceiptScanResult(c *fiber.Ctx) error
		SaveScannedItems(c *fiber.Ctx) error
		SendExpiryDigest(c *fiber.Ctx) error
	}

	foodHandler struct {
		foodService   food.FoodService
		notifyService notify.NotifyService
		validator     *validator.Validate
	}
)

func NewFoodHandler(foodService food.FoodService, notifyService notify.NotifyService, validator *validator.Validate) FoodHandler {
	return &foodHandler{
		foodService:   foodService,
		notifyService: notifyService,
		validator:     validator,
	}
}

func (h *foodHandler) AddFoodItem(c *fiber.Ctx) error {
	req := new(domain.AddFoodItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddFoodItem, err)
	}

	res, err := h.foodService.AddFoodItem(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddFoodItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddFoodItem)
}

func (h *foodHandler) UpdateFoodItem(c *fiber.Ctx) error {
	itemID := c.Params("id")
	req := new(domain.UpdateFoodItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateFoodItem, err)
	}

	if err := h.foodService.UpdateFoodItem(c.Context(), itemID, *req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateFoodItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateFoodItem)
}

func (h *foodHandler) DeleteFoodItem(c *fiber.Ctx) error {
	itemID := c.Params("id")

	if err := h.foodService.DeleteFoodItems(c.Context(), []string{itemID}); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteFoodItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteFoodItem)
}

func (h *foodHandler) BatchDeleteFoodItems(c *fiber.Ctx) error {
	req := new(domain.BatchDeleteRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteFoodItem, err)
	}

	if err := h.foodService.DeleteFoodItems(c.Context(), req.IDs); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteFoodItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteFoodItem)
}

func (h *foodHandler) GetFoodItems(c *fiber.Ctx) error {
	storageType := c.Query("storage")

	items, err := h.foodService.GetFoodItems(c.Context(), storageType)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetFoodItems, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"items": items}, fiber.StatusOK, domain.MessageSuccessGetFoodItems)
}

func (h *foodHandler) GetFoodItemDetails(c *fiber.Ctx) error {
	itemID := c.Params("id")

	item, err := h.foodService.GetFoodItemByID(c.Context(), itemID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetFoodItems, err)
	}

	return presenters.SuccessResponse(c, item, fiber.StatusOK, domain.MessageSuccessGetFoodItems)
}

func (h *foodHandler) GetDashboard(c *fiber.Ctx) error {
	stats, err := h.foodService.GetDashboard(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetDashboard, err)
	}

	return presenters.SuccessResponse(c, stats, fiber.StatusOK, domain.MessageSuccessGetDashboard)
}

func (h *foodHandler) UploadReceipt(c *fiber.Ctx) error {
	req := new(domain.UploadReceiptRequest)

	file, err := c.FormFile("receipt_image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	req.ReceiptImage = file

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadReceipt, err)
	}

	res, err := h.foodService.UploadReceipt(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadReceipt, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUploadReceipt)
}

func (h *foodHandler) GetReceiptScanResult(c *fiber.Ctx) error {
	scanID := c.Params("id")

	res, err := h.foodService.GetReceiptScan(c.Context(), scanID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetReceiptScan, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetReceiptScan)
}

func (h *foodHandler) SaveScannedItems(c *fiber.Ctx) error {
	req := new(domain.SaveScannedItemsRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveScannedItems, err)
	}

	if err := h.foodService.SaveScannedItems(c.Context(), *req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveScannedItems, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessSaveScannedItems)
}

func (h *foodHandler) SendExpiryDigest(c *fiber.Ctx) error {
	req := new(domain.SendExpiryDigestRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSendDigest, err)
	}

	if err := h.notifyService.SendExpiryDigest(c.Context(), req.Email); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSendDigest, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessSendDigest)
}
