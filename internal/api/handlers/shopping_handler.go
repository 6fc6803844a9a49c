package handlers

import (
	"fridgemate/domain"
	"fridgemate/internal/api/presenters"
	"fridgemate/pkg/reconcile"
	"fridgemate/pkg/shopping"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ShoppingHandler interface {
		AddShoppingItem(c *fiber.Ctx) error
		UpdateShoppingItem(c *fiber.Ctx) error
		DeleteShoppingItem(c *fiber.Ctx) error
		BatchDeleteShoppingItems(c *fiber.Ctx) error
		GetShoppingItems(c *fiber.Ctx) error
		ToggleShoppingItem(c *fiber.Ctx) error
		CheckoutCheckedItems(c *fiber.Ctx) error
		SaveListAsTemplate(c *fiber.Ctx) error
	}

	shoppingHandler struct {
		shoppingService  shopping.ShoppingService
		reconcileService reconcile.ReconcileService
		validator        *validator.Validate
	}
)

func NewShoppingHandler(shoppingService shopping.ShoppingService, reconcileService reconcile.ReconcileService, validator *validator.Validate) ShoppingHandler {
	return &shoppingHandler{
		shoppingService:  shoppingService,
		reconcileService: reconcileService,
		validator:        validator,
	}
}

func (h *shoppingHandler) AddShoppingItem(c *fiber.Ctx) error {
	req := new(domain.AddShoppingItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddShoppingItem, err)
	}

	res, err := h.shoppingService.AddShoppingItem(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddShoppingItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddShoppingItem)
}

func (h *shoppingHandler) UpdateShoppingItem(c *fiber.Ctx) error {
	itemID := c.Params("id")
	req := new(domain.UpdateShoppingItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateShoppingItem, err)
	}

	if err := h.shoppingService.UpdateShoppingItem(c.Context(), itemID, *req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateShoppingItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateShoppingItem)
}

func (h *shoppingHandler) DeleteShoppingItem(c *fiber.Ctx) error {
	itemID := c.Params("id")

	if err := h.shoppingService.DeleteShoppingItems(c.Context(), []string{itemID}); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteShoppingItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteShoppingItem)
}

func (h *shoppingHandler) BatchDeleteShoppingItems(c *fiber.Ctx) error {
	req := new(domain.BatchDeleteRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteShoppingItem, err)
	}

	if err := h.shoppingService.DeleteShoppingItems(c.Context(), req.IDs); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteShoppingItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteShoppingItem)
}

func (h *shoppingHandler) GetShoppingItems(c *fiber.Ctx) error {
	items, err := h.shoppingService.GetShoppingItems(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetShoppingItems, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"items": items}, fiber.StatusOK, domain.MessageSuccessGetShoppingItems)
}

func (h *shoppingHandler) ToggleShoppingItem(c *fiber.Ctx) error {
	itemID := c.Params("id")

	if err := h.shoppingService.ToggleChecked(c.Context(), itemID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedToggleShoppingItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessToggleShoppingItem)
}

func (h *shoppingHandler) CheckoutCheckedItems(c *fiber.Ctx) error {
	res, err := h.reconcileService.CheckoutCheckedItems(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCheckout, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessCheckout)
}

func (h *shoppingHandler) SaveListAsTemplate(c *fiber.Ctx) error {
	req := new(domain.SaveAsTemplateRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveAsTemplate, err)
	}

	res, err := h.reconcileService.SaveListAsTemplate(c.Context(), req.Name)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveAsTemplate, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessSaveAsTemplate)
}
