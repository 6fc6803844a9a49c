package handlers

import (
	"fridgemate/domain"
	"fridgemate/internal/api/presenters"
	"fridgemate/pkg/reconcile"
	"fridgemate/pkg/template"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	TemplateHandler interface {
		AddTemplate(c *fiber.Ctx) error
		GetTemplates(c *fiber.Ctx) error
		GetTemplateDetails(c *fiber.Ctx) error
		DeleteTemplate(c *fiber.Ctx) error
		RenameTemplate(c *fiber.Ctx) error
		ReplaceTemplateItems(c *fiber.Ctx) error
		ApplyTemplate(c *fiber.Ctx) error
	}

	templateHandler struct {
		templateService  template.TemplateService
		reconcileService reconcile.ReconcileService
		validator        *validator.Validate
	}
)

func NewTemplateHandler(templateService template.TemplateService, reconcileService reconcile.ReconcileService, validator *validator.Validate) TemplateHandler {
	return &templateHandler{
		templateService:  templateService,
		reconcileService: reconcileService,
		validator:        validator,
	}
}

func (h *templateHandler) AddTemplate(c *fiber.Ctx) error {
	req := new(domain.AddTemplateRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddTemplate, err)
	}

	res, err := h.templateService.AddTemplate(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddTemplate, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddTemplate)
}

func (h *templateHandler) GetTemplates(c *fiber.Ctx) error {
	templates, err := h.templateService.GetTemplates(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetTemplates, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"templates": templates}, fiber.StatusOK, domain.MessageSuccessGetTemplates)
}

func (h *templateHandler) GetTemplateDetails(c *fiber.Ctx) error {
	templateID := c.Params("id")

	res, err := h.templateService.GetTemplate(c.Context(), templateID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetTemplates, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetTemplates)
}

func (h *templateHandler) DeleteTemplate(c *fiber.Ctx) error {
	templateID := c.Params("id")

	if err := h.templateService.DeleteTemplate(c.Context(), templateID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteTemplate, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteTemplate)
}

func (h *templateHandler) RenameTemplate(c *fiber.Ctx) error {
	templateID := c.Params("id")
	req := new(domain.RenameTemplateRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRenameTemplate, err)
	}

	if err := h.templateService.RenameTemplate(c.Context(), templateID, req.Name); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRenameTemplate, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessRenameTemplate)
}

func (h *templateHandler) ReplaceTemplateItems(c *fiber.Ctx) error {
	templateID := c.Params("id")
	req := new(domain.ReplaceTemplateItemsRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedReplaceItems, err)
	}

	if err := h.templateService.ReplaceItems(c.Context(), templateID, *req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedReplaceItems, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessReplaceItems)
}

func (h *templateHandler) ApplyTemplate(c *fiber.Ctx) error {
	templateID := c.Params("id")

	if err := h.reconcileService.ApplyTemplate(c.Context(), templateID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedApplyTemplate, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessApplyTemplate)
}
