package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/frbarbre/contacts-api/internal/http/dto"
	"github.com/frbarbre/contacts-api/internal/model"
	"github.com/frbarbre/contacts-api/internal/service"
	"github.com/frbarbre/contacts-api/internal/store"
)

type ContactHandler struct {
	contactService service.ContactService
}

func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

func (h *ContactHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	contacts, err := h.contactService.List(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list contacts", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list contacts"})
		return
	}

	c.JSON(http.StatusOK, dto.ToContactResponses(contacts))
}

func (h *ContactHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := contactID(c)
	if !ok {
		return
	}

	contact, err := h.contactService.Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "contact not found"})
			return
		}
		slog.ErrorContext(ctx, "failed to get contact", "error", err, "contact_id", id.Hex())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get contact"})
		return
	}

	c.JSON(http.StatusOK, dto.ToContactResponse(contact))
}

func (h *ContactHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	input, ok := bindContactInput(c)
	if !ok {
		return
	}

	contact, err := h.contactService.Create(ctx, input.Params())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create contact"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToContactResponse(contact))
}

func (h *ContactHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := contactID(c)
	if !ok {
		return
	}

	input, ok := bindContactInput(c)
	if !ok {
		return
	}

	contact, err := h.contactService.Update(ctx, id, input.Params())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "contact not found"})
			return
		}
		slog.ErrorContext(ctx, "failed to update contact", "error", err, "contact_id", id.Hex())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update contact"})
		return
	}

	c.JSON(http.StatusOK, dto.ToContactResponse(contact))
}

func (h *ContactHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := contactID(c)
	if !ok {
		return
	}

	if err := h.contactService.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "contact not found"})
			return
		}
		slog.ErrorContext(ctx, "failed to delete contact", "error", err, "contact_id", id.Hex())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete contact"})
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ContactHandler) Search(c *gin.Context) {
	ctx := c.Request.Context()

	contacts, err := h.contactService.Search(ctx, c.Query("q"))
	if err != nil {
		slog.ErrorContext(ctx, "failed to search contacts", "error", err, "query", c.Query("q"))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to search contacts"})
		return
	}

	c.JSON(http.StatusOK, dto.ToContactResponses(contacts))
}

func (h *ContactHandler) ToggleFavorite(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := contactID(c)
	if !ok {
		return
	}

	contact, err := h.contactService.ToggleFavorite(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "contact not found"})
			return
		}
		slog.ErrorContext(ctx, "failed to toggle favorite", "error", err, "contact_id", id.Hex())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to toggle favorite"})
		return
	}

	c.JSON(http.StatusOK, dto.ToContactResponse(contact))
}

// contactID parses the :id route parameter. A malformed identifier is
// reported as not found, not as a distinct error.
func contactID(c *gin.Context) (model.ContactID, bool) {
	id, err := model.ParseContactID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "contact not found"})
		return model.ContactID{}, false
	}
	return id, true
}

// bindContactInput decodes and validates the request body, writing the
// field-error map on failure.
func bindContactInput(c *gin.Context) (dto.ContactInput, bool) {
	ctx := c.Request.Context()

	var input dto.ContactInput
	if err := c.ShouldBindJSON(&input); err != nil {
		slog.WarnContext(ctx, "invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return dto.ContactInput{}, false
	}

	if errs := input.Validate(); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return dto.ContactInput{}, false
	}

	return input, true
}
