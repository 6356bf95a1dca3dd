package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"foodgram-backend/internal/domains/tag/model"
	"foodgram-backend/internal/domains/tag/service"
	"foodgram-backend/internal/shared/response"
)

// =====================================================
// TAG HANDLER
// =====================================================

type TagHandler struct {
	tagService service.TagService
}

func NewTagHandler(tagService service.TagService) *TagHandler {
	return &TagHandler{tagService: tagService}
}

// GetAll lists all tags (unpaginated reference data)
// GET /api/v1/tags
func (h *TagHandler) GetAll(c *gin.Context) {
	tags, err := h.tagService.ListTags(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, tags)
}

// GetByID gets a tag by ID
// GET /api/v1/tags/:id
func (h *TagHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid tag ID")
		return
	}

	tag, err := h.tagService.GetTag(c.Request.Context(), id)
	if err != nil {
		if tagErr, ok := err.(*model.TagError); ok && tagErr.Code == model.ErrCodeTagNotFound {
			response.Fail(c, http.StatusNotFound, tagErr.Code, tagErr.Message)
			return
		}
		response.Fail(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, tag)
}
