package handler

import (
	"fmt"
	"net/http"

	"patrimonio-go/internal/dto"
	"patrimonio-go/internal/service"
	"patrimonio-go/internal/utils"

	"github.com/gin-gonic/gin"
)

// AssetHandler asset endpoints
type AssetHandler struct {
	assetService  *service.AssetService
	exportService *service.ExportService
}

// NewAssetHandler creates the asset handler
func NewAssetHandler(assetService *service.AssetService, exportService *service.ExportService) *AssetHandler {
	return &AssetHandler{
		assetService:  assetService,
		exportService: exportService,
	}
}

// ListAssets lists assets, optionally filtered by category and status
func (h *AssetHandler) ListAssets(c *gin.Context) {
	var filter dto.AssetFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		bindError(c, err)
		return
	}
	filter.Normalize()

	assets, total, err := h.assetService.List(filter)
	if err != nil {
		handleError(c, err)
		return
	}

	utils.PaginatedResponse(c, assets, total, filter.Page, filter.PerPage)
}

// GetAsset returns one asset with its field values
func (h *AssetHandler) GetAsset(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	asset, err := h.assetService.Get(id)
	if err != nil {
		handleError(c, err)
		return
	}

	utils.SuccessResponse(c, asset)
}

// CreateAsset registers an asset owned by the caller
func (h *AssetHandler) CreateAsset(c *gin.Context) {
	var req dto.AssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	asset, err := h.assetService.Create(currentActor(c), &req)
	if err != nil {
		handleError(c, err)
		return
	}

	utils.Created(c, "asset created", asset)
}

// UpdateAsset replaces an asset and all of its field values
func (h *AssetHandler) UpdateAsset(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req dto.AssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	asset, err := h.assetService.Update(id, &req)
	if err != nil {
		handleError(c, err)
		return
	}

	utils.SuccessWithMessage(c, "asset updated", asset)
}

// PatchAsset changes the provided attributes of an asset
func (h *AssetHandler) PatchAsset(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req dto.AssetPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	if req.FieldValues != nil {
		for _, v := range *req.FieldValues {
			if v.FieldDefinition == 0 {
				utils.BadRequest(c, "field_definition is required")
				return
			}
		}
	}

	asset, err := h.assetService.Patch(id, &req)
	if err != nil {
		handleError(c, err)
		return
	}

	utils.SuccessWithMessage(c, "asset updated", asset)
}

// DeleteAsset removes an asset
func (h *AssetHandler) DeleteAsset(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.assetService.Delete(id); err != nil {
		handleError(c, err)
		return
	}

	utils.SuccessWithMessage(c, "asset deleted", gin.H{"success": true})
}

// ExportAssets downloads the matching assets as CSV or JSONL
func (h *AssetHandler) ExportAssets(c *gin.Context) {
	var filter dto.AssetFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		bindError(c, err)
		return
	}

	file, err := h.exportService.Export(filter, c.DefaultQuery("format", service.ExportCSV))
	if err != nil {
		handleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	c.Data(http.StatusOK, file.ContentType, file.Content)
}
