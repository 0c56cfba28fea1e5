package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lenslink/lenslink/internal/auth"
	"github.com/lenslink/lenslink/internal/tags"
	"github.com/lenslink/lenslink/model"
)

// CreateCreatorHandler creates a creator profile owned by the caller.
// Request Body: model.Creator (ID, UserID, and timestamps are server-set)
func (api *API) CreateCreatorHandler(c *gin.Context) {
	claims, ok := callerClaims(c)
	if !ok {
		SendUnauthorizedError(c, "Authentication required")
		return
	}
	if claims.Role != auth.RoleCreator {
		SendForbiddenError(c, "Only creators can publish a profile")
		return
	}

	var creator model.Creator
	if err := c.ShouldBindJSON(&creator); err != nil {
		SendInvalidJSONError(c, err)
		return
	}

	if result := ValidateCreatorProfile(&creator); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	creator.ID = ""
	creator.UserID = claims.UserID
	creator.Styles = tags.NormalizeAll(creator.Styles)

	created, err := api.store.CreateCreator(c.Request.Context(), creator)
	if err != nil {
		SendStoreError(c, "creator creation", err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// GetCreatorHandler retrieves a creator profile by ID.
func (api *API) GetCreatorHandler(c *gin.Context) {
	creatorID := c.Param("creatorId")

	creator, err := api.store.GetCreator(c.Request.Context(), creatorID)
	if err != nil {
		SendStoreError(c, "creator lookup", err)
		return
	}

	c.JSON(http.StatusOK, creator)
}

// ListCreatorsHandler lists creator profiles with pagination.
func (api *API) ListCreatorsHandler(c *gin.Context) {
	var query struct {
		Page     int `form:"page"`
		PageSize int `form:"page_size"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		SendError(c, http.StatusBadRequest, ErrorCodeValidationFailed,
			"Invalid query parameters: "+err.Error())
		return
	}

	page, pageSize, result := ValidatePagination(query.Page, query.PageSize)
	if result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	creators, total, err := api.store.ListCreators(c.Request.Context(), pageSize, (page-1)*pageSize)
	if err != nil {
		SendStoreError(c, "creator listing", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"creators":  creators,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
		"pages":     (total + pageSize - 1) / pageSize,
	})
}

// UpdateCreatorHandler updates the caller's own creator profile.
func (api *API) UpdateCreatorHandler(c *gin.Context) {
	creatorID := c.Param("creatorId")

	existing, ok := api.loadOwnedCreator(c, creatorID)
	if !ok {
		return
	}

	var update model.Creator
	if err := c.ShouldBindJSON(&update); err != nil {
		SendInvalidJSONError(c, err)
		return
	}

	if result := ValidateCreatorProfile(&update); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	update.ID = existing.ID
	update.UserID = existing.UserID
	update.Styles = tags.NormalizeAll(update.Styles)

	updated, err := api.store.UpdateCreator(c.Request.Context(), update)
	if err != nil {
		SendStoreError(c, "creator update", err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteCreatorHandler deletes the caller's own creator profile.
func (api *API) DeleteCreatorHandler(c *gin.Context) {
	creatorID := c.Param("creatorId")

	if _, ok := api.loadOwnedCreator(c, creatorID); !ok {
		return
	}

	if err := api.store.DeleteCreator(c.Request.Context(), creatorID); err != nil {
		SendStoreError(c, "creator deletion", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Creator '" + creatorID + "' deleted"})
}

// AddPortfolioImageHandler appends an image to the caller's portfolio.
func (api *API) AddPortfolioImageHandler(c *gin.Context) {
	creatorID := c.Param("creatorId")

	if _, ok := api.loadOwnedCreator(c, creatorID); !ok {
		return
	}

	var img model.PortfolioImage
	if err := c.ShouldBindJSON(&img); err != nil {
		SendInvalidJSONError(c, err)
		return
	}
	if img.URL == "" {
		result := &ValidationResult{}
		result.AddError("url", "Image URL is required")
		SendValidationError(c, result)
		return
	}

	img.ID = ""
	img.CreatorID = creatorID
	img.Tags = tags.NormalizeAll(img.Tags)

	created, err := api.store.AddPortfolioImage(c.Request.Context(), img)
	if err != nil {
		SendStoreError(c, "portfolio update", err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// ListPortfolioHandler lists a creator's portfolio images.
func (api *API) ListPortfolioHandler(c *gin.Context) {
	creatorID := c.Param("creatorId")

	if _, err := api.store.GetCreator(c.Request.Context(), creatorID); err != nil {
		SendStoreError(c, "creator lookup", err)
		return
	}

	images, err := api.store.ListPortfolioImages(c.Request.Context(), creatorID)
	if err != nil {
		SendStoreError(c, "portfolio listing", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"images": images, "total": len(images)})
}

// AddProjectHandler publishes a project on the caller's profile.
func (api *API) AddProjectHandler(c *gin.Context) {
	creatorID := c.Param("creatorId")

	if _, ok := api.loadOwnedCreator(c, creatorID); !ok {
		return
	}

	var project model.Project
	if err := c.ShouldBindJSON(&project); err != nil {
		SendInvalidJSONError(c, err)
		return
	}
	if project.Title == "" {
		result := &ValidationResult{}
		result.AddError("title", "Project title is required")
		SendValidationError(c, result)
		return
	}

	project.ID = ""
	project.CreatorID = creatorID
	project.Tags = tags.NormalizeAll(project.Tags)

	created, err := api.store.AddProject(c.Request.Context(), project)
	if err != nil {
		SendStoreError(c, "project creation", err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// ListProjectsHandler lists a creator's projects.
func (api *API) ListProjectsHandler(c *gin.Context) {
	creatorID := c.Param("creatorId")

	if _, err := api.store.GetCreator(c.Request.Context(), creatorID); err != nil {
		SendStoreError(c, "creator lookup", err)
		return
	}

	projects, err := api.store.ListProjects(c.Request.Context(), creatorID)
	if err != nil {
		SendStoreError(c, "project listing", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"projects": projects, "total": len(projects)})
}

// AddAvailabilityHandler records a bookable window on the caller's profile.
func (api *API) AddAvailabilityHandler(c *gin.Context) {
	creatorID := c.Param("creatorId")

	if _, ok := api.loadOwnedCreator(c, creatorID); !ok {
		return
	}

	var block model.AvailabilityBlock
	if err := c.ShouldBindJSON(&block); err != nil {
		SendInvalidJSONError(c, err)
		return
	}
	if !block.End.After(block.Start) {
		result := &ValidationResult{}
		result.AddError("end", "Availability end must be after start")
		SendValidationError(c, result)
		return
	}

	block.ID = ""
	block.CreatorID = creatorID

	created, err := api.store.AddAvailability(c.Request.Context(), block)
	if err != nil {
		SendStoreError(c, "availability update", err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// ListAvailabilityHandler lists a creator's availability blocks.
func (api *API) ListAvailabilityHandler(c *gin.Context) {
	creatorID := c.Param("creatorId")

	if _, err := api.store.GetCreator(c.Request.Context(), creatorID); err != nil {
		SendStoreError(c, "creator lookup", err)
		return
	}

	blocks, err := api.store.ListAvailability(c.Request.Context(), creatorID)
	if err != nil {
		SendStoreError(c, "availability listing", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"availability": blocks, "total": len(blocks)})
}

// loadOwnedCreator fetches the creator and verifies the caller owns it.
// It writes the error response itself when the check fails.
func (api *API) loadOwnedCreator(c *gin.Context, creatorID string) (model.Creator, bool) {
	claims, ok := callerClaims(c)
	if !ok {
		SendUnauthorizedError(c, "Authentication required")
		return model.Creator{}, false
	}

	creator, err := api.store.GetCreator(c.Request.Context(), creatorID)
	if err != nil {
		SendStoreError(c, "creator lookup", err)
		return model.Creator{}, false
	}
	if creator.UserID != claims.UserID {
		SendForbiddenError(c, "Only the profile owner can modify it")
		return model.Creator{}, false
	}

	return creator, true
}
