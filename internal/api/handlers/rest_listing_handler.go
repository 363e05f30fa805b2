package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/goldenharvestfarm/goldenharvest-backend/internal/models"
	"github.com/goldenharvestfarm/goldenharvest-backend/internal/services"
)

// RestListingHandler handles REST requests for listings, both the public
// browse endpoints and the admin management endpoints.
type RestListingHandler struct {
	listingService services.IListingService
}

// NewRestListingHandler creates a new RestListingHandler.
func NewRestListingHandler(listingService services.IListingService) *RestListingHandler {
	return &RestListingHandler{listingService: listingService}
}

// SearchListings handles GET /api/listings.
// Accepts optional animalType, minPrice, maxPrice and location query
// parameters. Only active listings are returned, newest first.
func (h *RestListingHandler) SearchListings(c *gin.Context) {
	filter := models.ListingFilter{
		AnimalType: c.Query("animalType"),
		Location:   c.Query("location"),
	}

	if minStr := c.Query("minPrice"); minStr != "" {
		if minPrice, err := strconv.ParseFloat(minStr, 64); err == nil {
			filter.MinPrice = &minPrice
		}
	}
	if maxStr := c.Query("maxPrice"); maxStr != "" {
		if maxPrice, err := strconv.ParseFloat(maxStr, 64); err == nil {
			filter.MaxPrice = &maxPrice
		}
	}

	listings, err := h.listingService.SearchListings(c.Request.Context(), filter)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch listings"})
		return
	}

	c.JSON(http.StatusOK, listings)
}

// GetListingByID handles GET /api/listings/:id. Returns the listing
// regardless of status.
func (h *RestListingHandler) GetListingByID(c *gin.Context) {
	listingID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid listing ID format"})
		return
	}

	listing, err := h.listingService.FindListingByID(c.Request.Context(), listingID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Listing not found"})
		} else {
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve listing"})
		}
		return
	}

	c.JSON(http.StatusOK, listing)
}

// CreateListing handles POST /api/admin/listings. Status and timestamps are
// server-assigned; contactMethod defaults to "Phone" when omitted.
func (h *RestListingHandler) CreateListing(c *gin.Context) {
	var input services.CreateListingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		// Validation failures surface as generic server errors, the same
		// as any other fault on this path.
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create listing: " + err.Error()})
		return
	}

	listing, err := h.listingService.CreateListing(c.Request.Context(), input)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create listing"})
		return
	}

	c.JSON(http.StatusCreated, listing)
}

// UpdateListing handles PUT /api/admin/listings/:id. Present fields fully
// overwrite; absent fields are untouched; updatedAt is always refreshed.
func (h *RestListingHandler) UpdateListing(c *gin.Context) {
	listingID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid listing ID format"})
		return
	}

	var update models.ListingUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update listing: " + err.Error()})
		return
	}

	listing, err := h.listingService.UpdateListing(c.Request.Context(), listingID, update)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Listing not found"})
		} else {
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update listing"})
		}
		return
	}

	c.JSON(http.StatusOK, listing)
}

// DeleteListing handles DELETE /api/admin/listings/:id. Hard delete.
func (h *RestListingHandler) DeleteListing(c *gin.Context) {
	listingID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid listing ID format"})
		return
	}

	if err := h.listingService.DeleteListing(c.Request.Context(), listingID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Listing not found"})
		} else {
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete listing"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Listing deleted"})
}

// SeedListings handles GET /api/seed. Replaces all listings with the fixed
// sample set. Demo/test aid only.
func (h *RestListingHandler) SeedListings(c *gin.Context) {
	listings, err := h.listingService.SeedListings(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to seed listings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Database seeded", "listings": listings})
}
