package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"water_store/internal/admin"
	"water_store/internal/models"
	"water_store/internal/services"
)

// AdminHandler implements the back-office JSON API. Which operations exist
// per entity is declared once in Registry(); orders get no delete handler
// and contact messages get no create handler by construction.
type AdminHandler struct {
	adminService   services.AdminService
	orderService   services.OrderService
	contactService services.ContactService
}

func NewAdminHandler(
	adminService services.AdminService,
	orderService services.OrderService,
	contactService services.ContactService,
) *AdminHandler {
	return &AdminHandler{
		adminService:   adminService,
		orderService:   orderService,
		contactService: contactService,
	}
}

// Registry declares every back-office screen and its allowed operations.
func (h *AdminHandler) Registry() *admin.Registry {
	return admin.NewRegistry(
		admin.Resource{
			Name:   "states",
			List:   h.ListStates,
			Get:    h.GetState,
			Create: h.CreateState,
			Update: h.UpdateState,
			Delete: h.DeleteState,
		},
		admin.Resource{
			Name:   "branches",
			List:   h.ListBranches,
			Get:    h.GetBranch,
			Create: h.CreateBranch,
			Update: h.UpdateBranch,
			Delete: h.DeleteBranch,
		},
		admin.Resource{
			Name:   "categories",
			List:   h.ListCategories,
			Get:    h.GetCategory,
			Create: h.CreateCategory,
			Update: h.UpdateCategory,
			Delete: h.DeleteCategory,
		},
		admin.Resource{
			Name:   "products",
			List:   h.ListProducts,
			Get:    h.GetProduct,
			Create: h.CreateProduct,
			Update: h.UpdateProduct,
			Delete: h.DeleteProduct,
			BulkActions: []admin.BulkAction{
				{Name: "mark-active", SuperOnly: true, Handler: h.markProductsActive(true)},
				{Name: "mark-inactive", SuperOnly: true, Handler: h.markProductsActive(false)},
			},
		},
		admin.Resource{
			Name:   "product-images",
			Create: h.AddProductImage,
			Delete: h.DeleteProductImage,
		},
		admin.Resource{
			// Orders are never deleted through the back office, only moved
			// between statuses.
			Name:   "orders",
			List:   h.ListOrders,
			Get:    h.GetOrder,
			Update: h.UpdateOrderStatus,
			BulkActions: []admin.BulkAction{
				{Name: "bulk-status", Handler: h.BulkOrderStatus},
			},
		},
		admin.Resource{
			// Contact messages come only from the site form.
			Name: "contact-messages",
			List: h.ListContactMessages,
			Get:  h.GetContactMessage,
		},
	)
}

func (h *AdminHandler) respondError(c *gin.Context, err error) {
	var validationErr *services.ValidationError
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message})
	case errors.Is(err, services.ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	default:
		log.Printf("Admin API error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
	}
}

func pagination(c *gin.Context) (int, int) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit < 1 || limit > 200 {
		limit = 50
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}
	return limit, offset
}

func uintParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}

// States

type statePayload struct {
	Name     *string `json:"name"`
	Code     *string `json:"code"`
	IsActive *bool   `json:"is_active"`
}

func (h *AdminHandler) ListStates(c *gin.Context) {
	limit, offset := pagination(c)
	states, err := h.adminService.ListStates(limit, offset)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, states)
}

func (h *AdminHandler) GetState(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	state, err := h.adminService.GetState(id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

func (h *AdminHandler) CreateState(c *gin.Context) {
	var req statePayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	if req.Name == nil || strings.TrimSpace(*req.Name) == "" ||
		req.Code == nil || strings.TrimSpace(*req.Code) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name and code are required"})
		return
	}

	state := &models.State{
		Name:     strings.TrimSpace(*req.Name),
		Code:     strings.TrimSpace(*req.Code),
		IsActive: true,
	}
	if req.IsActive != nil {
		state.IsActive = *req.IsActive
	}
	if err := h.adminService.CreateState(state); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, state)
}

func (h *AdminHandler) UpdateState(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	state, err := h.adminService.GetState(id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var req statePayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	if req.Name != nil {
		state.Name = strings.TrimSpace(*req.Name)
	}
	if req.Code != nil {
		state.Code = strings.TrimSpace(*req.Code)
	}
	if req.IsActive != nil {
		state.IsActive = *req.IsActive
	}
	if err := h.adminService.UpdateState(state); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

func (h *AdminHandler) DeleteState(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	if err := h.adminService.DeleteState(id); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Branches

type branchPayload struct {
	StateID  *uint   `json:"state_id"`
	Name     *string `json:"name"`
	Address  *string `json:"address"`
	Phone    *string `json:"phone"`
	IsActive *bool   `json:"is_active"`
}

func (h *AdminHandler) ListBranches(c *gin.Context) {
	limit, offset := pagination(c)
	branches, err := h.adminService.ListBranches(limit, offset)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, branches)
}

func (h *AdminHandler) GetBranch(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	branch, err := h.adminService.GetBranch(id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, branch)
}

func (h *AdminHandler) CreateBranch(c *gin.Context) {
	var req branchPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	if req.StateID == nil || req.Name == nil || strings.TrimSpace(*req.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "State and name are required"})
		return
	}

	branch := &models.Branch{
		StateID:  *req.StateID,
		Name:     strings.TrimSpace(*req.Name),
		IsActive: true,
	}
	if req.Address != nil {
		branch.Address = strings.TrimSpace(*req.Address)
	}
	if req.Phone != nil {
		branch.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.IsActive != nil {
		branch.IsActive = *req.IsActive
	}
	if err := h.adminService.CreateBranch(branch); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, branch)
}

func (h *AdminHandler) UpdateBranch(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	branch, err := h.adminService.GetBranch(id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var req branchPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	if req.StateID != nil {
		branch.StateID = *req.StateID
	}
	if req.Name != nil {
		branch.Name = strings.TrimSpace(*req.Name)
	}
	if req.Address != nil {
		branch.Address = strings.TrimSpace(*req.Address)
	}
	if req.Phone != nil {
		branch.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.IsActive != nil {
		branch.IsActive = *req.IsActive
	}
	if err := h.adminService.UpdateBranch(branch); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, branch)
}

func (h *AdminHandler) DeleteBranch(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	if err := h.adminService.DeleteBranch(id); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Categories

type categoryPayload struct {
	Name           *string `json:"name"`
	SortOrder      *int    `json:"sort_order"`
	IsActive       *bool   `json:"is_active"`
	Slug           *string `json:"slug"`
	SeoTitle       *string `json:"seo_title"`
	SeoDescription *string `json:"seo_description"`
	SeoKeywords    *string `json:"seo_keywords"`
	CanonicalURL   *string `json:"canonical_url"`
	NoIndex        *bool   `json:"no_index"`
}

func (p *categoryPayload) apply(category *models.Category) {
	if p.Name != nil {
		category.Name = strings.TrimSpace(*p.Name)
	}
	if p.SortOrder != nil {
		category.SortOrder = *p.SortOrder
	}
	if p.IsActive != nil {
		category.IsActive = *p.IsActive
	}
	if p.Slug != nil {
		category.Slug = strings.TrimSpace(*p.Slug)
	}
	if p.SeoTitle != nil {
		category.SeoTitle = *p.SeoTitle
	}
	if p.SeoDescription != nil {
		category.SeoDescription = *p.SeoDescription
	}
	if p.SeoKeywords != nil {
		category.SeoKeywords = *p.SeoKeywords
	}
	if p.CanonicalURL != nil {
		category.CanonicalURL = *p.CanonicalURL
	}
	if p.NoIndex != nil {
		category.NoIndex = *p.NoIndex
	}
}

func (h *AdminHandler) ListCategories(c *gin.Context) {
	limit, offset := pagination(c)
	categories, err := h.adminService.ListCategories(limit, offset)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *AdminHandler) GetCategory(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	category, err := h.adminService.GetCategory(id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *AdminHandler) CreateCategory(c *gin.Context) {
	var req categoryPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	if req.Name == nil || strings.TrimSpace(*req.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
		return
	}

	category := &models.Category{IsActive: true}
	req.apply(category)
	if err := h.adminService.CreateCategory(category); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

func (h *AdminHandler) UpdateCategory(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	category, err := h.adminService.GetCategory(id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var req categoryPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	req.apply(category)
	if err := h.adminService.UpdateCategory(category); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *AdminHandler) DeleteCategory(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	if err := h.adminService.DeleteCategory(id); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Products

type productPayload struct {
	CategoryID     *uint   `json:"category_id"`
	Name           *string `json:"name"`
	SKU            *string `json:"sku"`
	BadgeText      *string `json:"badge_text"`
	Description    *string `json:"description"`
	Price          *string `json:"price"`
	TrackInventory *bool   `json:"track_inventory"`
	StockQty       *int    `json:"stock_qty"`
	SortOrder      *int    `json:"sort_order"`
	IsActive       *bool   `json:"is_active"`
	Slug           *string `json:"slug"`
	SeoTitle       *string `json:"seo_title"`
	SeoDescription *string `json:"seo_description"`
	SeoKeywords    *string `json:"seo_keywords"`
	CanonicalURL   *string `json:"canonical_url"`
	NoIndex        *bool   `json:"no_index"`
}

func (p *productPayload) apply(product *models.Product) error {
	if p.CategoryID != nil {
		product.CategoryID = *p.CategoryID
	}
	if p.Name != nil {
		product.Name = strings.TrimSpace(*p.Name)
	}
	if p.SKU != nil {
		product.SKU = strings.TrimSpace(*p.SKU)
	}
	if p.BadgeText != nil {
		product.BadgeText = *p.BadgeText
	}
	if p.Description != nil {
		product.Description = *p.Description
	}
	if p.Price != nil {
		price, err := decimal.NewFromString(strings.TrimSpace(*p.Price))
		if err != nil || price.IsNegative() {
			return &services.ValidationError{Message: "Price must be a non-negative decimal"}
		}
		product.Price = price
	}
	if p.TrackInventory != nil {
		product.TrackInventory = *p.TrackInventory
	}
	if p.StockQty != nil {
		if *p.StockQty < 0 {
			return &services.ValidationError{Message: "Stock quantity must not be negative"}
		}
		product.StockQty = *p.StockQty
	}
	if p.SortOrder != nil {
		product.SortOrder = *p.SortOrder
	}
	if p.IsActive != nil {
		product.IsActive = *p.IsActive
	}
	if p.Slug != nil {
		product.Slug = strings.TrimSpace(*p.Slug)
	}
	if p.SeoTitle != nil {
		product.SeoTitle = *p.SeoTitle
	}
	if p.SeoDescription != nil {
		product.SeoDescription = *p.SeoDescription
	}
	if p.SeoKeywords != nil {
		product.SeoKeywords = *p.SeoKeywords
	}
	if p.CanonicalURL != nil {
		product.CanonicalURL = *p.CanonicalURL
	}
	if p.NoIndex != nil {
		product.NoIndex = *p.NoIndex
	}
	return nil
}

func (h *AdminHandler) ListProducts(c *gin.Context) {
	limit, offset := pagination(c)
	products, err := h.adminService.ListProducts(limit, offset)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *AdminHandler) GetProduct(c *gin.Context) {
	product, err := h.adminService.GetProduct(c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *AdminHandler) CreateProduct(c *gin.Context) {
	var req productPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	if req.CategoryID == nil || req.Name == nil || strings.TrimSpace(*req.Name) == "" ||
		req.SKU == nil || strings.TrimSpace(*req.SKU) == "" || req.Price == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Category, name, sku and price are required"})
		return
	}

	product := &models.Product{IsActive: true}
	if err := req.apply(product); err != nil {
		h.respondError(c, err)
		return
	}
	if err := h.adminService.CreateProduct(product); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

func (h *AdminHandler) UpdateProduct(c *gin.Context) {
	product, err := h.adminService.GetProduct(c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	var req productPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	if err := req.apply(product); err != nil {
		h.respondError(c, err)
		return
	}
	if err := h.adminService.UpdateProduct(product); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *AdminHandler) DeleteProduct(c *gin.Context) {
	if err := h.adminService.DeleteProduct(c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AdminHandler) markProductsActive(active bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			IDs []string `json:"ids"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
			return
		}

		affected, err := h.adminService.BulkSetProductsActive(req.IDs, active)
		if err != nil {
			h.respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"updated": affected})
	}
}

// Product images

func (h *AdminHandler) AddProductImage(c *gin.Context) {
	var req struct {
		ProductID string `json:"product_id"`
		ImageURL  string `json:"image_url"`
		AltText   string `json:"alt_text"`
		IsPrimary bool   `json:"is_primary"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	productID, err := uuid.Parse(strings.TrimSpace(req.ProductID))
	if err != nil || strings.TrimSpace(req.ImageURL) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Product id and image URL are required"})
		return
	}

	image := &models.ProductImage{
		ProductID: productID,
		ImageURL:  strings.TrimSpace(req.ImageURL),
		AltText:   req.AltText,
		IsPrimary: req.IsPrimary,
	}
	if err := h.adminService.AddProductImage(image); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, image)
}

func (h *AdminHandler) DeleteProductImage(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	if err := h.adminService.DeleteProductImage(id); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Orders

func (h *AdminHandler) ListOrders(c *gin.Context) {
	limit, offset := pagination(c)
	orders, err := h.orderService.GetAllOrders(limit, offset)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *AdminHandler) GetOrder(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return
	}
	order, err := h.orderService.GetOrderByID(id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// UpdateOrderStatus moves a single order to a new status. Monetary fields
// are never writable.
func (h *AdminHandler) UpdateOrderStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	affected, err := h.orderService.BulkUpdateStatus([]string{c.Param("id")}, req.Status)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": affected})
}

// POST /api/admin/orders/bulk-status
func (h *AdminHandler) BulkOrderStatus(c *gin.Context) {
	var req struct {
		IDs    []string `json:"ids"`
		Status string   `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	affected, err := h.orderService.BulkUpdateStatus(req.IDs, req.Status)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": affected})
}

// Contact messages (read-only through this interface)

func (h *AdminHandler) ListContactMessages(c *gin.Context) {
	limit, offset := pagination(c)
	messages, err := h.contactService.GetAllMessages(limit, offset)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, messages)
}

func (h *AdminHandler) GetContactMessage(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	message, err := h.contactService.GetMessageByID(id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, message)
}
