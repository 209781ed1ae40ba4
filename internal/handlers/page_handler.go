package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"water_store/internal/models"
	"water_store/internal/services"
)

type PageHandler struct {
	catalogService services.CatalogService
	orderService   services.OrderService
	contactService services.ContactService
}

func NewPageHandler(
	catalogService services.CatalogService,
	orderService services.OrderService,
	contactService services.ContactService,
) *PageHandler {
	return &PageHandler{
		catalogService: catalogService,
		orderService:   orderService,
		contactService: contactService,
	}
}

// productView pairs a product with its resolved display image for the
// templates.
type productView struct {
	models.Product
	ImageURL *string
}

func productViews(products []models.Product) []productView {
	views := make([]productView, 0, len(products))
	for i := range products {
		views = append(views, productView{
			Product:  products[i],
			ImageURL: products[i].EffectiveImageURL(),
		})
	}
	return views
}

// GET /
func (h *PageHandler) Home(c *gin.Context) {
	categories, products, err := h.catalogService.HomePage()
	if err != nil {
		log.Printf("Error loading home page: %v", err)
		h.NotFound(c)
		return
	}

	c.HTML(http.StatusOK, "home.html", gin.H{
		"Categories": categories,
		"Products":   productViews(products),
		"Flashes":    takeFlashes(c),
	})
}

// GET /services/?category=<slug>
func (h *PageHandler) Services(c *gin.Context) {
	categorySlug := c.Query("category")

	categories, activeCategory, products, err := h.catalogService.ServicesPage(categorySlug)
	if errors.Is(err, services.ErrNotFound) {
		h.NotFound(c)
		return
	}
	if err != nil {
		log.Printf("Error loading services page: %v", err)
		h.NotFound(c)
		return
	}

	seo := gin.H{"Title": "Services", "Description": "", "NoIndex": false, "Canonical": ""}
	if activeCategory != nil {
		if activeCategory.SeoTitle != "" {
			seo["Title"] = activeCategory.SeoTitle
		}
		seo["Description"] = activeCategory.SeoDescription
		seo["NoIndex"] = activeCategory.NoIndex
		seo["Canonical"] = activeCategory.CanonicalURL
	}

	states, err := h.catalogService.ActiveStates()
	if err != nil {
		log.Printf("Error loading states: %v", err)
	}

	c.HTML(http.StatusOK, "services.html", gin.H{
		"Categories":     categories,
		"ActiveCategory": activeCategory,
		"Products":       productViews(products),
		"States":         states,
		"SEO":            seo,
		"Flashes":        takeFlashes(c),
	})
}

// GET /category/<slug>/
func (h *PageHandler) CategoryDetail(c *gin.Context) {
	category, products, err := h.catalogService.CategoryDetail(c.Param("slug"))
	if err != nil {
		h.NotFound(c)
		return
	}

	title := category.SeoTitle
	if title == "" {
		title = category.Name
	}
	seo := gin.H{
		"Title":       title,
		"Description": category.SeoDescription,
		"Keywords":    category.SeoKeywords,
		"NoIndex":     category.NoIndex,
		"Canonical":   category.CanonicalURL,
	}

	c.HTML(http.StatusOK, "category_detail.html", gin.H{
		"Category": category,
		"Products": productViews(products),
		"SEO":      seo,
		"Flashes":  takeFlashes(c),
	})
}

// GET /product/<slug>/
func (h *PageHandler) ProductDetail(c *gin.Context) {
	product, err := h.catalogService.ProductDetail(c.Param("slug"))
	if err != nil {
		h.NotFound(c)
		return
	}

	title := product.SeoTitle
	if title == "" {
		title = product.Name
	}
	description := product.SeoDescription
	if description == "" && product.Description != "" {
		description = truncateDescription(product.Description, 160)
	}
	seo := gin.H{
		"Title":       title,
		"Description": description,
		"Keywords":    product.SeoKeywords,
		"NoIndex":     product.NoIndex,
		"Canonical":   product.CanonicalURL,
	}

	c.HTML(http.StatusOK, "product_detail.html", gin.H{
		"Product":  product,
		"ImageURL": product.EffectiveImageURL(),
		"Images":   product.Images,
		"SEO":      seo,
		"Flashes":  takeFlashes(c),
	})
}

// GET /contact/
func (h *PageHandler) ContactPage(c *gin.Context) {
	states, err := h.catalogService.ActiveStates()
	if err != nil {
		log.Printf("Error loading states: %v", err)
	}

	c.HTML(http.StatusOK, "contact.html", gin.H{
		"States":  states,
		"Flashes": takeFlashes(c),
	})
}

// POST /contact/submit/
func (h *PageHandler) ContactSubmit(c *gin.Context) {
	err := h.contactService.Submit(
		c.PostForm("name"),
		c.PostForm("email"),
		c.PostForm("subject"),
		c.PostForm("message"),
	)

	var validationErr *services.ValidationError
	switch {
	case err == nil:
		addFlash(c, flashSuccess, "Thanks! We received your message.")
	case errors.As(err, &validationErr):
		addFlash(c, flashError, validationErr.Message)
	default:
		log.Printf("Error storing contact message: %v", err)
		addFlash(c, flashError, "Something went wrong. Please try again.")
	}

	c.Redirect(http.StatusSeeOther, "/contact/")
}

// POST /order/create/
func (h *PageHandler) CreateOrder(c *gin.Context) {
	_, err := h.orderService.PlaceOrder(services.PlaceOrderInput{
		ProductID:       c.PostForm("product_id"),
		BranchID:        c.PostForm("branch_id"),
		Quantity:        c.PostForm("quantity"),
		CustomerName:    c.PostForm("customer_name"),
		CustomerEmail:   c.PostForm("customer_email"),
		CustomerMobile:  c.PostForm("customer_mobile"),
		DeliveryAddress: c.PostForm("delivery_address"),
		Note:            c.PostForm("note"),
	})

	// Business-rule failures surface verbatim; everything else, including
	// unknown product/branch references, is masked.
	var validationErr *services.ValidationError
	switch {
	case err == nil:
		addFlash(c, flashSuccess, "Order placed successfully!")
	case errors.As(err, &validationErr):
		addFlash(c, flashError, validationErr.Message)
	default:
		if !errors.Is(err, services.ErrNotFound) {
			log.Printf("Error placing order: %v", err)
		}
		addFlash(c, flashError, "Something went wrong while placing the order.")
	}

	c.Redirect(http.StatusSeeOther, "/services/")
}

// truncateDescription caps a fallback meta description at n characters,
// cutting on a rune boundary.
func truncateDescription(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// NotFound renders the 404 page; it also backs the router's NoRoute.
func (h *PageHandler) NotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "404.html", gin.H{
		"Flashes": map[string][]string{},
	})
}
