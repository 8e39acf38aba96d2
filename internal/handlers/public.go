package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/petrobase/sitecms/internal/services"
	"github.com/petrobase/sitecms/pkg/response"
	"gorm.io/gorm"
)

// PublicHandler serves the read-only endpoints the marketing site
// renders from, plus the contact form submission. No authentication.
type PublicHandler struct {
	sectionService *services.SectionService
	productService *services.ProductService
	projectService *services.ProjectService
	careerService  *services.CareerService
	supportService *services.SupportService
	locationSvc    *services.LocationService
	contactService *services.ContactService
	settingService *services.SiteSettingService
}

func NewPublicHandler(db *gorm.DB) *PublicHandler {
	return &PublicHandler{
		sectionService: services.NewSectionService(db),
		productService: services.NewProductService(db),
		projectService: services.NewProjectService(db),
		careerService:  services.NewCareerService(db),
		supportService: services.NewSupportService(db),
		locationSvc:    services.NewLocationService(db),
		contactService: services.NewContactService(db),
		settingService: services.NewSiteSettingService(db),
	}
}

// GetPageSections returns the active sections of a page in render order
// GET /api/public/pages/:page/sections
func (h *PublicHandler) GetPageSections(c *gin.Context) {
	items, err := h.sectionService.ListPublic(c.Param("page"))
	if err != nil {
		response.ServerError(c, err.Error())
		return
	}
	response.Success(c, items)
}

// ListProducts returns active products for the catalog
// GET /api/public/products?category=valves
func (h *PublicHandler) ListProducts(c *gin.Context) {
	items, err := h.productService.ListPublic(c.Query("category"))
	if err != nil {
		response.ServerError(c, err.Error())
		return
	}
	response.Success(c, items)
}

// GetProduct returns an active product by slug
// GET /api/public/products/:slug
func (h *PublicHandler) GetProduct(c *gin.Context) {
	product, err := h.productService.GetBySlug(c.Param("slug"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, product)
}

// ListProjects returns active reference projects
// GET /api/public/projects?status=completed
func (h *PublicHandler) ListProjects(c *gin.Context) {
	items, err := h.projectService.ListPublic(c.Query("status"))
	if err != nil {
		response.ServerError(c, err.Error())
		return
	}
	response.Success(c, items)
}

// GetProject returns an active project by slug
// GET /api/public/projects/:slug
func (h *PublicHandler) GetProject(c *gin.Context) {
	project, err := h.projectService.GetBySlug(c.Param("slug"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, project)
}

// ListJobs returns open vacancies for the careers page
// GET /api/public/jobs
func (h *PublicHandler) ListJobs(c *gin.Context) {
	items, err := h.careerService.ListPublic()
	if err != nil {
		response.ServerError(c, err.Error())
		return
	}
	response.Success(c, items)
}

// ListSupportArticles returns FAQ entries for the support page
// GET /api/public/support-articles?category=delivery
func (h *PublicHandler) ListSupportArticles(c *gin.Context) {
	items, err := h.supportService.ListPublic(c.Query("category"))
	if err != nil {
		response.ServerError(c, err.Error())
		return
	}
	response.Success(c, items)
}

// ListLocations returns offices, depots and terminals
// GET /api/public/locations
func (h *PublicHandler) ListLocations(c *gin.Context) {
	items, err := h.locationSvc.ListPublic()
	if err != nil {
		response.ServerError(c, err.Error())
		return
	}
	response.Success(c, items)
}

// GetSiteInfo exposes the public subset of site settings
// GET /api/public/site-info
func (h *PublicHandler) GetSiteInfo(c *gin.Context) {
	response.Success(c, gin.H{
		"site_name":    h.settingService.GetWithDefault("site_name", ""),
		"site_tagline": h.settingService.GetWithDefault("site_tagline", ""),
	})
}

// SubmitContact accepts a public contact form submission
// POST /api/public/contact
func (h *PublicHandler) SubmitContact(c *gin.Context) {
	var req services.ContactSubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if _, err := h.contactService.Submit(&req, c.ClientIP()); err != nil {
		response.ServerError(c, err.Error())
		return
	}

	response.Created(c, gin.H{"message": "thank you, we will get back to you shortly"})
}
