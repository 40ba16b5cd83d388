package handlers

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"jobboard/internal/auth"
	"jobboard/internal/models"
)

// Handlers bundles every route handler for registration.
type Handlers struct {
	Auth           *AuthHandler
	Users          *UserHandler
	Jobs           *JobHandler
	Applications   *ApplicationHandler
	Reports        *ReportHandler
	Requests       *CompanyRequestHandler
	Profiles       *CompanyProfileHandler
	Uploads        *UploadHandler
	Tokens         *auth.TokenIssuer
	AllowedOrigins []string
}

func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// NewRouter wires middleware and the full route table.
func NewRouter(h *Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger())

	config := cors.DefaultConfig()
	if len(h.AllowedOrigins) > 0 {
		config.AllowOrigins = h.AllowedOrigins
	} else {
		config.AllowAllOrigins = true
	}
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(config))

	required := auth.Required(h.Tokens)
	optional := auth.Optional(h.Tokens)
	admin := auth.RequireRoles(models.RoleAdmin)
	companyOrAdmin := auth.RequireRoles(models.RoleCompany, models.RoleAdmin)
	jobSeeker := auth.RequireRoles(models.RoleJobSeeker)

	api := r.Group("/api/v1")
	{
		api.GET("/health", HealthCheck)

		api.POST("/auth/register", h.Auth.Register)
		api.POST("/auth/login", h.Auth.Login)
		api.GET("/auth/me", required, h.Auth.Me)

		// Job routes. "pending" and "mine" must register before ":id".
		api.GET("/jobs", h.Jobs.List)
		api.GET("/jobs/pending", required, admin, h.Jobs.ListPending)
		api.GET("/jobs/mine", required, companyOrAdmin, h.Jobs.ListMine)
		api.GET("/jobs/:id", optional, h.Jobs.GetByID)
		api.POST("/jobs", required, auth.RequireRoles(models.RoleCompany), h.Jobs.Create)
		api.PATCH("/jobs/:id", required, companyOrAdmin, h.Jobs.Update)
		api.DELETE("/jobs/:id", required, companyOrAdmin, h.Jobs.Archive)
		api.PATCH("/jobs/:id/moderate", required, admin, h.Jobs.Moderate)

		api.POST("/jobs/:id/applications", required, jobSeeker, h.Applications.Apply)
		api.GET("/jobs/:id/applications", required, companyOrAdmin, h.Applications.ListForJob)
		api.GET("/applications/me", required, jobSeeker, h.Applications.ListMine)
		api.PATCH("/applications/:id", required, companyOrAdmin, h.Applications.UpdateStatus)

		api.POST("/reports", required, h.Reports.Create)
		api.GET("/reports", required, admin, h.Reports.List)
		api.GET("/reports/:id", required, admin, h.Reports.GetByID)
		api.PATCH("/reports/:id", required, admin, h.Reports.UpdateStatus)

		api.POST("/company-requests", required, jobSeeker, h.Requests.Create)
		api.GET("/company-requests", required, admin, h.Requests.List)
		api.GET("/company-requests/:id", required, admin, h.Requests.GetByID)
		api.PATCH("/company-requests/:id", required, admin, h.Requests.Decide)

		api.GET("/company-profiles/me", required, companyOrAdmin, h.Profiles.GetMine)
		api.PATCH("/company-profiles/me", required, companyOrAdmin, h.Profiles.UpdateMine)
		api.GET("/company-profiles/:userId", required, h.Profiles.GetPublic)

		api.POST("/upload", required, h.Uploads.Upload)
		api.GET("/upload/meta/:file", required, h.Uploads.Meta)
		api.GET("/upload/:file", required, h.Uploads.Download)

		api.GET("/users/me", required, h.Users.GetMe)
		api.PATCH("/users/me", required, h.Users.UpdateMe)
		api.POST("/users/change-password", required, h.Users.ChangePassword)
		api.GET("/users", required, admin, h.Users.List)
		api.PATCH("/users/:id/roles", required, admin, h.Users.UpdateRoles)
		api.PATCH("/users/:id/lock", required, admin, h.Users.SetLock)
	}

	return r
}
