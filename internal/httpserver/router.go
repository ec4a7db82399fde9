package httpserver

import (
	"log"

	"daddybathbomb/internal/service/banner"
	"daddybathbomb/internal/service/cart"
	"daddybathbomb/internal/service/catalog"
	"daddybathbomb/internal/service/checkout"
	"daddybathbomb/internal/service/content"
	"daddybathbomb/internal/service/customer"
	"daddybathbomb/internal/storage"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Deps carries the services the router needs.
type Deps struct {
	CatalogSvc     *catalog.Service
	BannerSvc      *banner.Service
	CartStore      *cart.Store
	CheckoutSvc    *checkout.Service
	ContentSvc     *content.Service
	CustomerSvc    *customer.Service
	Uploads        storage.Store
	MediaDir       string
	AllowedOrigins []string
}

// buildRouter wires routes for the storefront API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	corsCfg := cors.DefaultConfig()
	if len(deps.AllowedOrigins) > 0 {
		corsCfg.AllowOrigins = deps.AllowedOrigins
	} else {
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization", cartTokenHeader)
	corsCfg.ExposeHeaders = append(corsCfg.ExposeHeaders, cartTokenHeader)
	router.Use(cors.New(corsCfg))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	if deps.MediaDir != "" {
		router.Static("/media", deps.MediaDir)
	}

	h := &handlers{deps: deps, logger: logger}

	api := router.Group("/api")
	{
		api.GET("/products", h.listProducts)
		api.GET("/products/:id", h.getProduct)
		api.GET("/banners", h.bannerRotation)
		api.GET("/branding", h.branding)
		api.GET("/settings/:key", h.getSetting)

		auth := api.Group("/auth")
		{
			auth.POST("/signup", h.signup)
			auth.POST("/login", h.login)
			auth.POST("/refresh", h.refresh)
		}

		cartGroup := api.Group("/cart")
		{
			cartGroup.GET("", h.getCart)
			cartGroup.POST("/items", h.addCartItem)
			cartGroup.PATCH("/items/:productID", h.updateCartItem)
			cartGroup.DELETE("/items/:productID", h.removeCartItem)
			cartGroup.DELETE("", h.clearCart)
		}

		authed := api.Group("")
		authed.Use(h.requireAuth)
		{
			authed.POST("/checkout", h.submitCheckout)
			authed.GET("/orders", h.listOrders)
			authed.GET("/orders/:id", h.getOrder)
		}

		admin := api.Group("/admin")
		admin.Use(h.requireAuth, h.requireAdmin)
		{
			admin.GET("/banners", h.adminListBanners)
			admin.PUT("/banners", h.adminUpsertBanner)
			admin.PATCH("/banners/:order/active", h.adminSetBannerActive)
			admin.PUT("/products", h.adminUpsertProduct)
			admin.GET("/settings", h.adminListSettings)
			admin.PUT("/settings/:key", h.adminSetSetting)
			admin.PUT("/branding", h.adminUpdateBranding)
			admin.PATCH("/orders/:id/status", h.adminUpdateOrderStatus)
			admin.POST("/uploads", h.adminUpload)
		}
	}

	return router
}
