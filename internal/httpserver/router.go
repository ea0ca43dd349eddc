package httpserver

import (
	"log"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/Dreadpool/TacticalGearForge/internal/config"
	cartsvc "github.com/Dreadpool/TacticalGearForge/internal/service/cart"
	catalogsvc "github.com/Dreadpool/TacticalGearForge/internal/service/catalog"
)

// Deps carries the services the router depends on.
type Deps struct {
	CatalogSvc *catalogsvc.Service
	CartSvc    *cartsvc.Service
}

var tagNameOnce sync.Once

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, cfg config.Config, deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	registerTagNameFunc()

	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.New(corsConfig(cfg)))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(deps.CatalogSvc))

	api := router.Group("/api")
	if cfg.AssetsDir != "" {
		api.Static("/assets", cfg.AssetsDir)
	}

	api.GET("/products", listProductsHandler(deps.CatalogSvc))
	api.GET("/products/:id", getProductHandler(deps.CatalogSvc))

	api.GET("/cart", listCartHandler(deps.CartSvc))
	api.POST("/cart", addCartItemHandler(deps.CartSvc))
	api.PUT("/cart/:id", updateCartItemHandler(deps.CartSvc))
	api.DELETE("/cart/:id", removeCartItemHandler(deps.CartSvc))
	api.DELETE("/cart", clearCartHandler(deps.CartSvc))

	return router
}

func corsConfig(cfg config.Config) cors.Config {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	if len(cfg.CORSOrigins) == 0 || (len(cfg.CORSOrigins) == 1 && cfg.CORSOrigins[0] == "*") {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.CORSOrigins
	}
	return corsCfg
}

// registerTagNameFunc makes validator report json field names in violation
// details instead of Go struct field names.
func registerTagNameFunc() {
	tagNameOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
}
