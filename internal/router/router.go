package router

import (
	"github.com/gin-gonic/gin"

	"fisco/internal/handler"
	"fisco/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	corsOrigins []string,
	fiscalH *handler.FiscalHandler,
	identifierH *handler.IdentifierHandler,
	municipalityH *handler.MunicipalityHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(corsOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	// Document assembly and validation
	documents := v1.Group("/documents")
	documents.POST("/validate", fiscalH.ValidateDocument)

	// Tax computation
	taxes := v1.Group("/taxes")
	taxes.POST("/compute", fiscalH.ComputeTaxes)

	// Lifecycle rules
	lc := v1.Group("/lifecycle")
	lc.POST("/transitions/check", fiscalH.CheckTransition)
	lc.GET("/cancellation/window", fiscalH.CancellationWindow)
	lc.POST("/cancellation/check", fiscalH.CheckCancellation)
	lc.GET("/corrections/fields", fiscalH.CorrectableFields)
	lc.POST("/corrections/check", fiscalH.CheckCorrection)
	lc.POST("/number-voids/check", fiscalH.CheckNumberVoid)

	// Manifest reconciliation
	manifests := v1.Group("/manifests")
	manifests.POST("/reconcile", fiscalH.ReconcileManifest)

	// Identifier validation and formatting
	identifiers := v1.Group("/identifiers")
	identifiers.POST("/validate", identifierH.Validate)
	identifiers.POST("/format", identifierH.Format)

	// Municipality reference table
	municipalities := v1.Group("/municipalities")
	municipalities.POST("", municipalityH.Register)
	municipalities.GET("/lookup", municipalityH.Lookup)

	return r
}
