package api

import (
	"moneyflow/internal/auth"       // Token issuance and verification
	"moneyflow/internal/config"     // Application configuration
	"moneyflow/internal/middleware" // Bearer-token middleware

	"github.com/gin-gonic/gin" // Gin web framework
	"gorm.io/gorm"             // GORM ORM library
)

// SetupRouter wires every route onto a gin engine. Shared between the server
// binary and the handler tests.
func SetupRouter(db *gorm.DB, cfg *config.Config, authn *auth.Authenticator) *gin.Engine {
	r := gin.Default() // Gin router instance

	// Health endpoints
	r.GET("/", RootHandler())
	r.GET("/health", HealthHandler())

	// Public auth endpoints
	r.POST("/auth/register", RegisterHandler(db, authn))
	r.POST("/auth/login", LoginHandler(db, authn))

	// Account endpoints (protected by bearer token)
	account := r.Group("/auth")
	account.Use(middleware.BearerAuthMiddleware(db, authn))
	account.GET("/me", MeHandler())
	account.POST("/change-username", ChangeUsernameHandler(db, authn))
	account.POST("/change-password", ChangePasswordHandler(db, authn))

	// CRUD and stats endpoints
	apiGroup := r.Group("/api")
	apiGroup.GET("/categories", ListCategoriesHandler(db))
	apiGroup.POST("/categories", CreateCategoryHandler(db))
	apiGroup.PATCH("/categories/:id", UpdateCategoryHandler(db))
	apiGroup.DELETE("/categories/:id", DeleteCategoryHandler(db))

	apiGroup.POST("/income", CreateIncomeHandler(db))
	apiGroup.GET("/income", ListIncomeHandler(db))
	apiGroup.PATCH("/income/:id", UpdateIncomeHandler(db))
	apiGroup.DELETE("/income/:id", DeleteIncomeHandler(db))

	apiGroup.POST("/expenses", CreateExpenseHandler(db, cfg))
	apiGroup.GET("/expenses", ListExpensesHandler(db))
	apiGroup.PATCH("/expenses/:id", UpdateExpenseHandler(db))
	apiGroup.DELETE("/expenses/:id", DeleteExpenseHandler(db))

	apiGroup.GET("/transactions", ListTransactionsHandler(db))
	apiGroup.GET("/stats/summary", SummaryHandler(db))

	return r
}
