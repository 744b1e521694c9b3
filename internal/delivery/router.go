package delivery

import (
	"net/http"

	"github.com/nickey-1/cd0037-API-Development-and-Documentation-project/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// NewRouter wires middleware, error handlers and all /api routes onto a gin
// engine. Tests drive the service through this router as well.
func NewRouter(
	categoryHandler *CategoryHandler,
	questionHandler *QuestionHandler,
	quizHandler *QuizHandler,
	logger *logrus.Logger,
) *gin.Engine {
	router := gin.New()
	router.HandleMethodNotAllowed = true

	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Errorf("Recovered from panic: %v", recovered)
		ErrorResponse(c, http.StatusInternalServerError)
		c.Abort()
	}))
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.CORS())

	router.NoRoute(func(c *gin.Context) {
		ErrorResponse(c, http.StatusNotFound)
	})
	router.NoMethod(func(c *gin.Context) {
		ErrorResponse(c, http.StatusMethodNotAllowed)
	})

	api := router.Group("/api")
	categoryHandler.RegisterRoutes(api)
	questionHandler.RegisterRoutes(api)
	quizHandler.RegisterRoutes(api)

	return router
}
