package routes

import (
	"log"
	"os"
	"strconv"

	_ "quotechat/docs" // This will be auto-generated
	"quotechat/internal/adapter/http/handlers"
	repository2 "quotechat/internal/adapter/persistence/repository"
	"quotechat/internal/infrastructure/chatbackend"
	"quotechat/internal/infrastructure/database"
	"quotechat/internal/infrastructure/pdf"
	"quotechat/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	sessionRepo := repository2.NewSessionMemoryRepository()
	customerRepo := repository2.NewCustomerInfoDynamoRepository(ddb)

	gateway, err := chatbackend.NewClient(os.Getenv("CHAT_BACKEND_URL"))
	if err != nil {
		log.Fatalf("Chat backend not configured: %v", err)
	}

	chatUseCase := usecase.NewChatUseCase(sessionRepo, gateway)
	quotationUseCase := usecase.NewQuotationUseCase(sessionRepo)
	exportUseCase := usecase.NewExportUseCase(sessionRepo, customerRepo, pdf.NewRenderer())

	chatHandler := handlers.NewChatHandler(chatUseCase)
	quotationHandler := handlers.NewQuotationHandler(quotationUseCase)
	exportHandler := handlers.NewExportHandler(exportUseCase)

	// Public routes
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQuotationRoutes(v1, chatHandler, quotationHandler, exportHandler)
}

func setMiddlewares() {
	router.Use(cors.Default())
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
