package routes

import (
	"strconv"

	_ "locamaq/docs" // This will be auto-generated
	"locamaq/internal/adapter/http/handlers"
	repository2 "locamaq/internal/adapter/persistence/repository"
	"locamaq/internal/infrastructure/database"
	"locamaq/internal/infrastructure/logger"
	"locamaq/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
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
		logger.L().Fatal("failed to start the application", zap.Error(err))
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	machineRepo := repository2.NewMachineDynamoRepository(ddb)
	contractRepo := repository2.NewContractDynamoRepository(ddb)
	workOrderRepo := repository2.NewWorkOrderDynamoRepository(ddb)
	userRepo := repository2.NewUserDynamoRepository(ddb)

	machineUseCase := usecase.NewMachineUseCase(machineRepo)
	contractUseCase := usecase.NewContractUseCase(contractRepo, machineRepo)
	workOrderUseCase := usecase.NewWorkOrderUseCase(workOrderRepo, machineRepo)
	financeUseCase := usecase.NewFinanceUseCase(machineRepo, contractRepo)
	userUseCase := usecase.NewUserUseCase(userRepo)

	machineHandler := handlers.NewMachineHandler(machineUseCase)
	contractHandler := handlers.NewContractHandler(contractUseCase)
	workOrderHandler := handlers.NewWorkOrderHandler(workOrderUseCase)
	financeHandler := handlers.NewFinanceHandler(financeUseCase)
	userHandler := handlers.NewUserHandler(userUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addFleetRoutes(v1, machineHandler, contractHandler, workOrderHandler, financeHandler)
	addUserRoutes(v1, userHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.L().Error("recovered from panic", zap.Any("panic", recovered))
		c.AbortWithStatus(500)
	}))
}
