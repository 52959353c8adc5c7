package routes

import (
	"log"
	"strconv"

	_ "nimbushost/docs" // This will be auto-generated
	"nimbushost/internal/adapter/http/handlers"
	"nimbushost/internal/adapter/persistence/repository"
	"nimbushost/internal/domain/entities"
	"nimbushost/internal/infrastructure/credentials"
	"nimbushost/internal/infrastructure/database"
	"nimbushost/internal/infrastructure/logger"
	"nimbushost/internal/infrastructure/mail"
	"nimbushost/internal/infrastructure/payments"
	"nimbushost/internal/infrastructure/provisioning"
	"nimbushost/internal/usecase"
	"nimbushost/internal/usecase/interfaces"

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
	zlog := logger.New()
	ddb := database.ConnectDynamoDB()
	rdb := database.ConnectRedis(zlog)

	serviceRepo := repository.NewServiceDynamoRepository(ddb)
	invoiceRepo := repository.NewInvoiceDynamoRepository(ddb)
	planRepo := repository.NewPlanDynamoRepository(ddb)
	userRepo := repository.NewUserDynamoRepository(ddb)
	settingsRepo := repository.NewSettingsDynamoRepository(ddb)
	subdomainRepo := repository.NewSubdomainDynamoRepository(ddb)

	stripeGateway := payments.NewStripeGateway(settingsRepo, zlog)
	mercadoPagoGateway := payments.NewMercadoPagoGateway(settingsRepo, zlog)
	transferGateway := payments.NewTransferGateway(settingsRepo, zlog)

	checkoutGateways := map[entities.PaymentMethod]interfaces.IPaymentGateway{
		entities.PaymentMethodStripe:      stripeGateway,
		entities.PaymentMethodMercadoPago: mercadoPagoGateway,
		entities.PaymentMethodTransfer:    transferGateway,
	}
	// The transfer route has no webhook; its confirmations arrive through
	// the administrative confirm-payment endpoint.
	webhookGateways := map[string]interfaces.IWebhookGateway{
		string(entities.PaymentMethodStripe):      stripeGateway,
		string(entities.PaymentMethodMercadoPago): mercadoPagoGateway,
	}

	credStore := credentials.NewRedisCredentialStore(rdb, zlog)
	mailer := mail.NewRelayMailer(zlog)
	provisioner := provisioning.NewWebhostClient(zlog)

	policy := usecase.NewFreeOrderPolicy(serviceRepo)
	orderUseCase := usecase.NewOrderUseCase(serviceRepo, invoiceRepo, planRepo, userRepo,
		settingsRepo, policy, checkoutGateways, mailer, zlog)
	reconcilerUseCase := usecase.NewPaymentReconcilerUseCase(webhookGateways, serviceRepo,
		invoiceRepo, mailer, zlog)
	subdomainUseCase := usecase.NewSubdomainUseCase(subdomainRepo, serviceRepo, settingsRepo,
		userRepo, provisioner, credStore, mailer, zlog)
	panelUseCase := usecase.NewPanelSessionUseCase(serviceRepo, credStore, zlog)
	planUseCase := usecase.NewPlanUseCase(planRepo)

	orderHandler := handlers.NewOrderHandler(orderUseCase)
	webhookHandler := handlers.NewWebhookHandler(reconcilerUseCase, zlog)
	subdomainHandler := handlers.NewSubdomainHandler(subdomainUseCase)
	panelHandler := handlers.NewPanelHandler(panelUseCase)
	planHandler := handlers.NewPlanHandler(planUseCase)
	adminHandler := handlers.NewAdminHandler(orderUseCase, reconcilerUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addHostingRoutes(v1, planHandler, orderHandler, panelHandler, subdomainHandler)
	addWebhookRoutes(v1, webhookHandler)
	addAdminRoutes(v1, adminHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
