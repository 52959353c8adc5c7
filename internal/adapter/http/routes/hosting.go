package routes

import (
	"nimbushost/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPlans      = "/plans"
	PathServices   = "/services"
	PathSubdomains = "/subdomains"
	PathWebhooks   = "/webhooks"
	PathAdmin      = "/admin"
)

func addHostingRoutes(
	rg *gin.RouterGroup,
	planHandler *handlers.PlanHandler,
	orderHandler *handlers.OrderHandler,
	panelHandler *handlers.PanelHandler,
	subdomainHandler *handlers.SubdomainHandler,
) {
	plans := rg.Group(PathPlans)
	{
		plans.GET("", planHandler.ListPlans)
		plans.GET("/:plan_id", planHandler.GetPlan)
	}

	services := rg.Group(PathServices)
	{
		services.POST("", orderHandler.PlaceOrder)
		services.GET("", orderHandler.ListServices)
		services.GET("/:service_id", orderHandler.GetService)
		services.GET("/:service_id/invoice", orderHandler.GetInvoice)
		services.POST("/:service_id/checkout", orderHandler.CreateCheckout)
		services.POST("/:service_id/panel-session", panelHandler.IssuePanelSession)
	}

	subdomains := rg.Group(PathSubdomains)
	{
		subdomains.POST("", subdomainHandler.ProvisionSubdomain)
		subdomains.GET("", subdomainHandler.ListSubdomains)
	}
}

func addWebhookRoutes(rg *gin.RouterGroup, webhookHandler *handlers.WebhookHandler) {
	webhooks := rg.Group(PathWebhooks)
	{
		webhooks.POST("/:gateway", webhookHandler.HandleGatewayEvent)
	}
}

func addAdminRoutes(rg *gin.RouterGroup, adminHandler *handlers.AdminHandler) {
	admin := rg.Group(PathAdmin)
	{
		admin.PATCH("/services/:service_id/status", adminHandler.OverrideServiceStatus)
		admin.POST("/services/:service_id/confirm-payment", adminHandler.ConfirmPayment)
	}
}
