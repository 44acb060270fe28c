package routes

import (
	"quotechat/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathChat       = "/chat"
	PathQuotations = "/quotations"
	PathCustomer   = "/customer"
)

func addQuotationRoutes(rg *gin.RouterGroup, chatHandler *handlers.ChatHandler, quotationHandler *handlers.QuotationHandler, exportHandler *handlers.ExportHandler) {
	chat := rg.Group(PathChat)
	{
		chat.POST("", chatHandler.Chat)
		chat.POST("/reset", chatHandler.Reset)
	}

	quotations := rg.Group(PathQuotations)
	{
		quotations.GET("", quotationHandler.List)
		quotations.PATCH("/confirm", quotationHandler.Confirm)
		quotations.PATCH("/dispute", quotationHandler.Dispute)
		quotations.GET("/download", exportHandler.Download)
	}

	customer := rg.Group(PathCustomer)
	{
		customer.GET("", exportHandler.GetCustomer)
		customer.PUT("", exportHandler.SaveCustomer)
	}
}
