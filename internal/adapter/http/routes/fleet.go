package routes

import (
	"locamaq/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathMachines   = "/machines"
	PathContracts  = "/contracts"
	PathWorkOrders = "/workorders"
	PathFinance    = "/finance"
)

func addFleetRoutes(
	rg *gin.RouterGroup,
	machineHandler *handlers.MachineHandler,
	contractHandler *handlers.ContractHandler,
	workOrderHandler *handlers.WorkOrderHandler,
	financeHandler *handlers.FinanceHandler,
) {
	machines := rg.Group(PathMachines)
	{
		machines.POST("", machineHandler.Create)
		machines.GET("", machineHandler.List)
		machines.GET("/:id", machineHandler.GetByID)
		machines.GET("/code/:code", machineHandler.GetByCode)
		machines.PUT("/:id", machineHandler.UpdateDetails)
		machines.PATCH("/:id/hour-meter", machineHandler.UpdateHourMeter)
		machines.PATCH("/:id/location", machineHandler.ChangeLocation)
		machines.PATCH("/:id/transfer", machineHandler.Transfer)
		machines.PATCH("/:id/available", machineHandler.MarkAvailable)
		machines.PATCH("/:id/deactivate", machineHandler.Deactivate)
		machines.PATCH("/:id/reactivate", machineHandler.Reactivate)
		machines.DELETE("/:id", machineHandler.Delete)
	}

	contracts := rg.Group(PathContracts)
	{
		contracts.POST("", contractHandler.Create)
		contracts.GET("", contractHandler.List)
		contracts.GET("/:id", contractHandler.GetByID)
		contracts.PUT("/:id", contractHandler.UpdateDetails)
		contracts.PATCH("/:id/activate", contractHandler.Activate)
		contracts.PATCH("/:id/complete", contractHandler.Complete)
		contracts.PATCH("/:id/cancel", contractHandler.Cancel)
		contracts.POST("/:id/machines", contractHandler.AssignMachine)
		contracts.DELETE("/:id/machines/:machine_id", contractHandler.ReleaseMachine)
		contracts.PATCH("/:id/machines/:machine_id/worked-hours", contractHandler.LogWorkedHours)
		contracts.PATCH("/:id/machines/:machine_id/maintenance-cost", contractHandler.LogMaintenanceCost)
	}

	workOrders := rg.Group(PathWorkOrders)
	{
		workOrders.POST("", workOrderHandler.Open)
		workOrders.GET("", workOrderHandler.List)
		workOrders.GET("/:id", workOrderHandler.GetByID)
		workOrders.PATCH("/:id/start", workOrderHandler.StartProgress)
		workOrders.PATCH("/:id/wait-parts", workOrderHandler.WaitForParts)
		workOrders.PATCH("/:id/complete", workOrderHandler.Complete)
		workOrders.PATCH("/:id/cancel", workOrderHandler.Cancel)
		workOrders.DELETE("/:id", workOrderHandler.Delete)
	}

	finance := rg.Group(PathFinance)
	{
		finance.GET("/machines/:id/profitability", financeHandler.MachineProfitability)
		finance.GET("/contracts/:id/margin", financeHandler.ContractMargin)
		finance.GET("/fleet/availability", financeHandler.FleetAvailability)
	}
}
