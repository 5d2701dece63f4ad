package router

import (
	"github.com/labstack/echo/v4"

	"gardenplan/pkg/middleware"
)

type gardenCtrl interface {
	Create(echo.Context) error
	List(echo.Context) error
	Get(echo.Context) error
	Delete(echo.Context) error
}

type bedCtrl interface {
	Create(echo.Context) error
	List(echo.Context) error
	Get(echo.Context) error
	Update(echo.Context) error
	PatchLayout(echo.Context) error
	Delete(echo.Context) error
}

type seedCtrl interface {
	Create(echo.Context) error
	List(echo.Context) error
	Get(echo.Context) error
	Update(echo.Context) error
	Delete(echo.Context) error
	Import(echo.Context) error
}

type plantingCtrl interface {
	Create(echo.Context) error
	List(echo.Context) error
	Get(echo.Context) error
	RecordActual(echo.Context) error
	Move(echo.Context) error
	Slots(echo.Context) error
	Conflicts(echo.Context) error
	FindSlot(echo.Context) error
	Delete(echo.Context) error
}

type taskCtrl interface {
	List(echo.Context) error
	Patch(echo.Context) error
}

type gardenTaskCtrl interface {
	Create(echo.Context) error
	List(echo.Context) error
	Patch(echo.Context) error
	Delete(echo.Context) error
}

type wishlistCtrl interface {
	Create(echo.Context) error
	List(echo.Context) error
	Patch(echo.Context) error
	Delete(echo.Context) error
	ImportURL(echo.Context) error
}

type digestCtrl interface {
	Weekly(echo.Context) error
	RemindTask(echo.Context) error
}

type authCtrl interface {
	DevLogin(echo.Context) error
	WhoAmI(echo.Context) error
}

type healthCtrl interface {
	Health(echo.Context) error
}

func New(
	e *echo.Echo,
	gardens gardenCtrl,
	beds bedCtrl,
	seeds seedCtrl,
	plantings plantingCtrl,
	tasks taskCtrl,
	gardenTasks gardenTaskCtrl,
	wishlist wishlistCtrl,
	dig digestCtrl,
	auth authCtrl,
	health healthCtrl,
) *echo.Echo {
	e.Use(middleware.DevLogin())
	api := e.Group("")

	api.GET("/whoami", auth.WhoAmI)
	api.GET("/devlogin", auth.DevLogin)
	e.GET("/health", health.Health)

	api.POST("/gardens", gardens.Create)
	api.GET("/gardens", gardens.List)
	api.GET("/gardens/:id", gardens.Get)
	api.DELETE("/gardens/:id", gardens.Delete)

	api.POST("/gardens/:id/beds", beds.Create)
	api.GET("/gardens/:id/beds", beds.List)
	api.GET("/beds/:bed_id", beds.Get)
	api.PUT("/beds/:bed_id", beds.Update)
	api.PATCH("/beds/:bed_id/layout", beds.PatchLayout)
	api.DELETE("/beds/:bed_id", beds.Delete)

	api.POST("/seeds", seeds.Create)
	api.GET("/seeds", seeds.List)
	api.POST("/seeds/import", seeds.Import)
	api.GET("/seeds/:id", seeds.Get)
	api.PUT("/seeds/:id", seeds.Update)
	api.DELETE("/seeds/:id", seeds.Delete)

	api.POST("/gardens/:id/plantings", plantings.Create)
	api.GET("/gardens/:id/plantings", plantings.List)
	api.GET("/gardens/:id/conflicts", plantings.Conflicts)
	api.GET("/plantings/:planting_id", plantings.Get)
	api.POST("/plantings/:planting_id/actual", plantings.RecordActual)
	api.POST("/plantings/:planting_id/move", plantings.Move)
	api.GET("/plantings/:planting_id/slots", plantings.Slots)
	api.POST("/plantings/:planting_id/find-slot", plantings.FindSlot)
	api.DELETE("/plantings/:planting_id", plantings.Delete)

	api.GET("/gardens/:id/tasks", tasks.List)
	api.PATCH("/tasks/:task_id", tasks.Patch)
	api.POST("/tasks/:task_id/remind", dig.RemindTask)

	api.POST("/gardens/:id/garden-tasks", gardenTasks.Create)
	api.GET("/gardens/:id/garden-tasks", gardenTasks.List)
	api.PATCH("/garden-tasks/:garden_task_id", gardenTasks.Patch)
	api.DELETE("/garden-tasks/:garden_task_id", gardenTasks.Delete)

	api.POST("/wishlist", wishlist.Create)
	api.GET("/wishlist", wishlist.List)
	api.POST("/wishlist/import-url", wishlist.ImportURL)
	api.PATCH("/wishlist/:item_id", wishlist.Patch)
	api.DELETE("/wishlist/:item_id", wishlist.Delete)

	api.POST("/digest/weekly", dig.Weekly)

	return e
}
