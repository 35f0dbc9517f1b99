package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hygimar/catalogue-api/internal/application/order"
	"github.com/hygimar/catalogue-api/internal/application/usecase"
	"github.com/hygimar/catalogue-api/internal/infrastructure/storage"
)

// RouterDeps dépendances du routeur.
type RouterDeps struct {
	CategoryUC       *usecase.CategoryUseCase
	SubcategoryUC    *usecase.SubcategoryUseCase
	SubsubcategoryUC *usecase.SubsubcategoryUseCase
	MarkUC           *usecase.MarkUseCase
	ProductUC        *usecase.ProductUseCase
	CatalogUC        *usecase.CatalogUseCase
	ClientUC         *usecase.ClientUseCase
	OrderUC          *order.UseCase
	Store            storage.FileStore
}

// Router enregistre les routes de l'API. Les chemins reprennent le contrat
// historique de la vitrine (style verbe/ressource), ils ne changent pas.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	categories := api.Group("/category")
	categoryHandler := NewCategoryHandler(deps.CategoryUC, deps.CatalogUC)
	categories.Post("/create", categoryHandler.Create)
	categories.Post("/createwithsub", categoryHandler.CreateWithSubs)
	categories.Get("/getall", categoryHandler.GetAll)
	categories.Get("/getcatg", categoryHandler.GetRegular)
	categories.Get("/getmarked", categoryHandler.GetMarked)
	categories.Get("/withsub", categoryHandler.Tree)
	categories.Get("/details/:id", categoryHandler.Details)
	categories.Put("/update/:id", categoryHandler.Update)
	categories.Delete("/delete/:id", categoryHandler.Delete)

	subcategories := api.Group("/subcategory")
	subcategoryHandler := NewSubcategoryHandler(deps.SubcategoryUC, deps.CatalogUC)
	subcategories.Post("/create", subcategoryHandler.Create)
	subcategories.Get("/getall", subcategoryHandler.GetAll)
	subcategories.Get("/get/:id", subcategoryHandler.GetByID)
	subcategories.Get("/bycategory/:id", subcategoryHandler.ByCategory)
	subcategories.Get("/details/:id", subcategoryHandler.Details)
	subcategories.Put("/update/:id", subcategoryHandler.Update)
	subcategories.Delete("/delete/:id", subcategoryHandler.Delete)

	subsubcategories := api.Group("/subsubcategory")
	subsubcategoryHandler := NewSubsubcategoryHandler(deps.SubsubcategoryUC, deps.CatalogUC)
	subsubcategories.Post("/create", subsubcategoryHandler.Create)
	subsubcategories.Get("/getall", subsubcategoryHandler.GetAll)
	subsubcategories.Get("/get/:id", subsubcategoryHandler.GetByID)
	subsubcategories.Get("/bysubcategory/:id", subsubcategoryHandler.BySubcategory)
	subsubcategories.Get("/details/:id", subsubcategoryHandler.Details)
	subsubcategories.Put("/update/:id", subsubcategoryHandler.Update)
	subsubcategories.Delete("/delete/:id", subsubcategoryHandler.Delete)

	marks := api.Group("/mark")
	markHandler := NewMarkHandler(deps.MarkUC, deps.CatalogUC)
	marks.Post("/create", markHandler.Create)
	marks.Post("/import", markHandler.Import)
	marks.Get("/getall", markHandler.GetAll)
	marks.Get("/get/:id", markHandler.GetByID)
	marks.Get("/details/:id", markHandler.Details)
	marks.Put("/update/:id", markHandler.Update)
	marks.Delete("/delete/:id", markHandler.Delete)

	products := api.Group("/product")
	productHandler := NewProductHandler(deps.ProductUC, deps.CatalogUC, deps.Store)
	products.Post("/create", productHandler.Create)
	products.Get("/getall", productHandler.GetAll)
	products.Get("/get/:id", productHandler.GetByID)
	products.Get("/related/:id", productHandler.Related)
	products.Get("/bycategory/:id", productHandler.ByCategory)
	products.Get("/bysubcategory/:id", productHandler.BySubcategory)
	products.Get("/bysubsubcategory/:id", productHandler.BySubsubcategory)
	products.Get("/bymark/:id", productHandler.ByMark)
	products.Put("/update/:id", productHandler.Update)
	products.Delete("/delete/:id", productHandler.Delete)

	clients := api.Group("/client")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/create", clientHandler.Create)
	clients.Get("/getall", clientHandler.GetAll)
	clients.Get("/get/:id", clientHandler.GetByID)

	orders := api.Group("/order")
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders.Post("/create", orderHandler.Create)
	orders.Post("/createfrom", orderHandler.CreateWithClient)
	orders.Get("/getall", orderHandler.GetAll)
	orders.Get("/get/:id", orderHandler.GetByID)
	orders.Delete("/delete/:id", orderHandler.Delete)
}
