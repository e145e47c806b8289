package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/viafiscal/custoreal-api/internal/application/usecase"
)

// RouterDeps dependências do router.
type RouterDeps struct {
	OfferUC      *usecase.OfferUseCase
	RuleUC       *usecase.RuleUseCase
	ComparisonUC *usecase.ComparisonUseCase
	OptimizerUC  *usecase.OptimizerUseCase
	TaxEngineUC  *usecase.TaxEngineUseCase
	ScenarioUC   *usecase.ScenarioUseCase
	JWTSecret    string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Motor tributário e otimizador (públicos: consultas puras, sem estado)
	taxEngineHandler := NewTaxEngineHandler(deps.TaxEngineUC)
	api.Post("/tax-engine", taxEngineHandler.Compute)

	optimizerHandler := NewOptimizerHandler(deps.OptimizerUC)
	api.Post("/optimizer", optimizerHandler.Optimize)

	// Rotas protegidas (requerem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Ofertas por cotação (protegido)
	offerHandler := NewOfferHandler(deps.OfferUC)
	quotations := protected.Group("/quotations/:quotationId")
	quotations.Post("/offers", offerHandler.Create)
	quotations.Get("/offers", offerHandler.List)
	quotations.Get("/offers/:id", offerHandler.GetByID)
	quotations.Put("/offers/:id", offerHandler.Update)
	quotations.Delete("/offers/:id", offerHandler.Delete)

	// Comparação de custos efetivos (protegido)
	comparisonHandler := NewComparisonHandler(deps.ComparisonUC)
	quotations.Get("/comparison", comparisonHandler.CompareQuotation)
	protected.Post("/comparison", comparisonHandler.CompareInline)

	// Regras tributárias (protegido)
	ruleHandler := NewRuleHandler(deps.RuleUC)
	rules := protected.Group("/tax-rules")
	rules.Post("/", ruleHandler.Create)
	rules.Get("/", ruleHandler.List)
	rules.Get("/:id", ruleHandler.GetByID)
	rules.Put("/:id", ruleHandler.Update)
	rules.Delete("/:id", ruleHandler.Delete)

	// Cenários da transição (protegido)
	scenarioHandler := NewScenarioHandler(deps.ScenarioUC)
	scenarios := protected.Group("/scenarios")
	scenarios.Get("/", scenarioHandler.List)
	scenarios.Post("/compare", scenarioHandler.Compare)
	scenarios.Post("/compare/report", scenarioHandler.CompareReport)
	scenarios.Get("/:key/resultado", scenarioHandler.Resultado)
}
