package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/shopspring/decimal"

	"github.com/viafiscal/custoreal-api/internal/application/usecase"
	infrapdf "github.com/viafiscal/custoreal-api/internal/infrastructure/pdf"
	"github.com/viafiscal/custoreal-api/internal/infrastructure/postgres"
	httpRouter "github.com/viafiscal/custoreal-api/internal/interfaces/http"
	"github.com/viafiscal/custoreal-api/pkg/config"
	"github.com/viafiscal/custoreal-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	offerRepo := postgres.NewOfferRepository(pool)
	ruleRepo := postgres.NewTaxRuleRepository(pool)
	scenarioRepo := postgres.NewScenarioRepository(pool)

	engineCfg := engineConfigFrom(cfg.Engine, log)
	version := &usecase.SnapshotVersion{}

	offerUC := usecase.NewOfferUseCase(offerRepo, engineCfg, version)
	ruleUC := usecase.NewRuleUseCase(ruleRepo, version)
	comparisonUC := usecase.NewComparisonUseCase(offerRepo, ruleRepo, scenarioRepo, engineCfg, version)
	optimizerUC := usecase.NewOptimizerUseCase()
	taxEngineUC := usecase.NewTaxEngineUseCase(ruleRepo, scenarioRepo, engineCfg)

	reportGenerator := infrapdf.NewMarotoReportGenerator()
	scenarioUC := usecase.NewScenarioUseCase(offerRepo, ruleRepo, scenarioRepo, engineCfg, reportGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI em local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "CustoReal API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		OfferUC:      offerUC,
		RuleUC:       ruleUC,
		ComparisonUC: comparisonUC,
		OptimizerUC:  optimizerUC,
		TaxEngineUC:  taxEngineUC,
		ScenarioUC:   scenarioUC,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	log.Info().Msg("aplicação parada")
}

// engineConfigFrom monta a configuração do motor a partir das env vars,
// caindo nos padrões de código quando um valor não parseia.
func engineConfigFrom(in config.EngineConfig, log *logger.Logger) usecase.EngineConfig {
	out := usecase.DefaultEngineConfig()

	if v, err := decimal.NewFromString(in.StandardIBS); err == nil && !v.IsNegative() {
		out.StandardRates.IBS = v
	} else {
		log.Warn().Str("valor", in.StandardIBS).Msg("ENGINE_STANDARD_IBS inválido, usando padrão")
	}
	if v, err := decimal.NewFromString(in.StandardCBS); err == nil && !v.IsNegative() {
		out.StandardRates.CBS = v
	} else {
		log.Warn().Str("valor", in.StandardCBS).Msg("ENGINE_STANDARD_CBS inválido, usando padrão")
	}
	if v, err := decimal.NewFromString(in.PresumidoCreditFraction); err == nil && !v.IsNegative() && v.LessThanOrEqual(decimal.NewFromInt(1)) {
		out.PresumidoCreditFraction = v
	} else {
		log.Warn().Str("valor", in.PresumidoCreditFraction).Msg("ENGINE_PRESUMIDO_CREDIT_FRACTION inválido, usando padrão")
	}
	if prefixes := in.ExcludedPrefixList(); len(prefixes) > 0 {
		out.ExcludedPrefixes = prefixes
	}
	if in.MaxSuppliersPerQuery > 0 {
		out.MaxSuppliersPerQuotation = in.MaxSuppliersPerQuery
	}
	return out
}
