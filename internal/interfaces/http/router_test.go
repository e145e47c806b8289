package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viafiscal/custoreal-api/internal/application/usecase"
	"github.com/viafiscal/custoreal-api/internal/domain/entity"
	httpiface "github.com/viafiscal/custoreal-api/internal/interfaces/http"
	"github.com/viafiscal/custoreal-api/pkg/jwt"
)

const testSecret = "segredo-de-teste"

// stubRuleRepo devolve um conjunto fixo de regras, suficiente para os testes de contrato.
type stubRuleRepo struct {
	rules []entity.TaxRule
}

func (s *stubRuleRepo) Create(r *entity.TaxRule) error          { s.rules = append(s.rules, *r); return nil }
func (s *stubRuleRepo) GetByID(string) (*entity.TaxRule, error) { return nil, nil }
func (s *stubRuleRepo) List(int, int) ([]entity.TaxRule, error) { return s.rules, nil }
func (s *stubRuleRepo) ListAll() ([]entity.TaxRule, error)      { return s.rules, nil }
func (s *stubRuleRepo) Update(*entity.TaxRule) error            { return nil }
func (s *stubRuleRepo) Delete(string) error                     { return nil }

type stubScenarioRepo struct{}

func (stubScenarioRepo) GetByKey(string) (*entity.Scenario, error) { return nil, nil }
func (stubScenarioRepo) ListAll() ([]entity.Scenario, error)       { return nil, nil }
func (stubScenarioRepo) Upsert(*entity.Scenario) error             { return nil }

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	cfg := usecase.DefaultEngineConfig()
	rules := &stubRuleRepo{rules: []entity.TaxRule{{
		ID:           "r-1",
		Pattern:      "100630",
		Jurisdiction: entity.JurisdictionAll,
		Rates: entity.TaxRates{
			IBS: decimal.RequireFromString("10"),
			CBS: decimal.RequireFromString("5"),
		},
		Creditable: true,
		ValidFrom:  time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}}}

	app := fiber.New()
	httpiface.Router(app, httpiface.RouterDeps{
		OptimizerUC: usecase.NewOptimizerUseCase(),
		TaxEngineUC: usecase.NewTaxEngineUseCase(rules, stubScenarioRepo{}, cfg),
		JWTSecret:   testSecret,
	})
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *stdhttp.Response {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(stdhttp.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *stdhttp.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, out))
}

func TestOptimizerEndpointContrato(t *testing.T) {
	app := newTestApp(t)

	resp := postJSON(t, app, "/api/optimizer", fiber.Map{
		"quantity": "100",
		"offers": []fiber.Map{
			{"id": "A", "price": "10", "moq": "150"},
			{"id": "B", "price": "9.8"},
		},
	})
	require.Equal(t, stdhttp.StatusOK, resp.StatusCode)

	var out struct {
		Allocation map[string]decimal.Decimal `json:"allocation"`
		Cost       decimal.Decimal            `json:"cost"`
		Violations []string                   `json:"violations"`
	}
	decodeJSON(t, resp, &out)

	// A tem MOQ acima da demanda: tudo vai para B
	assert.Len(t, out.Allocation, 1)
	assert.True(t, out.Allocation["B"].Equal(decimal.RequireFromString("100")))
	assert.True(t, out.Cost.Equal(decimal.RequireFromString("980")))
}

func TestOptimizerEndpointQuantidadeInvalida(t *testing.T) {
	app := newTestApp(t)

	resp := postJSON(t, app, "/api/optimizer", fiber.Map{
		"quantity": "0",
		"offers":   []fiber.Map{{"id": "A", "price": "10"}},
	})
	assert.Equal(t, stdhttp.StatusBadRequest, resp.StatusCode)
}

func TestTaxEngineEndpointContrato(t *testing.T) {
	app := newTestApp(t)

	resp := postJSON(t, app, "/api/tax-engine", fiber.Map{
		"ncm":        "1006.30.21",
		"uf_origem":  "SP",
		"uf_destino": "MG",
		"valor":      "1000",
	})
	require.Equal(t, stdhttp.StatusOK, resp.StatusCode)

	var out struct {
		Rates struct {
			IBS decimal.Decimal `json:"ibs"`
			CBS decimal.Decimal `json:"cbs"`
		} `json:"rates"`
		Values struct {
			Total decimal.Decimal `json:"total"`
		} `json:"values"`
		CreditAmount decimal.Decimal `json:"credit_amount"`
	}
	decodeJSON(t, resp, &out)

	assert.True(t, out.Rates.IBS.Equal(decimal.RequireFromString("10")))
	assert.True(t, out.Values.Total.Equal(decimal.RequireFromString("150")))
	assert.True(t, out.CreditAmount.Equal(decimal.RequireFromString("150")))
}

func TestTaxEngineEndpointValorInvalido(t *testing.T) {
	app := newTestApp(t)

	resp := postJSON(t, app, "/api/tax-engine", fiber.Map{
		"ncm":        "100630",
		"uf_destino": "MG",
		"valor":      "0",
	})
	assert.Equal(t, stdhttp.StatusBadRequest, resp.StatusCode)
}

func TestRotasProtegidasExigemToken(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(stdhttp.MethodGet, "/api/tax-rules/", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, stdhttp.StatusUnauthorized, resp.StatusCode)

	req = httptest.NewRequest(stdhttp.MethodGet, "/api/tax-rules/", nil)
	req.Header.Set("Authorization", "Bearer token-invalido")
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, stdhttp.StatusUnauthorized, resp.StatusCode)
}

func TestTokenValidoPassaPeloMiddleware(t *testing.T) {
	app := fiber.New()
	app.Get("/protegido", httpiface.AuthMiddleware(testSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": httpiface.GetUserID(c),
			"org_id":  httpiface.GetOrgID(c),
		})
	})

	token, err := jwt.Generate(testSecret, "u-1", "org-1", "analista", "custoreal", 5)
	require.NoError(t, err)

	req := httptest.NewRequest(stdhttp.MethodGet, "/protegido", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, stdhttp.StatusOK, resp.StatusCode)

	var out map[string]string
	decodeJSON(t, resp, &out)
	assert.Equal(t, "u-1", out["user_id"])
	assert.Equal(t, "org-1", out["org_id"])
}
