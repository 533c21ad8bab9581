package api

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"

	"github.com/wealthpath/nestegg/internal/calculation"
	"github.com/wealthpath/nestegg/internal/scenario"
)

func newTestServer() *Server {
	cfg := Config{Addr: ":0"}
	return NewServer(cfg, calculation.NewProjectionEngine())
}

func doRequest(t *testing.T, s *Server, method, path, body string) *fasthttp.RequestCtx {
	t.Helper()

	var req fasthttp.Request
	req.Header.SetMethod(method)
	req.SetRequestURI(path)
	if body != "" {
		req.SetBodyString(body)
	}

	var ctx fasthttp.RequestCtx
	ctx.Init(&req, nil, nil)
	s.Handle(&ctx)
	return &ctx
}

const validBody = `{
	"currentAge": 30,
	"retirementAge": 65,
	"currentSavings": 25000,
	"monthlyContribution": 500,
	"expectedReturn": 7,
	"inflationRate": 2.5,
	"retirementExpenses": 3000
}`

func TestServer_Healthz(t *testing.T) {
	ctx := doRequest(t, newTestServer(), fasthttp.MethodGet, "/healthz", "")

	assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	assert.Equal(t, "ok", string(ctx.Response.Body()))
}

func TestServer_NotFound(t *testing.T) {
	ctx := doRequest(t, newTestServer(), fasthttp.MethodGet, "/v2/nothing", "")

	assert.Equal(t, fasthttp.StatusNotFound, ctx.Response.StatusCode())
}

func TestServer_ProjectRejectsGet(t *testing.T) {
	ctx := doRequest(t, newTestServer(), fasthttp.MethodGet, "/v1/project", "")

	assert.Equal(t, fasthttp.StatusMethodNotAllowed, ctx.Response.StatusCode())
}

func TestServer_ProjectInvalidBody(t *testing.T) {
	ctx := doRequest(t, newTestServer(), fasthttp.MethodPost, "/v1/project", "{not json")

	assert.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())

	var errResp ErrorResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &errResp))
	assert.Equal(t, fasthttp.StatusBadRequest, errResp.Status)
	assert.Contains(t, errResp.Message, "invalid request body")
}

func TestServer_ProjectValidationFailure(t *testing.T) {
	body := `{"currentAge": 10, "retirementAge": 65, "expectedReturn": 7, "inflationRate": 2.5}`

	ctx := doRequest(t, newTestServer(), fasthttp.MethodPost, "/v1/project", body)

	assert.Equal(t, fasthttp.StatusUnprocessableEntity, ctx.Response.StatusCode())

	var errResp ErrorResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &errResp))
	assert.Contains(t, errResp.Message, "current age")
}

func TestServer_ProjectSuccess(t *testing.T) {
	ctx := doRequest(t, newTestServer(), fasthttp.MethodPost, "/v1/project", validBody)

	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	assert.Equal(t, "application/json", string(ctx.Response.Header.ContentType()))

	var resp ProjectionResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))

	require.Len(t, resp.Scenarios, 5)
	assert.Equal(t, scenario.BaseCaseName, resp.Scenarios[0].Name)
	assert.Len(t, resp.Scenarios[0].Trajectory, 36, "Age 30 to 65 inclusive")

	require.NotNil(t, resp.Comparison)
	assert.Equal(t, scenario.BaseCaseName, resp.Comparison.BaseScenarioName)
	assert.Len(t, resp.Comparison.AlternativeResults, 4)
}

func TestConfigFromEnv_Defaults(t *testing.T) {
	cfg, err := ConfigFromEnv()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.NotZero(t, cfg.ReadTimeout)
	assert.NotZero(t, cfg.WriteTimeout)
}

func TestConfigFromEnv_Override(t *testing.T) {
	t.Setenv("NESTEGG_ADDR", ":9191")

	cfg, err := ConfigFromEnv()
	require.NoError(t, err)

	assert.Equal(t, ":9191", cfg.Addr)
}
