package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/agendapro/internal/cache"
	"github.com/BruksfildServices01/agendapro/internal/config"
	"github.com/BruksfildServices01/agendapro/internal/infra/memory"
	"github.com/BruksfildServices01/agendapro/internal/storage"
	"github.com/BruksfildServices01/agendapro/internal/validators"
)

type api struct {
	t *testing.T
	r *gin.Engine
}

func newAPI(t *testing.T) *api {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, validators.Register())

	cfg := &config.Config{
		JWTSecret:          "test-secret",
		JWTExpirationHours: 1,
		CompanyCacheTTL:    time.Minute,
	}
	now := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)

	r := gin.New()
	RegisterRoutes(r, Dependencies{
		Config:  cfg,
		Log:     zap.NewNop(),
		Repos:   MemoryRepositories(memory.NewStore()),
		Cache:   cache.Nop{},
		Storage: storage.NewLocal(t.TempDir()),
		Now:     func() time.Time { return now },
	})
	return &api{t: t, r: r}
}

func (a *api) do(method, path, token string, body any) (int, map[string]any) {
	a.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(a.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	a.r.ServeHTTP(w, req)

	var out map[string]any
	if w.Body.Len() > 0 {
		require.NoError(a.t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	}
	return w.Code, out
}

func (a *api) registerCompany() string {
	a.t.Helper()
	code, body := a.do(http.MethodPost, "/api/users/register", "", gin.H{
		"nome":     "Barbearia Moderna",
		"email":    "contato@moderna.com",
		"senha":    "empresa123",
		"cpf_cnpj": "12.345.678/0001-90",
		"tipo":     "empresa",
	})
	require.Equal(a.t, http.StatusCreated, code, body)
	return body["token"].(string)
}

func TestHealth(t *testing.T) {
	a := newAPI(t)

	code, body := a.do(http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", body["status"])
}

func TestSecuredRoutesNeedToken(t *testing.T) {
	a := newAPI(t)

	code, body := a.do(http.MethodGet, "/api/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "missing_authorization_header", body["error_code"])

	code, body = a.do(http.MethodGet, "/api/me", "garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "invalid_token", body["error_code"])
}

func TestLogin_FailuresLookAlike(t *testing.T) {
	a := newAPI(t)
	a.registerCompany()

	code, ok := a.do(http.MethodPost, "/api/users/login", "", gin.H{
		"identifier": "12345678000190",
		"senha":      "empresa123",
	})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "empresa", ok["user"].(map[string]any)["tipo"])
	assert.NotEmpty(t, ok["token"])

	_, wrongPassword := a.do(http.MethodPost, "/api/users/login", "", gin.H{
		"identifier": "12345678000190",
		"senha":      "errada",
	})
	code, unknown := a.do(http.MethodPost, "/api/users/login", "", gin.H{
		"identifier": "ninguem@email.com",
		"senha":      "empresa123",
	})

	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "invalid_credentials", unknown["error_code"])
	assert.Equal(t, wrongPassword, unknown)
}

func TestStaffRoutesRejectClients(t *testing.T) {
	a := newAPI(t)

	code, body := a.do(http.MethodPost, "/api/users/register", "", gin.H{
		"nome":  "Maria",
		"email": "maria@email.com",
		"senha": "cliente123",
		"tipo":  "cliente",
	})
	require.Equal(t, http.StatusCreated, code)
	token := body["token"].(string)

	code, body = a.do(http.MethodPost, "/api/servicos", token, gin.H{"nome": "Corte"})
	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, "forbidden", body["error_code"])

	code, _ = a.do(http.MethodGet, "/api/agendas", token, nil)
	assert.Equal(t, http.StatusForbidden, code)
}

func TestPublicBooking_UnknownAgendaCreatesNothing(t *testing.T) {
	a := newAPI(t)
	companyToken := a.registerCompany()

	code, _ := a.do(http.MethodPost, "/api/funcionarios", companyToken, gin.H{
		"nome":  "João",
		"email": "joao@moderna.com",
		"senha": "func123",
	})
	require.Equal(t, http.StatusCreated, code)

	code, body := a.do(http.MethodPost, "/api/agendas/public/2/agendamentos", "", gin.H{
		"agenda_id":     999,
		"cliente_nome":  "Maria",
		"cliente_email": "maria@email.com",
		"data":          "2024-01-15",
		"hora":          "09:00",
	})
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "agenda_not_found", body["error_code"])

	code, body = a.do(http.MethodGet, "/api/agendamentos", companyToken, nil)
	require.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 0, body["total"])
}

func TestBookingLifecycle(t *testing.T) {
	a := newAPI(t)
	companyToken := a.registerCompany()

	code, employee := a.do(http.MethodPost, "/api/funcionarios", companyToken, gin.H{
		"nome":  "João",
		"email": "joao@moderna.com",
		"senha": "func123",
		"cargo": "Barbeiro",
	})
	require.Equal(t, http.StatusCreated, code, employee)
	assert.EqualValues(t, 2, employee["id"])

	code, agenda := a.do(http.MethodPost, "/api/agendas", companyToken, gin.H{
		"funcionario_id":   2,
		"dia_semana":       1,
		"inicio":           "08:00",
		"fim":              "18:00",
		"intervalo_inicio": "12:00",
		"intervalo_fim":    "13:00",
	})
	require.Equal(t, http.StatusCreated, code, agenda)

	code, body := a.do(http.MethodPost, "/api/users/register", "", gin.H{
		"nome":  "Maria",
		"email": "maria@email.com",
		"senha": "cliente123",
		"tipo":  "cliente",
	})
	require.Equal(t, http.StatusCreated, code, body)
	clientToken := body["token"].(string)

	code, view := a.do(http.MethodGet, "/api/agendas/public/2?data=2024-01-15", "", nil)
	require.Equal(t, http.StatusOK, code, view)
	slots := view["horarios_livres"].([]any)
	require.NotEmpty(t, slots)
	assert.Equal(t, "08:00", slots[0].(map[string]any)["inicio"])

	code, ap := a.do(http.MethodPost, "/api/agendas/public/2/agendamentos", "", gin.H{
		"cliente_nome":  "Maria",
		"cliente_email": "maria@email.com",
		"data":          "2024-01-15",
		"hora":          "09:00",
	})
	require.Equal(t, http.StatusCreated, code, ap)
	assert.Equal(t, "pendente", ap["status"])
	assert.EqualValues(t, 3, ap["cliente_id"])

	code, body = a.do(http.MethodPost, "/api/agendas/public/2/agendamentos", "", gin.H{
		"cliente_nome":  "Pedro",
		"cliente_email": "pedro@email.com",
		"data":          "2024-01-15",
		"hora":          "09:00",
	})
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "time_conflict", body["error_code"])

	code, body = a.do(http.MethodPatch, "/api/agendamentos/1/confirmar", companyToken, nil)
	require.Equal(t, http.StatusOK, code, body)
	assert.Equal(t, "confirmado", body["status"])

	code, body = a.do(http.MethodPost, "/api/avaliacoes", clientToken, gin.H{"agendamento_id": 1, "nota": 5})
	assert.Equal(t, "appointment_not_completed", body["error_code"])

	code, body = a.do(http.MethodPatch, "/api/agendamentos/1/concluir", companyToken, nil)
	require.Equal(t, http.StatusOK, code, body)
	assert.Equal(t, "concluido", body["status"])

	code, body = a.do(http.MethodPost, "/api/avaliacoes", clientToken, gin.H{
		"agendamento_id": 1,
		"nota":           5,
		"comentario":     "Ótimo",
	})
	require.Equal(t, http.StatusCreated, code, body)

	code, body = a.do(http.MethodGet, "/api/empresas/1/avaliacoes", "", nil)
	require.Equal(t, http.StatusOK, code, body)
	summary := body["resumo"].(map[string]any)
	assert.EqualValues(t, 5, summary["media"])
	assert.EqualValues(t, 1, summary["total"])

	code, body = a.do(http.MethodGet, "/api/agendamentos", clientToken, nil)
	require.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 1, body["total"])

	code, body = a.do(http.MethodGet, "/api/notificacoes", clientToken, nil)
	require.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 2, body["total"])
}

func TestPasswordsLongerThanBcryptAllows(t *testing.T) {
	a := newAPI(t)
	long := strings.Repeat("a", 80)

	code, body := a.do(http.MethodPost, "/api/users/register", "", gin.H{
		"nome":  "Maria",
		"email": "maria@email.com",
		"senha": long,
		"tipo":  "cliente",
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "invalid_request", body["error_code"])

	companyToken := a.registerCompany()
	code, body = a.do(http.MethodPost, "/api/funcionarios", companyToken, gin.H{
		"nome":  "João",
		"email": "joao@moderna.com",
		"senha": long,
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "invalid_request", body["error_code"])
}
