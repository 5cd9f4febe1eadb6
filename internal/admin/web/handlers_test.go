package web_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pedrohss2/cardapio-front/internal/admin/session"
	"github.com/Pedrohss2/cardapio-front/internal/admin/web"
	"github.com/Pedrohss2/cardapio-front/internal/application/dto"
	"github.com/Pedrohss2/cardapio-front/internal/client"
)

// apiBackend API fake com categorias em memória, contando os DELETEs
// recebidos para provar que o gate de confirmação segura a chamada remota.
type apiBackend struct {
	mu         sync.Mutex
	categories []dto.CategoryResponse
	deletes    int
}

func (b *apiBackend) deleteCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.deletes
}

func (b *apiBackend) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		switch {
		case r.URL.Path == "/category" && r.Method == http.MethodGet:
			_ = json.NewEncoder(w).Encode(b.categories)
		case strings.HasPrefix(r.URL.Path, "/category/") && r.Method == http.MethodDelete:
			b.deletes++
			id := strings.TrimPrefix(r.URL.Path, "/category/")
			for i := range b.categories {
				if b.categories[i].ID == id {
					b.categories = append(b.categories[:i], b.categories[i+1:]...)
					w.WriteHeader(http.StatusNoContent)
					return
				}
			}
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(dto.ErrorResponse{Code: "NOT_FOUND", Message: "categoria não encontrada"})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
}

// memStore sessão em memória para os testes do painel.
type memStore struct {
	mu    sync.Mutex
	state *session.State
}

func (s *memStore) Load() (*session.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == nil {
		return nil, nil
	}
	cp := *s.state
	return &cp, nil
}

func (s *memStore) Save(st session.State) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := st
	s.state = &cp
	return nil
}

func (s *memStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = nil
	return nil
}

func buildAdminApp(t *testing.T, backend *apiBackend) (*fiber.App, *session.Session, func()) {
	t.Helper()
	srv := httptest.NewServer(backend.handler())

	api := client.New(srv.URL)
	sess, err := session.New(api, &memStore{})
	require.NoError(t, err)

	require.NoError(t, sess.Login("tok-painel",
		&dto.CompanyResponse{ID: "c-1", Name: "Cantina da Praça"},
		&dto.UserResponse{ID: "u-1", Email: "dona@cantina.com"},
	))

	app := fiber.New()
	web.Router(app, web.NewHandlers(api, sess), sess)
	return app, sess, func() {
		sess.Close()
		srv.Close()
	}
}

func withCookie(req *http.Request) *http.Request {
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: "tok-painel"})
	return req
}

// Sem o cookie de sessão as rotas do painel devolvem 401.
func TestRequireSession_SemCookie(t *testing.T) {
	app, _, done := buildAdminApp(t, &apiBackend{})
	defer done()

	req := httptest.NewRequest(http.MethodGet, "/categories", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Delete sem confirm=true não dispara chamada remota alguma.
func TestDeleteCategory_ExigeConfirmacao(t *testing.T) {
	backend := &apiBackend{categories: []dto.CategoryResponse{{ID: "cat-1", Name: "Bebidas"}}}
	app, _, done := buildAdminApp(t, backend)
	defer done()

	req := withCookie(httptest.NewRequest(http.MethodGet, "/categories", nil))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	req = withCookie(httptest.NewRequest(http.MethodDelete, "/categories/cat-1", nil))
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, 0, backend.deleteCount(), "cancelar a confirmação não pode chamar a API")

	req = withCookie(httptest.NewRequest(http.MethodDelete, "/categories/cat-1?confirm=true", nil))
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, 1, backend.deleteCount(), "confirmado, exatamente um DELETE remoto")
}

// Logout expira o cookie e derruba a sessão; repetir é inofensivo.
func TestLogout_ExpiraCookie(t *testing.T) {
	app, sess, done := buildAdminApp(t, &apiBackend{})
	defer done()

	req := withCookie(httptest.NewRequest(http.MethodPost, "/logout", nil))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.False(t, sess.IsAuthenticated())

	var expired bool
	for _, ck := range resp.Cookies() {
		if ck.Name == session.CookieName && ck.MaxAge < 0 {
			expired = true
		}
	}
	assert.True(t, expired, "a resposta deve expirar o cookie de sessão")

	req = withCookie(httptest.NewRequest(http.MethodPost, "/logout", nil))
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}
