package client_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pedrohss2/cardapio-front/internal/application/dto"
	"github.com/Pedrohss2/cardapio-front/internal/client"
)

// echoServer devolve em JSON o header Authorization recebido.
func echoServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"authorization": r.Header.Get("Authorization")})
	}))
}

// Depois do SetAuthorization toda requisição carrega o Bearer; depois do
// ClearAuthorization nenhuma.
func TestClient_HeaderAuthorizationPadrao(t *testing.T) {
	srv := echoServer(t)
	defer srv.Close()

	api := client.New(srv.URL)
	var got map[string]string

	require.NoError(t, api.Do(context.Background(), http.MethodGet, "/echo", nil, &got))
	assert.Empty(t, got["authorization"], "sem sessão a requisição sai sem Authorization")

	api.SetAuthorization("token-123")
	require.NoError(t, api.Do(context.Background(), http.MethodGet, "/echo", nil, &got))
	assert.Equal(t, "Bearer token-123", got["authorization"])

	api.ClearAuthorization()
	require.NoError(t, api.Do(context.Background(), http.MethodGet, "/echo", nil, &got))
	assert.Empty(t, got["authorization"], "após logout o header padrão some")
}

// O hook de resposta roda para todo status e a função devolvida o remove.
func TestClient_OnResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/unauthorized" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	api := client.New(srv.URL)
	var unauthorized int32
	remove := api.OnResponse(func(status int) {
		if status == http.StatusUnauthorized {
			atomic.AddInt32(&unauthorized, 1)
		}
	})

	_ = api.Do(context.Background(), http.MethodGet, "/ok", nil, nil)
	assert.EqualValues(t, 0, atomic.LoadInt32(&unauthorized))

	_ = api.Do(context.Background(), http.MethodGet, "/unauthorized", nil, nil)
	assert.EqualValues(t, 1, atomic.LoadInt32(&unauthorized), "o hook deve ver o 401")

	remove()
	_ = api.Do(context.Background(), http.MethodGet, "/unauthorized", nil, nil)
	assert.EqualValues(t, 1, atomic.LoadInt32(&unauthorized), "hook removido não roda mais")
}

// Erro com mensagem do backend é repassado literalmente pelo service.
func TestService_MensagemDoBackend(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(dto.ErrorResponse{Code: "DUPLICATE", Message: "categoria já existe"})
	}))
	defer srv.Close()

	svc := client.NewCategoryService(client.New(srv.URL))
	_, err := svc.Create(context.Background(), dto.CreateCategoryRequest{Name: "Bebidas"})
	require.Error(t, err)
	assert.Equal(t, "categoria já existe", err.Error())
}

// Erro sem corpo JSON cai no fallback fixo em português da operação.
func TestService_FallbackSemMensagem(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	svc := client.NewProductService(client.New(srv.URL))
	_, err := svc.List(context.Background())
	require.Error(t, err)
	assert.Equal(t, "Erro ao obter os produtos", err.Error())
}

// Backend inalcançável também cai no fallback da operação.
func TestService_FallbackRedeForaDoAr(t *testing.T) {
	svc := client.NewProductService(client.New("http://127.0.0.1:1"))
	err := svc.Delete(context.Background(), "abc")
	require.Error(t, err)
	assert.Equal(t, "Erro ao deletar o produto", err.Error())
}

// MultipartPayload monta form-data com os campos e o arquivo de imagem.
func TestMultipartPayload(t *testing.T) {
	payload, err := client.MultipartPayload(map[string]string{
		"name":  "X-Burguer",
		"price": "25.9",
	}, "foto.png", bytes.NewReader([]byte{0x89, 0x50}))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(payload.ContentType, "multipart/form-data; boundary="))
	body := string(payload.Body)
	assert.Contains(t, body, `name="name"`)
	assert.Contains(t, body, "X-Burguer")
	assert.Contains(t, body, `filename="foto.png"`)
}

// JSONPayload serializa o corpo com o content type correto.
func TestJSONPayload(t *testing.T) {
	payload, err := client.JSONPayload(dto.CreateCategoryRequest{Name: "Bebidas"})
	require.NoError(t, err)
	assert.Equal(t, "application/json", payload.ContentType)
	assert.JSONEq(t, `{"name":"Bebidas"}`, string(payload.Body))
}
