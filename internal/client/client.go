// Package client implementa o cliente HTTP tipado da API do cardápio usado
// pelo gateway administrativo. Toda requisição sai de um único Client com
// URL base fixa, header Authorization padrão mutável e hooks de resposta
// globais (o hook de 401 do container de sessão é registrado aqui).
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"sync"
	"time"
)

// APIError carrega o status HTTP e a mensagem do corpo de erro da API.
// Os services nunca deixam um APIError vazar para quem os chama: ele é
// convertido em um erro novo com a mensagem do backend ou com o fallback
// fixo da operação.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api: %d", e.Status)
}

// Payload corpo de requisição já serializado, com o content type correto.
// JSONPayload e MultipartPayload constroem as duas formas aceitas pela API;
// os services não precisam saber qual das duas receberam.
type Payload struct {
	ContentType string
	Body        []byte
}

// JSONPayload serializa v como JSON.
func JSONPayload(v any) (*Payload, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("serializar payload: %w", err)
	}
	return &Payload{ContentType: "application/json", Body: b}, nil
}

// MultipartPayload monta um corpo multipart/form-data com os campos de
// fields e, se image não for nil, o arquivo no campo "image".
func MultipartPayload(fields map[string]string, imageName string, image io.Reader) (*Payload, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return nil, fmt.Errorf("montar multipart: %w", err)
		}
	}
	if image != nil {
		fw, err := w.CreateFormFile("image", imageName)
		if err != nil {
			return nil, fmt.Errorf("montar multipart: %w", err)
		}
		if _, err := io.Copy(fw, image); err != nil {
			return nil, fmt.Errorf("copiar imagem: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("fechar multipart: %w", err)
	}
	return &Payload{ContentType: w.FormDataContentType(), Body: buf.Bytes()}, nil
}

// ResponseHook é chamado com o status de toda resposta recebida, inclusive
// as de erro. É o ponto de extensão usado pela sessão para o logout em 401.
type ResponseHook func(status int)

// Client cliente HTTP da API com header Authorization padrão compartilhado
// por todas as requisições.
type Client struct {
	baseURL string
	httpc   *http.Client

	mu            sync.RWMutex
	authorization string

	hookMu   sync.Mutex
	hooks    map[int]ResponseHook
	nextHook int
}

// New cria o cliente apontando para a URL base da API.
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: 30 * time.Second},
		hooks:   make(map[int]ResponseHook),
	}
}

// BaseURL devolve a URL base, usada para montar URLs públicas de imagem.
func (c *Client) BaseURL() string { return c.baseURL }

// SetAuthorization define o header Authorization padrão como Bearer token.
func (c *Client) SetAuthorization(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.authorization = "Bearer " + token
}

// ClearAuthorization remove o header Authorization padrão.
func (c *Client) ClearAuthorization() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.authorization = ""
}

// Authorization devolve o header padrão atual ("" quando deslogado).
func (c *Client) Authorization() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.authorization
}

// OnResponse registra um hook global de resposta e devolve a função que o
// remove. Registrar no construtor da sessão e remover no Close garante que
// o hook exista exatamente uma vez por sessão.
func (c *Client) OnResponse(fn ResponseHook) (remove func()) {
	c.hookMu.Lock()
	defer c.hookMu.Unlock()
	id := c.nextHook
	c.nextHook++
	c.hooks[id] = fn
	return func() {
		c.hookMu.Lock()
		defer c.hookMu.Unlock()
		delete(c.hooks, id)
	}
}

func (c *Client) runHooks(status int) {
	c.hookMu.Lock()
	hooks := make([]ResponseHook, 0, len(c.hooks))
	for _, fn := range c.hooks {
		hooks = append(hooks, fn)
	}
	c.hookMu.Unlock()
	for _, fn := range hooks {
		fn(status)
	}
}

// Do executa uma requisição contra a API. Em 2xx decodifica o corpo em out
// (quando out não é nil); em qualquer outro status devolve um *APIError com
// a mensagem do corpo de erro, se houver. Os hooks de resposta rodam para
// todo status antes do retorno.
func (c *Client) Do(ctx context.Context, method, path string, payload *Payload, out any) error {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload.Body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("montar requisição: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", payload.ContentType)
	}
	if auth := c.Authorization(); auth != "" {
		req.Header.Set("Authorization", auth)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("executar requisição: %w", err)
	}
	defer resp.Body.Close()

	c.runHooks(resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		return &APIError{Status: resp.StatusCode, Message: apiErr.Message}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decodificar resposta: %w", err)
	}
	return nil
}

// wrap converte qualquer erro de transporte no contrato uniforme dos
// services: a mensagem do backend quando presente, senão o fallback fixo
// da operação. Quem chama os services só enxerga esse erro.
func wrap(err error, fallback string) error {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return errors.New(apiErr.Message)
	}
	return errors.New(fallback)
}
