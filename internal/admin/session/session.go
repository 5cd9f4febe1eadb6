// Package session mantém o estado de autenticação do gateway administrativo:
// token de acesso, empresa ativa e usuário logado. É o único dono desse
// estado; telas e handlers leem e mutam a sessão, nunca o storage ou o
// header do cliente diretamente.
package session

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Pedrohss2/cardapio-front/internal/application/dto"
	"github.com/Pedrohss2/cardapio-front/internal/client"
	"github.com/Pedrohss2/cardapio-front/pkg/jwt"
)

// CookieName nome do cookie de sessão do painel.
const CookieName = "accessToken"

// cookieMaxAge validade do cookie de sessão.
const cookieMaxAge = 30 * 24 * time.Hour

// ErrNoCompany indica login de um usuário sem vínculo com empresa alguma.
var ErrNoCompany = errors.New("usuário não está vinculado a nenhuma empresa")

// Session container da sessão do painel. O hook de 401 é registrado uma
// única vez na construção e removido no Close; qualquer resposta 401 da API
// derruba a sessão, e respostas 401 simultâneas derrubam uma vez só.
type Session struct {
	api   *client.Client
	store Store

	mu       sync.Mutex
	state    State
	loggedIn bool
	loading  bool

	removeHook func()
}

// New constrói a sessão, hidrata o estado persistido e instala o hook de
// logout em 401 no cliente.
func New(api *client.Client, store Store) (*Session, error) {
	s := &Session{
		api:     api,
		store:   store,
		loading: true,
	}
	s.removeHook = api.OnResponse(func(status int) {
		if status == http.StatusUnauthorized {
			_ = s.Logout()
		}
	})

	st, err := store.Load()
	if err != nil {
		s.removeHook()
		return nil, err
	}
	s.mu.Lock()
	if st != nil {
		s.state = *st
		s.loggedIn = true
		api.SetAuthorization(st.AccessToken)
	}
	s.loading = false
	s.mu.Unlock()
	return s, nil
}

// Close remove o hook de 401 do cliente. A sessão persistida permanece.
func (s *Session) Close() {
	if s.removeHook != nil {
		s.removeHook()
		s.removeHook = nil
	}
}

// Loading indica se a sessão ainda está sendo hidratada do storage.
func (s *Session) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// IsAuthenticated indica se há sessão ativa.
func (s *Session) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loggedIn
}

// Snapshot devolve uma cópia do estado atual.
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Login estabelece a sessão com o token, a empresa ativa e o usuário,
// define o header Authorization do cliente e persiste o estado.
func (s *Session) Login(token string, company *dto.CompanyResponse, user *dto.UserResponse) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := State{AccessToken: token, Company: company, User: user}
	if err := s.store.Save(st); err != nil {
		return err
	}
	s.state = st
	s.loggedIn = true
	s.api.SetAuthorization(token)
	return nil
}

// LoginWithCredentials autentica na API e estabelece a sessão com a
// primeira empresa vinculada ao usuário. O fluxo roda num cliente próprio,
// fora do hook de 401: uma tentativa de login recusada não pode derrubar a
// sessão vigente, e qualquer falha deixa o estado exatamente como estava.
func (s *Session) LoginWithCredentials(ctx context.Context, email, password string) error {
	scoped := client.New(s.api.BaseURL())
	users := client.NewUserService(scoped)

	resp, err := users.Login(ctx, dto.LoginRequest{Email: email, Password: password})
	if err != nil {
		return err
	}
	userID, err := jwt.DecodeSubject(resp.AccessToken)
	if err != nil {
		return err
	}
	scoped.SetAuthorization(resp.AccessToken)
	assocs, err := users.Companies(ctx, userID)
	if err != nil {
		return err
	}
	if len(assocs) == 0 || assocs[0].Company == nil {
		return ErrNoCompany
	}
	user := &dto.UserResponse{ID: userID, Email: email}
	return s.Login(resp.AccessToken, assocs[0].Company, user)
}

// Logout encerra a sessão: limpa o header do cliente, o estado e o storage.
// É idempotente; com a sessão já encerrada não faz nada.
func (s *Session) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loggedIn {
		return nil
	}
	s.loggedIn = false
	s.state = State{}
	s.api.ClearAuthorization()
	return s.store.Clear()
}

// UpdateCompany substitui a empresa ativa da sessão e persiste. Usada após
// a tela de configurações salvar a empresa na API.
func (s *Session) UpdateCompany(company *dto.CompanyResponse) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loggedIn {
		return nil
	}
	s.state.Company = company
	return s.store.Save(s.state)
}

// Cookie devolve o cookie de sessão emitido no login.
func (s *Session) Cookie() *fiber.Cookie {
	s.mu.Lock()
	token := s.state.AccessToken
	s.mu.Unlock()
	return &fiber.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(cookieMaxAge.Seconds()),
		Expires:  time.Now().Add(cookieMaxAge),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	}
}

// ExpiredCookie devolve o cookie que apaga a sessão do navegador no logout.
func ExpiredCookie() *fiber.Cookie {
	return &fiber.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	}
}
