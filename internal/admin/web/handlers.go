package web

import (
	"strings"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/Pedrohss2/cardapio-front/internal/admin/screen"
	"github.com/Pedrohss2/cardapio-front/internal/admin/session"
	"github.com/Pedrohss2/cardapio-front/internal/application/dto"
	"github.com/Pedrohss2/cardapio-front/internal/client"
)

// Handlers rotas do painel administrativo. As telas de lista vivem no
// processo, como a sessão: cada GET de lista refaz a carga inicial (um
// "mount"), e as mutações seguintes alteram a lista local da tela.
type Handlers struct {
	sess *session.Session
	api  *client.Client

	categories *screen.CategoryScreen
	products   *screen.ProductScreen
	settings   *screen.SettingsScreen
	menu       *screen.MenuScreen

	mu          sync.Mutex
	team        *screen.UserScreen
	teamCompany string
}

// NewHandlers monta as telas sobre o cliente e a sessão compartilhados.
func NewHandlers(api *client.Client, sess *session.Session) *Handlers {
	categorySvc := client.NewCategoryService(api)
	return &Handlers{
		sess:       sess,
		api:        api,
		categories: screen.NewCategoryScreen(categorySvc),
		products:   screen.NewProductScreen(client.NewProductService(api), categorySvc, api.BaseURL()),
		settings:   screen.NewSettingsScreen(client.NewCompanyService(api), sess),
		menu:       screen.NewMenuScreen(client.NewMenuService(api), api.BaseURL()),
	}
}

// teamScreen devolve a tela de equipe da empresa ativa, recriando-a quando
// a empresa da sessão muda.
func (h *Handlers) teamScreen() (*screen.UserScreen, error) {
	company := h.sess.Snapshot().Company
	if company == nil {
		return nil, screen.ErrNotLoaded
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.team == nil || h.teamCompany != company.ID {
		h.team = screen.NewUserScreen(client.NewUserService(h.api), company.ID)
		h.teamCompany = company.ID
	}
	return h.team, nil
}

func fail(c *fiber.Ctx, err error) error {
	status := fiber.StatusBadGateway
	switch err {
	case screen.ErrSubmitting:
		status = fiber.StatusConflict
	case screen.ErrNotLoaded, screen.ErrPasswordMismatch:
		status = fiber.StatusBadRequest
	case session.ErrNoCompany:
		status = fiber.StatusUnprocessableEntity
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: "OPERATION_FAILED", Message: err.Error()})
}

// --- sessão ---

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login autentica e emite o cookie de sessão.
func (h *Handlers) Login(c *fiber.Ctx) error {
	var in loginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if err := h.sess.LoginWithCredentials(c.Context(), in.Email, in.Password); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "LOGIN_FAILED", Message: err.Error()})
	}
	c.Cookie(h.sess.Cookie())
	return c.JSON(h.sess.Snapshot())
}

// Logout encerra a sessão e expira o cookie.
func (h *Handlers) Logout(c *fiber.Ctx) error {
	if err := h.sess.Logout(); err != nil {
		return fail(c, err)
	}
	c.Cookie(session.ExpiredCookie())
	return c.SendStatus(fiber.StatusNoContent)
}

// Session devolve o estado atual da sessão.
func (h *Handlers) Session(c *fiber.Ctx) error {
	return c.JSON(h.sess.Snapshot())
}

type registerCompanyRequest struct {
	Name            string `json:"name"`
	Address         string `json:"address"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`
	OwnerName       string `json:"ownerName"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// RegisterCompany cadastra empresa e dono e já entra: cria os dois na API e
// em seguida autentica com as credenciais recém-criadas, emitindo o cookie.
func (h *Handlers) RegisterCompany(c *fiber.Ctx) error {
	var in registerCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.Password != in.ConfirmPassword {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: screen.ErrPasswordMismatch.Error()})
	}
	companies := client.NewCompanyService(h.api)
	if _, err := companies.Create(c.Context(), dto.CreateCompanyRequest{
		Name:          in.Name,
		Address:       in.Address,
		Phone:         in.Phone,
		Email:         in.Email,
		OwnerName:     in.OwnerName,
		OwnerPassword: in.Password,
	}); err != nil {
		return fail(c, err)
	}
	if err := h.sess.LoginWithCredentials(c.Context(), in.Email, in.Password); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "LOGIN_FAILED", Message: err.Error()})
	}
	c.Cookie(h.sess.Cookie())
	return c.Status(fiber.StatusCreated).JSON(h.sess.Snapshot())
}

// --- categorias ---

type categoryForm struct {
	Name string `json:"name"`
}

// ListCategories carrega e devolve as categorias.
func (h *Handlers) ListCategories(c *fiber.Ctx) error {
	if err := h.categories.Load(c.Context()); err != nil {
		return fail(c, err)
	}
	return c.JSON(h.categories.Items())
}

// CreateCategory cria uma categoria.
func (h *Handlers) CreateCategory(c *fiber.Ctx) error {
	var in categoryForm
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	created, err := h.categories.Create(c.Context(), in.Name)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// UpdateCategory renomeia uma categoria.
func (h *Handlers) UpdateCategory(c *fiber.Ctx) error {
	var in categoryForm
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	updated, err := h.categories.Update(c.Context(), c.Params("id"), in.Name)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(updated)
}

// DeleteCategory remove uma categoria. Sem confirm=true nenhuma chamada
// remota acontece e a lista fica como estava.
func (h *Handlers) DeleteCategory(c *fiber.Ctx) error {
	if c.Query("confirm") != "true" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "CONFIRMATION_REQUIRED",
			Message: "confirme a exclusão da categoria",
		})
	}
	if err := h.categories.Delete(c.Context(), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// --- produtos ---

// productInput monta o formulário de produto a partir de JSON ou multipart.
func productInput(c *fiber.Ctx) (screen.ProductInput, error) {
	var in screen.ProductInput
	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		price, err := decimal.NewFromString(c.FormValue("price", "0"))
		if err != nil {
			return in, err
		}
		in = screen.ProductInput{
			Name:        c.FormValue("name"),
			Description: c.FormValue("description"),
			Price:       price,
			CategoryID:  c.FormValue("categoryId"),
		}
		if fh, err := c.FormFile("image"); err == nil {
			f, err := fh.Open()
			if err != nil {
				return in, err
			}
			in.ImageName = fh.Filename
			in.Image = f
		}
		return in, nil
	}
	var body struct {
		Name        string          `json:"name"`
		Description string          `json:"description"`
		Price       decimal.Decimal `json:"price"`
		CategoryID  string          `json:"categoryId"`
	}
	if err := c.BodyParser(&body); err != nil {
		return in, err
	}
	return screen.ProductInput{
		Name:        body.Name,
		Description: body.Description,
		Price:       body.Price,
		CategoryID:  body.CategoryID,
	}, nil
}

// ListProducts carrega e devolve as linhas de produto prontas para exibição.
func (h *Handlers) ListProducts(c *fiber.Ctx) error {
	if err := h.products.Load(c.Context()); err != nil {
		return fail(c, err)
	}
	return c.JSON(h.products.Rows())
}

// CreateProduct cria um produto, com ou sem imagem.
func (h *Handlers) CreateProduct(c *fiber.Ctx) error {
	in, err := productInput(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	created, err := h.products.Create(c.Context(), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// UpdateProduct atualiza um produto.
func (h *Handlers) UpdateProduct(c *fiber.Ctx) error {
	in, err := productInput(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	updated, err := h.products.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(updated)
}

// DeleteProduct remove um produto, exigindo confirmação explícita.
func (h *Handlers) DeleteProduct(c *fiber.Ctx) error {
	if c.Query("confirm") != "true" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "CONFIRMATION_REQUIRED",
			Message: "confirme a exclusão do produto",
		})
	}
	if err := h.products.Delete(c.Context(), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// --- equipe ---

type teamForm struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// ListTeam carrega e devolve os usuários da empresa ativa.
func (h *Handlers) ListTeam(c *fiber.Ctx) error {
	team, err := h.teamScreen()
	if err != nil {
		return fail(c, err)
	}
	if err := team.Load(c.Context()); err != nil {
		return fail(c, err)
	}
	return c.JSON(team.Items())
}

// CreateTeamMember cadastra um usuário e o vincula à empresa ativa.
func (h *Handlers) CreateTeamMember(c *fiber.Ctx) error {
	var in teamForm
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	team, err := h.teamScreen()
	if err != nil {
		return fail(c, err)
	}
	created, err := team.Create(c.Context(), in.Name, in.Email, in.Password, in.ConfirmPassword)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// --- configurações ---

// GetSettings devolve a empresa ativa da sessão.
func (h *Handlers) GetSettings(c *fiber.Ctx) error {
	company := h.settings.Company()
	if company == nil {
		return fail(c, screen.ErrNotLoaded)
	}
	return c.JSON(company)
}

// UpdateSettings atualiza a empresa ativa e reflete a mudança na sessão.
func (h *Handlers) UpdateSettings(c *fiber.Ctx) error {
	var in dto.UpdateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	updated, err := h.settings.Save(c.Context(), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(updated)
}

// --- cardápio público ---

// Menu devolve o cardápio público de uma empresa, com busca opcional ?q=.
func (h *Handlers) Menu(c *fiber.Ctx) error {
	view, err := h.menu.Load(c.Context(), c.Params("companyId"), c.Query("q"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(view)
}
