package http

import (
	"io"
	"mime/multipart"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/Pedrohss2/cardapio-front/internal/application/dto"
	"github.com/Pedrohss2/cardapio-front/internal/application/usecase"
	"github.com/Pedrohss2/cardapio-front/internal/domain"
)

// ImageStorage persiste as imagens enviadas junto com o produto.
type ImageStorage interface {
	Save(originalName string, r io.Reader) (string, error)
	Remove(name string) error
}

// ProductHandler trata as requisições HTTP para Product. Create e Update
// aceitam JSON ou multipart/form-data (campos do produto + arquivo "image").
type ProductHandler struct {
	uc      *usecase.ProductUseCase
	storage ImageStorage
}

// NewProductHandler constrói o handler.
func NewProductHandler(uc *usecase.ProductUseCase, storage ImageStorage) *ProductHandler {
	return &ProductHandler{uc: uc, storage: storage}
}

func isMultipart(c *fiber.Ctx) bool {
	return strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm)
}

// saveImage grava o arquivo "image" da requisição multipart, se houver.
// Devolve o nome gerado ou "" quando nenhum arquivo foi enviado.
func (h *ProductHandler) saveImage(c *fiber.Ctx) (string, error) {
	fh, err := c.FormFile("image")
	if err != nil {
		return "", nil
	}
	return h.saveHeader(fh)
}

func (h *ProductHandler) saveHeader(fh *multipart.FileHeader) (string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()
	return h.storage.Save(fh.Filename, f)
}

// Create cria um produto (POST /product).
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	var image string
	if isMultipart(c) {
		price, err := decimal.NewFromString(c.FormValue("price", "0"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "price inválido"})
		}
		in = dto.CreateProductRequest{
			Name:        c.FormValue("name"),
			Description: c.FormValue("description"),
			Price:       price,
			CategoryID:  c.FormValue("categoryId"),
		}
		image, err = h.saveImage(c)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "UPLOAD_FAILED", Message: err.Error()})
		}
	} else if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name é obrigatório"})
	}
	out, err := h.uc.Create(GetCompanyID(c), in, image)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List lista os produtos da empresa do token (GET /product).
func (h *ProductHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(GetCompanyID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID obtém um produto por ID (GET /product/:id).
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil || out.CompanyID != GetCompanyID(c) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "produto não encontrado"})
	}
	return c.JSON(out)
}

// Update atualiza um produto (PUT /product/:id). Sem arquivo novo a imagem
// atual é mantida.
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	var image string
	if isMultipart(c) {
		if v := c.FormValue("name"); v != "" {
			in.Name = &v
		}
		if v := c.FormValue("description"); v != "" {
			in.Description = &v
		}
		if v := c.FormValue("price"); v != "" {
			price, err := decimal.NewFromString(v)
			if err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "price inválido"})
			}
			in.Price = &price
		}
		if v := c.FormValue("categoryId"); v != "" {
			in.CategoryID = &v
		}
		var err error
		image, err = h.saveImage(c)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "UPLOAD_FAILED", Message: err.Error()})
		}
	} else if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Update(GetCompanyID(c), c.Params("id"), in, image)
	if err != nil {
		switch err {
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "produto não encontrado"})
		case domain.ErrForbidden:
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "produto pertence a outra empresa"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Delete remove um produto e sua imagem (DELETE /product/:id).
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	current, _ := h.uc.GetByID(c.Params("id"))
	if err := h.uc.Delete(GetCompanyID(c), c.Params("id")); err != nil {
		switch err {
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "produto não encontrado"})
		case domain.ErrForbidden:
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "produto pertence a outra empresa"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if current != nil && current.Image != "" {
		_ = h.storage.Remove(current.Image)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
