package screen

import (
	"context"

	"github.com/Pedrohss2/cardapio-front/internal/application/dto"
	"github.com/Pedrohss2/cardapio-front/internal/client"
	"github.com/Pedrohss2/cardapio-front/pkg/strutil"
)

// MenuScreen visualização pública do cardápio de uma empresa, com busca
// por nome de produto insensível a caixa e acentos.
type MenuScreen struct {
	svc     *client.MenuService
	baseURL string
}

// NewMenuScreen constrói a tela.
func NewMenuScreen(svc *client.MenuService, baseURL string) *MenuScreen {
	return &MenuScreen{svc: svc, baseURL: baseURL}
}

// MenuView cardápio pronto para exibição, filtrado pela busca.
type MenuView struct {
	Company  dto.CompanyResponse
	Sections []MenuSectionView
}

// MenuSectionView seção do cardápio com as linhas já formatadas.
type MenuSectionView struct {
	Title    string
	Products []ProductRow
}

// Load busca o cardápio e aplica o filtro de busca. Query vazia devolve o
// cardápio inteiro; seções sem produto após o filtro são omitidas.
func (s *MenuScreen) Load(ctx context.Context, companyID, query string) (*MenuView, error) {
	menu, err := s.svc.Get(ctx, companyID)
	if err != nil {
		return nil, err
	}

	view := &MenuView{Company: menu.Company}
	for _, sec := range menu.Sections {
		rows := s.filterRows(sec.Products, sec.Category.Name, query)
		if len(rows) > 0 {
			view.Sections = append(view.Sections, MenuSectionView{Title: sec.Category.Name, Products: rows})
		}
	}
	if rows := s.filterRows(menu.Uncategorized, "N/A", query); len(rows) > 0 {
		view.Sections = append(view.Sections, MenuSectionView{Title: "N/A", Products: rows})
	}
	return view, nil
}

func (s *MenuScreen) filterRows(products []dto.ProductResponse, label, query string) []ProductRow {
	var rows []ProductRow
	for _, p := range products {
		if query != "" && !strutil.ContainsFold(p.Name, query) && !strutil.ContainsFold(p.Description, query) {
			continue
		}
		rows = append(rows, ProductRow{
			Product:       p,
			PriceLabel:    FormatPrice(p.Price),
			CategoryLabel: label,
			ImageURL:      ImageURL(s.baseURL, p.Image),
		})
	}
	return rows
}
