package dto

// MenuSection uma categoria do cardápio com seus produtos.
type MenuSection struct {
	Category CategoryResponse  `json:"category"`
	Products []ProductResponse `json:"products"`
}

// MenuResponse cardápio público de uma empresa, para o visitante não autenticado.
// Produtos com categoria excluída aparecem em Uncategorized.
type MenuResponse struct {
	Company       CompanyResponse   `json:"company"`
	Sections      []MenuSection     `json:"sections"`
	Uncategorized []ProductResponse `json:"uncategorized,omitempty"`
}
