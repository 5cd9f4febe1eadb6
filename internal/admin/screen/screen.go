// Package screen implementa os controladores das telas do painel. Cada tela
// segue a mesma máquina de estados: idle, loading na carga inicial e ready
// depois dela; mutações passam por submitting, que serializa as operações
// da tela (uma segunda mutação é recusada enquanto a primeira está em voo).
// Após cada mutação bem-sucedida a lista em memória sofre exatamente uma
// alteração local (append, substituição ou remoção); nenhuma tela refaz o
// fetch completo após mutação.
package screen

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Phase estado de carga de uma tela.
type Phase int

const (
	// PhaseIdle tela criada, lista ainda não carregada.
	PhaseIdle Phase = iota
	// PhaseLoading carga inicial em andamento.
	PhaseLoading
	// PhaseReady lista carregada; mutações liberadas.
	PhaseReady
)

// ErrSubmitting indica mutação recusada porque outra está em andamento.
var ErrSubmitting = errors.New("operação em andamento, aguarde")

// ErrNotLoaded indica mutação tentada antes da carga inicial.
var ErrNotLoaded = errors.New("a lista ainda não foi carregada")

// FormatPrice formata um preço para exibição, sempre com duas casas.
func FormatPrice(p decimal.Decimal) string {
	return "R$ " + p.StringFixed(2)
}

// ImageURL monta a URL pública de uma imagem de produto. Produto sem
// imagem devolve "".
func ImageURL(baseURL, image string) string {
	if image == "" {
		return ""
	}
	return baseURL + "/uploads/" + image
}
