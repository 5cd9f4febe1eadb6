package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Pedrohss2/cardapio-front/internal/application/dto"
)

// State é o conteúdo persistido da sessão. As chaves do JSON são as mesmas
// do armazenamento do painel: accessToken, company e user.
type State struct {
	AccessToken string               `json:"accessToken"`
	Company     *dto.CompanyResponse `json:"company,omitempty"`
	User        *dto.UserResponse    `json:"user,omitempty"`
}

// Store persiste o estado da sessão entre execuções do gateway.
type Store interface {
	// Load devolve o estado salvo, ou nil quando não há sessão.
	Load() (*State, error)
	// Save grava o estado completo.
	Save(State) error
	// Clear apaga a sessão persistida. Ausência não é erro.
	Clear() error
}

// FileStore persiste a sessão como JSON num arquivo local.
type FileStore struct {
	path string
}

// NewFileStore cria o store, garantindo o diretório do arquivo.
func NewFileStore(path string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("criar diretório da sessão: %w", err)
	}
	return &FileStore{path: path}, nil
}

// Load lê o estado salvo. Arquivo ausente significa sessão inexistente.
func (s *FileStore) Load() (*State, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("ler sessão: %w", err)
	}
	var st State
	if err := json.Unmarshal(b, &st); err != nil {
		return nil, fmt.Errorf("decodificar sessão: %w", err)
	}
	if st.AccessToken == "" {
		return nil, nil
	}
	return &st, nil
}

// Save grava o estado com permissão restrita ao dono.
func (s *FileStore) Save(st State) error {
	b, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("serializar sessão: %w", err)
	}
	if err := os.WriteFile(s.path, b, 0o600); err != nil {
		return fmt.Errorf("gravar sessão: %w", err)
	}
	return nil
}

// Clear apaga o arquivo de sessão.
func (s *FileStore) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("apagar sessão: %w", err)
	}
	return nil
}
