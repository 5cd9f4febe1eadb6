package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// LocalStorage grava imagens de produto no diretório de uploads servido pela
// API em /uploads. Os nomes são gerados (uuid + extensão original) para que o
// arquivo persistido nunca dependa do nome enviado pelo cliente.
type LocalStorage struct {
	dir string
}

// NewLocalStorage constrói o storage, criando o diretório se necessário.
func NewLocalStorage(dir string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("criar diretório de uploads: %w", err)
	}
	return &LocalStorage{dir: dir}, nil
}

// Dir devolve o diretório raiz dos uploads (para servir estático).
func (s *LocalStorage) Dir() string { return s.dir }

// Save grava o conteúdo e devolve o nome do arquivo gerado, que é o valor
// persistido no campo image do produto.
func (s *LocalStorage) Save(originalName string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	name := uuid.New().String() + ext
	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("criar arquivo de upload: %w", err)
	}
	defer f.Close()
	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("gravar upload: %w", err)
	}
	return name, nil
}

// Remove apaga um arquivo de upload. Ausência não é erro: a imagem pode já
// ter sido substituída ou nunca ter existido.
func (s *LocalStorage) Remove(name string) error {
	if name == "" {
		return nil
	}
	err := os.Remove(filepath.Join(s.dir, filepath.Base(name)))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remover upload: %w", err)
	}
	return nil
}
