package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hygimar/catalogue-api/pkg/config"
)

var _ FileStore = (*LocalStore)(nil)

// LocalStore stratégie disque local (développement et petits déploiements).
// Les locators retournés sont PublicBaseURL + "/" + nom de fichier.
type LocalStore struct {
	dir     string
	baseURL string
}

// NewLocalStore construit le store et crée le répertoire cible si besoin.
func NewLocalStore(cfg config.StorageConfig) (*LocalStore, error) {
	if err := os.MkdirAll(cfg.LocalDir, 0o755); err != nil {
		return nil, fmt.Errorf("créer répertoire uploads: %w", err)
	}
	return &LocalStore{
		dir:     cfg.LocalDir,
		baseURL: strings.TrimSuffix(cfg.PublicBaseURL, "/"),
	}, nil
}

// Store écrit le flux sous un nom unique et retourne l'URL publique.
func (s *LocalStore) Store(_ context.Context, r io.Reader, suggestedName string) (string, error) {
	name := UniqueName(suggestedName)
	path := filepath.Join(s.dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("créer fichier: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		_ = os.Remove(path)
		return "", fmt.Errorf("écrire fichier: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("fermer fichier: %w", err)
	}
	return s.baseURL + "/" + name, nil
}

// Delete supprime le fichier correspondant au locator. Un locator inconnu
// ou déjà supprimé n'est pas une erreur (opération idempotente).
func (s *LocalStore) Delete(_ context.Context, locator string) error {
	name := filepath.Base(locator)
	if name == "." || name == "/" || name == "" {
		return nil
	}
	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("supprimer fichier: %w", err)
	}
	return nil
}
