// Package storage fournit la passerelle d'upload des fichiers produits.
// Une seule capacité est exposée : stocker un flux sous un nom suggéré et
// recevoir un locator adressable ; le déploiement choisit l'implémentation
// (disque local ou bucket S3).
package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"
)

// OpTimeout borne chaque opération de stockage : un S3 qui ne répond pas ne
// doit pas bloquer la requête produit indéfiniment.
const OpTimeout = 30 * time.Second

// FileStore stocke et supprime des fichiers produits.
// Store retourne un locator (URL relative ou absolue) à persister tel quel.
// Delete est au mieux : l'appelant journalise l'échec et continue.
type FileStore interface {
	Store(ctx context.Context, r io.Reader, suggestedName string) (string, error)
	Delete(ctx context.Context, locator string) error
}

// UniqueName préfixe le nom d'origine d'un horodatage pour éviter les
// collisions (même schéma que l'ancien backend, pas de détection au-delà).
func UniqueName(suggestedName string) string {
	base := filepath.Base(strings.TrimSpace(suggestedName))
	if base == "." || base == "/" || base == "" {
		base = "fichier"
	}
	base = strings.ReplaceAll(base, " ", "_")
	return fmt.Sprintf("%d_%s", time.Now().UnixMilli(), base)
}
