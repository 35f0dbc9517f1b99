package domain

import "errors"

// Erreurs de domaine (sans dépendances externes).
var (
	ErrNotFound          = errors.New("ressource introuvable")
	ErrDuplicate         = errors.New("nom déjà utilisé")
	ErrInvalidInput      = errors.New("entrée invalide")
	ErrReferenced        = errors.New("ressource encore référencée")
	ErrUnresolvedProduct = errors.New("produit de la commande introuvable")
	ErrUpload            = errors.New("échec du stockage de fichier")
)
