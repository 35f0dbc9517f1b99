package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/hygimar/catalogue-api/internal/application/dto"
	"github.com/hygimar/catalogue-api/internal/domain"
	"github.com/hygimar/catalogue-api/internal/domain/entity"
	"github.com/hygimar/catalogue-api/internal/domain/repository"
	"github.com/hygimar/catalogue-api/internal/infrastructure/storage"
	"github.com/hygimar/catalogue-api/pkg/slug"
)

// ProductUseCase cas d'usage d'écriture des produits. Les fichiers arrivent
// déjà stockés (la passerelle d'upload tourne avant) ; ici on valide la
// cohérence taxonomique et on fige les locators dans la fiche.
type ProductUseCase struct {
	repo     repository.ProductRepository
	catRepo  repository.CategoryRepository
	subRepo  repository.SubcategoryRepository
	sscRepo  repository.SubsubcategoryRepository
	markRepo repository.MarkRepository
	store    storage.FileStore
}

// NewProductUseCase construit le cas d'usage.
func NewProductUseCase(
	repo repository.ProductRepository,
	catRepo repository.CategoryRepository,
	subRepo repository.SubcategoryRepository,
	sscRepo repository.SubsubcategoryRepository,
	markRepo repository.MarkRepository,
	store storage.FileStore,
) *ProductUseCase {
	return &ProductUseCase{
		repo:     repo,
		catRepo:  catRepo,
		subRepo:  subRepo,
		sscRepo:  sscRepo,
		markRepo: markRepo,
		store:    store,
	}
}

// Create crée un produit avec ses fichiers déjà stockés.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.ProductFields, images []dto.StoredUpload, tecSheet *dto.StoredUpload) (*dto.ProductResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || in.CategoryID == "" || in.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.validateTaxonomy(ctx, in); err != nil {
		return nil, err
	}

	locators := make([]string, 0, len(images))
	for _, img := range images {
		locators = append(locators, img.Locator)
	}

	now := time.Now()
	product := &entity.Product{
		ID:               uuid.New().String(),
		Name:             name,
		Slug:             slug.Make(name),
		Description:      in.Description,
		Images:           locators,
		PrimaryImage:     resolvePrimaryImage(in.PrimaryImage, images),
		CategoryID:       in.CategoryID,
		SubcategoryID:    in.SubcategoryID,
		SubsubcategoryID: in.SubsubcategoryID,
		MarkID:           in.MarkID,
		Quantity:         in.Quantity,
		InStock:          in.InStock,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if tecSheet != nil {
		product.TecSheet = tecSheet.Locator
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		// La fiche n'a pas été écrite : les fichiers poussés sont orphelins,
		// on les retire du stockage.
		uc.removeFiles(ctx, locators)
		if tecSheet != nil {
			uc.removeFiles(ctx, []string{tecSheet.Locator})
		}
		return nil, err
	}
	view, err := uc.repo.GetViewByID(ctx, product.ID)
	if err != nil {
		return nil, err
	}
	return toProductResponse(view), nil
}

// Update remplace les champs texte du produit. Si de nouvelles images (ou une
// nouvelle fiche technique) sont envoyées, elles remplacent les anciennes et
// les anciens fichiers sont retirés du stockage après l'écriture.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.ProductFields, images []dto.StoredUpload, tecSheet *dto.StoredUpload) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	name := strings.TrimSpace(in.Name)
	if name == "" || in.CategoryID == "" || in.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.validateTaxonomy(ctx, in); err != nil {
		return nil, err
	}

	var obsolete []string
	product.Name = name
	product.Slug = slug.Make(name)
	product.Description = in.Description
	product.CategoryID = in.CategoryID
	product.SubcategoryID = in.SubcategoryID
	product.SubsubcategoryID = in.SubsubcategoryID
	product.MarkID = in.MarkID
	product.Quantity = in.Quantity
	product.InStock = in.InStock

	if len(images) > 0 {
		obsolete = append(obsolete, product.Images...)
		locators := make([]string, 0, len(images))
		for _, img := range images {
			locators = append(locators, img.Locator)
		}
		product.Images = locators
		product.PrimaryImage = resolvePrimaryImage(in.PrimaryImage, images)
	} else if in.PrimaryImage != "" {
		// Pas de nouvelles images : la principale doit désigner un locator
		// déjà porté par le produit.
		if !contains(product.Images, in.PrimaryImage) {
			return nil, domain.ErrInvalidInput
		}
		product.PrimaryImage = in.PrimaryImage
	}
	if tecSheet != nil {
		if product.TecSheet != "" {
			obsolete = append(obsolete, product.TecSheet)
		}
		product.TecSheet = tecSheet.Locator
	}

	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	uc.removeFiles(ctx, obsolete)

	view, err := uc.repo.GetViewByID(ctx, product.ID)
	if err != nil {
		return nil, err
	}
	return toProductResponse(view), nil
}

// Delete supprime un produit puis retire ses fichiers du stockage. Les lignes
// de commande gardent leur instantané de nom, l'historique reste lisible.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	files := append([]string{}, product.Images...)
	if product.TecSheet != "" {
		files = append(files, product.TecSheet)
	}
	uc.removeFiles(ctx, files)
	return nil
}

// validateTaxonomy vérifie l'existence des références et la cohérence
// sous-sous-catégorie / sous-catégorie.
func (uc *ProductUseCase) validateTaxonomy(ctx context.Context, in dto.ProductFields) error {
	category, err := uc.catRepo.GetByID(ctx, in.CategoryID)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrInvalidInput
	}
	if in.SubcategoryID != "" {
		sub, err := uc.subRepo.GetByID(ctx, in.SubcategoryID)
		if err != nil {
			return err
		}
		if sub == nil || sub.CategoryID != in.CategoryID {
			return domain.ErrInvalidInput
		}
	}
	if in.SubsubcategoryID != "" {
		if in.SubcategoryID == "" {
			return domain.ErrInvalidInput
		}
		ssc, err := uc.sscRepo.GetByID(ctx, in.SubsubcategoryID)
		if err != nil {
			return err
		}
		if ssc == nil || ssc.SubcategoryID != in.SubcategoryID {
			return domain.ErrInvalidInput
		}
	}
	if in.MarkID != "" {
		mark, err := uc.markRepo.GetByID(ctx, in.MarkID)
		if err != nil {
			return err
		}
		if mark == nil {
			return domain.ErrInvalidInput
		}
	}
	return nil
}

// removeFiles retire des fichiers du stockage, au mieux : un échec est
// journalisé mais ne remonte jamais, la fiche produit fait foi. Chaque
// suppression est bornée pour ne pas retenir la requête sur un stockage lent.
func (uc *ProductUseCase) removeFiles(ctx context.Context, locators []string) {
	for _, locator := range locators {
		if locator == "" {
			continue
		}
		deleteCtx, cancel := context.WithTimeout(ctx, storage.OpTimeout)
		err := uc.store.Delete(deleteCtx, locator)
		cancel()
		if err != nil {
			log.Warn().Err(err).Str("locator", locator).Msg("suppression du fichier impossible")
		}
	}
}

// resolvePrimaryImage applique la règle de l'image principale : le champ du
// formulaire désigne un des fichiers envoyés par son nom d'origine ; sinon la
// première image stockée devient principale ; sans image, vide.
func resolvePrimaryImage(requested string, images []dto.StoredUpload) string {
	for _, img := range images {
		if requested != "" && img.OriginalName == requested {
			return img.Locator
		}
	}
	if len(images) > 0 {
		return images[0].Locator
	}
	return ""
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
