package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hygimar/catalogue-api/internal/application/usecase"
	"github.com/hygimar/catalogue-api/internal/domain"
	"github.com/hygimar/catalogue-api/internal/domain/entity"
)

func buildCatalogUseCase(products ...*entity.Product) (*usecase.CatalogUseCase, *fakeProductRepo) {
	catRepo := newFakeCategoryRepo(testCategory("cat-hygiene", "Hygiène"))
	subRepo := newFakeSubcategoryRepo(testSubcategory("sub-gants", "cat-hygiene", "Gants"))
	sscRepo := newFakeSubsubcategoryRepo()
	markRepo := newFakeMarkRepo()
	productRepo := newFakeProductRepo(products...)
	return usecase.NewCatalogUseCase(productRepo, catRepo, subRepo, sscRepo, markRepo), productRepo
}

func catalogProduct(id, categoryID, subcategoryID string) *entity.Product {
	return &entity.Product{ID: id, Name: "Produit " + id, CategoryID: categoryID, SubcategoryID: subcategoryID}
}

// L'ancre avec sous-catégorie contraint la recherche aux deux dimensions,
// cinq suggestions au plus, ancre exclue.
func TestCatalogRelated_AncreAvecSousCategorie(t *testing.T) {
	anchor := catalogProduct("p-ancre", "cat-hygiene", "sub-gants")
	uc, repo := buildCatalogUseCase(anchor)

	_, err := uc.Related(context.Background(), "p-ancre")
	require.NoError(t, err)

	assert.Equal(t, "cat-hygiene", repo.lastRelated.CategoryID)
	assert.Equal(t, "sub-gants", repo.lastRelated.SubcategoryID)
	assert.Equal(t, "p-ancre", repo.lastRelated.ExcludeID)
	assert.Equal(t, 5, repo.lastRelated.Limit)
}

// Sans sous-catégorie sur l'ancre, seule la catégorie contraint la recherche.
func TestCatalogRelated_AncreSansSousCategorie(t *testing.T) {
	anchor := catalogProduct("p-ancre", "cat-hygiene", "")
	uc, repo := buildCatalogUseCase(anchor)

	_, err := uc.Related(context.Background(), "p-ancre")
	require.NoError(t, err)
	assert.Empty(t, repo.lastRelated.SubcategoryID)
}

// L'ancre n'apparaît jamais dans ses propres suggestions.
func TestCatalogRelated_AncreExclue(t *testing.T) {
	anchor := catalogProduct("p-ancre", "cat-hygiene", "sub-gants")
	voisin := catalogProduct("p-voisin", "cat-hygiene", "sub-gants")
	uc, _ := buildCatalogUseCase(anchor, voisin)

	out, err := uc.Related(context.Background(), "p-ancre")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "p-voisin", out[0].ID)
}

func TestCatalogRelated_AncreIntrouvable(t *testing.T) {
	uc, _ := buildCatalogUseCase()
	_, err := uc.Related(context.Background(), "absent")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Les détails d'un nœud inexistant répondent introuvable, pas une liste vide.
func TestCatalogDetails_NoeudIntrouvable(t *testing.T) {
	uc, _ := buildCatalogUseCase()

	_, err := uc.CategoryDetails(context.Background(), "absent")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.SubcategoryDetails(context.Background(), "absent")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Les détails d'une catégorie ne remontent que ses produits directs.
func TestCatalogDetails_ProduitsDirects(t *testing.T) {
	dedans := catalogProduct("p-dedans", "cat-hygiene", "")
	uc, _ := buildCatalogUseCase(dedans)

	out, err := uc.CategoryDetails(context.Background(), "cat-hygiene")
	require.NoError(t, err)
	assert.Equal(t, "Hygiène", out.Category.Name)
	require.Len(t, out.Products, 1)
	assert.Equal(t, "p-dedans", out.Products[0].ID)
}
