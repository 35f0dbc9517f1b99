package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hygimar/catalogue-api/internal/application/dto"
	"github.com/hygimar/catalogue-api/internal/application/usecase"
	"github.com/hygimar/catalogue-api/internal/domain"
	"github.com/hygimar/catalogue-api/internal/domain/entity"
)

func buildSubcategoryUseCase() (*usecase.SubcategoryUseCase, *fakeSubcategoryRepo, *fakeSubsubcategoryRepo, *fakeProductRepo) {
	catRepo := newFakeCategoryRepo(
		testCategory("cat-hygiene", "Hygiène"),
		testCategory("cat-detergents", "Détergents"),
	)
	subRepo := newFakeSubcategoryRepo(
		testSubcategory("sub-gants", "cat-hygiene", "Gants"),
	)
	sscRepo := newFakeSubsubcategoryRepo(
		testSubsubcategory("ssc-nitrile", "sub-gants", "Nitrile"),
	)
	productRepo := newFakeProductRepo()
	return usecase.NewSubcategoryUseCase(subRepo, catRepo, sscRepo, productRepo), subRepo, sscRepo, productRepo
}

// Le nom d'une sous-catégorie est unique sur tout le catalogue : le même nom
// sous une autre catégorie est refusé.
func TestSubcategoryCreate_NomUniqueGlobal(t *testing.T) {
	uc, _, _, _ := buildSubcategoryUseCase()

	_, err := uc.Create(context.Background(), dto.CreateSubcategoryRequest{
		CategoryID: "cat-detergents",
		Name:       "Gants",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	// Un autre nom sous la même catégorie passe.
	_, err = uc.Create(context.Background(), dto.CreateSubcategoryRequest{
		CategoryID: "cat-detergents",
		Name:       "Éponges",
	})
	assert.NoError(t, err)
}

func TestSubcategoryCreate_CategorieInconnue(t *testing.T) {
	uc, _, _, _ := buildSubcategoryUseCase()
	_, err := uc.Create(context.Background(), dto.CreateSubcategoryRequest{
		CategoryID: "cat-fantome",
		Name:       "Éponges",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// La suppression est refusée tant que des sous-sous-catégories ou des produits
// référencent la sous-catégorie.
func TestSubcategoryDelete_Referencee(t *testing.T) {
	uc, _, sscRepo, productRepo := buildSubcategoryUseCase()

	// Nitrile est encore rattachée à Gants.
	err := uc.Delete(context.Background(), "sub-gants")
	assert.ErrorIs(t, err, domain.ErrReferenced)

	// Plus d'enfant mais un produit la référence encore.
	require.NoError(t, sscRepo.Delete(context.Background(), "ssc-nitrile"))
	require.NoError(t, productRepo.Create(context.Background(), &entity.Product{
		ID:            "p-gants",
		Name:          "Gants nitrile",
		CategoryID:    "cat-hygiene",
		SubcategoryID: "sub-gants",
	}))
	err = uc.Delete(context.Background(), "sub-gants")
	assert.ErrorIs(t, err, domain.ErrReferenced)

	// Plus aucune référence : la suppression passe.
	require.NoError(t, productRepo.Delete(context.Background(), "p-gants"))
	require.NoError(t, uc.Delete(context.Background(), "sub-gants"))
}
