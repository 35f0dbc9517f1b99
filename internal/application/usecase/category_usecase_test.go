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

func buildCategoryUseCase() (*usecase.CategoryUseCase, *fakeCategoryRepo, *fakeSubcategoryRepo, *fakeProductRepo) {
	catRepo := newFakeCategoryRepo(testCategory("cat-hygiene", "Hygiène"))
	subRepo := newFakeSubcategoryRepo(
		testSubcategory("sub-gants", "cat-hygiene", "Gants"),
		testSubcategory("sub-savons", "cat-hygiene", "Savons"),
	)
	sscRepo := newFakeSubsubcategoryRepo(
		testSubsubcategory("ssc-nitrile", "sub-gants", "Nitrile"),
	)
	productRepo := newFakeProductRepo()
	return usecase.NewCategoryUseCase(catRepo, subRepo, sscRepo, productRepo), catRepo, subRepo, productRepo
}

// L'arborescence est recomposée depuis les références parent : chaque enfant
// apparaît sous son parent, jamais ailleurs.
func TestCategoryTree_Recomposition(t *testing.T) {
	uc, _, _, _ := buildCategoryUseCase()

	trees, err := uc.Tree(context.Background())
	require.NoError(t, err)
	require.Len(t, trees, 1)

	tree := trees[0]
	assert.Equal(t, "Hygiène", tree.Name)
	require.Len(t, tree.Subcategories, 2)

	var gants *dto.SubcategoryTreeResponse
	for i := range tree.Subcategories {
		if tree.Subcategories[i].Name == "Gants" {
			gants = &tree.Subcategories[i]
		} else {
			// Les sous-catégories sans enfants portent une liste vide, pas nil.
			assert.NotNil(t, tree.Subcategories[i].Subsubcategories)
			assert.Empty(t, tree.Subcategories[i].Subsubcategories)
		}
	}
	require.NotNil(t, gants)
	require.Len(t, gants.Subsubcategories, 1)
	assert.Equal(t, "Nitrile", gants.Subsubcategories[0].Name)
}

// Création d'une catégorie avec ses sous-catégories en un appel ; les noms
// vides sont ignorés.
func TestCategoryCreateWithSubs(t *testing.T) {
	uc, _, subRepo, _ := buildCategoryUseCase()

	out, err := uc.CreateWithSubs(context.Background(), dto.CreateCategoryWithSubsRequest{
		Name:          "Désinfection",
		Subcategories: []string{"Sprays", "", "Lingettes"},
	})
	require.NoError(t, err)
	require.Len(t, out.Subcategories, 2)

	subs, err := subRepo.ListByCategory(context.Background(), out.ID)
	require.NoError(t, err)
	assert.Len(t, subs, 2)
}

// Le lot n'est pas transactionnel : un doublon sur la Nième sous-catégorie
// laisse la catégorie et les précédentes en place.
func TestCategoryCreateWithSubs_EchecPartiel(t *testing.T) {
	uc, catRepo, subRepo, _ := buildCategoryUseCase()

	// "Gants" existe déjà sous Hygiène, la création du lot échoue au milieu.
	_, err := uc.CreateWithSubs(context.Background(), dto.CreateCategoryWithSubsRequest{
		Name:          "Protection",
		Subcategories: []string{"Masques", "Gants", "Visières"},
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	categories, err := catRepo.List(context.Background(), nil)
	require.NoError(t, err)
	var created string
	for _, c := range categories {
		if c.Name == "Protection" {
			created = c.ID
		}
	}
	require.NotEmpty(t, created, "la catégorie du lot reste en place")
	subs, err := subRepo.ListByCategory(context.Background(), created)
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, "Masques", subs[0].Name)
}

// La suppression est refusée tant que des sous-catégories ou des produits
// référencent la catégorie.
func TestCategoryDelete_Referencee(t *testing.T) {
	uc, catRepo, _, productRepo := buildCategoryUseCase()

	// Des sous-catégories existent encore sous Hygiène.
	err := uc.Delete(context.Background(), "cat-hygiene")
	assert.ErrorIs(t, err, domain.ErrReferenced)

	// Une catégorie vide de sous-catégories mais portant un produit.
	require.NoError(t, catRepo.Create(context.Background(), testCategory("cat-papier", "Papier")))
	require.NoError(t, productRepo.Create(context.Background(), &entity.Product{
		ID:         "p-essuie",
		Name:       "Essuie-tout",
		CategoryID: "cat-papier",
	}))
	err = uc.Delete(context.Background(), "cat-papier")
	assert.ErrorIs(t, err, domain.ErrReferenced)

	// Plus aucune référence : la suppression passe.
	require.NoError(t, productRepo.Delete(context.Background(), "p-essuie"))
	require.NoError(t, uc.Delete(context.Background(), "cat-papier"))
}

// Le nom est requis à la création et à la mise à jour.
func TestCategoryCreate_NomRequis(t *testing.T) {
	uc, _, _, _ := buildCategoryUseCase()

	_, err := uc.Create(context.Background(), dto.CreateCategoryRequest{Name: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	vide := ""
	_, err = uc.Update(context.Background(), "cat-hygiene", dto.UpdateCategoryRequest{Name: &vide})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCategoryUpdate_Introuvable(t *testing.T) {
	uc, _, _, _ := buildCategoryUseCase()
	nom := "Peu importe"
	_, err := uc.Update(context.Background(), "absent", dto.UpdateCategoryRequest{Name: &nom})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Le filtre isMark sépare les catégories héritées du menu normal.
func TestCategoryList_FiltreIsMark(t *testing.T) {
	uc, catRepo, _, _ := buildCategoryUseCase()
	marked := testCategory("cat-marque", "Ancienne marque")
	marked.IsMark = true
	require.NoError(t, catRepo.Create(context.Background(), marked))

	isMark := true
	out, err := uc.List(context.Background(), &isMark)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Ancienne marque", out[0].Name)
}
