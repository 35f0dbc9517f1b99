package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hygimar/catalogue-api/internal/application/dto"
	"github.com/hygimar/catalogue-api/internal/application/usecase"
	"github.com/hygimar/catalogue-api/internal/domain"
)

// buildProductUseCase câble le cas d'usage produit sur une petite taxonomie :
// hygiène > gants > nitrile, plus une catégorie détergents indépendante.
func buildProductUseCase() (*usecase.ProductUseCase, *fakeProductRepo, *fakeFileStore) {
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
	markRepo := newFakeMarkRepo()
	productRepo := newFakeProductRepo()
	store := &fakeFileStore{}
	uc := usecase.NewProductUseCase(productRepo, catRepo, subRepo, sscRepo, markRepo, store)
	return uc, productRepo, store
}

func validFields() dto.ProductFields {
	return dto.ProductFields{
		Name:       "Gants nitrile bleus",
		CategoryID: "cat-hygiene",
		Quantity:   10,
		InStock:    true,
	}
}

// L'image principale désigne un des fichiers envoyés par son nom d'origine.
func TestProductCreate_ImagePrincipaleParNom(t *testing.T) {
	uc, _, _ := buildProductUseCase()
	fields := validFields()
	fields.PrimaryImage = "face.jpg"
	images := []dto.StoredUpload{
		{OriginalName: "dos.jpg", Locator: "/uploads/1_dos.jpg"},
		{OriginalName: "face.jpg", Locator: "/uploads/2_face.jpg"},
	}

	out, err := uc.Create(context.Background(), fields, images, nil)
	require.NoError(t, err)
	assert.Equal(t, "/uploads/2_face.jpg", out.PrimaryImage)
	assert.Equal(t, []string{"/uploads/1_dos.jpg", "/uploads/2_face.jpg"}, out.Images)
}

// Nom inconnu ou champ absent : la première image stockée devient principale.
func TestProductCreate_ImagePrincipaleParDefaut(t *testing.T) {
	uc, _, _ := buildProductUseCase()
	fields := validFields()
	fields.PrimaryImage = "inexistante.jpg"
	images := []dto.StoredUpload{
		{OriginalName: "dos.jpg", Locator: "/uploads/1_dos.jpg"},
	}

	out, err := uc.Create(context.Background(), fields, images, nil)
	require.NoError(t, err)
	assert.Equal(t, "/uploads/1_dos.jpg", out.PrimaryImage)
}

// Sans image, le produit est valide et l'image principale reste vide.
func TestProductCreate_SansImage(t *testing.T) {
	uc, _, _ := buildProductUseCase()

	out, err := uc.Create(context.Background(), validFields(), nil, nil)
	require.NoError(t, err)
	assert.Empty(t, out.PrimaryImage)
	assert.Empty(t, out.Images)
	assert.Equal(t, "gants-nitrile-bleus", out.Slug)
}

// La sous-sous-catégorie doit appartenir à la sous-catégorie déclarée.
func TestProductCreate_CoherenceTaxonomique(t *testing.T) {
	uc, _, _ := buildProductUseCase()

	// Sous-sous-catégorie sans sous-catégorie : refusé.
	fields := validFields()
	fields.SubsubcategoryID = "ssc-nitrile"
	_, err := uc.Create(context.Background(), fields, nil, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Sous-catégorie d'une autre catégorie : refusé.
	fields = validFields()
	fields.CategoryID = "cat-detergents"
	fields.SubcategoryID = "sub-gants"
	_, err = uc.Create(context.Background(), fields, nil, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Chaîne cohérente : accepté.
	fields = validFields()
	fields.SubcategoryID = "sub-gants"
	fields.SubsubcategoryID = "ssc-nitrile"
	_, err = uc.Create(context.Background(), fields, nil, nil)
	assert.NoError(t, err)
}

// Une catégorie inconnue est refusée avant toute écriture.
func TestProductCreate_CategorieInconnue(t *testing.T) {
	uc, repo, _ := buildProductUseCase()
	fields := validFields()
	fields.CategoryID = "cat-fantome"

	_, err := uc.Create(context.Background(), fields, nil, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, repo.byID)
}

// Si l'insertion échoue, les fichiers déjà poussés sont retirés du stockage.
func TestProductCreate_EchecInsertionNettoieLesFichiers(t *testing.T) {
	uc, repo, store := buildProductUseCase()
	repo.createErr = domain.ErrDuplicate
	images := []dto.StoredUpload{
		{OriginalName: "face.jpg", Locator: "/uploads/1_face.jpg"},
	}
	tec := &dto.StoredUpload{OriginalName: "fiche.pdf", Locator: "/uploads/2_fiche.pdf"}

	_, err := uc.Create(context.Background(), validFields(), images, tec)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.ElementsMatch(t, []string{"/uploads/1_face.jpg", "/uploads/2_fiche.pdf"}, store.deleted)
}

// De nouvelles images remplacent les anciennes, qui sont retirées du stockage.
func TestProductUpdate_RemplacementDesImages(t *testing.T) {
	uc, repo, store := buildProductUseCase()
	created, err := uc.Create(context.Background(), validFields(), []dto.StoredUpload{
		{OriginalName: "v1.jpg", Locator: "/uploads/1_v1.jpg"},
	}, nil)
	require.NoError(t, err)

	fields := validFields()
	out, err := uc.Update(context.Background(), created.ID, fields, []dto.StoredUpload{
		{OriginalName: "v2.jpg", Locator: "/uploads/2_v2.jpg"},
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"/uploads/2_v2.jpg"}, out.Images)
	assert.Equal(t, "/uploads/2_v2.jpg", out.PrimaryImage)
	assert.Contains(t, store.deleted, "/uploads/1_v1.jpg")
	assert.Len(t, repo.byID, 1)
}

// Sans nouvelle image, l'image principale doit désigner un locator existant.
func TestProductUpdate_ImagePrincipaleExistante(t *testing.T) {
	uc, _, _ := buildProductUseCase()
	created, err := uc.Create(context.Background(), validFields(), []dto.StoredUpload{
		{OriginalName: "a.jpg", Locator: "/uploads/1_a.jpg"},
		{OriginalName: "b.jpg", Locator: "/uploads/2_b.jpg"},
	}, nil)
	require.NoError(t, err)

	fields := validFields()
	fields.PrimaryImage = "/uploads/2_b.jpg"
	out, err := uc.Update(context.Background(), created.ID, fields, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "/uploads/2_b.jpg", out.PrimaryImage)

	fields.PrimaryImage = "/uploads/autre.jpg"
	_, err = uc.Update(context.Background(), created.ID, fields, nil, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// La suppression retire la fiche puis ses fichiers.
func TestProductDelete_RetireLesFichiers(t *testing.T) {
	uc, repo, store := buildProductUseCase()
	created, err := uc.Create(context.Background(), validFields(), []dto.StoredUpload{
		{OriginalName: "face.jpg", Locator: "/uploads/1_face.jpg"},
	}, &dto.StoredUpload{OriginalName: "fiche.pdf", Locator: "/uploads/2_fiche.pdf"})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), created.ID))
	assert.Empty(t, repo.byID)
	assert.ElementsMatch(t, []string{"/uploads/1_face.jpg", "/uploads/2_fiche.pdf"}, store.deleted)

	// Chaque suppression part avec un contexte borné : un stockage qui ne
	// répond pas ne retient pas la requête.
	assert.Equal(t, 2, store.ctxsBounded)
	assert.Zero(t, store.ctxsUnbound)
}

func TestProductDelete_Introuvable(t *testing.T) {
	uc, _, _ := buildProductUseCase()
	err := uc.Delete(context.Background(), "absent")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
