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

// L'import par noms est idempotent : relancer la même liste ne crée rien.
func TestMarkImportNames_Idempotent(t *testing.T) {
	repo := newFakeMarkRepo()
	uc := usecase.NewMarkUseCase(repo, newFakeProductRepo())

	first, err := uc.ImportNames(context.Background(), []string{"Dettol", " Sanytol ", ""})
	require.NoError(t, err)
	require.Len(t, first, 2)

	second, err := uc.ImportNames(context.Background(), []string{"Dettol", "Sanytol"})
	require.NoError(t, err)
	require.Len(t, second, 2)

	all, err := uc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 2)

	// Les identifiants sont stables entre les deux passes.
	ids := map[string]string{}
	for _, m := range first {
		ids[m.Name] = m.ID
	}
	for _, m := range second {
		assert.Equal(t, ids[m.Name], m.ID)
	}
}

func TestMarkCreate_NomRequis(t *testing.T) {
	uc := usecase.NewMarkUseCase(newFakeMarkRepo(), newFakeProductRepo())
	_, err := uc.Create(context.Background(), dto.CreateMarkRequest{Name: "  "})
	assert.Error(t, err)
}

// La suppression est refusée tant que des produits portent la marque.
func TestMarkDelete_Referencee(t *testing.T) {
	markRepo := newFakeMarkRepo()
	productRepo := newFakeProductRepo()
	uc := usecase.NewMarkUseCase(markRepo, productRepo)

	created, err := uc.Create(context.Background(), dto.CreateMarkRequest{Name: "Dettol"})
	require.NoError(t, err)
	require.NoError(t, productRepo.Create(context.Background(), &entity.Product{
		ID:         "p-gel",
		Name:       "Gel Dettol",
		CategoryID: "cat-hygiene",
		MarkID:     created.ID,
	}))

	err = uc.Delete(context.Background(), created.ID)
	assert.ErrorIs(t, err, domain.ErrReferenced)

	require.NoError(t, productRepo.Delete(context.Background(), "p-gel"))
	require.NoError(t, uc.Delete(context.Background(), created.ID))
}
