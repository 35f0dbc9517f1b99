package usecase_test

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/hygimar/catalogue-api/internal/domain"
	"github.com/hygimar/catalogue-api/internal/domain/entity"
	"github.com/hygimar/catalogue-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Doubles en mémoire des ports de persistance
// ──────────────────────────────────────────────────────────────────────────────

type fakeCategoryRepo struct {
	byID map[string]*entity.Category
}

func newFakeCategoryRepo(categories ...*entity.Category) *fakeCategoryRepo {
	m := make(map[string]*entity.Category)
	for _, c := range categories {
		m[c.ID] = c
	}
	return &fakeCategoryRepo{byID: m}
}

func (f *fakeCategoryRepo) Create(_ context.Context, c *entity.Category) error {
	f.byID[c.ID] = c
	return nil
}

func (f *fakeCategoryRepo) GetByID(_ context.Context, id string) (*entity.Category, error) {
	return f.byID[id], nil
}

func (f *fakeCategoryRepo) List(_ context.Context, isMark *bool) ([]*entity.Category, error) {
	var list []*entity.Category
	for _, c := range f.byID {
		if isMark != nil && c.IsMark != *isMark {
			continue
		}
		list = append(list, c)
	}
	return list, nil
}

func (f *fakeCategoryRepo) Update(_ context.Context, c *entity.Category) error {
	f.byID[c.ID] = c
	return nil
}

func (f *fakeCategoryRepo) Delete(_ context.Context, id string) error {
	delete(f.byID, id)
	return nil
}

type fakeSubcategoryRepo struct {
	byID map[string]*entity.Subcategory
}

func newFakeSubcategoryRepo(subs ...*entity.Subcategory) *fakeSubcategoryRepo {
	m := make(map[string]*entity.Subcategory)
	for _, s := range subs {
		m[s.ID] = s
	}
	return &fakeSubcategoryRepo{byID: m}
}

// Create rejoue la contrainte du schéma : le nom est unique sur tout le
// catalogue, pas seulement dans la catégorie parente.
func (f *fakeSubcategoryRepo) Create(_ context.Context, s *entity.Subcategory) error {
	for _, existing := range f.byID {
		if existing.Name == s.Name {
			return domain.ErrDuplicate
		}
	}
	f.byID[s.ID] = s
	return nil
}

func (f *fakeSubcategoryRepo) GetByID(_ context.Context, id string) (*entity.Subcategory, error) {
	return f.byID[id], nil
}

func (f *fakeSubcategoryRepo) List(_ context.Context) ([]*entity.Subcategory, error) {
	var list []*entity.Subcategory
	for _, s := range f.byID {
		list = append(list, s)
	}
	return list, nil
}

func (f *fakeSubcategoryRepo) ListByCategory(_ context.Context, categoryID string) ([]*entity.Subcategory, error) {
	var list []*entity.Subcategory
	for _, s := range f.byID {
		if s.CategoryID == categoryID {
			list = append(list, s)
		}
	}
	return list, nil
}

func (f *fakeSubcategoryRepo) CountByCategory(_ context.Context, categoryID string) (int, error) {
	list, _ := f.ListByCategory(context.Background(), categoryID)
	return len(list), nil
}

func (f *fakeSubcategoryRepo) Update(_ context.Context, s *entity.Subcategory) error {
	f.byID[s.ID] = s
	return nil
}

func (f *fakeSubcategoryRepo) Delete(_ context.Context, id string) error {
	delete(f.byID, id)
	return nil
}

type fakeSubsubcategoryRepo struct {
	byID map[string]*entity.Subsubcategory
}

func newFakeSubsubcategoryRepo(sscs ...*entity.Subsubcategory) *fakeSubsubcategoryRepo {
	m := make(map[string]*entity.Subsubcategory)
	for _, s := range sscs {
		m[s.ID] = s
	}
	return &fakeSubsubcategoryRepo{byID: m}
}

// Create rejoue la contrainte du schéma : nom unique sur tout le catalogue.
func (f *fakeSubsubcategoryRepo) Create(_ context.Context, s *entity.Subsubcategory) error {
	for _, existing := range f.byID {
		if existing.Name == s.Name {
			return domain.ErrDuplicate
		}
	}
	f.byID[s.ID] = s
	return nil
}

func (f *fakeSubsubcategoryRepo) GetByID(_ context.Context, id string) (*entity.Subsubcategory, error) {
	return f.byID[id], nil
}

func (f *fakeSubsubcategoryRepo) List(_ context.Context) ([]*entity.Subsubcategory, error) {
	var list []*entity.Subsubcategory
	for _, s := range f.byID {
		list = append(list, s)
	}
	return list, nil
}

func (f *fakeSubsubcategoryRepo) ListBySubcategory(_ context.Context, subcategoryID string) ([]*entity.Subsubcategory, error) {
	var list []*entity.Subsubcategory
	for _, s := range f.byID {
		if s.SubcategoryID == subcategoryID {
			list = append(list, s)
		}
	}
	return list, nil
}

func (f *fakeSubsubcategoryRepo) CountBySubcategory(_ context.Context, subcategoryID string) (int, error) {
	list, _ := f.ListBySubcategory(context.Background(), subcategoryID)
	return len(list), nil
}

func (f *fakeSubsubcategoryRepo) Update(_ context.Context, s *entity.Subsubcategory) error {
	f.byID[s.ID] = s
	return nil
}

func (f *fakeSubsubcategoryRepo) Delete(_ context.Context, id string) error {
	delete(f.byID, id)
	return nil
}

type fakeMarkRepo struct {
	byID map[string]*entity.Mark
}

func newFakeMarkRepo(marks ...*entity.Mark) *fakeMarkRepo {
	m := make(map[string]*entity.Mark)
	for _, mk := range marks {
		m[mk.ID] = mk
	}
	return &fakeMarkRepo{byID: m}
}

func (f *fakeMarkRepo) Create(_ context.Context, m *entity.Mark) error {
	f.byID[m.ID] = m
	return nil
}

func (f *fakeMarkRepo) GetByID(_ context.Context, id string) (*entity.Mark, error) {
	return f.byID[id], nil
}

func (f *fakeMarkRepo) GetByName(_ context.Context, name string) (*entity.Mark, error) {
	for _, m := range f.byID {
		if m.Name == name {
			return m, nil
		}
	}
	return nil, nil
}

func (f *fakeMarkRepo) List(_ context.Context) ([]*entity.Mark, error) {
	var list []*entity.Mark
	for _, m := range f.byID {
		list = append(list, m)
	}
	return list, nil
}

func (f *fakeMarkRepo) Update(_ context.Context, m *entity.Mark) error {
	f.byID[m.ID] = m
	return nil
}

func (f *fakeMarkRepo) Delete(_ context.Context, id string) error {
	delete(f.byID, id)
	return nil
}

// fakeProductRepo double en mémoire du port produit. Les vues jointes sont
// recomposées à la volée avec des noms vides, suffisant pour les cas d'usage.
type fakeProductRepo struct {
	byID        map[string]*entity.Product
	createErr   error
	lastRelated repository.RelatedFilter
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	m := make(map[string]*entity.Product)
	for _, p := range products {
		m[p.ID] = p
	}
	return &fakeProductRepo{byID: m}
}

func (f *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.byID[p.ID] = p
	return nil
}

func (f *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	return f.byID[id], nil
}

func (f *fakeProductRepo) GetViewByID(_ context.Context, id string) (*entity.ProductView, error) {
	p := f.byID[id]
	if p == nil {
		return nil, nil
	}
	return &entity.ProductView{Product: *p}, nil
}

func (f *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	f.byID[p.ID] = p
	return nil
}

func (f *fakeProductRepo) Delete(_ context.Context, id string) error {
	delete(f.byID, id)
	return nil
}

func (f *fakeProductRepo) ListViews(_ context.Context) ([]*entity.ProductView, error) {
	var list []*entity.ProductView
	for _, p := range f.byID {
		list = append(list, &entity.ProductView{Product: *p})
	}
	return list, nil
}

func (f *fakeProductRepo) ListViewsByCategory(_ context.Context, categoryID string) ([]*entity.ProductView, error) {
	var list []*entity.ProductView
	for _, p := range f.byID {
		if p.CategoryID == categoryID {
			list = append(list, &entity.ProductView{Product: *p})
		}
	}
	return list, nil
}

func (f *fakeProductRepo) ListViewsBySubcategory(_ context.Context, subcategoryID string) ([]*entity.ProductView, error) {
	var list []*entity.ProductView
	for _, p := range f.byID {
		if p.SubcategoryID == subcategoryID {
			list = append(list, &entity.ProductView{Product: *p})
		}
	}
	return list, nil
}

func (f *fakeProductRepo) ListViewsBySubsubcategory(_ context.Context, subsubcategoryID string) ([]*entity.ProductView, error) {
	var list []*entity.ProductView
	for _, p := range f.byID {
		if p.SubsubcategoryID == subsubcategoryID {
			list = append(list, &entity.ProductView{Product: *p})
		}
	}
	return list, nil
}

func (f *fakeProductRepo) ListViewsByMark(_ context.Context, markID string) ([]*entity.ProductView, error) {
	var list []*entity.ProductView
	for _, p := range f.byID {
		if p.MarkID == markID {
			list = append(list, &entity.ProductView{Product: *p})
		}
	}
	return list, nil
}

func (f *fakeProductRepo) ListRelated(_ context.Context, filter repository.RelatedFilter) ([]*entity.ProductView, error) {
	f.lastRelated = filter
	var list []*entity.ProductView
	for _, p := range f.byID {
		if p.ID == filter.ExcludeID || p.CategoryID != filter.CategoryID {
			continue
		}
		if filter.SubcategoryID != "" && p.SubcategoryID != filter.SubcategoryID {
			continue
		}
		if len(list) >= filter.Limit {
			break
		}
		list = append(list, &entity.ProductView{Product: *p})
	}
	return list, nil
}

func (f *fakeProductRepo) CountByCategory(_ context.Context, categoryID string) (int, error) {
	list, _ := f.ListViewsByCategory(context.Background(), categoryID)
	return len(list), nil
}

func (f *fakeProductRepo) CountBySubcategory(_ context.Context, subcategoryID string) (int, error) {
	list, _ := f.ListViewsBySubcategory(context.Background(), subcategoryID)
	return len(list), nil
}

func (f *fakeProductRepo) CountBySubsubcategory(_ context.Context, subsubcategoryID string) (int, error) {
	list, _ := f.ListViewsBySubsubcategory(context.Background(), subsubcategoryID)
	return len(list), nil
}

func (f *fakeProductRepo) CountByMark(_ context.Context, markID string) (int, error) {
	list, _ := f.ListViewsByMark(context.Background(), markID)
	return len(list), nil
}

// fakeFileStore enregistre les fichiers stockés et supprimés, et note si les
// appels arrivent avec un contexte borné.
type fakeFileStore struct {
	mu          sync.Mutex
	stored      []string
	deleted     []string
	ctxsBounded int
	ctxsUnbound int
}

func (f *fakeFileStore) Store(_ context.Context, _ io.Reader, suggestedName string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	locator := "/uploads/" + suggestedName
	f.stored = append(f.stored, locator)
	return locator, nil
}

func (f *fakeFileStore) Delete(ctx context.Context, locator string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := ctx.Deadline(); ok {
		f.ctxsBounded++
	} else {
		f.ctxsUnbound++
	}
	f.deleted = append(f.deleted, locator)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Constructeurs d'entités de test
// ──────────────────────────────────────────────────────────────────────────────

func testCategory(id, name string) *entity.Category {
	now := time.Now()
	return &entity.Category{ID: id, Name: name, CreatedAt: now, UpdatedAt: now}
}

func testSubcategory(id, categoryID, name string) *entity.Subcategory {
	now := time.Now()
	return &entity.Subcategory{ID: id, CategoryID: categoryID, Name: name, CreatedAt: now, UpdatedAt: now}
}

func testSubsubcategory(id, subcategoryID, name string) *entity.Subsubcategory {
	now := time.Now()
	return &entity.Subsubcategory{ID: id, SubcategoryID: subcategoryID, Name: name, CreatedAt: now, UpdatedAt: now}
}
