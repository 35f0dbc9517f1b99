package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/hygimar/catalogue-api/internal/domain"
	"github.com/hygimar/catalogue-api/internal/domain/entity"
	"github.com/hygimar/catalogue-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implémentation du port ProductRepository sur PostgreSQL (pool ou tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construit l'adaptateur. Passer pool ou tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, name, slug, description, images, primary_image, tec_sheet,
	category_id, subcategory_id, subsubcategory_id, mark_id, quantity, in_stock, created_at, updated_at`

// viewQuery joint le produit aux quatre dimensions de taxonomie.
const viewQuery = `
	SELECT p.id, p.name, p.slug, p.description, p.images, p.primary_image, p.tec_sheet,
	       p.category_id, p.subcategory_id, p.subsubcategory_id, p.mark_id,
	       p.quantity, p.in_stock, p.created_at, p.updated_at,
	       c.name, sc.name, ssc.name, m.name
	FROM products p
	JOIN categories c ON c.id = p.category_id
	LEFT JOIN subcategories sc ON sc.id = p.subcategory_id
	LEFT JOIN subsubcategories ssc ON ssc.id = p.subsubcategory_id
	LEFT JOIN marks m ON m.id = p.mark_id`

// Create persiste un nouveau produit.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.Name, p.Slug, p.Description, p.Images,
		nullable(p.PrimaryImage), nullable(p.TecSheet),
		p.CategoryID, nullable(p.SubcategoryID), nullable(p.SubsubcategoryID), nullable(p.MarkID),
		p.Quantity, p.InStock, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID retourne le produit ou nil si absent.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	var p entity.Product
	var primary, tec, subcatg, subsubcatg, mark *string
	err := r.q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Slug, &p.Description, &p.Images, &primary, &tec,
		&p.CategoryID, &subcatg, &subsubcatg, &mark,
		&p.Quantity, &p.InStock, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	p.PrimaryImage, p.TecSheet = deref(primary), deref(tec)
	p.SubcategoryID, p.SubsubcategoryID, p.MarkID = deref(subcatg), deref(subsubcatg), deref(mark)
	return &p, nil
}

// GetViewByID retourne le produit joint à la taxonomie ou nil si absent.
func (r *ProductRepo) GetViewByID(ctx context.Context, id string) (*entity.ProductView, error) {
	row := r.q.QueryRow(ctx, viewQuery+` WHERE p.id = $1`, id)
	v, err := scanView(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product view: %w", err)
	}
	return v, nil
}

// Update remplace tous les champs modifiables du produit.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	query := `
		UPDATE products SET name = $2, slug = $3, description = $4, images = $5,
			primary_image = $6, tec_sheet = $7, category_id = $8, subcategory_id = $9,
			subsubcategory_id = $10, mark_id = $11, quantity = $12, in_stock = $13, updated_at = $14
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.Name, p.Slug, p.Description, p.Images,
		nullable(p.PrimaryImage), nullable(p.TecSheet),
		p.CategoryID, nullable(p.SubcategoryID), nullable(p.SubsubcategoryID), nullable(p.MarkID),
		p.Quantity, p.InStock, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// Delete supprime le produit. Les lignes de commande gardent leur instantané de nom.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// ListViews retourne tous les produits joints, du plus récent au plus ancien.
func (r *ProductRepo) ListViews(ctx context.Context) ([]*entity.ProductView, error) {
	return r.listViews(ctx, viewQuery+` ORDER BY p.created_at DESC`)
}

// ListViewsByCategory filtre sur la catégorie (égalité stricte, sans cascade).
func (r *ProductRepo) ListViewsByCategory(ctx context.Context, categoryID string) ([]*entity.ProductView, error) {
	return r.listViews(ctx, viewQuery+` WHERE p.category_id = $1 ORDER BY p.created_at DESC`, categoryID)
}

// ListViewsBySubcategory filtre sur la sous-catégorie.
func (r *ProductRepo) ListViewsBySubcategory(ctx context.Context, subcategoryID string) ([]*entity.ProductView, error) {
	return r.listViews(ctx, viewQuery+` WHERE p.subcategory_id = $1 ORDER BY p.created_at DESC`, subcategoryID)
}

// ListViewsBySubsubcategory filtre sur la sous-sous-catégorie.
func (r *ProductRepo) ListViewsBySubsubcategory(ctx context.Context, subsubcategoryID string) ([]*entity.ProductView, error) {
	return r.listViews(ctx, viewQuery+` WHERE p.subsubcategory_id = $1 ORDER BY p.created_at DESC`, subsubcategoryID)
}

// ListViewsByMark filtre sur la marque.
func (r *ProductRepo) ListViewsByMark(ctx context.Context, markID string) ([]*entity.ProductView, error) {
	return r.listViews(ctx, viewQuery+` WHERE p.mark_id = $1 ORDER BY p.created_at DESC`, markID)
}

// ListRelated retourne les produits liés : même catégorie, même sous-catégorie
// si l'ancre en a une, ancre exclue, au plus f.Limit résultats.
func (r *ProductRepo) ListRelated(ctx context.Context, f repository.RelatedFilter) ([]*entity.ProductView, error) {
	query := viewQuery + ` WHERE p.category_id = $1 AND p.id <> $2`
	args := []any{f.CategoryID, f.ExcludeID}
	if f.SubcategoryID != "" {
		query += ` AND p.subcategory_id = $3`
		args = append(args, f.SubcategoryID)
	}
	query += fmt.Sprintf(` ORDER BY p.created_at DESC LIMIT %d`, f.Limit)
	return r.listViews(ctx, query, args...)
}

func (r *ProductRepo) listViews(ctx context.Context, query string, args ...any) ([]*entity.ProductView, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProductView
	for rows.Next() {
		v, err := scanView(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, v)
	}
	return list, rows.Err()
}

func scanView(row pgx.Row) (*entity.ProductView, error) {
	var v entity.ProductView
	var primary, tec, subcatg, subsubcatg, mark *string
	var subcatgName, subsubcatgName, markName *string
	err := row.Scan(
		&v.ID, &v.Name, &v.Slug, &v.Description, &v.Images, &primary, &tec,
		&v.CategoryID, &subcatg, &subsubcatg, &mark,
		&v.Quantity, &v.InStock, &v.CreatedAt, &v.UpdatedAt,
		&v.CategoryName, &subcatgName, &subsubcatgName, &markName,
	)
	if err != nil {
		return nil, err
	}
	v.PrimaryImage, v.TecSheet = deref(primary), deref(tec)
	v.SubcategoryID, v.SubsubcategoryID, v.MarkID = deref(subcatg), deref(subsubcatg), deref(mark)
	v.SubcategoryName, v.SubsubcategoryName, v.MarkName = deref(subcatgName), deref(subsubcatgName), deref(markName)
	return &v, nil
}

// CountByCategory compte les produits rattachés à une catégorie.
func (r *ProductRepo) CountByCategory(ctx context.Context, categoryID string) (int, error) {
	return r.count(ctx, `SELECT count(*) FROM products WHERE category_id = $1`, categoryID)
}

// CountBySubcategory compte les produits rattachés à une sous-catégorie.
func (r *ProductRepo) CountBySubcategory(ctx context.Context, subcategoryID string) (int, error) {
	return r.count(ctx, `SELECT count(*) FROM products WHERE subcategory_id = $1`, subcategoryID)
}

// CountBySubsubcategory compte les produits rattachés à une sous-sous-catégorie.
func (r *ProductRepo) CountBySubsubcategory(ctx context.Context, subsubcategoryID string) (int, error) {
	return r.count(ctx, `SELECT count(*) FROM products WHERE subsubcategory_id = $1`, subsubcategoryID)
}

// CountByMark compte les produits rattachés à une marque.
func (r *ProductRepo) CountByMark(ctx context.Context, markID string) (int, error) {
	return r.count(ctx, `SELECT count(*) FROM products WHERE mark_id = $1`, markID)
}

func (r *ProductRepo) count(ctx context.Context, query string, arg any) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, query, arg).Scan(&n); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}
