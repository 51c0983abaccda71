package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/zendocod/zendo/internal/domain/errors"
	"github.com/zendocod/zendo/internal/domain/model"
	"github.com/zendocod/zendo/internal/domain/repository"
)

// pgxPool is the subset of pgxpool.Pool the storage relies on. Tests swap in
// a pgxmock pool through newPgxPool.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type orderRepository struct {
	storage *Storage
}

type productRepository struct {
	storage *Storage
}

type visitRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	storage.logger.Info("database schema ready")

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) Products() repository.ProductRepository {
	return &productRepository{storage: s}
}

func (s *Storage) Visits() repository.VisitRepository {
	return &visitRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS orders (
            id TEXT PRIMARY KEY,
            name TEXT NOT NULL,
            phone TEXT NOT NULL,
            city TEXT NOT NULL,
            address TEXT NOT NULL DEFAULT '',
            product_slug TEXT NOT NULL,
            quantity INT NOT NULL DEFAULT 1 CHECK (quantity >= 1),
            total_price TEXT NOT NULL DEFAULT '',
            total_amount DOUBLE PRECISION NOT NULL DEFAULT 0,
            status TEXT NOT NULL DEFAULT 'new',
            product JSONB NOT NULL DEFAULT '{}',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS products (
            slug TEXT PRIMARY KEY,
            name TEXT NOT NULL,
            short_desc TEXT NOT NULL DEFAULT '',
            full_desc TEXT NOT NULL DEFAULT '',
            images JSONB NOT NULL DEFAULT '[]',
            benefits JSONB NOT NULL DEFAULT '[]',
            usage_text TEXT NOT NULL DEFAULT '',
            guarantee TEXT NOT NULL DEFAULT '',
            delivery_info TEXT NOT NULL DEFAULT '',
            reviews JSONB NOT NULL DEFAULT '[]',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS offers (
            id SERIAL PRIMARY KEY,
            product_slug TEXT NOT NULL REFERENCES products(slug) ON DELETE CASCADE,
            quantity INT NOT NULL,
            label TEXT NOT NULL DEFAULT '',
            price_value DOUBLE PRECISION NOT NULL,
            position INT NOT NULL DEFAULT 0
        )`,
		`CREATE TABLE IF NOT EXISTS visits (
            id SERIAL PRIMARY KEY,
            path TEXT NOT NULL DEFAULT '',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_orders_created ON orders(created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_status ON orders(status)`,
		`CREATE INDEX IF NOT EXISTS idx_offers_product ON offers(product_slug, position)`,
		`CREATE INDEX IF NOT EXISTS idx_visits_created ON visits(created_at)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// --- OrderRepository implementation ---

const orderColumns = `id, name, phone, city, address, product_slug, quantity,
       total_price, total_amount, status, product, created_at, updated_at`

func (r *orderRepository) Create(ctx context.Context, order *model.Order) error {
	snapshot, err := json.Marshal(order.Product)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	const query = `INSERT INTO orders
        (id, name, phone, city, address, product_slug, quantity, total_price, total_amount, status, product, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err = r.storage.pool.Exec(ctx, query,
		order.ID, order.Name, order.Phone, order.City, order.Address,
		order.ProductSlug, order.Quantity, order.TotalPrice, order.TotalAmount,
		string(order.Status), snapshot, order.CreatedAt, order.UpdatedAt)
	return err
}

func scanOrder(row pgx.Row) (*model.Order, error) {
	var (
		order    model.Order
		status   string
		snapshot []byte
	)
	err := row.Scan(&order.ID, &order.Name, &order.Phone, &order.City, &order.Address,
		&order.ProductSlug, &order.Quantity, &order.TotalPrice, &order.TotalAmount,
		&status, &snapshot, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return nil, err
	}
	order.Status = model.OrderStatus(status)
	if len(snapshot) > 0 {
		if err := json.Unmarshal(snapshot, &order.Product); err != nil {
			return nil, fmt.Errorf("unmarshal snapshot: %w", err)
		}
	}
	return &order, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id=$1`
	order, err := scanOrder(r.storage.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) List(ctx context.Context, filter repository.OrderFilter) ([]model.Order, int, error) {
	where, args := buildOrderFilter(filter)

	countQuery := `SELECT COUNT(*) FROM orders` + where
	var total int
	if err := r.storage.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + orderColumns + ` FROM orders` + where + orderBy(filter.Sort) +
		fmt.Sprintf(` LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, 0, err
		}
		result = append(result, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return result, total, nil
}

func buildOrderFilter(filter repository.OrderFilter) (string, []any) {
	var clauses []string
	var args []any

	if len(filter.Statuses) > 0 {
		statuses := make([]string, 0, len(filter.Statuses))
		for _, s := range filter.Statuses {
			statuses = append(statuses, string(s))
		}
		args = append(args, statuses)
		clauses = append(clauses, fmt.Sprintf("status = ANY($%d)", len(args)))
	}

	if search := strings.TrimSpace(filter.Search); search != "" {
		args = append(args, "%"+search+"%")
		n := len(args)
		clauses = append(clauses, fmt.Sprintf(
			"(name ILIKE $%d OR phone ILIKE $%d OR city ILIKE $%d OR product->>'name' ILIKE $%d)",
			n, n, n, n))
	}

	if filter.Start != nil {
		args = append(args, *filter.Start)
		clauses = append(clauses, fmt.Sprintf("created_at >= $%d", len(args)))
	}
	if filter.End != nil {
		args = append(args, filter.End.AddDate(0, 0, 1))
		clauses = append(clauses, fmt.Sprintf("created_at < $%d", len(args)))
	}

	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

func orderBy(sort repository.OrderSort) string {
	switch sort {
	case repository.OrderSortCreatedAsc:
		return " ORDER BY created_at ASC"
	case repository.OrderSortNameAsc:
		return " ORDER BY name ASC"
	case repository.OrderSortNameDesc:
		return " ORDER BY name DESC"
	default:
		return " ORDER BY created_at DESC"
	}
}

func (r *orderRepository) Update(ctx context.Context, order *model.Order) error {
	const query = `UPDATE orders
        SET name=$1, phone=$2, city=$3, address=$4, quantity=$5,
            total_price=$6, total_amount=$7, status=$8, updated_at=$9
        WHERE id=$10`
	tag, err := r.storage.pool.Exec(ctx, query,
		order.Name, order.Phone, order.City, order.Address, order.Quantity,
		order.TotalPrice, order.TotalAmount, string(order.Status), order.UpdatedAt, order.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id string, status model.OrderStatus) error {
	const query = `UPDATE orders SET status=$1, updated_at=NOW() WHERE id=$2`
	tag, err := r.storage.pool.Exec(ctx, query, string(status), id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *orderRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM orders WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *orderRepository) ListByStatuses(ctx context.Context, statuses []model.OrderStatus) ([]model.Order, error) {
	values := make([]string, 0, len(statuses))
	for _, s := range statuses {
		values = append(values, string(s))
	}
	query := `SELECT ` + orderColumns + ` FROM orders WHERE status = ANY($1) ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, values)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) Aggregate(ctx context.Context, window model.StatsWindow) (*repository.OrderAggregate, error) {
	const query = `SELECT COUNT(*),
               COUNT(*) FILTER (WHERE status = 'pending'),
               COALESCE(SUM(total_amount), 0),
               COUNT(DISTINCT phone)
        FROM orders WHERE created_at >= $1 AND created_at < $2`
	var agg repository.OrderAggregate
	err := r.storage.pool.QueryRow(ctx, query, window.Start, window.End.AddDate(0, 0, 1)).
		Scan(&agg.Orders, &agg.Pending, &agg.Revenue, &agg.UniqueCustomers)
	if err != nil {
		return nil, err
	}
	return &agg, nil
}

func (r *orderRepository) DailyCounts(ctx context.Context, window model.StatsWindow) (map[string]int, error) {
	const query = `SELECT to_char(date_trunc('day', created_at AT TIME ZONE 'UTC'), 'YYYY-MM-DD'), COUNT(*)
        FROM orders WHERE created_at >= $1 AND created_at < $2
        GROUP BY 1`
	return r.storage.dailyCounts(ctx, query, window)
}

// --- ProductRepository implementation ---

const productColumns = `slug, name, short_desc, full_desc, images, benefits,
       usage_text, guarantee, delivery_info, reviews, created_at, updated_at`

func scanProduct(row pgx.Row) (*model.Product, error) {
	var (
		p        model.Product
		images   []byte
		benefits []byte
		reviews  []byte
	)
	err := row.Scan(&p.Slug, &p.Name, &p.ShortDesc, &p.FullDesc, &images, &benefits,
		&p.Usage, &p.Guarantee, &p.DeliveryInfo, &reviews, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	for _, pair := range []struct {
		raw  []byte
		dest any
	}{
		{images, &p.Images},
		{benefits, &p.Benefits},
		{reviews, &p.Reviews},
	} {
		if len(pair.raw) == 0 {
			continue
		}
		if err := json.Unmarshal(pair.raw, pair.dest); err != nil {
			return nil, fmt.Errorf("unmarshal product field: %w", err)
		}
	}
	return &p, nil
}

func (r *productRepository) List(ctx context.Context) ([]model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY created_at`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *product)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range result {
		offers, err := r.offersFor(ctx, result[i].Slug)
		if err != nil {
			return nil, err
		}
		result[i].Offers = offers
	}
	return result, nil
}

func (r *productRepository) GetBySlug(ctx context.Context, slug string) (*model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE slug=$1`
	product, err := scanProduct(r.storage.pool.QueryRow(ctx, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}

	offers, err := r.offersFor(ctx, slug)
	if err != nil {
		return nil, err
	}
	product.Offers = offers
	return product, nil
}

// Save upserts the product row and replaces its offer tiers in one
// transaction so the catalog never exposes a product with half of its
// price ladder.
func (r *productRepository) Save(ctx context.Context, product *model.Product) error {
	images, err := json.Marshal(product.Images)
	if err != nil {
		return fmt.Errorf("marshal images: %w", err)
	}
	benefits, err := json.Marshal(product.Benefits)
	if err != nil {
		return fmt.Errorf("marshal benefits: %w", err)
	}
	reviews, err := json.Marshal(product.Reviews)
	if err != nil {
		return fmt.Errorf("marshal reviews: %w", err)
	}

	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const upsert = `INSERT INTO products
            (slug, name, short_desc, full_desc, images, benefits, usage_text, guarantee, delivery_info, reviews, created_at, updated_at)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
            ON CONFLICT (slug) DO UPDATE SET
                name=EXCLUDED.name, short_desc=EXCLUDED.short_desc, full_desc=EXCLUDED.full_desc,
                images=EXCLUDED.images, benefits=EXCLUDED.benefits, usage_text=EXCLUDED.usage_text,
                guarantee=EXCLUDED.guarantee, delivery_info=EXCLUDED.delivery_info,
                reviews=EXCLUDED.reviews, updated_at=EXCLUDED.updated_at`
		if _, err := tx.Exec(ctx, upsert,
			product.Slug, product.Name, product.ShortDesc, product.FullDesc,
			images, benefits, product.Usage, product.Guarantee, product.DeliveryInfo,
			reviews, product.CreatedAt, product.UpdatedAt); err != nil {
			return err
		}

		if _, err := tx.Exec(ctx, `DELETE FROM offers WHERE product_slug=$1`, product.Slug); err != nil {
			return err
		}

		const insertOffer = `INSERT INTO offers (product_slug, quantity, label, price_value, position)
            VALUES ($1, $2, $3, $4, $5)`
		for position, offer := range product.Offers {
			if _, err := tx.Exec(ctx, insertOffer,
				product.Slug, offer.Quantity, offer.Label, offer.PriceValue, position); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *productRepository) offersFor(ctx context.Context, slug string) ([]model.Offer, error) {
	const query = `SELECT quantity, label, price_value FROM offers WHERE product_slug=$1 ORDER BY position, quantity`
	rows, err := r.storage.pool.Query(ctx, query, slug)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var offers []model.Offer
	for rows.Next() {
		var o model.Offer
		if err := rows.Scan(&o.Quantity, &o.Label, &o.PriceValue); err != nil {
			return nil, err
		}
		offers = append(offers, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return offers, nil
}

// --- VisitRepository implementation ---

func (r *visitRepository) Record(ctx context.Context, path string) error {
	const query = `INSERT INTO visits (path) VALUES ($1)`
	_, err := r.storage.pool.Exec(ctx, query, path)
	return err
}

func (r *visitRepository) CountInWindow(ctx context.Context, window model.StatsWindow) (int, error) {
	const query = `SELECT COUNT(*) FROM visits WHERE created_at >= $1 AND created_at < $2`
	var count int
	err := r.storage.pool.QueryRow(ctx, query, window.Start, window.End.AddDate(0, 0, 1)).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *visitRepository) DailyCounts(ctx context.Context, window model.StatsWindow) (map[string]int, error) {
	const query = `SELECT to_char(date_trunc('day', created_at AT TIME ZONE 'UTC'), 'YYYY-MM-DD'), COUNT(*)
        FROM visits WHERE created_at >= $1 AND created_at < $2
        GROUP BY 1`
	return r.storage.dailyCounts(ctx, query, window)
}

func (s *Storage) dailyCounts(ctx context.Context, query string, window model.StatsWindow) (map[string]int, error) {
	rows, err := s.pool.Query(ctx, query, window.Start, window.End.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var day string
		var count int
		if err := rows.Scan(&day, &count); err != nil {
			return nil, err
		}
		counts[day] = count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return counts, nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}
