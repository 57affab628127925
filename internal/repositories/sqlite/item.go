package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"items-api/internal/database"
	"items-api/internal/models"
	"items-api/internal/repositories"

	"github.com/sirupsen/logrus"
)

// ItemRepository implements repositories.ItemRepository for SQLite
type ItemRepository struct {
	*BaseRepository
	conn *database.ConnectionManager
}

var _ repositories.ItemRepository = (*ItemRepository)(nil)

// NewItemRepository creates a new SQLite item repository over an open database
func NewItemRepository(db *sql.DB, logger *logrus.Logger) *ItemRepository {
	return &ItemRepository{
		BaseRepository: NewBaseRepository(db, database.ItemsTable, logger),
	}
}

// New opens the database file from cfg, applies migrations and returns the repository
func New(cfg *repositories.Config, logger *logrus.Logger) (repositories.ItemRepository, error) {
	conn := database.NewConnectionManager(&database.ConnectionConfig{
		DatabasePath: cfg.SQLitePath,
		Logger:       logger,
	})
	if err := conn.Connect(); err != nil {
		return nil, repositories.ConnectionError(database.ItemsTable, err)
	}

	repo := NewItemRepository(conn.GetDB(), logger)
	repo.conn = conn
	return repo, nil
}

const upsertItemQuery = `
	INSERT INTO items (id, name) VALUES (?, ?)
	ON CONFLICT(id) DO UPDATE SET name = excluded.name`

// Put writes the item, replacing any existing row with the same id
func (r *ItemRepository) Put(ctx context.Context, item *models.Item) error {
	if item.ID == "" {
		return repositories.NewRepositoryError("put", r.table, "", repositories.ErrInvalidID)
	}

	_, err := r.executeExec(ctx, "put", item.ID, upsertItemQuery, item.ID, item.Name)
	return err
}

// Get retrieves the item by id
func (r *ItemRepository) Get(ctx context.Context, id string) (repositories.Record, error) {
	row := r.executeQueryRow(ctx, "get", `SELECT id, name FROM items WHERE id = ?`, id)

	var item models.Item
	if err := row.Scan(&item.ID, &item.Name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repositories.NotFoundError(r.table, id)
		}
		return nil, repositories.NewRepositoryError("get", r.table, id, err)
	}

	return item.Attributes(), nil
}

// UpdateName sets the name of the item at id, inserting the row when missing
func (r *ItemRepository) UpdateName(ctx context.Context, id, name string) (repositories.Record, error) {
	if id == "" {
		return nil, repositories.NewRepositoryError("update", r.table, "", repositories.ErrInvalidID)
	}

	if _, err := r.executeExec(ctx, "update", id, upsertItemQuery, id, name); err != nil {
		return nil, err
	}

	return repositories.Record{"name": name}, nil
}

// Delete removes the item at id; zero affected rows is not an error
func (r *ItemRepository) Delete(ctx context.Context, id string) error {
	_, err := r.executeExec(ctx, "delete", id, `DELETE FROM items WHERE id = ?`, id)
	return err
}

// Ping checks the database connection
func (r *ItemRepository) Ping(ctx context.Context) error {
	if r.conn != nil {
		if err := r.conn.HealthCheck(ctx); err != nil {
			return repositories.ConnectionError(r.table, err)
		}
		return nil
	}

	if err := r.db.PingContext(ctx); err != nil {
		return repositories.ConnectionError(r.table, err)
	}
	return nil
}

// Close closes the connection when the repository opened it
func (r *ItemRepository) Close() error {
	if r.conn != nil {
		return r.conn.Close()
	}
	return nil
}
