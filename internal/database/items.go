package database

import (
	"context"
	"database/sql"
	"fmt"

	"shareit/internal/models"
)

func (db *DB) CreateItem(ctx context.Context, item *models.Item) (*models.Item, error) {
	query := `INSERT INTO items (name, description, available, owner_id, request_id)
              VALUES (?, ?, ?, ?, ?)`
	result, err := db.ExecContext(ctx, query,
		item.Name,
		item.Description,
		item.Available,
		item.OwnerID,
		nullableID(item.RequestID),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get last insert id: %w", err)
	}
	item.ID = id
	return item, nil
}

func (db *DB) UpdateItem(ctx context.Context, item *models.Item) (*models.Item, error) {
	query := `UPDATE items SET name = ?, description = ?, available = ?, request_id = ? WHERE id = ?`
	_, err := db.ExecContext(ctx, query,
		item.Name, item.Description, item.Available, nullableID(item.RequestID), item.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to update item: %w", err)
	}
	return item, nil
}

func (db *DB) GetItemByID(ctx context.Context, id int64) (*models.Item, error) {
	query := `SELECT id, name, description, available, owner_id, request_id FROM items WHERE id = ?`
	row := db.QueryRowContext(ctx, query, id)

	item, err := scanItem(row)
	if noRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	return item, nil
}

func (db *DB) GetItemsByOwner(ctx context.Context, ownerID int64, page *models.Page) ([]*models.Item, error) {
	query := `SELECT id, name, description, available, owner_id, request_id
              FROM items WHERE owner_id = ? ORDER BY id`
	args := []interface{}{ownerID}
	query, args = paginate(query, args, page)
	return db.queryItems(ctx, query, args...)
}

func (db *DB) CountItemsByOwner(ctx context.Context, ownerID int64) (int, error) {
	var count int
	err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM items WHERE owner_id = ?`, ownerID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count items by owner: %w", err)
	}
	return count, nil
}

const searchCondition = ` available = 1
              AND (LOWER(name) LIKE '%' || LOWER(?) || '%'
                OR LOWER(description) LIKE '%' || LOWER(?) || '%')`

func (db *DB) SearchItems(ctx context.Context, text string, page *models.Page) ([]*models.Item, error) {
	query := `SELECT id, name, description, available, owner_id, request_id
              FROM items WHERE` + searchCondition + ` ORDER BY id`
	args := []interface{}{text, text}
	query, args = paginate(query, args, page)
	return db.queryItems(ctx, query, args...)
}

func (db *DB) CountSearchItems(ctx context.Context, text string) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM items WHERE` + searchCondition
	if err := db.QueryRowContext(ctx, query, text, text).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count items by text: %w", err)
	}
	return count, nil
}

func (db *DB) GetItemsByRequest(ctx context.Context, requestID int64) ([]*models.Item, error) {
	query := `SELECT id, name, description, available, owner_id, request_id
              FROM items WHERE request_id = ? ORDER BY id`
	return db.queryItems(ctx, query, requestID)
}

func (db *DB) queryItems(ctx context.Context, query string, args ...interface{}) ([]*models.Item, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query items: %w", err)
	}
	defer rows.Close()

	var items []*models.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanItem(row rowScanner) (*models.Item, error) {
	var item models.Item
	var requestID sql.NullInt64
	err := row.Scan(&item.ID, &item.Name, &item.Description, &item.Available, &item.OwnerID, &requestID)
	if err != nil {
		return nil, err
	}
	if requestID.Valid {
		item.RequestID = requestID.Int64
	}
	return &item, nil
}

func nullableID(id int64) interface{} {
	if id == 0 {
		return nil
	}
	return id
}

// paginate appends a LIMIT/OFFSET clause when a page was requested.
func paginate(query string, args []interface{}, page *models.Page) (string, []interface{}) {
	if page == nil {
		return query, args
	}
	return query + ` LIMIT ? OFFSET ?`, append(args, page.Size, page.Offset)
}
