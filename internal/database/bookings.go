package database

import (
	"context"
	"fmt"

	"shareit/internal/models"
)

const bookingColumns = `b.id, b.item_id, b.booker_id, b.start_date, b.end_date, b.status`

func (db *DB) CreateBooking(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	query := `INSERT INTO bookings (item_id, booker_id, start_date, end_date, status)
              VALUES (?, ?, ?, ?, ?)`
	result, err := db.ExecContext(ctx, query,
		booking.ItemID,
		booking.BookerID,
		booking.Start,
		booking.End,
		booking.Status,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get last insert id: %w", err)
	}
	booking.ID = id
	return booking, nil
}

func (db *DB) GetBookingByID(ctx context.Context, id int64) (*models.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings b WHERE b.id = ?`
	var b models.Booking
	err := db.QueryRowContext(ctx, query, id).Scan(
		&b.ID, &b.ItemID, &b.BookerID, &b.Start, &b.End, &b.Status,
	)
	if noRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	return &b, nil
}

func (db *DB) UpdateBookingStatus(ctx context.Context, id int64, status string) error {
	query := `UPDATE bookings SET status = ? WHERE id = ?`
	if _, err := db.ExecContext(ctx, query, status, id); err != nil {
		return fmt.Errorf("failed to update booking status: %w", err)
	}
	return nil
}

// GetBookingsByBooker lists a booker's bookings ordered by end date
// descending. An empty status means no status filter.
func (db *DB) GetBookingsByBooker(ctx context.Context, bookerID int64, status string, page *models.Page) ([]*models.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings b WHERE b.booker_id = ?`
	args := []interface{}{bookerID}
	if status != "" {
		query += ` AND b.status = ?`
		args = append(args, status)
	}
	query += ` ORDER BY b.end_date DESC`
	query, args = paginate(query, args, page)
	return db.queryBookings(ctx, query, args...)
}

func (db *DB) CountBookingsByBooker(ctx context.Context, bookerID int64) (int, error) {
	var count int
	err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM bookings WHERE booker_id = ?`, bookerID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count bookings by booker: %w", err)
	}
	return count, nil
}

// GetBookingsByOwner lists bookings of every item the owner has listed,
// joined through item ownership, ordered by end date descending.
func (db *DB) GetBookingsByOwner(ctx context.Context, ownerID int64, status string, page *models.Page) ([]*models.Booking, error) {
	query := `SELECT ` + bookingColumns + `
              FROM bookings b
              JOIN items i ON i.id = b.item_id
              WHERE i.owner_id = ?`
	args := []interface{}{ownerID}
	if status != "" {
		query += ` AND b.status = ?`
		args = append(args, status)
	}
	query += ` ORDER BY b.end_date DESC`
	query, args = paginate(query, args, page)
	return db.queryBookings(ctx, query, args...)
}

func (db *DB) CountBookingsByOwner(ctx context.Context, ownerID int64) (int, error) {
	query := `SELECT COUNT(*)
              FROM bookings b
              JOIN items i ON i.id = b.item_id
              WHERE i.owner_id = ?`
	var count int
	if err := db.QueryRowContext(ctx, query, ownerID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count bookings by owner: %w", err)
	}
	return count, nil
}

// GetTwoNearestApprovedBookings returns at most two approved bookings for the
// owner's item, ordered by end date ascending.
func (db *DB) GetTwoNearestApprovedBookings(ctx context.Context, ownerID, itemID int64) ([]*models.Booking, error) {
	query := `SELECT ` + bookingColumns + `
              FROM bookings b
              JOIN items i ON i.id = b.item_id
              WHERE i.id = ? AND i.owner_id = ? AND b.status = ?
              ORDER BY b.end_date
              LIMIT 2`
	return db.queryBookings(ctx, query, itemID, ownerID, models.StatusApproved)
}

func (db *DB) GetBookingsByBookerAndItem(ctx context.Context, bookerID, itemID int64) ([]*models.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings b WHERE b.booker_id = ? AND b.item_id = ?`
	return db.queryBookings(ctx, query, bookerID, itemID)
}

func (db *DB) queryBookings(ctx context.Context, query string, args ...interface{}) ([]*models.Booking, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*models.Booking
	for rows.Next() {
		b := &models.Booking{}
		if err := rows.Scan(&b.ID, &b.ItemID, &b.BookerID, &b.Start, &b.End, &b.Status); err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}
