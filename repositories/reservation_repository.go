package repositories

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"strings"
	"time"

	"bistro-backend/config"
	"bistro-backend/models"
	"bistro-backend/utils"

	"github.com/jackc/pgx/v5"
)

type ReservationRepository struct{}

func NewReservationRepository() *ReservationRepository {
	return &ReservationRepository{}
}

const reservationColumns = `id, code, name, email, phone, date, time, guests, table_number, note, status, created_at, updated_at`

// Excludes ambiguous characters so codes survive being read over the phone.
const codeAlphabet = "ABCDEFGHJKMNPQRSTVWXYZ23456789"

const maxCodeAttempts = 5

func (r *ReservationRepository) ListByDate(ctx context.Context, date string) ([]models.Reservation, error) {
	rows, err := config.DB.Query(ctx,
		`SELECT `+reservationColumns+` FROM reservations WHERE date = $1 ORDER BY time, id`, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectReservations(rows)
}

// CreateReservation re-checks capacity against the current ledger and
// inserts in one transaction. The advisory lock on (date, time)
// serializes concurrent bookings for the same slot; plain row locks
// cannot do that for a slot that has no rows yet.
func (r *ReservationRepository) CreateReservation(ctx context.Context, res *models.Reservation, tables []models.Table, maxGuestsPerSlot int) error {
	tx, err := config.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, res.Date+"@"+res.Time); err != nil {
		return err
	}

	rows, err := tx.Query(ctx,
		`SELECT `+reservationColumns+` FROM reservations
		 WHERE date = $1 AND time = $2 AND status IN ($3, $4)`,
		res.Date, res.Time, models.ReservationStatusPending, models.ReservationStatusConfirmed)
	if err != nil {
		return err
	}
	existing, err := collectReservations(rows)
	if err != nil {
		return err
	}

	for _, other := range existing {
		if strings.EqualFold(other.Email, res.Email) {
			return utils.DomainError("An active reservation for %s at %s on %s already exists", res.Email, res.Time, res.Date)
		}
	}

	availability := models.ComputeSlotAvailability(tables, maxGuestsPerSlot, existing, res.Time, res.Guests)
	if !availability.IsAvailable {
		return utils.DomainError("The %s slot on %s is fully booked", res.Time, res.Date)
	}

	tableNumber, ok := models.ChooseTable(tables, existing, res.Time, res.Guests)
	if !ok {
		return utils.DomainError("No table for %d guests is free at %s on %s", res.Guests, res.Time, res.Date)
	}
	res.TableNumber = &tableNumber
	res.Status = models.ReservationStatusPending

	now := time.Now()
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		res.Code = generateReservationCode()
		err = tx.QueryRow(ctx,
			`INSERT INTO reservations (code, name, email, phone, date, time, guests, table_number, note, status, created_at, updated_at)
			 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
			 RETURNING id, created_at, updated_at`,
			res.Code, res.Name, res.Email, res.Phone, res.Date, res.Time, res.Guests,
			res.TableNumber, res.Note, res.Status, now, now,
		).Scan(&res.ID, &res.CreatedAt, &res.UpdatedAt)
		if err == nil {
			return tx.Commit(ctx)
		}
		if !isUniqueViolation(err) {
			return err
		}
	}
	return utils.ConflictError("Could not allocate a unique reservation code after %d attempts", maxCodeAttempts)
}

func (r *ReservationRepository) GetByID(ctx context.Context, id int) (*models.Reservation, error) {
	res, err := scanReservation(config.DB.QueryRow(ctx,
		`SELECT `+reservationColumns+` FROM reservations WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, utils.NotFoundError("Reservation %d not found", id)
	}
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (r *ReservationRepository) GetByCode(ctx context.Context, code string) (*models.Reservation, error) {
	res, err := scanReservation(config.DB.QueryRow(ctx,
		`SELECT `+reservationColumns+` FROM reservations WHERE code = $1`, strings.ToUpper(code)))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, utils.NotFoundError("Reservation %s not found", code)
	}
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (r *ReservationRepository) ListReservations(ctx context.Context, date, status string, page, limit int) ([]models.Reservation, int, error) {
	offset := (page - 1) * limit

	where := []string{}
	args := []interface{}{}
	if date != "" {
		args = append(args, date)
		where = append(where, fmt.Sprintf("date = $%d", len(args)))
	}
	if status != "" && status != "All" {
		args = append(args, status)
		where = append(where, fmt.Sprintf("status = $%d", len(args)))
	}

	clause := ""
	if len(where) > 0 {
		clause = " WHERE " + strings.Join(where, " AND ")
	}

	var total int
	if err := config.DB.QueryRow(ctx, "SELECT COUNT(*) FROM reservations"+clause, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, limit, offset)
	query := fmt.Sprintf("SELECT %s FROM reservations%s ORDER BY date DESC, time, id LIMIT $%d OFFSET $%d",
		reservationColumns, clause, len(args)-1, len(args))

	rows, err := config.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	reservations, err := collectReservations(rows)
	if err != nil {
		return nil, 0, err
	}
	return reservations, total, nil
}

// UpdateStatus applies one reservation transition under a row lock.
// Cancelled and completed reservations are frozen; their capacity is
// already released (or consumed), so nothing else moves here.
func (r *ReservationRepository) UpdateStatus(ctx context.Context, id int, target string) (*models.Reservation, error) {
	tx, err := config.DB.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	res, err := scanReservation(tx.QueryRow(ctx,
		`SELECT `+reservationColumns+` FROM reservations WHERE id = $1 FOR UPDATE`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, utils.NotFoundError("Reservation %d not found", id)
	}
	if err != nil {
		return nil, err
	}

	if !models.CanTransitionReservation(res.Status, target) {
		if target == models.ReservationStatusCancelled {
			return nil, utils.DomainError("Cannot cancel reservation with status: %s", res.Status)
		}
		return nil, utils.DomainError("Cannot change status of a %s reservation to %s", res.Status, target)
	}

	now := time.Now()
	if _, err := tx.Exec(ctx,
		`UPDATE reservations SET status = $1, updated_at = $2 WHERE id = $3`, target, now, id); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	res.Status = target
	res.UpdatedAt = now
	return res, nil
}

func generateReservationCode() string {
	buf := make([]byte, 6)
	rand.Read(buf)
	for i := range buf {
		buf[i] = codeAlphabet[int(buf[i])%len(codeAlphabet)]
	}
	return "RSV-" + string(buf)
}

func collectReservations(rows pgx.Rows) ([]models.Reservation, error) {
	defer rows.Close()
	reservations := []models.Reservation{}
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		reservations = append(reservations, *res)
	}
	return reservations, rows.Err()
}

func scanReservation(row pgx.Row) (*models.Reservation, error) {
	var res models.Reservation
	var date time.Time
	err := row.Scan(&res.ID, &res.Code, &res.Name, &res.Email, &res.Phone, &date, &res.Time,
		&res.Guests, &res.TableNumber, &res.Note, &res.Status, &res.CreatedAt, &res.UpdatedAt)
	if err != nil {
		return nil, err
	}
	res.Date = date.Format(models.ReservationDateLayout)
	return &res, nil
}
