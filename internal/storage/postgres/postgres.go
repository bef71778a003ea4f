package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"turfbooker/internal/config"
	"turfbooker/internal/models"
	"turfbooker/internal/slots"
	"turfbooker/internal/storage"

	"github.com/lib/pq"
)

type Storage struct {
	DB *sql.DB
}

// uniqueViolation is the postgres error code for a unique constraint
// violation, raised both for duplicate usernames and taken slots.
const uniqueViolation = "23505"

const schema = `
	CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		username TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS bookings (
		id SERIAL PRIMARY KEY,
		user_id INTEGER NOT NULL REFERENCES users (id),
		date TEXT NOT NULL,
		start_time TEXT NOT NULL,
		end_time TEXT NOT NULL,
		UNIQUE (date, start_time, end_time)
	);

	CREATE INDEX IF NOT EXISTS idx_bookings_user_id ON bookings (user_id);`

func InitDB(dbCfg *config.Database) (*Storage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if _, err = db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &Storage{DB: db}, nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

func (s *Storage) SaveUser(username, passHash string) (int64, error) {
	query := `
		INSERT INTO users (username, password_hash)
		VALUES ($1, $2)
		RETURNING id`

	var id int64
	err := s.DB.QueryRow(query, username, passHash).Scan(&id)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return 0, storage.ErrUserExists
		}
		return 0, fmt.Errorf("failed to save user: %w", err)
	}

	return id, nil
}

func (s *Storage) UserByUsername(username string) (*models.User, error) {
	query := `
		SELECT id, username, password_hash
		FROM users
		WHERE username = $1`

	var user models.User
	err := s.DB.QueryRow(query, username).Scan(
		&user.ID,
		&user.Username,
		&user.PassHash,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

func (s *Storage) UserByID(id int64) (*models.User, error) {
	query := `
		SELECT id, username, password_hash
		FROM users
		WHERE id = $1`

	var user models.User
	err := s.DB.QueryRow(query, id).Scan(
		&user.ID,
		&user.Username,
		&user.PassHash,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// BookedSlots returns the set of (start, end) intervals reserved on
// the given date. Duplicates collapse since only presence matters.
func (s *Storage) BookedSlots(date string) (map[slots.Interval]struct{}, error) {
	query := `
		SELECT start_time, end_time
		FROM bookings
		WHERE date = $1`

	rows, err := s.DB.Query(query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to get booked slots: %w", err)
	}
	defer rows.Close()

	booked := make(map[slots.Interval]struct{})
	for rows.Next() {
		var iv slots.Interval
		if err = rows.Scan(&iv.Start, &iv.End); err != nil {
			return nil, fmt.Errorf("failed to scan booked slot: %w", err)
		}
		booked[iv] = struct{}{}
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating booked slots: %w", err)
	}

	return booked, nil
}

// CreateBooking inserts a reservation. The unique constraint on
// (date, start_time, end_time) makes concurrent inserts for the same
// slot lose with ErrSlotTaken instead of double-booking.
func (s *Storage) CreateBooking(userID int64, date, startTime, endTime string) (int64, error) {
	query := `
		INSERT INTO bookings (user_id, date, start_time, end_time)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	var id int64
	err := s.DB.QueryRow(query, userID, date, startTime, endTime).Scan(&id)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return 0, storage.ErrSlotTaken
		}
		return 0, fmt.Errorf("failed to create booking: %w", err)
	}

	return id, nil
}

func (s *Storage) BookingsByUser(userID int64) ([]models.Booking, error) {
	query := `
		SELECT id, user_id, date, start_time, end_time
		FROM bookings
		WHERE user_id = $1
		ORDER BY date, start_time`

	rows, err := s.DB.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}
	defer rows.Close()

	var bookings []models.Booking
	for rows.Next() {
		var booking models.Booking
		err = rows.Scan(
			&booking.ID,
			&booking.UserID,
			&booking.Date,
			&booking.StartTime,
			&booking.EndTime,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, booking)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bookings: %w", err)
	}

	return bookings, nil
}
