package storage

import (
	"context"
	"errors"

	"go-airline-tickets/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// undefined_table
const pgUndefinedTable = "42P01"

type PostgresStorage struct {
	pool *pgxpool.Pool
}

func NewPostgresStorage(pool *pgxpool.Pool) *PostgresStorage {
	return &PostgresStorage{
		pool: pool,
	}
}

// EnsureSchema 建立 tickets 資料表，position 保存插入順序
func (s *PostgresStorage) EnsureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS tickets (
			position    INTEGER PRIMARY KEY,
			ticket_id   TEXT NOT NULL,
			flight_num  TEXT NOT NULL,
			origin      TEXT NOT NULL,
			destination TEXT NOT NULL,
			date        TEXT NOT NULL,
			price       DOUBLE PRECISION NOT NULL,
			seats_left  INTEGER NOT NULL
		)
	`

	_, err := s.pool.Exec(ctx, query)
	return err
}

func (s *PostgresStorage) Load(ctx context.Context) ([]model.Ticket, error) {
	query := `
		SELECT ticket_id, flight_num, origin, destination,
				date, price, seats_left
		FROM tickets
		ORDER BY position
	`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUndefinedTable {
			return []model.Ticket{}, nil
		}
		return nil, err
	}
	defer rows.Close()

	tickets := make([]model.Ticket, 0)

	for rows.Next() {
		var ticket model.Ticket
		err := rows.Scan(
			&ticket.TicketID,
			&ticket.FlightNum,
			&ticket.Origin,
			&ticket.Destination,
			&ticket.Date,
			&ticket.Price,
			&ticket.SeatsLeft,
		)
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, ticket)
	}

	if err := rows.Err(); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUndefinedTable {
			return []model.Ticket{}, nil
		}
		return nil, err
	}

	return tickets, nil
}

// Save 在同一個 transaction 內清空資料表後依序寫入
func (s *PostgresStorage) Save(ctx context.Context, tickets []model.Ticket) error {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM tickets`); err != nil {
		return err
	}

	if len(tickets) > 0 {
		query := `
			INSERT INTO tickets (
			position, ticket_id, flight_num, origin, destination, date, price, seats_left)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`

		batch := &pgx.Batch{}
		for i, t := range tickets {
			batch.Queue(query,
				i, t.TicketID, t.FlightNum, t.Origin,
				t.Destination, t.Date, t.Price, t.SeatsLeft,
			)
		}

		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}
