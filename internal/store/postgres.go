package store

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/oatsaysai/guild-bank-in-discord/internal/models"
	"github.com/spf13/viper"
)

// PostgresStore backs the balance and request mappings with PostgreSQL,
// for deployments where the JSON files are not durable enough.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates and initializes the PostgreSQL connection pool
// from the PostgreSQL.* configuration keys.
func NewPostgresStore() (*PostgresStore, error) {
	connStr := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=disable search_path=%s",
		viper.GetString("PostgreSQL.Host"),
		viper.GetInt("PostgreSQL.Port"),
		viper.GetString("PostgreSQL.User"),
		viper.GetString("PostgreSQL.Password"),
		viper.GetString("PostgreSQL.DBName"),
		viper.GetString("PostgreSQL.Schema"),
	)

	connectConf, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		return nil, fmt.Errorf("unable to parse PostgreSQL config: %w", err)
	}

	connectConf.MaxConns = int32(viper.GetInt("PostgreSQL.PoolMaxConns"))
	connectConf.HealthCheckPeriod = 15 * time.Second
	connectConf.ConnConfig.ConnectTimeout = 5 * time.Second

	// Set timezone to PGX runtime
	if s := os.Getenv("TZ"); s != "" {
		connectConf.ConnConfig.RuntimeParams["timezone"] = s
	}

	pool, err := pgxpool.NewWithConfig(context.Background(), connectConf)
	if err != nil {
		return nil, fmt.Errorf("unable to create PostgreSQL connection pool: %w", err)
	}

	log.Println("Connected to PostgreSQL successfully")
	return &PostgresStore{pool: pool}, nil
}

// Migrate sets up the database schema.
func (p *PostgresStore) Migrate() error {
	log.Println("Starting database migration...")

	balancesSchema := `
    CREATE TABLE IF NOT EXISTS balances (
        discord_id VARCHAR(50) PRIMARY KEY,
        amount BIGINT NOT NULL DEFAULT 0,
        updated_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
    );`
	if _, err := p.pool.Exec(context.Background(), balancesSchema); err != nil {
		return fmt.Errorf("failed to migrate balances table: %w", err)
	}

	requestsSchema := `
    CREATE TABLE IF NOT EXISTS requests (
        request_id VARCHAR(50) PRIMARY KEY,
        discord_id VARCHAR(50) NOT NULL,
        amount BIGINT NOT NULL,
        reason TEXT,
        created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
    );
    CREATE INDEX IF NOT EXISTS idx_requests_discord_id ON requests(discord_id);`
	if _, err := p.pool.Exec(context.Background(), requestsSchema); err != nil {
		return fmt.Errorf("failed to migrate requests table: %w", err)
	}

	log.Println("Database migration completed")
	return nil
}

// Close releases the connection pool.
func (p *PostgresStore) Close() {
	p.pool.Close()
}

func (p *PostgresStore) GetBalance(userID string) (int64, error) {
	var amount int64
	err := p.pool.QueryRow(context.Background(),
		`SELECT amount FROM balances WHERE discord_id = $1`, userID).Scan(&amount)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("error querying balance for %s: %w", userID, err)
	}
	return amount, nil
}

func (p *PostgresStore) SetBalance(userID string, amount int64) error {
	_, err := p.pool.Exec(context.Background(),
		`INSERT INTO balances (discord_id, amount) VALUES ($1, $2)
		 ON CONFLICT (discord_id)
		 DO UPDATE SET amount = EXCLUDED.amount, updated_at = CURRENT_TIMESTAMP`,
		userID, amount)
	if err != nil {
		return fmt.Errorf("error updating balance for %s: %w", userID, err)
	}
	return nil
}

func (p *PostgresStore) ListBalances() (map[string]int64, error) {
	rows, err := p.pool.Query(context.Background(),
		`SELECT discord_id, amount FROM balances`)
	if err != nil {
		return nil, fmt.Errorf("error querying balances: %w", err)
	}
	defer rows.Close()

	balances := make(map[string]int64)
	for rows.Next() {
		var discordID string
		var amount int64
		if err := rows.Scan(&discordID, &amount); err != nil {
			return nil, fmt.Errorf("error scanning balance row: %w", err)
		}
		balances[discordID] = amount
	}
	return balances, rows.Err()
}

func (p *PostgresStore) GetRequest(id string) (models.Request, bool, error) {
	var req models.Request
	err := p.pool.QueryRow(context.Background(),
		`SELECT discord_id, amount, reason FROM requests WHERE request_id = $1`, id).
		Scan(&req.UserID, &req.Amount, &req.Reason)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Request{}, false, nil
	}
	if err != nil {
		return models.Request{}, false, fmt.Errorf("error querying request %s: %w", id, err)
	}
	return req, true, nil
}

func (p *PostgresStore) PutRequest(id string, req models.Request) error {
	_, err := p.pool.Exec(context.Background(),
		`INSERT INTO requests (request_id, discord_id, amount, reason) VALUES ($1, $2, $3, $4)
		 ON CONFLICT (request_id)
		 DO UPDATE SET discord_id = EXCLUDED.discord_id, amount = EXCLUDED.amount, reason = EXCLUDED.reason`,
		id, req.UserID, req.Amount, req.Reason)
	if err != nil {
		return fmt.Errorf("error storing request %s: %w", id, err)
	}
	return nil
}

func (p *PostgresStore) DeleteRequest(id string) error {
	_, err := p.pool.Exec(context.Background(),
		`DELETE FROM requests WHERE request_id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting request %s: %w", id, err)
	}
	return nil
}

func (p *PostgresStore) ListRequests() ([]models.PendingRequest, error) {
	// Length-first ordering matches the file and memory stores: snowflake
	// IDs sort chronologically only within equal digit counts.
	rows, err := p.pool.Query(context.Background(),
		`SELECT request_id, discord_id, amount, reason FROM requests
		 ORDER BY length(request_id), request_id`)
	if err != nil {
		return nil, fmt.Errorf("error querying requests: %w", err)
	}
	defer rows.Close()

	var result []models.PendingRequest
	for rows.Next() {
		var pending models.PendingRequest
		if err := rows.Scan(&pending.ID, &pending.Request.UserID, &pending.Request.Amount, &pending.Request.Reason); err != nil {
			return nil, fmt.Errorf("error scanning request row: %w", err)
		}
		result = append(result, pending)
	}
	return result, rows.Err()
}
