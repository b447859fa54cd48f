package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/kantin-api/internal/domain/entity"
)

// Sentencias de esquema. date/time persisten como texto (YYYY-MM-DD,
// HH:MM:SS) para mantener la distribución portable entre motores.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS department (
		id   BIGSERIAL PRIMARY KEY,
		name TEXT UNIQUE NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS daily_menu (
		id        BIGSERIAL PRIMARY KEY,
		date      TEXT UNIQUE NOT NULL,
		menu_json JSONB NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS staff (
		id              BIGSERIAL PRIMARY KEY,
		barcode_id      TEXT UNIQUE NOT NULL,
		name            TEXT NOT NULL,
		department_name TEXT NOT NULL,
		daily_quota     INT NOT NULL DEFAULT 1,
		remaining_quota INT NOT NULL DEFAULT 1
	)`,
	`CREATE TABLE IF NOT EXISTS transaction (
		id                  BIGSERIAL PRIMARY KEY,
		barcode_id          TEXT NOT NULL,
		date                TEXT NOT NULL,
		time                TEXT NOT NULL,
		menu_name           TEXT NOT NULL,
		price               BIGINT NOT NULL,
		staff_name_snapshot TEXT,
		status              TEXT
	)`,
}

// Setup crea las tablas si no existen y siembra la identidad admin. Se
// invoca una sola vez en el arranque del proceso; todas las sentencias son
// idempotentes.
func Setup(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("crear esquema: %w", err)
		}
	}
	return seedAdmin(ctx, pool)
}

// seedAdmin garantiza el staff admin reservado y su departamento.
func seedAdmin(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		INSERT INTO staff (barcode_id, name, department_name, daily_quota, remaining_quota)
		VALUES ($1, 'Administrator', $2, $3, $3)
		ON CONFLICT (barcode_id) DO NOTHING`,
		entity.AdminBarcodeID, entity.AdminDepartmentName, entity.AdminDailyQuota,
	)
	if err != nil {
		return fmt.Errorf("sembrar staff admin: %w", err)
	}
	_, err = pool.Exec(ctx,
		`INSERT INTO department (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`,
		entity.AdminDepartmentName,
	)
	if err != nil {
		return fmt.Errorf("sembrar departamento admin: %w", err)
	}
	return nil
}
