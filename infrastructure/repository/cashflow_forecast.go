package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/horizonhq/horizon-api/infrastructure/database/postgres"
	"github.com/horizonhq/horizon-api/internal/domain"
	"github.com/lib/pq"
)

const (
	cashflowForecastsTable = "cashflow_forecasts cf"
)

type CashflowForecastRepository interface {
	GetByID(tenantID, forecastID string) (*domain.CashflowForecast, error)
	ListByTenant(tenantID string, limit int) ([]*domain.CashflowForecast, error)
	SaveAsActive(ctx context.Context, forecast *domain.CashflowForecast) error
	Deactivate(tenantID, forecastID string) (bool, error)
}

type cashflowForecastRepository struct {
	conn postgres.Conn
}

func NewCashflowForecastRepository(conn postgres.Conn) CashflowForecastRepository {
	return &cashflowForecastRepository{
		conn: conn,
	}
}

func (r *cashflowForecastRepository) GetByID(tenantID, forecastID string) (*domain.CashflowForecast, error) {
	query, args, err := squirrel.
		Select("cf.id, cf.tenant_id, cf.payload, cf.created_at, cf.updated_at").
		From(cashflowForecastsTable).
		Where(squirrel.Eq{"cf.tenant_id": tenantID, "cf.id": forecastID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	forecast, err := r.scanForecast(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear previsão de fluxo de caixa: %w", err)
	}

	return forecast, nil
}

func (r *cashflowForecastRepository) ListByTenant(tenantID string, limit int) ([]*domain.CashflowForecast, error) {
	queryBuilder := squirrel.
		Select("cf.id, cf.tenant_id, cf.payload, cf.created_at, cf.updated_at").
		From(cashflowForecastsTable).
		Where(squirrel.Eq{"cf.tenant_id": tenantID}).
		OrderBy("cf.created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if limit > 0 {
		queryBuilder = queryBuilder.Limit(uint64(limit))
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	forecasts := make([]*domain.CashflowForecast, 0)
	for rows.Next() {
		forecast := &domain.CashflowForecast{}
		var payload []byte

		if err := rows.Scan(
			&forecast.ID,
			&forecast.TenantID,
			&payload,
			&forecast.CreatedAt,
			&forecast.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear previsão de fluxo de caixa: %w", err)
		}

		forecast, err = r.hydrateForecast(forecast, payload)
		if err != nil {
			return nil, err
		}
		forecasts = append(forecasts, forecast)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return forecasts, nil
}

// SaveAsActive grava a previsão como a ativa do tenant, desativando as
// anteriores na mesma transação
func (r *cashflowForecastRepository) SaveAsActive(ctx context.Context, forecast *domain.CashflowForecast) error {
	payload, err := json.Marshal(forecast)
	if err != nil {
		return fmt.Errorf("erro ao serializar previsão para JSON: %w", err)
	}

	deactivateSQL, deactivateArgs, err := squirrel.
		Update("cashflow_forecasts").
		Set("is_active", false).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"tenant_id": forecast.TenantID, "is_active": true}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query de desativação: %w", err)
	}

	insertSQL, insertArgs, err := squirrel.StatementBuilder.
		Insert("cashflow_forecasts").
		Columns("id", "tenant_id", "name", "granularity", "is_active", "payload").
		Values(
			forecast.ID,
			forecast.TenantID,
			forecast.Name,
			forecast.Granularity,
			true,
			payload,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query de inserção: %w", err)
	}

	err = r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.Exec(deactivateSQL, deactivateArgs...); err != nil {
			return fmt.Errorf("erro ao desativar previsões anteriores: %w", err)
		}

		if _, err := tx.Exec(insertSQL, insertArgs...); err != nil {
			return fmt.Errorf("erro ao inserir previsão: %w", err)
		}

		return nil
	})
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return err
	}

	return nil
}

// Deactivate marca a previsão como inativa sem removê-la do histórico.
// Retorna false quando a previsão não existe para o tenant ou já estava
// inativa, para que a segunda exclusão responda NOT_FOUND.
func (r *cashflowForecastRepository) Deactivate(tenantID, forecastID string) (bool, error) {
	query, args, err := squirrel.
		Update("cashflow_forecasts").
		Set("is_active", false).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"tenant_id": tenantID, "id": forecastID, "is_active": true}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return false, fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return false, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected > 0, nil
}

func (r *cashflowForecastRepository) scanForecast(row *sql.Row) (*domain.CashflowForecast, error) {
	forecast := &domain.CashflowForecast{}
	var payload []byte

	if err := row.Scan(
		&forecast.ID,
		&forecast.TenantID,
		&payload,
		&forecast.CreatedAt,
		&forecast.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return r.hydrateForecast(forecast, payload)
}

func (r *cashflowForecastRepository) hydrateForecast(forecast *domain.CashflowForecast, payload []byte) (*domain.CashflowForecast, error) {
	id := forecast.ID
	tenantID := forecast.TenantID
	createdAt := forecast.CreatedAt
	updatedAt := forecast.UpdatedAt

	if err := json.Unmarshal(payload, forecast); err != nil {
		return nil, fmt.Errorf("erro ao deserializar JSON da previsão: %w", err)
	}

	forecast.ID = id
	forecast.TenantID = tenantID
	forecast.CreatedAt = createdAt
	forecast.UpdatedAt = updatedAt

	return forecast, nil
}
