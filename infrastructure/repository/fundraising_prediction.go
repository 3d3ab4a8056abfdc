package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/horizonhq/horizon-api/infrastructure/database/postgres"
	"github.com/horizonhq/horizon-api/internal/domain"
	"github.com/lib/pq"
)

const (
	fundraisingPredictionsTable = "fundraising_predictions fp"
)

// FundraisingPredictionRepository persiste artefatos de prontidão para
// captação. Predições são imutáveis: cada cálculo gera um novo registro.
type FundraisingPredictionRepository interface {
	GetByID(tenantID, predictionID string) (*domain.FundraisingPrediction, error)
	ListByTenant(tenantID string, limit int) ([]*domain.FundraisingPrediction, error)
	Save(prediction *domain.FundraisingPrediction) error
	Delete(tenantID, predictionID string) (bool, error)
}

type fundraisingPredictionRepository struct {
	conn postgres.Queryer
}

func NewFundraisingPredictionRepository(conn postgres.Queryer) FundraisingPredictionRepository {
	return &fundraisingPredictionRepository{
		conn: conn,
	}
}

func (r *fundraisingPredictionRepository) GetByID(tenantID, predictionID string) (*domain.FundraisingPrediction, error) {
	query, args, err := squirrel.
		Select("fp.id, fp.tenant_id, fp.payload, fp.created_at").
		From(fundraisingPredictionsTable).
		Where(squirrel.Eq{"fp.tenant_id": tenantID, "fp.id": predictionID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	prediction, err := r.scanPrediction(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear predição de captação: %w", err)
	}

	return prediction, nil
}

func (r *fundraisingPredictionRepository) ListByTenant(tenantID string, limit int) ([]*domain.FundraisingPrediction, error) {
	queryBuilder := squirrel.
		Select("fp.id, fp.tenant_id, fp.payload, fp.created_at").
		From(fundraisingPredictionsTable).
		Where(squirrel.Eq{"fp.tenant_id": tenantID}).
		OrderBy("fp.created_at DESC").
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

	predictions := make([]*domain.FundraisingPrediction, 0)
	for rows.Next() {
		prediction := &domain.FundraisingPrediction{}
		var payload []byte

		if err := rows.Scan(
			&prediction.ID,
			&prediction.TenantID,
			&payload,
			&prediction.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear predição de captação: %w", err)
		}

		prediction, err = r.hydratePrediction(prediction, payload)
		if err != nil {
			return nil, err
		}
		predictions = append(predictions, prediction)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return predictions, nil
}

func (r *fundraisingPredictionRepository) Save(prediction *domain.FundraisingPrediction) error {
	payload, err := json.Marshal(prediction)
	if err != nil {
		return fmt.Errorf("erro ao serializar predição para JSON: %w", err)
	}

	query := squirrel.StatementBuilder.
		Insert("fundraising_predictions").
		Columns("id", "tenant_id", "round_type", "payload").
		Values(
			prediction.ID,
			prediction.TenantID,
			prediction.RoundType,
			payload,
		).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

// Delete remove a predição em definitivo. Retorna false quando a predição
// não existe para o tenant.
func (r *fundraisingPredictionRepository) Delete(tenantID, predictionID string) (bool, error) {
	query, args, err := squirrel.
		Delete("fundraising_predictions").
		Where(squirrel.Eq{"tenant_id": tenantID, "id": predictionID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return false, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected > 0, nil
}

func (r *fundraisingPredictionRepository) scanPrediction(row *sql.Row) (*domain.FundraisingPrediction, error) {
	prediction := &domain.FundraisingPrediction{}
	var payload []byte

	if err := row.Scan(
		&prediction.ID,
		&prediction.TenantID,
		&payload,
		&prediction.CreatedAt,
	); err != nil {
		return nil, err
	}

	return r.hydratePrediction(prediction, payload)
}

func (r *fundraisingPredictionRepository) hydratePrediction(prediction *domain.FundraisingPrediction, payload []byte) (*domain.FundraisingPrediction, error) {
	id := prediction.ID
	tenantID := prediction.TenantID
	createdAt := prediction.CreatedAt

	if err := json.Unmarshal(payload, prediction); err != nil {
		return nil, fmt.Errorf("erro ao deserializar JSON da predição: %w", err)
	}

	prediction.ID = id
	prediction.TenantID = tenantID
	prediction.CreatedAt = createdAt

	return prediction, nil
}
