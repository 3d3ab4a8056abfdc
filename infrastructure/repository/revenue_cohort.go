package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/horizonhq/horizon-api/infrastructure/database/postgres"
	"github.com/horizonhq/horizon-api/internal/domain"
	"github.com/lib/pq"
)

const (
	revenueCohortsTable = "revenue_cohorts rc"
)

type RevenueCohortRepository interface {
	GetByID(tenantID, cohortID string) (*domain.RevenueCohort, error)
	ListByTenant(tenantID string) ([]*domain.RevenueCohort, error)
	Save(cohort *domain.RevenueCohort) error
	Update(cohort *domain.RevenueCohort) (bool, error)
	UpdateWithVersion(cohort *domain.RevenueCohort, expectedVersion int) (bool, error)
	Delete(tenantID, cohortID string) (bool, error)
}

type revenueCohortRepository struct {
	conn postgres.Queryer
}

func NewRevenueCohortRepository(conn postgres.Queryer) RevenueCohortRepository {
	return &revenueCohortRepository{
		conn: conn,
	}
}

func (r *revenueCohortRepository) GetByID(tenantID, cohortID string) (*domain.RevenueCohort, error) {
	query, args, err := squirrel.
		Select("rc.id, rc.tenant_id, rc.version, rc.payload, rc.created_at, rc.updated_at").
		From(revenueCohortsTable).
		Where(squirrel.Eq{"rc.tenant_id": tenantID, "rc.id": cohortID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	cohort, err := r.scanCohort(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear coorte de receita: %w", err)
	}

	return cohort, nil
}

func (r *revenueCohortRepository) ListByTenant(tenantID string) ([]*domain.RevenueCohort, error) {
	query, args, err := squirrel.
		Select("rc.id, rc.tenant_id, rc.version, rc.payload, rc.created_at, rc.updated_at").
		From(revenueCohortsTable).
		Where(squirrel.Eq{"rc.tenant_id": tenantID}).
		OrderBy("rc.cohort_start_date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
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

	cohorts := make([]*domain.RevenueCohort, 0)
	for rows.Next() {
		cohort := &domain.RevenueCohort{}
		var payload []byte

		if err := rows.Scan(
			&cohort.ID,
			&cohort.TenantID,
			&cohort.Version,
			&payload,
			&cohort.CreatedAt,
			&cohort.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear coorte de receita: %w", err)
		}

		cohort, err = r.hydrateCohort(cohort, payload)
		if err != nil {
			return nil, err
		}
		cohorts = append(cohorts, cohort)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return cohorts, nil
}

func (r *revenueCohortRepository) Save(cohort *domain.RevenueCohort) error {
	payload, err := json.Marshal(cohort)
	if err != nil {
		return fmt.Errorf("erro ao serializar coorte para JSON: %w", err)
	}

	query := squirrel.StatementBuilder.
		Insert("revenue_cohorts").
		Columns("id", "tenant_id", "name", "cohort_start_date", "version", "payload").
		Values(
			cohort.ID,
			cohort.TenantID,
			cohort.Name,
			cohort.CohortStartDate.Format(time.DateOnly),
			cohort.Version,
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

// Update grava o payload sem condição de versão; o chamador aceita que o
// último escritor vence. Retorna false quando a coorte não existe para o
// tenant.
func (r *revenueCohortRepository) Update(cohort *domain.RevenueCohort) (bool, error) {
	payload, err := json.Marshal(cohort)
	if err != nil {
		return false, fmt.Errorf("erro ao serializar coorte para JSON: %w", err)
	}

	query, args, err := squirrel.
		Update("revenue_cohorts").
		Set("name", cohort.Name).
		Set("payload", payload).
		Set("version", cohort.Version).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{
			"tenant_id": cohort.TenantID,
			"id":        cohort.ID,
		}).
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

// UpdateWithVersion grava o payload somente se a versão persistida ainda for a
// esperada. Retorna false quando outro processo atualizou a coorte antes.
func (r *revenueCohortRepository) UpdateWithVersion(cohort *domain.RevenueCohort, expectedVersion int) (bool, error) {
	payload, err := json.Marshal(cohort)
	if err != nil {
		return false, fmt.Errorf("erro ao serializar coorte para JSON: %w", err)
	}

	query, args, err := squirrel.
		Update("revenue_cohorts").
		Set("name", cohort.Name).
		Set("payload", payload).
		Set("version", expectedVersion+1).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{
			"tenant_id": cohort.TenantID,
			"id":        cohort.ID,
			"version":   expectedVersion,
		}).
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

// Delete remove a coorte em definitivo. Retorna false quando a coorte não
// existe para o tenant.
func (r *revenueCohortRepository) Delete(tenantID, cohortID string) (bool, error) {
	query, args, err := squirrel.
		Delete("revenue_cohorts").
		Where(squirrel.Eq{"tenant_id": tenantID, "id": cohortID}).
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

func (r *revenueCohortRepository) scanCohort(row *sql.Row) (*domain.RevenueCohort, error) {
	cohort := &domain.RevenueCohort{}
	var payload []byte

	if err := row.Scan(
		&cohort.ID,
		&cohort.TenantID,
		&cohort.Version,
		&payload,
		&cohort.CreatedAt,
		&cohort.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return r.hydrateCohort(cohort, payload)
}

// hydrateCohort reconstrói a coorte a partir do payload JSONB; identidade,
// versão e timestamps vêm das colunas escalares
func (r *revenueCohortRepository) hydrateCohort(cohort *domain.RevenueCohort, payload []byte) (*domain.RevenueCohort, error) {
	id := cohort.ID
	tenantID := cohort.TenantID
	version := cohort.Version
	createdAt := cohort.CreatedAt
	updatedAt := cohort.UpdatedAt

	if err := json.Unmarshal(payload, cohort); err != nil {
		return nil, fmt.Errorf("erro ao deserializar JSON da coorte: %w", err)
	}

	cohort.ID = id
	cohort.TenantID = tenantID
	cohort.Version = version
	cohort.CreatedAt = createdAt
	cohort.UpdatedAt = updatedAt

	return cohort, nil
}
