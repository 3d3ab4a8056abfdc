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
	runwayScenariosTable = "runway_scenarios rs"
)

type RunwayScenarioRepository interface {
	GetByID(tenantID, scenarioID string) (*domain.RunwayScenario, error)
	ListByTenant(tenantID string, onlyActive bool) ([]*domain.RunwayScenario, error)
	SaveOrUpdate(scenario *domain.RunwayScenario) error
	Deactivate(tenantID, scenarioID string) (bool, error)
}

type runwayScenarioRepository struct {
	conn postgres.Queryer
}

func NewRunwayScenarioRepository(conn postgres.Queryer) RunwayScenarioRepository {
	return &runwayScenarioRepository{
		conn: conn,
	}
}

func (r *runwayScenarioRepository) GetByID(tenantID, scenarioID string) (*domain.RunwayScenario, error) {
	query, args, err := squirrel.
		Select("rs.id, rs.tenant_id, rs.payload, rs.created_at, rs.updated_at").
		From(runwayScenariosTable).
		Where(squirrel.Eq{"rs.tenant_id": tenantID, "rs.id": scenarioID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	scenario, err := r.scanScenario(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear cenário de runway: %w", err)
	}

	return scenario, nil
}

func (r *runwayScenarioRepository) ListByTenant(tenantID string, onlyActive bool) ([]*domain.RunwayScenario, error) {
	queryBuilder := squirrel.
		Select("rs.id, rs.tenant_id, rs.payload, rs.created_at, rs.updated_at").
		From(runwayScenariosTable).
		Where(squirrel.Eq{"rs.tenant_id": tenantID}).
		OrderBy("rs.created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if onlyActive {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"rs.is_active": true})
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

	scenarios := make([]*domain.RunwayScenario, 0)
	for rows.Next() {
		scenario, err := r.scanScenarioRows(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear cenário de runway: %w", err)
		}
		scenarios = append(scenarios, scenario)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return scenarios, nil
}

func (r *runwayScenarioRepository) SaveOrUpdate(scenario *domain.RunwayScenario) error {
	payload, err := json.Marshal(scenario)
	if err != nil {
		return fmt.Errorf("erro ao serializar cenário para JSON: %w", err)
	}

	query := squirrel.StatementBuilder.
		Insert("runway_scenarios").
		Columns("id", "tenant_id", "name", "scenario_type", "is_active", "payload").
		Values(
			scenario.ID,
			scenario.TenantID,
			scenario.Name,
			scenario.Type,
			scenario.IsActive,
			payload,
		).
		Suffix(`
			ON CONFLICT (id) DO UPDATE SET
				name = EXCLUDED.name,
				scenario_type = EXCLUDED.scenario_type,
				is_active = EXCLUDED.is_active,
				payload = EXCLUDED.payload,
				updated_at = NOW()
		`).
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

// Deactivate marca o cenário como inativo sem removê-lo do histórico.
// Retorna false quando o cenário não existe para o tenant ou já estava
// inativo, para que a segunda exclusão responda NOT_FOUND.
func (r *runwayScenarioRepository) Deactivate(tenantID, scenarioID string) (bool, error) {
	query, args, err := squirrel.
		Update("runway_scenarios").
		Set("is_active", false).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"tenant_id": tenantID, "id": scenarioID, "is_active": true}).
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

func (r *runwayScenarioRepository) scanScenario(row *sql.Row) (*domain.RunwayScenario, error) {
	scenario := &domain.RunwayScenario{}
	var payload []byte

	if err := row.Scan(
		&scenario.ID,
		&scenario.TenantID,
		&payload,
		&scenario.CreatedAt,
		&scenario.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return r.hydrateScenario(scenario, payload)
}

func (r *runwayScenarioRepository) scanScenarioRows(rows *sql.Rows) (*domain.RunwayScenario, error) {
	scenario := &domain.RunwayScenario{}
	var payload []byte

	if err := rows.Scan(
		&scenario.ID,
		&scenario.TenantID,
		&payload,
		&scenario.CreatedAt,
		&scenario.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return r.hydrateScenario(scenario, payload)
}

// hydrateScenario reconstrói o cenário a partir do payload JSONB, mantendo as
// colunas escalares como fonte de verdade para identidade e timestamps
func (r *runwayScenarioRepository) hydrateScenario(scenario *domain.RunwayScenario, payload []byte) (*domain.RunwayScenario, error) {
	id := scenario.ID
	tenantID := scenario.TenantID
	createdAt := scenario.CreatedAt
	updatedAt := scenario.UpdatedAt

	if err := json.Unmarshal(payload, scenario); err != nil {
		return nil, fmt.Errorf("erro ao deserializar JSON do cenário: %w", err)
	}

	scenario.ID = id
	scenario.TenantID = tenantID
	scenario.CreatedAt = createdAt
	scenario.UpdatedAt = updatedAt

	return scenario, nil
}
