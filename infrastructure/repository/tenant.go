package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/horizonhq/horizon-api/infrastructure/database/postgres"
	"github.com/horizonhq/horizon-api/internal/domain"
)

const (
	tenantsTable = "tenants t"
)

type TenantRepository interface {
	GetByID(tenantID string) (*domain.Tenant, error)
	ListByStatus(status []domain.TenantStatus) ([]*domain.Tenant, error)
}

type tenantRepository struct {
	conn postgres.Queryer
}

func NewTenantRepository(conn postgres.Queryer) TenantRepository {
	return &tenantRepository{
		conn: conn,
	}
}

func (r *tenantRepository) GetByID(tenantID string) (*domain.Tenant, error) {
	query, args, err := squirrel.
		Select("t.id, t.name, t.status, t.base_currency, t.created_at, t.updated_at").
		From(tenantsTable).
		Where(squirrel.Eq{"t.id": tenantID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	tenant, err := r.scanTenant(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear tenant: %w", err)
	}

	return tenant, nil
}

func (r *tenantRepository) ListByStatus(status []domain.TenantStatus) ([]*domain.Tenant, error) {
	queryBuilder := squirrel.
		Select("t.id, t.name, t.status, t.base_currency, t.created_at, t.updated_at").
		From(tenantsTable).
		OrderBy("t.name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if len(status) > 0 {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"t.status": status})
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

	tenants := make([]*domain.Tenant, 0)
	for rows.Next() {
		tenant := &domain.Tenant{}
		if err := rows.Scan(
			&tenant.ID,
			&tenant.Name,
			&tenant.Status,
			&tenant.BaseCurrency,
			&tenant.CreatedAt,
			&tenant.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear tenant: %w", err)
		}
		tenants = append(tenants, tenant)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	if len(tenants) == 0 {
		return nil, nil
	}

	return tenants, nil
}

func (r *tenantRepository) scanTenant(row *sql.Row) (*domain.Tenant, error) {
	tenant := &domain.Tenant{}

	if err := row.Scan(
		&tenant.ID,
		&tenant.Name,
		&tenant.Status,
		&tenant.BaseCurrency,
		&tenant.CreatedAt,
		&tenant.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return tenant, nil
}
