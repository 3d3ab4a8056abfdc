package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/horizonhq/horizon-api/infrastructure/database/postgres"
	"github.com/horizonhq/horizon-api/internal/domain"
)

const (
	kpiSnapshotsTable = "kpi_snapshots ks"
)

type KpiSnapshotRepository interface {
	ListRecent(tenantID string, limit int) ([]*domain.KpiSnapshot, error)
}

type kpiSnapshotRepository struct {
	conn postgres.Queryer
}

func NewKpiSnapshotRepository(conn postgres.Queryer) KpiSnapshotRepository {
	return &kpiSnapshotRepository{
		conn: conn,
	}
}

// ListRecent retorna os snapshots mais recentes do tenant, do mais novo para
// o mais antigo
func (r *kpiSnapshotRepository) ListRecent(tenantID string, limit int) ([]*domain.KpiSnapshot, error) {
	query, args, err := squirrel.
		Select("ks.id, ks.tenant_id, ks.snapshot_date, ks.dau, ks.mau, ks.feature_usage, ks.cohort_retention, ks.created_at").
		From(kpiSnapshotsTable).
		Where(squirrel.Eq{"ks.tenant_id": tenantID}).
		OrderBy("ks.snapshot_date DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.querySnapshots(query, args)
}

func (r *kpiSnapshotRepository) querySnapshots(query string, args []interface{}) ([]*domain.KpiSnapshot, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	snapshots := make([]*domain.KpiSnapshot, 0)
	for rows.Next() {
		snapshot, err := r.scanSnapshot(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear snapshot de KPI: %w", err)
		}
		snapshots = append(snapshots, snapshot)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return snapshots, nil
}

func (r *kpiSnapshotRepository) scanSnapshot(rows *sql.Rows) (*domain.KpiSnapshot, error) {
	snapshot := &domain.KpiSnapshot{}
	var featureUsageJSON []byte
	var cohortRetentionJSON []byte

	err := rows.Scan(
		&snapshot.ID,
		&snapshot.TenantID,
		&snapshot.SnapshotDate,
		&snapshot.DAU,
		&snapshot.MAU,
		&featureUsageJSON,
		&cohortRetentionJSON,
		&snapshot.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if featureUsageJSON != nil {
		featureUsage := make(map[string]int)
		if err := json.Unmarshal(featureUsageJSON, &featureUsage); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de feature_usage: %w", err)
		}
		snapshot.FeatureUsage = featureUsage
	}

	if cohortRetentionJSON != nil {
		cohortRetention := make([]domain.CohortRetentionEntry, 0)
		if err := json.Unmarshal(cohortRetentionJSON, &cohortRetention); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de cohort_retention: %w", err)
		}
		snapshot.CohortRetention = cohortRetention
	}

	return snapshot, nil
}
