package cohorting

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/horizonhq/horizon-api/infrastructure/repository"
	"github.com/horizonhq/horizon-api/internal/config"
	"github.com/horizonhq/horizon-api/internal/domain"
	"github.com/horizonhq/horizon-api/pkg/apiErrors"
	"github.com/horizonhq/horizon-api/pkg/clock"
	"github.com/horizonhq/horizon-api/pkg/validate"
	"github.com/sirupsen/logrus"
)

const (
	// minHistoricalPeriods é o histórico mínimo exigido para gerar projeções
	minHistoricalPeriods = 3
	// casRetryBudget limita as tentativas otimistas de escrita antes de o
	// último escritor vencer
	casRetryBudget = 3
)

type CohortService interface {
	CreateRevenueCohort(ctx context.Context, tenantID string, request *domain.CreateCohortRequest) (*domain.RevenueCohort, error)
	ListRevenueCohorts(tenantID string) ([]*domain.RevenueCohort, error)
	GetRevenueCohort(tenantID, cohortID string) (*domain.RevenueCohort, error)
	UpdateCohortMetrics(ctx context.Context, tenantID, cohortID string, request *domain.UpdateCohortMetricsRequest) (*domain.RevenueCohort, error)
	GenerateCohortProjections(ctx context.Context, tenantID, cohortID string) (*domain.RevenueCohort, error)
	DeleteRevenueCohort(tenantID, cohortID string) error
}

type Service struct {
	cohortRepository repository.RevenueCohortRepository
	tenantRepository repository.TenantRepository
	clk              clock.Clock
	cfg              *config.Config
}

func NewService(
	cohortRepository repository.RevenueCohortRepository,
	tenantRepository repository.TenantRepository,
	clk clock.Clock,
	cfg *config.Config,
) CohortService {
	return &Service{
		cohortRepository: cohortRepository,
		tenantRepository: tenantRepository,
		clk:              clk,
		cfg:              cfg,
	}
}

// CreateRevenueCohort registra uma coorte de receita com as métricas
// observadas até aqui. A análise e as projeções só acontecem sob demanda,
// via GenerateCohortProjections.
func (s *Service) CreateRevenueCohort(ctx context.Context, tenantID string, request *domain.CreateCohortRequest) (*domain.RevenueCohort, error) {
	if details := validate.Struct(request); details != nil {
		return nil, NewCohortError(ErrInvalidRequest, apiErrors.ErrInvalidRequest, strings.Join(details, "; "))
	}

	tenant, err := s.tenantRepository.GetByID(tenantID)
	if err != nil {
		logrus.Error("Error fetching tenant from database:", err)
		return nil, NewCohortError(ErrFetchTenant, apiErrors.ErrDatabaseOperation, "Falha ao consultar tenant no banco de dados")
	}
	if tenant == nil {
		return nil, NewCohortError(ErrTenantNotFound, apiErrors.ErrArtifactNotFound, "Tenant não encontrado")
	}

	now := s.clk.Now().UTC()

	cohort := &domain.RevenueCohort{
		ID:              uuid.NewString(),
		TenantID:        tenantID,
		Name:            request.Name,
		CohortStartDate: request.CohortStartDate,
		InitialUsers:    request.InitialUsers,
		AcquisitionCost: request.AcquisitionCost,
		Currency:        tenant.BaseCurrency,
		Metrics:         normalizeMetrics(request.Metrics),
		Version:         1,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.cohortRepository.Save(cohort); err != nil {
		logrus.Error("Error persisting revenue cohort:", err)
		return nil, NewCohortError(ErrPersistCohort, apiErrors.ErrDatabaseOperation, "Falha ao salvar coorte no banco de dados")
	}

	return cohort, nil
}

// ListRevenueCohorts retorna as coortes do tenant na ordem da data de início
func (s *Service) ListRevenueCohorts(tenantID string) ([]*domain.RevenueCohort, error) {
	cohorts, err := s.cohortRepository.ListByTenant(tenantID)
	if err != nil {
		logrus.Error("Error fetching cohorts from database:", err)
		return nil, NewCohortError(ErrFetchCohorts, apiErrors.ErrDatabaseOperation, "Falha ao listar coortes no banco de dados")
	}

	if cohorts == nil {
		cohorts = make([]*domain.RevenueCohort, 0)
	}
	return cohorts, nil
}

// GetRevenueCohort busca uma coorte do tenant
func (s *Service) GetRevenueCohort(tenantID, cohortID string) (*domain.RevenueCohort, error) {
	if _, err := uuid.Parse(cohortID); err != nil {
		return nil, NewCohortErrorWithID(ErrMalformedID, apiErrors.ErrMalformedID, cohortID, "Identificador de coorte malformado")
	}

	return s.fetchCohort(tenantID, cohortID)
}

// UpdateCohortMetrics substitui o vetor de métricas observadas da coorte.
// Projeções e indicadores derivados do histórico anterior são descartados
// até a próxima geração. Com o mesmo vetor a operação é idempotente.
func (s *Service) UpdateCohortMetrics(ctx context.Context, tenantID, cohortID string, request *domain.UpdateCohortMetricsRequest) (*domain.RevenueCohort, error) {
	if _, err := uuid.Parse(cohortID); err != nil {
		return nil, NewCohortErrorWithID(ErrMalformedID, apiErrors.ErrMalformedID, cohortID, "Identificador de coorte malformado")
	}

	if details := validate.Struct(request); details != nil {
		return nil, NewCohortErrorWithID(ErrInvalidRequest, apiErrors.ErrInvalidRequest, cohortID, strings.Join(details, "; "))
	}

	cohort, err := s.fetchCohort(tenantID, cohortID)
	if err != nil {
		return nil, err
	}

	cohort.Metrics = normalizeMetrics(request.Metrics)
	cohort.RetentionModel = ""
	cohort.ProjectedLTV = 0
	cohort.LTVPerUser = 0
	cohort.LtvCacRatio = 0
	cohort.PaybackPeriodMonths = nil
	cohort.Insights = nil
	cohort.UpdatedAt = s.clk.Now().UTC()
	cohort.Version++

	updated, err := s.cohortRepository.Update(cohort)
	if err != nil {
		logrus.Error("Error persisting cohort metrics:", err)
		return nil, NewCohortErrorWithID(ErrPersistCohort, apiErrors.ErrDatabaseOperation, cohortID, "Falha ao salvar métricas no banco de dados")
	}
	if !updated {
		return nil, NewCohortErrorWithID(ErrCohortNotFound, apiErrors.ErrArtifactNotFound, cohortID, "Coorte não encontrada")
	}

	return cohort, nil
}

// GenerateCohortProjections ajusta o modelo de retenção ao histórico da
// coorte e persiste projeções, LTV, payback e insights. Gerações
// concorrentes disputam a escrita por CAS na versão; esgotado o orçamento
// de tentativas, o último escritor vence.
func (s *Service) GenerateCohortProjections(ctx context.Context, tenantID, cohortID string) (*domain.RevenueCohort, error) {
	if _, err := uuid.Parse(cohortID); err != nil {
		return nil, NewCohortErrorWithID(ErrMalformedID, apiErrors.ErrMalformedID, cohortID, "Identificador de coorte malformado")
	}

	cohort, err := s.fetchCohort(tenantID, cohortID)
	if err != nil {
		return nil, err
	}

	now := s.clk.Now().UTC()
	params := AnalysisParams{
		AnnualDiscountRate:   s.cfg.Cohort.AnnualDiscountRate,
		ProjectionHorizon:    s.cfg.Cohort.ProjectionHorizon,
		PaybackWarningMonths: s.cfg.Cohort.PaybackWarningMonths,
	}

	for attempt := 0; attempt < casRetryBudget; attempt++ {
		if err := s.computeProjections(cohort, params, now); err != nil {
			return nil, err
		}

		expectedVersion := cohort.Version
		updated, err := s.cohortRepository.UpdateWithVersion(cohort, expectedVersion)
		if err != nil {
			logrus.Error("Error persisting cohort projections:", err)
			return nil, NewCohortErrorWithID(ErrPersistCohort, apiErrors.ErrDatabaseOperation, cohortID, "Falha ao salvar projeções no banco de dados")
		}
		if updated {
			cohort.Version = expectedVersion + 1
			return cohort, nil
		}

		logrus.Warn("Version conflict generating cohort projections, retrying")
		if err := ctx.Err(); err != nil {
			return nil, NewCohortErrorWithID(ErrBuildProjection, apiErrors.ErrInternalServer, cohortID, "Geração de projeções interrompida antes da conclusão")
		}

		cohort, err = s.fetchCohort(tenantID, cohortID)
		if err != nil {
			return nil, err
		}
	}

	if err := s.computeProjections(cohort, params, now); err != nil {
		return nil, err
	}

	cohort.Version++
	updated, err := s.cohortRepository.Update(cohort)
	if err != nil {
		logrus.Error("Error persisting cohort projections:", err)
		return nil, NewCohortErrorWithID(ErrPersistCohort, apiErrors.ErrDatabaseOperation, cohortID, "Falha ao salvar projeções no banco de dados")
	}
	if !updated {
		return nil, NewCohortErrorWithID(ErrCohortNotFound, apiErrors.ErrArtifactNotFound, cohortID, "Coorte não encontrada")
	}

	return cohort, nil
}

// DeleteRevenueCohort remove uma coorte do tenant. O artefato é recriável a
// partir dos dados brutos, então a exclusão é física.
func (s *Service) DeleteRevenueCohort(tenantID, cohortID string) error {
	if _, err := uuid.Parse(cohortID); err != nil {
		return NewCohortErrorWithID(ErrMalformedID, apiErrors.ErrMalformedID, cohortID, "Identificador de coorte malformado")
	}

	deleted, err := s.cohortRepository.Delete(tenantID, cohortID)
	if err != nil {
		logrus.Error("Error deleting cohort:", err)
		return NewCohortErrorWithID(ErrPersistCohort, apiErrors.ErrDatabaseOperation, cohortID, "Falha ao excluir coorte no banco de dados")
	}
	if !deleted {
		return NewCohortErrorWithID(ErrCohortNotFound, apiErrors.ErrArtifactNotFound, cohortID, "Coorte não encontrada")
	}

	return nil
}

// computeProjections valida o histórico, roda a análise e aplica o resultado
// ao artefato em memória. Nada é persistido aqui.
func (s *Service) computeProjections(cohort *domain.RevenueCohort, params AnalysisParams, now time.Time) error {
	if len(cohort.HistoricalMetrics()) < minHistoricalPeriods {
		return NewCohortErrorWithID(ErrInsufficientHistory, apiErrors.ErrInsufficientHistory, cohort.ID,
			"A coorte precisa de ao menos três períodos observados para gerar projeções")
	}

	outcome, err := AnalyzeCohort(cohort, params)
	if err != nil {
		logrus.Error("Error building cohort projections:", err)
		return NewCohortErrorWithID(ErrBuildProjection, apiErrors.ErrInternalServer, cohort.ID, "Falha ao calcular as projeções da coorte")
	}

	cohort.ReplaceProjections(outcome.ProjectedMetrics)
	cohort.RetentionModel = outcome.RetentionModel
	cohort.ProjectedLTV = outcome.ProjectedLTV
	cohort.LTVPerUser = outcome.LTVPerUser
	cohort.LtvCacRatio = outcome.LtvCacRatio
	cohort.PaybackPeriodMonths = outcome.PaybackPeriodMonths
	cohort.Insights = outcome.Insights
	cohort.UpdatedAt = now

	return nil
}

func (s *Service) fetchCohort(tenantID, cohortID string) (*domain.RevenueCohort, error) {
	cohort, err := s.cohortRepository.GetByID(tenantID, cohortID)
	if err != nil {
		logrus.Error("Error fetching cohort from database:", err)
		return nil, NewCohortErrorWithID(ErrFetchCohorts, apiErrors.ErrDatabaseOperation, cohortID, "Falha ao consultar coorte no banco de dados")
	}
	if cohort == nil {
		return nil, NewCohortErrorWithID(ErrCohortNotFound, apiErrors.ErrArtifactNotFound, cohortID, "Coorte não encontrada")
	}

	return cohort, nil
}

// normalizeMetrics ordena o vetor por período e marca todos como
// observados; projeções só nascem da própria análise
func normalizeMetrics(metrics []domain.CohortMetric) []domain.CohortMetric {
	normalized := make([]domain.CohortMetric, len(metrics))
	copy(normalized, metrics)

	sort.SliceStable(normalized, func(i, j int) bool {
		return normalized[i].PeriodNumber < normalized[j].PeriodNumber
	})
	for i := range normalized {
		normalized[i].IsProjected = false
	}

	return normalized
}
