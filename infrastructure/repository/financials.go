package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/horizonhq/horizon-api/infrastructure/database/postgres"
	"github.com/horizonhq/horizon-api/internal/domain"
)

const (
	bankAccountsTable = "bank_accounts ba"
	teamMembersTable  = "team_members tm"
	expensesTable     = "expenses e"
	revenuesTable     = "revenues rv"
)

type FinancialsRepository interface {
	ListBankAccounts(tenantID string) ([]*domain.BankAccount, error)
	ListTeamMembers(tenantID string, status []domain.TeamMemberStatus) ([]*domain.TeamMember, error)
	ListExpensesByPeriod(tenantID string, startDate, endDate time.Time) ([]*domain.Expense, error)
	ListRevenuesByPeriod(tenantID string, startDate, endDate time.Time) ([]*domain.Revenue, error)
	MonthlyExpenseTotals(tenantID string, startDate, endDate time.Time) ([]*domain.MonthlyTotal, error)
	MonthlyRevenueTotals(tenantID string, startDate, endDate time.Time) ([]*domain.MonthlyTotal, error)
	MonthlyExpenseTotalsByCategory(tenantID string, startDate, endDate time.Time) ([]*domain.MonthlyCategoryTotal, error)
}

type financialsRepository struct {
	conn postgres.Queryer
}

func NewFinancialsRepository(conn postgres.Queryer) FinancialsRepository {
	return &financialsRepository{
		conn: conn,
	}
}

func (r *financialsRepository) ListBankAccounts(tenantID string) ([]*domain.BankAccount, error) {
	query, args, err := squirrel.
		Select("ba.id, ba.tenant_id, ba.name, ba.institution, ba.current_balance, ba.currency, ba.updated_at").
		From(bankAccountsTable).
		Where(squirrel.Eq{"ba.tenant_id": tenantID}).
		OrderBy("ba.name ASC").
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

	accounts := make([]*domain.BankAccount, 0)
	for rows.Next() {
		account := &domain.BankAccount{}
		if err := rows.Scan(
			&account.ID,
			&account.TenantID,
			&account.Name,
			&account.Institution,
			&account.CurrentBalance,
			&account.Currency,
			&account.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear conta bancária: %w", err)
		}
		accounts = append(accounts, account)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return accounts, nil
}

func (r *financialsRepository) ListTeamMembers(tenantID string, status []domain.TeamMemberStatus) ([]*domain.TeamMember, error) {
	queryBuilder := squirrel.
		Select("tm.id, tm.tenant_id, tm.name, tm.role, tm.status, tm.start_date, tm.end_date").
		From(teamMembersTable).
		Where(squirrel.Eq{"tm.tenant_id": tenantID}).
		OrderBy("tm.name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if len(status) > 0 {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"tm.status": status})
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

	members := make([]*domain.TeamMember, 0)
	for rows.Next() {
		member := &domain.TeamMember{}
		if err := rows.Scan(
			&member.ID,
			&member.TenantID,
			&member.Name,
			&member.Role,
			&member.Status,
			&member.StartDate,
			&member.EndDate,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear membro do time: %w", err)
		}
		members = append(members, member)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return members, nil
}

func (r *financialsRepository) ListExpensesByPeriod(tenantID string, startDate, endDate time.Time) ([]*domain.Expense, error) {
	query, args, err := squirrel.
		Select("e.id, e.tenant_id, e.date, e.amount, e.category, e.currency, e.notes").
		From(expensesTable).
		Where(squirrel.Eq{"e.tenant_id": tenantID}).
		Where(squirrel.GtOrEq{"e.date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"e.date": endDate.Format(time.DateOnly)}).
		OrderBy("e.date ASC").
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

	expenses := make([]*domain.Expense, 0)
	for rows.Next() {
		expense := &domain.Expense{}
		if err := rows.Scan(
			&expense.ID,
			&expense.TenantID,
			&expense.Date,
			&expense.Amount,
			&expense.Category,
			&expense.Currency,
			&expense.Notes,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear despesa: %w", err)
		}
		expenses = append(expenses, expense)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return expenses, nil
}

func (r *financialsRepository) ListRevenuesByPeriod(tenantID string, startDate, endDate time.Time) ([]*domain.Revenue, error) {
	query, args, err := squirrel.
		Select("rv.id, rv.tenant_id, rv.date, rv.amount, rv.source, rv.status, rv.currency").
		From(revenuesTable).
		Where(squirrel.Eq{"rv.tenant_id": tenantID}).
		Where(squirrel.GtOrEq{"rv.date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"rv.date": endDate.Format(time.DateOnly)}).
		OrderBy("rv.date ASC").
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

	revenues := make([]*domain.Revenue, 0)
	for rows.Next() {
		revenue := &domain.Revenue{}
		if err := rows.Scan(
			&revenue.ID,
			&revenue.TenantID,
			&revenue.Date,
			&revenue.Amount,
			&revenue.Source,
			&revenue.Status,
			&revenue.Currency,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear receita: %w", err)
		}
		revenues = append(revenues, revenue)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return revenues, nil
}

func (r *financialsRepository) MonthlyExpenseTotals(tenantID string, startDate, endDate time.Time) ([]*domain.MonthlyTotal, error) {
	query, args, err := squirrel.
		Select("EXTRACT(YEAR FROM e.date)::int AS year, EXTRACT(MONTH FROM e.date)::int AS month, SUM(e.amount) AS total, e.currency").
		From(expensesTable).
		Where(squirrel.Eq{"e.tenant_id": tenantID}).
		Where(squirrel.GtOrEq{"e.date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"e.date": endDate.Format(time.DateOnly)}).
		GroupBy("year", "month", "e.currency").
		OrderBy("year ASC", "month ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryMonthlyTotals(query, args)
}

func (r *financialsRepository) MonthlyRevenueTotals(tenantID string, startDate, endDate time.Time) ([]*domain.MonthlyTotal, error) {
	query, args, err := squirrel.
		Select("EXTRACT(YEAR FROM rv.date)::int AS year, EXTRACT(MONTH FROM rv.date)::int AS month, SUM(rv.amount) AS total, rv.currency").
		From(revenuesTable).
		Where(squirrel.Eq{"rv.tenant_id": tenantID}).
		Where(squirrel.GtOrEq{"rv.date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"rv.date": endDate.Format(time.DateOnly)}).
		GroupBy("year", "month", "rv.currency").
		OrderBy("year ASC", "month ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryMonthlyTotals(query, args)
}

func (r *financialsRepository) MonthlyExpenseTotalsByCategory(tenantID string, startDate, endDate time.Time) ([]*domain.MonthlyCategoryTotal, error) {
	query, args, err := squirrel.
		Select("EXTRACT(YEAR FROM e.date)::int AS year, EXTRACT(MONTH FROM e.date)::int AS month, e.category, SUM(e.amount) AS total, e.currency").
		From(expensesTable).
		Where(squirrel.Eq{"e.tenant_id": tenantID}).
		Where(squirrel.GtOrEq{"e.date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"e.date": endDate.Format(time.DateOnly)}).
		GroupBy("year", "month", "e.category", "e.currency").
		OrderBy("year ASC", "month ASC", "e.category ASC").
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

	totals := make([]*domain.MonthlyCategoryTotal, 0)
	for rows.Next() {
		total := &domain.MonthlyCategoryTotal{}
		if err := rows.Scan(
			&total.Year,
			&total.Month,
			&total.Category,
			&total.Total,
			&total.Currency,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear total mensal por categoria: %w", err)
		}
		totals = append(totals, total)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return totals, nil
}

func (r *financialsRepository) queryMonthlyTotals(query string, args []interface{}) ([]*domain.MonthlyTotal, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	totals := make([]*domain.MonthlyTotal, 0)
	for rows.Next() {
		total := &domain.MonthlyTotal{}
		if err := rows.Scan(
			&total.Year,
			&total.Month,
			&total.Total,
			&total.Currency,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear total mensal: %w", err)
		}
		totals = append(totals, total)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return totals, nil
}
