package domain

import "time"

// CategorySalaries é a categoria de despesa reconhecida como folha de
// pagamento pela projeção de fluxo de caixa. A taxonomia de categorias é
// controlada pelo dashboard; o casamento é literal.
const CategorySalaries = "Salaries & Wages"

// CategoryRevenue é a categoria sintética usada para a série de receitas
const CategoryRevenue = "Revenue"

// RevenueStatus representa a situação de um recebimento
type RevenueStatus string

const (
	RevenueStatusReceived RevenueStatus = "RECEIVED"
	RevenueStatusPending  RevenueStatus = "PENDING"
)

// Expense é um evento de saída de caixa registrado pelo dashboard.
// Somente leitura para o motor de projeção.
type Expense struct {
	ID       string    `json:"id"`
	TenantID string    `json:"tenant_id"`
	Date     time.Time `json:"date"`
	Amount   float64   `json:"amount"`
	Category string    `json:"category"`
	Currency Currency  `json:"currency"`
	Notes    *string   `json:"notes,omitempty"`
}

// Revenue é um evento de entrada de caixa registrado pelo dashboard.
// Somente leitura para o motor de projeção.
type Revenue struct {
	ID       string        `json:"id"`
	TenantID string        `json:"tenant_id"`
	Date     time.Time     `json:"date"`
	Amount   float64       `json:"amount"`
	Source   string        `json:"source"`
	Status   RevenueStatus `json:"status"`
	Currency Currency      `json:"currency"`
}

// BankAccount é a posição atual de caixa em uma conta bancária
type BankAccount struct {
	ID             string    `json:"id"`
	TenantID       string    `json:"tenant_id"`
	Name           string    `json:"name"`
	Institution    *string   `json:"institution,omitempty"`
	CurrentBalance float64   `json:"current_balance"`
	Currency       Currency  `json:"currency"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Balance retorna o saldo atual como valor monetário tipado
func (b BankAccount) Balance() Money {
	return Money{Amount: b.CurrentBalance, Currency: b.Currency}
}

// TeamMemberStatus representa a situação de um membro do time
type TeamMemberStatus string

const (
	TeamMemberStatusActive   TeamMemberStatus = "ACTIVE"
	TeamMemberStatusInactive TeamMemberStatus = "INACTIVE"
)

// TeamMember é um integrante do quadro; usado apenas para contagem de headcount
type TeamMember struct {
	ID        string           `json:"id"`
	TenantID  string           `json:"tenant_id"`
	Name      string           `json:"name"`
	Role      *string          `json:"role,omitempty"`
	Status    TeamMemberStatus `json:"status"`
	StartDate time.Time        `json:"start_date"`
	EndDate   *time.Time       `json:"end_date,omitempty"`
}

// MonthlyCategoryTotal é o agregado mensal de despesas por categoria
type MonthlyCategoryTotal struct {
	Year     int      `json:"year"`
	Month    int      `json:"month"`
	Category string   `json:"category"`
	Total    float64  `json:"total"`
	Currency Currency `json:"currency"`
}

// MonthlyTotal é o agregado mensal de receitas
type MonthlyTotal struct {
	Year     int      `json:"year"`
	Month    int      `json:"month"`
	Total    float64  `json:"total"`
	Currency Currency `json:"currency"`
}

// PeriodKey identifica o mês do agregado no formato AAAA-MM
func (m MonthlyCategoryTotal) PeriodKey() string {
	return periodKey(m.Year, m.Month)
}

// PeriodKey identifica o mês do agregado no formato AAAA-MM
func (m MonthlyTotal) PeriodKey() string {
	return periodKey(m.Year, m.Month)
}

func periodKey(year, month int) string {
	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).Format("2006-01")
}

// MeanMonthlyTotal calcula a média dos totais mensais observados na moeda
// informada. Agregados em outras moedas são ignorados; sem observações o
// resultado é zero.
func MeanMonthlyTotal(totals []*MonthlyTotal, currency Currency) float64 {
	sum := 0.0
	count := 0
	for _, total := range totals {
		if total.Currency != currency {
			continue
		}
		sum += total.Total
		count++
	}

	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

// SumBankBalances soma os saldos das contas bancárias na moeda informada,
// recusando contas em moeda diferente
func SumBankBalances(accounts []*BankAccount, currency Currency) (float64, error) {
	balances := make([]Money, 0, len(accounts))
	for _, account := range accounts {
		balances = append(balances, account.Balance())
	}

	total, err := SumMoney(balances, currency)
	if err != nil {
		return 0, err
	}
	return total.Amount, nil
}

// FinancialPosition é a fotografia derivada das finanças do tenant no momento
// do cálculo. Fica congelada nos artefatos para que reexecuções sejam
// reprodutíveis mesmo que o histórico mude depois.
type FinancialPosition struct {
	TotalCash      float64   `json:"total_cash"`
	MonthlyBurn    float64   `json:"monthly_burn"`
	MonthlyRevenue float64   `json:"monthly_revenue"`
	Headcount      int       `json:"headcount"`
	Currency       Currency  `json:"currency"`
	DerivedAt      time.Time `json:"derived_at"`
}

// RunwayMonths retorna o fôlego de caixa em meses na trajetória atual
func (p FinancialPosition) RunwayMonths() float64 {
	if p.MonthlyBurn <= 0 {
		return 0
	}
	return p.TotalCash / p.MonthlyBurn
}
