package clock

import "time"

// Clock abstrai a leitura do tempo atual para permitir injeção em testes
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// System retorna o relógio do sistema
func System() Clock {
	return systemClock{}
}

// Fixed é um relógio que sempre retorna o mesmo instante
type Fixed struct {
	Instant time.Time
}

func (f Fixed) Now() time.Time {
	return f.Instant
}

// NewFixed cria um relógio congelado no instante informado
func NewFixed(t time.Time) Fixed {
	return Fixed{Instant: t}
}
