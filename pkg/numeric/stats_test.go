package numeric

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMean(t *testing.T) {
	tests := []struct {
		name     string
		series   []float64
		expected float64
	}{
		{
			name:     "Série vazia deve retornar zero",
			series:   []float64{},
			expected: 0,
		},
		{
			name:     "Valor único deve retornar o próprio valor",
			series:   []float64{42},
			expected: 42,
		},
		{
			name:     "Média simples de valores positivos",
			series:   []float64{10, 20, 30},
			expected: 20,
		},
		{
			name:     "Média com valores negativos",
			series:   []float64{-10, 10},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Mean(tt.series))
		})
	}
}

func TestMedian(t *testing.T) {
	tests := []struct {
		name     string
		series   []float64
		expected float64
	}{
		{
			name:     "Série vazia deve retornar zero",
			series:   []float64{},
			expected: 0,
		},
		{
			name:     "Quantidade ímpar retorna o valor central",
			series:   []float64{3, 1, 2},
			expected: 2,
		},
		{
			name:     "Quantidade par retorna o ponto médio dos centrais",
			series:   []float64{4, 1, 3, 2},
			expected: 2.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Median(tt.series))
		})
	}
}

func TestMedianNaoModificaEntrada(t *testing.T) {
	series := []float64{3, 1, 2}
	_ = Median(series)
	assert.Equal(t, []float64{3, 1, 2}, series)
}

func TestQuantile(t *testing.T) {
	series := []float64{1, 2, 3, 4, 5}

	tests := []struct {
		name     string
		q        float64
		expected float64
	}{
		{name: "Quantil 0 retorna o mínimo", q: 0, expected: 1},
		{name: "Quantil 0.25 interpola entre postos", q: 0.25, expected: 2},
		{name: "Quantil 0.5 retorna a mediana", q: 0.5, expected: 3},
		{name: "Quantil 1 retorna o máximo", q: 1, expected: 5},
		{name: "Quantil fracionário interpola linearmente", q: 0.1, expected: 1.4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Quantile(series, tt.q), 1e-9)
		})
	}
}

func TestStdDev(t *testing.T) {
	tests := []struct {
		name     string
		series   []float64
		expected float64
	}{
		{
			name:     "Menos de dois valores tem desvio zero",
			series:   []float64{10},
			expected: 0,
		},
		{
			name:     "Desvio padrão populacional conhecido",
			series:   []float64{2, 4, 4, 4, 5, 5, 7, 9},
			expected: 2,
		},
		{
			name:     "Série constante tem desvio zero",
			series:   []float64{5, 5, 5, 5},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, StdDev(tt.series), 1e-9)
		})
	}
}

func TestGeometricMean(t *testing.T) {
	tests := []struct {
		name     string
		series   []float64
		expected float64
	}{
		{
			name:     "Média geométrica de dois valores",
			series:   []float64{1, 100},
			expected: 10,
		},
		{
			name:     "Valores não positivos são ignorados",
			series:   []float64{-5, 0, 4, 9},
			expected: 6,
		},
		{
			name:     "Sem valores positivos retorna zero",
			series:   []float64{0, -1},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, GeometricMean(tt.series), 1e-9)
		})
	}
}

func TestTrimOutliersIQR(t *testing.T) {
	tests := []struct {
		name     string
		series   []float64
		expected []float64
	}{
		{
			name:     "Série curta é retornada sem alteração",
			series:   []float64{1, 1000, 2},
			expected: []float64{1, 1000, 2},
		},
		{
			name:     "Outlier alto é removido preservando a ordem",
			series:   []float64{10, 12, 11, 13, 100},
			expected: []float64{10, 12, 11, 13},
		},
		{
			name:     "Série homogênea permanece intacta",
			series:   []float64{10, 11, 12, 13, 14},
			expected: []float64{10, 11, 12, 13, 14},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TrimOutliersIQR(tt.series, 1.5))
		})
	}
}

func TestSanitizacao(t *testing.T) {
	assert.Equal(t, 7.0, Sanitize(math.NaN(), 7))
	assert.Equal(t, 7.0, Sanitize(math.Inf(1), 7))
	assert.Equal(t, 3.0, Sanitize(3, 7))

	assert.Equal(t, 0.0, SafeDiv(10, 0))
	assert.Equal(t, 2.5, SafeDiv(5, 2))

	assert.Equal(t, 1.0, Clamp(0.5, 1, 2))
	assert.Equal(t, 2.0, Clamp(9, 1, 2))
	assert.Equal(t, 1.5, Clamp(1.5, 1, 2))

	assert.False(t, IsFinite(math.NaN()))
	assert.False(t, IsFinite(math.Inf(-1)))
	assert.True(t, IsFinite(0))

	assert.Equal(t, []float64{1, 2}, FilterFinite([]float64{1, math.NaN(), 2, math.Inf(1)}))
}
