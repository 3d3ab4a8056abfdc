package numeric

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExponentialSmoothing(t *testing.T) {
	tests := []struct {
		name     string
		series   []float64
		alpha    float64
		periods  int
		validate func(t *testing.T, result []float64)
	}{
		{
			name:    "Série vazia produz projeção zerada",
			series:  []float64{},
			alpha:   0.3,
			periods: 4,
			validate: func(t *testing.T, result []float64) {
				assert.Equal(t, []float64{0, 0, 0, 0}, result)
			},
		},
		{
			name:    "Entradas negativas e não finitas são filtradas",
			series:  []float64{-100, math.NaN(), math.Inf(1)},
			alpha:   0.3,
			periods: 2,
			validate: func(t *testing.T, result []float64) {
				assert.Equal(t, []float64{0, 0}, result)
			},
		},
		{
			name:    "Série constante projeta o mesmo valor",
			series:  []float64{100, 100, 100},
			alpha:   0.5,
			periods: 3,
			validate: func(t *testing.T, result []float64) {
				assert.Equal(t, []float64{100, 100, 100}, result)
			},
		},
		{
			name:    "Horizonte não positivo produz projeção vazia",
			series:  []float64{100},
			alpha:   0.5,
			periods: 0,
			validate: func(t *testing.T, result []float64) {
				assert.Empty(t, result)
			},
		},
		{
			name:    "Alpha fora do intervalo é saturado",
			series:  []float64{100, 100},
			alpha:   42,
			periods: 2,
			validate: func(t *testing.T, result []float64) {
				assert.Equal(t, []float64{100, 100}, result)
			},
		},
		{
			name:    "Série crescente projeta crescimento amortecido",
			series:  []float64{100, 110, 121},
			alpha:   0.5,
			periods: 6,
			validate: func(t *testing.T, result []float64) {
				assert.Len(t, result, 6)
				for i, v := range result {
					assert.True(t, IsFinite(v), "posição %d deve ser finita", i)
					assert.GreaterOrEqual(t, v, 0.0)
				}
				// Projeção parte do último valor suavizado e cresce
				assert.Greater(t, result[0], 100.0)
				assert.Greater(t, result[5], result[0])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, ExponentialSmoothing(tt.series, tt.alpha, tt.periods))
		})
	}
}

func TestExponentialSmoothingDeterministico(t *testing.T) {
	series := []float64{120, 130, 125, 140, 138}

	first := ExponentialSmoothing(series, 0.3, 12)
	second := ExponentialSmoothing(series, 0.3, 12)

	assert.Equal(t, first, second)
}

func TestExponentialSmoothingCacheDevolveCopia(t *testing.T) {
	series := []float64{55, 60, 58, 62}

	first := ExponentialSmoothing(series, 0.4, 5)
	first[0] = -999

	second := ExponentialSmoothing(series, 0.4, 5)
	assert.NotEqual(t, -999.0, second[0], "mutação do resultado não pode vazar para o cache")
}

func TestSmoothingCacheEvictsFIFO(t *testing.T) {
	cache := newSmoothingCache(3)

	for i := 0; i < 5; i++ {
		cache.put([]float64{float64(i)}, 0.5, 1, []float64{float64(i)})
	}

	assert.Equal(t, 3, cache.len())

	// As duas entradas mais antigas foram evictadas
	_, ok := cache.get([]float64{0}, 0.5, 1)
	assert.False(t, ok)
	_, ok = cache.get([]float64{1}, 0.5, 1)
	assert.False(t, ok)
	_, ok = cache.get([]float64{4}, 0.5, 1)
	assert.True(t, ok)
}

func TestSmoothingCacheDistingueParametros(t *testing.T) {
	cache := newSmoothingCache(10)
	cache.put([]float64{1, 2}, 0.5, 3, []float64{9})

	_, ok := cache.get([]float64{1, 2}, 0.5, 4)
	assert.False(t, ok, "períodos diferentes devem gerar chaves diferentes")

	_, ok = cache.get([]float64{1, 2}, 0.6, 3)
	assert.False(t, ok, "alpha diferente deve gerar chave diferente")

	got, ok := cache.get([]float64{1, 2}, 0.5, 3)
	assert.True(t, ok)
	assert.Equal(t, []float64{9}, got)
}

func TestWeightedMovingAverage(t *testing.T) {
	tests := []struct {
		name     string
		series   []float64
		weights  []float64
		expected float64
	}{
		{
			name:     "Série vazia retorna zero",
			series:   []float64{},
			weights:  []float64{1, 2},
			expected: 0,
		},
		{
			name:     "Pesos são normalizados quando não somam um",
			series:   []float64{1, 2, 3, 4},
			weights:  []float64{1, 2, 3, 4},
			expected: 3,
		},
		{
			name:     "Janela usa apenas os valores mais recentes",
			series:   []float64{1000, 10, 20},
			weights:  []float64{0.5, 0.5},
			expected: 15,
		},
		{
			name:     "Série menor que os pesos degrada para a média",
			series:   []float64{10, 20},
			weights:  []float64{1, 1, 1},
			expected: 15,
		},
		{
			name:     "Pesos zerados degradam para a média",
			series:   []float64{10, 20},
			weights:  []float64{0, 0},
			expected: 15,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, WeightedMovingAverage(tt.series, tt.weights), 1e-9)
		})
	}
}

func TestSmoothingCacheRespeitaCapacidadePadrao(t *testing.T) {
	// Preenche além da capacidade padrão com séries distintas
	for i := 0; i < smoothingCacheCapacity+20; i++ {
		ExponentialSmoothing([]float64{float64(i), float64(i + 1)}, 0.3, 2)
	}

	assert.LessOrEqual(t, defaultSmoothingCache.len(), smoothingCacheCapacity,
		fmt.Sprintf("cache deve permanecer limitado a %d entradas", smoothingCacheCapacity))
}
