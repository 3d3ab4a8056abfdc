// Package comparables fornece sinais de mercado usados pela predição de
// captação: condições gerais do mercado e referências de tamanho de rodada
// por estágio.
package comparables

import (
	"github.com/horizonhq/horizon-api/internal/config"
	"github.com/horizonhq/horizon-api/internal/domain"
	"github.com/sirupsen/logrus"
)

// Snapshot é a leitura de mercado para um estágio de rodada
type Snapshot struct {
	// Score é a condição geral do mercado em [0, 1]
	Score float64 `json:"score"`
	// MedianRoundSize é o tamanho típico de rodada do estágio, na moeda base
	MedianRoundSize float64 `json:"median_round_size"`
	// SampleLabel descreve a origem da referência
	SampleLabel string `json:"sample_label"`
}

type Provider interface {
	MarketConditions(roundType domain.RoundType) (*Snapshot, error)
}

// Referências de tamanho de rodada por estágio. Valores de mercado apenas
// indicativos; um provider externo pode substituí-los.
var medianRoundSizes = map[domain.RoundType]float64{
	domain.RoundTypePreSeed: 750_000,
	domain.RoundTypeSeed:    3_000_000,
	domain.RoundTypeSeriesA: 12_000_000,
	domain.RoundTypeSeriesB: 30_000_000,
	domain.RoundTypeBridge:  2_000_000,
}

// StaticProvider responde com o score configurado e referências fixas.
// É o provider padrão enquanto não há integração com uma base de rodadas.
type StaticProvider struct {
	cfg *config.Config
}

func NewStaticProvider(cfg *config.Config) *StaticProvider {
	return &StaticProvider{
		cfg: cfg,
	}
}

func (p *StaticProvider) MarketConditions(roundType domain.RoundType) (*Snapshot, error) {
	median, ok := medianRoundSizes[roundType]
	if !ok {
		logrus.WithField("round_type", roundType).Warn("comparables: unknown round type, using seed benchmark")
		median = medianRoundSizes[domain.RoundTypeSeed]
	}

	snapshot := &Snapshot{
		Score:           p.cfg.Fundraising.MarketConditionsScore,
		MedianRoundSize: median,
		SampleLabel:     "static-defaults",
	}

	logrus.WithFields(logrus.Fields{
		"round_type":        roundType,
		"score":             snapshot.Score,
		"median_round_size": snapshot.MedianRoundSize,
	}).Debug("comparables: market conditions snapshot served")

	return snapshot, nil
}
