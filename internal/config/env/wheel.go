package env

import (
	"brand_site/internal/config"
	"brand_site/internal/model"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	defaultExtraTurnsMin = 5
	defaultExtraTurnsMax = 9
)

type yamlPrize struct {
	ID                int    `yaml:"id"`
	Name              string `yaml:"name"`
	Type              string `yaml:"type"`
	NervousSystemArea string `yaml:"nervous_system_area"`
	Note              string `yaml:"note"`
}

type yamlWheel struct {
	Wheel struct {
		ExtraTurns struct {
			Min int `yaml:"min"`
			Max int `yaml:"max"`
		} `yaml:"extra_turns"`
		Prizes []yamlPrize `yaml:"prizes"`
	} `yaml:"wheel"`
}

type wheelConfig struct {
	prizes        []model.Prize
	extraTurnsMin int
	extraTurnsMax int
}

// NewWheelConfigFromYAML читает каталог призов из config.yaml
func NewWheelConfigFromYAML(path string) (config.WheelConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read wheel config: %w", err)
	}

	return ParseWheelConfig(data)
}

// ParseWheelConfig разбирает и проверяет каталог: он не пустой, имена уникальны
func ParseWheelConfig(data []byte) (config.WheelConfig, error) {
	var raw yamlWheel
	err := yaml.Unmarshal(data, &raw)
	if err != nil {
		return nil, fmt.Errorf("parse wheel config: %w", err)
	}

	if len(raw.Wheel.Prizes) == 0 {
		return nil, errors.New("wheel config: prize catalog is empty")
	}

	seen := make(map[string]struct{}, len(raw.Wheel.Prizes))
	prizes := make([]model.Prize, 0, len(raw.Wheel.Prizes))
	for i, p := range raw.Wheel.Prizes {
		name := strings.TrimSpace(p.Name)
		if name == "" {
			return nil, fmt.Errorf("wheel config: prize #%d has empty name", i)
		}
		if _, ok := seen[name]; ok {
			return nil, fmt.Errorf("wheel config: duplicate prize name %q", name)
		}
		seen[name] = struct{}{}

		prizes = append(prizes, model.Prize{
			ID:             p.ID,
			Name:           name,
			Category:       p.Type,
			AssociatedArea: p.NervousSystemArea,
			Note:           p.Note,
		})
	}

	minTurns, maxTurns := raw.Wheel.ExtraTurns.Min, raw.Wheel.ExtraTurns.Max
	if minTurns == 0 && maxTurns == 0 {
		minTurns, maxTurns = defaultExtraTurnsMin, defaultExtraTurnsMax
	}
	if minTurns < 0 || maxTurns < minTurns {
		return nil, fmt.Errorf("wheel config: invalid extra turns range [%d, %d]", minTurns, maxTurns)
	}

	return &wheelConfig{
		prizes:        prizes,
		extraTurnsMin: minTurns,
		extraTurnsMax: maxTurns,
	}, nil
}

// Prizes возвращает копию каталога
func (cfg *wheelConfig) Prizes() []model.Prize {
	out := make([]model.Prize, len(cfg.prizes))
	copy(out, cfg.prizes)
	return out
}

func (cfg *wheelConfig) ExtraTurns() (int, int) {
	return cfg.extraTurnsMin, cfg.extraTurnsMax
}
