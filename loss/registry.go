package loss

import (
	"encoding/json"
	"fmt"
	"sort"
	"sync"
)

// Configは損失関数の設定。nil のフィールドは既定値になる。
type Config struct {
	Type            string   `json:"type"`
	UseTargetWeight bool     `json:"use_target_weight"`
	LossWeight      *float32 `json:"loss_weight,omitempty"`
	Omega           *float32 `json:"omega,omitempty"`
	Epsilon         *float32 `json:"epsilon,omitempty"`
}

func (c Config) lossWeight() float32 {
	if c.LossWeight == nil {
		return 1.0
	}
	return *c.LossWeight
}

func ParseConfig(b []byte) (Config, error) {
	var c Config
	if err := json.Unmarshal(b, &c); err != nil {
		return Config{}, fmt.Errorf("損失関数の設定を読み込めません: %w", err)
	}
	return c, nil
}

type Builder func(Config) (Loss, error)

var (
	mu       sync.RWMutex
	builders = map[string]Builder{}
)

func Register(name string, builder Builder) error {
	if name == "" {
		return fmt.Errorf("損失関数の名前が空です。")
	}
	if builder == nil {
		return fmt.Errorf("%s: Builder が nil です。", name)
	}

	mu.Lock()
	defer mu.Unlock()
	if _, ok := builders[name]; ok {
		return fmt.Errorf("%s は既に登録されています。", name)
	}
	builders[name] = builder
	return nil
}

func Build(c Config) (Loss, error) {
	mu.RLock()
	builder, ok := builders[c.Type]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("未登録の損失関数です: %q (登録済み: %v)", c.Type, Names())
	}
	return builder(c)
}

func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func buildSmoothL1(c Config) (Loss, error) {
	return NewSmoothL1(c.UseTargetWeight, c.lossWeight()), nil
}

func buildWing(c Config) (Loss, error) {
	omega, epsilon := DefaultOmega, DefaultEpsilon
	if c.Omega != nil {
		omega = *c.Omega
	}
	if c.Epsilon != nil {
		epsilon = *c.Epsilon
	}
	w, err := NewWing(omega, epsilon, c.UseTargetWeight, c.lossWeight())
	if err != nil {
		return nil, err
	}
	return w, nil
}

func init() {
	for name, builder := range map[string]Builder{
		SmoothL1Name: buildSmoothL1,
		WingName:     buildWing,
	} {
		if err := Register(name, builder); err != nil {
			panic(err)
		}
	}
}
