package bot

import (
	"reflect"
	"testing"
)

func TestConfigPatch_Apply(t *testing.T) {
	enabled := true
	strategy := StrategyRSI
	rsiPeriod := 7

	cfg := DefaultConfig()
	patch := &ConfigPatch{
		Enabled:  &enabled,
		Strategy: &strategy,
		Params:   ParamsPatch{RSIPeriod: &rsiPeriod},
	}
	patch.Apply(cfg)

	want := DefaultConfig()
	want.Enabled = true
	want.Strategy = StrategyRSI
	want.Params.RSIPeriod = 7

	if !reflect.DeepEqual(cfg, want) {
		t.Errorf("Apply() = %+v, want %+v", cfg, want)
	}
}

func TestConfigPatch_EmptyKeepsEverything(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Enabled = true
	cfg.Params.ShortPeriod = 5

	before := *cfg
	(&ConfigPatch{}).Apply(cfg)

	if !reflect.DeepEqual(*cfg, before) {
		t.Errorf("empty patch changed config: %+v, want %+v", *cfg, before)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Enabled {
		t.Error("default config enabled")
	}
	if cfg.Strategy != StrategySMA {
		t.Errorf("default strategy = %v, want sma", cfg.Strategy)
	}
	wantParams := Params{
		BuyThreshold:  0.03,
		SellThreshold: 0.05,
		ShortPeriod:   9,
		LongPeriod:    21,
		RSIPeriod:     14,
		RSIOverbought: 70,
		RSIOversold:   30,
	}
	if cfg.Params != wantParams {
		t.Errorf("default params = %+v, want %+v", cfg.Params, wantParams)
	}
}
