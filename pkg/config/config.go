package config

import (
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	HTTP struct {
		Port int
	}
	Redis struct {
		Addr string
	}
	Telegram struct {
		Token  string
		ChatID int64
	}
	Simulation struct {
		Timeframe      string
		TickInterval   int
		HistoryCount   int
		InitialBalance float64
	}
	Bot struct {
		TradeAmount float64
	}
}

func Read(appName string, cfg interface{}) error {
	v := viper.New()

	v.SetConfigName(appName)
	v.AddConfigPath("./configs/")
	v.AddConfigPath("../../configs/")
	v.SetDefault("Simulation.Timeframe", "15m")
	v.SetDefault("Simulation.TickInterval", 1)
	v.SetDefault("Simulation.HistoryCount", 100)
	v.SetDefault("Simulation.InitialBalance", 10000)
	v.SetDefault("Bot.TradeAmount", 0.1)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	err := v.ReadInConfig()
	if err != nil {
		return err
	}
	if cfg != nil {
		err := v.Unmarshal(cfg)
		if err != nil {
			return err
		}
	}
	return nil
}
