package delivery

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"
	"go.uber.org/zap"

	alertPkg "github.com/SNEHARUTH11/fina/pkg/alert"
	"github.com/SNEHARUTH11/fina/pkg/logging"
)

// Notifier delivers triggered-alert events. The simulation driver calls
// it between CheckAlerts and MarkTriggered.
type Notifier interface {
	Notify(a *alertPkg.Alert, currentPrice float64)
}

type tgNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger *logging.Logger
}

// NewTgNotifier sends triggered alerts to a telegram chat.
func NewTgNotifier(token string, chatID int64, logger *logging.Logger) (Notifier, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("not create bot api: %v", err)
	}
	return &tgNotifier{bot: bot, chatID: chatID, logger: logger}, nil
}

func (n *tgNotifier) Notify(a *alertPkg.Alert, currentPrice float64) {
	msgTxt := fmt.Sprintf("Alert: asset %v is %v %.2f (current price %.2f)",
		a.AssetID, a.Condition, a.Price, currentPrice)
	_, err := n.bot.Send(tgbotapi.NewMessage(n.chatID, msgTxt))
	if err != nil {
		n.logger.Zap.Error("send alert",
			zap.String("logger", "tgNotifier"),
			zap.String("alertID", a.ID),
			zap.String("err", err.Error()),
		)
	}
}

type logNotifier struct {
	logger *logging.Logger
}

// NewLogNotifier is the fallback used when no telegram token is
// configured.
func NewLogNotifier(logger *logging.Logger) Notifier {
	return &logNotifier{logger: logger}
}

func (n *logNotifier) Notify(a *alertPkg.Alert, currentPrice float64) {
	n.logger.Zap.Info("alert triggered",
		zap.String("logger", "alerts"),
		zap.String("alertID", a.ID),
		zap.String("assetID", a.AssetID),
		zap.String("condition", string(a.Condition)),
		zap.Float64("price", a.Price),
		zap.Float64("currentPrice", currentPrice),
	)
}
