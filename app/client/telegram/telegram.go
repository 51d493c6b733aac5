package telegram

import (
	"log/slog"

	"smalltalk/app/config"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/samber/do"
	"github.com/samber/oops"
)

// Client wraps the Telegram Bot API: inbound updates, outbound messages.
type Client struct {
	cfg *config.Config
	bot *tgbotapi.BotAPI
}

func NewClient(di *do.Injector) (*Client, error) {
	cfg := do.MustInvoke[*config.Config](di)

	bot, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
	if err != nil {
		return nil, oops.Errorf("failed to create telegram bot: %w", err)
	}

	slog.Info("Connected to Telegram", "username", bot.Self.UserName)

	return &Client{
		cfg: cfg,
		bot: bot,
	}, nil
}

func (c *Client) Updates() tgbotapi.UpdatesChannel {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = c.cfg.Telegram.PollIntervalSec

	return c.bot.GetUpdatesChan(u)
}

func (c *Client) SendMessage(chatID int64, text string) error {
	if _, err := c.bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		return oops.Errorf("failed to send telegram message: %w", err)
	}

	return nil
}

func (c *Client) Stop() {
	c.bot.StopReceivingUpdates()
}
