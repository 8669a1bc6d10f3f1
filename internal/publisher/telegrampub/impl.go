package telegrampub

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/orgball2608/post-pilot/internal/domain"
	"github.com/orgball2608/post-pilot/internal/publisher"
	"github.com/orgball2608/post-pilot/pkg/config"
	"github.com/orgball2608/post-pilot/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
}

type TelegramPublisher struct {
	Bot    *tgbotapi.BotAPI
	Logger logger.Logger
	Config *config.Config
}

func New(opts Opts) (*TelegramPublisher, error) {
	bot, err := tgbotapi.NewBotAPI(opts.Config.Telegram.BotToken)
	if err != nil {
		opts.Logger.Error("Error creating bot", "error", err)
		return nil, err
	}

	return &TelegramPublisher{
		Bot:    bot,
		Logger: opts.Logger.WithComponent("TelegramPublisher"),
		Config: opts.Config,
	}, nil
}

var _ publisher.Client = (*TelegramPublisher)(nil)

// Publish sends the group's items to the configured channel in order: the
// primary post first, then the chain items as consecutive messages.
func (t *TelegramPublisher) Publish(ctx context.Context, group *domain.PostGroup) (string, error) {
	channelName := "@" + t.Config.Telegram.Channel

	var primaryMessageID int
	for i, item := range group.Items {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		msg := tgbotapi.NewMessageToChannel(channelName, renderContent(item.Content))
		msg.ParseMode = tgbotapi.ModeHTML
		sent, err := t.Bot.Send(msg)
		if err != nil {
			return "", fmt.Errorf("failed to send item %d to channel: %w", i, err)
		}
		if i == 0 {
			primaryMessageID = sent.MessageID
		}

		for _, img := range item.Images {
			photo := tgbotapi.NewPhotoToChannel(channelName, tgbotapi.FileURL(img.Path))
			if _, err := t.Bot.Send(photo); err != nil {
				return "", fmt.Errorf("failed to send image %s: %w", img.ID, err)
			}
		}
	}

	t.Logger.Info("Published post group to channel",
		"channel", channelName,
		"group_id", group.GroupID,
		"items", len(group.Items),
	)

	return fmt.Sprintf("https://t.me/%s/%d", t.Config.Telegram.Channel, primaryMessageID), nil
}

// NotifyOperator sends a text message to the configured operator user.
func (t *TelegramPublisher) NotifyOperator(message string) {
	if t.Config.Telegram.User == 0 {
		return
	}

	msg := tgbotapi.NewMessage(t.Config.Telegram.User, message)
	if _, err := t.Bot.Send(msg); err != nil {
		t.Logger.Error("Error sending message to operator",
			"userID", t.Config.Telegram.User,
			"error", err)
		return
	}

	t.Logger.Info("Message sent to operator", "userID", t.Config.Telegram.User)
}
