package discord

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/pagimos/discord-bot1/pkg/config"
	"github.com/pagimos/discord-bot1/pkg/flow"
)

// Bot wires the flow engine to Discord: it registers the slash commands,
// translates interactions into flow events, and renders the engine's views
// as embeds and components.
type Bot struct {
	session  *discordgo.Session
	engine   *flow.Engine
	registry *flow.Registry
	cfg      config.Config
	log      *zap.Logger

	stopSweep chan struct{}
}

func NewBot(session *discordgo.Session, engine *flow.Engine, registry *flow.Registry, cfg config.Config, log *zap.Logger) *Bot {
	return &Bot{
		session:   session,
		engine:    engine,
		registry:  registry,
		cfg:       cfg,
		log:       log,
		stopSweep: make(chan struct{}),
	}
}

func commands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{Name: MarketCmd, Description: "Open the black market to browse guns, drugs, and heist packs"},
		{Name: GhostShopCmd, Description: "Open the ghost shop and toggle items to buy"},
		{Name: WorldMarketCmd, Description: "Browse country markets from around the world"},
		{Name: CartCmd, Description: "Review your shopping cart"},
		{Name: PingCmd, Description: "Replies with Pong and latency."},
	}
}

// Start opens the gateway connection and syncs the slash commands.
func (b *Bot) Start() error {
	b.session.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages

	b.session.AddHandler(b.onReady)
	b.session.AddHandler(b.onInteractionCreate)

	if err := b.session.Open(); err != nil {
		return fmt.Errorf("opening gateway: %w", err)
	}

	synced := 0
	for _, cmd := range commands() {
		if _, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, "", cmd); err != nil {
			return fmt.Errorf("registering /%s: %w", cmd.Name, err)
		}
		synced++
	}
	b.log.Info("slash commands synced", zap.Int("count", synced))

	go b.sweepLoop()
	return nil
}

// Stop tears the bot down.
func (b *Bot) Stop() error {
	close(b.stopSweep)
	return b.session.Close()
}

// sweepLoop evicts flow sessions that sat idle past the TTL.
func (b *Bot) sweepLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if n := b.registry.Sweep(time.Now(), b.cfg.SessionTTL); n > 0 {
				b.log.Debug("expired sessions evicted", zap.Int("count", n))
			}
		case <-b.stopSweep:
			return
		}
	}
}

func (b *Bot) onReady(_ *discordgo.Session, r *discordgo.Ready) {
	b.log.Info("logged in",
		zap.String("username", r.User.Username),
		zap.String("user_id", r.User.ID))
}
