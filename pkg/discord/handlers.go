package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/pagimos/discord-bot1/pkg/flow"
)

func (b *Bot) onInteractionCreate(_ *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		b.handleCommand(i)
	case discordgo.InteractionMessageComponent:
		b.handleComponent(i)
	case discordgo.InteractionModalSubmit:
		b.handleModal(i)
	}
}

// actorID works in guild channels and DMs alike.
func actorID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}

func (b *Bot) handleCommand(i *discordgo.InteractionCreate) {
	name := i.ApplicationCommandData().Name
	userID := actorID(i)

	b.log.Debug("command received",
		zap.String("command", name),
		zap.String("user_id", userID))

	switch name {
	case PingCmd:
		latency := b.session.HeartbeatLatency().Milliseconds()
		b.respondText(i, fmt.Sprintf("Pong! %dms", latency), false)

	case CartCmd:
		session, render, err := b.engine.StartReview(userID)
		if err != nil {
			b.respondText(i, render.Notice, true)
			return
		}
		b.registry.Put(session)
		b.respondRender(i, render, false)

	case MarketCmd, GhostShopCmd, WorldMarketCmd:
		shape := flow.ShapeDropdown
		switch name {
		case GhostShopCmd:
			shape = flow.ShapeToggle
		case WorldMarketCmd:
			shape = flow.ShapeCountry
		}
		session, render := b.engine.Start(userID, shape)
		b.registry.Put(session)
		b.respondRender(i, render, false)
	}
}

func (b *Bot) handleComponent(i *discordgo.InteractionCreate) {
	data := i.MessageComponentData()
	action, value, owner, ok := parseCustomID(data.CustomID)
	if !ok {
		return
	}

	session, found := b.registry.Get(owner)
	if !found {
		b.respondText(i, b.cfg.Messages.SessionExpired, true)
		return
	}

	ev := flow.InteractionEvent{
		ActorID: actorID(i),
		Action:  action,
	}
	if data.ComponentType == discordgo.SelectMenuComponent {
		ev.Kind = flow.EventSelectMenu
		ev.Values = data.Values
	} else {
		ev.Kind = flow.EventButton
		ev.Values = []string{value}
	}

	b.dispatch(i, session, ev)
}

func (b *Bot) handleModal(i *discordgo.InteractionCreate) {
	data := i.ModalSubmitData()
	action, _, owner, ok := parseCustomID(data.CustomID)
	if !ok {
		return
	}

	session, found := b.registry.Get(owner)
	if !found {
		b.respondText(i, b.cfg.Messages.SessionExpired, true)
		return
	}

	ev := flow.InteractionEvent{
		ActorID: actorID(i),
		Kind:    flow.EventModalSubmit,
		Action:  action,
		Inputs:  modalInputs(data),
	}

	b.dispatch(i, session, ev)
}

// dispatch runs one event through the engine and renders the outcome.
// Rejections come back as private notices and leave the view untouched.
func (b *Bot) dispatch(i *discordgo.InteractionCreate, session *flow.Session, ev flow.InteractionEvent) {
	render, err := b.engine.Handle(session, ev)
	if err != nil {
		b.log.Debug("interaction rejected",
			zap.String("user_id", session.UserID),
			zap.String("action", ev.Action),
			zap.Error(err))
	}

	if render.Notice != "" {
		b.respondText(i, render.Notice, render.Private)
		return
	}
	if render.Done {
		b.registry.Remove(session.UserID)
	}
	b.respondRender(i, render, true)
}

// modalInputs flattens submitted text inputs into id → value.
func modalInputs(data discordgo.ModalSubmitInteractionData) map[string]string {
	inputs := make(map[string]string)
	for _, row := range data.Components {
		actionsRow, ok := row.(*discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, comp := range actionsRow.Components {
			if input, ok := comp.(*discordgo.TextInput); ok {
				inputs[input.CustomID] = input.Value
			}
		}
	}
	return inputs
}
