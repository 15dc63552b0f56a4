package discord

import (
	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/pagimos/discord-bot1/pkg/flow"
)

const (
	colorDefault   = 0xD4AF37 // gold, the market's house color
	colorConfirmed = 0x57F287
)

// Discord layout caps.
const (
	maxButtonsPerRow = 5
)

// respondText sends a plain message, ephemeral when private.
func (b *Bot) respondText(i *discordgo.InteractionCreate, text string, private bool) {
	data := &discordgo.InteractionResponseData{Content: text}
	if private {
		data.Flags = discordgo.MessageFlagsEphemeral
	}
	b.respond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
}

// respondRender turns an engine view into an interaction response. Component
// and modal-submit interactions update the existing message; commands send a
// new one. A Modal render pops the quantity form instead.
func (b *Bot) respondRender(i *discordgo.InteractionCreate, render flow.RenderRequest, update bool) {
	if render.Modal != nil {
		b.respond(i, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseModal,
			Data: b.buildModal(render.Modal, actorID(i)),
		})
		return
	}

	responseType := discordgo.InteractionResponseChannelMessageWithSource
	if update {
		responseType = discordgo.InteractionResponseUpdateMessage
	}

	components := b.buildComponents(render, actorID(i))
	b.respond(i, &discordgo.InteractionResponse{
		Type: responseType,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{buildEmbed(render)},
			Components: components,
		},
	})
}

func (b *Bot) respond(i *discordgo.InteractionCreate, resp *discordgo.InteractionResponse) {
	if err := b.session.InteractionRespond(i.Interaction, resp); err != nil {
		b.log.Error("interaction respond failed", zap.Error(err))
	}
}

func buildEmbed(render flow.RenderRequest) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       render.Title,
		Description: render.Description,
		Color:       colorDefault,
	}
	if render.Done {
		embed.Color = colorConfirmed
	}
	for _, f := range render.Fields {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  f.Name,
			Value: f.Value,
		})
	}
	return embed
}

// buildComponents lays controls out into action rows: every select menu gets
// its own row, buttons pack five to a row. Terminal renders carry none.
func (b *Bot) buildComponents(render flow.RenderRequest, ownerID string) []discordgo.MessageComponent {
	if render.Done {
		return []discordgo.MessageComponent{}
	}

	var rows []discordgo.MessageComponent
	var buttons []discordgo.MessageComponent

	flushButtons := func() {
		for len(buttons) > 0 {
			n := len(buttons)
			if n > maxButtonsPerRow {
				n = maxButtonsPerRow
			}
			rows = append(rows, discordgo.ActionsRow{Components: buttons[:n]})
			buttons = buttons[n:]
		}
	}

	for _, c := range render.Controls {
		switch c.Kind {
		case flow.ControlSelect:
			flushButtons()
			rows = append(rows, discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{buildSelect(c, ownerID)},
			})
		case flow.ControlButton:
			buttons = append(buttons, buildButton(c, ownerID))
		}
	}
	flushButtons()
	return rows
}

func buildSelect(c flow.Control, ownerID string) discordgo.SelectMenu {
	options := make([]discordgo.SelectMenuOption, 0, len(c.Options))
	for _, o := range c.Options {
		opt := discordgo.SelectMenuOption{
			Label:       o.Label,
			Value:       o.Value,
			Description: o.Description,
		}
		if o.Emoji != "" {
			opt.Emoji = &discordgo.ComponentEmoji{Name: o.Emoji}
		}
		options = append(options, opt)
	}

	minValues := 1
	return discordgo.SelectMenu{
		MenuType:    discordgo.StringSelectMenu,
		CustomID:    customID(c.Action, c.Value, ownerID),
		Placeholder: c.Placeholder,
		MinValues:   &minValues,
		MaxValues:   c.MaxValues,
		Options:     options,
	}
}

func buildButton(c flow.Control, ownerID string) discordgo.Button {
	btn := discordgo.Button{
		Label:    c.Label,
		Style:    buttonStyle(c.Style),
		CustomID: customID(c.Action, c.Value, ownerID),
	}
	if c.Emoji != "" {
		btn.Emoji = &discordgo.ComponentEmoji{Name: c.Emoji}
	}
	return btn
}

func buttonStyle(s flow.ControlStyle) discordgo.ButtonStyle {
	switch s {
	case flow.StyleSecondary:
		return discordgo.SecondaryButton
	case flow.StyleSuccess:
		return discordgo.SuccessButton
	case flow.StyleDanger:
		return discordgo.DangerButton
	default:
		return discordgo.PrimaryButton
	}
}

func (b *Bot) buildModal(m *flow.ModalRequest, ownerID string) *discordgo.InteractionResponseData {
	var rows []discordgo.MessageComponent
	for _, in := range m.Inputs {
		rows = append(rows, discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{discordgo.TextInput{
				CustomID:    in.ID,
				Label:       in.Label,
				Style:       discordgo.TextInputShort,
				Placeholder: in.Placeholder,
				Value:       in.Default,
				Required:    true,
				MinLength:   1,
				MaxLength:   in.MaxLength,
			}},
		})
	}

	return &discordgo.InteractionResponseData{
		CustomID:   customID(m.Action, "", ownerID),
		Title:      m.Title,
		Components: rows,
	}
}
