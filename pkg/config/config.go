package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

// Config carries everything the bot needs at startup. Limits default to the
// platform's hard caps and only the token is truly required.
type Config struct {
	Token string

	SessionTTL      time.Duration `mapstructure:"session_ttl"`
	MaxToggleItems  int           `mapstructure:"max_toggle_items"`
	MaxCountryItems int           `mapstructure:"max_country_items"`
	MaxModalInputs  int           `mapstructure:"max_modal_inputs"`

	Messages Messages `mapstructure:"messages"`
}

// Messages are the user-facing strings. Kept in config so wording can change
// without a rebuild.
type Messages struct {
	NotYourCart       string `mapstructure:"not_your_cart"`
	EmptyCart         string `mapstructure:"empty_cart"`
	CartCleared       string `mapstructure:"cart_cleared"`
	SessionExpired    string `mapstructure:"session_expired"`
	CapExceeded       string `mapstructure:"cap_exceeded"`
	NothingSelected   string `mapstructure:"nothing_selected"`
	QuantityDefaulted string `mapstructure:"quantity_defaulted"`
	OrderConfirmed    string `mapstructure:"order_confirmed"`
	UnknownAction     string `mapstructure:"unknown_action"`
}

// Init reads configs/main.yml and the DISCORD_TOKEN environment variable.
// A missing config file is fine, a missing token is not.
func Init() (Config, error) {
	viper.AddConfigPath("configs")
	viper.SetConfigName("main")
	viper.SetConfigType("yml")

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshaling config: %w", err)
	}

	cfg.Token = os.Getenv("DISCORD_TOKEN")
	if cfg.Token == "" {
		cfg.Token = os.Getenv("TOKEN")
	}
	if cfg.Token == "" {
		return Config{}, fmt.Errorf("bot token not found: set DISCORD_TOKEN in the environment or a .env file")
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("session_ttl", 5*time.Minute)
	viper.SetDefault("max_toggle_items", 5)
	viper.SetDefault("max_country_items", 3)
	viper.SetDefault("max_modal_inputs", 5)

	viper.SetDefault("messages.not_your_cart", "This is not your cart!")
	viper.SetDefault("messages.empty_cart", "Your cart is empty!")
	viper.SetDefault("messages.cart_cleared", "🛒 Cart cleared!")
	viper.SetDefault("messages.session_expired", "This market has closed. Use /market to open it again.")
	viper.SetDefault("messages.cap_exceeded", "You can't select any more items here.")
	viper.SetDefault("messages.nothing_selected", "Select at least one item first.")
	viper.SetDefault("messages.quantity_defaulted", "invalid input, defaulted to 1")
	viper.SetDefault("messages.order_confirmed", "Thank you for your purchase! Here's your order summary:")
	viper.SetDefault("messages.unknown_action", "I don't recognize that action.")
}
