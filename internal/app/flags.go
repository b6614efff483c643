package app

import (
	"flag"
	"strings"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Method   string
	Width    int
	Length   int
	Scale    int
	TPS      int
	Rate     int
	Seed     int64
	HUDWidth int
	Set      KeyValues
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Method: "rooms", Width: 64, Length: 64, Scale: 8, TPS: 60, Rate: 20, Seed: 1337, HUDWidth: 260}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Method, "method", c.Method, "generation method to run")
	fs.IntVar(&c.Width, "w", c.Width, "grid width")
	fs.IntVar(&c.Length, "l", c.Length, "grid length")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.Rate, "rate", c.Rate, "generation steps per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "generation seed")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "parameter panel width in pixels (0 hides it)")
	fs.Var(&c.Set, "set", "method override in key=value form (repeatable)")
}

// KeyValues is a repeatable key=value flag.
type KeyValues []string

func (l *KeyValues) String() string {
	return strings.Join(*l, ",")
}

func (l *KeyValues) Set(value string) error {
	*l = append(*l, value)
	return nil
}

// Map parses the pairs into a map. Entries without '=' are skipped and later
// keys win.
func (l KeyValues) Map() map[string]string {
	out := make(map[string]string, len(l))
	for _, kv := range l {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			continue
		}
		out[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}
	return out
}
