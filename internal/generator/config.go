package generator

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config controls the shape of a synthetic dataset. Zero-valued fields in a
// YAML profile keep their defaults.
type Config struct {
	Seed int64     `yaml:"seed"`
	Now  time.Time `yaml:"-"`

	Influencers int `yaml:"influencers"`
	Posts       int `yaml:"posts"`
	Tracking    int `yaml:"tracking"`

	Platforms  []string `yaml:"platforms"`
	Categories []string `yaml:"categories"`
	Genders    []string `yaml:"genders"`
	Products   []string `yaml:"products"`
	Sources    []string `yaml:"sources"`
	Campaigns  []string `yaml:"campaigns"`

	Followers      IntRange   `yaml:"followers"`
	Reach          IntRange   `yaml:"reach"`
	Likes          IntRange   `yaml:"likes"`
	Comments       IntRange   `yaml:"comments"`
	TrackingOrders IntRange   `yaml:"tracking_orders"`
	Revenue        FloatRange `yaml:"revenue"`
	PayoutRate     IntRange   `yaml:"payout_rate"`
	PayoutOrders   IntRange   `yaml:"payout_orders"`
}

// IntRange is inclusive on both ends.
type IntRange struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

type FloatRange struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

func DefaultConfig() Config {
	return Config{
		Seed:        time.Now().UnixNano(),
		Now:         time.Now(),
		Influencers: 30,
		Posts:       100,
		Tracking:    500,

		Platforms:  []string{"Instagram", "YouTube", "Twitter"},
		Categories: []string{"Fitness", "Health", "Lifestyle", "Nutrition"},
		Genders:    []string{"Male", "Female"},
		Products:   []string{"Whey Protein", "Omega-3", "Multivitamin", "Pre-Workout"},
		Sources:    []string{"Instagram", "YouTube", "Twitter"},
		Campaigns:  []string{"Summer2025", "FitLife", "BoostUp"},

		Followers:      IntRange{10000, 1000000},
		Reach:          IntRange{1000, 100000},
		Likes:          IntRange{50, 10000},
		Comments:       IntRange{5, 1000},
		TrackingOrders: IntRange{1, 5},
		Revenue:        FloatRange{100, 1000},
		PayoutRate:     IntRange{500, 5000},
		PayoutOrders:   IntRange{1, 50},
	}
}

// LoadProfile overlays a YAML profile on the defaults.
func LoadProfile(path string) (Config, error) {
	cfg := DefaultConfig()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read profile: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse profile %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Influencers <= 0 {
		return fmt.Errorf("influencers must be > 0")
	}
	if c.Posts < 0 || c.Tracking < 0 {
		return fmt.Errorf("posts and tracking must be >= 0")
	}
	for name, values := range map[string][]string{
		"platforms":  c.Platforms,
		"categories": c.Categories,
		"genders":    c.Genders,
		"products":   c.Products,
		"sources":    c.Sources,
		"campaigns":  c.Campaigns,
	} {
		if len(values) == 0 {
			return fmt.Errorf("%s must not be empty", name)
		}
	}
	for name, r := range map[string]IntRange{
		"followers":       c.Followers,
		"reach":           c.Reach,
		"likes":           c.Likes,
		"comments":        c.Comments,
		"tracking_orders": c.TrackingOrders,
		"payout_rate":     c.PayoutRate,
		"payout_orders":   c.PayoutOrders,
	} {
		if r.Min > r.Max {
			return fmt.Errorf("%s: min %d > max %d", name, r.Min, r.Max)
		}
	}
	if c.Revenue.Min > c.Revenue.Max {
		return fmt.Errorf("revenue: min > max")
	}
	return nil
}
