package config

import (
	"github.com/jerry-maheswara-github/supplier-kit/logger"
	"github.com/jerry-maheswara-github/supplier-kit/validation"
)

// GroupDef declares a named supplier group by the registry names of its
// members. Member order is preserved and becomes the group's dispatch order.
type GroupDef struct {
	Name    string   `yaml:"name" mapstructure:"name" validate:"required"`
	Members []string `yaml:"members" mapstructure:"members" validate:"required,min=1,dive,required"`
}

// Config is the root supplier-kit configuration.
type Config struct {
	Logging logger.Config `yaml:"logging" mapstructure:"logging"`
	Groups  []GroupDef    `yaml:"groups" mapstructure:"groups" validate:"dive"`
}

// ApplyDefaults applies default values to the configuration.
func (c *Config) ApplyDefaults() {
	c.Logging.ApplyDefaults()
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.Logging.Validate(); err != nil {
		return err
	}
	return validation.Validate(c)
}

// Group returns the group definition with the given name, if declared.
func (c *Config) Group(name string) (GroupDef, bool) {
	for _, def := range c.Groups {
		if def.Name == name {
			return def, true
		}
	}
	return GroupDef{}, false
}
