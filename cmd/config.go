package cmd

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

// fileConfig holds defaults for the command-line flags. Flags given on the
// command line take precedence.
type fileConfig struct {
	Difficulty  string `yaml:"difficulty"`
	Width       *uint  `yaml:"width"`
	Height      *uint  `yaml:"height"`
	Mines       *uint  `yaml:"mines"`
	Seed        *int64 `yaml:"seed"`
	DevMode     *bool  `yaml:"dev"`
	StrictChord *bool  `yaml:"strict_chord"`
	Director    string `yaml:"director"`
	Delay       string `yaml:"delay"`
}

func loadConfigFile(path string) (*fileConfig, error) {
	in, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config %s", path)
	}

	var config fileConfig
	if err := yaml.UnmarshalStrict(in, &config); err != nil {
		return nil, errors.Wrapf(err, "parsing config %s", path)
	}
	return &config, nil
}

// flagValues maps each setting present in the file onto its flag
func (config *fileConfig) flagValues() map[string]string {
	values := make(map[string]string)
	setString := func(flag, value string) {
		if value != "" {
			values[flag] = value
		}
	}
	set := func(flag string, value interface{}) {
		values[flag] = fmt.Sprint(value)
	}

	setString("difficulty", config.Difficulty)
	setString("director", config.Director)
	setString("delay", config.Delay)
	if config.Width != nil {
		set("width", *config.Width)
	}
	if config.Height != nil {
		set("height", *config.Height)
	}
	if config.Mines != nil {
		set("mines", *config.Mines)
	}
	if config.Seed != nil {
		set("seed", *config.Seed)
	}
	if config.DevMode != nil {
		set("dev", *config.DevMode)
	}
	if config.StrictChord != nil {
		set("strict-chord", *config.StrictChord)
	}

	return values
}

func applyConfigFile(cmd *cobra.Command, path string) error {
	config, err := loadConfigFile(path)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	for flag, value := range config.flagValues() {
		if flags.Changed(flag) {
			continue
		}
		if err := flags.Set(flag, value); err != nil {
			return errors.Wrapf(err, "config %s: %s", path, flag)
		}
	}
	return nil
}
