/*
 * config.go, part of gofred.
 *
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

package main

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

//Config holds the settings of fredtool. Command line flags override the values
//read from the configuration file.
type Config struct {
	Indent   string     `yaml:"indent"`
	Strict   bool       `yaml:"strict"`
	LogLevel string     `yaml:"log_level"`
	Plot     PlotConfig `yaml:"plot"`
}

//PlotConfig is the size of the charts, in inches.
type PlotConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

func DefaultConfig() Config {
	return Config{
		Indent:   "  ",
		LogLevel: "info",
		Plot:     PlotConfig{Width: 6, Height: 4},
	}
}

//LoadConfig reads the YAML file path on top of the defaults. An empty path
//returns the defaults.
func LoadConfig(path string) (Config, error) {
	C := DefaultConfig()
	if path == "" {
		return C, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return C, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &C); err != nil {
		return C, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return C, C.Validate()
}

//Validate checks the log level and the plot size.
func (C Config) Validate() error {
	if _, err := C.Level(); err != nil {
		return err
	}
	if C.Plot.Width <= 0 || C.Plot.Height <= 0 {
		return fmt.Errorf("plot size must be positive, got %gx%g", C.Plot.Width, C.Plot.Height)
	}
	return nil
}

//Level returns the slog level named by LogLevel.
func (C Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(C.LogLevel)); err != nil {
		return l, fmt.Errorf("invalid log level %q", C.LogLevel)
	}
	return l, nil
}
