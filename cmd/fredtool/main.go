/*
 * main.go, part of gofred.
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

//fredtool reads, checks and rewrites fred files, the fragment description used for
//FMO calculations.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/urfave/cli/v2"
)

func main() {
	app := newApp(os.Stdout, os.Stderr)
	if err := app.RunContext(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "fredtool: %s\n", err)
		code := 1
		if e, ok := err.(cli.ExitCoder); ok {
			code = e.ExitCode()
		}
		os.Exit(code)
	}
}

//tool carries the configuration and logger shared by the commands.
type tool struct {
	cfg    Config
	log    *slog.Logger
	logOut io.Writer
}

func newApp(out, logOut io.Writer) *cli.App {
	T := &tool{cfg: DefaultConfig(), logOut: logOut}
	return &cli.App{
		Name:      "fredtool",
		Usage:     "read, check and rewrite fred files",
		Writer:    out,
		ErrWriter: logOut,
		//exit codes are handled by main, so tests can run the app.
		ExitErrHandler: func(*cli.Context, error) {},
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "YAML configuration file"},
			&cli.StringFlag{Name: "log-level", Usage: "debug, info, warn or error"},
			&cli.StringFlag{Name: "indent", Usage: "indentation for namelist parameters"},
			&cli.BoolFlag{Name: "strict", Usage: "fail on skipped lines and consistency problems"},
		},
		Before:   T.setup,
		Commands: T.commands(),
	}
}

//setup loads the configuration, applies the flags and builds the logger.
func (T *tool) setup(c *cli.Context) error {
	cfg, err := LoadConfig(c.String("config"))
	if err != nil {
		return err
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	if c.IsSet("indent") {
		cfg.Indent = c.String("indent")
	}
	if c.IsSet("strict") {
		cfg.Strict = c.Bool("strict")
	}
	level, err := cfg.Level()
	if err != nil {
		return err
	}
	T.cfg = cfg
	T.log = slog.New(tint.NewHandler(T.logOut, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	}))
	return nil
}
