// Copyright 2017 Hajime Hoshi
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"

	"github.com/mpegkit/layer3"
)

func infoCommand() *cli.Command {
	return &cli.Command{
		Name:      "info",
		Usage:     "Print stream parameters without decoding audio",
		ArgsUsage: "<file>",
		Action:    runInfo,
	}
}

func runInfo(_ context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 1 {
		return errInvalidArgCount
	}

	path := cmd.Args().First()

	logTags(path)

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	dec, err := layer3.NewDecoder(f)
	if err != nil {
		return err
	}

	log.Info("stream",
		"rate", dec.SampleRate(),
		"pcm_bytes", dec.Length(),
		"duration", dec.Duration().Round(time.Second),
	)

	return nil
}
