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
	"errors"
	"io"
	"os"

	id3v2 "github.com/bogem/id3v2/v2"
	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"

	"github.com/mpegkit/layer3"
)

var errInvalidArgCount = errors.New("expected exactly one argument: file path")

func decodeCommand() *cli.Command {
	return &cli.Command{
		Name:      "decode",
		Usage:     "Decode an MP3 file to WAV (or raw PCM with --raw)",
		ArgsUsage: "<file>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Value:   "-",
				Usage:   "output file path (- for stdout)",
			},
			&cli.BoolFlag{
				Name:  "raw",
				Usage: "output raw PCM instead of WAV",
			},
			&cli.BoolFlag{
				Name:  "strict-sync",
				Usage: "fail on sync loss instead of scanning",
			},
		},
		Action: runDecode,
	}
}

func runDecode(_ context.Context, cmd *cli.Command) error {
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

	var opts []layer3.Option
	if cmd.Bool("strict-sync") {
		opts = append(opts, layer3.WithStrictSync(true))
	}

	dec, err := layer3.NewDecoder(f, opts...)
	if err != nil {
		return err
	}

	pcm, err := io.ReadAll(dec)
	if err != nil {
		return err
	}

	log.Info("decoded", "samples", len(pcm)/4, "rate", dec.SampleRate())

	out := os.Stdout
	if name := cmd.String("output"); name != "-" {
		out, err = os.Create(name)
		if err != nil {
			return err
		}
		defer out.Close()
	}

	if cmd.Bool("raw") {
		_, err = out.Write(pcm)

		return err
	}

	return writeWAV(out, pcm, dec.SampleRate(), 2)
}

// logTags reports the ID3v2 title and artist of the file when present. Tag
// parsing failures only cost the log line, never the decode.
func logTags(path string) {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return
	}
	defer tag.Close()

	title, artist := tag.Title(), tag.Artist()
	if title == "" && artist == "" {
		return
	}

	log.Info("id3 tag", "title", title, "artist", artist)
}
