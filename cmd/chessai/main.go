package main

import (
	"flag"
	"runtime"

	"github.com/chessapp/chessai/internal/logging"
	"github.com/chessapp/chessai/pkg/engine"
	"github.com/chessapp/chessai/pkg/uci"
)

/*
chessai Copyright (C) 2024 The chessai authors
This program is free software: you can redistribute it and/or modify it under the terms of the GNU General Public License as published by the Free Software Foundation, either version 3 of the License, or (at your option) any later version.
This program is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the GNU General Public License for more details.
You should have received a copy of the GNU General Public License along with this program. If not, see <http://www.gnu.org/licenses/>.
*/

const (
	name   = "ChessAI"
	author = "The chessai authors"
)

var (
	versionName   = "dev"
	buildDate     = "(null)"
	gitRevision   = "(null)"
	flgDifficulty string
	flgLogLevel   string
)

func main() {
	flag.StringVar(&flgDifficulty, "difficulty", "medium", "easy, medium or hard")
	flag.StringVar(&flgLogLevel, "loglevel", "info", "log level")
	flag.Parse()

	var logger = logging.New("console", flgLogLevel)

	logger.Info().
		Str("name", name).
		Str("versionName", versionName).
		Str("buildDate", buildDate).
		Str("gitRevision", gitRevision).
		Str("runtimeVersion", runtime.Version()).
		Str("GOARCH", runtime.GOARCH).
		Str("GOOS", runtime.GOOS).
		Int("numCPU", runtime.NumCPU()).
		Msg("started")

	var protocol *uci.Protocol
	var eng = engine.NewEngine(
		engine.WithLogger(logger),
		engine.WithProgress(func(si engine.SearchInfo) {
			protocol.Progress(si)
		}),
	)
	eng.SetDifficulty(flgDifficulty)

	protocol = uci.New(name, author, versionName, eng,
		[]uci.Option{
			&uci.ComboOption{
				Name: "Difficulty",
				Vars: []string{engine.Easy.String(), engine.Medium.String(), engine.Hard.String()},
				Get: func() string {
					return eng.Config().Difficulty.String()
				},
				Change: eng.SetDifficulty,
			},
		},
	)
	protocol.Run(logger)
}
