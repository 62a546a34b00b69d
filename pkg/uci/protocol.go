package uci

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/chessapp/chessai/pkg/board"
	"github.com/chessapp/chessai/pkg/common"
	"github.com/chessapp/chessai/pkg/engine"
	"github.com/chessapp/chessai/pkg/eval"
)

type Engine interface {
	Config() engine.Config
	SetDifficulty(name string)
	Search(p common.Position, config engine.Config) engine.SearchInfo
}

type Protocol struct {
	name      string
	author    string
	version   string
	options   []Option
	engine    Engine
	evaluator *eval.EvaluationService
	position  *board.Board
	output    io.Writer
}

func New(name, author, version string, engine Engine, options []Option) *Protocol {
	return &Protocol{
		name:      name,
		author:    author,
		version:   version,
		engine:    engine,
		options:   options,
		evaluator: eval.NewEvaluationService(),
		position:  board.NewBoard(),
		output:    os.Stdout,
	}
}

func (uci *Protocol) Run(logger zerolog.Logger) {
	uci.serve(os.Stdin, logger)
}

func (uci *Protocol) serve(input io.Reader, logger zerolog.Logger) {
	var scanner = bufio.NewScanner(input)
	for scanner.Scan() {
		var commandLine = scanner.Text()
		if commandLine == "quit" {
			return
		}
		var err = uci.handle(commandLine)
		if err != nil {
			logger.Error().Err(err).Str("command", commandLine).Msg("uci command failed")
		}
	}
}

// Progress prints an info line. Pass it to engine.WithProgress.
func (uci *Protocol) Progress(si engine.SearchInfo) {
	fmt.Fprintln(uci.output, searchInfoToUci(si))
}

func (uci *Protocol) handle(commandLine string) error {
	var fields = strings.Fields(commandLine)
	if len(fields) == 0 {
		return nil
	}
	var commandName = fields[0]
	fields = fields[1:]

	var h func(fields []string) error

	switch commandName {
	case "uci":
		h = uci.uciCommand
	case "setoption":
		h = uci.setOptionCommand
	case "isready":
		h = uci.isReadyCommand
	case "position":
		h = uci.positionCommand
	case "go":
		h = uci.goCommand
	case "ucinewgame":
		h = uci.uciNewGameCommand
	case "eval":
		h = uci.evalCommand
	case "d":
		h = uci.displayCommand
	}

	if h == nil {
		return errors.New("command not found")
	}

	return h(fields)
}

func (uci *Protocol) uciCommand(fields []string) error {
	fmt.Fprintf(uci.output, "id name %s %s\n", uci.name, uci.version)
	fmt.Fprintf(uci.output, "id author %s\n", uci.author)
	for _, option := range uci.options {
		fmt.Fprintln(uci.output, option.UciString())
	}
	fmt.Fprintln(uci.output, "uciok")
	return nil
}

func (uci *Protocol) setOptionCommand(fields []string) error {
	var nameIndex = findIndexString(fields, "name")
	var valueIndex = findIndexString(fields, "value")
	if nameIndex == -1 || valueIndex == -1 || valueIndex < nameIndex+2 || valueIndex+1 >= len(fields) {
		return errors.New("invalid setoption arguments")
	}
	var name = strings.Join(fields[nameIndex+1:valueIndex], " ")
	var value = strings.Join(fields[valueIndex+1:], " ")
	for _, option := range uci.options {
		if strings.EqualFold(option.UciName(), name) {
			return option.Set(value)
		}
	}
	return errors.New("unhandled option")
}

func (uci *Protocol) isReadyCommand(fields []string) error {
	fmt.Fprintln(uci.output, "readyok")
	return nil
}

func (uci *Protocol) positionCommand(fields []string) error {
	if len(fields) == 0 {
		return errors.New("unknown position command")
	}
	var args = fields
	var token = args[0]
	var fen string
	var movesIndex = findIndexString(args, "moves")
	if token == "startpos" {
		fen = common.InitialPositionFen
	} else if token == "fen" {
		if movesIndex == -1 {
			fen = strings.Join(args[1:], " ")
		} else {
			fen = strings.Join(args[1:movesIndex], " ")
		}
	} else {
		return errors.New("unknown position command")
	}
	var p, err = board.NewBoardFromFEN(fen)
	if err != nil {
		return err
	}
	if movesIndex >= 0 && movesIndex+1 < len(args) {
		for _, smove := range args[movesIndex+1:] {
			if _, err := p.MakeMoveLAN(smove); err != nil {
				return fmt.Errorf("parse move failed: %w", err)
			}
		}
	}
	// a fresh board keeps the make/unmake stack short during search
	uci.position = p.Clone()
	return nil
}

func (uci *Protocol) goCommand(fields []string) error {
	var config = uci.engine.Config()
	for i := 0; i+1 < len(fields); i++ {
		if fields[i] == "depth" {
			var depth, err = strconv.Atoi(fields[i+1])
			if err != nil || depth < 1 {
				return fmt.Errorf("invalid depth %v", fields[i+1])
			}
			config.Depth = depth
			i++
		}
	}
	var si = uci.engine.Search(uci.position, config)
	fmt.Fprintf(uci.output, "bestmove %v\n", si.Move)
	return nil
}

func (uci *Protocol) uciNewGameCommand(fields []string) error {
	uci.position = board.NewBoard()
	return nil
}

func (uci *Protocol) evalCommand(fields []string) error {
	var positional = uci.engine.Config().Positional
	var terms = uci.evaluator.Trace(uci.position, positional)
	fmt.Fprintln(uci.output, terms)
	if terms.Terminal == "" {
		fmt.Fprintf(uci.output, "side to move %v\n", uci.evaluator.Evaluate(uci.position, positional))
	}
	return nil
}

func (uci *Protocol) displayCommand(fields []string) error {
	PrintPosition(uci.output, uci.position)
	fmt.Fprintf(uci.output, "fen %v\n", uci.position.FEN())
	return nil
}

func searchInfoToUci(si engine.SearchInfo) string {
	var sb = &strings.Builder{}
	fmt.Fprintf(sb, "info depth %v", si.Depth)
	fmt.Fprintf(sb, " score cp %v", si.Score)
	var timeMs = si.Time.Milliseconds()
	var nps = si.Nodes * 1000 / (timeMs + 1)
	fmt.Fprintf(sb, " nodes %v time %v nps %v", si.Nodes, timeMs, nps)
	if si.Move != common.MoveEmpty {
		fmt.Fprintf(sb, " pv %v", si.Move)
	}
	return sb.String()
}

func findIndexString(slice []string, value string) int {
	for p, v := range slice {
		if v == value {
			return p
		}
	}
	return -1
}
