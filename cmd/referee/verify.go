package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/lox/holdem-referee/cmd/referee/shared"
	"github.com/lox/holdem-referee/internal/game"
	"github.com/lox/holdem-referee/internal/gameapi"
)

// VerifyCmd checks a single verification request and prints the
// verdict as JSON. The process exits non-zero when the move is
// rejected, so the command can gate scripted pipelines.
type VerifyCmd struct {
	File  string `kong:"arg,optional,help='Request file, - or omitted for stdin'"`
	Debug bool   `kong:"help='Enable debug logging'"`
}

func (c *VerifyCmd) Run() error {
	var reader io.Reader = os.Stdin
	if c.File != "" && c.File != "-" {
		f, err := os.Open(c.File)
		if err != nil {
			return err
		}
		defer f.Close()
		reader = f
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}

	var req gameapi.VerifyMove
	if err := json.Unmarshal(data, &req); err != nil {
		return fmt.Errorf("malformed request: %w", err)
	}

	level := "warn"
	if c.Debug {
		level = "debug"
	}
	verifier := game.NewVerifier(shared.SetupServiceLogger(os.Stderr, level))
	verdict := verifier.Verify(req)

	out, err := json.MarshalIndent(verdict, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))

	if !verdict.Ok() {
		return fmt.Errorf("move rejected for player %d", verdict.HackerPlayerID)
	}
	return nil
}
