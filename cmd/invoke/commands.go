package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"voice-chat-skill/config"
	"voice-chat-skill/internal/app"
	skillHTTP "voice-chat-skill/internal/skill/delivery/http"
	"voice-chat-skill/internal/skill/usecase"
	"voice-chat-skill/pkg/alexa"
	"voice-chat-skill/pkg/log"
)

var sayIntent string

var eventCmd = &cobra.Command{
	Use:   "event <file|->",
	Short: "Dispatch a request envelope read from a file or stdin",
	Example: `  invoke event testdata/launch.json
  cat request.json | invoke event -`,
	Args: cobra.ExactArgs(1),
	RunE: runEvent,
}

var launchCmd = &cobra.Command{
	Use:   "launch",
	Short: "Dispatch a LaunchRequest",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return dispatch(cmd, newLaunchEnvelope())
	},
}

var sayCmd = &cobra.Command{
	Use:     "say <text>",
	Short:   "Dispatch a chat intent carrying text as the user message",
	Example: `  invoke say "今日の天気は？"`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return dispatch(cmd, newChatEnvelope(sayIntent, args[0]))
	},
}

func init() {
	sayCmd.Flags().StringVar(&sayIntent, "intent", usecase.DefaultChatIntent, "Intent name to send")
	rootCmd.AddCommand(eventCmd, launchCmd, sayCmd)
}

func runEvent(cmd *cobra.Command, args []string) error {
	var r io.Reader = cmd.InOrStdin()
	if args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	env, err := alexa.Decode(r)
	if err != nil {
		return err
	}
	return dispatch(cmd, env)
}

// dispatch runs env through a freshly wired dispatcher and prints the reply.
func dispatch(cmd *cobra.Command, env *alexa.RequestEnvelope) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	l := app.NewLogger(cfg.Logger)
	ctx := context.Background()
	if cfg.Skill.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Skill.RequestTimeout)
		defer cancel()
	}

	uc, err := app.NewSkillUseCase(ctx, cfg, l)
	if err != nil {
		return err
	}

	req := skillHTTP.NewSkillRequest(env)
	ctx = log.SetTraceID(ctx, req.RequestID)

	return writeEnvelope(cmd.OutOrStdout(), skillHTTP.NewResponseEnvelope(uc.Dispatch(ctx, req)))
}

func writeEnvelope(w io.Writer, env *alexa.ResponseEnvelope) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if !compactFlag {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(env)
}
