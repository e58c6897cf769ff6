package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Talk to the advisor in the terminal",
	Long:  `Starts an interactive conversation: the intake form first, then free-form advice and guided decision trees. Type "quit" to leave.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(cmd)
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			os.Exit(1)
		}

		application, err := buildApp(cfg)
		if err != nil {
			fmt.Printf("Error initializing finapp: %v\n", err)
			os.Exit(1)
		}
		defer application.close()

		userID, _ := cmd.Flags().GetString("user")

		isTTY := term.IsTerminal(int(os.Stdout.Fd()))
		var renderer *glamour.TermRenderer
		if isTTY {
			renderer, err = glamour.NewTermRenderer(
				glamour.WithAutoStyle(),
				glamour.WithWordWrap(100),
			)
			if err != nil {
				renderer = nil
			}
		}
		output := termenv.NewOutput(os.Stdout)

		printReply := func(reply string) {
			if renderer != nil {
				if rendered, err := renderer.Render(reply); err == nil {
					fmt.Print(rendered)
					return
				}
			}
			fmt.Println(reply)
		}

		ctx := context.Background()

		// Open the conversation.
		turn, err := application.orch.HandleMessage(ctx, userID, "hello")
		if err != nil {
			fmt.Printf("Error starting conversation: %v\n", err)
			os.Exit(1)
		}
		printReply(turn.Reply)

		scanner := bufio.NewScanner(os.Stdin)
		for {
			if isTTY {
				fmt.Print(output.String("> ").Foreground(output.Color("6")))
			}
			if !scanner.Scan() {
				break
			}
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			if line == "quit" || line == "exit" {
				fmt.Println("Take care!")
				break
			}

			turn, err := application.orch.HandleMessage(ctx, userID, line)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				continue
			}
			printReply(turn.Reply)
		}
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
	chatCmd.Flags().StringP("user", "u", "local", "User id for the conversation session")
}
