package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/caue-mor/saas-solar/internal/presentation/graph"
	"github.com/caue-mor/saas-solar/internal/presentation/tui"
	"github.com/caue-mor/saas-solar/pkg/flow"
)

var showCmd = &cobra.Command{
	Use:   "show <company-id>",
	Short: "Render a company's flow as a Mermaid diagram",
	Long:  `Loads the company's flow from the configured store and outputs a Mermaid flowchart. On a terminal the output is rendered as styled markdown; when piped, raw Mermaid is emitted for embedding.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(cmd)
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			os.Exit(1)
		}
		logger, err := newLogger(cfg)
		if err != nil {
			fmt.Printf("Error configuring logger: %v\n", err)
			os.Exit(1)
		}
		store, err := newStore(cfg, logger)
		if err != nil {
			fmt.Printf("Error configuring store: %v\n", err)
			os.Exit(1)
		}

		svc := flow.NewService(store, flow.WithLogger(logger))
		doc, err := svc.Load(context.Background(), args[0])
		if err != nil {
			fmt.Printf("Error loading flow: %v\n", err)
			os.Exit(1)
		}

		mermaid := graph.GenerateMermaid(doc)

		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Print(mermaid)
			return
		}

		render := tui.NewRenderer()
		md := fmt.Sprintf("# %s (v%d)\n\n```mermaid\n%s```\n", doc.Name, doc.Version, mermaid)
		out, err := render(md)
		if err != nil {
			fmt.Print(mermaid)
			return
		}
		fmt.Print(out)
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
