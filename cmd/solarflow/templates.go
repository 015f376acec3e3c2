package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/caue-mor/saas-solar/internal/presentation/tui"
	"github.com/caue-mor/saas-solar/pkg/catalog"
	"github.com/caue-mor/saas-solar/pkg/template"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the built-in flow templates",
	Run: func(cmd *cobra.Command, args []string) {
		all, err := template.All()
		if err != nil {
			fmt.Printf("Error loading templates: %v\n", err)
			os.Exit(1)
		}

		if !term.IsTerminal(int(os.Stdout.Fd())) {
			for _, tpl := range all {
				fmt.Printf("%s\t%s\t%d nodes\n", tpl.ID, tpl.Name, len(tpl.Nodes))
			}
			return
		}

		md := "# Templates\n\n| ID | Nome | Categoria | Nós |\n|---|---|---|---|\n"
		for _, tpl := range all {
			md += fmt.Sprintf("| %s | %s %s | %s | %d |\n",
				tpl.ID, tpl.Icon, tpl.Name, tpl.Category, len(tpl.Nodes))
		}

		render := tui.NewRenderer()
		out, err := render(md)
		if err != nil {
			fmt.Print(md)
			return
		}
		fmt.Print(out)
	},
}

var nodeTypesCmd = &cobra.Command{
	Use:   "node-types",
	Short: "List the node catalog for the editor palette",
	Run: func(cmd *cobra.Command, args []string) {
		for _, def := range catalog.Definitions() {
			if term.IsTerminal(int(os.Stdout.Fd())) {
				fmt.Printf("%-40s %s (%s)\n", tui.Swatch(def.Label, def.Color), def.Type, def.Category)
			} else {
				fmt.Printf("%s\t%s\t%s\n", def.Type, def.Label, def.Category)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(templatesCmd)
	rootCmd.AddCommand(nodeTypesCmd)
}
