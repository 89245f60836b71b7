// Package main implements the decision toolkit CLI: create decisions, apply
// analytic frameworks to them, and review accumulated results.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"decision-toolkit/internal/framework"
	"decision-toolkit/internal/store"
)

var (
	dataDir  string
	registry = framework.NewRegistry()
)

var rootCmd = &cobra.Command{
	Use:           "decide",
	Short:         "Decision-making toolkit",
	Long:          "Record decisions and apply analytic frameworks (7S, VPC, Strategic Inflection, Game Theory, Risk-Reward, Cynefin) to score and recommend actions.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var frameworksCmd = &cobra.Command{
	Use:   "frameworks",
	Short: "List available frameworks",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("\nAvailable Decision-Making Frameworks:")
		fmt.Println("=====================================")
		for _, key := range registry.Keys() {
			fw, err := registry.Lookup(key)
			if err != nil {
				return err
			}
			fmt.Printf("  %s: %s\n", key, fw.Name())
		}
		fmt.Println()
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved decisions",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		decisions, skipped, err := st.List()
		if err != nil {
			return err
		}
		if len(decisions) == 0 {
			fmt.Println("No saved decisions found.")
			return nil
		}
		fmt.Println("\nSaved Decisions:")
		fmt.Println("===============")
		for _, decision := range decisions {
			fmt.Printf("  %s\n", decision.Slug)
			fmt.Printf("    Text: %s\n", decision.Text)
			fmt.Printf("    Created: %s\n", decision.CreatedAt.Format("2006-01-02 15:04:05"))
			fmt.Printf("    Frameworks: %d\n\n", decision.FrameworksCount)
		}
		if skipped > 0 {
			fmt.Printf("Warning: %d unreadable decision file(s) skipped.\n", skipped)
		}
		return nil
	},
}

var createCmd = &cobra.Command{
	Use:   "create <decision text>",
	Short: "Create a new decision",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text := strings.Join(args, " ")
		st, err := openStore()
		if err != nil {
			return err
		}
		slug, err := st.Create(text)
		if err != nil {
			return err
		}
		fmt.Printf("\nCreated decision: %s\n", slug)
		fmt.Printf("Decision text: %s\n", text)
		fmt.Printf("\nTo apply a framework, use: decide run %s <framework>\n", slug)
		return nil
	},
}

var viewCmd = &cobra.Command{
	Use:   "view <slug>",
	Short: "View decision results",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		return viewDecision(st, args[0])
	},
}

func viewDecision(st *store.Store, slug string) error {
	decision, err := st.Load(slug)
	if err != nil {
		return err
	}

	fmt.Printf("\nDecision: %s\n", decision.Decision.Text)
	fmt.Printf("Created: %s\n", decision.Decision.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("Last Updated: %s\n", decision.Decision.LastUpdated.Format("2006-01-02 15:04:05"))
	fmt.Printf("Frameworks Applied: %d\n", decision.Metadata.CompletedFrameworks)

	for _, record := range decision.Frameworks {
		if !record.Completed() {
			continue
		}
		fmt.Printf("\n--- %s ---\n", record.Name)
		if record.Result.OverallScore != nil {
			fmt.Printf("Overall Score: %.2f\n", *record.Result.OverallScore)
		}
		fmt.Println("Key Recommendations:")
		recommendations := record.Result.Recommendations
		if len(recommendations) > 3 {
			recommendations = recommendations[:3]
		}
		for _, rec := range recommendations {
			fmt.Printf("  - %s\n", rec)
		}
	}
	return nil
}

func openStore() (*store.Store, error) {
	return store.NewStore(dataDir)
}

func main() {
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "data", "directory holding decision documents")
	rootCmd.AddCommand(frameworksCmd, listCmd, createCmd, runCmd, viewCmd, interactiveCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
