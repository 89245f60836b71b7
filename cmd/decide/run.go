package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"decision-toolkit/internal/framework"
	"decision-toolkit/internal/store"
)

var setFlags []string

var runCmd = &cobra.Command{
	Use:   "run <slug> <framework>",
	Short: "Apply a framework to a decision",
	Long:  "Apply a framework to a saved decision. Inputs are collected interactively, or supplied with repeatable --set field=value flags for scripted use.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		return runFramework(st, args[0], args[1])
	},
}

var interactiveCmd = &cobra.Command{
	Use:   "interactive <slug>",
	Short: "Interactive analysis session for a decision",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		return interactiveSession(st, args[0])
	},
}

func runFramework(st *store.Store, slug, key string) error {
	if _, err := st.Load(slug); err != nil {
		return err
	}
	fw, err := registry.Lookup(key)
	if err != nil {
		return fmt.Errorf("%w (use 'decide frameworks' to see available options)", err)
	}

	fmt.Printf("\nRunning %s for decision: %s\n", fw.Name(), slug)
	fmt.Println(strings.Repeat("=", 60))

	var inputs framework.Inputs
	if len(setFlags) > 0 {
		inputs, err = inputsFromFlags(fw.RequiredInputs(), setFlags)
	} else {
		inputs, err = promptInputs(fw.RequiredInputs())
	}
	if err != nil {
		return err
	}

	if err := fw.SetInputs(inputs); err != nil {
		return err
	}
	result, err := fw.Execute()
	if err != nil {
		return err
	}

	displayResult(result)

	snapshot := fw.Snapshot()
	record := store.FrameworkRecord{
		Name:   snapshot.Name,
		Inputs: snapshot.Inputs,
		Result: snapshot.Result,
	}
	if err := st.Upsert(slug, record); err != nil {
		return err
	}

	fmt.Printf("\nResults saved for decision: %s\n", slug)
	return nil
}

// inputsFromFlags parses --set field=value pairs, coercing numeric fields per
// the schema type tags.
func inputsFromFlags(fields []framework.Field, pairs []string) (framework.Inputs, error) {
	types := make(map[string]framework.FieldType, len(fields))
	for _, field := range fields {
		types[field.Name] = field.Type
	}

	inputs := make(framework.Inputs, len(pairs))
	for _, pair := range pairs {
		name, value, found := strings.Cut(pair, "=")
		if !found {
			return nil, fmt.Errorf("invalid --set value %q: expected field=value", pair)
		}
		name = strings.TrimSpace(name)
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		if types[name] == framework.FieldNumber {
			parsed, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return nil, fmt.Errorf("field %s expects a number, got %q", name, value)
			}
			inputs[name] = parsed
			continue
		}
		inputs[name] = value
	}
	return inputs, nil
}

// promptInputs collects inputs interactively from the schema. Optional fields
// may be skipped with an empty line; numeric fields are re-prompted until a
// valid number arrives.
func promptInputs(fields []framework.Field) (framework.Inputs, error) {
	reader := bufio.NewScanner(os.Stdin)
	inputs := make(framework.Inputs, len(fields))

	fmt.Println("\nPlease provide the following inputs:")
	for _, field := range fields {
		for {
			fmt.Printf("%s (%s): ", field.Name, field.Description)
			if !reader.Scan() {
				if err := reader.Err(); err != nil {
					return nil, fmt.Errorf("read input: %w", err)
				}
				return inputs, nil
			}
			value := strings.TrimSpace(reader.Text())
			if value == "" {
				if field.Optional {
					break
				}
				fmt.Println("This field is required.")
				continue
			}
			if field.Type == framework.FieldNumber {
				parsed, err := strconv.ParseFloat(value, 64)
				if err != nil {
					fmt.Println("Please enter a valid number for score fields.")
					continue
				}
				inputs[field.Name] = parsed
				break
			}
			inputs[field.Name] = value
			break
		}
	}
	return inputs, nil
}

func displayResult(result *framework.Result) {
	fmt.Println("\n" + strings.Repeat("=", 60))
	fmt.Println("RESULTS")
	fmt.Println(strings.Repeat("=", 60))

	fmt.Printf("\nFramework: %s\n", result.FrameworkName)
	if result.OverallScore != nil {
		fmt.Printf("Overall Score: %.2f\n", *result.OverallScore)
	}

	fmt.Println("\nScores:")
	for key, score := range result.Scores {
		fmt.Printf("  %s: %g\n", titleWords(key), score)
	}

	fmt.Println("\nRecommendations:")
	for i, rec := range result.Recommendations {
		fmt.Printf("  %d. %s\n", i+1, rec)
	}

	if len(result.AdditionalData) > 0 {
		fmt.Println("\nAdditional Information:")
		for key, value := range result.AdditionalData {
			switch v := value.(type) {
			case []string:
				fmt.Printf("  %s: %s\n", titleWords(key), strings.Join(v, ", "))
			default:
				fmt.Printf("  %s: %v\n", titleWords(key), v)
			}
		}
	}
}

func titleWords(field string) string {
	words := strings.Split(field, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func interactiveSession(st *store.Store, slug string) error {
	if _, err := st.Load(slug); err != nil {
		return err
	}

	fmt.Println("\nInteractive Decision Analysis Mode")
	fmt.Printf("Decision: %s\n", slug)
	fmt.Println(strings.Repeat("=", 60))

	reader := bufio.NewScanner(os.Stdin)
	for {
		fmt.Println("\nWhat would you like to do?")
		fmt.Println("1. List available frameworks")
		fmt.Println("2. Run a framework")
		fmt.Println("3. View current results")
		fmt.Println("4. Exit")
		fmt.Print("\nChoice (1-4): ")

		if !reader.Scan() {
			return reader.Err()
		}
		switch strings.TrimSpace(reader.Text()) {
		case "1":
			for _, key := range registry.Keys() {
				fw, err := registry.Lookup(key)
				if err != nil {
					return err
				}
				fmt.Printf("  %s: %s\n", key, fw.Name())
			}
		case "2":
			fmt.Print("Enter framework key: ")
			if !reader.Scan() {
				return reader.Err()
			}
			key := strings.ToLower(strings.TrimSpace(reader.Text()))
			if err := runFramework(st, slug, key); err != nil {
				fmt.Printf("Error running framework: %v\n", err)
			}
		case "3":
			if err := viewDecision(st, slug); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
		case "4":
			return nil
		default:
			fmt.Println("Invalid choice. Please enter 1-4.")
		}
	}
}

func init() {
	runCmd.Flags().StringArrayVar(&setFlags, "set", nil, "framework input as field=value (repeatable)")
}
