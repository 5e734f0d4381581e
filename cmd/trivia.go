package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/abhisek/wolfchan/internal/trivia"
	"github.com/spf13/cobra"
)

var triviaCmd = &cobra.Command{
	Use:   "trivia",
	Short: "Trivia question tools",
}

var triviaPreviewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Answer a round of trivia in the terminal (nothing is recorded)",
	Long: `Generate and interactively answer trivia questions for a topic.

Useful for checking the question bank or LLM-generated questions
without starting a timer.`,
	RunE: runTriviaPreview,
}

func init() {
	triviaPreviewCmd.Flags().String("topic", trivia.Topics[0], "Topic: "+strings.Join(trivia.Topics, ", "))
	triviaPreviewCmd.Flags().Int("count", 5, "Number of questions")
	triviaPreviewCmd.Flags().String("source", "", "Question source: bank or llm (defaults to config)")
	triviaCmd.AddCommand(triviaPreviewCmd)
}

func runTriviaPreview(cmd *cobra.Command, args []string) error {
	topic, _ := cmd.Flags().GetString("topic")
	count, _ := cmd.Flags().GetInt("count")
	source, _ := cmd.Flags().GetString("source")

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if source != "" {
		cfg.Games.TriviaSource = source
	}
	logger, logFile, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logFile.Close()

	ctx := context.Background()
	var gen trivia.Generator = trivia.BankGenerator{}
	if cfg.Games.TriviaSource == "llm" {
		// No journal: preview requests are not recorded.
		provider, err := newLLMProvider(ctx, cfg, nil, logger)
		if err != nil {
			return fmt.Errorf("LLM provider: %w", err)
		}
		gen = trivia.NewLLMGenerator(provider, trivia.DefaultLLMConfig(), logger)
	}

	fmt.Printf("Topic: %s\nGenerating %d questions...\n\n", topic, count)
	qs, err := gen.Generate(ctx, topic, count)
	if err != nil {
		return err
	}

	scanner := bufio.NewScanner(os.Stdin)
	var correct int
	for i, q := range qs {
		fmt.Printf("── Question %d/%d ──\n", i+1, len(qs))
		fmt.Println(q.Prompt)
		for j, opt := range q.Options {
			fmt.Printf("  %d) %s\n", j+1, opt)
		}

		fmt.Print("\nYour answer: ")
		if !scanner.Scan() {
			fmt.Println("\n(input closed)")
			break
		}
		answer := strings.TrimSpace(scanner.Text())
		if answer == "" {
			fmt.Println("(skipped)")
			fmt.Println()
			continue
		}

		if n, err := strconv.Atoi(answer); err == nil && n-1 == q.Correct {
			correct++
			fmt.Println("\033[32m✓ Correct!\033[0m")
		} else {
			fmt.Printf("\033[31m✗ Wrong.\033[0m Answer: %s\n", q.Answer())
		}
		fmt.Println()
	}

	fmt.Printf("── Summary: %d/%d correct ──\n", correct, len(qs))
	return nil
}
