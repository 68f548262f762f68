package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/shaiso/ddtgen/internal/ddt"
)

// NewRootCmd создаёт корневую команду ddtgen.
//
// Инструмент однокомандный: вся работа происходит в RunE корня.
// Источники команд --cli и --cli-file взаимоисключающие,
// ровно один из них обязателен.
func NewRootCmd() *cobra.Command {
	var (
		products   []string
		clis       []string
		cliFile    string
		outPath    string
		timeoutSec int
		jsonOutput bool
		apiURL     string
	)

	cmd := &cobra.Command{
		Use:   "ddtgen",
		Short: "Convert Huawei CLI commands to automation test scripts via DDT API",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := NewOutput()

			commands := clis
			if cliFile != "" {
				var err error
				commands, err = ReadCommandFile(cliFile)
				if err != nil {
					return err
				}
			}

			client := ddt.NewClient(apiURL, time.Duration(timeoutSec)*time.Second)
			resp, err := client.Query(cmd.Context(), commands, products)
			if err != nil {
				return describeQueryError(err)
			}

			var text string
			if jsonOutput {
				text, err = ddt.RenderJSON(resp)
				if err != nil {
					return err
				}
			} else {
				text = ddt.RenderScript(ddt.ExtractLines(resp))
			}

			return out.WriteScript(text, outPath)
		},
	}

	cmd.Flags().StringSliceVar(&products, "product", nil, "Device product model(s), e.g. USG6000F (repeatable)")
	cmd.Flags().StringArrayVar(&clis, "cli", nil, "CLI command(s) to convert (repeatable)")
	cmd.Flags().StringVar(&cliFile, "cli-file", "", "Path to a text file with CLI commands (one per line)")
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "Output file path for the generated script (default: stdout)")
	cmd.Flags().IntVar(&timeoutSec, "timeout", 60, "API request timeout in seconds")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output raw API JSON response instead of a script")
	cmd.Flags().StringVar(&apiURL, "api-url", defaultAPIURL(), "DDT API endpoint URL")

	cmd.MarkFlagRequired("product")
	cmd.MarkFlagsOneRequired("cli", "cli-file")
	cmd.MarkFlagsMutuallyExclusive("cli", "cli-file")

	return cmd
}

// defaultAPIURL возвращает endpoint из переменной окружения DDT_API_URL
// или значение по умолчанию.
func defaultAPIURL() string {
	if v := os.Getenv("DDT_API_URL"); v != "" {
		return v
	}
	return ddt.DefaultAPIURL
}

// describeQueryError дополняет ошибку соединения подсказкой для пользователя.
func describeQueryError(err error) error {
	if errors.Is(err, ddt.ErrConnect) {
		return fmt.Errorf("%w (are you on the internal network?)", err)
	}
	return err
}
