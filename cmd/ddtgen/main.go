// ddtgen — инструмент командной строки для преобразования CLI-команд
// устройств Huawei в строки автоматизированных тестовых сценариев
// через DDT CLI Parser API.
//
// Использование:
//
//	ddtgen --product USG6000F --cli "display ospf peer"
//	ddtgen --product USG6000F --cli "system-view" --cli "ospf 1" --cli "display this"
//	ddtgen --product USG6000F --cli-file commands.txt --output test_script.py
//	ddtgen --product USG6000F --cli "display interface brief" --json
package main

import (
	"fmt"
	"os"

	"github.com/shaiso/ddtgen/internal/cli"
	"github.com/shaiso/ddtgen/internal/telemetry"
)

// version задаётся через ldflags при сборке.
var version = "dev"

func main() {
	telemetry.SetupLogger()

	rootCmd := cli.NewRootCmd()
	rootCmd.Version = version
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
