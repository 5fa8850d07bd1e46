package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"uav-deconflict/internal/logging"
	"uav-deconflict/internal/report"
	"uav-deconflict/internal/scenario"
	"uav-deconflict/internal/tui"
)

var (
	scenarioName        string
	scenarioFile        string
	scenarioLogFile     string
	scenarioJSON        bool
	scenarioInteractive bool
	scenarioList        bool
)

var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "Run canned deconfliction scenarios",
	Long:  "scenarios runs the built-in scenario suite (or one named scenario, or a YAML scenario file) and summarizes each report.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if scenarioList {
			for _, name := range scenario.Names() {
				fmt.Println(name)
			}
			return nil
		}
		if scenarioInteractive {
			return tui.Run()
		}

		log := logging.New(verbose)
		ctx := logging.NewContext(cmd.Context(), log)

		var run []*scenario.Scenario
		switch {
		case scenarioFile != "":
			sc, err := scenario.Load(scenarioFile)
			if err != nil {
				return err
			}
			run = append(run, sc)
		case scenarioName != "":
			sc, ok := scenario.BuiltIn()[scenarioName]
			if !ok {
				return fmt.Errorf("unknown scenario %q, see --list", scenarioName)
			}
			run = append(run, sc)
		default:
			builtIn := scenario.BuiltIn()
			for _, name := range scenario.Names() {
				run = append(run, builtIn[name])
			}
		}

		writer, cleanup, err := newConflictWriter(scenarioJSON, scenarioLogFile)
		if err != nil {
			return err
		}
		defer cleanup()

		sw := report.NewSummaryWriter()
		for _, sc := range run {
			rep, err := sc.Run(ctx)
			if err != nil {
				return err
			}
			log.Debug("scenario finished", "name", sc.Name,
				"status", rep.Status, "conflicts", len(rep.Conflicts))
			if err := report.WriteAll(writer, report.Rows(uuid.New().String(), rep)); err != nil {
				return err
			}
			if err := sw.WriteReport(sc.Name, sc.Description, rep); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	scenariosCmd.Flags().StringVar(&scenarioName, "name", "", "Run a single built-in scenario")
	scenariosCmd.Flags().StringVar(&scenarioFile, "file", "", "Run a scenario from a YAML file")
	scenariosCmd.Flags().StringVar(&scenarioLogFile, "log-file", "", "Path to export conflict records (JSONL)")
	scenariosCmd.Flags().BoolVar(&scenarioJSON, "json", false, "Print conflict records to STDOUT as JSON lines")
	scenariosCmd.Flags().BoolVar(&scenarioInteractive, "interactive", false, "Browse scenarios in a TUI")
	scenariosCmd.Flags().BoolVar(&scenarioList, "list", false, "List built-in scenario names")
}
