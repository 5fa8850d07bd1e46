package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"uav-deconflict/internal/config"
	"uav-deconflict/internal/deconflict"
	"uav-deconflict/internal/logging"
	"uav-deconflict/internal/report"
)

var (
	checkConfigPath string
	checkSchemaPath string
	checkLogFile    string
	checkJSON       bool
	checkTimeout    time.Duration
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check a planned mission against registered traffic",
	Long:  "check loads an airspace configuration, registers its flights, and evaluates the mission for separation violations.",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logging.New(verbose)
		ctx := logging.NewContext(cmd.Context(), log)
		if checkTimeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, checkTimeout)
			defer cancel()
		}

		cfg, err := config.Load(checkConfigPath, checkSchemaPath)
		if err != nil {
			return err
		}

		reg := deconflict.NewRegistry(cfg.SafetyBufferM, cfg.SampleStep.Std())
		for _, f := range cfg.Flights {
			tr, err := f.Trajectory()
			if err != nil {
				return err
			}
			reg.Register(tr)
			log.Debug("registered flight", "vehicle_id", f.VehicleID,
				"start", tr.Start(), "end", tr.End())
		}

		mission, err := cfg.Mission.Trajectory()
		if err != nil {
			return err
		}

		rep, err := reg.Check(ctx, mission)
		if err != nil {
			return err
		}
		log.Info("mission checked", "vehicle_id", mission.VehicleID(),
			"status", rep.Status, "conflicts", len(rep.Conflicts))

		checkID := uuid.New().String()
		writer, cleanup, err := newConflictWriter(checkJSON, checkLogFile)
		if err != nil {
			return err
		}
		defer cleanup()
		if err := report.WriteAll(writer, report.Rows(checkID, rep)); err != nil {
			return err
		}

		sw := report.NewSummaryWriter()
		return sw.WriteReport(mission.VehicleID(), "", rep)
	},
}

func init() {
	checkCmd.Flags().StringVar(&checkConfigPath, "config", "config/airspace.yaml", "Path to airspace configuration YAML")
	checkCmd.Flags().StringVar(&checkSchemaPath, "schema", "schemas/airspace.cue", "Path to CUE schema file")
	checkCmd.Flags().StringVar(&checkLogFile, "log-file", "", "Path to export conflict records (JSONL)")
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "Print conflict records to STDOUT as JSON lines")
	checkCmd.Flags().DurationVar(&checkTimeout, "timeout", 0, "Abort the check after this duration (e.g. 5s)")
}
