package cmd

import (
	"context"

	chatboxApp "github.com/AzielCF/az-chatbox/chatbox/application"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var resetSettings bool

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create tables and seed default settings",
	Long:  `Creates the settings, agents and chat log tables, then stores the default value of every setting that is not yet present. Existing values are never overwritten unless --reset is given.`,
	Run:   runMigrate,
}

func init() {
	migrateCmd.Flags().BoolVar(&resetSettings, "reset", false, "Remove stored settings before seeding defaults")
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(_ *cobra.Command, _ []string) {
	ctx := context.Background()
	defer StopApp()

	if resetSettings {
		if err := settingsService.Reset(ctx); err != nil {
			logrus.Fatalf("[MIGRATE] Reset failed: %v", err)
		}
		logrus.Info("[MIGRATE] Stored settings removed")
	}

	seeded, err := settingsService.SeedDefaults(ctx, appConfig.App.Version)
	if err != nil {
		logrus.Fatalf("[MIGRATE] Seeding failed: %v", err)
	}
	logrus.Infof("[MIGRATE] Schema ready, %d default settings stored", seeded)

	if err := chatboxApp.ValidateSchedule(settingsService.Load(ctx).Schedule); err != nil {
		logrus.Warnf("[MIGRATE] Stored business hours never match: %v", err)
	}
}
