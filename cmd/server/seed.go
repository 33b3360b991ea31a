package main

import (
	"time"

	"calling-tracker-backend/internal/database"
	"calling-tracker-backend/internal/seed"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	gormlogger "gorm.io/gorm/logger"
)

func seedCommand() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load organizations, members, callings and assignments from YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			data, err := seed.Load(path)
			if err != nil {
				return err
			}

			// Silent: the lookups below log "record not found" for every new record
			db, err := openDatabase(cfg, &database.Options{LogLevel: gormlogger.Silent}, 60, time.Second)
			if err != nil {
				return err
			}
			defer database.Close(db)

			summary, err := seed.Apply(cmd.Context(), db, data)
			if err != nil {
				return err
			}
			logrus.Infof("Seed complete: %d organizations, %d members, %d callings, %d assignments created",
				summary.Organizations, summary.Members, summary.Callings, summary.Assignments)
			return nil
		},
	}

	cmd.Flags().StringVarP(&path, "file", "f", "seed", "seed YAML file or directory of YAML files")
	return cmd
}
