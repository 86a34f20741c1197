package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	var outDir string
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export trips and vehicles to a timestamped JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, cleanup, err := openStore()
			if err != nil {
				return err
			}
			defer cleanup()

			path, err := s.ExportData(outDir)
			if err != nil {
				return err
			}
			fmt.Println(path)
			return nil
		},
	}
	exportCmd.Flags().StringVarP(&outDir, "out", "o", ".", "Output directory")
	rootCmd.AddCommand(exportCmd)

	importCmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Replace trips and vehicles from an export file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			s, cleanup, err := openStore()
			if err != nil {
				return err
			}
			defer cleanup()

			if err := s.ImportData(f); err != nil {
				return err
			}
			fmt.Printf("imported %d trips, %d vehicles\n", len(s.Trips()), len(s.Vehicles()))
			return nil
		},
	}
	rootCmd.AddCommand(importCmd)

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all local data, including the persisted record",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, cleanup, err := openStore()
			if err != nil {
				return err
			}
			defer cleanup()
			s.ClearAll()
			return nil
		},
	}
	rootCmd.AddCommand(clearCmd)
}
