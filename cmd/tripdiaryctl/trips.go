package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/501wxrit/TripDiary-PWA/internal/domain"
)

func init() {
	tripsCmd := &cobra.Command{Use: "trips", Short: "Trip operations"}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all trips",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, cleanup, err := openStore()
			if err != nil {
				return err
			}
			defer cleanup()

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tPROVINCE\tSTARTED\tENTRIES")
			for _, t := range s.Trips() {
				started := t.StartedAt
				if started == "" {
					started = t.StartDate
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n", t.ID, t.Name, t.Province, started, len(t.Entries))
			}
			return w.Flush()
		},
	}
	tripsCmd.AddCommand(listCmd)

	var name, province, started, ended, description string
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a trip",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				return fmt.Errorf("--name required")
			}
			s, cleanup, err := openStore()
			if err != nil {
				return err
			}
			defer cleanup()

			trip := domain.Trip{
				ID:          domain.NewID(),
				Name:        name,
				Province:    province,
				StartedAt:   started,
				EndedAt:     ended,
				Description: description,
				Entries:     []domain.DiaryEntry{},
			}
			s.AddTrip(trip)
			fmt.Println(trip.ID)
			return nil
		},
	}
	addCmd.Flags().StringVarP(&name, "name", "n", "", "Trip name (required)")
	addCmd.Flags().StringVarP(&province, "province", "p", "", "Province")
	addCmd.Flags().StringVar(&started, "started", "", "Start date (ISO)")
	addCmd.Flags().StringVar(&ended, "ended", "", "End date (ISO)")
	addCmd.Flags().StringVar(&description, "description", "", "Description")
	_ = addCmd.MarkFlagRequired("name")
	tripsCmd.AddCommand(addCmd)

	deleteCmd := &cobra.Command{
		Use:   "delete TRIP_ID",
		Short: "Delete a trip and its entries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, cleanup, err := openStore()
			if err != nil {
				return err
			}
			defer cleanup()
			s.DeleteTrip(args[0])
			return nil
		},
	}
	tripsCmd.AddCommand(deleteCmd)

	rootCmd.AddCommand(tripsCmd)
}
