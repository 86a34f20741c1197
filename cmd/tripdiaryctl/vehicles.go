package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/501wxrit/TripDiary-PWA/internal/domain"
)

func init() {
	vehiclesCmd := &cobra.Command{Use: "vehicles", Short: "Vehicle operations"}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all vehicles",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, cleanup, err := openStore()
			if err != nil {
				return err
			}
			defer cleanup()

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tBRAND\tMODEL\tPLATE")
			for _, v := range s.Vehicles() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", v.ID, v.Brand, v.Model, v.Plate)
			}
			return w.Flush()
		},
	}
	vehiclesCmd.AddCommand(listCmd)

	var brand, model, plate, notes string
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a vehicle",
		RunE: func(cmd *cobra.Command, args []string) error {
			if brand == "" && model == "" {
				return fmt.Errorf("--brand or --model required")
			}
			s, cleanup, err := openStore()
			if err != nil {
				return err
			}
			defer cleanup()

			v := domain.Vehicle{
				ID:    domain.NewID(),
				Brand: brand,
				Model: model,
				Plate: plate,
				Notes: notes,
			}
			s.AddVehicle(v)
			fmt.Println(v.ID)
			return nil
		},
	}
	addCmd.Flags().StringVarP(&brand, "brand", "b", "", "Vehicle brand")
	addCmd.Flags().StringVarP(&model, "model", "m", "", "Vehicle model")
	addCmd.Flags().StringVarP(&plate, "plate", "p", "", "License plate")
	addCmd.Flags().StringVar(&notes, "notes", "", "Notes")
	vehiclesCmd.AddCommand(addCmd)

	deleteCmd := &cobra.Command{
		Use:   "delete VEHICLE_ID",
		Short: "Delete a vehicle (trips keep their copy)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, cleanup, err := openStore()
			if err != nil {
				return err
			}
			defer cleanup()
			s.DeleteVehicle(args[0])
			return nil
		},
	}
	vehiclesCmd.AddCommand(deleteCmd)

	rootCmd.AddCommand(vehiclesCmd)
}
