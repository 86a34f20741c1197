package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/501wxrit/TripDiary-PWA/internal/domain"
)

// imageURLs renders an entry's image references as a comma-separated list
// of resolvable URLs, skipping malformed or id-only references.
func imageURLs(images []domain.ImageRef) string {
	urls := make([]string, 0, len(images))
	for _, img := range images {
		if url, ok := domain.RenderURL(img); ok {
			urls = append(urls, url)
		}
	}
	return strings.Join(urls, ",")
}

func init() {
	entriesCmd := &cobra.Command{Use: "entries", Short: "Diary entry operations"}

	listCmd := &cobra.Command{
		Use:   "list TRIP_ID",
		Short: "List diary entries for a trip",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, cleanup, err := openStore()
			if err != nil {
				return err
			}
			defer cleanup()

			for _, t := range s.Trips() {
				if t.ID != args[0] {
					continue
				}
				w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "ID\tCREATED\tTEXT\tLOCATION\tIMAGES")
				for _, e := range t.Entries {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
						e.ID, e.CreatedAt, e.Text, e.LocationName, imageURLs(e.Images))
				}
				return w.Flush()
			}
			return fmt.Errorf("trip %s not found", args[0])
		},
	}
	entriesCmd.AddCommand(listCmd)

	var text, location string
	var lat, lng float64
	var images []string
	addCmd := &cobra.Command{
		Use:   "add TRIP_ID",
		Short: "Add a diary entry to a trip",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if text == "" {
				return fmt.Errorf("--text required")
			}
			entry := domain.DiaryEntry{
				ID:           domain.NewID(),
				CreatedAt:    time.Now().UTC().Format(time.RFC3339),
				Text:         text,
				Images:       []domain.ImageRef{},
				LocationName: location,
			}
			if cmd.Flags().Changed("lat") && cmd.Flags().Changed("lng") {
				if !domain.ValidCoordinates(lat, lng) {
					return fmt.Errorf("coordinates out of range")
				}
				entry.Lat, entry.Lng = &lat, &lng
			}
			for _, url := range images {
				entry.Images = append(entry.Images, domain.ImageRef{URL: url})
			}

			s, cleanup, err := openStore()
			if err != nil {
				return err
			}
			defer cleanup()

			s.AddDiaryEntry(args[0], entry)
			fmt.Println(entry.ID)
			return nil
		},
	}
	addCmd.Flags().StringVarP(&text, "text", "t", "", "Entry text (required)")
	addCmd.Flags().StringVarP(&location, "location", "l", "", "Place name")
	addCmd.Flags().Float64Var(&lat, "lat", 0, "Latitude")
	addCmd.Flags().Float64Var(&lng, "lng", 0, "Longitude")
	addCmd.Flags().StringArrayVar(&images, "image", nil, "Image URL (repeatable)")
	_ = addCmd.MarkFlagRequired("text")
	entriesCmd.AddCommand(addCmd)

	deleteCmd := &cobra.Command{
		Use:   "delete TRIP_ID ENTRY_ID",
		Short: "Delete a diary entry",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, cleanup, err := openStore()
			if err != nil {
				return err
			}
			defer cleanup()
			s.DeleteDiaryEntry(args[0], args[1])
			return nil
		},
	}
	entriesCmd.AddCommand(deleteCmd)

	rootCmd.AddCommand(entriesCmd)
}
