package main

import (
	"encoding/json"
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
)

var placeCmd = &cobra.Command{
	Use:   "place <place_id>",
	Short: "Look up a single place by its Places ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := initPipeline(cfg, false)
		if err != nil {
			return eris.Wrap(err, "place: init pipeline")
		}
		defer env.close()

		prospect := env.searcher.PlaceDetails(cmd.Context(), args[0])
		if prospect == nil {
			fmt.Println("place not found")
			return nil
		}

		out, err := json.MarshalIndent(prospect, "", "  ")
		if err != nil {
			return eris.Wrap(err, "place: marshal result")
		}
		fmt.Println(string(out))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(placeCmd)
}
