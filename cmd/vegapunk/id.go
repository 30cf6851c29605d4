package main

import (
	"fmt"

	"github.com/dannycreations/Vegapunk-sub001/randstr"
	"github.com/spf13/cobra"
)

// idCmd generates random identifiers.
var idCmd = &cobra.Command{
	Use:   "id",
	Short: "Generate random identifiers",
	Long: `Generate random identifiers, one per line.

By default identifiers are URL-safe (A-Za-z0-9_-). A custom alphabet
restricts the characters drawn; --uuid prints version 4 UUIDs instead.

Example:
  vegapunk id
  vegapunk id --length 32 -n 5
  vegapunk id --alphabet 0123456789abcdef --length 40
  vegapunk id --uuid`,
	RunE: runID,
}

func init() {
	rootCmd.AddCommand(idCmd)

	idCmd.Flags().Int("length", randstr.DefaultLength, "identifier length")
	idCmd.Flags().String("alphabet", "", "custom alphabet to draw from")
	idCmd.Flags().Bool("uuid", false, "generate version 4 UUIDs instead")
	idCmd.Flags().IntP("count", "n", 1, "number of identifiers to generate")
}

func runID(cmd *cobra.Command, args []string) error {
	length, _ := cmd.Flags().GetInt("length")
	alphabet, _ := cmd.Flags().GetString("alphabet")
	asUUID, _ := cmd.Flags().GetBool("uuid")
	count, _ := cmd.Flags().GetInt("count")

	if count < 1 {
		return fmt.Errorf("count must be at least 1, got %d", count)
	}

	for i := 0; i < count; i++ {
		var (
			id  string
			err error
		)
		switch {
		case asUUID:
			id = randstr.UUID()
		case alphabet != "":
			id, err = randstr.FromAlphabet(alphabet, length)
		default:
			id, err = randstr.New(length)
		}
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), id)
	}
	return nil
}
