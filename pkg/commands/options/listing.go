package options

import (
	"github.com/spf13/cobra"
)

// ListingOptions captures the flags for adding a listing.
type ListingOptions struct {
	Type       string
	Status     string
	Nickname   string
	Price      string
	SquareFeet string
	LotSize    string
}

func AddListingArgs(cmd *cobra.Command, o *ListingOptions) {
	cmd.Flags().StringVarP(&o.Type, "type", "t", "sale",
		"Listing type: sale, lease, or business.")
	cmd.Flags().StringVar(&o.Status, "status", "listed",
		"Initial status: listed, pending, sold, or withdrawn.")
	cmd.Flags().StringVarP(&o.Nickname, "nickname", "n", "",
		"Optional display nickname.")
	cmd.Flags().StringVarP(&o.Price, "price", "p", "",
		`Display price, example: --price="$987,900" or --price="$2,500/month".`)
	cmd.Flags().StringVar(&o.SquareFeet, "sqft", "",
		"Square footage display string.")
	cmd.Flags().StringVar(&o.LotSize, "lot", "",
		"Lot size display string.")
}
