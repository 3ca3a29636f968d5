package options

import (
	"github.com/spf13/cobra"
)

// CommissionOptions captures the flags for adding a commission.
type CommissionOptions struct {
	Property    string
	Client      string
	Price       string
	Rate        string
	FromListing string
}

func AddCommissionArgs(cmd *cobra.Command, o *CommissionOptions) {
	cmd.Flags().StringVarP(&o.Property, "property", "p", "",
		"Property the deal is on.")
	cmd.Flags().StringVarP(&o.Client, "client", "c", "",
		"Client on the other side of the deal.")
	cmd.Flags().StringVar(&o.Price, "price", "",
		`Listing price, example: --price="$386,595".`)
	cmd.Flags().StringVarP(&o.Rate, "rate", "r", "",
		"Expected commission rate: 3 or 6.")
	cmd.Flags().StringVar(&o.FromListing, "from-listing", "",
		"Build the commission from a listing id instead of --property/--price.")
}
