package options

import (
	"github.com/spf13/cobra"
)

// ClientOptions captures the flags for adding a client.
type ClientOptions struct {
	Company    string
	Phone      string
	Email      string
	LookingFor string
	Status     string
}

func AddClientArgs(cmd *cobra.Command, o *ClientOptions) {
	cmd.Flags().StringVar(&o.Company, "company", "",
		"Company name.")
	cmd.Flags().StringVar(&o.Phone, "phone", "",
		"Phone number.")
	cmd.Flags().StringVar(&o.Email, "email", "",
		"Email address.")
	cmd.Flags().StringVarP(&o.LookingFor, "looking-for", "l", "",
		"What the client is looking for.")
	cmd.Flags().StringVar(&o.Status, "status", "",
		"Initial pipeline status; defaults to New Lead.")
}
