package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/crest/pkg/commands/options"
	"tableflip.dev/crest/pkg/config"
	"tableflip.dev/crest/pkg/record"
	"tableflip.dev/crest/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add something",
		Example: `
crest add listing 42 Elm St, Ogden UT 84401 --price="$350,000"
crest add client Dana White --looking-for="Small office, walkable area"
crest add commission --property="Tefco Building" --client="Tefco Corp" --price="$386,595" --rate=3
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addAddListing(cmd)
	addAddClient(cmd)
	addAddCommission(cmd)

	topLevel.AddCommand(cmd)
}

func addAddListing(topLevel *cobra.Command) {
	lo := &options.ListingOptions{}

	cmd := &cobra.Command{
		Use:     "listing [address]",
		Short:   "Add a listing to the property board.",
		Aliases: []string{"property"},
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("an address is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := record.ParsePropertyType(lo.Type)
			if err != nil {
				return oo.HandleError(err)
			}
			status, err := record.ParseListingStatus(lo.Status)
			if err != nil {
				return oo.HandleError(err)
			}
			s := add.Listing{
				Address:    strings.Join(args, " "),
				Type:       t,
				Status:     status,
				Nickname:   lo.Nickname,
				Price:      lo.Price,
				SquareFeet: lo.SquareFeet,
				LotSize:    lo.LotSize,
				BackOffice: backOffice(),
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddListingArgs(cmd, lo)

	topLevel.AddCommand(cmd)
}

func addAddClient(topLevel *cobra.Command) {
	co := &options.ClientOptions{}

	cmd := &cobra.Command{
		Use:   "client [name]",
		Short: "Add a client to the pipeline.",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("a name is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s := add.Client{
				Name:       strings.Join(args, " "),
				Company:    co.Company,
				Phone:      co.Phone,
				Email:      co.Email,
				LookingFor: co.LookingFor,
				Status:     co.Status,
				BackOffice: backOffice(),
			}
			err := s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddClientArgs(cmd, co)

	topLevel.AddCommand(cmd)
}

func addAddCommission(topLevel *cobra.Command) {
	co := &options.CommissionOptions{}

	cmd := &cobra.Command{
		Use:   "commission",
		Short: "Add a commission to the pipeline.",
		RunE: func(cmd *cobra.Command, args []string) error {
			rate := co.Rate
			if rate == "" {
				cfg, err := config.Load()
				if err != nil {
					return oo.HandleError(err)
				}
				rate = string(cfg.DefaultRate())
			}
			r, err := record.ParseRate(rate)
			if err != nil {
				return oo.HandleError(err)
			}
			s := add.Commission{
				Property:    co.Property,
				Client:      co.Client,
				Price:       co.Price,
				Rate:        r,
				FromListing: co.FromListing,
				BackOffice:  backOffice(),
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddCommissionArgs(cmd, co)

	topLevel.AddCommand(cmd)
}
