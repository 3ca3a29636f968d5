package main

import (
	"tableflip.dev/crest/pkg/app"
	"tableflip.dev/crest/pkg/printers"
)

func main() {
	bo := app.Seeded()
	pp := printers.PrettyPrint{}

	pp.Title("Listings")
	pp.Properties(bo.Listings.Store.List()...)

	pp.Title("Clients")
	pp.Clients(bo.Clients.Store.List()...)

	pp.Title("Commissions")
	rows := bo.Commissions.Store.List()
	pp.Commissions(rows...)
}
