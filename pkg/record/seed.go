package record

import "time"

// Seed data stands in for a backend. Stores start from these lists on
// every launch; nothing written during a session survives a restart.

// SeedProperties returns the stock listing board.
func SeedProperties() []Property {
	return []Property{
		{
			ID:         "1",
			Address:    "1069 S 1600 W, Perry UT 84302",
			Type:       TypeSale,
			Status:     StatusListed,
			Price:      "$987,900",
			SquareFeet: "2,450 sq ft",
			LotSize:    "2.35 acres",
			Notes: []Note{
				{ID: "1", Content: "Great location near schools", Date: Date(2025, time.July, 13)},
				{ID: "2", Content: "Needs minor repairs", Date: Date(2025, time.July, 13)},
			},
			DateAdded: Date(2025, time.July, 13),
			Details:   SaleDetails{},
		},
		{
			ID:         "2",
			Address:    "1090 Cambridge Cir, Layton UT 84040",
			Type:       TypeSale,
			Status:     StatusPending,
			Nickname:   "Cambridge Property",
			Price:      "$1,650,000",
			SquareFeet: "3,200 sq ft",
			LotSize:    "0.37 acres",
			Notes: []Note{
				{ID: "3", Content: "Offer pending inspection", Date: Date(2025, time.July, 13)},
			},
			DateAdded: Date(2025, time.July, 13),
			Details:   SaleDetails{},
		},
		{
			ID:         "3",
			Address:    "1480 Ridgeline Dr, South Ogden UT 84405",
			Type:       TypeSale,
			Status:     StatusListed,
			Price:      "$3,347,500",
			SquareFeet: "5,800 sq ft",
			LotSize:    "1 acres",
			Notes:      []Note{},
			DateAdded:  Date(2025, time.July, 13),
			Details:    SaleDetails{},
		},
		{
			ID:         "4",
			Address:    "500 Main Street, Salt Lake City UT 84101",
			Type:       TypeLease,
			Status:     StatusListed,
			Nickname:   "Downtown Office",
			Price:      "$2,500/month",
			SquareFeet: "1,200 sq ft",
			LotSize:    "0.1 acres",
			Notes: []Note{
				{ID: "4", Content: "Perfect for retail business", Date: Date(2025, time.July, 13)},
			},
			DateAdded: Date(2025, time.July, 12),
			Details:   LeaseDetails{},
		},
		{
			ID:        "5",
			Address:   "1200 Business Park Dr, Provo UT 84601",
			Type:      TypeBusiness,
			Status:    StatusSold,
			Notes:     []Note{},
			DateAdded: Date(2025, time.July, 11),
			Details:   BusinessDetails{},
		},
		{
			ID:         "6",
			Address:    "800 Tech Boulevard, Lehi UT 84043",
			Type:       TypeLease,
			Status:     StatusPending,
			Nickname:   "Tech Hub",
			Price:      "$3,200/month",
			SquareFeet: "2,400 sq ft",
			LotSize:    "0.5 acres",
			Notes: []Note{
				{ID: "5", Content: "High-tech office space", Date: Date(2025, time.July, 10)},
				{ID: "6", Content: "Multiple interested parties", Date: Date(2025, time.July, 12)},
			},
			DateAdded: Date(2025, time.July, 10),
			Details:   LeaseDetails{},
		},
		{
			ID:      "7",
			Address: "2500 Industrial Way, West Valley UT 84119",
			Type:    TypeBusiness,
			Status:  StatusWithdrawn,
			Notes: []Note{
				{ID: "7", Content: "Owner decided not to sell", Date: Date(2025, time.July, 11)},
			},
			DateAdded: Date(2025, time.July, 9),
			Details:   BusinessDetails{},
		},
	}
}

// SeedClients returns the stock client pipeline.
func SeedClients() []Client {
	return []Client{
		{
			ID:         "1",
			Name:       "John Smith",
			Company:    "Tech Startup Inc",
			Phone:      "(555) 123-4567",
			Email:      "john@techstartup.com",
			LookingFor: "Office space downtown, 2000-3000 sq ft",
			Status:     ClientLooking,
			CreatedAt:  Date(2024, time.January, 15),
			UpdatedAt:  Date(2024, time.January, 15),
			Notes: []Note{
				{ID: "1", Content: "Initial consultation call completed. Looking for modern office space with parking.", Date: Date(2024, time.January, 15)},
			},
		},
		{
			ID:         "2",
			Name:       "Sarah Johnson",
			Company:    "Johnson Retail",
			Phone:      "(555) 987-6543",
			Email:      "sarah@johnsonretail.com",
			LookingFor: "Retail storefront, high foot traffic area",
			Status:     ClientLooking,
			CreatedAt:  Date(2024, time.January, 10),
			UpdatedAt:  Date(2024, time.January, 18),
			Notes: []Note{
				{ID: "2", Content: "Viewed 3 properties on Main Street. Prefers corner location.", Date: Date(2024, time.January, 18)},
				{ID: "3", Content: "Budget confirmed at $4000-6000/month. Ready to move quickly.", Date: Date(2024, time.January, 12)},
			},
		},
		{
			ID:         "3",
			Name:       "Mike Chen",
			Phone:      "(555) 456-7890",
			Email:      "mike.chen@email.com",
			LookingFor: "Industrial warehouse, 5000+ sq ft",
			Status:     ClientNegotiating,
			CreatedAt:  Date(2024, time.January, 5),
			UpdatedAt:  Date(2024, time.January, 20),
			Notes: []Note{
				{ID: "4", Content: "Negotiating lease terms for Warehouse District property. Requesting 3-year lease.", Date: Date(2024, time.January, 20)},
			},
		},
	}
}

// SeedCommissions returns the stock commission pipeline.
func SeedCommissions() []Commission {
	return []Commission{
		{
			ID: "1", Property: "Tefco Building", Client: "Tefco Corp",
			ListingPrice: 386595.00, Rate3: 11597.85, Rate6: 23195.70, Likely: 11597.85,
			EstimatedClosing: ClosingOn(time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)),
			ListingStatus:    StatusListed, CommissionStatus: PaymentNotPaid,
		},
		{
			ID: "2", Property: "Tefco Business", Client: "Tefco Corp",
			ListingPrice: 99000.00, Rate3: 2970.00, Rate6: 5940.00, Likely: 2970.00,
			EstimatedClosing: ClosingOn(time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC)),
			ListingStatus:    StatusListed, CommissionStatus: PaymentNotPaid,
		},
		{
			ID: "3", Property: "Frito Lay 5 Acres", Client: "Frito Lay Inc",
			ListingPrice: 404291.33, Rate3: 12128.74, Rate6: 24257.48, Likely: 12128.74,
			EstimatedClosing: ClosingOn(time.Date(2025, time.September, 10, 0, 0, 0, 0, time.UTC)),
			ListingStatus:    StatusPending, CommissionStatus: PaymentNotPaid,
		},
		{
			ID: "4", Property: "Key Bank", Client: "Key Bank Corp",
			ListingPrice: 464062.50, Rate3: 13921.88, Rate6: 27843.75, Likely: 13921.88,
			EstimatedClosing: ClosingOn(time.Date(2025, time.August, 25, 0, 0, 0, 0, time.UTC)),
			ListingStatus:    StatusPending, CommissionStatus: PaymentNotPaid,
		},
		{
			ID: "5", Property: "Cornerstone", Client: "Cornerstone Dev",
			ListingPrice: 309375.00, Rate3: 9281.25, Rate6: 18562.50, Likely: 12375.00,
			EstimatedClosing: ClosingOn(time.Date(2025, time.July, 20, 0, 0, 0, 0, time.UTC)),
			ListingStatus:    StatusListed, CommissionStatus: PaymentNotPaid,
		},
		{
			ID: "6", Property: "Gray Cliff", Client: "Gray Cliff LLC",
			ListingPrice: 173250.00, Rate3: 5197.50, Rate6: 10395.00, Likely: 3712.50,
			EstimatedClosing: ClosingOn(time.Date(2025, time.December, 5, 0, 0, 0, 0, time.UTC)),
			ListingStatus:    StatusPending, CommissionStatus: PaymentNotPaid,
		},
		{
			ID: "7", Property: "Collision Craft", Client: "Collision Craft",
			ListingPrice: 148500.00, Rate3: 4455.00, Rate6: 8910.00, Likely: 4455.00,
			EstimatedClosing: ClosingOn(time.Date(2025, time.November, 15, 0, 0, 0, 0, time.UTC)),
			ListingStatus:    StatusPending, CommissionStatus: PaymentNotPaid,
		},
		{
			ID: "8", Property: "Hearth and Home", Client: "Hearth & Home",
			ListingPrice: 464062.50, Rate3: 13921.88, Rate6: 27843.75, Likely: 13921.88,
			EstimatedClosing: ClosingOn(time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)),
			ListingStatus:    StatusPending, CommissionStatus: PaymentNotPaid,
		},
		{
			ID: "9", Property: "2873 Quincy", Client: "Quincy Investments",
			ListingPrice: 222750.00, Rate3: 6682.50, Rate6: 13365.00, Likely: 6682.50,
			EstimatedClosing: ClosingOn(time.Date(2026, time.February, 28, 0, 0, 0, 0, time.UTC)),
			ListingStatus:    StatusPending, CommissionStatus: PaymentNotPaid,
		},
	}
}
