package app

// DonateInput carries a donation from the fundraising form. An empty
// Donor is recorded as the anonymous donor.
type DonateInput struct {
	Amount int
	Donor  string
}

// CampaignTotal is the aggregate raised for one campaign.
type CampaignTotal struct {
	Campaign string
	Amount   int
	Count    int
}

// DonationStats summarizes the fundraising campaign to date.
type DonationStats struct {
	Total      int
	Count      int
	Average    float64
	Largest    int
	Goal       int
	GoalPct    float64
	ByCampaign []CampaignTotal
	ByDay      []DayTotal
}
