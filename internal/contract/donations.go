package contract

import "github.com/oahconnect/carelink/internal/app"

type DonateInput = app.DonateInput

type CampaignTotal = app.CampaignTotal

type DonationStats = app.DonationStats
