package contract

import "github.com/oahconnect/carelink/internal/app"

type OverviewResponse = app.OverviewResponse

type AnalyticsResponse = app.AnalyticsResponse
