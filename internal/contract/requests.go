package contract

import "github.com/oahconnect/carelink/internal/app"

type CreateRequestInput = app.CreateRequestInput

type RequestFilter = app.RequestFilter

type RequestSort = app.RequestSort

const (
	SortNewestFirst RequestSort = app.SortNewestFirst
	SortOldestFirst RequestSort = app.SortOldestFirst
	SortMostUrgent  RequestSort = app.SortMostUrgent
)
