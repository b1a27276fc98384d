package service

import (
	"sort"

	"github.com/oahconnect/carelink/internal/contract"
	"github.com/oahconnect/carelink/internal/domain"
)

// filterRequests returns the requests matching every set field of the
// filter, preserving the input order. The input slice is not modified.
func filterRequests(requests []*domain.ServiceRequest, f contract.RequestFilter) []*domain.ServiceRequest {
	out := make([]*domain.ServiceRequest, 0, len(requests))
	for _, r := range requests {
		if f.Status != "" && r.Status != f.Status {
			continue
		}
		if f.Urgency != "" && r.Urgency != f.Urgency {
			continue
		}
		if f.Resident != "" && r.Resident != f.Resident {
			continue
		}
		if f.Type != "" && r.Type != f.Type {
			continue
		}
		if !r.Matches(f.Query) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// sortRequests orders a filtered listing in place. Sorts are stable so
// that equal elements keep their repository order (newest seq first).
func sortRequests(requests []*domain.ServiceRequest, by contract.RequestSort) {
	switch by {
	case contract.SortOldestFirst:
		sort.SliceStable(requests, func(i, j int) bool {
			return requests[i].Seq < requests[j].Seq
		})
	case contract.SortMostUrgent:
		sort.SliceStable(requests, func(i, j int) bool {
			return requests[i].Urgency.Rank() > requests[j].Urgency.Rank()
		})
	default:
		// SortNewestFirst matches the repository order already.
		sort.SliceStable(requests, func(i, j int) bool {
			return requests[i].Seq > requests[j].Seq
		})
	}
}

// filterTasks returns the tasks whose displayed fields match the query,
// preserving board order.
func filterTasks(tasks []*domain.VolunteerTask, query string) []*domain.VolunteerTask {
	if query == "" {
		return tasks
	}
	out := make([]*domain.VolunteerTask, 0, len(tasks))
	for _, t := range tasks {
		if t.Matches(query) {
			out = append(out, t)
		}
	}
	return out
}
