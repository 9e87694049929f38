// Package report computes grouped counts over already-fetched appointment
// data. Every function here is a pure function of its inputs; fetching the
// rows is the caller's problem.
package report

import (
	"fmt"
	"sort"
	"time"

	"client-scheduler/internal/model"
)

// Count is one row of a grouped report.
type Count struct {
	Label string `json:"label"`
	Total int    `json:"total"`
}

// countBy tallies appointments per key, one output row per distinct key in
// first-seen order. Every appointment lands in exactly one group, absent or
// zero-valued keys included, so totals always sum to len(apps).
func countBy[K comparable](apps []model.Appointment, key func(model.Appointment) K, label func(K) string) []Count {
	totals := make(map[K]int)
	var order []K
	for _, a := range apps {
		k := key(a)
		if _, seen := totals[k]; !seen {
			order = append(order, k)
		}
		totals[k]++
	}

	out := make([]Count, 0, len(order))
	for _, k := range order {
		out = append(out, Count{Label: label(k), Total: totals[k]})
	}
	return out
}

// CountByType groups appointments by their type field. Matching is exact and
// case-sensitive; only observed types produce rows.
func CountByType(apps []model.Appointment) []Count {
	return countBy(apps,
		func(a model.Appointment) string { return a.Type },
		func(t string) string { return t },
	)
}

type yearMonth struct {
	year  int
	month time.Month
}

// CountByMonth groups appointments by the calendar month of their start time,
// in the stored time reference. Rows come out chronologically; labels are
// month names, with the year appended when the input spans more than one.
func CountByMonth(apps []model.Appointment) []Count {
	sorted := make([]model.Appointment, len(apps))
	copy(sorted, apps)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Start.Before(sorted[j].Start) })

	multiYear := false
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Start.Year() != sorted[0].Start.Year() {
			multiYear = true
			break
		}
	}

	return countBy(sorted,
		func(a model.Appointment) yearMonth {
			return yearMonth{a.Start.Year(), a.Start.Month()}
		},
		func(ym yearMonth) string {
			if multiYear {
				return fmt.Sprintf("%s %d", ym.month, ym.year)
			}
			return ym.month.String()
		},
	)
}

// CountByCustomer groups appointments by customer reference and labels each
// group with the customer's display name. A reference that resolves to no
// customer keeps its own group under a fallback label.
func CountByCustomer(apps []model.Appointment, customers []model.Customer) []Count {
	names := make(map[int]string, len(customers))
	for _, c := range customers {
		names[c.ID] = c.Name
	}
	return countBy(apps,
		func(a model.Appointment) int { return a.CustomerID },
		func(id int) string {
			if name, ok := names[id]; ok {
				return name
			}
			return fmt.Sprintf("customer #%d", id)
		},
	)
}

// ForContact returns the appointments whose contact reference equals
// contactID, preserving input order. No matches is an empty slice, not an
// error.
func ForContact(apps []model.Appointment, contactID int) []model.Appointment {
	out := []model.Appointment{}
	for _, a := range apps {
		if a.ContactID == contactID {
			out = append(out, a)
		}
	}
	return out
}
