package ticket

import (
	"sort"
	"strings"

	vo "hilla/internal/domain/ticket/valueobjects"
)

// SortMode orders a queue view. Unknown modes fall back to newest.
type SortMode string

const (
	SortNewest       SortMode = "newest"
	SortOldest       SortMode = "oldest"
	SortRatingDesc   SortMode = "rating_desc"
	SortRatingAsc    SortMode = "rating_asc"
	SortPriorityDesc SortMode = "priority_desc"
)

// QueueFilter holds the optional predicates for a queue view. Values
// that are not members of their enum are ignored rather than rejected;
// these filters arrive straight from URL query strings.
type QueueFilter struct {
	Status       string
	Priority     string
	CategorySlug string
	Query        string
}

// BuildQueue filters and sorts a ticket snapshot. avgRatings maps
// ticket ID to average rating; tickets absent from the map order as
// average 0. The input slice is never mutated.
func BuildQueue(tickets []*Ticket, avgRatings map[uint]float64, filter QueueFilter, mode SortMode) []*Ticket {
	result := make([]*Ticket, 0, len(tickets))

	status := vo.TicketStatus(filter.Status)
	priority := vo.Priority(filter.Priority)
	query := strings.ToLower(strings.TrimSpace(filter.Query))

	for _, t := range tickets {
		if status.IsValid() && t.Status() != status {
			continue
		}
		if priority.IsValid() && t.Priority() != priority {
			continue
		}
		if filter.CategorySlug != "" && t.Category().Slug() != filter.CategorySlug {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(t.Subject()), query) &&
			!strings.Contains(strings.ToLower(t.Message()), query) {
			continue
		}
		result = append(result, t)
	}

	avg := func(t *Ticket) float64 {
		return avgRatings[t.ID()]
	}

	// Ties in every non-chronological mode break to newest first.
	newerFirst := func(a, b *Ticket) bool {
		return a.CreatedAt().After(b.CreatedAt())
	}

	switch mode {
	case SortOldest:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].CreatedAt().Before(result[j].CreatedAt())
		})
	case SortRatingDesc:
		sort.SliceStable(result, func(i, j int) bool {
			ai, aj := avg(result[i]), avg(result[j])
			if ai != aj {
				return ai > aj
			}
			return newerFirst(result[i], result[j])
		})
	case SortRatingAsc:
		sort.SliceStable(result, func(i, j int) bool {
			ai, aj := avg(result[i]), avg(result[j])
			if ai != aj {
				return ai < aj
			}
			return newerFirst(result[i], result[j])
		})
	case SortPriorityDesc:
		sort.SliceStable(result, func(i, j int) bool {
			si, sj := result[i].Priority().Severity(), result[j].Priority().Severity()
			if si != sj {
				return si > sj
			}
			return newerFirst(result[i], result[j])
		})
	default:
		// SortNewest and anything unrecognized.
		sort.SliceStable(result, func(i, j int) bool {
			return newerFirst(result[i], result[j])
		})
	}

	return result
}
