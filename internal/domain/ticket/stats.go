package ticket

import (
	"math"
	"sort"

	vo "hilla/internal/domain/ticket/valueobjects"
)

const leaderboardSize = 5

// CategoryCount is one row of the category leaderboard.
type CategoryCount struct {
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Count int64  `json:"count"`
}

// SubmitterStat is one row of the submitter leaderboard.
type SubmitterStat struct {
	Name          string   `json:"name"`
	TicketCount   int64    `json:"ticket_count"`
	AverageRating *float64 `json:"average_rating"`
}

// DashboardStats is the aggregate snapshot behind the dashboard tiles.
type DashboardStats struct {
	TotalTickets        int64            `json:"total_tickets"`
	StatusCounts        map[string]int64 `json:"status_counts"`
	PriorityCounts      map[string]int64 `json:"priority_counts"`
	TopCategories       []CategoryCount  `json:"top_categories"`
	GlobalAverageRating *float64         `json:"global_average_rating"`
	TopSubmitters       []SubmitterStat  `json:"top_submitters"`
}

// Round2 rounds to two decimal places, the precision ratings are
// reported at.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// AverageScore computes the mean of the given ratings rounded to two
// decimals, or nil when there are none. A ticket with no ratings has
// no average, never zero.
func AverageScore(ratings []*Rating) *float64 {
	if len(ratings) == 0 {
		return nil
	}
	var sum int
	for _, r := range ratings {
		sum += r.Score()
	}
	avg := Round2(float64(sum) / float64(len(ratings)))
	return &avg
}

// ComputeDashboardStats aggregates one consistent snapshot of tickets
// and ratings. Callers are responsible for loading both inside the
// same read transaction so the tiles on a single render agree.
func ComputeDashboardStats(tickets []*Ticket, ratings []*Rating) *DashboardStats {
	stats := &DashboardStats{
		TotalTickets:   int64(len(tickets)),
		StatusCounts:   make(map[string]int64),
		PriorityCounts: make(map[string]int64),
	}

	for _, s := range vo.AllStatuses() {
		stats.StatusCounts[s.String()] = 0
	}
	for _, p := range vo.AllPriorities() {
		stats.PriorityCounts[p.String()] = 0
	}

	categoryCounts := make(map[uint]*CategoryCount)
	submitterTickets := make(map[string][]uint)

	for _, t := range tickets {
		stats.StatusCounts[t.Status().String()]++
		stats.PriorityCounts[t.Priority().String()]++

		c := t.Category()
		if cc, ok := categoryCounts[c.ID()]; ok {
			cc.Count++
		} else {
			categoryCounts[c.ID()] = &CategoryCount{Name: c.Name(), Slug: c.Slug(), Count: 1}
		}

		if !t.IsAnonymous() && t.Name() != "" {
			submitterTickets[t.Name()] = append(submitterTickets[t.Name()], t.ID())
		}
	}

	ratingsByTicket := make(map[uint][]*Rating)
	var scoreSum int
	for _, r := range ratings {
		ratingsByTicket[r.TicketID()] = append(ratingsByTicket[r.TicketID()], r)
		scoreSum += r.Score()
	}

	if len(ratings) > 0 {
		avg := Round2(float64(scoreSum) / float64(len(ratings)))
		stats.GlobalAverageRating = &avg
	}

	stats.TopCategories = topCategories(categoryCounts)
	stats.TopSubmitters = topSubmitters(submitterTickets, ratingsByTicket)

	return stats
}

func topCategories(counts map[uint]*CategoryCount) []CategoryCount {
	all := make([]CategoryCount, 0, len(counts))
	for _, cc := range counts {
		all = append(all, *cc)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Count != all[j].Count {
			return all[i].Count > all[j].Count
		}
		return all[i].Name < all[j].Name
	})
	if len(all) > leaderboardSize {
		all = all[:leaderboardSize]
	}
	return all
}

func topSubmitters(byName map[string][]uint, ratingsByTicket map[uint][]*Rating) []SubmitterStat {
	all := make([]SubmitterStat, 0, len(byName))
	for name, ticketIDs := range byName {
		var ticketRatings []*Rating
		for _, id := range ticketIDs {
			ticketRatings = append(ticketRatings, ratingsByTicket[id]...)
		}
		all = append(all, SubmitterStat{
			Name:          name,
			TicketCount:   int64(len(ticketIDs)),
			AverageRating: AverageScore(ticketRatings),
		})
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].TicketCount != all[j].TicketCount {
			return all[i].TicketCount > all[j].TicketCount
		}
		return all[i].Name < all[j].Name
	})
	if len(all) > leaderboardSize {
		all = all[:leaderboardSize]
	}
	return all
}
