package ticket

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "hilla/internal/domain/ticket/valueobjects"
)

func statsCategory(t *testing.T, id uint, name, slug string) *Category {
	t.Helper()
	c, err := ReconstructCategory(id, name, slug, time.Now())
	require.NoError(t, err)
	return c
}

func statsTicket(t *testing.T, id uint, c *Category, status vo.TicketStatus, priority vo.Priority, name string, anonymous bool) *Ticket {
	t.Helper()
	now := time.Now()
	email := ""
	if name != "" {
		email = "someone@example.edu"
	}
	tk, err := ReconstructTicket(
		id, nil, c,
		vo.TypeQuestion, priority, status,
		name, email,
		"subject", "message",
		"", false, anonymous,
		now, now,
	)
	require.NoError(t, err)
	return tk
}

func statsRating(t *testing.T, id, ticketID uint, score int) *Rating {
	t.Helper()
	r, err := ReconstructRating(id, ticketID, score, "", "", time.Now())
	require.NoError(t, err)
	return r
}

func TestAverageScore_NilWhenNoRatings(t *testing.T) {
	assert.Nil(t, AverageScore(nil))
	assert.Nil(t, AverageScore([]*Rating{}))
}

func TestAverageScore_RoundsToTwoDecimals(t *testing.T) {
	ratings := []*Rating{
		statsRating(t, 1, 1, 5),
		statsRating(t, 2, 1, 4),
		statsRating(t, 3, 1, 4),
	}

	avg := AverageScore(ratings)
	require.NotNil(t, avg)
	assert.InDelta(t, 4.33, *avg, 0.0001)
}

func TestComputeDashboardStats_Empty(t *testing.T) {
	stats := ComputeDashboardStats(nil, nil)

	assert.Zero(t, stats.TotalTickets)
	assert.Nil(t, stats.GlobalAverageRating)
	assert.Empty(t, stats.TopCategories)
	assert.Empty(t, stats.TopSubmitters)

	// Every enum member is present even with no tickets.
	assert.Equal(t, int64(0), stats.StatusCounts["open"])
	assert.Equal(t, int64(0), stats.StatusCounts["in_progress"])
	assert.Equal(t, int64(0), stats.StatusCounts["closed"])
	assert.Equal(t, int64(0), stats.PriorityCounts["low"])
	assert.Equal(t, int64(0), stats.PriorityCounts["medium"])
	assert.Equal(t, int64(0), stats.PriorityCounts["high"])
}

func TestComputeDashboardStats_Counts(t *testing.T) {
	it := statsCategory(t, 1, "IT", "it")
	lib := statsCategory(t, 2, "Library", "library")

	tickets := []*Ticket{
		statsTicket(t, 1, it, vo.StatusOpen, vo.PriorityHigh, "Maya", false),
		statsTicket(t, 2, it, vo.StatusClosed, vo.PriorityLow, "Maya", false),
		statsTicket(t, 3, lib, vo.StatusOpen, vo.PriorityMedium, "", true),
	}
	ratings := []*Rating{
		statsRating(t, 1, 1, 5),
		statsRating(t, 2, 2, 2),
	}

	stats := ComputeDashboardStats(tickets, ratings)

	assert.Equal(t, int64(3), stats.TotalTickets)
	assert.Equal(t, int64(2), stats.StatusCounts["open"])
	assert.Equal(t, int64(1), stats.StatusCounts["closed"])
	assert.Equal(t, int64(1), stats.PriorityCounts["high"])

	require.NotNil(t, stats.GlobalAverageRating)
	assert.InDelta(t, 3.5, *stats.GlobalAverageRating, 0.0001)

	require.Len(t, stats.TopCategories, 2)
	assert.Equal(t, "IT", stats.TopCategories[0].Name)
	assert.Equal(t, int64(2), stats.TopCategories[0].Count)

	// The anonymous submission never reaches the submitter board.
	require.Len(t, stats.TopSubmitters, 1)
	assert.Equal(t, "Maya", stats.TopSubmitters[0].Name)
	assert.Equal(t, int64(2), stats.TopSubmitters[0].TicketCount)
	require.NotNil(t, stats.TopSubmitters[0].AverageRating)
	assert.InDelta(t, 3.5, *stats.TopSubmitters[0].AverageRating, 0.0001)
}

func TestComputeDashboardStats_LeaderboardsCappedAtFive(t *testing.T) {
	var tickets []*Ticket
	for i := uint(1); i <= 7; i++ {
		c := statsCategory(t, i, "Cat"+string(rune('A'+i-1)), "cat"+string(rune('a'+i-1)))
		tickets = append(tickets, statsTicket(t, i, c, vo.StatusOpen, vo.PriorityLow, "Person"+string(rune('A'+i-1)), false))
	}

	stats := ComputeDashboardStats(tickets, nil)

	assert.Len(t, stats.TopCategories, 5)
	assert.Len(t, stats.TopSubmitters, 5)
}

func TestComputeDashboardStats_CategoryTieBreaksByName(t *testing.T) {
	a := statsCategory(t, 1, "Alpha", "alpha")
	b := statsCategory(t, 2, "Beta", "beta")

	tickets := []*Ticket{
		statsTicket(t, 1, b, vo.StatusOpen, vo.PriorityLow, "X", false),
		statsTicket(t, 2, a, vo.StatusOpen, vo.PriorityLow, "Y", false),
	}

	stats := ComputeDashboardStats(tickets, nil)

	require.Len(t, stats.TopCategories, 2)
	assert.Equal(t, "Alpha", stats.TopCategories[0].Name)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 4.33, Round2(4.3333))
	assert.Equal(t, 4.67, Round2(4.6666))
	assert.Equal(t, 5.0, Round2(5))
}
