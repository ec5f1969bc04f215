package handlers

import (
	"time"

	"github.com/jackscave/service-desk/internal/api/dto"
	"github.com/jackscave/service-desk/internal/catalog"
	"github.com/jackscave/service-desk/internal/domain"
	"github.com/jackscave/service-desk/internal/service"
	"github.com/jackscave/service-desk/internal/stats"
)

type presenter struct {
	registry *catalog.Registry
	now      func() time.Time
}

func (p presenter) ticketSummary(ticket *domain.Ticket) dto.TicketSummary {
	label, err := catalog.PriorityLabel(ticket.Priority)
	if err != nil {
		label = string(ticket.Priority)
	}
	tags := ticket.Tags
	if tags == nil {
		tags = []string{}
	}
	return dto.TicketSummary{
		ID:                 ticket.ID,
		Title:              ticket.Title,
		Description:        ticket.Description,
		Category:           ticket.CategoryID,
		CategoryColorClass: p.registry.CategoryColorClass(ticket.CategoryID),
		Priority:           ticket.Priority,
		PriorityLabel:      label,
		PriorityColorClass: catalog.PriorityColorClass(ticket.Priority),
		Status:             ticket.Status,
		Tags:               tags,
		CommentCount:       len(ticket.Comments),
		Reporter:           ticket.Reporter,
		CreatedAt:          ticket.CreatedAt,
		CreatedLabel:       relativeLabel(ticket.CreatedAt, p.now()),
	}
}

func (p presenter) ticketSummaries(tickets []domain.Ticket) []dto.TicketSummary {
	items := make([]dto.TicketSummary, 0, len(tickets))
	for i := range tickets {
		items = append(items, p.ticketSummary(&tickets[i]))
	}
	return items
}

func (p presenter) ticketDetail(ticket *domain.Ticket) dto.TicketDetailResponse {
	now := p.now()
	comments := make([]dto.CommentResponse, 0, len(ticket.Comments))
	for _, c := range ticket.Comments {
		comments = append(comments, dto.CommentResponse{
			User:      c.User,
			Avatar:    c.Avatar,
			Text:      c.Text,
			Time:      c.Time,
			TimeLabel: relativeLabel(c.Time, now),
		})
	}
	detail := dto.TicketDetailResponse{
		TicketSummary: p.ticketSummary(ticket),
		Comments:      comments,
	}
	if cat, ok := p.registry.Resolve(ticket.CategoryID); ok {
		detail.CategoryName = cat.Name
		detail.SLATime = cat.SLATime
	}
	return detail
}

func (p presenter) board(columns []service.BoardColumn) []dto.BoardColumnResponse {
	resp := make([]dto.BoardColumnResponse, 0, len(columns))
	for _, col := range columns {
		resp = append(resp, dto.BoardColumnResponse{
			ID:      col.Column.ID,
			Name:    col.Column.Name,
			Count:   len(col.Tickets),
			Tickets: p.ticketSummaries(col.Tickets),
		})
	}
	return resp
}

func (p presenter) statistics(s service.Statistics) dto.StatsResponse {
	resp := dto.StatsResponse{
		Categories: make([]dto.CategoryStat, 0, len(s.Categories)),
		TopTags:    make([]dto.TagStat, 0, len(s.TopTags)),
		Summary: dto.SummaryStat{
			Total:    s.Summary.Total,
			Open:     s.Summary.Open,
			Resolved: s.Summary.Resolved,
			Critical: s.Summary.Critical,
		},
	}
	for _, c := range s.Categories {
		resp.Categories = append(resp.Categories, dto.CategoryStat{
			ID:         c.CategoryID,
			Name:       c.Name,
			ColorClass: p.registry.CategoryColorClass(c.CategoryID),
			Count:      c.Count,
			Percentage: stats.Percent(c.Count, s.Summary.Total),
		})
	}
	// TopTags is sorted, so the first entry is the tallest bar.
	maxCount := 0
	if len(s.TopTags) > 0 {
		maxCount = s.TopTags[0].Count
	}
	for _, t := range s.TopTags {
		resp.TopTags = append(resp.TopTags, dto.TagStat{
			Tag:       t.Tag,
			Count:     t.Count,
			BarHeight: stats.Percent(t.Count, maxCount),
		})
	}
	return resp
}

func categoryResponse(registry *catalog.Registry, cat domain.Category) dto.CategoryResponse {
	label, err := catalog.PriorityLabel(cat.Priority)
	if err != nil {
		label = string(cat.Priority)
	}
	return dto.CategoryResponse{
		ID:            cat.ID,
		Name:          cat.Name,
		Priority:      cat.Priority,
		PriorityLabel: label,
		Color:         cat.Color,
		ColorClass:    registry.CategoryColorClass(cat.ID),
		Description:   cat.Description,
		SLATime:       cat.SLATime,
	}
}
