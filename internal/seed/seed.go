// Package seed loads the startup ticket fixture.
package seed

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/jackscave/service-desk/internal/domain"
	"github.com/jackscave/service-desk/internal/repository"
)

//go:embed fixtures/tickets.yaml
var defaultFixture string

// CategoryResolver resolves the priority snapshot of seeded tickets.
type CategoryResolver interface {
	Resolve(id string) (domain.Category, bool)
}

type fixture struct {
	Tickets []ticketRecord `yaml:"tickets"`
}

type ticketRecord struct {
	ID          int64           `yaml:"id"`
	Title       string          `yaml:"title"`
	Description string          `yaml:"description"`
	Category    string          `yaml:"category"`
	Status      string          `yaml:"status"`
	Tags        []string        `yaml:"tags"`
	Reporter    string          `yaml:"reporter"`
	Created     time.Time       `yaml:"created"`
	Comments    []commentRecord `yaml:"comments"`
}

type commentRecord struct {
	User   string    `yaml:"user"`
	Avatar string    `yaml:"avatar"`
	Text   string    `yaml:"text"`
	Time   time.Time `yaml:"time"`
}

// Default decodes the embedded fixture.
func Default(categories CategoryResolver) ([]domain.Ticket, error) {
	return Decode(strings.NewReader(defaultFixture), categories)
}

// LoadFile decodes the fixture at path.
func LoadFile(path string, categories CategoryResolver) ([]domain.Ticket, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open fixture: %w", err)
	}
	defer f.Close()
	return Decode(f, categories)
}

// Decode reads a YAML fixture. Each ticket takes its priority from its
// category; a ticket naming an unknown category fails the whole fixture.
func Decode(r io.Reader, categories CategoryResolver) ([]domain.Ticket, error) {
	var doc fixture
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return []domain.Ticket{}, nil
		}
		return nil, fmt.Errorf("decode fixture: %w", err)
	}

	tickets := make([]domain.Ticket, 0, len(doc.Tickets))
	for i, rec := range doc.Tickets {
		cat, ok := categories.Resolve(rec.Category)
		if !ok {
			return nil, fmt.Errorf("fixture ticket #%d (id %d): unknown category %q", i, rec.ID, rec.Category)
		}
		if strings.TrimSpace(rec.Title) == "" {
			return nil, fmt.Errorf("fixture ticket #%d (id %d): title required", i, rec.ID)
		}
		status := domain.TicketStatus(rec.Status)
		if status == "" {
			status = domain.TicketStatusOpen
		}
		ticket := domain.Ticket{
			ID:          rec.ID,
			Title:       rec.Title,
			Description: rec.Description,
			CategoryID:  cat.ID,
			Priority:    cat.Priority,
			Status:      status,
			Tags:        repository.NormalizeTags(rec.Tags),
			Comments:    make([]domain.Comment, 0, len(rec.Comments)),
			Reporter:    rec.Reporter,
			CreatedAt:   rec.Created,
		}
		for _, c := range rec.Comments {
			ticket.Comments = append(ticket.Comments, domain.Comment{
				User:   c.User,
				Avatar: c.Avatar,
				Text:   c.Text,
				Time:   c.Time,
			})
		}
		tickets = append(tickets, ticket)
	}
	return tickets, nil
}
