// Package inbox provides the mock email inbox the demo pipeline feeds on.
package inbox

import (
	"errors"
	"fmt"

	"github.com/MelisaYasak/mail-procurement/pkg/models"
)

// ErrEmailNotFound indicates no email exists for the given identifier.
var ErrEmailNotFound = errors.New("email not found")

// IsEmailNotFound checks if an error indicates an email was not found.
func IsEmailNotFound(err error) bool {
	return errors.Is(err, ErrEmailNotFound)
}

// Repository is an in-memory inbox seeded with the demo fixtures.
type Repository struct {
	emails []models.Email
}

func NewRepository() *Repository {
	return &Repository{emails: mockEmails()}
}

// NewRepositoryWith creates an inbox holding the given emails.
func NewRepositoryWith(emails []models.Email) *Repository {
	return &Repository{emails: emails}
}

// List returns every email in the inbox.
func (r *Repository) List() []models.Email {
	out := make([]models.Email, len(r.emails))
	copy(out, r.emails)

	return out
}

// ListByCategory returns the emails in the given category, preserving order.
func (r *Repository) ListByCategory(category string) []models.Email {
	var out []models.Email

	for _, email := range r.emails {
		if email.Category == category {
			out = append(out, email)
		}
	}

	return out
}

// GetByID returns the email with the given identifier.
func (r *Repository) GetByID(id int) (models.Email, error) {
	for _, email := range r.emails {
		if email.ID == id {
			return email, nil
		}
	}

	return models.Email{}, fmt.Errorf("email %d: %w", id, ErrEmailNotFound)
}

// BatchEmails returns the fixture set used by the batch evaluation runner.
// The bodies are intentionally a mix of Turkish and terse phrasing to
// exercise the extractor.
func BatchEmails() []models.Email {
	bodies := []string{
		"5 adet laptop satın alınmasını rica ediyorum. Bütçe 50000 TL.",
		"10 adet telefon alınacak. Bütçe 30000 TL.",
		"3 adet monitör gerekli. Bütçe 15000 TL.",
		"100 adet iPhone 15 Pro alınacak. Bütçe sadece 5000 TL.",
		"50 adet sunucu istiyoruz. Bütçe 10000 TL.",
		"2 adet araba almak istiyorum. Bütçe 100000 TL.",
	}

	emails := make([]models.Email, 0, len(bodies))
	for i, body := range bodies {
		emails = append(emails, models.Email{
			ID:       i + 1,
			Sender:   "Batch Fixture",
			Subject:  fmt.Sprintf("Purchase Request #%d", i+1),
			Body:     body,
			Category: models.CategoryProcurementRequest,
			Priority: "Medium",
		})
	}

	return emails
}

func mockEmails() []models.Email {
	return []models.Email{
		{
			ID:       1,
			Sender:   "Cassie Matthews",
			Subject:  "Urgent: Branded Water Bottles Needed",
			Body:     "Hi, we need 300 branded water bottles for the upcoming conference. Budget is 15000 TL. Please process ASAP.",
			Category: models.CategoryProcurementRequest,
			Priority: "High",
		},
		{
			ID:       2,
			Sender:   "John Smith",
			Subject:  "Office Supplies Request",
			Body:     "Please order 50 notebooks and 100 pens. Budget: 2000 TL.",
			Category: models.CategoryProcurementRequest,
			Priority: "Medium",
		},
		{
			ID:       3,
			Sender:   "Sarah Connor",
			Subject:  "Meeting Room Update",
			Body:     "The meeting room schedule has been updated.",
			Category: models.CategoryGeneral,
			Priority: "Low",
		},
		{
			ID:       4,
			Sender:   "Mike Johnson",
			Subject:  "Laptop Purchase Request",
			Body:     "Need 10 laptops for new employees. Budget is 80000 TL.",
			Category: models.CategoryProcurementRequest,
			Priority: "High",
		},
	}
}
