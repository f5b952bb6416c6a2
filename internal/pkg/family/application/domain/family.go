package family

import (
	"errors"
	"strings"
	"time"
)

// Domain-level errors for family behaviors
var (
	ErrAlreadyInFamily = errors.New("family: user already has a family profile")
	ErrAlreadyLinked   = errors.New("family: second parent is already linked")
	ErrChildNotFound   = errors.New("family: child not found")
)

// Child belongs to exactly one family. Every descriptive field except the
// name is optional.
type Child struct {
	ID          string     `db:"id"`
	FamilyID    string     `db:"family_id"`
	Name        string     `db:"name"`
	DateOfBirth time.Time  `db:"date_of_birth"`
	Grade       *string    `db:"grade"`
	School      *string    `db:"school"`
	Allergies   *string    `db:"allergies"`
	Medications *string    `db:"medications"`
	Notes       *string    `db:"notes"`
}

// Family is the tenant scope: up to two parent accounts and their children.
// Parent2Email is nil until the co-parent accepts the link.
type Family struct {
	ID                 string     `db:"id"`
	FamilyName         string     `db:"family_name"`
	Parent1Email       string     `db:"parent1_email"`
	Parent2Email       *string    `db:"parent2_email"`
	Children           []Child    `db:"-"`
	CustodyArrangement *string    `db:"custody_arrangement"`
	CreatedAt          time.Time  `db:"created_at"`
	LinkedAt           *time.Time `db:"linked_at"`
}

// IsLinked reports whether both parent slots are filled.
func (f *Family) IsLinked() bool {
	return f != nil && f.Parent2Email != nil && strings.TrimSpace(*f.Parent2Email) != ""
}

// ParentEmails returns the filled parent slots in order.
func (f *Family) ParentEmails() []string {
	emails := []string{f.Parent1Email}
	if f.IsLinked() {
		emails = append(emails, *f.Parent2Email)
	}
	return emails
}

// OtherParent returns the co-parent of the given email, or "" when the family
// isn't linked or the email isn't a parent of this family.
func (f *Family) OtherParent(email string) string {
	if !f.IsLinked() {
		return ""
	}
	switch email {
	case f.Parent1Email:
		return *f.Parent2Email
	case *f.Parent2Email:
		return f.Parent1Email
	}
	return ""
}

// NewFamily validates creation input. The requester becomes parent1.
func NewFamily(familyName, parent1Email string, parent2Email, custodyArrangement *string) (*Family, error) {
	familyName = strings.TrimSpace(familyName)
	if familyName == "" {
		return nil, errors.New("family: familyName is required")
	}
	if parent1Email == "" {
		return nil, errors.New("family: parent1 email is required")
	}

	f := &Family{
		FamilyName:         familyName,
		Parent1Email:       parent1Email,
		CustodyArrangement: custodyArrangement,
		CreatedAt:          time.Now().UTC(),
	}
	if parent2Email != nil && strings.TrimSpace(*parent2Email) != "" {
		p2 := strings.ToLower(strings.TrimSpace(*parent2Email))
		now := f.CreatedAt
		f.Parent2Email = &p2
		f.LinkedAt = &now
	}
	return f, nil
}

// NewChild validates child input.
func NewChild(familyID, name string, dateOfBirth time.Time) (*Child, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("family: child name is required")
	}
	if familyID == "" {
		return nil, errors.New("family: family id is required")
	}
	if dateOfBirth.IsZero() {
		return nil, errors.New("family: dateOfBirth is required")
	}
	return &Child{FamilyID: familyID, Name: name, DateOfBirth: dateOfBirth}, nil
}
