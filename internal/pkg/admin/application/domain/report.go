package admin

import (
	"time"

	family "github.com/carolinadevia11/Bridge/internal/pkg/family/application/domain"
)

// ParentAccount is the slice of a user account the reporting views expose.
// Password hashes never leave the repository layer.
type ParentAccount struct {
	ID        string
	Email     string
	FirstName string
	LastName  string
	Role      string
	CreatedAt time.Time
}

// FamilyOverview joins a family record with the accounts behind its parent
// slots. Parent2 is nil until the family is linked.
type FamilyOverview struct {
	ID                 string
	FamilyName         string
	Parent1            ParentAccount
	Parent2            *ParentAccount
	Children           []family.Child
	CustodyArrangement *string
	CreatedAt          time.Time
	LinkedAt           *time.Time
}

// IsLinked reports whether the second parent slot is filled.
func (f *FamilyOverview) IsLinked() bool { return f.Parent2 != nil }

// Stats is the back-office dashboard roll-up.
type Stats struct {
	TotalFamilies    int64
	LinkedFamilies   int64
	UnlinkedFamilies int64
	TotalUsers       int64
	TotalChildren    int64
}

// UserOverview is one account row annotated with its family membership.
type UserOverview struct {
	ID         string
	FirstName  string
	LastName   string
	Email      string
	Role       string
	CreatedAt  time.Time
	FamilyID   *string
	FamilyName *string
}

// HasFamily reports whether the user occupies a parent slot somewhere.
func (u *UserOverview) HasFamily() bool { return u.FamilyID != nil }
