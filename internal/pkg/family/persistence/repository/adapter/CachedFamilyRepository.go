package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	cacheport "github.com/carolinadevia11/Bridge/internal/infrastructure/cache/port"
	family "github.com/carolinadevia11/Bridge/internal/pkg/family/application/domain"
	repository "github.com/carolinadevia11/Bridge/internal/pkg/family/persistence/repository/port"
)

const familyCacheTTL = 5 * time.Minute

// CachedFamilyRepository decorates a FamilyRepository with a read-through
// cache on the parent-email lookup, which is hit by every messaging request.
// Writes invalidate the affected keys; a cache outage degrades to the
// underlying repository.
type CachedFamilyRepository struct {
	next  repository.FamilyRepository
	cache cacheport.Cache
}

func NewCachedFamilyRepository(next repository.FamilyRepository, cache cacheport.Cache) *CachedFamilyRepository {
	return &CachedFamilyRepository{next: next, cache: cache}
}

var _ repository.FamilyRepository = (*CachedFamilyRepository)(nil)

func familyKey(email string) string { return "family:parent:" + email }

func (r *CachedFamilyRepository) FindByParentEmail(ctx context.Context, email string) (*family.Family, error) {
	if raw, err := r.cache.Get(ctx, familyKey(email)); err == nil {
		var f family.Family
		if json.Unmarshal([]byte(raw), &f) == nil {
			return &f, nil
		}
	} else if !errors.Is(err, cacheport.ErrMiss) {
		log.Printf("family cache: get: %v", err)
	}

	f, err := r.next.FindByParentEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(f); err == nil {
		if err := r.cache.Set(ctx, familyKey(email), string(raw), familyCacheTTL); err != nil {
			log.Printf("family cache: set: %v", err)
		}
	}
	return f, nil
}

func (r *CachedFamilyRepository) invalidate(ctx context.Context, f *family.Family) {
	if f == nil {
		return
	}
	keys := make([]string, 0, 2)
	for _, email := range f.ParentEmails() {
		keys = append(keys, familyKey(email))
	}
	if _, err := r.cache.Del(ctx, keys...); err != nil {
		log.Printf("family cache: del: %v", err)
	}
}

func (r *CachedFamilyRepository) invalidateByID(ctx context.Context, familyID string) {
	f, err := r.next.FindByID(ctx, familyID)
	if err != nil {
		return
	}
	r.invalidate(ctx, f)
}

func (r *CachedFamilyRepository) Create(ctx context.Context, f family.Family) (string, error) {
	id, err := r.next.Create(ctx, f)
	if err == nil {
		r.invalidate(ctx, &f)
	}
	return id, err
}

func (r *CachedFamilyRepository) FindByID(ctx context.Context, id string) (*family.Family, error) {
	return r.next.FindByID(ctx, id)
}

func (r *CachedFamilyRepository) LinkSecondParent(ctx context.Context, familyID, parent2Email string) error {
	err := r.next.LinkSecondParent(ctx, familyID, parent2Email)
	if err == nil {
		if _, derr := r.cache.Del(ctx, familyKey(parent2Email)); derr != nil {
			log.Printf("family cache: del: %v", derr)
		}
		r.invalidateByID(ctx, familyID)
	}
	return err
}

func (r *CachedFamilyRepository) AddChild(ctx context.Context, c family.Child) (string, error) {
	id, err := r.next.AddChild(ctx, c)
	if err == nil {
		r.invalidateByID(ctx, c.FamilyID)
	}
	return id, err
}

func (r *CachedFamilyRepository) UpdateChild(ctx context.Context, c family.Child) error {
	err := r.next.UpdateChild(ctx, c)
	if err == nil {
		r.invalidateByID(ctx, c.FamilyID)
	}
	return err
}

func (r *CachedFamilyRepository) RemoveChild(ctx context.Context, familyID, childID string) error {
	err := r.next.RemoveChild(ctx, familyID, childID)
	if err == nil {
		r.invalidateByID(ctx, familyID)
	}
	return err
}
