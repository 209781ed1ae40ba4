package services

import (
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"water_store/internal/repository"
)

// BranchOption is one entry of the branches-by-state cascade.
type BranchOption struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// ProductInfo is the quick-info payload behind the order form.
type ProductInfo struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Price          string  `json:"price"`
	TrackInventory bool    `json:"track_inventory"`
	StockQty       int     `json:"stock_qty"`
	ImageURL       *string `json:"image_url"`
}

type LookupService interface {
	BranchesByState(stateID string) ([]BranchOption, error)
	ProductInfo(productID string) (*ProductInfo, error)
}

type lookupService struct {
	branchRepo  repository.BranchRepository
	productRepo repository.ProductRepository
	cache       Cache
	cacheTTL    time.Duration
}

func NewLookupService(
	branchRepo repository.BranchRepository,
	productRepo repository.ProductRepository,
	cache Cache,
	cacheTTL time.Duration,
) LookupService {
	return &lookupService{
		branchRepo:  branchRepo,
		productRepo: productRepo,
		cache:       cache,
		cacheTTL:    cacheTTL,
	}
}

// BranchesByState returns the active branches of a state ordered by name. A
// missing, malformed or unknown state yields an empty result set, never an
// error.
func (s *lookupService) BranchesByState(stateID string) ([]BranchOption, error) {
	results := make([]BranchOption, 0)

	stateID = strings.TrimSpace(stateID)
	if stateID == "" {
		return results, nil
	}
	id, err := strconv.ParseUint(stateID, 10, 32)
	if err != nil {
		return results, nil
	}

	if s.cache != nil {
		var cached []BranchOption
		if err := s.cache.GetBranchesByState(stateID, &cached); err == nil {
			return cached, nil
		}
	}

	branches, err := s.branchRepo.GetActiveByState(uint(id))
	if err != nil {
		return nil, err
	}
	for _, b := range branches {
		results = append(results, BranchOption{ID: b.ID, Name: b.Name})
	}

	if s.cache != nil {
		if err := s.cache.SetBranchesByState(stateID, results, s.cacheTTL); err != nil {
			log.Printf("Warning: failed to cache branches for state %s: %v", stateID, err)
		}
	}

	return results, nil
}

// ProductInfo returns name, price, inventory data and the effective display
// image for an active product.
func (s *lookupService) ProductInfo(productID string) (*ProductInfo, error) {
	// Cache keys use the canonical uuid form so invalidation always hits
	// the entry regardless of how the query spelled the id.
	id, err := uuid.Parse(strings.TrimSpace(productID))
	if err != nil {
		return nil, ErrNotFound
	}
	key := id.String()

	if s.cache != nil {
		var cached ProductInfo
		if err := s.cache.GetProductInfo(key, &cached); err == nil {
			return &cached, nil
		}
	}

	product, err := s.productRepo.GetActiveByID(id)
	if err != nil {
		return nil, ErrNotFound
	}

	info := &ProductInfo{
		ID:             product.ID.String(),
		Name:           product.Name,
		Price:          product.Price.StringFixed(2),
		TrackInventory: product.TrackInventory,
		StockQty:       product.StockQty,
		ImageURL:       product.EffectiveImageURL(),
	}

	if s.cache != nil {
		if err := s.cache.SetProductInfo(key, info, s.cacheTTL); err != nil {
			log.Printf("Warning: failed to cache product info %s: %v", key, err)
		}
	}

	return info, nil
}
