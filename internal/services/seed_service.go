// internal/services/seed_service.go
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/javajoker/unihub-backend/internal/models"
	"github.com/javajoker/unihub-backend/internal/store"
)

// SeedService loads a sample catalog for demos and local development.
type SeedService struct {
	store store.Store
	now   func() time.Time
}

type SeedResult struct {
	Categories int `json:"categories"`
	Agents     int `json:"agents"`
	Properties int `json:"properties"`
}

func NewSeedService(s store.Store) *SeedService {
	return &SeedService{store: s, now: time.Now}
}

// Seed writes the sample catalog in one batch. Running it twice adds a second copy.
func (s *SeedService) Seed(ctx context.Context) (*SeedResult, error) {
	batch := SampleCatalog(s.now())
	if err := s.store.SeedCatalog(context.WithoutCancel(ctx), batch); err != nil {
		return nil, fmt.Errorf("failed to seed catalog: %w", err)
	}

	result := &SeedResult{
		Categories: len(batch.Categories),
		Agents:     len(batch.Agents),
		Properties: len(batch.Properties),
	}
	logrus.WithFields(logrus.Fields{
		"categories": result.Categories,
		"agents":     result.Agents,
		"properties": result.Properties,
	}).Info("Sample catalog seeded")
	return result, nil
}

func newSeedID() string {
	return primitive.NewObjectID().Hex()
}

func sampleImage(publicID, url string, order int) models.MediaItem {
	return models.MediaItem{
		PublicID:     publicID,
		SecureURL:    url,
		ResourceType: models.MediaResourceImage,
		Format:       "jpg",
		Order:        order,
	}
}

// SampleCatalog builds the demo data set. Properties are stamped one second
// apart starting at now, in listing order, so the last one is the newest.
func SampleCatalog(now time.Time) models.SeedBatch {
	categories := []models.Category{
		{ID: newSeedID(), Name: "Apartment", Slug: "apartment", IsActive: true, Order: 0},
		{ID: newSeedID(), Name: "Studio", Slug: "studio", IsActive: true, Order: 1},
		{ID: newSeedID(), Name: "Shared Room", Slug: "shared-room", IsActive: true, Order: 2},
		{ID: newSeedID(), Name: "Duplex", Slug: "duplex", IsActive: true, Order: 3},
	}
	apartment, studio, shared, duplex := categories[0].ID, categories[1].ID, categories[2].ID, categories[3].ID

	agents := []models.Agent{
		{
			ID:              newSeedID(),
			Name:            "John Doe",
			Phone:           "+2348012345678",
			WhatsappNumber:  "2348012345678",
			ProfilePhotoURL: "https://randomuser.me/api/portraits/men/32.jpg",
			IsActive:        true,
		},
		{
			ID:              newSeedID(),
			Name:            "Jane Smith",
			Phone:           "+2348098765432",
			WhatsappNumber:  "2348098765432",
			ProfilePhotoURL: "https://randomuser.me/api/portraits/women/44.jpg",
			IsActive:        true,
		},
	}
	john, jane := agents[0].ID, agents[1].ID

	deposit := func(v float64) *float64 { return &v }
	properties := []models.Property{
		{
			Title:       "Modern 2-Bedroom Apartment in Yaba",
			CategoryID:  apartment,
			Price:       1500000,
			Deposit:     deposit(150000),
			Location:    "Yaba, Lagos",
			Description: "A newly built 2-bedroom apartment with modern finishing. Features include a spacious living room, fitted kitchen, and en-suite bedrooms. Located in a secure environment with good road access.",
			Features:    []string{"24/7 Power", "Security", "Parking", "Water Treatment"},
			AgentID:     john,
			Status:      models.PropertyStatusAvailable,
			Media: []models.MediaItem{
				sampleImage("sample1", "https://images.unsplash.com/photo-1522708323590-d24dbb6b0267?ixlib=rb-4.0.3&auto=format&fit=crop&w=2340&q=80", 0),
				sampleImage("sample2", "https://images.unsplash.com/photo-1502672260266-1c1ef2d93688?ixlib=rb-4.0.3&auto=format&fit=crop&w=2360&q=80", 1),
			},
		},
		{
			Title:       "Cozy Studio near UNILAG",
			CategoryID:  studio,
			Price:       800000,
			Deposit:     deposit(80000),
			Location:    "Akoka, Yaba",
			Description: "Perfect for students! This cozy studio apartment is just a 5-minute walk from the UNILAG gate. Comes with a kitchenette and bathroom.",
			Features:    []string{"Close to Campus", "Water", "Fenced"},
			AgentID:     jane,
			Status:      models.PropertyStatusAvailable,
			Media: []models.MediaItem{
				sampleImage("sample3", "https://images.unsplash.com/photo-1554995207-c18c203602cb?ixlib=rb-4.0.3&auto=format&fit=crop&w=2340&q=80", 0),
			},
		},
		{
			Title:       "Luxury 3-Bedroom Duplex in Lekki",
			CategoryID:  duplex,
			Price:       4500000,
			Deposit:     deposit(450000),
			Location:    "Lekki Phase 1, Lagos",
			Description: "Experience luxury living in this exquisite 3-bedroom duplex. All rooms en-suite, BQ attached, swimming pool and gym access.",
			Features:    []string{"Swimming Pool", "Gym", "BQ", "24/7 Power", "Security"},
			AgentID:     john,
			Status:      models.PropertyStatusAvailable,
			Media: []models.MediaItem{
				sampleImage("sample4", "https://images.unsplash.com/photo-1600596542815-2a4d9f010dbf?ixlib=rb-4.0.3&auto=format&fit=crop&w=2350&q=80", 0),
				sampleImage("sample5", "https://images.unsplash.com/photo-1600607687939-ce8a6c25118c?ixlib=rb-4.0.3&auto=format&fit=crop&w=2353&q=80", 1),
			},
		},
		{
			Title:       "Affordable Shared Room in Akoka",
			CategoryID:  shared,
			Price:       300000,
			Deposit:     deposit(30000),
			Location:    "Bariga, Lagos",
			Description: "Shared room opportunity for male student. Spacious room with wardrobe. Kitchen and bathroom shared with one other person.",
			Features:    []string{"Wardrobe", "Water", "Electricity"},
			AgentID:     jane,
			Status:      models.PropertyStatusAvailable,
			Media: []models.MediaItem{
				sampleImage("sample6", "https://images.unsplash.com/photo-1595526114035-0d45ed16cfbf?ixlib=rb-4.0.3&auto=format&fit=crop&w=2340&q=80", 0),
			},
		},
		{
			Title:       "Serviced 1-Bedroom Mini Flat",
			CategoryID:  apartment,
			Price:       1200000,
			Deposit:     deposit(120000),
			Location:    "Surulere, Lagos",
			Description: "Clean and serviced mini-flat in a quiet neighborhood. Generator services available 7pm-7am.",
			Features:    []string{"Serviced", "Generator", "Security", "Parking"},
			AgentID:     john,
			Status:      models.PropertyStatusOccupied,
			Media: []models.MediaItem{
				sampleImage("sample7", "https://images.unsplash.com/photo-1493809842364-78817add7ffb?ixlib=rb-4.0.3&auto=format&fit=crop&w=2340&q=80", 0),
			},
		},
	}

	base := now.UTC().Truncate(time.Second)
	for i := range properties {
		properties[i].ID = newSeedID()
		created := base.Add(time.Duration(i) * time.Second)
		properties[i].CreatedAt = &created
	}

	return models.SeedBatch{
		Settings: models.SiteSettings{
			HeroTitle:          models.DefaultHeroTitle,
			HeroSubtitle:       models.DefaultHeroSubtitle,
			HeroImage:          "https://images.unsplash.com/photo-1555854877-bab0e564b8d5?ixlib=rb-4.0.3&auto=format&fit=crop&w=2069&q=80",
			CTAText:            models.DefaultCTAText,
			FeaturedProperties: []string{},
		},
		Categories: categories,
		Agents:     agents,
		Properties: properties,
	}
}
