// internal/store/mongo.go
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/javajoker/unihub-backend/internal/models"
)

// MongoStore keeps the catalog in a MongoDB database.
type MongoStore struct {
	db  *mongo.Database
	now func() time.Time
}

type MongoOption func(*MongoStore)

// WithClock overrides the time source used for property timestamps.
func WithClock(now func() time.Time) MongoOption {
	return func(s *MongoStore) {
		s.now = now
	}
}

func NewMongoStore(db *mongo.Database, opts ...MongoOption) *MongoStore {
	s := &MongoStore{db: db, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func newID() string {
	return primitive.NewObjectID().Hex()
}

func (s *MongoStore) timestamp() time.Time {
	// Mongo stores milliseconds; truncate so reads round-trip exactly.
	return s.now().UTC().Truncate(time.Millisecond)
}

func (s *MongoStore) Ping(ctx context.Context) error {
	return s.db.Client().Ping(ctx, readpref.Primary())
}

// Properties

func (s *MongoStore) ListProperties(ctx context.Context, status models.PropertyStatus) ([]models.Property, error) {
	coll := s.db.Collection(PropertiesCollection)

	var (
		cursor *mongo.Cursor
		err    error
	)
	if status != "" {
		// No server-side sort on the filtered query so it does not need a compound index.
		cursor, err = coll.Find(ctx, bson.M{"status": status})
	} else {
		cursor, err = coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query properties: %w", err)
	}

	properties := []models.Property{}
	if err := cursor.All(ctx, &properties); err != nil {
		return nil, fmt.Errorf("failed to decode properties: %w", err)
	}

	if status != "" {
		SortNewestFirst(properties)
	}
	return properties, nil
}

func (s *MongoStore) GetProperty(ctx context.Context, id string) (*models.Property, error) {
	var property models.Property
	if err := s.findByID(ctx, PropertiesCollection, id, &property); err != nil {
		return nil, err
	}
	return &property, nil
}

func (s *MongoStore) CreateProperty(ctx context.Context, fields models.PropertyFields) (string, error) {
	now := s.timestamp()
	property := newPropertyDocument(newID(), fields, now)

	if _, err := s.db.Collection(PropertiesCollection).InsertOne(ctx, property); err != nil {
		return "", fmt.Errorf("failed to create property: %w", err)
	}
	return property.ID, nil
}

func (s *MongoStore) UpdateProperty(ctx context.Context, id string, update models.PropertyUpdate) error {
	set := bson.M{"updatedAt": s.timestamp()}
	if update.Title != nil {
		set["title"] = *update.Title
	}
	if update.CategoryID != nil {
		set["categoryId"] = *update.CategoryID
	}
	if update.Price != nil {
		set["price"] = *update.Price
	}
	if update.Deposit != nil {
		set["deposit"] = *update.Deposit
	}
	if update.Location != nil {
		set["location"] = *update.Location
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.SetFeatures {
		set["features"] = nonNilStrings(update.Features)
	}
	if update.AgentID != nil {
		set["agentId"] = *update.AgentID
	}
	if update.Status != nil {
		set["status"] = *update.Status
	}
	if update.SetMedia {
		set["media"] = nonNilMedia(update.Media)
	}

	doc := bson.M{"$set": set}
	if update.Deposit == nil && update.ClearDeposit {
		doc["$unset"] = bson.M{"deposit": ""}
	}

	return s.updateByID(ctx, PropertiesCollection, id, doc)
}

func (s *MongoStore) DeleteProperty(ctx context.Context, id string) error {
	return s.deleteByID(ctx, PropertiesCollection, id)
}

// Agents

func (s *MongoStore) ListAgents(ctx context.Context) ([]models.Agent, error) {
	cursor, err := s.db.Collection(AgentsCollection).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to query agents: %w", err)
	}

	agents := []models.Agent{}
	if err := cursor.All(ctx, &agents); err != nil {
		return nil, fmt.Errorf("failed to decode agents: %w", err)
	}
	return agents, nil
}

func (s *MongoStore) GetAgent(ctx context.Context, id string) (*models.Agent, error) {
	var agent models.Agent
	if err := s.findByID(ctx, AgentsCollection, id, &agent); err != nil {
		return nil, err
	}
	return &agent, nil
}

func (s *MongoStore) CreateAgent(ctx context.Context, agent models.Agent) (string, error) {
	agent.ID = newID()
	if _, err := s.db.Collection(AgentsCollection).InsertOne(ctx, agent); err != nil {
		return "", fmt.Errorf("failed to create agent: %w", err)
	}
	return agent.ID, nil
}

func (s *MongoStore) UpdateAgent(ctx context.Context, id string, update models.AgentUpdate) error {
	set := bson.M{}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Phone != nil {
		set["phone"] = *update.Phone
	}
	if update.WhatsappNumber != nil {
		set["whatsappNumber"] = *update.WhatsappNumber
	}
	if update.ProfilePhotoURL != nil {
		set["profilePhotoURL"] = *update.ProfilePhotoURL
	}
	if update.IsActive != nil {
		set["isActive"] = *update.IsActive
	}
	return s.updateFields(ctx, AgentsCollection, id, set)
}

func (s *MongoStore) DeleteAgent(ctx context.Context, id string) error {
	return s.deleteByID(ctx, AgentsCollection, id)
}

// Categories

func (s *MongoStore) ListCategories(ctx context.Context) ([]models.Category, error) {
	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})
	cursor, err := s.db.Collection(CategoriesCollection).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}

	categories := []models.Category{}
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, fmt.Errorf("failed to decode categories: %w", err)
	}
	return categories, nil
}

func (s *MongoStore) GetCategory(ctx context.Context, id string) (*models.Category, error) {
	var category models.Category
	if err := s.findByID(ctx, CategoriesCollection, id, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *MongoStore) CreateCategory(ctx context.Context, category models.Category) (string, error) {
	category.ID = newID()
	if _, err := s.db.Collection(CategoriesCollection).InsertOne(ctx, category); err != nil {
		return "", fmt.Errorf("failed to create category: %w", err)
	}
	return category.ID, nil
}

func (s *MongoStore) UpdateCategory(ctx context.Context, id string, update models.CategoryUpdate) error {
	set := bson.M{}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.IsActive != nil {
		set["isActive"] = *update.IsActive
	}
	if update.Order != nil {
		set["order"] = *update.Order
	}
	return s.updateFields(ctx, CategoriesCollection, id, set)
}

func (s *MongoStore) DeleteCategory(ctx context.Context, id string) error {
	return s.deleteByID(ctx, CategoriesCollection, id)
}

// Settings

func (s *MongoStore) GetSiteSettings(ctx context.Context) (*models.SiteSettings, error) {
	var settings models.SiteSettings
	if err := s.findByID(ctx, SettingsCollection, SettingsDocumentID, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

func (s *MongoStore) UpsertSiteSettings(ctx context.Context, update models.SiteSettingsUpdate) error {
	_, err := s.db.Collection(SettingsCollection).UpdateOne(
		ctx,
		bson.M{"_id": SettingsDocumentID},
		settingsUpdateDocument(update),
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("failed to save site settings: %w", err)
	}
	return nil
}

// SeedCatalog writes the batch inside a multi-document transaction.
// The deployment must be a replica set or sharded cluster.
func (s *MongoStore) SeedCatalog(ctx context.Context, batch models.SeedBatch) error {
	session, err := s.db.Client().StartSession()
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	defer session.EndSession(ctx)

	now := s.timestamp()
	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		settings := batch.Settings
		update := models.SiteSettingsUpdate{
			HeroTitle:             &settings.HeroTitle,
			HeroSubtitle:          &settings.HeroSubtitle,
			HeroImage:             &settings.HeroImage,
			CTAText:               &settings.CTAText,
			FeaturedProperties:    settings.FeaturedProperties,
			SetFeaturedProperties: true,
		}
		if _, err := s.db.Collection(SettingsCollection).UpdateOne(
			sc, bson.M{"_id": SettingsDocumentID}, settingsUpdateDocument(update), options.Update().SetUpsert(true),
		); err != nil {
			return nil, fmt.Errorf("failed to seed settings: %w", err)
		}

		categories := make([]interface{}, 0, len(batch.Categories))
		for _, c := range batch.Categories {
			if c.ID == "" {
				c.ID = newID()
			}
			categories = append(categories, c)
		}
		if err := insertAll(sc, s.db.Collection(CategoriesCollection), categories); err != nil {
			return nil, fmt.Errorf("failed to seed categories: %w", err)
		}

		agents := make([]interface{}, 0, len(batch.Agents))
		for _, a := range batch.Agents {
			if a.ID == "" {
				a.ID = newID()
			}
			agents = append(agents, a)
		}
		if err := insertAll(sc, s.db.Collection(AgentsCollection), agents); err != nil {
			return nil, fmt.Errorf("failed to seed agents: %w", err)
		}

		properties := make([]interface{}, 0, len(batch.Properties))
		for _, p := range batch.Properties {
			id := p.ID
			if id == "" {
				id = newID()
			}
			doc := newPropertyDocument(id, p.Fields(), now)
			if p.CreatedAt != nil {
				doc.CreatedAt = p.CreatedAt
			}
			properties = append(properties, doc)
		}
		if err := insertAll(sc, s.db.Collection(PropertiesCollection), properties); err != nil {
			return nil, fmt.Errorf("failed to seed properties: %w", err)
		}
		return nil, nil
	})
	return err
}

// helpers

func newPropertyDocument(id string, fields models.PropertyFields, now time.Time) models.Property {
	created, updated := now, now
	return models.Property{
		ID:          id,
		Title:       fields.Title,
		CategoryID:  fields.CategoryID,
		Price:       fields.Price,
		Deposit:     fields.Deposit,
		Location:    fields.Location,
		Description: fields.Description,
		Features:    nonNilStrings(fields.Features),
		AgentID:     fields.AgentID,
		Status:      fields.Status,
		Media:       nonNilMedia(fields.Media),
		CreatedAt:   &created,
		UpdatedAt:   &updated,
	}
}

func settingsUpdateDocument(update models.SiteSettingsUpdate) bson.M {
	set := bson.M{}
	if update.HeroTitle != nil {
		set["heroTitle"] = *update.HeroTitle
	}
	if update.HeroSubtitle != nil {
		set["heroSubtitle"] = *update.HeroSubtitle
	}
	if update.HeroImage != nil {
		set["heroImage"] = *update.HeroImage
	}
	if update.CTAText != nil {
		set["ctaText"] = *update.CTAText
	}
	if update.SetFeaturedProperties {
		set["featuredProperties"] = nonNilStrings(update.FeaturedProperties)
	}

	if len(set) == 0 {
		return bson.M{"$setOnInsert": bson.M{"featuredProperties": []string{}}}
	}
	return bson.M{"$set": set}
}

func (s *MongoStore) findByID(ctx context.Context, collection, id string, out interface{}) error {
	err := s.db.Collection(collection).FindOne(ctx, bson.M{"_id": id}).Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to load %s/%s: %w", collection, id, err)
	}
	return nil
}

func (s *MongoStore) updateFields(ctx context.Context, collection, id string, set bson.M) error {
	if len(set) == 0 {
		// Nothing to write, but a missing document is still reported.
		var probe bson.M
		return s.findByID(ctx, collection, id, &probe)
	}
	return s.updateByID(ctx, collection, id, bson.M{"$set": set})
}

func (s *MongoStore) updateByID(ctx context.Context, collection, id string, update bson.M) error {
	res, err := s.db.Collection(collection).UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update %s/%s: %w", collection, id, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore) deleteByID(ctx context.Context, collection, id string) error {
	if _, err := s.db.Collection(collection).DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("failed to delete %s/%s: %w", collection, id, err)
	}
	return nil
}

func insertAll(ctx context.Context, coll *mongo.Collection, docs []interface{}) error {
	if len(docs) == 0 {
		return nil
	}
	_, err := coll.InsertMany(ctx, docs)
	return err
}

func nonNilStrings(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}

func nonNilMedia(in []models.MediaItem) []models.MediaItem {
	if in == nil {
		return []models.MediaItem{}
	}
	return in
}
