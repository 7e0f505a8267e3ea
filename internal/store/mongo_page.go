// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-landing-builder/internal/config"
	"github.com/MKhiriev/go-landing-builder/internal/logger"
	"github.com/MKhiriev/go-landing-builder/models"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const pagesCollection = "pages"

// pageDocument is the stored shape of a page in MongoDB. Sections and
// settings are kept together as one nested document so that section content
// stays queryable by the shell.
type pageDocument struct {
	ID        string    `bson:"_id"`
	OwnerID   int64     `bson:"ownerId"`
	Title     string    `bson:"title"`
	Status    string    `bson:"status"`
	Body      bson.D    `bson:"body"`
	CreatedAt time.Time `bson:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

type pageBody struct {
	Sections []models.Section    `json:"sections"`
	Settings models.PageSettings `json:"settings"`
}

// MongoDB is an open MongoDB client bound to the configured database.
type MongoDB struct {
	client   *mongo.Client
	database string
}

// NewConnectMongo connects to cfg.MongoURI, pings the primary and makes
// sure the owner index exists.
func NewConnectMongo(ctx context.Context, cfg config.Documents, log *logger.Logger) (*MongoDB, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("failed to create mongo client")
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err = client.Ping(pingCtx, nil); err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("mongo ping failed")
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("%w: ping mongo: %w", ErrStorageUnavailable, err)
	}

	m := &MongoDB{client: client, database: cfg.MongoDatabase}
	_, err = m.pages().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "ownerId", Value: 1}, {Key: "updatedAt", Value: -1}},
	})
	if err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("failed to create pages index")
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("create pages index: %w", err)
	}

	log.Info().Str("database", cfg.MongoDatabase).Msg("connected to mongo page store")
	return m, nil
}

func (m *MongoDB) pages() *mongo.Collection {
	return m.client.Database(m.database).Collection(pagesCollection)
}

// Close disconnects the client.
func (m *MongoDB) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// mongoPageRepository is the MongoDB implementation of [PageRepository].
type mongoPageRepository struct {
	coll   *mongo.Collection
	logger *logger.Logger
	now    func() time.Time
}

func NewMongoPageRepository(db *MongoDB, logger *logger.Logger) PageRepository {
	logger.Debug().Msg("creating mongo page repository")
	return &mongoPageRepository{
		coll:   db.pages(),
		logger: logger,
		now:    func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
	}
}

func (r *mongoPageRepository) CreatePage(ctx context.Context, page models.LandingPage) (models.LandingPage, error) {
	now := r.now()
	created := page.Clone()
	created.CreatedAt = &now
	created.UpdatedAt = &now

	doc, err := toPageDocument(created)
	if err != nil {
		return models.LandingPage{}, err
	}

	if _, err = r.coll.InsertOne(ctx, doc); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoPageRepository.CreatePage").Str("page_id", page.ID).Msg("insert failed")
		if mongo.IsDuplicateKeyError(err) {
			return models.LandingPage{}, ErrPageAlreadyExists
		}
		return models.LandingPage{}, mongoError(ErrExecutingStatement, err)
	}

	return created, nil
}

func (r *mongoPageRepository) GetPage(ctx context.Context, id string) (models.LandingPage, error) {
	var doc pageDocument
	if err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.LandingPage{}, ErrPageNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "*mongoPageRepository.GetPage").Str("page_id", id).Msg("find failed")
		return models.LandingPage{}, mongoError(ErrExecutingQuery, err)
	}

	return fromPageDocument(doc)
}

func (r *mongoPageRepository) ListPages(ctx context.Context, ownerID int64) ([]models.LandingPage, error) {
	opts := options.Find().SetSort(bson.D{{Key: "updatedAt", Value: -1}, {Key: "_id", Value: 1}})

	cursor, err := r.coll.Find(ctx, bson.D{{Key: "ownerId", Value: ownerID}}, opts)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoPageRepository.ListPages").Int64("owner_id", ownerID).Msg("find failed")
		return nil, mongoError(ErrExecutingQuery, err)
	}

	var docs []pageDocument
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, mongoError(ErrScanningRows, err)
	}

	pages := make([]models.LandingPage, 0, len(docs))
	for _, doc := range docs {
		page, convErr := fromPageDocument(doc)
		if convErr != nil {
			return nil, convErr
		}
		pages = append(pages, page)
	}
	return pages, nil
}

func (r *mongoPageRepository) UpdatePage(ctx context.Context, page models.LandingPage) (models.LandingPage, error) {
	var existing pageDocument
	filter := bson.D{{Key: "_id", Value: page.ID}, {Key: "ownerId", Value: page.OwnerID}}
	if err := r.coll.FindOne(ctx, filter).Decode(&existing); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.LandingPage{}, ErrPageNotFound
		}
		return models.LandingPage{}, mongoError(ErrExecutingQuery, err)
	}

	now := r.now()
	updated := page.Clone()
	updated.CreatedAt = &existing.CreatedAt
	updated.UpdatedAt = &now

	doc, err := toPageDocument(updated)
	if err != nil {
		return models.LandingPage{}, err
	}

	res, err := r.coll.ReplaceOne(ctx, filter, doc)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoPageRepository.UpdatePage").Str("page_id", page.ID).Msg("replace failed")
		return models.LandingPage{}, mongoError(ErrExecutingStatement, err)
	}
	if res.MatchedCount == 0 {
		return models.LandingPage{}, ErrPageNotFound
	}

	return updated, nil
}

func (r *mongoPageRepository) DeletePage(ctx context.Context, id string, ownerID int64) error {
	_, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}, {Key: "ownerId", Value: ownerID}})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoPageRepository.DeletePage").Str("page_id", id).Msg("delete failed")
		return mongoError(ErrExecutingStatement, err)
	}
	return nil
}

func mongoError(kind, err error) error {
	if mongo.IsTimeout(err) || mongo.IsNetworkError(err) {
		return fmt.Errorf("%w: %w: %w", ErrStorageUnavailable, kind, err)
	}
	return fmt.Errorf("%w: %w", kind, err)
}

// toPageDocument converts a page into its stored form. The body goes through
// JSON so that section content variants keep their wire field names.
func toPageDocument(page models.LandingPage) (pageDocument, error) {
	sections := page.Sections
	if sections == nil {
		sections = []models.Section{}
	}

	raw, err := json.Marshal(pageBody{Sections: sections, Settings: page.Settings})
	if err != nil {
		return pageDocument{}, fmt.Errorf("%w: %w", ErrEncodingPage, err)
	}

	var body bson.D
	if err = bson.UnmarshalExtJSON(raw, false, &body); err != nil {
		return pageDocument{}, fmt.Errorf("%w: %w", ErrEncodingPage, err)
	}

	doc := pageDocument{
		ID:      page.ID,
		OwnerID: page.OwnerID,
		Title:   page.Title,
		Status:  string(page.Status),
		Body:    body,
	}
	if page.CreatedAt != nil {
		doc.CreatedAt = *page.CreatedAt
	}
	if page.UpdatedAt != nil {
		doc.UpdatedAt = *page.UpdatedAt
	}
	return doc, nil
}

func fromPageDocument(doc pageDocument) (models.LandingPage, error) {
	raw, err := bson.MarshalExtJSON(doc.Body, false, false)
	if err != nil {
		return models.LandingPage{}, fmt.Errorf("%w: page %s: %w", ErrEncodingPage, doc.ID, err)
	}

	var body pageBody
	if err = json.Unmarshal(raw, &body); err != nil {
		return models.LandingPage{}, fmt.Errorf("%w: page %s: %w", ErrEncodingPage, doc.ID, err)
	}
	if body.Sections == nil {
		body.Sections = []models.Section{}
	}

	createdAt := doc.CreatedAt.UTC()
	updatedAt := doc.UpdatedAt.UTC()
	return models.LandingPage{
		ID:        doc.ID,
		OwnerID:   doc.OwnerID,
		Title:     doc.Title,
		Sections:  body.Sections,
		Settings:  body.Settings,
		Status:    models.PageStatus(doc.Status),
		CreatedAt: &createdAt,
		UpdatedAt: &updatedAt,
	}, nil
}
