package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"innovest/internal/domain/entity"
	"innovest/internal/domain/repository"
	"innovest/pkg/errors"
	"innovest/pkg/logger"
)

type firestorePitchRepository struct {
	client *firestore.Client
}

func NewFirestorePitchRepository(client *firestore.Client) repository.PitchRepository {
	return &firestorePitchRepository{
		client: client,
	}
}

func (r *firestorePitchRepository) Create(ctx context.Context, pitch *entity.Pitch) error {
	if pitch.ID == "" {
		pitch.ID = uuid.New().String()
	}

	now := time.Now()
	pitch.CreatedAt = now
	pitch.UpdatedAt = now

	if _, err := r.client.Collection("pitches").Doc(pitch.ID).Set(ctx, pitch); err != nil {
		return errors.StoreUnavailable("Failed to create pitch", err)
	}
	return nil
}

func (r *firestorePitchRepository) GetByID(ctx context.Context, id string) (*entity.Pitch, error) {
	doc, err := r.client.Collection("pitches").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Pitch", err)
		}
		return nil, errors.StoreUnavailable("Failed to get pitch", err)
	}

	var pitch entity.Pitch
	if err := doc.DataTo(&pitch); err != nil {
		return nil, errors.Internal("Failed to parse pitch data", err)
	}

	return &pitch, nil
}

func (r *firestorePitchRepository) ListByFounder(ctx context.Context, founderID string) ([]*entity.Pitch, error) {
	query := r.client.Collection("pitches").
		Where("founderId", "==", founderID).
		OrderBy("createdAt", firestore.Desc)

	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.StoreUnavailable("Failed to list pitches", err)
	}

	return parsePitchDocs(docs), nil
}

func (r *firestorePitchRepository) List(ctx context.Context) ([]*entity.Pitch, error) {
	query := r.client.Collection("pitches").OrderBy("createdAt", firestore.Desc)

	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.StoreUnavailable("Failed to list pitches", err)
	}

	return parsePitchDocs(docs), nil
}

func (r *firestorePitchRepository) Update(ctx context.Context, pitch *entity.Pitch) error {
	pitch.UpdatedAt = time.Now()

	if _, err := r.client.Collection("pitches").Doc(pitch.ID).Set(ctx, pitch); err != nil {
		return errors.StoreUnavailable("Failed to update pitch", err)
	}
	return nil
}

func parsePitchDocs(docs []*firestore.DocumentSnapshot) []*entity.Pitch {
	var pitches []*entity.Pitch
	for _, doc := range docs {
		var pitch entity.Pitch
		if err := doc.DataTo(&pitch); err != nil {
			logger.Warn("Skipping malformed pitch %s: %v", doc.Ref.ID, err)
			continue
		}
		pitches = append(pitches, &pitch)
	}
	return pitches
}
