package store

import (
	"context"

	"hotel-infinity/models"
	"hotel-infinity/monitoring"
	"hotel-infinity/utils"
)

type ReviewInput struct {
	CustomerName string `json:"customerName" validate:"required"`
	Rating       int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment      string `json:"comment" validate:"required"`
	Image        string `json:"image" validate:"omitempty,url"`
	RoomType     string `json:"roomType"`
}

type ReviewPatch struct {
	CustomerName *string `json:"customerName"`
	Rating       *int    `json:"rating" validate:"omitempty,gte=1,lte=5"`
	Comment      *string `json:"comment"`
	Image        *string `json:"image" validate:"omitempty,url"`
	RoomType     *string `json:"roomType"`
	Approved     *bool   `json:"approved"`
}

// AddReview is the one public write besides booking creation. The review
// always enters unapproved, newest first, regardless of the submitted body.
func (s *Store) AddReview(ctx context.Context, input ReviewInput) (*models.Review, error) {
	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	review := models.Review{
		ID:           s.newID(),
		CustomerName: input.CustomerName,
		Rating:       input.Rating,
		Comment:      input.Comment,
		Image:        input.Image,
		Date:         now.Format("2006-01-02"),
		RoomType:     input.RoomType,
		Approved:     false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.reviews = append([]models.Review{review}, s.reviews...)
	monitoring.CountMutation("review", "add")

	if err := s.persistReviews(ctx); err != nil {
		return &review, err
	}
	return &review, nil
}

func (s *Store) UpdateReview(ctx context.Context, token, id string, patch ReviewPatch) (*models.Review, error) {
	if err := s.validateInput(patch); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireAdmin(token); err != nil {
		return nil, err
	}

	idx := s.reviewIndex(id)
	if idx < 0 {
		return nil, utils.NotFound("review", id)
	}

	review := &s.reviews[idx]
	if patch.CustomerName != nil {
		review.CustomerName = *patch.CustomerName
	}
	if patch.Rating != nil {
		review.Rating = *patch.Rating
	}
	if patch.Comment != nil {
		review.Comment = *patch.Comment
	}
	if patch.Image != nil {
		review.Image = *patch.Image
	}
	if patch.RoomType != nil {
		review.RoomType = *patch.RoomType
	}
	if patch.Approved != nil {
		review.Approved = *patch.Approved
	}
	review.UpdatedAt = s.now()
	monitoring.CountMutation("review", "update")

	updated := *review
	if err := s.persistReviews(ctx); err != nil {
		return &updated, err
	}
	return &updated, nil
}

// ApproveReview publishes a review to the public listing.
func (s *Store) ApproveReview(ctx context.Context, token, id string) (*models.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireAdmin(token); err != nil {
		return nil, err
	}

	idx := s.reviewIndex(id)
	if idx < 0 {
		return nil, utils.NotFound("review", id)
	}

	s.reviews[idx].Approved = true
	s.reviews[idx].UpdatedAt = s.now()
	monitoring.CountMutation("review", "approve")

	updated := s.reviews[idx]
	if err := s.persistReviews(ctx); err != nil {
		return &updated, err
	}
	return &updated, nil
}

func (s *Store) DeleteReview(ctx context.Context, token, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireAdmin(token); err != nil {
		return err
	}

	idx := s.reviewIndex(id)
	if idx < 0 {
		return utils.NotFound("review", id)
	}
	s.reviews = append(s.reviews[:idx], s.reviews[idx+1:]...)
	monitoring.CountMutation("review", "delete")

	return s.persistReviews(ctx)
}

func (s *Store) reviewIndex(id string) int {
	for i := range s.reviews {
		if s.reviews[i].ID == id {
			return i
		}
	}
	return -1
}
