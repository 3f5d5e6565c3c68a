package services

import (
	"context"
)

type Stats struct {
	FaqCount            int64 `json:"faqCount"`
	GalleryCount        int64 `json:"galleryCount"`
	PendingReviewsCount int64 `json:"pendingReviewsCount"`
}

// StatsService aggregates the counters shown on the admin dashboard.
type StatsService struct {
	Faqs      *FaqService
	Galleries *GalleryService
	Reviews   *ReviewService
}

func NewStatsService(faqs *FaqService, galleries *GalleryService, reviews *ReviewService) *StatsService {
	return &StatsService{Faqs: faqs, Galleries: galleries, Reviews: reviews}
}

func (s *StatsService) Get(ctx context.Context) (Stats, error) {
	var (
		out Stats
		err error
	)
	if out.FaqCount, err = s.Faqs.Count(ctx); err != nil {
		return Stats{}, err
	}
	if out.GalleryCount, err = s.Galleries.Count(ctx); err != nil {
		return Stats{}, err
	}
	if out.PendingReviewsCount, err = s.Reviews.CountPending(ctx); err != nil {
		return Stats{}, err
	}
	return out, nil
}
