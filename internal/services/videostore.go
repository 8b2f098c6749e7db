package services

import (
	"context"
	"log"
	"sync"
	"time"

	"quizlens-backend/internal/models"
)

// VideoLister is the part of the Reka client the store depends on.
type VideoLister interface {
	ListVideos(ctx context.Context) ([]models.Video, error)
}

// VideoStore holds the process-local video list cache and the soft-delete
// set. The upstream API has no delete operation, so "deleted" videos are
// simply filtered out of every list result.
type VideoStore struct {
	client VideoLister
	ttl    time.Duration

	mu        sync.Mutex
	fetchedAt time.Time
	results   []models.Video
	deleted   map[string]struct{}
}

func NewVideoStore(client VideoLister, ttl time.Duration) *VideoStore {
	if ttl <= 0 {
		ttl = 60 * time.Second
	}
	return &VideoStore{
		client:  client,
		ttl:     ttl,
		deleted: make(map[string]struct{}),
	}
}

// List returns the current video list. Results fetched within the TTL are
// served from cache, an empty upstream list included; otherwise the list is
// refetched from upstream. When the refetch fails, the previous results are
// served regardless of their age, and an empty list is returned only when
// nothing was ever fetched.
func (s *VideoStore) List(ctx context.Context) []models.Video {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.fetchedAt.IsZero() && time.Since(s.fetchedAt) <= s.ttl {
		return copyVideos(s.results)
	}

	fetched, err := s.client.ListVideos(ctx)
	if err != nil {
		log.Printf("video list refresh failed, serving cached copy: %v", err)
		return copyVideos(s.results)
	}

	filtered := make([]models.Video, 0, len(fetched))
	for _, v := range fetched {
		if _, gone := s.deleted[v.VideoID]; gone {
			continue
		}
		filtered = append(filtered, v)
	}

	s.results = filtered
	s.fetchedAt = time.Now()
	return copyVideos(s.results)
}

// MarkDeleted hides a video from all future list results. The cached copy is
// pruned immediately so the deletion is visible without waiting for the TTL.
func (s *VideoStore) MarkDeleted(videoID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.deleted[videoID] = struct{}{}

	kept := s.results[:0]
	for _, v := range s.results {
		if v.VideoID != videoID {
			kept = append(kept, v)
		}
	}
	s.results = kept
}

// IsDeleted reports whether a video has been soft-deleted.
func (s *VideoStore) IsDeleted(videoID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, gone := s.deleted[videoID]
	return gone
}

// Invalidate forces the next List call to refetch from upstream. The cached
// results are kept as the failure fallback.
func (s *VideoStore) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.fetchedAt = time.Time{}
}

func copyVideos(videos []models.Video) []models.Video {
	out := make([]models.Video, len(videos))
	copy(out, videos)
	return out
}
