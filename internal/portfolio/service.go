// Package portfolio builds the read-only profile page model.
package portfolio

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/Zachkp/folio/internal/dto"
)

type ExperienceSource interface {
	ListByOwner(ctx context.Context, owner string) ([]dto.Experience, error)
}

type EducationSource interface {
	ListByOwner(ctx context.Context, owner string) ([]dto.Education, error)
}

// Service overlays a user's stored timeline onto the in-memory profile.
type Service struct {
	base       Profile
	experience ExperienceSource
	education  EducationSource
}

func NewService(base Profile, experience ExperienceSource, education EducationSource) *Service {
	return &Service{base: base, experience: experience, education: education}
}

// Profile never fails: a store error leaves the in-memory lists in place.
func (s *Service) Profile(ctx context.Context, userID string) Profile {
	p := s.base
	if userID == "" {
		return p
	}

	if s.experience != nil {
		recs, err := s.experience.ListByOwner(ctx, userID)
		if err != nil {
			log.Warn().Err(err).Str("user_id", userID).Msg("portfolio experience unavailable")
		} else if len(recs) > 0 {
			p.Experience = ExperienceEntries(recs)
		}
	}

	if s.education != nil {
		recs, err := s.education.ListByOwner(ctx, userID)
		if err != nil {
			log.Warn().Err(err).Str("user_id", userID).Msg("portfolio education unavailable")
		} else if len(recs) > 0 {
			p.Education = EducationEntries(recs)
		}
	}

	return p
}
