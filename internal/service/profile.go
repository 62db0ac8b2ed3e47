package service

import (
	"github.com/campusboard/campusboard/internal/domain"
	"github.com/campusboard/campusboard/internal/service/utils"
)

type ProfileService interface {
	Get(userId domain.UserId) (domain.ProfileView, error)
	Update(userId domain.UserId, profile domain.Profile) (domain.ProfileView, error)
}

type Profile struct {
	storage ProfileStorage
}

type ProfileStorage interface {
	ProfileView(userId domain.UserId) (domain.ProfileView, error)
	UpdateProfile(userId domain.UserId, profile domain.Profile) (domain.ProfileView, error)
}

func NewProfile(storage ProfileStorage) *Profile {
	return &Profile{storage}
}

func (p *Profile) Get(userId domain.UserId) (domain.ProfileView, error) {
	return p.storage.ProfileView(userId)
}

// Update overwrites the four mutable fields unconditionally and returns
// the canonical post-write shape of the row.
func (p *Profile) Update(userId domain.UserId, profile domain.Profile) (domain.ProfileView, error) {
	cleaned := domain.Profile{
		Nickname:   utils.CleanText(profile.Nickname),
		Skills:     utils.CleanAll(profile.Skills),
		Department: utils.CleanText(profile.Department),
		Year:       utils.CleanText(profile.Year),
	}
	return p.storage.UpdateProfile(userId, cleaned)
}
