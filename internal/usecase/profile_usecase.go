package usecase

import (
	"context"

	"go-profile-backend/internal/domain"
	"go-profile-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type profileUsecase struct {
	profileRepo domain.ProfileRepository
	userRepo    domain.UserRepository
	validate    *validator.Validate
}

func NewProfileUsecase(profileRepo domain.ProfileRepository, userRepo domain.UserRepository, validate *validator.Validate) domain.ProfileUsecase {
	return &profileUsecase{
		profileRepo: profileRepo,
		userRepo:    userRepo,
		validate:    validate,
	}
}

func (u *profileUsecase) CreateProfile(ctx context.Context, in domain.CreateProfileInput) (*domain.ProfileWithSkills, error) {
	if err := u.validate.Struct(in); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	user, err := u.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if user == nil {
		return nil, apperror.NotFound("User not found")
	}

	profile := &domain.Profile{
		UserID:       in.UserID,
		ProfileType:  in.ProfileType,
		Experience:   in.Experience,
		Email:        in.Email,
		PhoneCountry: in.PhoneCountry,
		Phone:        in.Phone,
		ProfileImage: in.ProfileImage,
		FullName:     in.FullName,
		AddressArea:  in.AddressArea,
		Link:         in.Link,
		Github:       in.Github,
		Bitbucket:    in.Bitbucket,
		Gitlab:       in.Gitlab,
	}

	skills, err := u.profileRepo.CreateWithSkills(ctx, profile, in.Skills)
	if err != nil {
		return nil, err
	}

	return &domain.ProfileWithSkills{Profile: *profile, Skills: skills}, nil
}

// UpdateProfile applies partial-update semantics: only the fields present in
// the input change, absent fields are untouched.
func (u *profileUsecase) UpdateProfile(ctx context.Context, userID int64, in domain.UpdateProfileInput) (*domain.Profile, error) {
	if err := u.validate.Struct(in); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	profile, err := u.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if profile == nil {
		return nil, apperror.NotFound("Profile not found")
	}

	applyProfilePatch(profile, in)

	if err := u.profileRepo.Update(ctx, profile); err != nil {
		return nil, apperror.Internal(err)
	}
	return profile, nil
}

func (u *profileUsecase) GetProfile(ctx context.Context, id int64) (*domain.ProfileDetail, error) {
	detail, err := u.profileRepo.GetDetail(ctx, id)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if detail == nil {
		return nil, apperror.NotFound("Profile not found")
	}
	return detail, nil
}

func (u *profileUsecase) GetProfilesByUser(ctx context.Context, userID int64) ([]domain.Profile, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if user == nil {
		return nil, apperror.NotFound("User not found")
	}
	profiles, err := u.profileRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return profiles, nil
}

func applyProfilePatch(profile *domain.Profile, in domain.UpdateProfileInput) {
	if in.FullName != nil {
		profile.FullName = *in.FullName
	}
	if in.Email != nil {
		profile.Email = *in.Email
	}
	if in.PhoneCountry != nil {
		profile.PhoneCountry = *in.PhoneCountry
	}
	if in.Phone != nil {
		profile.Phone = *in.Phone
	}
	if in.ProfileImage != nil {
		profile.ProfileImage = *in.ProfileImage
	}
	if in.AddressArea != nil {
		profile.AddressArea = *in.AddressArea
	}
	if in.Link != nil {
		profile.Link = *in.Link
	}
	if in.Github != nil {
		profile.Github = *in.Github
	}
	if in.Bitbucket != nil {
		profile.Bitbucket = *in.Bitbucket
	}
	if in.Gitlab != nil {
		profile.Gitlab = *in.Gitlab
	}
}
