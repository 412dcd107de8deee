package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/henriqueacribeiro/invenhelper/models"
	"github.com/henriqueacribeiro/invenhelper/repository"
)

type UserService interface {
	// FindByUsername resolves a user by its username. It never fails: an
	// invalid or unknown username reads as absence.
	FindByUsername(ctx context.Context, username string) (*models.User, bool)
	// CheckUserCanPerformAction resolves the acting user and verifies the
	// grant before any mutation takes place.
	CheckUserCanPerformAction(ctx context.Context, permission models.Permission, action, username string) error
	CreateNewUser(ctx context.Context, doc models.CreateUserDocument) models.Response
	UpdateUserInformation(ctx context.Context, doc models.UpdateUserDocument) models.Response
	DeleteUser(ctx context.Context, doc models.DeleteUserDocument) models.Response
}

type userService struct {
	repo   repository.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo repository.UserRepository, logger zerolog.Logger) UserService {
	return &userService{
		repo:   repo,
		logger: logger.With().Str("service", "user").Logger(),
	}
}

func (s *userService) FindByUsername(ctx context.Context, username string) (*models.User, bool) {
	if _, err := models.NewUserKey(username); err != nil {
		return nil, false
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if !repository.IsNotFound(err) {
			s.logger.Error().Err(err).Str("username", username).Msg("error fetching user")
		}
		return nil, false
	}
	return user, true
}

func (s *userService) CheckUserCanPerformAction(ctx context.Context, permission models.Permission, action, username string) error {
	user, ok := s.FindByUsername(ctx, username)
	if !ok {
		return UserDoesNotExistError{Username: username}
	}
	if !user.HasPermission(permission) {
		return UserNotAllowedError{Username: username, Action: action}
	}
	return nil
}

func (s *userService) CreateNewUser(ctx context.Context, doc models.CreateUserDocument) models.Response {
	if err := s.CheckUserCanPerformAction(ctx, models.PermissionModifyUsers, "create user", doc.RequiringUser); err != nil {
		s.logger.Error().Err(err).Msg("user creation rejected")
		return models.NewResponseWithInformation(false, err.Error())
	}

	user, err := models.NewUserFromDocument(doc)
	if err != nil {
		s.logger.Error().Err(err).Msg("invalid JSON object to be converted to User")
		return models.NewResponseWithInformation(false, "Error converting the JSON into a User. Check the request")
	}

	if _, exists := s.FindByUsername(ctx, user.Username()); exists {
		return models.NewResponseWithInformation(false, "A user with the same username is already registered")
	}

	if err := s.repo.Insert(ctx, user); err != nil {
		s.logger.Error().Err(err).Str("username", user.Username()).Msg("error saving user")
		return models.NewResponseWithInformation(false, "Error saving on the database")
	}
	return models.NewResponseWithObject(true, "Success creating the user", user)
}

func (s *userService) UpdateUserInformation(ctx context.Context, doc models.UpdateUserDocument) models.Response {
	requiringUser, ok := s.FindByUsername(ctx, doc.RequiringUser)
	if !ok {
		err := UserDoesNotExistError{Username: doc.RequiringUser}
		s.logger.Error().Err(err).Msg("user update rejected")
		return models.NewResponseWithInformation(false, err.Error())
	}
	if !requiringUser.HasPermission(models.PermissionModifyUsers) && doc.Username != doc.RequiringUser {
		err := UserNotAllowedError{Username: doc.RequiringUser, Action: "update user"}
		s.logger.Error().Err(err).Msg("user update rejected")
		return models.NewResponseWithInformation(false, err.Error())
	}

	user, ok := s.FindByUsername(ctx, doc.Username)
	if !ok {
		return models.NewResponseWithInformation(false, "User not found")
	}

	hasChanges := false
	if doc.Name != nil {
		if err := user.UpdateName(*doc.Name); err != nil {
			return models.NewResponseWithInformation(false, err.Error())
		}
		hasChanges = true
	}
	if doc.Permissions != nil {
		for _, entry := range *doc.Permissions {
			if err := user.AddPermission(entry.Name, entry.Value); err != nil {
				return models.NewResponseWithInformation(false, err.Error())
			}
		}
		hasChanges = true
	}

	if !hasChanges {
		return models.NewResponseWithInformation(true, "No information to update user")
	}

	if err := s.repo.Save(ctx, user); err != nil {
		s.logger.Error().Err(err).Str("username", user.Username()).Msg("error updating user")
		return models.NewResponseWithObject(false, "Error updating database", user)
	}
	return models.NewResponseWithObject(true, "User updated", user)
}

func (s *userService) DeleteUser(ctx context.Context, doc models.DeleteUserDocument) models.Response {
	requiringUser, ok := s.FindByUsername(ctx, doc.RequiringUser)
	if !ok {
		err := UserDoesNotExistError{Username: doc.RequiringUser}
		s.logger.Error().Err(err).Msg("user deletion rejected")
		return models.NewResponseWithInformation(false, err.Error())
	}
	if !requiringUser.HasPermission(models.PermissionModifyUsers) && doc.UserToDelete != doc.RequiringUser {
		err := UserNotAllowedError{Username: doc.RequiringUser, Action: "delete user"}
		s.logger.Error().Err(err).Msg("user deletion rejected")
		return models.NewResponseWithInformation(false, err.Error())
	}

	user, ok := s.FindByUsername(ctx, doc.UserToDelete)
	if !ok {
		return models.NewResponseWithInformation(false, "Username to delete not found: "+doc.UserToDelete)
	}

	if err := s.repo.Delete(ctx, user); err != nil {
		s.logger.Error().Err(err).Str("username", user.Username()).Msg("error deleting user")
		return models.NewResponseWithInformation(false, "Error while deleting user")
	}
	return models.NewResponse(true)
}
