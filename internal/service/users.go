package service

import (
	"context"
	"errors"
	"io"

	"userpay-app/internal/domain/access"
	"userpay-app/internal/domain/media"
	"userpay-app/internal/domain/users"
	"userpay-app/internal/infra/files"
	"userpay-app/internal/store"

	"go.uber.org/zap"
)

const (
	msgInvalidEmail    = "Invalid email address."
	msgInvalidFileName = "Invalid file name."
)

type UserStore interface {
	UserByID(ctx context.Context, id uint) (users.User, error)
	CreateUser(ctx context.Context, user *users.User) error
	DeleteUser(ctx context.Context, id uint) error
}

type FileIntake interface {
	Store(name string, content io.Reader) (media.StoredFile, error)
}

type UserService struct {
	store UserStore
	files FileIntake
	gate  access.Gate
	creds CredentialEncoder
	log   *zap.Logger
}

func NewUserService(st UserStore, fi FileIntake, gate access.Gate, creds CredentialEncoder, log *zap.Logger) *UserService {
	return &UserService{store: st, files: fi, gate: gate, creds: creds, log: log}
}

func (s *UserService) GetUser(ctx context.Context, capability access.Capability, id uint) (users.User, error) {
	if err := s.gate.Authorize(ctx, capability, access.ActionReadUser, id); err != nil {
		return users.User{}, err
	}

	user, err := s.store.UserByID(ctx, id)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return users.User{}, ErrNotFound
	case err != nil:
		return users.User{}, internal("get user", err)
	}
	return user, nil
}

// CreateUser applies the single email rule and stores everything else as given.
func (s *UserService) CreateUser(ctx context.Context, capability access.Capability, name, email, password string) (users.User, error) {
	if err := s.gate.Authorize(ctx, capability, access.ActionCreateUser, 0); err != nil {
		return users.User{}, err
	}

	if !users.EmailLooksValid(email) {
		return users.User{}, invalid(msgInvalidEmail)
	}

	credential, err := s.creds.Encode(password)
	if err != nil {
		return users.User{}, internal("encode credential", err)
	}

	user := users.User{Name: name, Email: email, Password: credential}
	if err := s.store.CreateUser(ctx, &user); err != nil {
		return users.User{}, internal("create user", err)
	}

	s.log.Info("user created", zap.Uint("user_id", user.ID))
	return user, nil
}

// DeleteUser reports success whether or not the row existed.
func (s *UserService) DeleteUser(ctx context.Context, capability access.Capability, id uint) error {
	if err := s.gate.Authorize(ctx, capability, access.ActionDeleteUser, id); err != nil {
		return err
	}

	if err := s.store.DeleteUser(ctx, id); err != nil {
		return internal("delete user", err)
	}
	return nil
}

func (s *UserService) UploadUserFile(ctx context.Context, capability access.Capability, fileName string, content io.Reader) (media.StoredFile, error) {
	if err := s.gate.Authorize(ctx, capability, access.ActionUploadFile, 0); err != nil {
		return media.StoredFile{}, err
	}

	stored, err := s.files.Store(fileName, content)
	switch {
	case errors.Is(err, files.ErrInvalidName):
		return media.StoredFile{}, invalid(msgInvalidFileName)
	case err != nil:
		return media.StoredFile{}, internal("store upload", err)
	}

	s.log.Info("file stored", zap.String("name", stored.Name), zap.Int64("bytes", stored.Size))
	return stored, nil
}
