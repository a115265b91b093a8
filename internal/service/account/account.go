package account

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"service/internal/entities"
)

type Account struct {
	repository Repository
	tokens     Tokens
}

func New(repository Repository, tokens Tokens) *Account {
	return &Account{
		repository: repository,
		tokens:     tokens,
	}
}

// Register создает аккаунт по самостоятельной регистрации.
// Роль обязательна и приходит явно, дефолта здесь нет.
func (s *Account) Register(ctx context.Context, registration entities.Registration) (*entities.Account, error) {
	if registration.Handle == "" || registration.Email == "" ||
		registration.Password == "" || registration.Role == "" {
		return nil, ErrMissingRequiredFields
	}

	if !isValidHandle(registration.Handle) {
		return nil, ErrMissingRequiredFields
	}
	if !isValidEmail(registration.Email) {
		return nil, ErrInvalidEmail
	}
	if !isValidRole(registration.Role) {
		return nil, ErrInvalidRole
	}
	if !isValidPassword(registration.Password) {
		return nil, ErrWeakPassword
	}
	if registration.Password != registration.PasswordConfirm {
		return nil, ErrPasswordMismatch
	}

	hash, err := hashPassword(registration.Password)
	if err != nil {
		return nil, err
	}

	id, err := s.repository.Create(ctx, entities.AccountModify{
		Handle:       &registration.Handle,
		Email:        &registration.Email,
		PasswordHash: &hash,
		Role:         &registration.Role,
	})
	if err != nil {
		if errors.Is(err, ErrConflict) {
			return nil, ErrConflict
		}

		return nil, fmt.Errorf("create account: %w", err)
	}

	created, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get created account: %w", err)
	}

	return created, nil
}

// Login проверяет пару handle/пароль и выдает пару токенов.
// Несуществующий аккаунт и неверный пароль снаружи неразличимы.
func (s *Account) Login(ctx context.Context, handle, password string) (*entities.TokenPair, error) {
	if handle == "" || password == "" {
		return nil, ErrMissingRequiredFields
	}

	accountEntity, err := s.repository.GetByHandle(ctx, handle)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return nil, ErrInvalidCredentials
		}

		return nil, fmt.Errorf("get account by handle: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(accountEntity.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issuePair(accountEntity)
}

// Refresh выдает новую пару токенов по refresh-токену.
// Роль берется из базы, а не из claims: могла смениться после выдачи.
func (s *Account) Refresh(ctx context.Context, refreshToken string) (*entities.TokenPair, error) {
	claims, err := s.tokens.ParseRefresh(refreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}

	accountEntity, err := s.repository.GetByID(ctx, claims.AccountID)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return nil, ErrInvalidToken
		}

		return nil, fmt.Errorf("get account by id: %w", err)
	}

	return s.issuePair(accountEntity)
}

func (s *Account) GetProfile(ctx context.Context, actor entities.Account) (*entities.Account, error) {
	accountEntity, err := s.repository.GetByID(ctx, actor.ID)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return nil, ErrAccountNotFound
		}

		return nil, fmt.Errorf("get account by id: %w", err)
	}

	return accountEntity, nil
}

// UpdateProfile меняет собственные данные actor. Роль через профиль
// не меняется никогда, даже для админа — для этого есть админский CRUD.
func (s *Account) UpdateProfile(ctx context.Context, actor entities.Account, input entities.AccountInput) (*entities.Account, error) {
	accountModify, err := s.modifyFromInput(input)
	if err != nil {
		return nil, err
	}

	accountModify.ID = &actor.ID
	accountModify.Role = nil

	return s.update(ctx, accountModify)
}

// CreateAccount — админское создание аккаунта с произвольной ролью.
func (s *Account) CreateAccount(ctx context.Context, actor entities.Account, input entities.AccountInput) (*entities.Account, error) {
	if actor.Role != entities.RoleAdmin {
		return nil, ErrInsufficientRole
	}

	if input.Handle == nil || input.Email == nil || input.Password == nil || input.Role == nil {
		return nil, ErrMissingRequiredFields
	}

	accountModify, err := s.modifyFromInput(input)
	if err != nil {
		return nil, err
	}

	id, err := s.repository.Create(ctx, accountModify)
	if err != nil {
		if errors.Is(err, ErrConflict) {
			return nil, ErrConflict
		}

		return nil, fmt.Errorf("create account: %w", err)
	}

	created, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get created account: %w", err)
	}

	return created, nil
}

func (s *Account) ListAccounts(ctx context.Context, actor entities.Account) ([]entities.Account, error) {
	if actor.Role != entities.RoleAdmin {
		return nil, ErrInsufficientRole
	}

	accounts, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get all accounts: %w", err)
	}

	return accounts, nil
}

func (s *Account) GetAccount(ctx context.Context, actor entities.Account, id int64) (*entities.Account, error) {
	if actor.Role != entities.RoleAdmin {
		return nil, ErrInsufficientRole
	}

	accountEntity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return nil, ErrAccountNotFound
		}

		return nil, fmt.Errorf("get account by id: %w", err)
	}

	return accountEntity, nil
}

func (s *Account) UpdateAccount(ctx context.Context, actor entities.Account, id int64, input entities.AccountInput) (*entities.Account, error) {
	if actor.Role != entities.RoleAdmin {
		return nil, ErrInsufficientRole
	}

	accountModify, err := s.modifyFromInput(input)
	if err != nil {
		return nil, err
	}

	accountModify.ID = &id

	return s.update(ctx, accountModify)
}

func (s *Account) DeleteAccount(ctx context.Context, actor entities.Account, id int64) error {
	if actor.Role != entities.RoleAdmin {
		return ErrInsufficientRole
	}

	err := s.repository.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return ErrAccountNotFound
		}

		return fmt.Errorf("delete account: %w", err)
	}

	return nil
}

func (s *Account) update(ctx context.Context, accountModify entities.AccountModify) (*entities.Account, error) {
	updated, err := s.repository.Update(ctx, accountModify)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) || errors.Is(err, ErrConflict) {
			return nil, err
		}

		return nil, fmt.Errorf("update account: %w", err)
	}

	return updated, nil
}

// modifyFromInput валидирует присланные поля и хеширует пароль.
func (s *Account) modifyFromInput(input entities.AccountInput) (entities.AccountModify, error) {
	var accountModify entities.AccountModify

	if input.Handle != nil {
		if !isValidHandle(*input.Handle) {
			return accountModify, ErrMissingRequiredFields
		}
		accountModify.Handle = input.Handle
	}

	if input.Email != nil {
		if !isValidEmail(*input.Email) {
			return accountModify, ErrInvalidEmail
		}
		accountModify.Email = input.Email
	}

	if input.Role != nil {
		if !isValidRole(*input.Role) {
			return accountModify, ErrInvalidRole
		}
		accountModify.Role = input.Role
	}

	if input.Password != nil {
		if !isValidPassword(*input.Password) {
			return accountModify, ErrWeakPassword
		}

		hash, err := hashPassword(*input.Password)
		if err != nil {
			return accountModify, err
		}
		accountModify.PasswordHash = &hash
	}

	return accountModify, nil
}

func (s *Account) issuePair(accountEntity *entities.Account) (*entities.TokenPair, error) {
	pair, err := s.tokens.IssuePair(accountEntity.ID, accountEntity.Role.String())
	if err != nil {
		return nil, fmt.Errorf("issue token pair: %w", err)
	}

	return &entities.TokenPair{
		AccessToken:  pair.Access,
		RefreshToken: pair.Refresh,
	}, nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	return string(hash), nil
}
