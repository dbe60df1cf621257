package app

import (
	"strings"
	"time"

	"gopherblog/internal/model"
)

type UserStore interface {
	Create(user *model.User) error
	GetByID(id uint) (*model.User, error)
	GetByUsernameOrEmail(username, email string) (*model.User, error)
	GetWithPosts(id uint) (*model.User, error)
	List(skip, limit int) ([]model.User, error)
	Update(id uint, fields map[string]interface{}) error
	Delete(id uint) error
}

type PostCounter interface {
	CountByAuthor(authorID uint) (int64, error)
}

type ResponseCounter interface {
	CountByUser(userID uint) (int64, error)
}

type UserService struct {
	users     UserStore
	posts     PostCounter
	responses ResponseCounter
	publisher EventPublisher
}

type CreateUserInput struct {
	Username string
	Email    string
	FullName *string
}

type UpdateUserInput struct {
	Username *string
	Email    *string
	FullName *string
	IsActive *bool
}

func NewUserService(users UserStore, posts PostCounter, responses ResponseCounter, publisher EventPublisher) *UserService {
	return &UserService{
		users:     users,
		posts:     posts,
		responses: responses,
		publisher: publisher,
	}
}

func (s *UserService) Create(input CreateUserInput) (*model.User, error) {
	username := strings.TrimSpace(input.Username)
	email := strings.TrimSpace(strings.ToLower(input.Email))
	if username == "" || email == "" {
		return nil, ErrInvalidInput
	}

	existing, err := s.users.GetByUsernameOrEmail(username, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUserExists
	}

	user := &model.User{
		Username: username,
		Email:    email,
		FullName: input.FullName,
		IsActive: true,
	}
	if err := s.users.Create(user); err != nil {
		return nil, err
	}

	publishAudit(s.publisher, "user", "create", user.ID)
	return user, nil
}

func (s *UserService) List(skip, limit int) ([]model.User, error) {
	return s.users.List(skip, limit)
}

// GetWithPosts returns the user and all of their posts regardless of
// publish state. A user with no posts gets an empty slice, not an error.
func (s *UserService) GetWithPosts(id uint) (*model.User, error) {
	if id == 0 {
		return nil, ErrUserNotFound
	}

	user, err := s.users.GetWithPosts(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if user.Posts == nil {
		user.Posts = []model.Post{}
	}
	return user, nil
}

// Update applies only the supplied fields. Username and email uniqueness
// is deliberately not re-checked here; a colliding value surfaces as a
// database unique-constraint error, matching the source system.
func (s *UserService) Update(id uint, input UpdateUserInput) (*model.User, error) {
	user, err := s.users.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	fields := map[string]interface{}{}
	if input.Username != nil {
		fields["username"] = strings.TrimSpace(*input.Username)
	}
	if input.Email != nil {
		fields["email"] = strings.TrimSpace(strings.ToLower(*input.Email))
	}
	if input.FullName != nil {
		fields["full_name"] = *input.FullName
	}
	if input.IsActive != nil {
		fields["is_active"] = *input.IsActive
	}
	if len(fields) == 0 {
		return user, nil
	}
	fields["updated_at"] = time.Now()

	if err := s.users.Update(id, fields); err != nil {
		return nil, err
	}

	updated, err := s.users.GetByID(id)
	if err != nil {
		return nil, err
	}

	publishAudit(s.publisher, "user", "update", id)
	return updated, nil
}

// Delete is restrictive: a user that still owns posts or AI responses
// cannot be removed.
func (s *UserService) Delete(id uint) error {
	user, err := s.users.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	postCount, err := s.posts.CountByAuthor(id)
	if err != nil {
		return err
	}
	responseCount, err := s.responses.CountByUser(id)
	if err != nil {
		return err
	}
	if postCount > 0 || responseCount > 0 {
		return ErrUserHasContent
	}

	if err := s.users.Delete(id); err != nil {
		return err
	}

	publishAudit(s.publisher, "user", "delete", id)
	return nil
}
