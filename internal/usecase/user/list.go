package user

import (
	"context"

	domain "github.com/BruksfildServices01/hotel-housekeeping/internal/domain/user"
	"github.com/BruksfildServices01/hotel-housekeeping/internal/models"
)

type ListUsers struct {
	repo domain.Repository
}

func NewListUsers(repo domain.Repository) *ListUsers {
	return &ListUsers{repo: repo}
}

func (uc *ListUsers) Execute(ctx context.Context) ([]models.User, error) {
	return uc.repo.ListUsers(ctx)
}

type GetUser struct {
	repo domain.Repository
}

func NewGetUser(repo domain.Repository) *GetUser {
	return &GetUser{repo: repo}
}

func (uc *GetUser) Execute(ctx context.Context, id uint) (*models.User, error) {
	return uc.repo.GetUserByID(ctx, id)
}

func (uc *GetUser) ByEmail(ctx context.Context, email string) (*models.User, error) {
	return uc.repo.GetUserByEmail(ctx, email)
}
