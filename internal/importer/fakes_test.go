package importer

import (
	"context"

	"service-center-import/internal/entities"
	apperrors "service-center-import/pkg/errors"

	"github.com/jackc/pgx/v5"
)

// Фейковые репозитории в памяти: повторяют контракт настоящих
// (вставка-или-пропуск по естественному ключу, выдача id), но без БД.

type fakeUserRepo struct {
	nextID  int64
	byLogin map[string]*entities.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byLogin: make(map[string]*entities.User)}
}

func (r *fakeUserRepo) CreateUserInTx(_ context.Context, _ pgx.Tx, user *entities.User) error {
	if _, exists := r.byLogin[user.Login]; exists {
		return nil
	}
	r.nextID++
	stored := *user
	stored.ID = r.nextID
	r.byLogin[user.Login] = &stored
	return nil
}

func (r *fakeUserRepo) FindUserIDByLoginInTx(_ context.Context, _ pgx.Tx, login string) (int64, error) {
	if user, ok := r.byLogin[login]; ok {
		return user.ID, nil
	}
	return 0, apperrors.ErrNotFound
}

type fakeRequestRepo struct {
	nextID   int64
	byNumber map[string]*entities.Request
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{byNumber: make(map[string]*entities.Request)}
}

func (r *fakeRequestRepo) CreateRequestInTx(_ context.Context, _ pgx.Tx, request *entities.Request) (int64, bool, error) {
	if existing, ok := r.byNumber[request.RequestNumber]; ok {
		return existing.ID, false, nil
	}
	r.nextID++
	stored := *request
	stored.ID = r.nextID
	r.byNumber[request.RequestNumber] = &stored
	return stored.ID, true, nil
}

type fakeHistoryRepo struct {
	entries []entities.StatusHistory
}

func (r *fakeHistoryRepo) CreateStatusHistoryInTx(_ context.Context, _ pgx.Tx, entry *entities.StatusHistory) error {
	r.entries = append(r.entries, *entry)
	return nil
}

type fakeCommentRepo struct {
	comments []entities.RequestComment
}

func (r *fakeCommentRepo) CreateCommentInTx(_ context.Context, _ pgx.Tx, comment *entities.RequestComment) error {
	r.comments = append(r.comments, *comment)
	return nil
}

func (r *fakeCommentRepo) CommentExistsInTx(_ context.Context, _ pgx.Tx, comment *entities.RequestComment) (bool, error) {
	for _, c := range r.comments {
		if c.RequestID == comment.RequestID &&
			c.UserID == comment.UserID &&
			c.Comment == comment.Comment &&
			c.IsOrderedParts == comment.IsOrderedParts {
			return true, nil
		}
	}
	return false, nil
}
