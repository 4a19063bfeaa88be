package service

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/godsaeng/internal/error_values"
	"github.com/limbo/godsaeng/internal/store"
	"github.com/limbo/godsaeng/pkg/entity"
)

type FriendService struct {
	store store.DocumentStoreI
}

func NewFriendService(docStore store.DocumentStoreI) *FriendService {
	if docStore == nil {
		log.Fatal("provided nil document store")
	}
	return &FriendService{
		store: docStore,
	}
}

func (fs *FriendService) List(ctx context.Context) ([]entity.Friend, error) {
	doc, err := fs.store.Load(ctx)
	if err != nil {
		return nil, errors.New("document store error: " + err.Error())
	}
	return doc.Friends, nil
}

func (fs *FriendService) Add(ctx context.Context, name string) (*entity.Friend, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errorvalues.ErrEmptyName
	}
	doc, err := fs.store.Load(ctx)
	if err != nil {
		return nil, errors.New("document store error: " + err.Error())
	}
	friend := entity.Friend{
		ID:   uuid.New(),
		Name: name,
	}
	doc.Friends = append(doc.Friends, friend)
	if err := fs.store.Save(ctx, doc); err != nil {
		return nil, errors.New("document store error: " + err.Error())
	}
	return &friend, nil
}
