package service

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/google/uuid"

	errorvalues "github.com/limbo/babiecloud/internal/error_values"
	"github.com/limbo/babiecloud/internal/repository"
	"github.com/limbo/babiecloud/pkg/entity"
)

type WidgetsService struct {
	order   repository.WidgetOrderRepositoryI
	photos  repository.PhotosRepositoryI
	storage ObjectStorage
}

func NewWidgetsService(order repository.WidgetOrderRepositoryI, photos repository.PhotosRepositoryI, storage ObjectStorage) *WidgetsService {
	if order == nil || photos == nil || storage == nil {
		log.Fatal("on widgets service provided nil dependencies")
	}
	return &WidgetsService{
		order:   order,
		photos:  photos,
		storage: storage,
	}
}

type widgetOrderInput struct {
	Order []entity.WidgetID `validate:"unique,dive,widget_id"`
}

type photoInput struct {
	Title string `validate:"max=200"`
}

func (ws *WidgetsService) GetOrder(ctx context.Context, uid uuid.UUID) ([]entity.WidgetID, error) {
	order, err := ws.order.Get(ctx, uid)
	if err != nil {
		return nil, errors.New("widget order repository error: " + err.Error())
	}
	return order, nil
}

// SetOrder replaces the order. Ids must be known and unique.
func (ws *WidgetsService) SetOrder(ctx context.Context, uid uuid.UUID, order []entity.WidgetID) error {
	if order == nil {
		order = []entity.WidgetID{}
	}
	if err := validateStruct(widgetOrderInput{Order: order}); err != nil {
		return err
	}
	if err := ws.order.Set(ctx, uid, order); err != nil {
		return errors.New("widget order repository error: " + err.Error())
	}
	return nil
}

// CreatePhotoUpload registers a new photo and returns the URL the client
// uploads its bytes to.
func (ws *WidgetsService) CreatePhotoUpload(ctx context.Context, uid uuid.UUID, title string) (*PhotoUpload, error) {
	title = strings.TrimSpace(title)
	if err := validateStruct(photoInput{Title: title}); err != nil {
		return nil, err
	}
	key := photoKey(uid, uuid.New())
	uploadURL, err := ws.storage.PresignPut(ctx, key)
	if err != nil {
		return nil, errors.New("object storage error: " + err.Error())
	}
	photo := &entity.Photo{
		OwnerID:    uid,
		Title:      title,
		StorageKey: key,
	}
	if err = ws.photos.Create(ctx, photo); err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("photos repository error: " + err.Error())
	}
	return &PhotoUpload{Photo: photo, UploadURL: uploadURL}, nil
}

func (ws *WidgetsService) LatestPhoto(ctx context.Context, uid uuid.UUID) (*entity.Photo, error) {
	photo, err := ws.photos.Latest(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrPhotoNotFound) {
			return nil, err
		}
		return nil, errors.New("photos repository error: " + err.Error())
	}
	photo.URL, err = ws.storage.PresignGet(ctx, photo.StorageKey)
	if err != nil {
		return nil, errors.New("object storage error: " + err.Error())
	}
	return photo, nil
}

func photoKey(uid, photoID uuid.UUID) string {
	return "users/" + uid.String() + "/photos/" + photoID.String()
}
