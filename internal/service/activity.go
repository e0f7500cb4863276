package service

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"time"

	"skkuri-backend/internal/domain"
	"skkuri-backend/internal/logger"
	"skkuri-backend/internal/repository"
	"skkuri-backend/internal/storage"
)

// ArtworkOptions limits what may be uploaded as an artwork image.
type ArtworkOptions struct {
	MaxBytes     int64
	AllowedTypes []string
}

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

type activityService struct {
	authz        Authorizer
	clubRepo     repository.ClubRepository
	scheduleRepo repository.ScheduleRepository
	noticeRepo   repository.NoticeRepository
	artworkRepo  repository.ArtworkRepository
	store        storage.StorageInterface
	maxBytes     int64
	allowed      map[string]bool
}

func NewActivityService(
	authz Authorizer,
	clubRepo repository.ClubRepository,
	scheduleRepo repository.ScheduleRepository,
	noticeRepo repository.NoticeRepository,
	artworkRepo repository.ArtworkRepository,
	store storage.StorageInterface,
	opts ArtworkOptions,
) ActivityService {
	allowed := make(map[string]bool, len(opts.AllowedTypes))
	for _, t := range opts.AllowedTypes {
		allowed[strings.ToLower(strings.TrimSpace(t))] = true
	}
	return &activityService{
		authz:        authz,
		clubRepo:     clubRepo,
		scheduleRepo: scheduleRepo,
		noticeRepo:   noticeRepo,
		artworkRepo:  artworkRepo,
		store:        store,
		maxBytes:     opts.MaxBytes,
		allowed:      allowed,
	}
}

func (s *activityService) requireManager(ctx context.Context, actorID, clubID int32, op string) error {
	if !s.authz.IsManager(ctx, actorID, clubID) {
		logger.WarnContext(ctx, "Manager check failed", "operation", op, "userID", actorID, "clubID", clubID)
		return ErrForbidden
	}
	return nil
}

// Schedules

func (s *activityService) ListSchedules(ctx context.Context, clubID int32) ([]domain.Schedule, error) {
	return s.scheduleRepo.ListByClub(ctx, clubID)
}

func (s *activityService) CreateSchedule(ctx context.Context, actorID, clubID int32, content string, date time.Time) (*domain.Schedule, error) {
	if err := s.requireManager(ctx, actorID, clubID, "CreateSchedule"); err != nil {
		return nil, err
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, invalid("schedule content is required")
	}
	if date.IsZero() {
		return nil, invalid("schedule date is required")
	}

	schedule := &domain.Schedule{ClubID: clubID, Content: content, ScheduleDate: date}
	if err := s.scheduleRepo.Create(ctx, schedule); err != nil {
		return nil, err
	}
	return schedule, nil
}

func (s *activityService) DeleteSchedule(ctx context.Context, actorID, clubID, scheduleID int32) error {
	if err := s.requireManager(ctx, actorID, clubID, "DeleteSchedule"); err != nil {
		return err
	}
	schedule, err := s.scheduleRepo.GetByID(ctx, scheduleID)
	if err != nil {
		return notFound(err, "schedule")
	}
	if schedule.ClubID != clubID {
		return ErrNotFound
	}
	return notFound(s.scheduleRepo.Delete(ctx, scheduleID), "schedule")
}

// Notices

func (s *activityService) ListNotices(ctx context.Context, clubID int32) ([]domain.Notice, error) {
	return s.noticeRepo.ListByClub(ctx, clubID)
}

func (s *activityService) CreateNotice(ctx context.Context, actorID, clubID int32, title, content string) (*domain.Notice, error) {
	if err := s.requireManager(ctx, actorID, clubID, "CreateNotice"); err != nil {
		return nil, err
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, invalid("notice title is required")
	}

	notice := &domain.Notice{ClubID: clubID, Title: title, Content: content}
	if err := s.noticeRepo.Create(ctx, notice); err != nil {
		return nil, err
	}
	return notice, nil
}

func (s *activityService) DeleteNotice(ctx context.Context, actorID, clubID, noticeID int32) error {
	if err := s.requireManager(ctx, actorID, clubID, "DeleteNotice"); err != nil {
		return err
	}
	notice, err := s.noticeRepo.GetByID(ctx, noticeID)
	if err != nil {
		return notFound(err, "notice")
	}
	if notice.ClubID != clubID {
		return ErrNotFound
	}
	return notFound(s.noticeRepo.Delete(ctx, noticeID), "notice")
}

// Artworks

func (s *activityService) ListArtworks(ctx context.Context, clubID int32) ([]domain.Artwork, error) {
	return s.artworkRepo.ListByClub(ctx, clubID)
}

// CreateArtwork stores the image first and then the record. If the record
// cannot be written the stored file is removed again; anything left behind
// by a crash is swept by the orphan cleanup job.
func (s *activityService) CreateArtwork(ctx context.Context, actorID, clubID int32, upload ArtworkUpload) (*domain.Artwork, error) {
	logger.EnterMethod("activityService.CreateArtwork", "actorID", actorID, "clubID", clubID)

	if err := s.requireManager(ctx, actorID, clubID, "CreateArtwork"); err != nil {
		return nil, err
	}
	title := strings.TrimSpace(upload.Title)
	if title == "" {
		return nil, invalid("artwork title is required")
	}
	if upload.Body == nil {
		return nil, invalid("artwork image is required")
	}
	ext, err := s.imageExtension(upload.ContentType, upload.FileName)
	if err != nil {
		return nil, err
	}

	key, size, err := s.store.Save(ctx, ext, upload.Body, s.maxBytes)
	if err != nil {
		logger.ExitMethodWithError("activityService.CreateArtwork", err, "clubID", clubID)
		if errors.Is(err, storage.ErrFileTooLarge) {
			return nil, invalid("image exceeds %d bytes", s.maxBytes)
		}
		return nil, err
	}

	artwork := &domain.Artwork{
		ClubID:     clubID,
		Title:      title,
		Content:    upload.Content,
		ImgPath:    s.store.URL(key),
		StorageKey: key,
	}
	if err := s.artworkRepo.Create(ctx, artwork); err != nil {
		logger.ExitMethodWithError("activityService.CreateArtwork", err, "clubID", clubID, "key", key)
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			logger.ErrorContext(ctx, "Failed to remove artwork file after insert failure", "key", key, "error", delErr)
		}
		return nil, err
	}

	logger.ExitMethod("activityService.CreateArtwork", "artworkID", artwork.ID, "key", key, "size", size)
	return artwork, nil
}

func (s *activityService) imageExtension(contentType, fileName string) (string, error) {
	ct := strings.ToLower(strings.TrimSpace(contentType))
	if i := strings.Index(ct, ";"); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	if len(s.allowed) > 0 && !s.allowed[ct] {
		return "", invalid("content type %q is not allowed", contentType)
	}
	if ext, ok := imageExtensions[ct]; ok {
		return ext, nil
	}
	if ext := strings.ToLower(filepath.Ext(fileName)); ext != "" && !strings.ContainsAny(ext, `/\`) {
		return ext, nil
	}
	return ".jpg", nil
}

func (s *activityService) DeleteArtwork(ctx context.Context, actorID, clubID, artworkID int32) error {
	if err := s.requireManager(ctx, actorID, clubID, "DeleteArtwork"); err != nil {
		return err
	}
	artwork, err := s.artworkRepo.GetByID(ctx, artworkID)
	if err != nil {
		return notFound(err, "artwork")
	}
	if artwork.ClubID != clubID {
		return ErrNotFound
	}
	if err := s.artworkRepo.Delete(ctx, artworkID); err != nil {
		return notFound(err, "artwork")
	}
	if artwork.StorageKey != "" {
		if err := s.store.Delete(ctx, artwork.StorageKey); err != nil {
			// the orphan cleanup job retries this
			logger.WarnContext(ctx, "Failed to remove artwork file", "key", artwork.StorageKey, "error", err)
		}
	}
	return nil
}

func (s *activityService) OpenArtworkImage(ctx context.Context, name string) (*storage.Object, error) {
	if !storage.ValidKey(name) {
		return nil, ErrNotFound
	}
	obj, err := s.store.Open(ctx, name)
	if err != nil {
		if errors.Is(err, storage.ErrFileNotFound) || errors.Is(err, storage.ErrInvalidKey) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return obj, nil
}

// Description

func (s *activityService) GetDescription(ctx context.Context, clubID int32) (string, error) {
	club, err := s.clubRepo.GetByID(ctx, clubID)
	if err != nil {
		return "", notFound(err, "club")
	}
	return club.Description, nil
}

func (s *activityService) UpdateDescription(ctx context.Context, actorID, clubID int32, description string) error {
	if err := s.requireManager(ctx, actorID, clubID, "UpdateDescription"); err != nil {
		return err
	}
	return notFound(s.clubRepo.UpdateDescription(ctx, clubID, description), "club")
}
