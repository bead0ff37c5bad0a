package service

import (
	"context"

	"github.com/openmusic/server/internal/domain"
	"github.com/openmusic/server/internal/repository"
	"github.com/openmusic/server/pkg/id"
)

// CollaborationService 歌单协作服务
type CollaborationService struct {
	collaborationRepo repository.CollaborationRepository
}

// NewCollaborationService 创建协作服务
func NewCollaborationService(collaborationRepo repository.CollaborationRepository) *CollaborationService {
	return &CollaborationService{collaborationRepo: collaborationRepo}
}

// AddCollaboration 为歌单添加协作者
func (s *CollaborationService) AddCollaboration(ctx context.Context, playlistID, userID string) (string, error) {
	collaboration := &domain.Collaboration{
		ID:         id.New("collab"),
		PlaylistID: playlistID,
		UserID:     userID,
	}
	if err := collaboration.Validate(); err != nil {
		return "", err
	}

	if err := s.collaborationRepo.Create(ctx, collaboration); err != nil {
		return "", err
	}
	return collaboration.ID, nil
}

// DeleteCollaboration 移除歌单协作者
func (s *CollaborationService) DeleteCollaboration(ctx context.Context, playlistID, userID string) error {
	return s.collaborationRepo.Delete(ctx, playlistID, userID)
}

// VerifyCollaborator 校验用户是否为歌单协作者
func (s *CollaborationService) VerifyCollaborator(ctx context.Context, playlistID, userID string) error {
	ok, err := s.collaborationRepo.Exists(ctx, playlistID, userID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrCollaborationNotFound
	}
	return nil
}
