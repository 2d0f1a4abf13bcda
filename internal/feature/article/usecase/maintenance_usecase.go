package usecase

import (
	"context"

	"blog_backend/internal/feature/article/domain/entity"
	"blog_backend/internal/platform/logging"

	"github.com/sirupsen/logrus"
)

type maintenanceUsecase struct {
	repo MaintenanceRepository
	tags TagInvalidator
}

// NewMaintenanceUsecase builds the orphan cleanup job. tags may be nil.
func NewMaintenanceUsecase(repo MaintenanceRepository, tags TagInvalidator) *maintenanceUsecase {
	return &maintenanceUsecase{repo: repo, tags: tags}
}

// PurgeOrphans removes comments and favorites left behind by deleted articles or
// users, detaches comments from deleted authors and recomputes favorite counts.
func (u *maintenanceUsecase) PurgeOrphans(ctx context.Context) (entity.OrphanReport, error) {
	report, err := u.repo.PurgeOrphans(ctx)
	if err != nil {
		return entity.OrphanReport{}, err
	}

	logging.WithContext(ctx).WithFields(logrus.Fields{
		"comments":           report.Comments,
		"favorites":          report.Favorites,
		"detached_comments":  report.DetachedComments,
		"recounted_articles": report.RecountedArticles,
	}).Info("orphan purge finished")

	if u.tags != nil {
		if err := u.tags.Invalidate(ctx); err != nil {
			logging.WithContext(ctx).WithError(err).Warn("tag cache invalidation failed")
		}
	}
	return report, nil
}
