package repository

import (
	"context"

	"barberbook/internal/domain"

	"gorm.io/gorm"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) Create(ctx context.Context, rev *domain.Review) error {
	return r.db.WithContext(ctx).Create(rev).Error
}

func (r *ReviewRepository) GetByID(ctx context.Context, id int64) (*domain.Review, error) {
	var rev domain.Review
	if err := r.db.WithContext(ctx).First(&rev, id).Error; err != nil {
		return nil, err
	}
	return &rev, nil
}

func (r *ReviewRepository) GetByUserID(ctx context.Context, userID int64) ([]domain.Review, error) {
	var reviews []domain.Review
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepository) GetVisibleByBarber(ctx context.Context, barberID int64, limit, offset int) ([]domain.Review, error) {
	var reviews []domain.Review
	query := r.db.WithContext(ctx).
		Where("barber_id = ? AND is_hidden = ?", barberID, false).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	err := query.Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepository) Update(ctx context.Context, rev *domain.Review) error {
	return r.db.WithContext(ctx).Save(rev).Error
}

func (r *ReviewRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&domain.Review{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ReviewRepository) SetBarberReply(ctx context.Context, reviewID int64, reply string) (*domain.Review, error) {
	err := r.db.WithContext(ctx).Model(&domain.Review{}).
		Where("id = ?", reviewID).
		Updates(map[string]interface{}{
			"barber_reply": reply,
			"replied_at":   gorm.Expr("CURRENT_TIMESTAMP"),
		}).Error
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, reviewID)
}

// ToggleLike flips the like row for (reviewID, userID) and keeps likes_count
// in step, all inside one transaction. The returned state is authoritative.
func (r *ReviewRepository) ToggleLike(ctx context.Context, reviewID, userID int64) (bool, int, error) {
	var liked bool
	var count int

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rev domain.Review
		if err := tx.First(&rev, reviewID).Error; err != nil {
			return err
		}

		result := tx.Where("review_id = ? AND user_id = ?", reviewID, userID).
			Delete(&domain.ReviewLike{})
		if result.Error != nil {
			return result.Error
		}

		delta := -1
		if result.RowsAffected == 0 {
			// No row deleted means the user had not liked it yet.
			if err := tx.Create(&domain.ReviewLike{ReviewID: reviewID, UserID: userID}).Error; err != nil {
				return err
			}
			delta = 1
			liked = true
		}

		if err := tx.Model(&domain.Review{}).
			Where("id = ?", reviewID).
			Update("likes_count", gorm.Expr("likes_count + ?", delta)).Error; err != nil {
			return err
		}

		return tx.Model(&domain.Review{}).
			Where("id = ?", reviewID).
			Pluck("likes_count", &count).Error
	})
	if err != nil {
		return false, 0, err
	}
	return liked, count, nil
}

func (r *ReviewRepository) LikedReviewIDs(ctx context.Context, userID int64, reviewIDs []int64) (map[int64]bool, error) {
	liked := make(map[int64]bool, len(reviewIDs))
	if len(reviewIDs) == 0 {
		return liked, nil
	}

	var ids []int64
	err := r.db.WithContext(ctx).Model(&domain.ReviewLike{}).
		Where("user_id = ? AND review_id IN ?", userID, reviewIDs).
		Pluck("review_id", &ids).Error
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		liked[id] = true
	}
	return liked, nil
}

func (r *ReviewRepository) CreateReport(ctx context.Context, rep *domain.ReviewReport) error {
	return r.db.WithContext(ctx).Create(rep).Error
}
