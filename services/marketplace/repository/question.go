package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"yumi/domain"

	"gorm.io/gorm"
)

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(database *gorm.DB) domain.QuestionRepo {
	return &questionRepository{
		db: database,
	}
}

func (r *questionRepository) Create(ctx context.Context, q *domain.ExpertQuestion) error {
	if err := r.db.WithContext(ctx).Create(q).Error; err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("failed to create question: %w", err)
	}
	return nil
}

func (r *questionRepository) List(ctx context.Context, answered *bool) ([]domain.ExpertQuestion, error) {
	q := r.db.WithContext(ctx).Model(&domain.ExpertQuestion{})
	if answered != nil {
		if *answered {
			q = q.Where("answer_text IS NOT NULL")
		} else {
			q = q.Where("answer_text IS NULL")
		}
	}

	questions := []domain.ExpertQuestion{}
	if err := q.Order("asked_at DESC").Order("id DESC").Find(&questions).Error; err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	return questions, nil
}

func (r *questionRepository) FindByID(ctx context.Context, id int) (*domain.ExpertQuestion, error) {
	var q domain.ExpertQuestion
	if err := r.db.WithContext(ctx).First(&q, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("error fetching question %d: %w", id, err)
	}
	return &q, nil
}

func (r *questionRepository) SaveAnswer(ctx context.Context, id, expertID int, answer string, at time.Time) error {
	res := r.db.WithContext(ctx).Model(&domain.ExpertQuestion{}).
		Where("id = ? AND answer_text IS NULL", id).
		Updates(map[string]interface{}{
			"answer_text":           answer,
			"answered_by_expert_id": expertID,
			"answered_at":           at,
		})
	if res.Error != nil {
		return fmt.Errorf("failed to answer question %d: %w", id, res.Error)
	}
	if res.RowsAffected > 0 {
		return nil
	}

	if _, err := r.FindByID(ctx, id); err != nil {
		return err
	}
	return domain.ErrAlreadyAnswered
}
