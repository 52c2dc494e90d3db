package repository

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"gorm.io/gorm"

	"github.com/BranislavCuturilo/todo/internal/model"
)

// ProjectRepository manages projects.
type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify builds a URL-safe slug from a project name.
func Slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = slugPattern.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

func (r *ProjectRepository) Create(ctx context.Context, project *model.Project) error {
	if project.Slug == "" {
		project.Slug = Slugify(project.Name)
	}
	if err := r.db.WithContext(ctx).Create(project).Error; err != nil {
		return fmt.Errorf("create project: %w", err)
	}
	return nil
}

// GetOrCreate returns the user's project with the given name, creating it
// with default priority when missing. Empty names resolve to no project.
func (r *ProjectRepository) GetOrCreate(ctx context.Context, userID uint, name string) (*model.Project, error) {
	if name == "" {
		return nil, nil
	}

	var project model.Project
	db := r.db.WithContext(ctx)
	err := db.Where("user_id = ? AND name = ?", userID, name).First(&project).Error
	switch {
	case err == nil:
		return &project, nil
	case err == gorm.ErrRecordNotFound:
		project = model.Project{UserID: userID, Name: name, Slug: Slugify(name), Priority: 3}
		if err := db.Create(&project).Error; err != nil {
			return nil, fmt.Errorf("create project: %w", err)
		}
		return &project, nil
	default:
		return nil, fmt.Errorf("find project: %w", err)
	}
}

func (r *ProjectRepository) ListByUser(ctx context.Context, userID uint) ([]model.Project, error) {
	var projects []model.Project
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("priority ASC, name ASC").Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// MapByID returns the user's projects keyed by ID, for score lookups.
func (r *ProjectRepository) MapByID(ctx context.Context, userID uint) (map[uint]model.Project, error) {
	projects, err := r.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint]model.Project, len(projects))
	for _, p := range projects {
		byID[p.ID] = p
	}
	return byID, nil
}

func (r *ProjectRepository) FindBySlug(ctx context.Context, userID uint, slug string) (*model.Project, error) {
	var project model.Project
	if err := r.db.WithContext(ctx).Where("user_id = ? AND slug = ?", userID, slug).First(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// Delete removes a project and detaches its tasks, which fall back to
// the inbox.
func (r *ProjectRepository) Delete(ctx context.Context, userID, projectID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Task{}).
			Where("user_id = ? AND project_id = ?", userID, projectID).
			Update("project_id", nil).Error; err != nil {
			return fmt.Errorf("detach tasks: %w", err)
		}
		if err := tx.Where("user_id = ? AND id = ?", userID, projectID).
			Delete(&model.Project{}).Error; err != nil {
			return fmt.Errorf("delete project: %w", err)
		}
		return nil
	})
}
