package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BranislavCuturilo/todo/internal/repository"
)

// ProjectHandler exposes project listing and per-project task views.
type ProjectHandler struct {
	projectRepo *repository.ProjectRepository
	taskRepo    *repository.TaskRepository
}

func NewProjectHandler(projectRepo *repository.ProjectRepository, taskRepo *repository.TaskRepository) *ProjectHandler {
	return &ProjectHandler{projectRepo: projectRepo, taskRepo: taskRepo}
}

func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.projectRepo.ListByUser(c.Request.Context(), currentUser(c).ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch projects"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"projects": projects})
}

// Tasks returns the open tasks under the project named by its slug.
func (h *ProjectHandler) Tasks(c *gin.Context) {
	user := currentUser(c)
	project, err := h.projectRepo.FindBySlug(c.Request.Context(), user.ID, c.Param("slug"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
		return
	}
	tasks, err := h.taskRepo.ListByProject(c.Request.Context(), user.ID, project.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch tasks"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"project": project, "tasks": tasks})
}

// Delete removes a project. Its tasks survive and fall back to the inbox.
func (h *ProjectHandler) Delete(c *gin.Context) {
	projectID, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.projectRepo.Delete(c.Request.Context(), currentUser(c).ID, projectID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
