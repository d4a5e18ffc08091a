package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskboard/internal/logger"
	"taskboard/internal/models"
	"taskboard/internal/services"
)

type TaskHandler struct {
	service services.TaskService
	log     *zap.Logger
}

func NewTaskHandler(service services.TaskService, log *zap.Logger) *TaskHandler {
	return &TaskHandler{service: service, log: log}
}

// @Summary      List tasks
// @Description  Admins see every task, members only tasks assigned to them
// @Tags         Tasks
// @Produce      json
// @Security     BearerAuth
// @Param        status    query  string  false  "todo | in-progress | completed"
// @Param        priority  query  string  false  "low | medium | high | urgent"
// @Param        search    query  string  false  "Free text over title and description"
// @Param        sort      query  string  false  "createdAt | updatedAt | dueDate | title | priority, prefix - for descending"
// @Param        page      query  int     false  "Page, from 1"
// @Param        limit     query  int     false  "Page size, up to 100"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]interface{}
// @Router       /tasks [get]
func (h *TaskHandler) List(c *gin.Context) {
	filter := models.TaskFilter{
		Search:   strings.TrimSpace(c.Query("search")),
		Status:   models.TaskStatus(c.Query("status")),
		Priority: models.TaskPriority(c.Query("priority")),
		Sort:     c.Query("sort"),
		Page:     queryInt(c, "page"),
		Limit:    queryInt(c, "limit"),
	}

	page, err := h.service.ListTasks(c.Request.Context(), actorOf(c), filter)
	if err != nil {
		respondError(c, h.log, "[task][list]", err)
		return
	}
	c.JSON(http.StatusOK, listJSON(page))
}

// @Summary      Create task
// @Tags         Tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        task  body      models.TaskInput  true  "Task"
// @Success      201   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]interface{}
// @Failure      401   {object}  map[string]interface{}
// @Router       /tasks [post]
func (h *TaskHandler) Create(c *gin.Context) {
	actor := actorOf(c)
	var input models.TaskInput
	if err := bindJSON(c, &input); err != nil {
		respondError(c, h.log, "[task][create][bind]", err)
		return
	}

	task, err := h.service.CreateTask(c.Request.Context(), actor, input)
	if err != nil {
		respondError(c, h.log, "[task][create]", err)
		return
	}
	logger.WithRequestID(c.Request.Context(), h.log).Info("[task][create][ok]",
		zap.String("task_id", task.ID), zap.String("by", actor.ID), zap.String("assignee", task.Assignee.ID))
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": task})
}

// @Summary      Get task
// @Tags         Tasks
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Task ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /tasks/{id} [get]
func (h *TaskHandler) GetByID(c *gin.Context) {
	task, err := h.service.GetTask(c.Request.Context(), actorOf(c), c.Param("id"))
	if err != nil {
		respondError(c, h.log, "[task][get]", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": task})
}

// @Summary      Update task
// @Description  Partial update; createdBy in the body is ignored
// @Tags         Tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string            true  "Task ID"
// @Param        task  body      models.TaskInput  true  "Fields to change"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]interface{}
// @Failure      403   {object}  map[string]interface{}
// @Failure      404   {object}  map[string]interface{}
// @Router       /tasks/{id} [put]
func (h *TaskHandler) Update(c *gin.Context) {
	actor := actorOf(c)
	var input models.TaskInput
	if err := bindJSON(c, &input); err != nil {
		respondError(c, h.log, "[task][update][bind]", err)
		return
	}

	task, err := h.service.UpdateTask(c.Request.Context(), actor, c.Param("id"), input)
	if err != nil {
		respondError(c, h.log, "[task][update]", err)
		return
	}
	logger.WithRequestID(c.Request.Context(), h.log).Info("[task][update][ok]",
		zap.String("task_id", task.ID), zap.String("by", actor.ID), zap.String("status", string(task.Status)))
	c.JSON(http.StatusOK, gin.H{"success": true, "data": task})
}

// @Summary      Delete task
// @Tags         Tasks
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Task ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /tasks/{id} [delete]
func (h *TaskHandler) Delete(c *gin.Context) {
	actor := actorOf(c)
	id := c.Param("id")
	if err := h.service.DeleteTask(c.Request.Context(), actor, id); err != nil {
		respondError(c, h.log, "[task][delete]", err)
		return
	}
	logger.WithRequestID(c.Request.Context(), h.log).Info("[task][delete][ok]",
		zap.String("task_id", id), zap.String("by", actor.ID))
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Task deleted successfully"})
}
