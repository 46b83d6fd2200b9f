package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Deepak6204/schedular-server/internal/storage/sqlite"
	"github.com/Deepak6204/schedular-server/internal/validate"
)

// handleListTasks returns tasks matching the supplied query filters.
func (s *Server) handleListTasks(c *gin.Context) {
	q := validate.ListTasksQuery{
		Status:           c.Query("status"),
		StartDate:        c.Query("startDate"),
		EndDate:          c.Query("endDate"),
		Category:         c.Query("category"),
		IsStaticSchedule: c.Query("isStaticSchedule"),
	}
	if err := validate.ListTasks(q); err != nil {
		respondValidation(c, err)
		return
	}

	filters := sqlite.TaskFilters{
		Status:    q.Status,
		StartDate: q.StartDate,
		EndDate:   q.EndDate,
		Category:  q.Category,
	}
	if q.IsStaticSchedule != "" {
		flag, _ := strconv.ParseBool(q.IsStaticSchedule)
		filters.IsStaticSchedule = &flag
	}

	tasks, err := s.store.ListTasks(c.Request.Context(), filters)
	if err != nil {
		s.respondStorageError(c, err)
		return
	}
	respondData(c, http.StatusOK, tasks)
}

// handleCreateTask inserts a new task.
func (s *Server) handleCreateTask(c *gin.Context) {
	var req validate.CreateTaskPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.CreateTask(req); err != nil {
		respondValidation(c, err)
		return
	}

	task, err := s.store.CreateTask(c.Request.Context(), sqlite.NewTask{
		Title:            *req.Title,
		Date:             *req.Date,
		StartTime:        *req.StartTime,
		EndTime:          *req.EndTime,
		Location:         getString(req.Location),
		Category:         *req.Category,
		IsStaticSchedule: *req.IsStaticSchedule,
	})
	if errors.Is(err, sqlite.ErrInvalidTimeRange) {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		s.respondStorageError(c, err)
		return
	}
	respondData(c, http.StatusCreated, task)
}

// handleUpdateTask applies a partial update to a task.
func (s *Server) handleUpdateTask(c *gin.Context) {
	taskID := c.Param("taskId")

	var req validate.UpdateTaskPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.UpdateTask(taskID, req); err != nil {
		respondValidation(c, err)
		return
	}

	task, err := s.store.UpdateTask(c.Request.Context(), taskID, sqlite.TaskUpdate{
		Title:            req.Title,
		Date:             req.Date,
		StartTime:        req.StartTime,
		EndTime:          req.EndTime,
		Location:         req.Location,
		Category:         req.Category,
		IsStaticSchedule: req.IsStaticSchedule,
		Status:           req.Status,
		Priority:         req.Priority,
	})
	if errors.Is(err, sqlite.ErrTaskNotFound) {
		respondError(c, http.StatusNotFound, "task not found")
		return
	}
	if errors.Is(err, sqlite.ErrNoFieldsToUpdate) || errors.Is(err, sqlite.ErrInvalidTimeRange) {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		s.respondStorageError(c, err)
		return
	}
	respondData(c, http.StatusOK, task)
}

// handleDeleteTask removes a task. A missing row is a 404, not a failure.
func (s *Server) handleDeleteTask(c *gin.Context) {
	taskID := c.Param("taskId")
	if err := validate.DeleteTask(taskID); err != nil {
		respondValidation(c, err)
		return
	}

	deleted, err := s.store.DeleteTask(c.Request.Context(), taskID)
	if err != nil {
		s.respondStorageError(c, err)
		return
	}
	if !deleted {
		respondError(c, http.StatusNotFound, "task not found")
		return
	}
	respondData(c, http.StatusOK, gin.H{"deleted": true})
}

func getString(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
