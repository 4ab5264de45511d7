package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/oguzk/studenthub/internal/app/models/dto"
	"github.com/oguzk/studenthub/internal/app/services"
	"github.com/oguzk/studenthub/internal/middleware"
	"github.com/rs/zerolog"
)

// StudentController handles administrator student management
type StudentController struct {
	studentService services.StudentService
	logger         zerolog.Logger
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService, logger zerolog.Logger) *StudentController {
	return &StudentController{
		studentService: studentService,
		logger:         logger,
	}
}

// ListStudents lists every registered student with account details
// @Summary List students
// @Tags students
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.StudentListResponse} "Students"
// @Security BearerAuth
// @Router /admin/students [get]
func (c *StudentController) ListStudents(ctx *gin.Context) {
	students, err := c.studentService.ListStudents(ctx.Request.Context())
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to list students")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: students})
}

// UpdateStudent edits a student's account and profile fields
// @Summary Update student
// @Tags students
// @Accept json
// @Produce json
// @Param id path int true "Student profile ID"
// @Param request body dto.AdminUpdateStudentRequest true "Student details"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Student updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Security BearerAuth
// @Router /admin/students/{id} [put]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student ID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.AdminUpdateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid student update payload")
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.studentService.UpdateStudent(ctx.Request.Context(), id, &req); err != nil {
		c.logger.Warn().Err(err).Int64("studentID", id).Msg("Student update failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("studentID", id).Msg("Student updated")

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.SuccessResponse{Message: "Student updated successfully"},
	})
}

// DeleteStudent removes a student account, profile and enrollments
// @Summary Delete student
// @Description Deletes the student's account and everything attached to it. Enrolled student counters of their ongoing courses are decremented.
// @Tags students
// @Produce json
// @Param id path int true "Student profile ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Student deleted"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Security BearerAuth
// @Router /admin/students/{id} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student ID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.studentService.DeleteStudent(ctx.Request.Context(), id); err != nil {
		c.logger.Warn().Err(err).Int64("studentID", id).Msg("Student deletion failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("studentID", id).Msg("Student deleted")

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.SuccessResponse{Message: "Student deleted successfully"},
	})
}

// GetStudentEnrollments lists one student's enrollments for review
// @Summary List student enrollments
// @Tags students
// @Produce json
// @Param id path int true "Student profile ID"
// @Success 200 {object} dto.APIResponse{data=dto.EnrollmentListResponse} "Enrollments"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Security BearerAuth
// @Router /admin/students/{id}/enrollments [get]
func (c *StudentController) GetStudentEnrollments(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student ID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	enrollments, err := c.studentService.GetStudentEnrollments(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: enrollments})
}

// UpdateEnrollmentStatuses applies a batch of enrollment status changes
// @Summary Update enrollment statuses
// @Description Applies a batch of status changes for one student. The batch is atomic: any unknown status or missing enrollment rejects the whole request.
// @Tags students
// @Accept json
// @Produce json
// @Param id path int true "Student profile ID"
// @Param request body dto.UpdateEnrollmentStatusRequest true "Status changes"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Statuses updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format or unknown status"
// @Failure 404 {object} dto.ErrorResponse "Student or enrollment not found"
// @Security BearerAuth
// @Router /admin/students/{id}/enrollments [put]
func (c *StudentController) UpdateEnrollmentStatuses(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student ID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.UpdateEnrollmentStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid enrollment status payload")
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.studentService.UpdateEnrollmentStatuses(ctx.Request.Context(), id, &req); err != nil {
		c.logger.Warn().Err(err).Int64("studentID", id).Msg("Enrollment status update failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().
		Int64("studentID", id).
		Int("changes", len(req.Changes)).
		Msg("Enrollment statuses updated")

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.SuccessResponse{Message: "Enrollment statuses updated successfully"},
	})
}
