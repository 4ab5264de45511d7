package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oguzk/studenthub/internal/app/models/dto"
	"github.com/oguzk/studenthub/internal/app/services"
	"github.com/oguzk/studenthub/internal/middleware"
	"github.com/rs/zerolog"
)

// ProfileController handles the authenticated student's own profile and courses
type ProfileController struct {
	profileService services.ProfileService
	logger         zerolog.Logger
}

// NewProfileController creates a new ProfileController
func NewProfileController(profileService services.ProfileService, logger zerolog.Logger) *ProfileController {
	return &ProfileController{
		profileService: profileService,
		logger:         logger,
	}
}

// CompleteProfile fills in the student profile and enrolls the student
// into every course matching their department, year and semester
// @Summary Complete student profile
// @Description Creates the student profile for the authenticated user and auto enrolls them into matching courses
// @Tags profile
// @Accept json
// @Produce json
// @Param request body dto.CompleteProfileRequest true "Profile details"
// @Success 201 {object} dto.APIResponse{data=dto.StudentResponse} "Profile created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 409 {object} dto.ErrorResponse "Profile already exists"
// @Security BearerAuth
// @Router /profile [post]
func (c *ProfileController) CompleteProfile(ctx *gin.Context) {
	userID := ctx.GetInt64("userID")

	var req dto.CompleteProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid profile completion payload")
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	profile, err := c.profileService.CompleteProfile(ctx.Request.Context(), userID, &req)
	if err != nil {
		c.logger.Warn().Err(err).Int64("userID", userID).Msg("Profile completion failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().
		Int64("userID", userID).
		Str("branch", req.Branch).
		Msg("Student profile completed")

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data: profile,
	})
}

// GetOwnProfile returns the authenticated student's profile
// @Summary Get own profile
// @Tags profile
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse} "Profile"
// @Failure 404 {object} dto.ErrorResponse "Profile not found"
// @Security BearerAuth
// @Router /profile [get]
func (c *ProfileController) GetOwnProfile(ctx *gin.Context) {
	userID := ctx.GetInt64("userID")

	profile, err := c.profileService.GetOwnProfile(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: profile,
	})
}

// UpdateOwnProfile lets the student edit their contact details
// @Summary Update own profile
// @Description Updates the contact fields of the authenticated student's profile. Academic placement fields stay fixed.
// @Tags profile
// @Accept json
// @Produce json
// @Param request body dto.UpdateOwnProfileRequest true "Contact details"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Profile updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 404 {object} dto.ErrorResponse "Profile not found"
// @Security BearerAuth
// @Router /profile [put]
func (c *ProfileController) UpdateOwnProfile(ctx *gin.Context) {
	userID := ctx.GetInt64("userID")

	var req dto.UpdateOwnProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid profile update payload")
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.profileService.UpdateOwnProfile(ctx.Request.Context(), userID, &req); err != nil {
		c.logger.Warn().Err(err).Int64("userID", userID).Msg("Profile update failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("userID", userID).Msg("Student profile updated")

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.SuccessResponse{Message: "Profile updated successfully"},
	})
}

// GetOwnCourses lists the authenticated student's enrollments
// @Summary List own courses
// @Description Lists the student's enrollments, optionally filtered by status (ongoing, pass, fail)
// @Tags profile
// @Produce json
// @Param status query string false "Enrollment status filter"
// @Success 200 {object} dto.APIResponse{data=dto.EnrollmentListResponse} "Enrollments"
// @Failure 400 {object} dto.ErrorResponse "Unknown status value"
// @Failure 404 {object} dto.ErrorResponse "Profile not found"
// @Security BearerAuth
// @Router /profile/courses [get]
func (c *ProfileController) GetOwnCourses(ctx *gin.Context) {
	userID := ctx.GetInt64("userID")
	statusFilter := ctx.Query("status")

	enrollments, err := c.profileService.GetOwnCourses(ctx.Request.Context(), userID, statusFilter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.EnrollmentListResponse{Enrollments: enrollments, Count: len(enrollments)},
	})
}
