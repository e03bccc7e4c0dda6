package v1

import (
	"net/http"
	"strconv"

	"go-profile-backend/internal/delivery/http/response"
	"go-profile-backend/internal/domain"
	"go-profile-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileUC domain.ProfileUsecase
}

func NewProfileHandler(public *gin.RouterGroup, protected *gin.RouterGroup, profileUC domain.ProfileUsecase) {
	handler := &ProfileHandler{
		profileUC: profileUC,
	}

	public.POST("/create_profile", handler.CreateProfile)
	public.GET("/profile/:profile_id", handler.GetProfile)
	public.GET("/user_profiles/:user_id", handler.GetUserProfiles)

	protected.PUT("/update_profile", handler.UpdateProfile)
}

// CreateProfile godoc
// @Summary      Create Profile
// @Description  Create a profile for a user, linking the listed skills (created by name when missing)
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Param        profile  body      domain.CreateProfileInput  true  "Profile details"
// @Success      201      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Router       /create_profile [post]
func (h *ProfileHandler) CreateProfile(c *gin.Context) {
	var req domain.CreateProfileInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	profile, err := h.profileUC.CreateProfile(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Profile created successfully", profile)
}

// UpdateProfile godoc
// @Summary      Update Profile
// @Description  Partially update the authenticated user's profile. Omitted fields are left unchanged.
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        profile  body      domain.UpdateProfileInput  true  "Fields to update"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /update_profile [put]
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var req domain.UpdateProfileInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetInt64(string(domain.KeyUserID))

	profile, err := h.profileUC.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile updated successfully", profile)
}

// GetProfile godoc
// @Summary      Get Profile
// @Description  Fetch one profile with its skills, projects and job experiences
// @Tags         profiles
// @Produce      json
// @Param        profile_id  path      int  true  "Profile ID"
// @Success      200         {object}  response.Response
// @Failure      400         {object}  response.Response
// @Failure      404         {object}  response.Response
// @Router       /profile/{profile_id} [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	profileID, err := strconv.ParseInt(c.Param("profile_id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid profile id"))
		return
	}

	detail, err := h.profileUC.GetProfile(c.Request.Context(), profileID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile details", detail)
}

// GetUserProfiles godoc
// @Summary      List User Profiles
// @Description  List the profiles belonging to a user
// @Tags         profiles
// @Produce      json
// @Param        user_id  path      int  true  "User ID"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /user_profiles/{user_id} [get]
func (h *ProfileHandler) GetUserProfiles(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid user id"))
		return
	}

	profiles, err := h.profileUC.GetProfilesByUser(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "User profiles", profiles)
}
